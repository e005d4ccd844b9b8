package logger

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestNew_Levels(t *testing.T) {
	tests := []struct {
		in   string
		want zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"warn", zerolog.WarnLevel},
		{"", zerolog.InfoLevel},
		{"loud", zerolog.InfoLevel},
	}
	for _, tt := range tests {
		l := New(tt.in, &bytes.Buffer{})
		assert.Equal(t, tt.want, l.GetLevel(), "level %q", tt.in)
	}
}

func TestNew_WritesJSON(t *testing.T) {
	var buf bytes.Buffer
	l := New("info", &buf)
	l.Debug().Msg("hidden")
	l.Info().Int("day", 16).Msg("solved")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `"day":16`)
	assert.Contains(t, out, `"message":"solved"`)
	assert.Contains(t, out, `"time":`)
}
