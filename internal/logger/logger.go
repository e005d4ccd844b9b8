// Package logger builds the zerolog loggers used by the runner and solvers.
package logger

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// New returns a timestamped logger at the named level writing to w.
// Unknown levels fall back to info.
func New(level string, w io.Writer) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	return zerolog.New(w).
		Level(lvl).
		With().
		Timestamp().
		Logger()
}

// Console returns a human-readable logger on stderr, keeping stdout free for answers.
func Console(level string, color bool) zerolog.Logger {
	return New(level, zerolog.ConsoleWriter{Out: os.Stderr, NoColor: !color})
}
