package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func TestLoad_File(t *testing.T) {
	t.Setenv(EnvLogLevel, "")
	t.Setenv(EnvColor, "")
	path := writeFile(t, "aoc.yaml", `log_level: debug
color: false
memory_space:
  size: 7
  bytes: 12
race:
  min_saving: 50
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.False(t, cfg.ColorEnabled())
	assert.Equal(t, MemorySpaceConfig{Size: 7, Bytes: 12}, cfg.MemorySpace)
	assert.Equal(t, 50, cfg.Race.MinSaving)
	assert.Equal(t, []int{2, 20}, cfg.Race.Cheats, "unset fields keep defaults")
	assert.Equal(t, []int{25, 75}, cfg.Stones.Blinks)
}

func TestLoad_ExplicitZerosKept(t *testing.T) {
	t.Setenv(EnvLogLevel, "")
	t.Setenv(EnvColor, "")
	path := writeFile(t, "aoc.yaml", `memory_space:
  bytes: 0
race:
  min_saving: 0
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 0, cfg.MemorySpace.Bytes)
	assert.Equal(t, 0, cfg.Race.MinSaving)
	assert.Equal(t, 71, cfg.MemorySpace.Size, "sibling keys keep defaults")
	assert.Equal(t, []int{2, 20}, cfg.Race.Cheats)
}

func TestLoad_MissingDefaultFile(t *testing.T) {
	t.Setenv(EnvConfigPath, "")
	t.Setenv(EnvLogLevel, "")
	t.Setenv(EnvColor, "")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.True(t, cfg.ColorEnabled())
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_EnvOverrides(t *testing.T) {
	path := writeFile(t, "aoc.yaml", "log_level: debug\n")
	t.Setenv(EnvConfigPath, path)
	t.Setenv(EnvLogLevel, "warn")
	t.Setenv(EnvColor, "0")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.False(t, cfg.ColorEnabled())

	t.Setenv(EnvColor, "maybe")
	_, err = Load("")
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestLoad_Invalid(t *testing.T) {
	t.Setenv(EnvLogLevel, "")
	t.Setenv(EnvColor, "")
	tests := map[string]string{
		"negative size":   "memory_space:\n  size: -3\n",
		"zero cheat":      "race:\n  cheats: [0]\n",
		"negative saving": "race:\n  min_saving: -1\n",
		"negative blinks": "stones:\n  blinks: [-1]\n",
		"no blinks":       "stones:\n  blinks: []\n",
		"no cheats":       "race:\n  cheats: []\n",
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeFile(t, "aoc.yaml", body))
			assert.ErrorIs(t, err, ErrInvalid)
		})
	}
}

func TestLoad_BadYAML(t *testing.T) {
	_, err := Load(writeFile(t, "aoc.yaml", "race: [unterminated\n"))
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalid)
}

func TestLoadEnvFile(t *testing.T) {
	t.Setenv("AOC_TEST_DOTENV", "")
	os.Unsetenv("AOC_TEST_DOTENV")
	path := writeFile(t, ".env", "AOC_TEST_DOTENV=from-file\n")

	require.NoError(t, LoadEnvFile(path, filepath.Join(t.TempDir(), "missing.env")))
	assert.Equal(t, "from-file", os.Getenv("AOC_TEST_DOTENV"))
}
