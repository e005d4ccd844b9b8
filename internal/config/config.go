// Package config loads runner settings and puzzle parameters from an optional
// YAML file, a .env file and the process environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variables consulted by Load.
const (
	EnvConfigPath = "AOC_CONFIG"
	EnvLogLevel   = "AOC_LOG_LEVEL"
	EnvColor      = "AOC_COLOR"

	DefaultPath = "aoc.yaml"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid value")

// Config is the full runner configuration.
type Config struct {
	LogLevel string `yaml:"log_level"`
	Color    *bool  `yaml:"color"`

	Stones      StonesConfig      `yaml:"stones"`
	MemorySpace MemorySpaceConfig `yaml:"memory_space"`
	Race        RaceConfig        `yaml:"race"`
}

// StonesConfig sets the blink counts for the two pebble parts.
type StonesConfig struct {
	Blinks []int `yaml:"blinks"`
}

// MemorySpaceConfig sets the falling-bytes grid.
type MemorySpaceConfig struct {
	Size  int `yaml:"size"`
	Bytes int `yaml:"bytes"`
}

// RaceConfig sets the cheat durations and the minimum saving that counts.
type RaceConfig struct {
	Cheats    []int `yaml:"cheats"`
	MinSaving int   `yaml:"min_saving"`
}

// ColorEnabled reports whether coloured output is on (default true).
func (c *Config) ColorEnabled() bool {
	return c.Color == nil || *c.Color
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)

	return cfg
}

// LoadEnvFile loads KEY=VALUE pairs from the given .env files (".env" when
// none are named) into the environment. A missing file is not an error.
func LoadEnvFile(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("config: load %s: %w", p, err)
		}
	}

	return nil
}

// Load reads the YAML file at path over the defaults; an empty path means
// $AOC_CONFIG or aoc.yaml, and in that case a missing file yields the
// defaults. Environment overrides are applied before validation.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = getEnv(EnvConfigPath, DefaultPath)
		explicit = os.Getenv(EnvConfigPath) != ""
	}

	// Keys absent from the file keep their defaults; explicit zeros stay zero.
	cfg := Default()
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("config: parse %s: %w", path, err)
		}
	case errors.Is(err, fs.ErrNotExist) && !explicit:
		// No file: defaults only.
	default:
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = defaultLogLevel
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func applyEnv(cfg *Config) error {
	if lvl := os.Getenv(EnvLogLevel); lvl != "" {
		cfg.LogLevel = lvl
	}
	if raw := os.Getenv(EnvColor); raw != "" {
		on, err := strconv.ParseBool(raw)
		if err != nil {
			return fmt.Errorf("%w: %s=%q", ErrInvalid, EnvColor, raw)
		}
		cfg.Color = &on
	}

	return nil
}

const defaultLogLevel = "info"

func applyDefaults(cfg *Config) {
	cfg.LogLevel = defaultLogLevel
	cfg.Stones.Blinks = []int{25, 75}
	cfg.MemorySpace = MemorySpaceConfig{Size: 71, Bytes: 1024}
	cfg.Race = RaceConfig{Cheats: []int{2, 20}, MinSaving: 100}
}

// Validate rejects values no solver can work with.
func (c *Config) Validate() error {
	if len(c.Stones.Blinks) == 0 {
		return fmt.Errorf("%w: stones.blinks is empty", ErrInvalid)
	}
	if len(c.Race.Cheats) == 0 {
		return fmt.Errorf("%w: race.cheats is empty", ErrInvalid)
	}
	for _, b := range c.Stones.Blinks {
		if b < 0 {
			return fmt.Errorf("%w: stones.blinks %d", ErrInvalid, b)
		}
	}
	if c.MemorySpace.Size < 1 {
		return fmt.Errorf("%w: memory_space.size %d", ErrInvalid, c.MemorySpace.Size)
	}
	if c.MemorySpace.Bytes < 0 {
		return fmt.Errorf("%w: memory_space.bytes %d", ErrInvalid, c.MemorySpace.Bytes)
	}
	for _, d := range c.Race.Cheats {
		if d < 1 {
			return fmt.Errorf("%w: race.cheats %d", ErrInvalid, d)
		}
	}
	if c.Race.MinSaving < 0 {
		return fmt.Errorf("%w: race.min_saving %d", ErrInvalid, c.Race.MinSaving)
	}

	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return fallback
}
