package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/OffTheMark/AdventOfCode2024/internal/config"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	if err := config.LoadEnvFile(); err != nil {
		log.Warn().Err(err).Msg("ignoring .env file")
	}

	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		log.Fatal().Err(err).Msg("aoc2024 failed")
	}
}
