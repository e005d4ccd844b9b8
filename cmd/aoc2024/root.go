package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/OffTheMark/AdventOfCode2024/internal/config"
	"github.com/OffTheMark/AdventOfCode2024/internal/logger"
	"github.com/OffTheMark/AdventOfCode2024/internal/puzzle"
	"github.com/OffTheMark/AdventOfCode2024/internal/report"
	"github.com/OffTheMark/AdventOfCode2024/internal/runner"
)

// app holds what the persistent flags resolve to.
type app struct {
	configPath string
	logLevel   string
	noColor    bool

	cfg *config.Config
	out io.Writer
}

func newRootCmd(out io.Writer) *cobra.Command {
	a := &app{out: out}

	root := &cobra.Command{
		Use:           "aoc2024",
		Short:         "Solve Advent of Code 2024 grid and search puzzles",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(a.configPath)
			if err != nil {
				return err
			}
			if a.logLevel != "" {
				cfg.LogLevel = a.logLevel
			}
			if a.noColor {
				off := false
				cfg.Color = &off
			}
			a.cfg = cfg
			return nil
		},
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "YAML config file (default $AOC_CONFIG or aoc.yaml)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error")
	root.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "disable coloured output")

	for _, s := range puzzle.Registry() {
		root.AddCommand(a.dayCmd(s))
	}

	return root
}

// dayCmd builds the subcommand that runs one solver on an input file ("-" for stdin).
func (a *app) dayCmd(s puzzle.Solver) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "day" + strconv.Itoa(s.Day()) + " <input>",
		Short: s.Title(),
		Args:  cobra.ExactArgs(1),
	}

	var override func(cmd *cobra.Command)
	switch s.Day() {
	case 18:
		var size, bytes int
		cmd.Flags().IntVar(&size, "size", 0, "memory space width and height (default from config, 71)")
		cmd.Flags().IntVar(&bytes, "bytes", 0, "bytes fallen before part 1 (default from config, 1024)")
		override = func(cmd *cobra.Command) {
			if cmd.Flags().Changed("size") {
				a.cfg.MemorySpace.Size = size
			}
			if cmd.Flags().Changed("bytes") {
				a.cfg.MemorySpace.Bytes = bytes
			}
		}
	case 20:
		var minSaving int
		cmd.Flags().IntVar(&minSaving, "min-saving", 0, "minimum picoseconds a cheat must save (default from config, 100)")
		override = func(cmd *cobra.Command) {
			if cmd.Flags().Changed("min-saving") {
				a.cfg.Race.MinSaving = minSaving
			}
		}
	}

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		if override != nil {
			override(cmd)
			if err := a.cfg.Validate(); err != nil {
				return err
			}
		}
		input, err := readInput(cmd.InOrStdin(), args[0])
		if err != nil {
			return err
		}

		l := logger.Console(a.cfg.LogLevel, a.cfg.ColorEnabled())
		env := puzzle.Env{Config: a.cfg, Log: l}
		r := runner.New(report.New(a.out, a.cfg.ColorEnabled()), env, &l)
		log.Debug().Str("input", args[0]).Int("day", s.Day()).Msg("running")

		return r.Run(s, input)
	}

	return cmd
}

func readInput(stdin io.Reader, path string) (string, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return "", fmt.Errorf("read input %s: %w", path, err)
	}

	return string(data), nil
}
