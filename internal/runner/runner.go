// Package runner prepares a solver, runs each of its parts and reports the
// answers with timings.
package runner

//go:generate mockgen -destination=mocks/runner.go -package=mocks . Solver,Reporter

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/OffTheMark/AdventOfCode2024/internal/puzzle"
)

// Solver prepares a puzzle input into runnable parts.
type Solver interface {
	Day() int
	Title() string
	Prepare(input string, env puzzle.Env) ([]puzzle.Part, error)
}

// Reporter receives titles, answers and failures.
type Reporter interface {
	Title(day int, title string)
	Answer(part, answer string, elapsed time.Duration)
	Failure(part string, err error)
}

// Runner executes solvers against their inputs.
type Runner struct {
	reporter Reporter
	env      puzzle.Env
	logger   *zerolog.Logger
	now      func() time.Time
}

func New(reporter Reporter, env puzzle.Env, logger *zerolog.Logger) *Runner {
	return &Runner{
		reporter: reporter,
		env:      env,
		logger:   logger,
		now:      time.Now,
	}
}

// Run prepares s on input and runs every part. A failing part is reported and
// the remaining parts still run; the first part error is returned.
func (r *Runner) Run(s Solver, input string) error {
	day := s.Day()
	r.reporter.Title(day, s.Title())

	started := r.now()
	parts, err := s.Prepare(input, r.env)
	if err != nil {
		r.logger.Error().Err(err).Int("day", day).Msg("prepare failed")
		return fmt.Errorf("day %d: prepare: %w", day, err)
	}
	r.logger.Debug().Int("day", day).Int("parts", len(parts)).Dur("elapsed", r.now().Sub(started)).Msg("input prepared")

	var first error
	for _, p := range parts {
		started := r.now()
		answer, err := p.Run()
		elapsed := r.now().Sub(started)
		if err != nil {
			r.logger.Warn().Err(err).Int("day", day).Str("part", p.Name).Msg("part failed")
			r.reporter.Failure(p.Name, err)
			if first == nil {
				first = fmt.Errorf("day %d: %s: %w", day, p.Name, err)
			}
			continue
		}
		r.logger.Info().Int("day", day).Str("part", p.Name).Str("answer", answer).Dur("elapsed", elapsed).Msg("part solved")
		r.reporter.Answer(p.Name, answer, elapsed)
	}

	return first
}
