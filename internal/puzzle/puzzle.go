// Package puzzle holds the daily solvers built on the geom, grid, search and
// memo packages.
package puzzle

import (
	"errors"
	"fmt"
	"slices"

	"github.com/rs/zerolog"

	"github.com/OffTheMark/AdventOfCode2024/geom"
	"github.com/OffTheMark/AdventOfCode2024/grid"
	"github.com/OffTheMark/AdventOfCode2024/internal/config"
)

var (
	// ErrMissingMarker indicates a grid without its start or end marker.
	ErrMissingMarker = errors.New("puzzle: missing marker")

	// ErrUnknownDay indicates a day with no registered solver.
	ErrUnknownDay = errors.New("puzzle: unknown day")

	// ErrNoAnswer indicates an input for which the question has no answer.
	ErrNoAnswer = errors.New("puzzle: no answer")

	// ErrMalformedInput indicates an input missing a required section.
	ErrMalformedInput = errors.New("puzzle: malformed input")
)

// Env carries the settings and logger a solver runs with.
type Env struct {
	Config *config.Config
	Log    zerolog.Logger
}

// DefaultEnv returns the default configuration and a no-op logger.
func DefaultEnv() Env {
	return Env{Config: config.Default(), Log: zerolog.Nop()}
}

// Part is one runnable half of a puzzle.
type Part struct {
	Name string
	Run  func() (string, error)
}

// Solver parses a puzzle input once and returns its parts.
type Solver interface {
	Day() int
	Title() string
	Prepare(input string, env Env) ([]Part, error)
}

// Registry returns every solver, ordered by day.
func Registry() []Solver {
	solvers := []Solver{
		CeresSearch{},
		GuardGallivant{},
		ResonantCollinearity{},
		HoofIt{},
		PlutonianPebbles{},
		GardenGroups{},
		WarehouseWoes{},
		ReindeerMaze{},
		RAMRun{},
		LinenLayout{},
		RaceCondition{},
	}
	slices.SortFunc(solvers, func(a, b Solver) int { return a.Day() - b.Day() })

	return solvers
}

// Lookup returns the solver registered for day.
func Lookup(day int) (Solver, error) {
	for _, s := range Registry() {
		if s.Day() == day {
			return s, nil
		}
	}

	return nil, fmt.Errorf("%w: %d", ErrUnknownDay, day)
}

func partName(i int) string { return fmt.Sprintf("Part %d", i+1) }

// markers finds the start and end cells of a maze.
func markers(g *grid.Grid[rune], start, end rune) (geom.Point, geom.Point, error) {
	s, _, ok := g.Find(func(r rune) bool { return r == start })
	if !ok {
		return geom.Point{}, geom.Point{}, fmt.Errorf("%w: start %q", ErrMissingMarker, start)
	}
	e, _, ok := g.Find(func(r rune) bool { return r == end })
	if !ok {
		return geom.Point{}, geom.Point{}, fmt.Errorf("%w: end %q", ErrMissingMarker, end)
	}

	return s, e, nil
}

// maze parses a '#'-walled grid; only open cells are stored.
func maze(input string) *grid.Grid[rune] {
	return grid.Parse(input, func(r rune) (rune, bool) { return r, r != '#' })
}
