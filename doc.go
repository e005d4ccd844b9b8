// Package adventofcode2024 is a small toolkit for grid puzzles, plus the
// solvers and command-line runner built on it.
//
// What is in here?
//
//	geom/    — points, translations, frames and facings on an integer plane
//	grid/    — a sparse grid: only meaningful cells are stored, the frame
//	           remembers the full extent; parsing, regions and rendering
//	search/  — uniform-cost search over any comparable state, with three
//	           reporting modes (cost, cost+path, every optimal path), plus a
//	           breadth-first Walk for unit-cost distance fields
//	memo/    — memoized plain and self-recursive functions
//
//	internal/puzzle  — daily solvers (word search, guard patrol, antennas,
//	                   trails, pebbles, gardens, warehouse, reindeer maze,
//	                   falling bytes, towels, race cheats)
//	internal/runner  — runs a solver's parts and reports answers with timings
//	cmd/aoc2024      — the cobra CLI: `aoc2024 day16 input.txt`
//
// Quick start:
//
//	open := grid.Parse(input, func(r rune) (rune, bool) { return r, r != '#' })
//	res, err := search.Search(start, isGoal, expand, search.WithReturnPath())
//	if errors.Is(err, search.ErrNoPath) {
//		// unreachable: a normal outcome, not a crash
//	}
//
// Nothing here is safe for concurrent use.
package adventofcode2024
