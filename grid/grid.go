package grid

import (
	"fmt"
	"iter"
	"maps"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/OffTheMark/AdventOfCode2024/geom"
)

// New returns an empty grid over frame.
func New[V any](frame geom.Frame) *Grid[V] {
	return &Grid[V]{
		cells: make(map[geom.Point]V),
		frame: frame,
	}
}

// Parse decodes raw text into a grid anchored at geom.Zero.
//
// Behavior:
//  1. Trailing newlines are dropped, then the text is split on '\n'; a '\r'
//     ending a line is removed.
//  2. Rune x of line y is passed to decode; rejected runes leave no cell.
//  3. Width is the longest line in runes, height the number of lines,
//     including lines whose runes were all rejected.
//
// Empty input yields a zero-sized grid. Parse never fails.
// Complexity: O(W×H).
func Parse[V any](raw string, decode DecodeFunc[V]) *Grid[V] {
	raw = strings.TrimRight(raw, "\r\n")
	if raw == "" {
		return New[V](geom.Frame{})
	}

	lines := strings.Split(raw, "\n")
	cells := make(map[geom.Point]V)
	width := 0
	for y, line := range lines {
		line = strings.TrimSuffix(line, "\r")
		width = max(width, utf8.RuneCountInString(line))

		x := 0
		for _, r := range line {
			if v, ok := decode(r); ok {
				cells[geom.Point{X: x, Y: y}] = v
			}
			x++
		}
	}

	return &Grid[V]{
		cells: cells,
		frame: geom.Frame{Origin: geom.Zero, Width: width, Height: len(lines)},
	}
}

// Frame returns the grid bounds.
func (g *Grid[V]) Frame() geom.Frame { return g.frame }

// Len returns the number of stored cells.
func (g *Grid[V]) Len() int { return len(g.cells) }

// IsInside reports whether p lies within the frame.
func (g *Grid[V]) IsInside(p geom.Point) bool {
	return g.frame.Contains(p)
}

// Get returns the value at p and whether a cell is stored there.
func (g *Grid[V]) Get(p geom.Point) (V, bool) {
	v, ok := g.cells[p]
	return v, ok
}

// Set stores v at p. Points outside the frame yield ErrOutOfFrame.
func (g *Grid[V]) Set(p geom.Point, v V) error {
	if !g.frame.Contains(p) {
		return fmt.Errorf("%w: %v not in %d×%d at %v", ErrOutOfFrame, p, g.frame.Width, g.frame.Height, g.frame.Origin)
	}
	g.cells[p] = v

	return nil
}

// Remove deletes the cell at p, if any.
func (g *Grid[V]) Remove(p geom.Point) {
	delete(g.cells, p)
}

// All yields every stored cell. Order is unspecified; use Sorted when a
// deterministic order matters.
func (g *Grid[V]) All() iter.Seq2[geom.Point, V] {
	return func(yield func(geom.Point, V) bool) {
		for p, v := range g.cells {
			if !yield(p, v) {
				return
			}
		}
	}
}

// Sorted returns every stored cell in row-major order.
func (g *Grid[V]) Sorted() []Cell[V] {
	points := slices.SortedFunc(maps.Keys(g.cells), rowMajor)
	out := make([]Cell[V], len(points))
	for i, p := range points {
		out[i] = Cell[V]{Point: p, Value: g.cells[p]}
	}

	return out
}

// Find returns the first stored cell, in row-major order, whose value
// satisfies pred.
func (g *Grid[V]) Find(pred func(V) bool) (geom.Point, V, bool) {
	for _, c := range g.Sorted() {
		if pred(c.Value) {
			return c.Point, c.Value, true
		}
	}
	var zero V

	return geom.Point{}, zero, false
}

// FindAll returns every stored point whose value satisfies pred, row-major.
func (g *Grid[V]) FindAll(pred func(V) bool) []geom.Point {
	var out []geom.Point
	for _, c := range g.Sorted() {
		if pred(c.Value) {
			out = append(out, c.Point)
		}
	}

	return out
}

// Clone returns an independent copy of g.
func (g *Grid[V]) Clone() *Grid[V] {
	return &Grid[V]{
		cells: maps.Clone(g.cells),
		frame: g.frame,
	}
}

func rowMajor(a, b geom.Point) int {
	if a.Y != b.Y {
		return a.Y - b.Y
	}

	return a.X - b.X
}
