package grid

import (
	"errors"

	"github.com/OffTheMark/AdventOfCode2024/geom"
)

// Sentinel errors for grid operations.
var (
	// ErrOutOfFrame indicates a write outside the grid's frame.
	ErrOutOfFrame = errors.New("grid: point outside frame")
)

// DecodeFunc maps an input rune to a cell value. Returning false omits the
// cell from the grid.
type DecodeFunc[V any] func(r rune) (V, bool)

// Grid is a sparse mapping from point to value bounded by a frame.
// Every stored key lies within the frame.
type Grid[V any] struct {
	cells map[geom.Point]V
	frame geom.Frame
}

// Cell pairs a point with its stored value.
type Cell[V any] struct {
	Point geom.Point
	Value V
}
