package geom

import (
	"errors"
	"slices"

	"golang.org/x/exp/constraints"
)

// Sentinel errors for geom operations.
var (
	// ErrOverflow indicates that scaling a translation overflowed int.
	ErrOverflow = errors.New("geom: translation overflow")
	// ErrNegativeExtent indicates a frame with negative width or height.
	ErrNegativeExtent = errors.New("geom: frame width and height must be non-negative")
)

// Connectivity selects the neighbourhood used around a point:
// orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// Offsets returns the translations for the connectivity, clockwise from Up.
// Each call returns a fresh slice the caller may modify.
func (c Connectivity) Offsets() []Translation {
	if c == Conn8 {
		return slices.Clone(all[:])
	}

	return slices.Clone(orthogonal[:])
}

func abs[T constraints.Signed](v T) T {
	if v < 0 {
		return -v
	}

	return v
}
