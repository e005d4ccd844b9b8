// Package geom provides the integer 2D coordinate model shared by the grid
// and search packages.
//
// What:
//
//   - Point: an (X, Y) pair with value equality, usable as a map key.
//   - Translation: a (DX, DY) movement vector with exact scaling and reversal.
//   - Frame: an axis-aligned rectangle (origin + width × height) with inclusive
//     bounds and row/column iteration.
//   - Direction: the four facings with left/right turns.
//   - Connectivity: Conn4 (orthogonal) or Conn8 (orthogonal + diagonal) neighbourhoods.
//
// Coordinates follow screen convention: X grows to the right, Y grows downwards,
// so Up is (0, -1).
//
// Overflow:
//
//	Coordinates are plain ints. Puzzle inputs stay well inside a few hundred cells
//	per axis, so additions never overflow in practice. Scaling a translation by a
//	large factor (projecting a ray to a boundary) is checked: Scale returns
//	ErrOverflow instead of wrapping.
//
// Errors:
//
//   - ErrOverflow:       Translation.Scale would not fit in an int.
//   - ErrNegativeExtent: NewFrame received a negative width or height.
package geom
