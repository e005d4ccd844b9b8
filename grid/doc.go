// Package grid provides a sparse 2D grid: a mapping from geom.Point to a cell
// value plus the bounding geom.Frame.
//
// What:
//
//   - Grid[V] stores only the cells a decoder accepted; a missing key is the
//     background ("empty") cell, distinct from every valid V.
//   - Parse builds a grid from text, one line per row and one rune per column,
//     through a caller-supplied decoder that may reject runes.
//   - Get never distinguishes "outside the frame" from "inside but empty";
//     callers that care check IsInside separately.
//   - Regions groups stored cells into connected components.
//
// Why:
//
//   - Puzzle maps are mostly walls or mostly floor; storing only the
//     interesting cells keeps lookups O(1) without a dense slice per row.
//   - Parsing is permissive: unknown runes are dropped, never an error.
//
// Ownership:
//
//	A grid belongs to the computation that built it. Clone returns a full copy;
//	mutating the copy (clearing a start marker, dropping corrupted bytes) never
//	affects the original.
//
// Complexity:
//
//   - Parse:   O(W×H) time, O(stored cells) memory.
//   - Get/Set: O(1) expected.
//   - Regions: O(N×d) where N = stored cells and d = 4 or 8.
//
// Errors:
//
//   - ErrOutOfFrame: Set received a point outside the frame.
package grid
