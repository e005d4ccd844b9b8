package geom

import (
	"fmt"
	"iter"
)

// Frame is an axis-aligned rectangle: Origin plus Width × Height cells.
// A zero Width or Height describes an empty frame that contains no point.
type Frame struct {
	Origin        Point
	Width, Height int
}

// NewFrame validates the extent and returns the frame.
func NewFrame(origin Point, width, height int) (Frame, error) {
	if width < 0 || height < 0 {
		return Frame{}, fmt.Errorf("%w: %d×%d", ErrNegativeExtent, width, height)
	}

	return Frame{Origin: origin, Width: width, Height: height}, nil
}

// Square returns a size × size frame anchored at Zero.
// It panics with ErrNegativeExtent when size < 0.
func Square(size int) Frame {
	f, err := NewFrame(Zero, size, size)
	if err != nil {
		panic(err)
	}

	return f
}

// MinX returns the smallest valid column.
func (f Frame) MinX() int { return f.Origin.X }

// MinY returns the smallest valid row.
func (f Frame) MinY() int { return f.Origin.Y }

// MaxX returns the largest valid column (inclusive).
func (f Frame) MaxX() int { return f.Origin.X + f.Width - 1 }

// MaxY returns the largest valid row (inclusive).
func (f Frame) MaxY() int { return f.Origin.Y + f.Height - 1 }

// Area returns Width × Height.
func (f Frame) Area() int { return f.Width * f.Height }

// Contains reports whether p lies inside the frame.
func (f Frame) Contains(p Point) bool {
	return p.X >= f.MinX() && p.X <= f.MaxX() && p.Y >= f.MinY() && p.Y <= f.MaxY()
}

// Columns yields every valid X from MinX to MaxX.
func (f Frame) Columns() iter.Seq[int] {
	return span(f.MinX(), f.Width)
}

// Rows yields every valid Y from MinY to MaxY.
func (f Frame) Rows() iter.Seq[int] {
	return span(f.MinY(), f.Height)
}

// Points yields every point of the frame in row-major order.
func (f Frame) Points() iter.Seq[Point] {
	return func(yield func(Point) bool) {
		for y := range f.Rows() {
			for x := range f.Columns() {
				if !yield(Point{X: x, Y: y}) {
					return
				}
			}
		}
	}
}

func span(from, n int) iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := 0; i < n; i++ {
			if !yield(from + i) {
				return
			}
		}
	}
}
