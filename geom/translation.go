package geom

import (
	"fmt"
	"math"
	"slices"
)

// Translation is a movement vector.
type Translation struct {
	DX, DY int
}

// The eight canonical unit translations.
var (
	Up        = Translation{DX: 0, DY: -1}
	UpRight   = Translation{DX: 1, DY: -1}
	Right     = Translation{DX: 1, DY: 0}
	DownRight = Translation{DX: 1, DY: 1}
	Down      = Translation{DX: 0, DY: 1}
	DownLeft  = Translation{DX: -1, DY: 1}
	Left      = Translation{DX: -1, DY: 0}
	UpLeft    = Translation{DX: -1, DY: -1}
)

var (
	orthogonal = [4]Translation{Up, Right, Down, Left}
	all        = [8]Translation{Up, UpRight, Right, DownRight, Down, DownLeft, Left, UpLeft}
)

// Orthogonal lists Up, Right, Down, Left in clockwise order.
// It is a copy; writing to it changes nothing else in the package.
var Orthogonal = slices.Clone(orthogonal[:])

// All lists the eight canonical translations clockwise from Up.
// It is a copy; writing to it changes nothing else in the package.
var All = slices.Clone(all[:])

// Scale multiplies both components by k. It returns ErrOverflow when either
// product does not fit in an int instead of silently wrapping.
func (t Translation) Scale(k int) (Translation, error) {
	dx, ok := mulInt(t.DX, k)
	if !ok {
		return Translation{}, fmt.Errorf("%w: %v × %d", ErrOverflow, t, k)
	}
	dy, ok := mulInt(t.DY, k)
	if !ok {
		return Translation{}, fmt.Errorf("%w: %v × %d", ErrOverflow, t, k)
	}

	return Translation{DX: dx, DY: dy}, nil
}

// MustScale is Scale for callers that know k is small. It panics on overflow.
func (t Translation) MustScale(k int) Translation {
	s, err := t.Scale(k)
	if err != nil {
		panic(err)
	}

	return s
}

// Reversed returns the translation pointing the opposite way.
func (t Translation) Reversed() Translation {
	return Translation{DX: -t.DX, DY: -t.DY}
}

// String renders the translation as "(dx,dy)".
func (t Translation) String() string {
	return fmt.Sprintf("(%d,%d)", t.DX, t.DY)
}

// mulInt returns a*b and whether the product fits in an int.
func mulInt(a, b int) (int, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	// MinInt * -1 is the one product the division check cannot see.
	if (a == -1 && b == math.MinInt) || (b == -1 && a == math.MinInt) {
		return 0, false
	}
	p := a * b
	if p/b != a {
		return 0, false
	}

	return p, true
}
