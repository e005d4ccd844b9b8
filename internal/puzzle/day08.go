package puzzle

import (
	"errors"
	"strconv"
	"unicode"

	"github.com/zyedidia/generic/mapset"

	"github.com/OffTheMark/AdventOfCode2024/geom"
	"github.com/OffTheMark/AdventOfCode2024/grid"
)

// ResonantCollinearity finds antinodes of same-frequency antenna pairs.
type ResonantCollinearity struct{}

func (ResonantCollinearity) Day() int      { return 8 }
func (ResonantCollinearity) Title() string { return "Resonant Collinearity" }

func (ResonantCollinearity) Prepare(input string, env Env) ([]Part, error) {
	antennas := grid.Parse(input, func(r rune) (rune, bool) {
		return r, unicode.IsLetter(r) || unicode.IsDigit(r)
	})
	frame := antennas.Frame()

	byFrequency := make(map[rune][]geom.Point)
	for _, c := range antennas.Sorted() {
		byFrequency[c.Value] = append(byFrequency[c.Value], c.Point)
	}
	env.Log.Debug().Int("antennas", antennas.Len()).Int("frequencies", len(byFrequency)).Msg("antenna map parsed")

	// pairs calls fn for every unordered pair of same-frequency antennas.
	pairs := func(fn func(a, b geom.Point)) {
		for _, points := range byFrequency {
			for i, a := range points {
				for _, b := range points[i+1:] {
					fn(a, b)
				}
			}
		}
	}

	return []Part{
		{Name: partName(0), Run: func() (string, error) {
			antinodes := mapset.New[geom.Point]()
			pairs(func(a, b geom.Point) {
				d := geom.Translation{DX: b.X - a.X, DY: b.Y - a.Y}
				for _, p := range []geom.Point{b.Applying(d), a.Applying(d.Reversed())} {
					if frame.Contains(p) {
						antinodes.Put(p)
					}
				}
			})
			return strconv.Itoa(antinodes.Size()), nil
		}},
		{Name: partName(1), Run: func() (string, error) {
			antinodes := mapset.New[geom.Point]()
			var failed error
			pairs(func(a, b geom.Point) {
				step := reduce(geom.Translation{DX: b.X - a.X, DY: b.Y - a.Y})
				for _, dir := range []geom.Translation{step, step.Reversed()} {
					if err := ray(frame, a, dir, antinodes.Put); err != nil && failed == nil {
						failed = err
					}
				}
			})
			if failed != nil {
				return "", failed
			}
			return strconv.Itoa(antinodes.Size()), nil
		}},
	}, nil
}

// ray visits origin + k×step for k = 0, 1, … while the point stays in frame.
// A scale that overflows int has necessarily left the frame.
func ray(frame geom.Frame, origin geom.Point, step geom.Translation, visit func(geom.Point)) error {
	for k := 0; ; k++ {
		t, err := step.Scale(k)
		if errors.Is(err, geom.ErrOverflow) {
			return nil
		}
		if err != nil {
			return err
		}
		p := origin.Applying(t)
		if !frame.Contains(p) {
			return nil
		}
		visit(p)
	}
}

// reduce divides a translation by the gcd of its components.
func reduce(t geom.Translation) geom.Translation {
	g := gcd(abs(t.DX), abs(t.DY))
	if g == 0 {
		return t
	}

	return geom.Translation{DX: t.DX / g, DY: t.DY / g}
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}

	return a
}
