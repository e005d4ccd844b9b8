package puzzle

import (
	"strconv"

	"github.com/OffTheMark/AdventOfCode2024/geom"
	"github.com/OffTheMark/AdventOfCode2024/grid"
)

// CeresSearch counts XMAS in a word search, in every direction.
type CeresSearch struct{}

func (CeresSearch) Day() int      { return 4 }
func (CeresSearch) Title() string { return "Ceres Search" }

func (CeresSearch) Prepare(input string, env Env) ([]Part, error) {
	letters := grid.Parse(input, func(r rune) (rune, bool) {
		switch r {
		case 'X', 'M', 'A', 'S':
			return r, true
		}
		return 0, false
	})
	env.Log.Debug().Int("letters", letters.Len()).Msg("word search parsed")

	is := func(p geom.Point, want rune) bool {
		r, ok := letters.Get(p)
		return ok && r == want
	}

	return []Part{
		{Name: partName(0), Run: func() (string, error) {
			count := 0
			for p := range letters.Frame().Points() {
				if !is(p, 'X') {
					continue
				}
				for _, dir := range geom.All {
					if is(p.Applying(dir.MustScale(1)), 'M') &&
						is(p.Applying(dir.MustScale(2)), 'A') &&
						is(p.Applying(dir.MustScale(3)), 'S') {
						count++
					}
				}
			}
			return strconv.Itoa(count), nil
		}},
		{Name: partName(1), Run: func() (string, error) {
			count := 0
			for p := range letters.Frame().Points() {
				if is(p, 'A') && crossedMAS(p, is) {
					count++
				}
			}
			return strconv.Itoa(count), nil
		}},
	}, nil
}

// crossedMAS reports whether both diagonals through p read MAS in either direction.
func crossedMAS(p geom.Point, is func(geom.Point, rune) bool) bool {
	for _, t := range []geom.Translation{geom.UpLeft, geom.UpRight} {
		top, bottom := p.Applying(t), p.Applying(t.Reversed())
		if !(is(top, 'M') && is(bottom, 'S')) && !(is(top, 'S') && is(bottom, 'M')) {
			return false
		}
	}

	return true
}
