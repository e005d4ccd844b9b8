package puzzle

import (
	"strconv"

	"github.com/OffTheMark/AdventOfCode2024/geom"
	"github.com/OffTheMark/AdventOfCode2024/grid"
	"github.com/OffTheMark/AdventOfCode2024/memo"
	"github.com/OffTheMark/AdventOfCode2024/search"
)

// HoofIt scores hiking trails that climb one unit per step from 0 to 9.
type HoofIt struct{}

func (HoofIt) Day() int      { return 10 }
func (HoofIt) Title() string { return "Hoof It" }

func (HoofIt) Prepare(input string, env Env) ([]Part, error) {
	heights := grid.Parse(input, func(r rune) (int, bool) {
		if r < '0' || r > '9' {
			return 0, false
		}
		return int(r - '0'), true
	})
	heads := heights.FindAll(func(h int) bool { return h == 0 })
	env.Log.Debug().Int("trailheads", len(heads)).Msg("topographic map parsed")

	uphill := func(p geom.Point) []geom.Point {
		h, _ := heights.Get(p)
		var out []geom.Point
		for _, q := range p.Neighbors(geom.Conn4) {
			if hq, ok := heights.Get(q); ok && hq == h+1 {
				out = append(out, q)
			}
		}
		return out
	}

	return []Part{
		{Name: partName(0), Run: func() (string, error) {
			total := 0
			for _, head := range heads {
				res, err := search.Walk(head, uphill)
				if err != nil {
					return "", err
				}
				for _, p := range res.Order {
					if h, _ := heights.Get(p); h == 9 {
						total++
					}
				}
			}
			return strconv.Itoa(total), nil
		}},
		{Name: partName(1), Run: func() (string, error) {
			rating := memo.Recursive(func(self func(geom.Point) int, p geom.Point) int {
				if h, _ := heights.Get(p); h == 9 {
					return 1
				}
				sum := 0
				for _, q := range uphill(p) {
					sum += self(q)
				}
				return sum
			})
			total := 0
			for _, head := range heads {
				total += rating(head)
			}
			return strconv.Itoa(total), nil
		}},
	}, nil
}
