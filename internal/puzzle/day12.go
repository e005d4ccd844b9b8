package puzzle

import (
	"strconv"

	"github.com/OffTheMark/AdventOfCode2024/geom"
	"github.com/OffTheMark/AdventOfCode2024/grid"
)

// GardenGroups prices fencing for every region of same-plant plots.
type GardenGroups struct{}

func (GardenGroups) Day() int      { return 12 }
func (GardenGroups) Title() string { return "Garden Groups" }

func (GardenGroups) Prepare(input string, env Env) ([]Part, error) {
	plots := grid.Parse(input, func(r rune) (rune, bool) { return r, true })
	regions := plots.Regions(geom.Conn4, func(a, b rune) bool { return a == b })
	env.Log.Debug().Int("regions", len(regions)).Msg("garden parsed")

	price := func(measure func(in map[geom.Point]struct{}) int) func() (string, error) {
		return func() (string, error) {
			total := 0
			for _, region := range regions {
				in := make(map[geom.Point]struct{}, len(region))
				for _, p := range region {
					in[p] = struct{}{}
				}
				total += len(region) * measure(in)
			}
			return strconv.Itoa(total), nil
		}
	}

	return []Part{
		{Name: partName(0), Run: price(perimeter)},
		{Name: partName(1), Run: price(sides)},
	}, nil
}

func perimeter(in map[geom.Point]struct{}) int {
	n := 0
	for p := range in {
		for _, q := range p.Neighbors(geom.Conn4) {
			if _, ok := in[q]; !ok {
				n++
			}
		}
	}

	return n
}

// sides counts straight fence runs, which equals the number of corners.
func sides(in map[geom.Point]struct{}) int {
	has := func(p geom.Point) bool { _, ok := in[p]; return ok }
	corners := 0
	for p := range in {
		d := geom.North
		for range 4 {
			a, b := d.Translation(), d.TurnRight().Translation()
			sa, sb := has(p.Applying(a)), has(p.Applying(b))
			diag := has(p.Applying(geom.Translation{DX: a.DX + b.DX, DY: a.DY + b.DY}))
			if (!sa && !sb) || (sa && sb && !diag) {
				corners++
			}
			d = d.TurnRight()
		}
	}

	return corners
}
