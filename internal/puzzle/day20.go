package puzzle

import (
	"fmt"
	"strconv"

	"github.com/OffTheMark/AdventOfCode2024/geom"
	"github.com/OffTheMark/AdventOfCode2024/search"
)

// RaceCondition counts cheats that pass through walls and save enough time.
type RaceCondition struct{}

func (RaceCondition) Day() int      { return 20 }
func (RaceCondition) Title() string { return "Race Condition" }

func (RaceCondition) Prepare(input string, env Env) ([]Part, error) {
	track := maze(input)
	start, end, err := markers(track, 'S', 'E')
	if err != nil {
		return nil, err
	}

	neighbors := func(p geom.Point) []geom.Point {
		var out []geom.Point
		for _, q := range p.Neighbors(geom.Conn4) {
			if _, ok := track.Get(q); ok {
				out = append(out, q)
			}
		}
		return out
	}
	fromStart, err := search.Walk(start, neighbors)
	if err != nil {
		return nil, err
	}
	toEnd, err := search.Walk(end, neighbors)
	if err != nil {
		return nil, err
	}

	baseline, err := search.Search(start,
		func(p geom.Point) bool { return p == end },
		func(n *search.Node[geom.Point]) []search.Step[geom.Point] {
			next := neighbors(n.State)
			steps := make([]search.Step[geom.Point], len(next))
			for i, q := range next {
				steps[i] = search.Step[geom.Point]{State: q, Cost: 1}
			}
			return steps
		},
	)
	if err != nil {
		return nil, fmt.Errorf("puzzle: race track: %w", err)
	}
	env.Log.Debug().Int64("baseline", baseline.Cost).Int("track", len(fromStart.Order)).Msg("race track measured")

	race := raceTrack{
		fromStart: fromStart.Depth,
		toEnd:     toEnd.Depth,
		baseline:  int(baseline.Cost),
	}
	minSaving := env.Config.Race.MinSaving

	var parts []Part
	for i, duration := range env.Config.Race.Cheats {
		parts = append(parts, Part{Name: partName(i), Run: func() (string, error) {
			return strconv.Itoa(race.cheats(duration, minSaving)), nil
		}})
	}

	return parts, nil
}

type raceTrack struct {
	fromStart map[geom.Point]int
	toEnd     map[geom.Point]int
	baseline  int
}

// cheats counts (entry, exit) pairs no more than duration steps apart, ignoring
// walls, whose shortcut saves at least minSaving picoseconds.
func (r raceTrack) cheats(duration, minSaving int) int {
	count := 0
	for a, da := range r.fromStart {
		for dy := -duration; dy <= duration; dy++ {
			span := duration - abs(dy)
			for dx := -span; dx <= span; dx++ {
				b := geom.Point{X: a.X + dx, Y: a.Y + dy}
				db, ok := r.toEnd[b]
				if !ok {
					continue
				}
				if r.baseline-(da+abs(dx)+abs(dy)+db) >= minSaving {
					count++
				}
			}
		}
	}

	return count
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
