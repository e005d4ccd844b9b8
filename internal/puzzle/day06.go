package puzzle

import (
	"fmt"
	"strconv"

	"github.com/OffTheMark/AdventOfCode2024/geom"
	"github.com/OffTheMark/AdventOfCode2024/grid"
)

// GuardGallivant follows a guard who turns right at every obstacle.
type GuardGallivant struct{}

func (GuardGallivant) Day() int      { return 6 }
func (GuardGallivant) Title() string { return "Guard Gallivant" }

var guardFacings = map[rune]geom.Direction{
	'^': geom.North,
	'>': geom.East,
	'v': geom.South,
	'<': geom.West,
}

type guard struct {
	At     geom.Point
	Facing geom.Direction
}

func (GuardGallivant) Prepare(input string, env Env) ([]Part, error) {
	lab := grid.Parse(input, func(r rune) (rune, bool) {
		_, isGuard := guardFacings[r]
		return r, r == '#' || isGuard
	})
	at, r, ok := lab.Find(func(r rune) bool { _, isGuard := guardFacings[r]; return isGuard })
	if !ok {
		return nil, fmt.Errorf("%w: guard", ErrMissingMarker)
	}
	start := guard{At: at, Facing: guardFacings[r]}

	obstacles := lab.Clone()
	obstacles.Remove(at)

	route, _ := patrol(obstacles, start)
	env.Log.Debug().Int("obstacles", obstacles.Len()).Int("visited", len(route)).Msg("patrol traced")

	return []Part{
		{Name: partName(0), Run: func() (string, error) {
			return strconv.Itoa(len(route)), nil
		}},
		{Name: partName(1), Run: func() (string, error) {
			// Only cells on the original route can change it.
			loops := 0
			for p := range route {
				if p == start.At {
					continue
				}
				blocked := obstacles.Clone()
				if err := blocked.Set(p, '#'); err != nil {
					return "", err
				}
				if _, looped := patrol(blocked, start); looped {
					loops++
				}
			}
			return strconv.Itoa(loops), nil
		}},
	}, nil
}

// patrol walks the guard until it leaves the frame or repeats a state.
// It returns the visited cells and whether the walk loops.
func patrol(obstacles *grid.Grid[rune], g guard) (map[geom.Point]struct{}, bool) {
	visited := make(map[geom.Point]struct{})
	seen := make(map[guard]struct{})
	for obstacles.IsInside(g.At) {
		if _, again := seen[g]; again {
			return visited, true
		}
		seen[g] = struct{}{}
		visited[g.At] = struct{}{}

		ahead := g.At.Applying(g.Facing.Translation())
		if _, blocked := obstacles.Get(ahead); blocked {
			g.Facing = g.Facing.TurnRight()
			continue
		}
		g.At = ahead
	}

	return visited, false
}
