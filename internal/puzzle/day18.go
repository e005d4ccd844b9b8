package puzzle

import (
	"errors"
	"fmt"
	"sort"
	"strconv"

	"github.com/OffTheMark/AdventOfCode2024/geom"
	"github.com/OffTheMark/AdventOfCode2024/grid"
	"github.com/OffTheMark/AdventOfCode2024/internal/input"
	"github.com/OffTheMark/AdventOfCode2024/search"
)

// RAMRun finds a way across memory while bytes fall onto it.
type RAMRun struct{}

func (RAMRun) Day() int      { return 18 }
func (RAMRun) Title() string { return "RAM Run" }

func (RAMRun) Prepare(in string, env Env) ([]Part, error) {
	bytes, skipped := input.Coordinates(in)
	if skipped > 0 {
		env.Log.Debug().Int("skipped", skipped).Msg("unparsable coordinate lines")
	}
	space := geom.Square(env.Config.MemorySpace.Size)
	prefix := min(env.Config.MemorySpace.Bytes, len(bytes))

	return []Part{
		{Name: partName(0), Run: func() (string, error) {
			res, err := escape(space, bytes[:prefix])
			if err != nil {
				return "", err
			}
			env.Log.Debug().Int("expanded", res.Expanded).Int("length", len(res.Path)).Msg("escape path")
			return strconv.FormatInt(res.Cost, 10), nil
		}},
		{Name: partName(1), Run: func() (string, error) {
			var failed error
			checks := 0
			// Smallest count of fallen bytes that seals the exit.
			k := sort.Search(len(bytes)+1, func(k int) bool {
				checks++
				_, err := escape(space, bytes[:k])
				if err != nil && !errors.Is(err, search.ErrNoPath) {
					failed = err
				}
				return err != nil
			})
			env.Log.Debug().Int("checks", checks).Int("bytes", k).Msg("blocking byte search")
			if failed != nil {
				return "", failed
			}
			if k == 0 || k > len(bytes) {
				return "", fmt.Errorf("%w: exit never sealed", ErrNoAnswer)
			}
			return bytes[k-1].String(), nil
		}},
	}, nil
}

// escape searches from the top-left to the bottom-right corner of space with
// the given bytes corrupted.
func escape(space geom.Frame, corrupted []geom.Point) (*search.Result[geom.Point], error) {
	walls := grid.New[struct{}](space)
	for _, p := range corrupted {
		// Bytes outside the space fall harmlessly.
		_ = walls.Set(p, struct{}{})
	}
	if _, blocked := walls.Get(space.Origin); blocked {
		return nil, fmt.Errorf("%w: start %v is corrupted", search.ErrNoPath, space.Origin)
	}
	exit := geom.Point{X: space.MaxX(), Y: space.MaxY()}

	return search.Search(
		space.Origin,
		func(p geom.Point) bool { return p == exit },
		func(n *search.Node[geom.Point]) []search.Step[geom.Point] {
			var out []search.Step[geom.Point]
			for _, q := range n.State.Neighbors(geom.Conn4) {
				if _, blocked := walls.Get(q); !blocked && space.Contains(q) {
					out = append(out, search.Step[geom.Point]{State: q, Cost: 1})
				}
			}
			return out
		},
		search.WithReturnPath(),
	)
}
