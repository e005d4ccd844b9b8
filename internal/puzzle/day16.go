package puzzle

import (
	"strconv"

	"github.com/zyedidia/generic/mapset"

	"github.com/OffTheMark/AdventOfCode2024/geom"
	"github.com/OffTheMark/AdventOfCode2024/grid"
	"github.com/OffTheMark/AdventOfCode2024/search"
)

// Move costs in the reindeer maze.
const (
	stepCost int64 = 1
	turnCost int64 = 1000
)

// ReindeerMaze scores the cheapest walk from S to E when turning is expensive.
type ReindeerMaze struct{}

func (ReindeerMaze) Day() int      { return 16 }
func (ReindeerMaze) Title() string { return "Reindeer Maze" }

// reindeer is a search state: where the reindeer stands and where it faces.
type reindeer struct {
	At     geom.Point
	Facing geom.Direction
}

func (ReindeerMaze) Prepare(input string, env Env) ([]Part, error) {
	open := maze(input)
	start, end, err := markers(open, 'S', 'E')
	if err != nil {
		return nil, err
	}

	run := func(mode search.Mode) (*search.Result[reindeer], error) {
		res, err := search.Search(
			reindeer{At: start, Facing: geom.East},
			func(r reindeer) bool { return r.At == end },
			reindeerMoves(open),
			search.WithMode(mode),
		)
		if err != nil {
			return nil, err
		}
		env.Log.Debug().Stringer("mode", mode).Int("expanded", res.Expanded).Int("paths", res.PathCount()).Msg("maze searched")
		return res, nil
	}

	return []Part{
		{Name: partName(0), Run: func() (string, error) {
			res, err := run(search.ModeCost)
			if err != nil {
				return "", err
			}
			return strconv.FormatInt(res.Cost, 10), nil
		}},
		{Name: partName(1), Run: func() (string, error) {
			res, err := run(search.ModeAllMinimum)
			if err != nil {
				return "", err
			}
			return strconv.Itoa(seats(res).Size()), nil
		}},
	}, nil
}

func reindeerMoves(open *grid.Grid[rune]) search.ExpandFunc[reindeer] {
	return func(n *search.Node[reindeer]) []search.Step[reindeer] {
		r := n.State
		steps := []search.Step[reindeer]{
			{State: reindeer{At: r.At, Facing: r.Facing.TurnLeft()}, Cost: turnCost},
			{State: reindeer{At: r.At, Facing: r.Facing.TurnRight()}, Cost: turnCost},
		}
		ahead := r.At.Applying(r.Facing.Translation())
		if _, ok := open.Get(ahead); ok {
			steps = append(steps, search.Step[reindeer]{State: reindeer{At: ahead, Facing: r.Facing}, Cost: stepCost})
		}
		return steps
	}
}

// seats collects the tiles on any optimal path.
func seats(res *search.Result[reindeer]) mapset.Set[geom.Point] {
	tiles := mapset.New[geom.Point]()
	for st := range res.States() {
		tiles.Put(st.At)
	}

	return tiles
}
