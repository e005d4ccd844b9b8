// Package search_test exercises uniform-cost search on small mazes.
// The mazes are parsed with the grid package: '#' is a wall, 'S' the start
// and 'E' the goal; every orthogonal move costs one unless a test says otherwise.
package search_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/OffTheMark/AdventOfCode2024/geom"
	"github.com/OffTheMark/AdventOfCode2024/grid"
	"github.com/OffTheMark/AdventOfCode2024/search"
)

// maze is a parsed test fixture.
type maze struct {
	open       *grid.Grid[rune]
	start, end geom.Point
}

func parseMaze(t *testing.T, raw string) maze {
	t.Helper()
	g := grid.Parse(raw, func(r rune) (rune, bool) { return r, r != '#' })
	start, _, ok := g.Find(func(r rune) bool { return r == 'S' })
	require.True(t, ok, "maze has no start")
	end, _, ok := g.Find(func(r rune) bool { return r == 'E' })
	require.True(t, ok, "maze has no end")

	return maze{open: g, start: start, end: end}
}

func (m maze) isGoal(p geom.Point) bool { return p == m.end }

// unit expands to every open orthogonal neighbour at cost one.
func (m maze) unit(n *search.Node[geom.Point]) []search.Step[geom.Point] {
	var out []search.Step[geom.Point]
	for _, q := range n.State.Neighbors(geom.Conn4) {
		if _, ok := m.open.Get(q); ok {
			out = append(out, search.Step[geom.Point]{State: q, Cost: 1})
		}
	}

	return out
}

// weighted charges the digit stored in the destination cell ('.' counts as 1).
func (m maze) weighted(n *search.Node[geom.Point]) []search.Step[geom.Point] {
	var out []search.Step[geom.Point]
	for _, q := range n.State.Neighbors(geom.Conn4) {
		r, ok := m.open.Get(q)
		if !ok {
			continue
		}
		cost := int64(1)
		if r >= '0' && r <= '9' {
			cost = int64(r - '0')
		}
		out = append(out, search.Step[geom.Point]{State: q, Cost: cost})
	}

	return out
}

const corridor = "S.#.\n" +
	"#.#.\n" +
	"#...\n" +
	"###E"

type SearchSuite struct {
	suite.Suite
}

func TestSearchSuite(t *testing.T) {
	suite.Run(t, new(SearchSuite))
}

// ------------------------------------------------------------------------
// Validation
// ------------------------------------------------------------------------

func (s *SearchSuite) TestNilFuncs() {
	m := parseMaze(s.T(), "SE")
	_, err := search.Search(m.start, nil, m.unit)
	s.Require().ErrorIs(err, search.ErrNilFunc)
	_, err = search.Search(m.start, m.isGoal, nil)
	s.Require().ErrorIs(err, search.ErrNilFunc)
}

func (s *SearchSuite) TestNegativeCost() {
	m := parseMaze(s.T(), "S.E")
	expand := func(n *search.Node[geom.Point]) []search.Step[geom.Point] {
		return []search.Step[geom.Point]{{State: n.State.Applying(geom.Right), Cost: -1}}
	}
	_, err := search.Search(m.start, m.isGoal, expand)
	s.Require().ErrorIs(err, search.ErrNegativeCost)
}

func (s *SearchSuite) TestNegativeMaxCostPanics() {
	s.Require().PanicsWithValue(search.ErrBadMaxCost.Error(), func() {
		search.WithMaxCost(-1)
	})
}

// ------------------------------------------------------------------------
// Single-best modes
// ------------------------------------------------------------------------

func (s *SearchSuite) TestOpenSquareCost() {
	m := parseMaze(s.T(), "S..\n...\n..E")
	res, err := search.Search(m.start, m.isGoal, m.unit)
	s.Require().NoError(err)
	s.Equal(int64(4), res.Cost)
	s.Nil(res.Path, "ModeCost leaves Path empty")
	s.Equal(1, res.PathCount())
}

func (s *SearchSuite) TestCorridorPath() {
	m := parseMaze(s.T(), corridor)
	res, err := search.Search(m.start, m.isGoal, m.unit, search.WithReturnPath())
	s.Require().NoError(err)
	s.Equal(int64(6), res.Cost)
	s.Equal([]geom.Point{
		{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 1, Y: 2},
		{X: 2, Y: 2}, {X: 3, Y: 2}, {X: 3, Y: 3},
	}, res.Path)
}

func (s *SearchSuite) TestStartIsGoal() {
	m := parseMaze(s.T(), "S..E")
	res, err := search.Search(m.start, func(geom.Point) bool { return true }, m.unit, search.WithReturnPath())
	s.Require().NoError(err)
	s.Zero(res.Cost)
	s.Equal([]geom.Point{m.start}, res.Path)
	s.Zero(res.Expanded)
}

func (s *SearchSuite) TestUnreachable() {
	m := parseMaze(s.T(), "S.#.\n..#E")
	for _, mode := range []search.Mode{search.ModeCost, search.ModePath, search.ModeAllMinimum} {
		_, err := search.Search(m.start, m.isGoal, m.unit, search.WithMode(mode))
		s.Require().ErrorIs(err, search.ErrNoPath, "mode %v", mode)
	}
}

func (s *SearchSuite) TestWeightedPathIsValid() {
	// The direct row costs 9+9+1; the detour below costs 1 per cell.
	m := parseMaze(s.T(), "S99E\n....")
	res, err := search.Search(m.start, m.isGoal, m.weighted, search.WithReturnPath())
	s.Require().NoError(err)
	s.Equal(int64(5), res.Cost)

	path := res.Path
	s.Require().NotEmpty(path)
	s.Equal(m.start, path[0])
	s.Equal(m.end, path[len(path)-1])

	var sum int64
	for i := 1; i < len(path); i++ {
		s.Equal(1, path[i-1].ManhattanDistance(path[i]), "step %d is not adjacent", i)
		r, _ := m.open.Get(path[i])
		if r >= '0' && r <= '9' {
			sum += int64(r - '0')
		} else {
			sum++
		}
	}
	s.Equal(res.Cost, sum)
}

func (s *SearchSuite) TestDeterministic() {
	m := parseMaze(s.T(), "S...\n....\n....\n...E")
	first, err := search.Search(m.start, m.isGoal, m.unit, search.WithReturnPath())
	s.Require().NoError(err)
	for i := 0; i < 5; i++ {
		again, err := search.Search(m.start, m.isGoal, m.unit, search.WithReturnPath())
		s.Require().NoError(err)
		s.Equal(first.Path, again.Path)
		s.Equal(first.Expanded, again.Expanded)
	}
}

func (s *SearchSuite) TestMaxCost() {
	m := parseMaze(s.T(), "S....E")
	_, err := search.Search(m.start, m.isGoal, m.unit, search.WithMaxCost(4))
	s.Require().ErrorIs(err, search.ErrNoPath)

	res, err := search.Search(m.start, m.isGoal, m.unit, search.WithMaxCost(5))
	s.Require().NoError(err)
	s.Equal(int64(5), res.Cost)
}

func (s *SearchSuite) TestOnExpand() {
	m := parseMaze(s.T(), "S..E")
	var calls int
	var last int64
	res, err := search.Search(m.start, m.isGoal, m.unit, search.WithOnExpand(func(depth int, cost int64) {
		calls++
		s.GreaterOrEqual(cost, last, "expansions must come in cost order")
		last = cost
		s.Equal(int(cost), depth)
	}))
	s.Require().NoError(err)
	s.Equal(res.Expanded, calls)
}

// ------------------------------------------------------------------------
// All-minimum mode
// ------------------------------------------------------------------------

func (s *SearchSuite) TestAllMinimumUniquePath() {
	m := parseMaze(s.T(), corridor)
	res, err := search.Search(m.start, m.isGoal, m.unit, search.WithMode(search.ModeAllMinimum))
	s.Require().NoError(err)
	s.Equal(int64(6), res.Cost)
	s.Equal(1, res.PathCount())
	s.Len(res.States(), 7)
}

func (s *SearchSuite) TestAllMinimumDoublesWithSecondRoute() {
	// Knocking out the wall at (2,0) opens a second route of equal length.
	m := parseMaze(s.T(), "S...\n#.#.\n#...\n###E")
	res, err := search.Search(m.start, m.isGoal, m.unit, search.WithMode(search.ModeAllMinimum))
	s.Require().NoError(err)
	s.Equal(int64(6), res.Cost)
	s.Equal(2, res.PathCount())
	s.Len(res.States(), 10)
	for _, g := range res.Goals {
		s.Equal(res.Cost, g.Cost)
		s.Equal(m.end, g.State)
	}
}

func (s *SearchSuite) TestAllMinimumOpenSquare() {
	m := parseMaze(s.T(), "S..\n...\n..E")
	res, err := search.Search(m.start, m.isGoal, m.unit, search.WithMode(search.ModeAllMinimum))
	s.Require().NoError(err)
	s.Equal(int64(4), res.Cost)
	s.Equal(6, res.PathCount()) // C(4,2)
	s.Len(res.States(), 9)
}

func (s *SearchSuite) TestAllMinimumIgnoresZeroCostCycles() {
	// A free self-loop at every cell must not multiply the path count.
	m := parseMaze(s.T(), "S.E")
	expand := func(n *search.Node[geom.Point]) []search.Step[geom.Point] {
		return append(m.unit(n), search.Step[geom.Point]{State: n.State, Cost: 0})
	}
	res, err := search.Search(m.start, m.isGoal, expand, search.WithMode(search.ModeAllMinimum))
	s.Require().NoError(err)
	s.Equal(int64(2), res.Cost)
	s.Equal(1, res.PathCount())
}

func (s *SearchSuite) TestAllMinimumAgreesWithCostMode() {
	m := parseMaze(s.T(), "S9..\n.1.9\n..9E")
	single, err := search.Search(m.start, m.isGoal, m.weighted)
	s.Require().NoError(err)
	all, err := search.Search(m.start, m.isGoal, m.weighted, search.WithMode(search.ModeAllMinimum))
	s.Require().NoError(err)
	s.Equal(single.Cost, all.Cost)
	s.GreaterOrEqual(all.PathCount(), 1)
}

// ------------------------------------------------------------------------
// Plain tests
// ------------------------------------------------------------------------

func TestModeString(t *testing.T) {
	cases := map[search.Mode]string{
		search.ModeCost:       "cost",
		search.ModePath:       "path",
		search.ModeAllMinimum: "all-minimum",
		search.Mode(9):        "Mode(9)",
	}
	for m, want := range cases {
		if got := m.String(); got != want {
			t.Errorf("Mode(%d).String() = %q; want %q", int(m), got, want)
		}
	}
}

func TestNodePathAndContains(t *testing.T) {
	m := parseMaze(t, "S..E")
	res, err := search.Search(m.start, m.isGoal, m.unit)
	require.NoError(t, err)

	goal := res.Goals[0]
	require.Equal(t, 3, goal.Depth())
	require.Equal(t, []geom.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 3, Y: 0}}, goal.Path())
	require.True(t, goal.Contains(geom.Point{X: 1, Y: 0}))
	require.False(t, goal.Contains(geom.Point{X: 5, Y: 0}))
	require.Nil(t, goal.Parent().Parent().Parent().Parent())
}

func TestDefaultOptions(t *testing.T) {
	o := search.DefaultOptions()
	if o.Mode != search.ModeCost || o.MaxCost != math.MaxInt64 || o.OnExpand == nil {
		t.Errorf("DefaultOptions() = %+v; want cost mode, no cap, non-nil hook", o)
	}
}
