package search_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OffTheMark/AdventOfCode2024/geom"
	"github.com/OffTheMark/AdventOfCode2024/search"
)

func (m maze) neighbors(p geom.Point) []geom.Point {
	var out []geom.Point
	for _, q := range p.Neighbors(geom.Conn4) {
		if _, ok := m.open.Get(q); ok {
			out = append(out, q)
		}
	}

	return out
}

func TestWalk_Depths(t *testing.T) {
	m := parseMaze(t, corridor)
	res, err := search.Walk(m.start, m.neighbors)
	require.NoError(t, err)

	assert.Equal(t, 0, res.Depth[m.start])
	assert.Equal(t, 6, res.Depth[m.end])
	assert.Equal(t, m.start, res.Order[0])
	assert.Len(t, res.Order, m.open.Len())

	path, err := res.PathTo(m.end)
	require.NoError(t, err)
	assert.Len(t, path, 7)
	assert.Equal(t, m.start, path[0])
	assert.Equal(t, m.end, path[6])
}

func TestWalk_OrderIsByDepth(t *testing.T) {
	m := parseMaze(t, "S...\n....\n...E")
	res, err := search.Walk(m.start, m.neighbors)
	require.NoError(t, err)
	for i := 1; i < len(res.Order); i++ {
		if res.Depth[res.Order[i-1]] > res.Depth[res.Order[i]] {
			t.Errorf("Order[%d] depth %d follows depth %d", i, res.Depth[res.Order[i]], res.Depth[res.Order[i-1]])
		}
	}
}

func TestWalk_MaxDepth(t *testing.T) {
	m := parseMaze(t, "S....E")
	res, err := search.Walk(m.start, m.neighbors, search.WithMaxDepth(2))
	require.NoError(t, err)
	assert.Len(t, res.Order, 3)

	_, err = res.PathTo(m.end)
	assert.ErrorIs(t, err, search.ErrNoPath)
}

func TestWalk_InvalidOptions(t *testing.T) {
	res, err := search.Walk(geom.Zero, func(geom.Point) []geom.Point { return nil }, search.WithMaxDepth(-1))
	assert.ErrorIs(t, err, search.ErrOptionViolation)
	assert.Nil(t, res)

	res, err = search.Walk[geom.Point](geom.Zero, nil)
	assert.ErrorIs(t, err, search.ErrNilFunc)
	assert.Nil(t, res)
}

func TestWalk_OnVisitAborts(t *testing.T) {
	m := parseMaze(t, "S....E")
	stop := errors.New("stop")
	visits := 0
	res, err := search.Walk(m.start, m.neighbors, search.WithOnVisit(func(depth int) error {
		visits++
		if depth == 3 {
			return stop
		}
		return nil
	}))
	require.ErrorIs(t, err, stop)
	assert.Nil(t, res, "no partial result alongside an error")
	assert.Equal(t, 4, visits)
}
