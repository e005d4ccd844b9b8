package puzzle

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/OffTheMark/AdventOfCode2024/geom"
	"github.com/OffTheMark/AdventOfCode2024/grid"
)

// WarehouseWoes pushes boxes around a warehouse, then again in a warehouse
// twice as wide.
type WarehouseWoes struct{}

func (WarehouseWoes) Day() int      { return 15 }
func (WarehouseWoes) Title() string { return "Warehouse Woes" }

// Warehouse tiles. The robot is tracked apart from the grid.
const (
	tileWall     = '#'
	tileBox      = 'O'
	tileBoxLeft  = '['
	tileBoxRight = ']'
	tileRobot    = '@'
)

var moveFacings = map[rune]geom.Direction{
	'^': geom.North,
	'>': geom.East,
	'v': geom.South,
	'<': geom.West,
}

func (WarehouseWoes) Prepare(input string, env Env) ([]Part, error) {
	input = strings.ReplaceAll(input, "\r\n", "\n")
	layout, rest, ok := strings.Cut(input, "\n\n")
	if !ok {
		return nil, fmt.Errorf("%w: warehouse map and moves must be separated by a blank line", ErrMalformedInput)
	}

	warehouse := grid.Parse(layout, func(r rune) (rune, bool) {
		return r, r == tileWall || r == tileBox || r == tileRobot
	})
	robot, _, found := warehouse.Find(func(r rune) bool { return r == tileRobot })
	if !found {
		return nil, fmt.Errorf("%w: robot %q", ErrMissingMarker, tileRobot)
	}
	warehouse.Remove(robot)

	var moves []geom.Direction
	for _, r := range rest {
		if d, ok := moveFacings[r]; ok {
			moves = append(moves, d)
		}
	}
	env.Log.Debug().Int("boxes", warehouse.Len()).Int("moves", len(moves)).Msg("warehouse parsed")

	return []Part{
		{Name: partName(0), Run: func() (string, error) {
			floor := warehouse.Clone()
			at := robot
			for _, d := range moves {
				at = pushLine(floor, at, d.Translation())
			}
			logWarehouse(env, floor, at)
			return strconv.Itoa(gpsSum(floor, tileBox)), nil
		}},
		{Name: partName(1), Run: func() (string, error) {
			floor, err := inflate(warehouse)
			if err != nil {
				return "", err
			}
			at := geom.Point{X: widen(warehouse.Frame(), robot.X), Y: robot.Y}
			for _, d := range moves {
				if at, err = pushWide(floor, at, d.Translation()); err != nil {
					return "", err
				}
			}
			logWarehouse(env, floor, at)
			return strconv.Itoa(gpsSum(floor, tileBoxLeft)), nil
		}},
	}, nil
}

// pushLine moves the robot one step, shoving the row of single boxes ahead of
// it when there is free floor behind the row. It returns the robot's position.
func pushLine(floor *grid.Grid[rune], at geom.Point, t geom.Translation) geom.Point {
	next := at.Applying(t)
	behind := next
	for {
		r, occupied := floor.Get(behind)
		if !occupied {
			break
		}
		if r == tileWall {
			return at
		}
		behind = behind.Applying(t)
	}
	if !floor.IsInside(behind) {
		return at
	}
	if behind != next {
		// The first box jumps to the free cell; the row between is unchanged.
		floor.Remove(next)
		_ = floor.Set(behind, tileBox)
	}

	return next
}

// pushWide moves the robot one step in the inflated warehouse, where a box
// pushed vertically can shove two boxes above or below it.
func pushWide(floor *grid.Grid[rune], at geom.Point, t geom.Translation) (geom.Point, error) {
	// Breadth-first over the cells that must move; rows farther from the
	// robot always come later in the queue.
	queue := []geom.Point{at}
	queued := map[geom.Point]bool{at: true}
	enqueue := func(p geom.Point) {
		if !queued[p] {
			queued[p] = true
			queue = append(queue, p)
		}
	}
	for i := 0; i < len(queue); i++ {
		q := queue[i].Applying(t)
		r, occupied := floor.Get(q)
		if !occupied {
			if !floor.IsInside(q) {
				return at, nil
			}
			continue
		}
		switch r {
		case tileWall:
			return at, nil
		case tileBoxLeft:
			enqueue(q)
			enqueue(q.Applying(geom.Right))
		case tileBoxRight:
			enqueue(q)
			enqueue(q.Applying(geom.Left))
		}
	}

	for i := len(queue) - 1; i >= 1; i-- {
		p := queue[i]
		r, _ := floor.Get(p)
		floor.Remove(p)
		if err := floor.Set(p.Applying(t), r); err != nil {
			return at, err
		}
	}

	return at.Applying(t), nil
}

// inflate doubles the width of the warehouse: walls become two walls and a box
// becomes a left and a right half.
func inflate(narrow *grid.Grid[rune]) (*grid.Grid[rune], error) {
	f := narrow.Frame()
	wide := grid.New[rune](geom.Frame{Origin: f.Origin, Width: f.Width * 2, Height: f.Height})
	for _, c := range narrow.Sorted() {
		left := geom.Point{X: widen(f, c.Point.X), Y: c.Point.Y}
		right := left.Applying(geom.Right)
		halves := [2]rune{tileWall, tileWall}
		if c.Value == tileBox {
			halves = [2]rune{tileBoxLeft, tileBoxRight}
		}
		if err := wide.Set(left, halves[0]); err != nil {
			return nil, err
		}
		if err := wide.Set(right, halves[1]); err != nil {
			return nil, err
		}
	}

	return wide, nil
}

func widen(f geom.Frame, x int) int {
	return f.MinX() + (x-f.MinX())*2
}

// gpsSum adds 100×y + x over every cell holding tile.
func gpsSum(floor *grid.Grid[rune], tile rune) int {
	sum := 0
	for p, r := range floor.All() {
		if r == tile {
			sum += 100*p.Y + p.X
		}
	}

	return sum
}

func logWarehouse(env Env, floor *grid.Grid[rune], robot geom.Point) {
	e := env.Log.Debug()
	if !e.Enabled() {
		return
	}
	shown := floor.Clone()
	_ = shown.Set(robot, tileRobot)
	e.Str("warehouse", "\n"+shown.Render(func(r rune) rune { return r }, '.')).Msg("final layout")
}
