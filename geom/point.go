package geom

import "fmt"

// Point is an integer coordinate. Points compare and hash by value.
type Point struct {
	X, Y int
}

// Zero is the origin.
var Zero = Point{}

// Apply shifts p in place by t.
func (p *Point) Apply(t Translation) {
	p.X += t.DX
	p.Y += t.DY
}

// Applying returns a copy of p shifted by t.
func (p Point) Applying(t Translation) Point {
	p.Apply(t)
	return p
}

// ManhattanDistance returns |dx| + |dy| between p and q.
func (p Point) ManhattanDistance(q Point) int {
	return abs(p.X-q.X) + abs(p.Y-q.Y)
}

// Neighbors returns the points adjacent to p under conn, clockwise from Up.
func (p Point) Neighbors(conn Connectivity) []Point {
	offsets := conn.Offsets()
	out := make([]Point, len(offsets))
	for i, t := range offsets {
		out[i] = p.Applying(t)
	}

	return out
}

// String renders p as "x,y", the format puzzle answers use.
func (p Point) String() string {
	return fmt.Sprintf("%d,%d", p.X, p.Y)
}
