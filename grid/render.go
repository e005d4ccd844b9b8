package grid

import (
	"strings"

	"github.com/OffTheMark/AdventOfCode2024/geom"
)

// Render draws the frame row by row, encoding stored cells with encode and
// background cells with background.
func (g *Grid[V]) Render(encode func(V) rune, background rune) string {
	var b strings.Builder
	b.Grow(g.frame.Area() + g.frame.Height)

	for y := range g.frame.Rows() {
		for x := range g.frame.Columns() {
			if v, ok := g.cells[geom.Point{X: x, Y: y}]; ok {
				b.WriteRune(encode(v))
			} else {
				b.WriteRune(background)
			}
		}
		b.WriteByte('\n')
	}

	return b.String()
}
