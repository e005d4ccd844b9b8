// Package input holds the participle grammars for the puzzle inputs that are
// not plain character grids.
package input

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"

	"github.com/OffTheMark/AdventOfCode2024/geom"
)

// ErrEmpty is returned when an input holds no records at all.
var ErrEmpty = errors.New("input: no records")

// Coordinate is one "x,y" line.
type Coordinate struct {
	X int `parser:"@Int ','"`
	Y int `parser:"@Int"`
}

// Point converts the coordinate to a geom.Point.
func (c Coordinate) Point() geom.Point { return geom.Point{X: c.X, Y: c.Y} }

// Numbers is a whitespace-separated list of integers.
type Numbers struct {
	Values []int `parser:"@Int*"`
}

// Towels is the towel-pattern header followed by the designs to build.
type Towels struct {
	Patterns []string `parser:"@Ident (',' @Ident)*"`
	Designs  []string `parser:"@Ident*"`
}

var (
	coordinateParser = participle.MustBuild[Coordinate]()
	numbersParser    = participle.MustBuild[Numbers]()
	towelsParser     = participle.MustBuild[Towels]()
)

// Lines splits raw into lines, dropping the trailing newline and any '\r'.
func Lines(raw string) []string {
	raw = strings.TrimRight(raw, "\r\n")
	if raw == "" {
		return nil
	}
	lines := strings.Split(raw, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, "\r")
	}

	return lines
}

// Coordinates parses one coordinate per line. Lines that do not parse are
// skipped; skipped reports how many.
func Coordinates(raw string) (points []geom.Point, skipped int) {
	for _, line := range Lines(raw) {
		if strings.TrimSpace(line) == "" {
			skipped++
			continue
		}
		c, err := coordinateParser.ParseString("", line)
		if err != nil {
			skipped++
			continue
		}
		points = append(points, c.Point())
	}

	return points, skipped
}

// Ints parses a whitespace-separated list of integers.
func Ints(raw string) ([]int, error) {
	n, err := numbersParser.ParseString("", raw)
	if err != nil {
		return nil, fmt.Errorf("input: numbers: %w", err)
	}
	if len(n.Values) == 0 {
		return nil, ErrEmpty
	}

	return n.Values, nil
}

// ParseTowels parses the towel patterns and designs.
func ParseTowels(raw string) (*Towels, error) {
	t, err := towelsParser.ParseString("", raw)
	if err != nil {
		return nil, fmt.Errorf("input: towels: %w", err)
	}

	return t, nil
}
