package puzzle

import (
	"strconv"
	"strings"

	"github.com/OffTheMark/AdventOfCode2024/internal/input"
	"github.com/OffTheMark/AdventOfCode2024/memo"
)

// LinenLayout counts the ways towel patterns spell each design.
type LinenLayout struct{}

func (LinenLayout) Day() int      { return 19 }
func (LinenLayout) Title() string { return "Linen Layout" }

func (LinenLayout) Prepare(in string, env Env) ([]Part, error) {
	towels, err := input.ParseTowels(in)
	if err != nil {
		return nil, err
	}
	env.Log.Debug().Int("patterns", len(towels.Patterns)).Int("designs", len(towels.Designs)).Msg("towels parsed")

	ways := memo.Recursive(func(self func(string) int, design string) int {
		if design == "" {
			return 1
		}
		n := 0
		for _, p := range towels.Patterns {
			if rest, ok := strings.CutPrefix(design, p); ok {
				n += self(rest)
			}
		}
		return n
	})

	return []Part{
		{Name: partName(0), Run: func() (string, error) {
			possible := 0
			for _, d := range towels.Designs {
				if ways(d) > 0 {
					possible++
				}
			}
			return strconv.Itoa(possible), nil
		}},
		{Name: partName(1), Run: func() (string, error) {
			total := 0
			for _, d := range towels.Designs {
				total += ways(d)
			}
			return strconv.Itoa(total), nil
		}},
	}, nil
}
