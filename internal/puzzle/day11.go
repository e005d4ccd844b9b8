package puzzle

import (
	"strconv"

	"github.com/OffTheMark/AdventOfCode2024/internal/input"
	"github.com/OffTheMark/AdventOfCode2024/memo"
)

// PlutonianPebbles counts stones after repeated blinks.
type PlutonianPebbles struct{}

func (PlutonianPebbles) Day() int      { return 11 }
func (PlutonianPebbles) Title() string { return "Plutonian Pebbles" }

type blink struct {
	stone, times int
}

func (PlutonianPebbles) Prepare(in string, env Env) ([]Part, error) {
	stones, err := input.Ints(in)
	if err != nil {
		return nil, err
	}

	// Shared by every part.
	count := memo.Recursive(func(self func(blink) int, b blink) int {
		if b.times == 0 {
			return 1
		}
		next := blink{times: b.times - 1}
		if b.stone == 0 {
			next.stone = 1
			return self(next)
		}
		if left, right, ok := splitDigits(b.stone); ok {
			return self(blink{left, next.times}) + self(blink{right, next.times})
		}
		next.stone = b.stone * 2024
		return self(next)
	})

	var parts []Part
	for i, times := range env.Config.Stones.Blinks {
		parts = append(parts, Part{Name: partName(i), Run: func() (string, error) {
			total := 0
			for _, s := range stones {
				total += count(blink{s, times})
			}
			env.Log.Debug().Int("blinks", times).Int("stones", total).Msg("blinked")
			return strconv.Itoa(total), nil
		}})
	}

	return parts, nil
}

// splitDigits halves a number with an even count of decimal digits.
func splitDigits(n int) (int, int, bool) {
	digits := 0
	for v := n; v > 0; v /= 10 {
		digits++
	}
	if digits == 0 || digits%2 != 0 {
		return 0, 0, false
	}
	pow := 1
	for i := 0; i < digits/2; i++ {
		pow *= 10
	}

	return n / pow, n % pow, true
}
