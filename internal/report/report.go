// Package report prints puzzle titles, answers and timings.
package report

import (
	"fmt"
	"io"
	"time"

	"github.com/vyevs/ansi"
)

// Printer writes a report to Out. When Color is set, titles and answers are
// wrapped in ANSI colour codes.
type Printer struct {
	Out   io.Writer
	Color bool
}

// New returns a Printer writing to w.
func New(w io.Writer, color bool) *Printer {
	return &Printer{Out: w, Color: color}
}

// Title prints the "Day N: Title" banner.
func (p *Printer) Title(day int, title string) {
	fmt.Fprintln(p.Out, p.paint("cyan", fmt.Sprintf("Day %d: %s", day, title)))
}

// Answer prints one part's answer and how long it took.
func (p *Printer) Answer(part, answer string, elapsed time.Duration) {
	fmt.Fprintf(p.Out, "  %s: %s (%s)\n", part, p.paint("green", answer), elapsed.Round(time.Microsecond))
}

// Failure prints a part that returned an error.
func (p *Printer) Failure(part string, err error) {
	fmt.Fprintf(p.Out, "  %s: %s\n", part, p.paint("red", err.Error()))
}

func (p *Printer) paint(color, text string) string {
	if !p.Color {
		return text
	}

	return ansi.FGColorName(color) + text + ansi.Clear
}
