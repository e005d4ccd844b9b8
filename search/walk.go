package search

import "fmt"

// WalkOption configures Walk via functional arguments.
// An invalid option (e.g. negative depth) is recorded and surfaced as
// ErrOptionViolation when Walk is invoked.
type WalkOption func(*WalkOptions)

// WalkOptions holds parameters for Walk.
type WalkOptions struct {
	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 disables the limit.
	MaxDepth int

	// OnVisit is called when a state is dequeued. Returning an error aborts
	// the walk and propagates that error.
	OnVisit func(depth int) error

	err error
}

// DefaultWalkOptions returns no depth limit and a no-op hook.
func DefaultWalkOptions() WalkOptions {
	return WalkOptions{
		MaxDepth: 0,
		OnVisit:  func(int) error { return nil },
	}
}

// WithMaxDepth stops the walk at depth d (inclusive).
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) WalkOption {
	return func(o *WalkOptions) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithOnVisit registers a callback run as each state is dequeued.
func WithOnVisit(fn func(depth int) error) WalkOption {
	return func(o *WalkOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WalkResult holds the outcome of a Walk:
//   - Order:  states in visit sequence.
//   - Depth:  state → number of unit steps from the start.
//   - Parent: state → predecessor in the breadth-first tree.
type WalkResult[S comparable] struct {
	Order  []S
	Depth  map[S]int
	Parent map[S]S
}

// PathTo reconstructs the path from the start state to dest.
// It returns ErrNoPath if dest was not reached.
func (r *WalkResult[S]) PathTo(dest S) ([]S, error) {
	d, ok := r.Depth[dest]
	if !ok {
		return nil, fmt.Errorf("%w: %v not reached", ErrNoPath, dest)
	}
	path := make([]S, d+1)
	cur := dest
	for i := d; i >= 0; i-- {
		path[i] = cur
		cur = r.Parent[cur]
	}

	return path, nil
}

// Walk runs a breadth-first flood from start, where every edge costs one.
// Each state is visited once, at its minimum depth.
// Returns ErrNilFunc for a nil neighbours function, ErrOptionViolation for bad
// options, or any error returned by OnVisit; the result is nil whenever the
// error is not.
func Walk[S comparable](start S, neighbors func(S) []S, opts ...WalkOption) (*WalkResult[S], error) {
	if neighbors == nil {
		return nil, ErrNilFunc
	}
	o := DefaultWalkOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	w := &walker[S]{
		neighbors: neighbors,
		opts:      o,
		res: &WalkResult[S]{
			Depth:  make(map[S]int),
			Parent: make(map[S]S),
		},
	}
	w.enqueue(start, 0, nil)
	if err := w.loop(); err != nil {
		return nil, err
	}

	return w.res, nil
}

// walker encapsulates mutable Walk state.
type walker[S comparable] struct {
	neighbors func(S) []S
	opts      WalkOptions
	queue     []walkItem[S]
	res       *WalkResult[S]
}

type walkItem[S comparable] struct {
	state S
	depth int
}

func (w *walker[S]) enqueue(s S, d int, parent *S) {
	w.res.Depth[s] = d
	if parent != nil {
		w.res.Parent[s] = *parent
	}
	w.queue = append(w.queue, walkItem[S]{state: s, depth: d})
}

func (w *walker[S]) loop() error {
	for len(w.queue) > 0 {
		item := w.queue[0]
		w.queue = w.queue[1:]

		w.res.Order = append(w.res.Order, item.state)
		if err := w.opts.OnVisit(item.depth); err != nil {
			return fmt.Errorf("search: OnVisit error at %v: %w", item.state, err)
		}

		next := item.depth + 1
		if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
			continue
		}
		for _, nbr := range w.neighbors(item.state) {
			if _, seen := w.res.Depth[nbr]; !seen {
				w.enqueue(nbr, next, &item.state)
			}
		}
	}

	return nil
}
