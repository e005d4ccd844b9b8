package search

import (
	"container/heap"
	"fmt"
)

// Search runs a uniform-cost search from start until a goal is reached,
// according to the functional options (WithMode, WithReturnPath, WithMaxCost…).
//
// Returns:
//
//   - res: Cost, one goal node (or all of them in ModeAllMinimum), Path in
//     ModePath, and the number of expanded nodes.
//   - err: ErrNilFunc for missing callbacks, ErrNegativeCost if an expansion
//     misbehaves, ErrNoPath if no goal is reachable.
//
// Preconditions and validation (in order):
//  1. isGoal and expand must be non-nil (ErrNilFunc).
//  2. Every Step.Cost produced by expand must be ≥ 0 (ErrNegativeCost).
//
// Complexity:
//
//   - Time:  O((S + E) log S)
//   - Space: O(S + E)
func Search[S comparable](start S, isGoal GoalFunc[S], expand ExpandFunc[S], opts ...Option) (*Result[S], error) {
	// 1) Build options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate callbacks
	if isGoal == nil || expand == nil {
		return nil, ErrNilFunc
	}

	// 3) Run
	r := &runner[S]{
		options: cfg,
		isGoal:  isGoal,
		expand:  expand,
		best:    make(map[S]int64),
		pq:      make(nodePQ[S], 0, 64),
		res:     &Result[S]{},
	}
	r.init(start)
	if err := r.process(); err != nil {
		return nil, err
	}

	// 4) Nothing reached: report it, never guess.
	if len(r.res.Goals) == 0 {
		return nil, fmt.Errorf("%w (expanded %d nodes)", ErrNoPath, r.res.Expanded)
	}

	if cfg.Mode == ModePath {
		r.res.Path = r.res.Goals[0].Path()
	}

	return r.res, nil
}

// runner holds the mutable state for a single Search execution.
type runner[S comparable] struct {
	options Options
	isGoal  GoalFunc[S]
	expand  ExpandFunc[S]
	best    map[S]int64 // state → lowest cost admitted so far
	pq      nodePQ[S]
	res     *Result[S]
	found   bool   // a goal has been popped (ModeAllMinimum)
	seq     uint64 // next push sequence number
}

// init seeds the heap with the start node at cost 0.
func (r *runner[S]) init(start S) {
	heap.Init(&r.pq)
	r.best[start] = 0
	r.push(&Node[S]{State: start})
}

func (r *runner[S]) push(n *Node[S]) {
	n.seq = r.seq
	r.seq++
	heap.Push(&r.pq, n)
}

// process pops nodes in cost order until the search is settled.
//
// Loop termination conditions:
//
//   - The heap becomes empty.
//   - Single-best modes: the first goal is popped.
//   - ModeAllMinimum: a popped cost exceeds the minimum goal cost.
//   - The popped cost exceeds MaxCost.
func (r *runner[S]) process() error {
	all := r.options.Mode == ModeAllMinimum

	for r.pq.Len() > 0 {
		n := heap.Pop(&r.pq).(*Node[S])

		// 1) Skip entries superseded by a strictly cheaper arrival.
		if n.Cost > r.best[n.State] {
			continue
		}

		// 2) Everything left in the heap is at least as expensive.
		if n.Cost > r.options.MaxCost {
			break
		}
		if all && r.found && n.Cost > r.res.Cost {
			break
		}

		// 3) Goal handling.
		if r.isGoal(n.State) {
			r.res.Cost = n.Cost
			r.res.Goals = append(r.res.Goals, n)
			if !all {
				return nil
			}
			r.found = true
			continue
		}

		// 4) Expand.
		if err := r.relax(n); err != nil {
			return err
		}
	}

	return nil
}

// relax expands n and admits every candidate that is not dominated.
func (r *runner[S]) relax(n *Node[S]) error {
	all := r.options.Mode == ModeAllMinimum

	r.res.Expanded++
	r.options.OnExpand(n.depth, n.Cost)

	for _, st := range r.expand(n) {
		if st.Cost < 0 {
			return fmt.Errorf("%w: %v→%v cost=%d", ErrNegativeCost, n.State, st.State, st.Cost)
		}

		c := n.Cost + st.Cost
		if c > r.options.MaxCost || c < n.Cost {
			continue // over the cap, or the sum overflowed
		}

		prev, seen := r.best[st.State]
		if all {
			if r.found && c > r.res.Cost {
				continue
			}
			if seen && c > prev {
				continue
			}
			// Equal cost through a zero-cost cycle back onto our own path.
			if st.Cost == 0 && n.Contains(st.State) {
				continue
			}
		} else if seen && c >= prev {
			continue
		}

		r.best[st.State] = c
		r.push(&Node[S]{
			State:  st.State,
			Cost:   c,
			parent: n,
			depth:  n.depth + 1,
		})
	}

	return nil
}

// nodePQ is a min-heap of nodes ordered by cost, then push order.
// Outdated entries stay in the heap and are skipped when popped
// ("lazy decrease-key").
type nodePQ[S comparable] []*Node[S]

func (pq nodePQ[S]) Len() int { return len(pq) }

func (pq nodePQ[S]) Less(i, j int) bool {
	if pq[i].Cost != pq[j].Cost {
		return pq[i].Cost < pq[j].Cost
	}

	return pq[i].seq < pq[j].seq
}

func (pq nodePQ[S]) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ[S]) Push(x any) { *pq = append(*pq, x.(*Node[S])) }

func (pq *nodePQ[S]) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
