// Package search provides a uniform-cost (Dijkstra) search over arbitrary
// comparable states, plus a breadth-first Walk for unit-cost floods.
//
// Overview:
//
//   - The caller supplies a start state, a goal predicate and an expansion
//     function returning the next states with their non-negative incremental
//     costs. Nothing about grids is assumed: a state may be a geom.Point, or a
//     point plus a facing, or a point plus a "shortcut used" flag.
//   - Search pops nodes from a binary min-heap keyed by accumulated cost and
//     prunes candidates dominated by the best-cost table.
//   - Each node keeps a pointer to its parent instead of a copy of its history;
//     paths are rebuilt by walking parents once, and an expansion rule can
//     still ask whether a state already appears on the node's own path.
//
// Modes:
//
//   - ModeCost:       return the minimum cost of any goal state.
//   - ModePath:       additionally return one witnessing path (start … goal).
//   - ModeAllMinimum: return every goal node whose cost equals the minimum,
//     i.e. one terminal node per distinct optimal path.
//
// Admission (dominance pruning):
//
//   - Single-best modes admit a candidate only when it is strictly cheaper
//     than the best recorded cost for its state (<). The first goal popped is
//     optimal because the heap is a min-heap over non-negative weights.
//   - ModeAllMinimum admits candidates whose cost is not worse (≤) than the
//     best recorded cost, so equal-cost arrivals by different routes survive.
//     After the first goal pop the running minimum is fixed; equal-cost goals
//     keep being collected, and the search stops once popped costs exceed it.
//
// Termination:
//
//   - An empty frontier without a goal yields ErrNoPath; callers decide
//     whether that is an answer ("the exit is blocked") or a failure.
//   - In ModeAllMinimum a zero-cost step back onto a state already on the
//     node's own path is refused, so zero-cost cycles cannot loop forever.
//
// Complexity:
//
//   - Time:  O((S + E) log S) for S reachable states and E expansions.
//   - Space: O(S + E) nodes in the worst case under lazy decrease-key.
//   - ModeAllMinimum may hold one node per optimal route prefix; that grows
//     combinatorially on open maps with many ties. Fine for puzzle-sized
//     inputs, not for production-scale graphs.
//
// Errors:
//
//   - ErrNilFunc:         goal predicate or expansion function is nil.
//   - ErrNoPath:          no goal state reachable (within MaxCost).
//   - ErrNegativeCost:    an expansion produced a negative step cost.
//   - ErrBadMaxCost:      WithMaxCost received a negative cap (panics).
//   - ErrOptionViolation: Walk received an invalid option.
//
// Thread safety:
//
//	A search owns its heap and best-cost table; concurrent searches are safe as
//	long as the expansion function itself only reads shared data.
package search
