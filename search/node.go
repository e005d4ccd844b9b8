package search

// Node is a search node: a state, the accumulated cost to reach it, and a
// pointer to the node it was expanded from. Nodes are immutable once created.
type Node[S comparable] struct {
	State S
	Cost  int64

	parent *Node[S]
	depth  int
	seq    uint64 // push order; keeps heap order stable among equal costs
}

// Parent returns the predecessor node, or nil for the start node.
func (n *Node[S]) Parent() *Node[S] { return n.parent }

// Depth returns the number of steps from the start node.
func (n *Node[S]) Depth() int { return n.depth }

// Path returns the states from the start node to n, inclusive.
// Complexity: O(Depth).
func (n *Node[S]) Path() []S {
	path := make([]S, n.depth+1)
	for cur, i := n, n.depth; cur != nil; cur, i = cur.parent, i-1 {
		path[i] = cur.State
	}

	return path
}

// Contains reports whether s appears on the path from the start node to n.
// Complexity: O(Depth).
func (n *Node[S]) Contains(s S) bool {
	for cur := n; cur != nil; cur = cur.parent {
		if cur.State == s {
			return true
		}
	}

	return false
}
