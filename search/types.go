package search

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors returned by Search and Walk.
var (
	// ErrNilFunc indicates a nil goal predicate, expansion or neighbour function.
	ErrNilFunc = errors.New("search: goal and expansion functions must be non-nil")

	// ErrNoPath indicates that the frontier emptied before any goal was reached.
	ErrNoPath = errors.New("search: no path to goal")

	// ErrNegativeCost indicates that an expansion returned a negative step cost.
	ErrNegativeCost = errors.New("search: negative step cost encountered")

	// ErrBadMaxCost indicates that MaxCost was set to a negative value.
	ErrBadMaxCost = errors.New("search: MaxCost must be non-negative")

	// ErrOptionViolation is returned when an invalid WalkOption is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")
)

// Mode selects what Search reports.
type Mode int

const (
	// ModeCost reports the minimum total cost only.
	ModeCost Mode = iota

	// ModePath reports the minimum cost plus one witnessing path.
	ModePath

	// ModeAllMinimum reports every goal node achieving the minimum cost.
	ModeAllMinimum
)

func (m Mode) String() string {
	switch m {
	case ModeCost:
		return "cost"
	case ModePath:
		return "path"
	case ModeAllMinimum:
		return "all-minimum"
	}

	return fmt.Sprintf("Mode(%d)", int(m))
}

// Step is one expansion: the next state and the non-negative cost to reach it.
type Step[S comparable] struct {
	State S
	Cost  int64
}

// GoalFunc reports whether a state is a goal.
type GoalFunc[S comparable] func(state S) bool

// ExpandFunc lists the steps available from a node. It receives the node, not
// just its state, so rules like "never revisit a cell on this path" can call
// n.Contains.
type ExpandFunc[S comparable] func(n *Node[S]) []Step[S]

// Options configures Search.
//
// Mode     – what to report (ModeCost by default).
// MaxCost  – nodes costing more than this are neither admitted nor expanded.
//
//	Must be ≥ 0. Default is math.MaxInt64 (no cap).
//
// OnExpand – called once per expanded node with its path depth and cost.
type Options struct {
	Mode     Mode
	MaxCost  int64
	OnExpand func(depth int, cost int64)
}

// Option represents a functional option for configuring Search.
type Option func(*Options)

// WithMode selects the reporting mode.
func WithMode(m Mode) Option {
	return func(o *Options) {
		o.Mode = m
	}
}

// WithReturnPath is shorthand for WithMode(ModePath).
func WithReturnPath() Option {
	return WithMode(ModePath)
}

// WithMaxCost caps the explored cost. Negative values panic with ErrBadMaxCost.
func WithMaxCost(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			panic(ErrBadMaxCost.Error())
		}
		o.MaxCost = max
	}
}

// WithOnExpand registers a hook run before each node is expanded.
func WithOnExpand(fn func(depth int, cost int64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// DefaultOptions returns ModeCost, no cost cap and a no-op hook.
func DefaultOptions() Options {
	return Options{
		Mode:     ModeCost,
		MaxCost:  math.MaxInt64,
		OnExpand: func(int, int64) {},
	}
}

// Result holds the outcome of a successful Search.
//
//   - Cost:     the minimum total cost to a goal.
//   - Path:     start … goal states (ModePath only).
//   - Goals:    the goal node (single modes) or every goal node at Cost (ModeAllMinimum).
//   - Expanded: number of nodes expanded.
type Result[S comparable] struct {
	Cost     int64
	Path     []S
	Goals    []*Node[S]
	Expanded int
}

// PathCount returns the number of distinct optimal paths found.
func (r *Result[S]) PathCount() int {
	return len(r.Goals)
}

// States returns the union of the states on every reported path.
func (r *Result[S]) States() map[S]struct{} {
	out := make(map[S]struct{})
	for _, g := range r.Goals {
		for n := g; n != nil; n = n.parent {
			out[n.State] = struct{}{}
		}
	}

	return out
}
