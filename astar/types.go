// Package astar defines the Heuristic type, search options, sentinel
// errors, and the Result returned by Find.
package astar

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by Find.
var (
	// ErrNilGraph indicates a nil *core.Graph was passed to Find.
	ErrNilGraph = errors.New("astar: graph is nil")

	// ErrEmptyVertexID indicates the start or goal ID is empty.
	ErrEmptyVertexID = errors.New("astar: start and goal IDs must be non-empty")

	// ErrNoPath indicates the goal is unreachable from the start.
	// This is a normal outcome the caller must branch on, not a failure;
	// the accompanying Result reports Cost == math.Inf(1).
	ErrNoPath = errors.New("astar: no path between start and goal")

	// ErrBudgetExceeded indicates the expansion budget set via
	// WithMaxExpand ran out before the goal was popped.
	ErrBudgetExceeded = errors.New("astar: expansion budget exceeded")

	// ErrBadMaxExpand indicates WithMaxExpand received a negative value.
	ErrBadMaxExpand = errors.New("astar: MaxExpand must be non-negative")
)

// Heuristic estimates the remaining cost from the given vertex to the
// goal the search was invoked with. Estimates must be non-negative;
// the optimality guarantee additionally requires admissibility (never
// overestimating the true remaining cost), which is the caller's
// responsibility and is not verified.
type Heuristic func(id string) float64

// Zero is the trivial heuristic: every estimate is 0. With Zero, Find
// expands vertices in exactly Dijkstra's order.
func Zero(string) float64 { return 0 }

// FromTable adapts a lookup table of per-vertex estimates into a
// Heuristic. Vertices missing from the table estimate 0, which is
// always admissible. The table is copied, so later mutation by the
// caller does not affect searches already holding the Heuristic.
//
// A table is valid for a single goal; if the goal changes, supplying a
// matching table is the caller's responsibility.
func FromTable(estimates map[string]float64) Heuristic {
	snapshot := make(map[string]float64, len(estimates))
	for id, h := range estimates {
		snapshot[id] = h
	}

	return func(id string) float64 { return snapshot[id] }
}

// Options holds tunable parameters for a single Find invocation.
type Options struct {
	// MaxExpand caps how many vertices may be expanded (closed).
	// 0 disables the cap.
	MaxExpand int

	// internal error recorded during option parsing
	err error
}

// Option configures Find via functional arguments. An invalid Option
// (e.g. a negative budget) is recorded internally and surfaced when
// Find is invoked.
type Option func(*Options)

// DefaultOptions returns Options with sane defaults: no expansion cap.
func DefaultOptions() Options {
	return Options{MaxExpand: 0, err: nil}
}

// WithMaxExpand caps the number of expansions before Find gives up
// with ErrBudgetExceeded.
//
//	n > 0:  expand at most n vertices
//	n == 0: explicit no cap
//	n < 0:  invalid option → ErrBadMaxExpand
func WithMaxExpand(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: got %d", ErrBadMaxExpand, n)
			return
		}
		o.MaxExpand = n
	}
}

// Result holds the outcome of one search.
type Result struct {
	// Path lists vertex IDs from start to goal inclusive.
	// Nil when no path was found.
	Path []string

	// Cost is the total weight of Path, or math.Inf(1) when no path
	// was found.
	Cost float64

	// Expanded counts vertices whose cost was finalized (closed)
	// during the search.
	Expanded int
}
