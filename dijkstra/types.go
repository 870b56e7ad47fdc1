// Package dijkstra defines configuration options and sentinel errors
// for the Dijkstra implementation.
package dijkstra

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors returned by Dijkstra.
var (
	// ErrEmptySource indicates that no source vertex ID was provided.
	ErrEmptySource = errors.New("dijkstra: source vertex ID is empty")

	// ErrNilGraph indicates that a nil *core.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates that the source vertex does not exist
	// in the provided graph. Unlike astar.Find, an all-targets search
	// from a vertex the graph has never seen is meaningless, so it is
	// rejected.
	ErrVertexNotFound = errors.New("dijkstra: source vertex not found in graph")

	// ErrBadMaxDistance indicates MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates InfEdgeThreshold was set to zero or a
	// negative value, which would make every edge impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// Options configures the behavior of the Dijkstra algorithm.
type Options struct {
	// Source is the ID of the starting vertex; must be non-empty and
	// present in the graph.
	Source string

	// ReturnPath controls whether the predecessor map is returned.
	ReturnPath bool

	// MaxDistance caps exploration: vertices whose distance would
	// exceed it are not explored. Default math.Inf(1) (no cap).
	MaxDistance float64

	// InfEdgeThreshold treats edges with weight ≥ this value as
	// impassable. Default math.Inf(1) (no edge is impassable).
	InfEdgeThreshold float64

	// internal error recorded during option parsing
	err error
}

// Option represents a functional option for configuring Dijkstra.
// An invalid Option is recorded internally and surfaced when Dijkstra
// is invoked.
type Option func(*Options)

// DefaultOptions returns an Options struct with sensible defaults for
// the given source vertex ID: no distance cap, no impassable edges,
// no predecessor map.
func DefaultOptions(source string) Options {
	return Options{
		Source:           source,
		ReturnPath:       false,
		MaxDistance:      math.Inf(1),
		InfEdgeThreshold: math.Inf(1),
	}
}

// Source sets the starting vertex ID.
func Source(id string) Option {
	return func(o *Options) { o.Source = id }
}

// WithReturnPath enables generation of the predecessor map in the
// result. If unset (default), the predecessor map is nil.
func WithReturnPath() Option {
	return func(o *Options) { o.ReturnPath = true }
}

// WithMaxDistance caps exploration at the given distance. Vertices
// whose shortest distance exceeds it are left unexplored (reported as
// math.Inf(1)). Negative values are invalid → ErrBadMaxDistance.
func WithMaxDistance(max float64) Option {
	return func(o *Options) {
		if max < 0 {
			o.err = fmt.Errorf("%w: got %g", ErrBadMaxDistance, max)
			return
		}
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold treats edges with weight ≥ threshold as
// impassable walls. Must be positive; zero or negative values are
// invalid → ErrBadInfThreshold.
func WithInfEdgeThreshold(threshold float64) Option {
	return func(o *Options) {
		if threshold <= 0 {
			o.err = fmt.Errorf("%w: got %g", ErrBadInfThreshold, threshold)
			return
		}
		o.InfEdgeThreshold = threshold
	}
}
