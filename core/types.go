// Package core declares Graph, Edge, GraphOption, sentinel errors,
// and the NewGraph constructor.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates an operation received an empty vertex ID.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrNegativeWeight indicates a negative edge weight was supplied.
	// The search packages assume non-negative weights, so the graph
	// rejects them at construction time.
	ErrNegativeWeight = errors.New("core: negative edge weight")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")
)

// Edge represents one directed connection From→To with its weight.
type Edge struct {
	// From is the source vertex ID.
	From string

	// To is the destination vertex ID.
	To string

	// Weight is the non-negative traversal cost of the edge.
	Weight float64
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithLoops permits self-loops (edges from a vertex to itself).
// A self-loop never shortens a path, but graphs transcribed from
// external sources may legitimately contain them.
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// Graph is the in-memory weighted digraph.
//
// Every edge is directed and carries a float64 weight ≥ 0.
// At most one edge exists per ordered (from, to) pair; AddEdge on an
// existing pair overwrites the stored weight (last write wins).
// mu protects vertices and adjacency together.
type Graph struct {
	mu sync.RWMutex // guards vertices and adjacency

	allowLoops bool // allow self-loops

	// vertices holds every known vertex ID, including isolated ones.
	vertices map[string]struct{}

	// adjacency[from][to] = weight
	adjacency map[string]map[string]float64

	edgeCount int
}

// NewGraph creates an empty Graph with the given options.
// By default self-loops are rejected.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices:  make(map[string]struct{}),
		adjacency: make(map[string]map[string]float64),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
