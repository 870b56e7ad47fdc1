package core

import (
	"fmt"
	"sort"
)

// AddVertex ensures a vertex with the given ID exists.
// Adding an existing vertex is a no-op.
//
// Errors: ErrEmptyVertexID if id == "".
// Complexity: O(1)
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.vertices[id] = struct{}{}

	return nil
}

// AddEdge inserts the directed edge from→to with the given weight,
// creating either endpoint vertex as needed. If the edge already
// exists its weight is overwritten (last write wins).
//
// Errors:
//   - ErrEmptyVertexID if either endpoint ID is empty.
//   - ErrNegativeWeight if weight < 0.
//   - ErrLoopNotAllowed if from == to and the graph was built without WithLoops().
//
// Complexity: O(1)
func (g *Graph) AddEdge(from, to string, weight float64) error {
	if from == "" || to == "" {
		return ErrEmptyVertexID
	}
	if weight < 0 {
		return fmt.Errorf("%w: edge %s→%s weight=%g", ErrNegativeWeight, from, to, weight)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if from == to && !g.allowLoops {
		return ErrLoopNotAllowed
	}

	g.vertices[from] = struct{}{}
	g.vertices[to] = struct{}{}

	bucket, ok := g.adjacency[from]
	if !ok {
		bucket = make(map[string]float64)
		g.adjacency[from] = bucket
	}
	if _, exists := bucket[to]; !exists {
		g.edgeCount++
	}
	bucket[to] = weight

	return nil
}

// HasVertex reports whether a vertex with the given ID exists.
// Complexity: O(1)
func (g *Graph) HasVertex(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.vertices[id]

	return ok
}

// Weight returns the weight of the directed edge from→to and whether
// such an edge exists.
// Complexity: O(1)
func (g *Graph) Weight(from, to string) (float64, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	w, ok := g.adjacency[from][to]

	return w, ok
}

// Neighbors returns the outgoing edges of the given vertex, sorted by
// destination ID ascending. Vertices with no outgoing edges — sinks,
// and IDs never added to the graph — yield an empty result rather
// than an error: an unlisted node simply has nowhere to go.
//
// Determinism: sorted by Edge.To ascending, by contract.
// Complexity: O(d log d) where d is the out-degree.
func (g *Graph) Neighbors(id string) []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	bucket := g.adjacency[id]
	if len(bucket) == 0 {
		return nil
	}

	out := make([]Edge, 0, len(bucket))
	for to, w := range bucket {
		out = append(out, Edge{From: id, To: to, Weight: w})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].To < out[j].To })

	return out
}

// Vertices returns all vertex IDs sorted lexicographically.
// Complexity: O(V log V)
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ids := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// VertexCount returns the number of vertices.
// Complexity: O(1)
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}

// EdgeCount returns the number of directed edges.
// Complexity: O(1)
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}

// Clone returns an independent deep copy of the graph: mutations on
// the clone never affect the original.
// Complexity: O(V + E)
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	c := &Graph{
		allowLoops: g.allowLoops,
		vertices:   make(map[string]struct{}, len(g.vertices)),
		adjacency:  make(map[string]map[string]float64, len(g.adjacency)),
		edgeCount:  g.edgeCount,
	}
	for id := range g.vertices {
		c.vertices[id] = struct{}{}
	}
	for from, bucket := range g.adjacency {
		nb := make(map[string]float64, len(bucket))
		for to, w := range bucket {
			nb[to] = w
		}
		c.adjacency[from] = nb
	}

	return c
}
