// Package dijkstra implements Dijkstra's shortest-path algorithm.
//
// Notes on implementation choices:
//
//   - Non-negative weights are guaranteed by core.AddEdge, so no
//     per-call negative-weight scan is needed.
//   - The heap uses the "lazy decrease-key" strategy shared with the
//     astar package: improvements push duplicates, stale entries are
//     skipped on pop. Ties on distance resolve by insertion sequence,
//     keeping runs reproducible.
package dijkstra

import (
	"container/heap"
	"math"

	"github.com/katalvlaran/pathfind/core"
)

// Dijkstra computes shortest distances from the source vertex
// (set via the Source option) to all other vertices in g.
//
// Returns:
//
//   - dist: map from vertex ID to minimum distance (math.Inf(1) if
//     unreachable or beyond MaxDistance).
//   - prev: predecessor map if WithReturnPath() was given, nil
//     otherwise. prev[v] == u means the shortest path to v arrives
//     via u; prev[v] == "" means v is the source or unreachable.
//   - err:  a sentinel error on invalid input, nil otherwise.
//
// Validation order: option errors, then ErrEmptySource, ErrNilGraph,
// ErrVertexNotFound.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Dijkstra(g *core.Graph, opts ...Option) (map[string]float64, map[string]string, error) {
	// 1) Build and validate Options.
	cfg := DefaultOptions("")
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, nil, cfg.err
	}
	if cfg.Source == "" {
		return nil, nil, ErrEmptySource
	}
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if !g.HasVertex(cfg.Source) {
		return nil, nil, ErrVertexNotFound
	}

	// 2) Prepare state: every known vertex starts at +Inf.
	vertices := g.Vertices()
	dist := make(map[string]float64, len(vertices))
	for _, v := range vertices {
		dist[v] = math.Inf(1)
	}
	dist[cfg.Source] = 0

	var prev map[string]string
	if cfg.ReturnPath {
		prev = make(map[string]string, len(vertices))
		for _, v := range vertices {
			prev[v] = ""
		}
	}

	r := &runner{
		g:       g,
		options: cfg,
		dist:    dist,
		prev:    prev,
		visited: make(map[string]bool, len(vertices)),
	}
	heap.Init(&r.pq)
	r.push(cfg.Source, 0)

	// 3) Main loop.
	r.process()

	return r.dist, r.prev, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph
	options Options
	dist    map[string]float64
	prev    map[string]string
	visited map[string]bool
	pq      distPQ
	seq     uint64
}

// process repeatedly extracts the closest unvisited vertex and relaxes
// its outgoing edges. Terminates when the heap drains or the minimum
// distance in the heap exceeds MaxDistance.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*distItem)
		u, d := item.id, item.dist

		// Stale duplicate from an earlier, worse push.
		if r.visited[u] {
			continue
		}

		// Everything still in the heap is at least this far away.
		if d > r.options.MaxDistance {
			break
		}

		r.visited[u] = true
		r.relax(u)
	}
}

// relax attempts to improve the distance of every neighbor of u.
// Edges at or above InfEdgeThreshold are walls and are skipped.
func (r *runner) relax(u string) {
	du := r.dist[u]
	for _, e := range r.g.Neighbors(u) {
		if e.Weight >= r.options.InfEdgeThreshold {
			continue
		}

		newDist := du + e.Weight
		if newDist > r.options.MaxDistance {
			continue
		}
		// Strict < keeps the first-found predecessor on equal-cost paths.
		if newDist >= r.dist[e.To] {
			continue
		}

		r.dist[e.To] = newDist
		if r.prev != nil {
			r.prev[e.To] = u
		}
		r.push(e.To, newDist)
	}
}

// push adds a heap entry with the next sequence number.
func (r *runner) push(id string, d float64) {
	r.seq++
	heap.Push(&r.pq, &distItem{id: id, dist: d, seq: r.seq})
}

// distItem pairs a vertex with its tentative distance and the sequence
// number of its push.
type distItem struct {
	id   string
	dist float64
	seq  uint64
}

// distPQ is a min-heap of *distItem ordered by (dist asc, seq asc).
type distPQ []*distItem

// Len returns the number of items in the heap.
func (pq distPQ) Len() int { return len(pq) }

// Less orders by distance ascending, then insertion sequence ascending.
func (pq distPQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].seq < pq[j].seq
}

// Swap swaps two elements in the heap.
func (pq distPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap; called by heap.Push.
func (pq *distPQ) Push(x interface{}) { *pq = append(*pq, x.(*distItem)) }

// Pop removes and returns the smallest element; called by heap.Pop.
func (pq *distPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
