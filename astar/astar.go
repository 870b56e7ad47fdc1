// Package astar implements A* search on a core.Graph.
//
// Notes on implementation choices:
//
//   - The frontier is a binary min-heap under the "lazy decrease-key"
//     strategy: a better cost pushes a duplicate entry, and stale
//     entries are recognized on pop via the closed set. This is the
//     standard portable way to run A*/Dijkstra on a basic heap and is
//     kept deliberately — no decrease-key structure is warranted.
//   - Equal-priority entries pop in insertion order (each push carries
//     a sequence number), making tie-breaks explicit and reproducible.
//   - Relaxation uses strict <: a tentative cost equal to the recorded
//     best is not an improvement, so the first-found path of equal
//     cost keeps its predecessor.
package astar

import (
	"container/heap"
	"math"

	"github.com/katalvlaran/pathfind/core"
)

// Find computes the least-cost path from start to goal in g, guided by
// the heuristic h. A nil h is treated as the Zero heuristic.
//
// Returns:
//
//   - (*Result, nil) on success: Path from start to goal inclusive,
//     Cost = sum of edge weights along Path, Expanded = closed count.
//   - (*Result{Cost: +Inf}, ErrNoPath) when the goal is unreachable.
//   - (*Result{Cost: +Inf}, ErrBudgetExceeded) when WithMaxExpand ran out.
//   - (nil, ErrNilGraph | ErrEmptyVertexID | ErrBadMaxExpand) on invalid input.
//
// Preconditions:
//
//   - g holds no negative edge weights (core.AddEdge enforces this).
//   - start and goal need not exist as vertices of g: an absent vertex
//     simply has no outgoing edges, so an absent start is a dead end —
//     unless start == goal, which returns path [start] with cost 0
//     regardless of graph contents.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Find(g *core.Graph, h Heuristic, start, goal string, opts ...Option) (*Result, error) {
	// 1) Build and validate Options; invalid options fail the call.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	// 2) Validate inputs.
	if g == nil {
		return nil, ErrNilGraph
	}
	if start == "" || goal == "" {
		return nil, ErrEmptyVertexID
	}
	if h == nil {
		h = Zero
	}

	// 3) Seed the per-invocation state: g(start)=0, no predecessor,
	//    frontier holding (h(start), start).
	r := &runner{
		g:         g,
		h:         h,
		goal:      goal,
		maxExpand: cfg.MaxExpand,
		gScore:    map[string]float64{start: 0},
		cameFrom:  map[string]string{start: ""},
		closed:    make(map[string]bool),
	}
	heap.Init(&r.frontier)
	r.push(start, h(start))

	// 4) Run the main loop.
	return r.search()
}

// runner holds the mutable state for a single Find execution.
// It is created fresh per invocation and discarded on return.
type runner struct {
	g         *core.Graph
	h         Heuristic
	goal      string
	maxExpand int

	gScore   map[string]float64 // vertex → best known cost from start
	cameFrom map[string]string  // vertex → predecessor ("" for start)
	closed   map[string]bool    // vertices with finalized cost
	frontier frontier           // min-heap of (f, seq, vertex)
	seq      uint64             // monotonically increasing push counter
	expanded int
}

// search pops the frontier until the goal surfaces, the frontier
// drains, or the expansion budget runs out.
func (r *runner) search() (*Result, error) {
	for r.frontier.Len() > 0 {
		// a) Pop the entry with the smallest f; ties resolve to the
		//    earliest push.
		cur := heap.Pop(&r.frontier).(*frontierItem).id

		// b) Goal test happens on pop, before the stale check: the
		//    first time the goal surfaces, its g-score is minimal.
		if cur == r.goal {
			return r.finish(cur), nil
		}

		// c) A closed vertex here is a stale duplicate from an
		//    earlier, worse push — discard it.
		if r.closed[cur] {
			continue
		}

		// Budget check, once per expansion.
		if r.maxExpand > 0 && r.expanded >= r.maxExpand {
			return &Result{Cost: math.Inf(1), Expanded: r.expanded}, ErrBudgetExceeded
		}

		// d) Finalize and relax outgoing edges.
		r.closed[cur] = true
		r.expanded++
		r.relax(cur)
	}

	// Frontier drained without popping the goal: unreachable.
	return &Result{Cost: math.Inf(1), Expanded: r.expanded}, ErrNoPath
}

// relax attempts to improve the recorded cost of every neighbor of u.
// Strict < only: an equal tentative cost keeps the existing predecessor.
func (r *runner) relax(u string) {
	gu := r.gScore[u]
	for _, e := range r.g.Neighbors(u) {
		tentative := gu + e.Weight
		if best, seen := r.gScore[e.To]; seen && tentative >= best {
			continue
		}
		r.gScore[e.To] = tentative
		r.cameFrom[e.To] = u
		r.push(e.To, tentative+r.h(e.To))
	}
}

// push adds a frontier entry with the next sequence number.
func (r *runner) push(id string, f float64) {
	r.seq++
	heap.Push(&r.frontier, &frontierItem{id: id, f: f, seq: r.seq})
}

// finish reconstructs the start→goal path by walking cameFrom links
// backwards and reversing.
func (r *runner) finish(goal string) *Result {
	path := []string{goal}
	for cur := goal; ; {
		prev := r.cameFrom[cur]
		if prev == "" {
			break
		}
		path = append(path, prev)
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return &Result{Path: path, Cost: r.gScore[goal], Expanded: r.expanded}
}

// frontierItem is one frontier entry: a vertex with its estimated
// total cost f = g + h and the sequence number of its push.
type frontierItem struct {
	id  string
	f   float64
	seq uint64
}

// frontier is a min-heap of *frontierItem ordered by (f asc, seq asc).
// Duplicates of a vertex may coexist transiently; stale ones are
// skipped on pop via the closed set.
type frontier []*frontierItem

// Len returns the number of entries in the heap.
func (pq frontier) Len() int { return len(pq) }

// Less orders by f ascending, then by insertion sequence ascending so
// equal-priority pops are deterministic.
func (pq frontier) Less(i, j int) bool {
	if pq[i].f != pq[j].f {
		return pq[i].f < pq[j].f
	}

	return pq[i].seq < pq[j].seq
}

// Swap swaps two entries.
func (pq frontier) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push appends x; called by heap.Push.
func (pq *frontier) Push(x interface{}) { *pq = append(*pq, x.(*frontierItem)) }

// Pop removes and returns the last entry; called by heap.Pop.
func (pq *frontier) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
