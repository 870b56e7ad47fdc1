// Package dijkstra provides Dijkstra's single-source shortest-path
// algorithm on a core.Graph with non-negative edge weights.
//
// Overview:
//
//   - Dijkstra computes the minimum cost from one source vertex to all
//     reachable vertices, processing vertices in order of increasing
//     distance via a min-heap priority queue under the same
//     "lazy decrease-key" strategy the astar package uses.
//   - It is the zero-heuristic baseline for astar.Find: with
//     astar.Zero, both expand vertices in the same order and agree on
//     every cost.
//
// Key features:
//
//   - Source(id):              required, the starting vertex ID.
//   - WithReturnPath():        also return a predecessor map for path
//     reconstruction.
//   - WithMaxDistance(x):      do not explore beyond distance x.
//   - WithInfEdgeThreshold(t): treat edges with weight ≥ t as impassable.
//
// Unreachable vertices report a distance of math.Inf(1).
//
// Error handling (sentinel errors):
//
//   - ErrEmptySource:     the Source option was missing or empty.
//   - ErrNilGraph:        a nil *core.Graph was supplied.
//   - ErrVertexNotFound:  the source vertex does not exist in the graph.
//   - ErrBadMaxDistance:  WithMaxDistance received a negative value.
//   - ErrBadInfThreshold: WithInfEdgeThreshold received a non-positive value.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
package dijkstra
