// Package core defines the weighted directed graph shared by the
// pathfind search packages.
//
// What:
//
//   - Graph stores a directed adjacency map: vertex → (neighbor → weight).
//   - Edge weights are non-negative float64 values, enforced at AddEdge.
//   - Exactly one edge per ordered vertex pair; re-adding overwrites the weight.
//   - All read APIs iterate in sorted order, so algorithm runs are reproducible.
//
// Why:
//
//   - Route costs, travel times, and heuristic estimates are real-valued,
//     so the container speaks float64 end to end.
//   - Search packages (astar, dijkstra) rely on deterministic adjacency
//     order for reproducible tie-breaking.
//
// Concurrency:
//
//   - All methods are safe for concurrent use; a single sync.RWMutex
//     guards vertices and adjacency together.
//
// Errors:
//
//   - ErrEmptyVertexID: a vertex ID is the empty string.
//   - ErrNegativeWeight: a negative edge weight was supplied.
//   - ErrLoopNotAllowed: self-loop without WithLoops().
package core
