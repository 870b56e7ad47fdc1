// Package pathfind is a small toolkit for least-cost path search on
// weighted directed graphs.
//
// 🚀 What is pathfind?
//
//	A focused, pure-Go library built around three pieces:
//		• core/     — the weighted digraph: vertices, float64 edge weights,
//		              thread-safe mutation, deterministic iteration
//		• astar/    — informed best-first search (A*) guided by a heuristic
//		              estimate of remaining cost
//		• dijkstra/ — the zero-heuristic baseline: exact shortest paths
//		              from one source to every reachable vertex
//
// ✨ Why choose pathfind?
//
//   - Deterministic – sorted adjacency and a sequence-numbered frontier
//     make every search reproducible, ties included
//   - Rock-solid guarantees – non-negative weights enforced at
//     construction, closed-set expansion bounds every run
//   - Pure Go – no cgo, no hidden deps
//
// Quick ASCII example:
//
//	    S──1──B──2──F
//	            \    \
//	            2     1
//	              \    \
//	               C    D──5──G2
//
//	a directed route graph; astar.Find(g, h, "S", "G2") walks S→B→F→D→G2.
//
// Dive into the per-package docs for contracts, options, and complexity
// notes, and examples/ for a runnable demo.
//
//	go get github.com/katalvlaran/pathfind
package pathfind
