// Package astar provides informed best-first search (A*) over a
// weighted digraph with non-negative edge weights.
//
// A* expands vertices in order of estimated total cost
// f(n) = g(n) + h(n), where g(n) is the best known cost from the start
// and h(n) is a caller-supplied heuristic estimate of the remaining
// cost to the goal. With an admissible heuristic (one that never
// overestimates), the returned path is optimal; with the Zero
// heuristic, Find degrades exactly to Dijkstra's expansion order.
//
// What:
//
//   - Find computes the least-cost path between two vertex IDs,
//     returning the path, its total cost, and the expansion count.
//   - Heuristic is a plain function; FromTable adapts a lookup table,
//     defaulting missing entries to zero (a trivially admissible estimate).
//   - The frontier is a lazy-decrease-key binary heap: improved costs
//     push duplicates, stale entries are skipped on pop via the closed
//     set. No decrease-key support is needed.
//
// Determinism:
//
//   - Entries with equal f are popped in insertion order (each push is
//     sequence-numbered), and core.Graph yields neighbors sorted by ID,
//     so identical inputs always produce identical output — tie-break
//     choices included.
//
// Termination:
//
//   - The closed set finalizes each vertex at most once, so the loop
//     performs at most one expansion per vertex even on cyclic graphs,
//     regardless of how many stale duplicates the frontier accumulates.
//
// Options:
//
//   - WithMaxExpand(n): abort after n expansions with ErrBudgetExceeded.
//     n == 0 (the default) disables the budget.
//
// Errors:
//
//   - ErrNoPath: the goal is unreachable from the start. A normal
//     outcome to branch on, not a failure; the accompanying Result
//     carries Cost == +Inf.
//   - ErrBudgetExceeded: the expansion budget ran out before the goal
//     was reached.
//   - ErrNilGraph, ErrEmptyVertexID, ErrBadMaxExpand: invalid input.
//
// Complexity:
//
//   - Time:  O((V + E) log V) — each vertex is expanded at most once,
//     each relaxation may push one heap entry.
//   - Space: O(V + E) — score/predecessor maps plus worst-case frontier.
//
// Example usage:
//
//	res, err := astar.Find(g, astar.FromTable(estimates), "S", "G2")
//	if errors.Is(err, astar.ErrNoPath) {
//	    fmt.Println("unreachable")
//	    return
//	}
//	fmt.Println(res.Path, res.Cost)
package astar
