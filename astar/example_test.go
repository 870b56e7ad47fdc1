// Package astar_test provides runnable examples for the A* search.
// Each example runs via "go test -run Example", showing both code and
// expected output.
package astar_test

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/pathfind/astar"
	"github.com/katalvlaran/pathfind/core"
)

// ExampleFind demonstrates the route diagram: ten vertices,
// a cycle through S→B→F→D→S, and per-vertex heuristic estimates toward
// the goal G2.
// Complexity: O((V+E) log V).
func ExampleFind() {
	// 1) Transcribe the directed weighted edges.
	g := core.NewGraph()
	for _, e := range []struct {
		from, to string
		w        float64
	}{
		{"S", "A", 3}, {"S", "B", 1}, {"S", "C", 5},
		{"A", "E", 7}, {"A", "G1", 10},
		{"B", "C", 2}, {"B", "F", 2},
		{"C", "G3", 11},
		{"D", "B", 4}, {"D", "S", 6}, {"D", "G2", 5},
		{"E", "G1", 2},
		{"F", "D", 1},
		{"G3", "F", 0},
	} {
		_ = g.AddEdge(e.from, e.to, e.w)
	}

	// 2) The heuristic table holds the estimated remaining cost to G2
	//    for each vertex; missing vertices default to 0.
	h := astar.FromTable(map[string]float64{
		"S": 8, "A": 9, "B": 1, "C": 3, "D": 4,
		"E": 1, "F": 5, "G1": 0, "G2": 0, "G3": 3,
	})

	// 3) Search from S to G2 and print the route.
	res, err := astar.Find(g, h, "S", "G2")
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("Path from S to G2: %s\n", strings.Join(res.Path, " -> "))
	fmt.Printf("Total cost: %g\n", res.Cost)
	// Output:
	// Path from S to G2: S -> B -> F -> D -> G2
	// Total cost: 9
}

// ExampleFind_noPath demonstrates the NotFound outcome: the goal has
// no incoming route, so Find reports ErrNoPath with an infinite cost.
func ExampleFind_noPath() {
	g := core.NewGraph()
	_ = g.AddEdge("S", "A", 1)
	_ = g.AddVertex("Z") // isolated

	res, err := astar.Find(g, astar.Zero, "S", "Z")
	if errors.Is(err, astar.ErrNoPath) {
		fmt.Println("No path found from S to Z.")
		fmt.Println("cost is +Inf:", res.Cost)
		return
	}
	// Output:
	// No path found from S to Z.
	// cost is +Inf: +Inf
}

// ExampleWithMaxExpand demonstrates bounding a search: with a budget
// of two expansions the diagram route cannot be completed, and Find
// reports the distinct budget outcome.
func ExampleWithMaxExpand() {
	g := core.NewGraph()
	_ = g.AddEdge("A", "B", 1)
	_ = g.AddEdge("B", "C", 1)
	_ = g.AddEdge("C", "D", 1)

	_, err := astar.Find(g, astar.Zero, "A", "D", astar.WithMaxExpand(2))
	fmt.Println(errors.Is(err, astar.ErrBudgetExceeded))
	// Output:
	// true
}
