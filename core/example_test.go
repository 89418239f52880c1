package core_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/shortreach/core"
)

// ExampleGraph demonstrates basic creation, mutation, and queries.
func ExampleGraph() {
	// 1) Four vertices, edges given as an edge list:
	g, err := core.FromEdges(4, [][2]int{{1, 2}, {1, 3}})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 2) Inspect adjacency:
	nb, _ := g.Neighbors(1)
	fmt.Println("Neighbors of 1:", nb)
	fmt.Println("Edge 2–1 exists?", g.HasEdge(2, 1))
	fmt.Println("Isolated vertices:", g.Stats().IsolatedCount)

	// 3) Out-of-range IDs are errors, not panics:
	_, err = g.AddEdge(4, 5)
	fmt.Println(errors.Is(err, core.ErrVertexOutOfRange))

	// Output:
	// Neighbors of 1: [2 3]
	// Edge 2–1 exists? true
	// Isolated vertices: 1
	// true
}

// ExamplePermissive shows raw edge-list input with a loop and a duplicate.
func ExamplePermissive() {
	g, _ := core.FromEdges(2, [][2]int{{1, 1}, {1, 2}, {2, 1}}, core.Permissive())
	nb, _ := g.Neighbors(1)
	fmt.Println(nb, g.EdgeCount())
	// Output:
	// [1 1 2 2] 3
}
