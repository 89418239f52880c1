// Package core_test verifies thread-safety of core.Graph under concurrent operations.
package core_test

import (
	"sync"
	"testing"

	"github.com/katalvlaran/shortreach/core"
	"github.com/stretchr/testify/require"
)

// TestConcurrentAddEdge ensures that concurrent AddEdge calls
// on a multigraph are safe and every edge lands in adjacency.
func TestConcurrentAddEdge(t *testing.T) {
	const num = 200 // number of concurrent adds
	g, err := core.NewGraph(num+1, core.WithMultiEdges())
	require.NoError(t, err)

	var wg sync.WaitGroup
	wg.Add(num)
	// Launch num goroutines to add edges from 1 to i+2
	for i := 0; i < num; i++ {
		go func(v int) {
			defer wg.Done()
			_, err := g.AddEdge(1, v)
			require.NoError(t, err)
		}(i + 2)
	}
	wg.Wait()

	nbs, err := g.Neighbors(1)
	require.NoError(t, err)
	require.Len(t, nbs, num)
	require.Equal(t, num, g.EdgeCount())
}

// TestConcurrentReadWrite mixes readers with writers to surface races under -race.
func TestConcurrentReadWrite(t *testing.T) {
	g, err := core.NewGraph(50, core.Permissive())
	require.NoError(t, err)

	const rounds = 100
	var wg sync.WaitGroup
	wg.Add(2 * rounds)
	for i := 0; i < rounds; i++ {
		go func(id int) {
			defer wg.Done()
			_, _ = g.AddEdge(id%50+1, (id*7)%50+1)
		}(i)
		go func(id int) {
			defer wg.Done()
			_, _ = g.Neighbors(id%50 + 1)
			_ = g.Stats()
			_ = g.Clone()
		}(i)
	}
	wg.Wait()

	require.Equal(t, rounds, g.EdgeCount())
}
