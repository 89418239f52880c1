package bfs

import (
	"context"

	"github.com/katalvlaran/shortreach/core"
)

// ShortestReach returns the distance from s to every other vertex of the
// undirected graph with vertices 1..n and the given edge list, charging
// HopWeight per edge. Entries are ordered by vertex ID with s omitted, so
// the result has exactly n-1 elements; unreachable vertices report Unreached.
//
// m is the nominal edge count. It is accepted for call-site compatibility
// and never read: len(edges) governs, and a mismatch is not an error.
//
// Self-loops and parallel edges are accepted. Endpoints or a source outside
// [1, n] return core.ErrVertexOutOfRange or ErrStartVertexNotFound (wrapped).
//
// Complexity: O(n + len(edges)) time and space.
func ShortestReach(n, m int, edges [][2]int, s int) ([]int, error) {
	return ShortestReachContext(context.Background(), n, m, edges, s)
}

// ShortestReachContext is ShortestReach with a context checked while the
// search runs; on cancellation it returns ctx.Err().
func ShortestReachContext(ctx context.Context, n, _ int, edges [][2]int, s int) ([]int, error) {
	g, err := core.FromEdges(n, edges, core.Permissive())
	if err != nil {
		return nil, err
	}
	res, err := BFS(g, s, WithContext(ctx))
	if err != nil {
		return nil, err
	}

	return res.Distances(), nil
}
