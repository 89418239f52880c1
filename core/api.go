// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only diagnostics on top of the core types.
// Policy:
//   - No algorithms or hidden state here.
//   - Every exported function documents complexity and locking strategy.

package core

// Stats produces a read-only snapshot of configuration flags and catalog sizes.
//
// Implementation:
//   - Stage 1: Acquire the read lock and copy flags and sizes.
//   - Stage 2: Scan edges once for loops and parallels, then vertices once for
//     isolation and maximum degree.
//
// Returns:
//   - *GraphStats: immutable-by-convention snapshot.
//
// Complexity:
//   - Time O(V+E), Space O(1) plus the returned struct.
func (g *Graph) Stats() *GraphStats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	stats := GraphStats{
		AllowsLoops: g.allowLoops,
		AllowsMulti: g.allowMulti,
		VertexCount: len(g.adjacency) - 1,
		EdgeCount:   len(g.edges),
	}
	for _, e := range g.edges {
		if e.Loop() {
			stats.LoopCount++
		}
	}
	for _, c := range g.pairs {
		if c > 1 {
			stats.ParallelCount += c - 1
		}
	}
	for v := 1; v < len(g.adjacency); v++ {
		d := len(g.adjacency[v])
		if d == 0 {
			stats.IsolatedCount++
		}
		if d > stats.MaxDegree {
			stats.MaxDegree = d
		}
	}

	return &stats
}
