// File: methods_clone.go
// Role: Whole-graph copies and resets.
//
// Concurrency:
//   - Clone holds the source read lock for the full copy, so the clone is a
//     consistent snapshot even under concurrent AddEdge.

package core

// Clone returns a deep copy of the Graph: configuration, vertices, edges, and adjacency.
// Complexity: O(V + E)
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := &Graph{
		allowMulti: g.allowMulti,
		allowLoops: g.allowLoops,
		adjacency:  make([][]int, len(g.adjacency)),
		edges:      make([]Edge, len(g.edges)),
		pairs:      make(map[[2]int]int, len(g.pairs)),
	}
	for v, nbrs := range g.adjacency {
		if len(nbrs) > 0 {
			clone.adjacency[v] = append([]int(nil), nbrs...)
		}
	}
	copy(clone.edges, g.edges)
	for k, c := range g.pairs {
		clone.pairs[k] = c
	}

	return clone
}

// CloneEmpty returns a Graph with the same flags and vertex count but no edges.
// Complexity: O(V)
func (g *Graph) CloneEmpty() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return &Graph{
		allowMulti: g.allowMulti,
		allowLoops: g.allowLoops,
		adjacency:  make([][]int, len(g.adjacency)),
		pairs:      make(map[[2]int]int),
	}
}

// ClearEdges removes every edge but keeps the vertices and flags.
func (g *Graph) ClearEdges() {
	g.mu.Lock()
	defer g.mu.Unlock()

	for v := range g.adjacency {
		g.adjacency[v] = nil
	}
	g.edges = nil
	g.pairs = make(map[[2]int]int)
}
