// Package core: Graph method implementations
//
// This file provides thread-safe operations for vertex and edge management
// on the Graph type defined in types.go. Adjacency is a slice of neighbor
// slices indexed by vertex ID, appended in edge insertion order, so
// traversal order always follows the order edges were supplied.

package core

import "fmt"

// checkVertex returns ErrVertexOutOfRange unless 1 <= v <= n.
// Caller must hold g.mu.
func (g *Graph) checkVertex(v int) error {
	if v < 1 || v >= len(g.adjacency) {
		return fmt.Errorf("%w: %d not in [1,%d]", ErrVertexOutOfRange, v, len(g.adjacency)-1)
	}

	return nil
}

// pairKey normalizes an unordered endpoint pair.
func pairKey(u, v int) [2]int {
	if u > v {
		u, v = v, u
	}

	return [2]int{u, v}
}

// AddVertices appends k isolated vertices and returns the ID of the first one.
// With k == 0 it returns the ID the next vertex would get. The total may not
// exceed MaxVertices.
// Complexity: O(k) amortized.
func (g *Graph) AddVertices(k int) (int, error) {
	if k < 0 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidVertexCount, k)
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	first := len(g.adjacency)
	if k > MaxVertices-(first-1) {
		return 0, fmt.Errorf("%w: %d more exceeds %d", ErrInvalidVertexCount, k, MaxVertices)
	}
	for i := 0; i < k; i++ {
		g.adjacency = append(g.adjacency, nil)
	}

	return first, nil
}

// HasVertex reports whether v is a valid vertex ID (1 <= v <= N).
// Complexity: O(1).
func (g *Graph) HasVertex(v int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.checkVertex(v) == nil
}

// AddEdge adds the undirected edge {u, v} and returns its 1-based ID.
// v is appended to u's neighbor list and u to v's, in that order; a
// self-loop therefore lists v twice in its own neighbor list.
//
// Returns ErrVertexOutOfRange, ErrLoopNotAllowed, ErrMultiEdgeNotAllowed.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v int) (int, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	// 1) Range checks
	if err := g.checkVertex(u); err != nil {
		return 0, err
	}
	if err := g.checkVertex(v); err != nil {
		return 0, err
	}
	// 2) Loop constraint
	if u == v && !g.allowLoops {
		return 0, fmt.Errorf("%w: (%d,%d)", ErrLoopNotAllowed, u, v)
	}
	// 3) Multi-edge constraint
	key := pairKey(u, v)
	if !g.allowMulti && g.pairs[key] > 0 {
		return 0, fmt.Errorf("%w: (%d,%d)", ErrMultiEdgeNotAllowed, u, v)
	}

	// 4) Store
	id := len(g.edges) + 1
	g.edges = append(g.edges, Edge{ID: id, U: u, V: v})
	g.pairs[key]++
	g.adjacency[u] = append(g.adjacency[u], v)
	g.adjacency[v] = append(g.adjacency[v], u)

	return id, nil
}

// HasEdge reports true if at least one edge joins u and v (in either order).
// Complexity: O(1).
func (g *Graph) HasEdge(u, v int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.pairs[pairKey(u, v)] > 0
}

// Neighbors returns a copy of v's neighbor list in edge insertion order.
// Parallel edges repeat the neighbor; a self-loop lists v twice.
// Complexity: O(deg(v)).
func (g *Graph) Neighbors(v int) ([]int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if err := g.checkVertex(v); err != nil {
		return nil, err
	}
	out := make([]int, len(g.adjacency[v]))
	copy(out, g.adjacency[v])

	return out, nil
}

// Degree returns the number of edge endpoints at v (a self-loop counts twice).
// Complexity: O(1).
func (g *Graph) Degree(v int) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if err := g.checkVertex(v); err != nil {
		return 0, err
	}

	return len(g.adjacency[v]), nil
}

// Edges returns all edges in insertion order.
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// EdgePairs returns all edges as (u, v) pairs in insertion order.
// Complexity: O(E).
func (g *Graph) EdgePairs() [][2]int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([][2]int, len(g.edges))
	for i, e := range g.edges {
		out[i] = [2]int{e.U, e.V}
	}

	return out
}

// VertexCount returns N. O(1).
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adjacency) - 1
}

// EdgeCount returns the number of stored edges. O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// Looped reports whether self-loops are permitted.
func (g *Graph) Looped() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.allowLoops
}

// Multigraph reports whether parallel edges are permitted.
func (g *Graph) Multigraph() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.allowMulti
}
