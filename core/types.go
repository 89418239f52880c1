// Package core defines the central Graph and Edge types and provides
// thread-safe primitives for building, querying, and cloning graphs whose
// vertices are the integers 1..N.
//
// All core APIs take a single sync.RWMutex internally, so a Graph can be
// shared by concurrent readers and writers.
//
// This file declares Edge, Graph, GraphOption, sentinel errors, and the
// NewGraph / FromEdges constructors.
//
// Errors:
//
//	ErrInvalidVertexCount  - vertex count negative or above MaxVertices.
//	ErrVertexOutOfRange    - vertex ID outside [1, N].
//	ErrLoopNotAllowed      - self-loop when loops are disabled.
//	ErrMultiEdgeNotAllowed - parallel edge when multi-edges are disabled.
package core

import (
	"errors"
	"fmt"
	"sync"
)

// MaxVertices is the largest vertex count a Graph accepts.
const MaxVertices = 1 << 22

// Sentinel errors for core graph operations.
var (
	// ErrInvalidVertexCount indicates a vertex count below 0 or above MaxVertices.
	ErrInvalidVertexCount = errors.New("core: invalid vertex count")

	// ErrVertexOutOfRange indicates a vertex ID outside the valid range [1, N].
	ErrVertexOutOfRange = errors.New("core: vertex out of range")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted when multi-edges are disabled.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Edge is one undirected connection between U and V, as it was added.
//
// ID is the 1-based insertion index of the edge. U and V keep the order the
// caller supplied; traversal treats the pair as unordered.
type Edge struct {
	// ID is the 1-based insertion index.
	ID int

	// U is the first endpoint as supplied.
	U int

	// V is the second endpoint as supplied.
	V int
}

// Loop reports whether the edge connects a vertex to itself.
func (e Edge) Loop() bool { return e.U == e.V }

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithMultiEdges permits parallel edges between the same vertices.
func WithMultiEdges() GraphOption {
	return func(g *Graph) { g.allowMulti = true }
}

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// Permissive enables both loops and multi-edges. It is the policy of raw
// edge-list input, where duplicates and self-loops are accepted as given.
func Permissive() GraphOption {
	return func(g *Graph) {
		g.allowLoops = true
		g.allowMulti = true
	}
}

// Graph is an undirected, unweighted in-memory graph over vertices 1..N.
//
// adjacency has N+1 slots; slot 0 is never a valid vertex and stays empty.
// adjacency[v] lists the neighbors of v in edge insertion order, so a
// self-loop (v,v) contributes v twice to adjacency[v].
// pairs counts stored edges per normalized endpoint pair (min,max) and backs
// HasEdge and the multi-edge policy in O(1).
type Graph struct {
	mu sync.RWMutex // guards everything below

	// Configuration flags
	allowMulti bool // allow parallel edges
	allowLoops bool // allow self-loops

	// Storage
	adjacency [][]int
	edges     []Edge
	pairs     map[[2]int]int
}

// NewGraph creates a Graph with n isolated vertices (1..n) and the given options.
// By default loops and multi-edges are rejected.
// Returns ErrInvalidVertexCount unless 0 <= n <= MaxVertices.
// Complexity: O(n)
func NewGraph(n int, opts ...GraphOption) (*Graph, error) {
	if n < 0 || n > MaxVertices {
		return nil, fmt.Errorf("%w: %d not in [0,%d]", ErrInvalidVertexCount, n, MaxVertices)
	}
	g := &Graph{
		adjacency: make([][]int, n+1),
		pairs:     make(map[[2]int]int),
	}
	// Apply options
	for _, opt := range opts {
		opt(g)
	}

	return g, nil
}

// FromEdges creates a Graph with n vertices and adds every edge in order.
// The first failing edge aborts construction; its index is part of the error.
// Complexity: O(n + len(edges))
func FromEdges(n int, edges [][2]int, opts ...GraphOption) (*Graph, error) {
	g, err := NewGraph(n, opts...)
	if err != nil {
		return nil, err
	}
	for i, e := range edges {
		if _, err := g.AddEdge(e[0], e[1]); err != nil {
			return nil, fmt.Errorf("core: edge #%d (%d,%d): %w", i, e[0], e[1], err)
		}
	}

	return g, nil
}

// GraphStats is a read-only snapshot of configuration flags and sizes.
type GraphStats struct {
	AllowsLoops bool
	AllowsMulti bool

	VertexCount   int
	EdgeCount     int
	LoopCount     int // self-loop edges
	ParallelCount int // edges beyond the first between the same pair
	IsolatedCount int // vertices with no incident edge
	MaxDegree     int
}
