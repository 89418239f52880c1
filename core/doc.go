// Package core provides a thread-safe in-memory Graph over integer vertices
// 1..N with a minimal, composable API surface.
//
// The Graph G = (V,E) is undirected and unweighted:
//
//   - Vertices are the integers 1..N; ID 0 is never valid.
//   - Edges are unordered pairs stored in insertion order.
//   - Self-loops (WithLoops) and parallel edges (WithMultiEdges) are opt-in;
//     Permissive() enables both, which is the policy of raw edge-list input.
//   - Neighbor lists keep edge insertion order, so any traversal built on
//     Neighbors is reproducible for the same edge sequence.
//
// Why use core.Graph?
//
//   - Slice-indexed adjacency: no hashing on the traversal path.
//   - Explicit range checks: out-of-range IDs return ErrVertexOutOfRange
//     instead of an index panic.
//   - Clone support: CloneEmpty (vertices+flags), Clone (deep copy).
//
// Core Methods:
//
//	// Construction
//	NewGraph(n int, opts ...GraphOption) (*Graph, error)              // O(n)
//	FromEdges(n int, edges [][2]int, opts ...GraphOption) (*Graph, error)
//	AddVertices(k int) (first int, err error)                         // O(k)
//
//	// Edge lifecycle
//	AddEdge(u, v int) (edgeID int, err error)  // O(1) amortized
//	HasEdge(u, v int) bool                     // O(1)
//
//	// Query
//	HasVertex(v int) bool                      // O(1)
//	Neighbors(v int) ([]int, error)            // O(deg v), insertion order
//	Degree(v int) (int, error)                 // O(1), loops count twice
//	Edges() []Edge                             // O(E), insertion order
//	EdgePairs() [][2]int                       // O(E), insertion order
//	VertexCount() int                          // O(1)
//	EdgeCount() int                            // O(1)
//	Stats() *GraphStats                        // O(V+E)
//
//	// Cloning
//	Clone() *Graph                             // O(V+E)
//	CloneEmpty() *Graph                        // O(V)
//	ClearEdges()                               // O(V)
//
// Errors:
//
//	ErrInvalidVertexCount  – vertex count negative or above MaxVertices
//	ErrVertexOutOfRange    – vertex ID outside [1, N]
//	ErrLoopNotAllowed      – self-loop when loops disabled
//	ErrMultiEdgeNotAllowed – parallel edge when multi-edges disabled
package core
