// Package bfs provides breadth-first search over a core.Graph, returning
// per-hop weighted distances, parent links, and visit order.
//
// What
//
//   - Explore vertices in non-decreasing hop count from a start vertex.
//   - Every traversed edge costs HopWeight (6); a vertex k hops away has
//     distance 6k. Vertices never reached report Unreached (-1).
//   - ShortestReach(n, m, edges, s) is the one-call form: it builds the graph
//     from an edge list, runs BFS, and returns the distances of vertices
//     1..n in order with s left out.
//   - BFS(g, start, opts...) returns a BFSResult containing:
//   - Order: visit sequence
//   - Depth: hops from start, per vertex ID
//   - Dist: weighted distance from start, per vertex ID
//   - Parent: predecessor in the BFS tree, per vertex ID
//   - Supports functional hooks at three stages:
//   - OnEnqueue (when a vertex is discovered)
//   - OnDequeue (immediately before visiting)
//   - OnVisit   (when visiting; may abort with an error)
//   - Allows filtering of individual neighbor entries via WithFilterNeighbor.
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//
// Determinism
//
//	core.Graph keeps neighbor lists in edge insertion order and BFS enqueues
//	neighbors in that order, so the visit sequence is reproducible for the
//	same edge list. Distances never depend on that order: all vertices first
//	discovered from the same frontier get the same value.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)   (each vertex enqueued once, each adjacency entry scanned once)
//   - Memory: O(V)       (queue, visited, Depth, Dist, Parent)
//
// Usage
//
//	dist, err := bfs.ShortestReach(4, 2, [][2]int{{1, 2}, {1, 3}}, 1)
//	// dist == []int{6, 6, -1}
//
//	res, err := bfs.BFS(
//	    g, 1,
//	    bfs.WithContext(ctx),
//	    bfs.WithMaxDepth(3),
//	    bfs.WithFilterNeighbor(func(curr, nbr int) bool { return nbr != 7 }),
//	    bfs.WithOnVisit(func(v, depth int) error { return nil }),
//	)
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the start vertex is outside [1, N].
//   - ErrOptionViolation      for a negative MaxDepth or non-positive HopWeight.
//   - ErrNeighbors            if core.Neighbors fails for any vertex.
//   - core.ErrVertexOutOfRange from ShortestReach for a bad edge endpoint.
//   - Wrapped user-supplied hook errors from OnVisit, and context errors.
package bfs
