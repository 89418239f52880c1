// Package shortreach answers the "shortest reach" question on unweighted,
// undirected graphs: starting from one vertex, how far away is every other
// vertex when each edge costs 6?
//
// 🚀 What is shortreach?
//
//	A small, thread-safe graph toolkit built around one breadth-first search:
//		• Core primitives: vertices 1..N, edges in insertion order, loops and parallels on demand
//		• Traversal: BFS with hooks, depth limits, neighbor filters and cancellation
//		• ShortestReach(n, m, edges, s): distances for every vertex but s, -1 when unreachable
//		• Builders: paths, cycles, stars, wheels, complete graphs, grids, random sparse graphs
//		• Queries: validated batches in the classic text format or YAML
//		• Batch runner: bounded concurrency, Prometheus metrics, structured logs
//
// ✨ Why choose shortreach?
//
//   - Deterministic – the same edge list always yields the same visit order
//   - Exact – each vertex is discovered once, at its minimum hop count
//   - Honest errors – out-of-range vertices come back as errors, never panics
//
// Packages:
//
//	core/          - Graph, Edge and the thread-safe primitives
//	bfs/           - BFS, BFSResult, ShortestReach
//	builder/       - composable topology constructors
//	query/         - Query, Result, text and YAML codecs, validation
//	batch/         - concurrent Runner with metrics
//	cmd/shortreach - the solve / generate / version CLI
//
// Quick ASCII example:
//
//	    1───2       4
//	    │
//	    3
//
//	from 1: vertex 2 → 6, vertex 3 → 6, vertex 4 → -1.
//
//	go install github.com/katalvlaran/shortreach/cmd/shortreach@latest
package shortreach
