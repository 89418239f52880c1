// Package query defines a shortest-reach query, its validation, and the two
// on-disk encodings the CLI reads and writes.
//
// A Query is one (n, m, edges, s) tuple as consumed by bfs.ShortestReach.
// A Result carries the n-1 distances computed for it.
//
// Encodings
//
//   - Text: the classic batch format. The first token is the query count q,
//     then per query a line "n m", m lines "u v", and a line "s". Tokens may
//     be separated by any whitespace; line numbers are tracked for errors.
//     Results are written one line per query as space-separated distances.
//   - YAML: a document with a top-level "queries" list whose items carry
//     vertices, edge_count, edges (as [u, v] pairs) and source. Results are
//     written under a top-level "results" list.
//
// Validation
//
// Query.Validate runs go-playground/validator rules: a vertex count in
// [0, core.MaxVertices], a source in [1, n], and every edge endpoint in [1, n]. Decoding does
// not validate; callers decide whether to.
//
// Errors
//
//   - ErrMalformedInput  for syntax errors; text errors name the 1-based line.
//   - ErrInvalidQuery    for a query that decodes but breaks a rule.
package query
