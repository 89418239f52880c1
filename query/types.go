package query

import (
	"context"
	"errors"

	"github.com/katalvlaran/shortreach/bfs"
)

// Sentinel errors for decoding and validation.
var (
	// ErrMalformedInput indicates the input could not be parsed.
	ErrMalformedInput = errors.New("query: malformed input")

	// ErrInvalidQuery indicates a decoded query violates a validation rule.
	ErrInvalidQuery = errors.New("query: invalid query")
)

// Query is a single shortest-reach request over vertices 1..Vertices.
// EdgeCount is the count declared by the input; Edges governs.
// The Vertices bound equals core.MaxVertices.
type Query struct {
	Vertices  int      `yaml:"vertices" validate:"gte=0,lte=4194304"`
	EdgeCount int      `yaml:"edge_count" validate:"gte=0"`
	Edges     [][2]int `yaml:"edges,flow"`
	Source    int      `yaml:"source" validate:"gte=1,ltefield=Vertices"`
}

// Solve runs the query through bfs.ShortestReach.
func (q Query) Solve() ([]int, error) {
	return bfs.ShortestReach(q.Vertices, q.EdgeCount, q.Edges, q.Source)
}

// SolveContext is Solve with cancellation.
func (q Query) SolveContext(ctx context.Context) ([]int, error) {
	return bfs.ShortestReachContext(ctx, q.Vertices, q.EdgeCount, q.Edges, q.Source)
}

// Result holds the answer to the query at Index in its batch.
// Distances has Vertices-1 entries ordered by vertex ID, Source omitted.
type Result struct {
	Index     int   `yaml:"index"`
	Source    int   `yaml:"source"`
	Distances []int `yaml:"distances,flow"`
}

// Reached returns the number of vertices other than the source with a
// finite distance.
func (r Result) Reached() int {
	k := 0
	for _, d := range r.Distances {
		if d != bfs.Unreached {
			k++
		}
	}

	return k
}
