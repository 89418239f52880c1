package bfs_test

import (
	"testing"

	"github.com/katalvlaran/shortreach/bfs"
	"github.com/katalvlaran/shortreach/builder"
)

// BenchmarkBFS_Chain measures BFS on a linear chain graph of N vertices.
func BenchmarkBFS_Chain(b *testing.B) {
	const N = 10000
	g, err := builder.BuildGraph(nil, nil, builder.Path(N))
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.SetBytes(int64(N + N - 1))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS(g, 1)
	}
}

// BenchmarkBFS_Grid runs BFS from a corner of a 100×100 lattice.
func BenchmarkBFS_Grid(b *testing.B) {
	const side = 100
	g, err := builder.BuildGraph(nil, nil, builder.Grid(side, side))
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.SetBytes(int64(g.VertexCount() + g.EdgeCount()))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS(g, 1)
	}
}

// BenchmarkShortestReach_RandomSparse includes graph construction from the
// edge list, as a single query would.
func BenchmarkShortestReach_RandomSparse(b *testing.B) {
	const n = 1000
	opts := []builder.BuilderOption{builder.WithSeed(1)}
	_, edges, err := builder.BuildEdges(opts, builder.RandomSparse(n, 0.005))
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.SetBytes(int64(n + len(edges)))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = bfs.ShortestReach(n, len(edges), edges, 1)
	}
}
