package query_test

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/katalvlaran/shortreach/core"
	"github.com/katalvlaran/shortreach/query"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuery_Validate(t *testing.T) {
	tests := []struct {
		name string
		q    query.Query
		want string // substring of the error; empty means valid
	}{
		{"valid", query.Query{Vertices: 4, EdgeCount: 2, Edges: [][2]int{{1, 2}, {1, 3}}, Source: 1}, ""},
		{"single vertex", query.Query{Vertices: 1, Source: 1}, ""},
		{"loops and parallels", query.Query{Vertices: 2, Edges: [][2]int{{1, 1}, {1, 2}, {2, 1}}, Source: 2}, ""},
		{"endpoint above n", query.Query{Vertices: 3, Edges: [][2]int{{1, 2}, {1, 4}}, Source: 1}, "Edges[1]"},
		{"endpoint zero", query.Query{Vertices: 3, Edges: [][2]int{{0, 2}}, Source: 1}, "Edges[0]"},
		{"source zero", query.Query{Vertices: 3, Source: 0}, "Source"},
		{"source above n", query.Query{Vertices: 3, Source: 4}, "Source"},
		{"negative vertices", query.Query{Vertices: -1, Source: 1}, "Vertices"},
		{"vertices at cap", query.Query{Vertices: core.MaxVertices, Source: 1}, ""},
		{"vertices above cap", query.Query{Vertices: core.MaxVertices + 1, Source: 1}, "Vertices"},
		{"vertices max int", query.Query{Vertices: math.MaxInt, Source: 1}, "Vertices"},
		{"negative edge count", query.Query{Vertices: 2, EdgeCount: -1, Source: 1}, "EdgeCount"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.q.Validate()
			if tc.want == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.Is(err, query.ErrInvalidQuery), "got %v", err)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}

// TestQuery_ValidateReportsAll lists every failing rule in one error.
func TestQuery_ValidateReportsAll(t *testing.T) {
	err := query.Query{Vertices: 2, Edges: [][2]int{{3, 1}, {1, 9}}, Source: 5}.Validate()
	require.Error(t, err)
	for _, part := range []string{"Edges[0]", "Edges[1]", "Source"} {
		assert.True(t, strings.Contains(err.Error(), part), "missing %s in %v", part, err)
	}
}

func TestQuery_Solve(t *testing.T) {
	got, err := query.Query{Vertices: 4, EdgeCount: 2, Edges: [][2]int{{1, 2}, {1, 3}}, Source: 1}.Solve()
	require.NoError(t, err)
	assert.Equal(t, []int{6, 6, -1}, got)
}

func TestResult_Reached(t *testing.T) {
	assert.Equal(t, 2, query.Result{Distances: []int{6, -1, 12}}.Reached())
	assert.Zero(t, query.Result{Distances: []int{}}.Reached())
}
