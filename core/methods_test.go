// SPDX-License-Identifier: MIT
// Package core_test verifies core.Graph method-level contracts.
//
// Purpose:
//   - Lock in insertion-ordered neighbor lists and 1-based vertex ranges.
//   - Validate loop and multi-edge policy enforcement.

package core_test

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/katalvlaran/shortreach/core"
)

// TestNewGraph_Bounds verifies vertex-count validation and the 1..N range.
func TestNewGraph_Bounds(t *testing.T) {
	for _, n := range []int{-1, core.MaxVertices + 1, math.MaxInt} {
		if _, err := core.NewGraph(n); !errors.Is(err, core.ErrInvalidVertexCount) {
			t.Fatalf("NewGraph(%d): want ErrInvalidVertexCount, got %v", n, err)
		}
	}

	g, err := core.NewGraph(0)
	if err != nil {
		t.Fatalf("NewGraph(0): %v", err)
	}
	if g.VertexCount() != 0 || g.HasVertex(0) || g.HasVertex(1) {
		t.Errorf("empty graph: VertexCount=%d HasVertex(0)=%v HasVertex(1)=%v",
			g.VertexCount(), g.HasVertex(0), g.HasVertex(1))
	}

	g, _ = core.NewGraph(3)
	for v, want := range map[int]bool{-1: false, 0: false, 1: true, 3: true, 4: false} {
		if got := g.HasVertex(v); got != want {
			t.Errorf("HasVertex(%d) = %v; want %v", v, got, want)
		}
	}
}

// TestAddEdge_OutOfRange ensures endpoints outside [1,N] are rejected, not indexed.
func TestAddEdge_OutOfRange(t *testing.T) {
	g, _ := core.NewGraph(2)
	for _, e := range [][2]int{{0, 1}, {1, 3}, {-2, 1}, {3, 3}} {
		if _, err := g.AddEdge(e[0], e[1]); !errors.Is(err, core.ErrVertexOutOfRange) {
			t.Errorf("AddEdge(%d,%d): want ErrVertexOutOfRange, got %v", e[0], e[1], err)
		}
	}
	if g.EdgeCount() != 0 {
		t.Errorf("rejected edges were stored: EdgeCount=%d", g.EdgeCount())
	}
}

// TestAddEdge_Policies covers loop and multi-edge rules in default and permissive modes.
func TestAddEdge_Policies(t *testing.T) {
	strict, _ := core.NewGraph(2)
	if _, err := strict.AddEdge(1, 1); !errors.Is(err, core.ErrLoopNotAllowed) {
		t.Errorf("strict loop: want ErrLoopNotAllowed, got %v", err)
	}
	if _, err := strict.AddEdge(1, 2); err != nil {
		t.Fatalf("strict first edge: %v", err)
	}
	// the reverse orientation is the same unordered pair
	if _, err := strict.AddEdge(2, 1); !errors.Is(err, core.ErrMultiEdgeNotAllowed) {
		t.Errorf("strict parallel: want ErrMultiEdgeNotAllowed, got %v", err)
	}

	loose, _ := core.NewGraph(2, core.Permissive())
	for _, e := range [][2]int{{1, 1}, {1, 2}, {2, 1}} {
		if _, err := loose.AddEdge(e[0], e[1]); err != nil {
			t.Errorf("permissive AddEdge(%d,%d): %v", e[0], e[1], err)
		}
	}
	if !loose.Looped() || !loose.Multigraph() {
		t.Errorf("Permissive flags: Looped=%v Multigraph=%v", loose.Looped(), loose.Multigraph())
	}
}

// TestNeighbors_InsertionOrder anchors the ordering contract BFS relies on.
func TestNeighbors_InsertionOrder(t *testing.T) {
	g, err := core.FromEdges(4, [][2]int{{1, 4}, {1, 2}, {3, 1}, {1, 1}}, core.Permissive())
	if err != nil {
		t.Fatal(err)
	}
	got, err := g.Neighbors(1)
	if err != nil {
		t.Fatal(err)
	}
	if want := []int{4, 2, 3, 1, 1}; !reflect.DeepEqual(got, want) {
		t.Errorf("Neighbors(1) = %v; want %v", got, want)
	}
	if d, _ := g.Degree(1); d != 5 {
		t.Errorf("Degree(1) = %d; want 5 (loop counts twice)", d)
	}
	if got, _ := g.Neighbors(3); !reflect.DeepEqual(got, []int{1}) {
		t.Errorf("Neighbors(3) = %v; want [1]", got)
	}

	// returned slice is a copy
	got[0] = 99
	if again, _ := g.Neighbors(3); again[0] != 1 {
		t.Errorf("Neighbors leaked internal storage: %v", again)
	}

	if _, err := g.Neighbors(5); !errors.Is(err, core.ErrVertexOutOfRange) {
		t.Errorf("Neighbors(5): want ErrVertexOutOfRange, got %v", err)
	}
}

// TestFromEdges_ReportsIndex verifies the failing edge index is named.
func TestFromEdges_ReportsIndex(t *testing.T) {
	_, err := core.FromEdges(3, [][2]int{{1, 2}, {2, 9}})
	if !errors.Is(err, core.ErrVertexOutOfRange) {
		t.Fatalf("want ErrVertexOutOfRange, got %v", err)
	}
	if want := "core: edge #1 (2,9)"; len(err.Error()) < len(want) || err.Error()[:len(want)] != want {
		t.Errorf("error %q does not start with %q", err, want)
	}
}

// TestEdgesAndHasEdge checks edge catalog order, IDs, and symmetric lookup.
func TestEdgesAndHasEdge(t *testing.T) {
	g, _ := core.FromEdges(3, [][2]int{{2, 3}, {1, 2}})
	want := []core.Edge{{ID: 1, U: 2, V: 3}, {ID: 2, U: 1, V: 2}}
	if got := g.Edges(); !reflect.DeepEqual(got, want) {
		t.Errorf("Edges() = %v; want %v", got, want)
	}
	if got := g.EdgePairs(); !reflect.DeepEqual(got, [][2]int{{2, 3}, {1, 2}}) {
		t.Errorf("EdgePairs() = %v", got)
	}
	if !g.HasEdge(3, 2) || !g.HasEdge(2, 1) || g.HasEdge(1, 3) {
		t.Errorf("HasEdge mismatch")
	}
}

// TestAddVertices grows the graph and keeps existing adjacency.
func TestAddVertices(t *testing.T) {
	g, _ := core.FromEdges(2, [][2]int{{1, 2}})
	first, err := g.AddVertices(3)
	if err != nil {
		t.Fatal(err)
	}
	if first != 3 || g.VertexCount() != 5 {
		t.Errorf("AddVertices(3): first=%d VertexCount=%d; want 3, 5", first, g.VertexCount())
	}
	if _, err := g.AddEdge(2, 5); err != nil {
		t.Errorf("AddEdge to new vertex: %v", err)
	}
	if _, err := g.AddVertices(-1); !errors.Is(err, core.ErrInvalidVertexCount) {
		t.Errorf("AddVertices(-1): want ErrInvalidVertexCount, got %v", err)
	}
}

// TestCloneIndependence ensures Clone and CloneEmpty do not share storage.
func TestCloneIndependence(t *testing.T) {
	g, _ := core.FromEdges(3, [][2]int{{1, 2}}, core.WithLoops())
	c := g.Clone()
	_, _ = c.AddEdge(2, 3)
	if g.HasEdge(2, 3) || g.EdgeCount() != 1 {
		t.Errorf("mutating clone changed original")
	}
	if nb, _ := g.Neighbors(2); !reflect.DeepEqual(nb, []int{1}) {
		t.Errorf("original Neighbors(2) = %v", nb)
	}

	e := g.CloneEmpty()
	if e.VertexCount() != 3 || e.EdgeCount() != 0 || !e.Looped() {
		t.Errorf("CloneEmpty: V=%d E=%d Looped=%v", e.VertexCount(), e.EdgeCount(), e.Looped())
	}

	g.ClearEdges()
	if g.EdgeCount() != 0 || g.HasEdge(1, 2) || c.EdgeCount() != 2 {
		t.Errorf("ClearEdges: original E=%d clone E=%d", g.EdgeCount(), c.EdgeCount())
	}
}

// TestStats covers loop, parallel, isolated and max-degree accounting.
func TestStats(t *testing.T) {
	g, _ := core.FromEdges(5, [][2]int{{1, 1}, {1, 2}, {2, 1}, {2, 3}}, core.Permissive())
	got := g.Stats()
	want := &core.GraphStats{
		AllowsLoops:   true,
		AllowsMulti:   true,
		VertexCount:   5,
		EdgeCount:     4,
		LoopCount:     1,
		ParallelCount: 1,
		IsolatedCount: 2,
		MaxDegree:     4,
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Stats() = %+v; want %+v", got, want)
	}
}

// TestAddVertices_Cap rejects growth past MaxVertices without changing the graph.
func TestAddVertices_Cap(t *testing.T) {
	g, _ := core.NewGraph(core.MaxVertices - 2)
	if _, err := g.AddVertices(3); !errors.Is(err, core.ErrInvalidVertexCount) {
		t.Fatalf("AddVertices past cap: want ErrInvalidVertexCount, got %v", err)
	}
	if _, err := g.AddVertices(math.MaxInt); !errors.Is(err, core.ErrInvalidVertexCount) {
		t.Fatalf("AddVertices(MaxInt): want ErrInvalidVertexCount, got %v", err)
	}
	if g.VertexCount() != core.MaxVertices-2 {
		t.Errorf("VertexCount = %d after rejected growth", g.VertexCount())
	}
	first, err := g.AddVertices(2)
	if err != nil || first != core.MaxVertices-1 || g.VertexCount() != core.MaxVertices {
		t.Errorf("AddVertices(2) = %d, %v; VertexCount = %d", first, err, g.VertexCount())
	}
}

// TestAddEdge_ReturnsID checks AddEdge hands back the 1-based ID stored in Edges.
func TestAddEdge_ReturnsID(t *testing.T) {
	g, _ := core.NewGraph(3)
	for want, e := range [][2]int{{1, 2}, {2, 3}, {3, 1}} {
		id, err := g.AddEdge(e[0], e[1])
		if err != nil || id != want+1 {
			t.Errorf("AddEdge(%d,%d) = %d, %v; want %d", e[0], e[1], id, err, want+1)
		}
	}
	if _, err := g.AddEdge(1, 2); err == nil {
		t.Errorf("rejected edge must return an error")
	}
	if last := g.Edges()[g.EdgeCount()-1]; last.ID != 3 {
		t.Errorf("last edge ID = %d; want 3", last.ID)
	}
}
