// Package bfs provides breadth-first search over a core.Graph,
// returning per-hop weighted distances, parent links, and visit order.
//
// BFS explores vertices in increasing distance from a start vertex,
// with optional hooks, depth limiting, and neighbor filtering.
package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/shortreach/core"
)

// ErrNeighbors is returned when fetching neighbors from the graph fails.
var ErrNeighbors = errors.New("bfs: neighbor iteration error")

// walker encapsulates mutable BFS state. queue is consumed through head so
// dequeue never reslices; every vertex is appended at most once.
type walker struct {
	graph   *core.Graph
	opts    BFSOptions
	ctx     context.Context
	queue   []int
	head    int
	visited []bool
	res     *BFSResult
}

// BFS runs breadth-first search on g starting from start,
// applying any number of functional Options.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, ErrNeighbors for graph failures,
// the context error on cancellation, or any user-supplied hook error.
func BFS(g *core.Graph, start int, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// Validate start vertex
	n := g.VertexCount()
	if !g.HasVertex(start) {
		return nil, fmt.Errorf("%w: %d not in [1,%d]", ErrStartVertexNotFound, start, n)
	}

	// Prepare walker; index 0 is allocated filler so IDs index directly.
	w := &walker{
		graph:   g,
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]int, 0, n),
		visited: make([]bool, n+1),
		res: &BFSResult{
			Start:  start,
			Order:  make([]int, 0, n),
			Depth:  filled(n+1, Unreached),
			Dist:   filled(n+1, Unreached),
			Parent: make([]int, n+1),
		},
	}

	// Seed queue with start vertex (no parent)
	w.visited[start] = true
	w.res.Depth[start] = 0
	w.res.Dist[start] = 0
	w.opts.OnEnqueue(start, 0)
	w.queue = append(w.queue, start)

	// Main loop
	return w.res, w.loop()
}

// filled returns a slice of length n with every element set to v.
func filled(n, v int) []int {
	s := make([]int, n)
	for i := range s {
		s[i] = v
	}

	return s
}

// enqueue marks child visited one hop below parent, records its depth,
// distance and parent, calls OnEnqueue, and appends it to the queue.
func (w *walker) enqueue(child, parent int) {
	w.visited[child] = true
	w.res.Depth[child] = w.res.Depth[parent] + 1
	w.res.Dist[child] = w.res.Dist[parent] + w.opts.HopWeight
	w.res.Parent[child] = parent
	w.opts.OnEnqueue(child, w.res.Depth[child])
	w.queue = append(w.queue, child)
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for w.head < len(w.queue) {
		// cancellation check (once per loop)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		v := w.dequeue()
		if err := w.visit(v); err != nil {
			return err
		}
		if err := w.enqueueNeighbors(v); err != nil {
			return err
		}
	}
	return nil
}

// dequeue pops the front vertex, invokes OnDequeue, and returns it.
func (w *walker) dequeue() int {
	v := w.queue[w.head]
	w.head++
	w.opts.OnDequeue(v, w.res.Depth[v])
	return v
}

// visit records the vertex in Order and calls OnVisit.
func (w *walker) visit(v int) error {
	w.res.Order = append(w.res.Order, v)
	if err := w.opts.OnVisit(v, w.res.Depth[v]); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %d: %w", v, err)
	}
	return nil
}

// enqueueNeighbors walks v's neighbor list in insertion order, applies
// filtering and MaxDepth, and enqueues each unseen neighbor.
// Returns ErrNeighbors on lookup failure.
func (w *walker) enqueueNeighbors(v int) error {
	neighbors, err := w.graph.Neighbors(v)
	if err != nil {
		return fmt.Errorf("%w: failed to get neighbors of %d: %v", ErrNeighbors, v, err)
	}
	nextDepth := w.res.Depth[v] + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return nil
	}
	for _, nbr := range neighbors {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		// vertices added to g after the walk began are out of scope
		if nbr >= len(w.visited) || w.visited[nbr] || !w.opts.FilterNeighbor(v, nbr) {
			continue
		}
		w.enqueue(nbr, v)
	}
	return nil
}
