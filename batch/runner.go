package batch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"time"

	"github.com/katalvlaran/shortreach/query"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"
)

// Runner solves batches of queries. It is safe for concurrent use.
type Runner struct {
	workers    int
	logger     *slog.Logger
	registerer prometheus.Registerer
	validate   bool
	metrics    *metrics
}

// NewRunner returns a Runner with runtime.NumCPU() workers, validation on,
// a discarding logger, and metrics on a fresh private registry.
func NewRunner(opts ...Option) *Runner {
	r := &Runner{
		workers:    runtime.NumCPU(),
		logger:     slog.New(slog.DiscardHandler),
		registerer: prometheus.NewRegistry(),
		validate:   true,
	}
	for _, opt := range opts {
		opt(r)
	}
	r.metrics = newMetrics(r.registerer)

	return r
}

// Workers reports the concurrency bound.
func (r *Runner) Workers() int { return r.workers }

// Run solves qs with at most Workers() queries in flight and returns one
// Result per query, in input order. The first failure cancels the remaining
// queries and is returned naming the 1-based query number; no partial
// results are returned.
func (r *Runner) Run(ctx context.Context, qs []query.Query) ([]query.Result, error) {
	start := time.Now()
	results := make([]query.Result, len(qs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)
	stopped := false
	for i, q := range qs {
		if gctx.Err() != nil {
			stopped = true
			break
		}
		g.Go(func() error {
			res, err := r.solve(gctx, i, q)
			if err != nil {
				return fmt.Errorf("batch: query #%d: %w", i+1, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		r.logger.Error("batch failed",
			slog.Int("queries", len(qs)),
			slog.String("error", err.Error()))
		return nil, err
	}
	// a cancelled parent can stop the loop before any worker fails
	if stopped {
		return nil, fmt.Errorf("batch: %w", ctx.Err())
	}

	r.logger.Info("batch solved",
		slog.Int("queries", len(qs)),
		slog.Int("workers", r.workers),
		slog.Duration("elapsed", time.Since(start)))

	return results, nil
}

// solve validates and answers one query, recording its metrics.
func (r *Runner) solve(ctx context.Context, i int, q query.Query) (query.Result, error) {
	if err := ctx.Err(); err != nil {
		return query.Result{}, err
	}
	if r.validate {
		if err := q.Validate(); err != nil {
			r.metrics.queries.WithLabelValues(resultInvalid).Inc()
			return query.Result{}, err
		}
	}

	begin := time.Now()
	dist, err := q.SolveContext(ctx)
	elapsed := time.Since(begin)
	if err != nil {
		if !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded) {
			r.metrics.queries.WithLabelValues(resultError).Inc()
		}
		return query.Result{}, err
	}

	res := query.Result{Index: i, Source: q.Source, Distances: dist}
	r.metrics.queries.WithLabelValues(resultOK).Inc()
	r.metrics.reached.Add(float64(res.Reached()))
	r.metrics.duration.Observe(elapsed.Seconds())

	r.logger.Debug("query solved",
		slog.Int("index", i),
		slog.Int("vertices", q.Vertices),
		slog.Int("edges", len(q.Edges)),
		slog.Int("reached", res.Reached()),
		slog.Duration("elapsed", elapsed))

	return res, nil
}
