// Package batch answers many shortest-reach queries concurrently.
//
// A Runner fans queries out over a bounded errgroup, keeps results in input
// order, records Prometheus metrics on a registry of the caller's choosing,
// and logs through log/slog. The first failing query cancels the rest.
//
//	reg := prometheus.NewRegistry()
//	r := batch.NewRunner(batch.WithWorkers(4), batch.WithRegisterer(reg))
//	results, err := r.Run(ctx, queries)
package batch
