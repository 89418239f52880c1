package batch

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

// Result label values for queries_total.
const (
	resultOK      = "ok"
	resultInvalid = "invalid"
	resultError   = "error"
)

type metrics struct {
	queries  *prometheus.CounterVec
	reached  prometheus.Counter
	duration prometheus.Histogram
}

func newMetrics(reg prometheus.Registerer) *metrics {
	return &metrics{
		// queries counts solved queries by outcome.
		// Labels: result (ok, invalid, error)
		queries: register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "shortreach",
			Name:      "queries_total",
			Help:      "Total queries processed by outcome",
		}, []string{"result"})),

		// reached sums, over solved queries, the vertices other than the source with a finite distance.
		reached: register(reg, prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "shortreach",
			Name:      "vertices_reached_total",
			Help:      "Total non-source vertices reached across solved queries",
		})),

		// duration measures the time to solve one query.
		duration: register(reg, prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "shortreach",
			Name:      "query_duration_seconds",
			Help:      "Time to solve a single query in seconds",
			Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 10),
		})),
	}
}

// register adds c to reg, or returns the collector reg already holds for
// the same descriptor.
func register[C prometheus.Collector](reg prometheus.Registerer, c C) C {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing
			}
		}
		// a different metric already owns the name
		panic(err)
	}

	return c
}
