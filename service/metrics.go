package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	outcomeHit  = "hit"
	outcomeMiss = "miss"
)

var (
	// lookupCalls counts lookups by strategy and outcome.
	//
	// Labels:
	//   - strategy: "linear", "binary" or "binary_first".
	//   - outcome: "hit" if a record was found, "miss" otherwise. A miss is a
	//     normal result, so a rising miss rate points at callers asking for
	//     keys that aren't there, not at a fault.
	//
	// Usage example in dashboards:
	//   - sum(rate(lookup_calls_total[5m])) by (strategy)
	//   - rate(lookup_calls_total{outcome="miss"}[5m]) / rate(lookup_calls_total[5m])
	lookupCalls = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Name: "lookup_calls_total",
		Help: "The total number of keyed lookups",
	}, []string{"strategy", "outcome"})

	// lookupProbes records how many records each lookup compared against the
	// target. Linear lookups land near the sequence length, binary ones near
	// log2 of it; a binary p99 far above log2(N) means callers are paying
	// for big sequences.
	lookupProbes = promauto.NewHistogramVec(prometheus.HistogramOpts{ //nolint:gochecknoglobals
		Name:    "lookup_probes",
		Help:    "Number of key comparisons made by a lookup",
		Buckets: prometheus.ExponentialBuckets(1, 2, 16), //nolint:mnd
	}, []string{"strategy"})

	// sortRecords records the length of every sequence sorted.
	sortRecords = promauto.NewHistogram(prometheus.HistogramOpts{ //nolint:gochecknoglobals
		Name:    "lookup_sort_records",
		Help:    "Number of records in each sorted sequence",
		Buckets: prometheus.ExponentialBuckets(1, 4, 12), //nolint:mnd
	})
)

// init creates every strategy/outcome series up front so rate() queries
// have data from process start.
func init() {
	for _, strategy := range Strategies() {
		lookupCalls.WithLabelValues(string(strategy), outcomeHit).Add(0)
		lookupCalls.WithLabelValues(string(strategy), outcomeMiss).Add(0)
	}
}

func recordLookup(strategy Strategy, found bool, probes int) {
	outcome := outcomeMiss
	if found {
		outcome = outcomeHit
	}

	lookupCalls.WithLabelValues(string(strategy), outcome).Inc()
	lookupProbes.WithLabelValues(string(strategy)).Observe(float64(probes))
}
