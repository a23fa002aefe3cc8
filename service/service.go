// Package service wraps the lookup package for use inside a larger program.
// Every call gets a lookup id, a debug log line, an OpenTelemetry span and
// Prometheus metrics; BatchBinary fans many lookups out over a worker pool.
//
// A Service never holds on to a sequence. The caller owns it and must not
// sort it while lookups on it are in flight.
package service

import (
	"context"
	"runtime"

	"github.com/alitto/pond/v2"
	"github.com/amp-labs/amp-lookup/logger"
	"github.com/amp-labs/amp-lookup/lookup"
	"github.com/amp-labs/amp-lookup/optional"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/atomic"
)

const tracerName = "github.com/amp-labs/amp-lookup/service"

// Stats is a snapshot of a Service's counters.
type Stats struct {
	Lookups int64
	Hits    int64
	Misses  int64
	Sorts   int64
}

// Service runs lookups over sequences of R.
type Service[R lookup.Record] struct {
	tracer trace.Tracer
	pool   pond.Pool

	lookups atomic.Int64
	hits    atomic.Int64
	misses  atomic.Int64
	sorts   atomic.Int64
}

// Option configures a Service.
type Option func(*config)

type config struct {
	workers int
	tracer  trace.Tracer
}

// WithWorkers bounds BatchBinary's concurrency. Values below 1 are ignored.
func WithWorkers(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.workers = n
		}
	}
}

// WithTracer replaces the tracer from the global OpenTelemetry provider.
func WithTracer(tracer trace.Tracer) Option {
	return func(c *config) {
		if tracer != nil {
			c.tracer = tracer
		}
	}
}

// New returns a Service. Call Close to release its worker pool.
func New[R lookup.Record](opts ...Option) *Service[R] {
	cfg := config{
		workers: runtime.GOMAXPROCS(0),
		tracer:  otel.Tracer(tracerName),
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	return &Service[R]{
		tracer: cfg.tracer,
		pool:   pond.NewPool(cfg.workers),
	}
}

// Close waits for running batch lookups and stops the worker pool.
func (s *Service[R]) Close() {
	s.pool.StopAndWait()
}

// Stats returns the counters accumulated since New.
func (s *Service[R]) Stats() Stats {
	return Stats{
		Lookups: s.lookups.Load(),
		Hits:    s.hits.Load(),
		Misses:  s.misses.Load(),
		Sorts:   s.sorts.Load(),
	}
}

// Sort sorts seq in place by key (stable), as lookup.SortByKey does.
func (s *Service[R]) Sort(ctx context.Context, seq []R) {
	ctx, span := s.tracer.Start(ctx, "lookup.sort",
		trace.WithAttributes(attribute.Int("lookup.records", len(seq))))
	defer span.End()

	lookup.SortByKey(seq)

	s.sorts.Inc()
	sortRecords.Observe(float64(len(seq)))

	logger.Get(ctx).Debug("sorted records", "records", len(seq))
}

// Linear finds the first record with key target. seq may be unsorted.
func (s *Service[R]) Linear(ctx context.Context, seq []R, target int64) optional.Value[R] {
	result, _ := s.Find(ctx, StrategyLinear, seq, target)

	return result
}

// Binary finds a record with key target in a key-sorted seq.
func (s *Service[R]) Binary(ctx context.Context, seq []R, target int64) optional.Value[R] {
	result, _ := s.Find(ctx, StrategyBinary, seq, target)

	return result
}

// BinaryFirst finds the leftmost record with key target in a key-sorted seq.
func (s *Service[R]) BinaryFirst(ctx context.Context, seq []R, target int64) optional.Value[R] {
	result, _ := s.Find(ctx, StrategyBinaryFirst, seq, target)

	return result
}

// Outcome is a lookup result together with the number of records the
// strategy compared against the target.
type Outcome[R any] struct {
	Value  optional.Value[R]
	Probes int
}

// Find runs the named strategy. The only error is an unknown strategy; a
// missing key is a None result.
func (s *Service[R]) Find(
	ctx context.Context, strategy Strategy, seq []R, target int64,
) (optional.Value[R], error) {
	outcome, err := s.Explain(ctx, strategy, seq, target)

	return outcome.Value, err
}

// Explain is Find, also reporting how much work the lookup did.
func (s *Service[R]) Explain(
	ctx context.Context, strategy Strategy, seq []R, target int64,
) (Outcome[R], error) {
	ctx = logger.With(ctx, "lookup_id", uuid.NewString(), "strategy", string(strategy), "target", target)

	ctx, span := s.tracer.Start(ctx, "lookup."+string(strategy), trace.WithAttributes(
		attribute.String("lookup.strategy", string(strategy)),
		attribute.Int64("lookup.target", target),
		attribute.Int("lookup.records", len(seq)),
	))
	defer span.End()

	result, probes, err := run(strategy, seq, target)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())

		return Outcome[R]{Value: result}, err
	}

	found := result.NonEmpty()

	s.lookups.Inc()

	if found {
		s.hits.Inc()
	} else {
		s.misses.Inc()
	}

	recordLookup(strategy, found, probes)
	span.SetAttributes(attribute.Int("lookup.probes", probes), attribute.Bool("lookup.found", found))

	logger.Get(ctx).Debug("lookup finished", "records", len(seq), "probes", probes, "found", found)

	return Outcome[R]{Value: result, Probes: probes}, nil
}
