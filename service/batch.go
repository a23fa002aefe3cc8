package service

import (
	"context"
	"fmt"

	"github.com/alitto/pond/v2"
	"github.com/amp-labs/amp-lookup/logger"
	"github.com/amp-labs/amp-lookup/optional"
)

// BatchBinary looks up every target in the key-sorted seq concurrently on the
// Service's worker pool. results[i] belongs to targets[i]. seq is only read,
// so it is safe to share with other readers, but not with a concurrent Sort.
//
// If ctx is cancelled, lookups not yet started are skipped and ctx.Err() is
// returned.
func (s *Service[R]) BatchBinary(
	ctx context.Context, seq []R, targets []int64,
) ([]optional.Value[R], error) {
	results := make([]optional.Value[R], len(targets))
	if len(targets) == 0 {
		return results, nil
	}

	// Per-lookup debug lines would swamp the batch summary below.
	quiet := logger.WithMuted(ctx, true)

	tasks := make([]pond.Task, len(targets))

	for i, target := range targets {
		tasks[i] = s.pool.Submit(func() {
			if quiet.Err() != nil {
				return
			}

			results[i], _ = s.Find(quiet, StrategyBinary, seq, target)
		})
	}

	for _, task := range tasks {
		if err := task.Wait(); err != nil {
			return nil, fmt.Errorf("batch lookup: %w", err)
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	hits := 0

	for _, r := range results {
		if r.NonEmpty() {
			hits++
		}
	}

	logger.Get(ctx).Debug("batch lookup finished",
		"records", len(seq), "targets", len(targets), "hits", hits)

	return results, nil
}
