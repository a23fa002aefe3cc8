package service

import (
	"context"
	"math/rand/v2"
	"testing"

	"github.com/amp-labs/amp-lookup/lookup"
	"github.com/amp-labs/amp-lookup/tests"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type row struct {
	id int64
}

func (r row) Key() int64 { return r.id }

func TestBatchBinary(t *testing.T) {
	t.Parallel()

	svc := New[row](WithWorkers(4))
	defer svc.Close()

	rng := rand.New(rand.NewPCG(7, 8)) //nolint:gosec

	seq := make([]row, 500)
	for i := range seq {
		seq[i] = row{id: rng.Int64N(1000)}
	}

	lookup.SortByKey(seq)

	targets := make([]int64, 300)
	for i := range targets {
		targets[i] = rng.Int64N(1100) - 50
	}

	results, err := svc.BatchBinary(tests.GetUniqueContext(t), seq, targets)
	require.NoError(t, err)
	require.Len(t, results, len(targets))

	for i, target := range targets {
		want := lookup.Linear(seq, target)
		require.Equal(t, want.NonEmpty(), results[i].NonEmpty(), "target %d", target)

		if want.NonEmpty() {
			require.Equal(t, target, results[i].GetOrPanic().id)
		}
	}

	assert.Equal(t, int64(len(targets)), svc.Stats().Lookups)
}

func TestBatchBinary_NoTargets(t *testing.T) {
	t.Parallel()

	svc := New[row]()
	defer svc.Close()

	results, err := svc.BatchBinary(tests.GetUniqueContext(t), []row{{1}}, nil)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestBatchBinary_Cancelled(t *testing.T) {
	t.Parallel()

	svc := New[row](WithWorkers(2))
	defer svc.Close()

	ctx, cancel := context.WithCancel(tests.GetUniqueContext(t))
	cancel()

	_, err := svc.BatchBinary(ctx, []row{{1}, {2}, {3}}, []int64{1, 2, 3})
	require.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, svc.Stats().Lookups)
}
