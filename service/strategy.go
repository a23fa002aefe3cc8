package service

import (
	"fmt"

	lookuperrors "github.com/amp-labs/amp-lookup/errors"
	"github.com/amp-labs/amp-lookup/lookup"
	"github.com/amp-labs/amp-lookup/optional"
)

// Strategy names a lookup algorithm.
type Strategy string

const (
	// StrategyLinear scans in order; no precondition.
	StrategyLinear Strategy = "linear"
	// StrategyBinary bisects a key-sorted sequence.
	StrategyBinary Strategy = "binary"
	// StrategyBinaryFirst bisects a key-sorted sequence and returns the
	// leftmost match among duplicates.
	StrategyBinaryFirst Strategy = "binary_first"
)

// Strategies lists every known Strategy.
func Strategies() []Strategy {
	return []Strategy{StrategyLinear, StrategyBinary, StrategyBinaryFirst}
}

// NeedsSorted reports whether the strategy requires a key-sorted sequence.
func (s Strategy) NeedsSorted() bool {
	return s != StrategyLinear
}

// ParseStrategy maps a name to a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	for _, s := range Strategies() {
		if string(s) == name {
			return s, nil
		}
	}

	return "", fmt.Errorf("%w: unknown lookup strategy %q", lookuperrors.ErrInvalidArgument, name)
}

func run[R lookup.Record](strategy Strategy, seq []R, target int64) (optional.Value[R], int, error) {
	switch strategy {
	case StrategyLinear:
		result, probes := lookup.LinearCount(seq, target)

		return result, probes, nil
	case StrategyBinary:
		result, probes := lookup.BinaryCount(seq, target)

		return result, probes, nil
	case StrategyBinaryFirst:
		result, probes := lookup.BinaryFirstCount(seq, target)

		return result, probes, nil
	default:
		return optional.None[R](), 0, fmt.Errorf("%w: unknown lookup strategy %q",
			lookuperrors.ErrInvalidArgument, strategy)
	}
}
