package lookup

import (
	"github.com/amp-labs/amp-lookup/optional"
)

// Binary returns a record in seq whose key is target. seq must already be
// sorted ascending by key (see SortByKey); that is not checked, and an
// unsorted seq gives an unspecified result.
//
// With duplicate keys, Binary returns the one at the first probed index that
// matches. Use BinaryFirst for the leftmost one.
func Binary[R Record](seq []R, target int64) optional.Value[R] {
	return BinaryFunc(seq, target, keyOf[R])
}

// BinaryFunc is Binary for records whose key comes from key.
// It panics if key is nil.
func BinaryFunc[R any](seq []R, target int64, key KeyFunc[R]) optional.Value[R] {
	mustKeyFunc(key)

	result, _ := bisect(seq, target, key, false)

	return result
}

// BinaryCount is Binary that also reports how many probes it made.
func BinaryCount[R Record](seq []R, target int64) (optional.Value[R], int) {
	return bisect(seq, target, keyOf[R], false)
}

// BinaryFirst is Binary, except that among records sharing the target key it
// always returns the leftmost. On a sorted seq it matches Linear exactly.
func BinaryFirst[R Record](seq []R, target int64) optional.Value[R] {
	return BinaryFirstFunc(seq, target, keyOf[R])
}

// BinaryFirstFunc is BinaryFirst for records whose key comes from key.
// It panics if key is nil.
func BinaryFirstFunc[R any](seq []R, target int64, key KeyFunc[R]) optional.Value[R] {
	mustKeyFunc(key)

	result, _ := bisect(seq, target, key, true)

	return result
}

// BinaryFirstCount is BinaryFirst that also reports how many probes it made.
func BinaryFirstCount[R Record](seq []R, target int64) (optional.Value[R], int) {
	return bisect(seq, target, keyOf[R], true)
}

// bisect searches the closed interval [low, high]. When leftmost is set a hit
// is remembered and the search continues in [low, mid-1], so the last hit is
// the leftmost one.
func bisect[R any](seq []R, target int64, key KeyFunc[R], leftmost bool) (optional.Value[R], int) {
	low, high := 0, len(seq)-1
	probes := 0
	found := -1

	for low <= high {
		// Written this way so low+high cannot overflow.
		mid := low + (high-low)/2
		probes++

		switch k := key(seq[mid]); {
		case k == target:
			if !leftmost {
				return optional.Some(seq[mid]), probes
			}

			found = mid
			high = mid - 1
		case k < target:
			low = mid + 1
		default:
			high = mid - 1
		}
	}

	if found < 0 {
		return optional.None[R](), probes
	}

	return optional.Some(seq[found]), probes
}
