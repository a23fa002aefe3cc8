package lookup

import (
	"github.com/amp-labs/amp-lookup/optional"
)

// Linear returns the first record in seq whose key is target. seq may be in
// any order.
func Linear[R Record](seq []R, target int64) optional.Value[R] {
	return LinearFunc(seq, target, keyOf[R])
}

// LinearFunc is Linear for records whose key comes from key.
// It panics if key is nil.
func LinearFunc[R any](seq []R, target int64, key KeyFunc[R]) optional.Value[R] {
	mustKeyFunc(key)

	result, _ := scan(seq, target, key)

	return result
}

// LinearCount is Linear that also reports how many records it compared.
func LinearCount[R Record](seq []R, target int64) (optional.Value[R], int) {
	return scan(seq, target, keyOf[R])
}

func scan[R any](seq []R, target int64, key KeyFunc[R]) (optional.Value[R], int) {
	for i, rec := range seq {
		if key(rec) == target {
			return optional.Some(rec), i + 1
		}
	}

	return optional.None[R](), len(seq)
}
