package lookup

import (
	"cmp"
	"slices"
)

// SortByKey sorts seq ascending by key, in place. Records with equal keys
// keep their relative order. The caller's original ordering is lost; use
// SortedByKey to keep it.
func SortByKey[R Record](seq []R) {
	SortByKeyFunc(seq, keyOf[R])
}

// SortByKeyFunc is SortByKey for records whose key comes from key.
// It panics if key is nil.
func SortByKeyFunc[R any](seq []R, key KeyFunc[R]) {
	mustKeyFunc(key)

	if len(seq) < 2 { //nolint:mnd
		return
	}

	slices.SortStableFunc(seq, func(a, b R) int {
		return cmp.Compare(key(a), key(b))
	})
}

// SortedByKey returns a sorted copy of seq and leaves seq untouched.
func SortedByKey[R Record](seq []R) []R {
	return SortedByKeyFunc(seq, keyOf[R])
}

// SortedByKeyFunc is SortedByKey for records whose key comes from key.
func SortedByKeyFunc[R any](seq []R, key KeyFunc[R]) []R {
	mustKeyFunc(key)

	out := slices.Clone(seq)
	SortByKeyFunc(out, key)

	return out
}

// IsSortedByKey reports whether keys in seq never decrease, which is the
// precondition for Binary and BinaryFirst.
func IsSortedByKey[R Record](seq []R) bool {
	return IsSortedByKeyFunc(seq, keyOf[R])
}

// IsSortedByKeyFunc is IsSortedByKey for records whose key comes from key.
func IsSortedByKeyFunc[R any](seq []R, key KeyFunc[R]) bool {
	mustKeyFunc(key)

	return slices.IsSortedFunc(seq, func(a, b R) int {
		return cmp.Compare(key(a), key(b))
	})
}
