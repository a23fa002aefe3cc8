package lookup

import (
	"github.com/amp-labs/amp-lookup/assert"
)

// Record is anything with an integer lookup key. Other attributes of the
// record are never inspected.
type Record interface {
	Key() int64
}

// KeyFunc extracts the lookup key from a record.
type KeyFunc[R any] func(R) int64

// keyOf is the KeyFunc used by the Record-based entry points.
func keyOf[R Record](r R) int64 {
	return r.Key()
}

func mustKeyFunc[R any](key KeyFunc[R]) {
	assert.Argument(key != nil, "lookup: key function is nil")
}
