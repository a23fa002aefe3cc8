// Package lookup finds records by integer key in a caller-owned slice.
//
// # Operations
//
// Three operations make up the package:
//
//   - [SortByKey] orders a slice ascending by key, in place and stable.
//   - [Linear] scans any slice for the first record with a key.
//   - [Binary] bisects a slice that is already sorted by key.
//
// Each has a Func variant ([SortByKeyFunc], [LinearFunc], [BinaryFunc]) that
// takes a [KeyFunc] for record types that don't implement [Record].
//
// # Results
//
// Lookups return an [optional.Value]. A missing key is a normal None result,
// never an error. A nil slice behaves like an empty one.
//
// # Preconditions
//
// Binary lookups require the slice to be sorted ascending by key. The
// requirement is not checked: an unsorted slice gives an unspecified result
// (possibly None for a key that is present), but never a panic or an
// out-of-range access. Use [IsSortedByKey] when the ordering is in doubt.
//
// # Duplicate keys
//
// [Linear] returns the first match in slice order. [Binary] returns the
// record at the first probed index whose key matches; for a given slice this
// is deterministic but is not necessarily the leftmost duplicate.
// [BinaryFirst] always returns the leftmost one, so for a sorted slice it
// agrees with [Linear] exactly.
//
// # Ownership and concurrency
//
// Nothing in this package keeps a reference to a slice after returning, and
// there is no package state. Lookups only read, so any number of goroutines
// may look up in the same slice at once. Sorting writes, so a slice must not
// be sorted while anyone else reads it.
//
// # Example
//
//	products := catalog.Sample()
//
//	p, ok := lookup.Linear(products, 4).Get()
//
//	lookup.SortByKey(products)
//	p, ok = lookup.Binary(products, 4).Get()
package lookup
