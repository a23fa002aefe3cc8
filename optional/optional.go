// Package optional models a value that may be absent. Lookups return a
// Value so that "not found" is an ordinary result the caller must inspect,
// rather than a nil pointer or a sentinel error.
package optional

import (
	"encoding/json"
	"errors"
	"fmt"
)

var errMissingValueField = errors.New("optional: missing 'value' field in JSON")

// Value holds either one T (Some) or nothing (None).
// The zero Value is None.
type Value[T any] struct {
	value T
	isSet bool
}

// Some wraps value.
func Some[T any](value T) Value[T] {
	return Value[T]{value: value, isSet: true}
}

// None returns an empty Value.
func None[T any]() Value[T] {
	return Value[T]{}
}

// Of returns Some(value) when ok is true and None otherwise. It adapts the
// comma-ok idiom.
func Of[T any](value T, ok bool) Value[T] {
	if !ok {
		return None[T]()
	}

	return Some(value)
}

func (o Value[T]) NonEmpty() bool {
	return o.isSet
}

func (o Value[T]) Empty() bool {
	return !o.isSet
}

// Get returns the held value and whether it is present.
func (o Value[T]) Get() (T, bool) {
	return o.value, o.isSet
}

// GetOrPanic returns the held value, panicking on None. Intended for tests
// and for call sites where absence is a bug.
func (o Value[T]) GetOrPanic() T {
	if !o.isSet {
		panic("called GetOrPanic on None")
	}

	return o.value
}

// GetOrElse returns the held value, or defaultValue on None.
func (o Value[T]) GetOrElse(defaultValue T) T {
	if o.isSet {
		return o.value
	}

	return defaultValue
}

// Filter keeps the value only if predicate accepts it.
func (o Value[T]) Filter(predicate func(T) bool) Value[T] {
	if o.isSet && predicate(o.value) {
		return o
	}

	return None[T]()
}

// Equals reports whether both are None, or both are Some with values that
// eq considers equal.
func (o Value[T]) Equals(other Value[T], eq func(T, T) bool) bool {
	if o.isSet != other.isSet {
		return false
	}

	if !o.isSet {
		return true
	}

	return eq(o.value, other.value)
}

// String renders "Some(v)" or "None".
func (o Value[T]) String() string {
	if !o.isSet {
		return "None"
	}

	return fmt.Sprintf("Some(%v)", o.value)
}

// Map applies f to the held value.
func Map[T any, U any](o Value[T], f func(T) U) Value[U] {
	if !o.isSet {
		return None[U]()
	}

	return Some(f(o.value))
}

// MarshalJSON encodes None as null and Some(v) as {"value": v}.
func (o Value[T]) MarshalJSON() ([]byte, error) {
	if !o.isSet {
		return []byte("null"), nil
	}

	return json.Marshal(map[string]T{"value": o.value})
}

// UnmarshalJSON is the inverse of MarshalJSON.
func (o *Value[T]) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*o = None[T]()

		return nil
	}

	var wrapper map[string]T
	if err := json.Unmarshal(data, &wrapper); err != nil {
		return err
	}

	value, ok := wrapper["value"]
	if !ok {
		return errMissingValueField
	}

	*o = Some(value)

	return nil
}
