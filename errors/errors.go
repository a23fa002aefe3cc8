// Package errors holds the sentinel errors shared across amp-lookup and a small
// helper for accumulating several errors into one.
package errors

import "errors"

var (
	// ErrInvalidArgument marks a broken caller contract, such as a nil key
	// function handed to the lookup package.
	ErrInvalidArgument = errors.New("invalid argument")
	ErrNotImplemented  = errors.New("not implemented")
	ErrInvalidRecord   = errors.New("invalid record")
)

// Collection accumulates errors so that a validation pass can report every
// problem at once instead of stopping at the first. It is not thread-safe.
type Collection struct {
	errors []error
}

// Add appends err to the collection. Nil errors are ignored.
func (c *Collection) Add(err error) {
	if err != nil {
		c.errors = append(c.errors, err)
	}
}

// Clear empties the collection.
func (c *Collection) Clear() {
	c.errors = nil
}

// HasError reports whether at least one error was added.
func (c *Collection) HasError() bool {
	return len(c.errors) > 0
}

// Len returns the number of collected errors.
func (c *Collection) Len() int {
	return len(c.errors)
}

// GetError returns nil for an empty collection, the error itself when there
// is exactly one, and an errors.Join of all of them otherwise.
func (c *Collection) GetError() error {
	switch len(c.errors) {
	case 0:
		return nil
	case 1:
		return c.errors[0]
	default:
		return errors.Join(c.errors...)
	}
}
