// Package assert provides fail-fast contract checks. A failed check panics:
// these guard programming errors, not runtime conditions.
package assert

import (
	"fmt"

	"github.com/amp-labs/amp-lookup/errors"
)

// True panics unless value is true.
// The optional args build the panic message:
// - If the first arg is a string, it's used as a format string with remaining args.
// - Otherwise, all args are included in the panic message.
func True(value bool, args ...any) {
	if value {
		return
	}

	if len(args) == 0 {
		panic("assertion failed")
	}

	if format, ok := args[0].(string); ok {
		panic(fmt.Sprintf(format, args[1:]...))
	}

	panic(fmt.Sprintf("assertion failed: %v", args))
}

// False panics unless value is false.
func False(value bool, args ...any) {
	True(!value, args...)
}

// NotNil panics if value is an untyped nil. A typed nil (for example a nil
// func stored in an interface) is not caught here; compare it directly and
// use True instead.
func NotNil(value any, args ...any) {
	True(value != nil, args...)
}

// Argument panics with an error wrapping errors.ErrInvalidArgument unless
// valid is true. Recovering callers can match the panic value with errors.Is.
func Argument(valid bool, format string, args ...any) {
	if valid {
		return
	}

	panic(fmt.Errorf("%w: %s", errors.ErrInvalidArgument, fmt.Sprintf(format, args...)))
}
