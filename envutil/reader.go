package envutil

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
)

var (
	ErrBadEnvVar     = errors.New("error parsing environment variable")
	ErrEnvVarMissing = errors.New("missing environment variable")
)

// Reader is the result of reading one environment variable: its value, or
// the reason there is none.
type Reader[A any] struct {
	key     string
	present bool
	err     error

	value A
}

// Key returns the variable name.
func (e Reader[A]) Key() string {
	return e.key
}

// Value returns the value, or an error if the variable was missing or
// didn't parse.
func (e Reader[A]) Value() (A, error) { //nolint:ireturn
	if e.err != nil {
		return e.value, fmt.Errorf("%w %s: %w", ErrBadEnvVar, e.key, e.err)
	}

	if !e.present {
		return e.value, fmt.Errorf("%w %s", ErrEnvVarMissing, e.key)
	}

	return e.value, nil
}

// ValueOrFatal returns the value or logs the problem and exits.
func (e Reader[A]) ValueOrFatal() A { //nolint:ireturn
	value, err := e.Value()
	if err != nil {
		slog.Error("error reading environment variable", "key", e.key, "error", err)
		os.Exit(1)
	}

	return value
}

// ValueOrElse returns the value, or v if the variable was missing or didn't
// parse. A parse failure is logged.
func (e Reader[A]) ValueOrElse(v A) A { //nolint:ireturn
	if e.present && e.err == nil {
		return e.value
	}

	if e.err != nil {
		slog.Warn("error reading environment variable, using fallback value",
			"key", e.key, "error", e.err, "fallback", v)
	}

	return v
}

// HasValue reports whether the variable was set and parsed.
func (e Reader[A]) HasValue() bool {
	return e.present && e.err == nil
}

// WithDefault substitutes v when the variable is missing. A parse error is
// kept.
func (e Reader[A]) WithDefault(v A) Reader[A] { //nolint:ireturn
	if e.present || e.err != nil {
		return e
	}

	return Reader[A]{
		key:     e.key,
		present: true,
		value:   v,
	}
}

// WithFallback returns other when this variable is missing.
func (e Reader[A]) WithFallback(other Reader[A]) Reader[A] { //nolint:ireturn
	if e.present || e.err != nil {
		return e
	}

	return other
}

// Map converts the value with f. Missing and failed readers pass through.
func Map[A any, B any](env Reader[A], f func(A) (B, error)) Reader[B] {
	if !env.present || env.err != nil {
		return Reader[B]{
			key:     env.key,
			present: env.present,
			err:     env.err,
		}
	}

	val, err := f(env.value)

	return Reader[B]{
		key:     env.key,
		present: true,
		err:     err,
		value:   val,
	}
}
