package envutil

// Option adjusts a Reader as it is built.
type Option[T any] func(Reader[T]) Reader[T]

// Default supplies dfl when the variable is missing.
func Default[T any](dfl T) Option[T] {
	return func(rdr Reader[T]) Reader[T] {
		return rdr.WithDefault(dfl)
	}
}

// Validate runs f on a present value and turns its error into a read error.
func Validate[T any](f func(T) error) Option[T] {
	return func(rdr Reader[T]) Reader[T] {
		return Map(rdr, func(val T) (T, error) {
			return val, f(val)
		})
	}
}
