// Package xerrors attaches typed data to errors while keeping errors.Is and errors.As working.
package xerrors

import "errors"

// ExtendedError carries a value of type T alongside a wrapped error.
// It must not implement slog.LogValuer, or slog resolves the error to its
// data before the log converter can expand it.
type ExtendedError[T any] struct {
	Data T
	err  error
}

func (e ExtendedError[T]) Error() string {
	return e.err.Error()
}

func (e ExtendedError[T]) Unwrap() error {
	return e.err
}

// Extend wraps err with data. Extending a nil error returns nil.
func Extend[T any](data T, err error) error {
	if err == nil {
		return nil
	}
	return ExtendedError[T]{Data: data, err: err}
}

// Extract finds the outermost data of type T anywhere in the chain of err.
func Extract[T any](err error) (T, bool) {
	var extended ExtendedError[T]
	ok := errors.As(err, &extended)
	return extended.Data, ok
}

// Unjoin returns the direct children of an errors.Join result,
// or a single-element slice for any other non-nil error.
func Unjoin(err error) []error {
	if err == nil {
		return nil
	}
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		return joined.Unwrap()
	}
	return []error{err}
}
