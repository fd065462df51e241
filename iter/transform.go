package iter

import "iter"

// Transformation maps a value of one type to another.
type Transformation[S, T any] func(S) T

// Transform lazily applies t to each element of s.
func Transform[S, T any](t Transformation[S, T], s iter.Seq[S]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range s {
			if !yield(t(v)) {
				return
			}
		}
	}
}
