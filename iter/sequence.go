package iter

import "iter"

// Range returns count consecutive integers beginning at start.
// A count of zero or less produces an empty sequence.
func Range(start, count int) iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := range max(count, 0) {
			if !yield(start + i) {
				return
			}
		}
	}
}

// Naturals returns the unbounded ascending sequence start, start+1, ...
// Consumers must stop ranging on their own.
func Naturals(start int) iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := start; ; i++ {
			if !yield(i) {
				return
			}
		}
	}
}
