// Package iter provides lazy, pull-based helpers over iter.Seq.
package iter

import "iter"

// Predicate reports whether a value should be kept.
// Predicates passed to Filter must be total over the source's values.
type Predicate[V any] func(V) bool

// Filter returns a sequence that contains the elements of s for which p returns true.
// Nothing is evaluated until the result is ranged over; p is then called exactly
// once per element pulled from s, in source order. Ranging over the result again
// ranges over s again, so the result is only restartable if s is.
func Filter[V any](p Predicate[V], s iter.Seq[V]) iter.Seq[V] {
	return func(yield func(V) bool) {
		for v := range s {
			if !p(v) {
				continue
			}
			if !yield(v) {
				return
			}
		}
	}
}
