// Package collections provides generic data structures.
package collections

import (
	"iter"
	"maps"
	"slices"

	zkriter "github.com/zircuit-labs/zkr-go-delegates/iter"
)

// Set is an unordered set of comparable values.
type Set[T comparable] map[T]struct{}

// NewSet creates a set holding vals.
func NewSet[T comparable](vals ...T) Set[T] {
	s := make(Set[T], len(vals))
	s.Add(vals...)
	return s
}

// Add inserts vals.
func (s Set[T]) Add(vals ...T) {
	s.addIter(slices.Values(vals))
}

func (s Set[T]) addIter(vals iter.Seq[T]) {
	for v := range vals {
		s[v] = struct{}{}
	}
}

// Iter ranges over the members in no particular order.
func (s Set[T]) Iter() iter.Seq[T] {
	return maps.Keys(s)
}

func (s Set[T]) has(v T) bool {
	_, ok := s[v]
	return ok
}

func (s Set[T]) Empty() bool {
	return len(s) == 0
}

// Filter returns the members for which p holds.
func (s Set[T]) Filter(p zkriter.Predicate[T]) Set[T] {
	result := NewSet[T]()
	result.addIter(zkriter.Filter(p, s.Iter()))
	return result
}

// Difference returns the members of s that are not in s2.
func (s Set[T]) Difference(s2 Set[T]) Set[T] {
	return s.Filter(zkriter.Not(s2.has))
}
