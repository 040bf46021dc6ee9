// Package types holds small generic containers shared across packages.
package types

import (
	"cmp"
	"iter"
	"maps"
	"slices"
)

// Set is a mutable hash set.
type Set[T comparable] map[T]struct{}

// NewSet returns a set holding data.
func NewSet[T comparable](data ...T) Set[T] {
	set := make(Set[T], len(data))
	set.Add(data...)
	return set
}

// Add inserts values in place.
func (s Set[T]) Add(values ...T) {
	for _, val := range values {
		s[val] = struct{}{}
	}
}

// Delete removes values in place.
func (s Set[T]) Delete(values ...T) {
	for _, val := range values {
		delete(s, val)
	}
}

// Has reports whether v is in the set.
func (s Set[T]) Has(v T) bool {
	_, ok := s[v]
	return ok
}

// Difference returns the elements of s missing from other.
func (s Set[T]) Difference(other Set[T]) Set[T] {
	diff := make(Set[T])
	for v := range s {
		if !other.Has(v) {
			diff.Add(v)
		}
	}
	return diff
}

// ToIter iterates the set in no particular order.
func (s Set[T]) ToIter() iter.Seq[T] {
	return maps.Keys(s)
}

// ToSlice returns the elements in no particular order.
func (s Set[T]) ToSlice() []T {
	return slices.Collect(s.ToIter())
}

// Sorted returns the elements of an ordered set in ascending order.
func Sorted[T cmp.Ordered](s Set[T]) []T {
	return slices.Sorted(s.ToIter())
}
