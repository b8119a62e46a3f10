package contigset

import (
	"slices"
	"sort"
)

// Find reconciles and binary-searches for v. It returns the element's
// position when present, or (Len(), false) as the end marker when absent.
func (s *Set[T]) Find(v T) (int, bool) {
	s.reconcile()
	if i, ok := slices.BinarySearch(s.items, v); ok {
		return i, true
	}
	return len(s.items), false
}

// Contains reconciles and reports whether v is present.
func (s *Set[T]) Contains(v T) bool {
	_, ok := s.Find(v)
	return ok
}

// Count reconciles and returns the number of elements equal to v: 0 or 1.
func (s *Set[T]) Count(v T) int {
	if s.Contains(v) {
		return 1
	}
	return 0
}

// LowerBound reconciles and returns the index of the first element not less
// than v, or Len() when every element is less.
func (s *Set[T]) LowerBound(v T) int {
	s.reconcile()
	i, _ := slices.BinarySearch(s.items, v)
	return i
}

// UpperBound reconciles and returns the index of the first element greater
// than v, or Len() when no element is greater.
func (s *Set[T]) UpperBound(v T) int {
	s.reconcile()
	return sort.Search(len(s.items), func(i int) bool { return s.items[i] > v })
}

// EqualRange reconciles and returns the half-open index range of elements
// equal to v. The range spans at most one element.
func (s *Set[T]) EqualRange(v T) (int, int) {
	return s.LowerBound(v), s.UpperBound(v)
}
