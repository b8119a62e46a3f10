package contigset

import (
	"iter"
	"slices"
)

// All reconciles and returns an ascending iterator over the contents as of
// that moment. Operations recorded after iteration begins are not observed.
// Any mutating or reconciling call invalidates an in-progress iteration.
func (s *Set[T]) All() iter.Seq[T] {
	s.reconcile()
	items := s.items
	return func(yield func(T) bool) {
		for _, v := range items {
			if !yield(v) {
				return
			}
		}
	}
}

// Slice reconciles and returns a copy of the contents in ascending order.
func (s *Set[T]) Slice() []T {
	s.reconcile()
	return slices.Clone(s.items)
}

// At returns the element at index i of the reconciled sequence, without
// reconciling again. Callers index using positions from Find, LowerBound,
// UpperBound, or EqualRange obtained since the last mutation.
func (s *Set[T]) At(i int) T {
	return s.items[i]
}
