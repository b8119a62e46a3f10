package contigset

import (
	"cmp"
	"math"
	"slices"

	logpkg "github.com/nomad010/contiguous-ds/pkg/log"
)

// DefaultBufferOps is the operation log capacity used when Options.BufferOps
// is not set.
const DefaultBufferOps = 64

// Options configures a Set.
type Options struct {
	BufferOps int           // operation log capacity; DefaultBufferOps when <= 0
	Logger    logpkg.Logger // optional; reconcile emits debug stats when set
}

// Set is an ordered, duplicate-free collection of T backed by a contiguous
// sorted slice, with mutations buffered in a fixed-capacity operation log.
// The zero value is not usable; construct with New.
type Set[T cmp.Ordered] struct {
	buf    []op[T] // pending operations, arrival order, len <= cap == BufferOps
	items  []T     // ground truth; strictly increasing between reconciliations
	logger logpkg.Logger
}

// New returns an empty Set with the given options.
func New[T cmp.Ordered](opts Options) *Set[T] {
	c := opts.BufferOps
	if c <= 0 {
		c = DefaultBufferOps
	}
	return &Set[T]{buf: make([]op[T], 0, c), logger: opts.Logger}
}

// Insert records an insert of v. The value becomes visible to reads at the
// next reconciliation. Inserting a present value is absorbed as a no-op.
func (s *Set[T]) Insert(v T) {
	s.record(op[T]{kind: opInsert, value: v})
}

// InsertAll records an insert for each value in turn.
func (s *Set[T]) InsertAll(vs ...T) {
	for _, v := range vs {
		s.Insert(v)
	}
}

// Erase records a delete of v. Erasing an absent value is absorbed as a
// no-op, never an error.
func (s *Set[T]) Erase(v T) {
	s.record(op[T]{kind: opDelete, value: v})
}

// Len reconciles and returns the number of elements.
func (s *Set[T]) Len() int {
	s.reconcile()
	return len(s.items)
}

// Empty reconciles and reports whether the set has no elements.
func (s *Set[T]) Empty() bool {
	return s.Len() == 0
}

// MaxSize returns the theoretical element capacity. It does not reconcile.
func (s *Set[T]) MaxSize() int {
	return math.MaxInt
}

// Pending returns the number of buffered, not yet reconciled operations.
func (s *Set[T]) Pending() int {
	return len(s.buf)
}

// Clear drops the contents and any pending operations without reconciling.
func (s *Set[T]) Clear() {
	s.items = s.items[:0]
	s.buf = s.buf[:0]
}

// Swap exchanges contents and pending operations with other. The operation
// log capacities travel with their slices.
func (s *Set[T]) Swap(other *Set[T]) {
	s.buf, other.buf = other.buf, s.buf
	s.items, other.items = other.items, s.items
}

// Clone reconciles s and returns an independent copy of its contents with an
// empty operation log of the same capacity.
func (s *Set[T]) Clone() *Set[T] {
	s.reconcile()
	return &Set[T]{
		buf:    make([]op[T], 0, cap(s.buf)),
		items:  slices.Clone(s.items),
		logger: s.logger,
	}
}
