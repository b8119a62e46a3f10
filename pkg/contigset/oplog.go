package contigset

import "cmp"

// opKind discriminates buffered operations. Inserts order before deletes so
// that a sorted net-change batch applies all inserts first.
type opKind uint8

const (
	opInsert opKind = iota
	opDelete
)

// op is a single buffered request against the set.
type op[T cmp.Ordered] struct {
	kind  opKind
	value T
}

// record appends o to the operation log, draining the log through a full
// reconciliation first when it is at capacity. Recording never fails.
func (s *Set[T]) record(o op[T]) {
	if len(s.buf) == cap(s.buf) {
		s.reconcile()
	}
	s.buf = append(s.buf, o)
}
