package contigset

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func intRange(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

func TestInsertAscendingRun(t *testing.T) {
	s := New[int](Options{})
	for i := 0; i < 20; i++ {
		s.Insert(i)
	}
	if diff := cmp.Diff(intRange(20), s.Slice()); diff != "" {
		t.Fatalf("contents mismatch (-want +got):\n%s", diff)
	}
}

func TestInsertIdempotent(t *testing.T) {
	s := New[int](Options{})
	s.Insert(7)
	s.Insert(7)
	if got := s.Len(); got != 1 {
		t.Fatalf("want 1 element, got %d", got)
	}
	if s.Count(7) != 1 {
		t.Fatalf("count(7) should be 1")
	}
}

func TestInsertThenEraseSameBatch(t *testing.T) {
	s := New[int](Options{})
	s.Insert(5)
	s.Erase(5)
	if s.Contains(5) {
		t.Fatalf("5 should cancel out within the batch")
	}
	if got := s.Len(); got != 0 {
		t.Fatalf("want empty, got %d", got)
	}
}

func TestEraseThenInsertLastWriteWins(t *testing.T) {
	s := New[int](Options{})
	s.Erase(5)
	s.Insert(5)
	if !s.Contains(5) {
		t.Fatalf("last write was insert; 5 should be present")
	}
}

func TestEraseAbsentIsNoop(t *testing.T) {
	s := New[int](Options{})
	s.Insert(1)
	s.Erase(99)
	if got := s.Len(); got != 1 {
		t.Fatalf("erase of absent value changed size: %d", got)
	}
	if !s.Contains(1) {
		t.Fatalf("1 should survive")
	}
}

func TestCapacityTriggeredFlush(t *testing.T) {
	const c = 4
	buffered := New[int](Options{BufferOps: c})
	for i := 0; i < c+1; i++ {
		buffered.Insert(i)
	}
	// The first c inserts filled the log; the c+1th forced a drain first.
	if got := buffered.Pending(); got != 1 {
		t.Fatalf("want 1 pending op after flush, got %d", got)
	}

	interleaved := New[int](Options{BufferOps: c})
	for i := 0; i < c+1; i++ {
		interleaved.Insert(i)
		_ = interleaved.Len() // read between every mutation
	}
	if diff := cmp.Diff(interleaved.Slice(), buffered.Slice()); diff != "" {
		t.Fatalf("flush path diverged from interleaved reads (-want +got):\n%s", diff)
	}
}

func TestInsertAll(t *testing.T) {
	s := New[int](Options{})
	s.InsertAll(3, 1, 2, 1)
	if diff := cmp.Diff([]int{1, 2, 3}, s.Slice()); diff != "" {
		t.Fatalf("contents mismatch (-want +got):\n%s", diff)
	}
}

func TestClear(t *testing.T) {
	s := New[int](Options{})
	s.InsertAll(1, 2, 3)
	_ = s.Len()
	s.Insert(4) // leave a pending op too
	s.Clear()
	if s.Pending() != 0 {
		t.Fatalf("clear should drop pending ops")
	}
	if !s.Empty() {
		t.Fatalf("clear should drop contents")
	}
}

func TestSwap(t *testing.T) {
	a := New[int](Options{})
	b := New[int](Options{})
	a.InsertAll(1, 2)
	_ = a.Len()
	b.Insert(9) // still buffered in b's log

	a.Swap(b)
	if diff := cmp.Diff([]int{9}, a.Slice()); diff != "" {
		t.Fatalf("a should observe b's pending insert (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{1, 2}, b.Slice()); diff != "" {
		t.Fatalf("b should hold a's old contents (-want +got):\n%s", diff)
	}
}

func TestClone(t *testing.T) {
	s := New[int](Options{BufferOps: 8})
	s.InsertAll(2, 1)
	c := s.Clone()

	if c.Pending() != 0 {
		t.Fatalf("clone starts with an empty log")
	}
	if diff := cmp.Diff([]int{1, 2}, c.Slice()); diff != "" {
		t.Fatalf("clone contents (-want +got):\n%s", diff)
	}

	// Clones are independent.
	c.Insert(3)
	if s.Contains(3) {
		t.Fatalf("mutating the clone leaked into the source")
	}
	s.Erase(1)
	if !c.Contains(1) {
		t.Fatalf("mutating the source leaked into the clone")
	}
}

func TestEmptyAndMaxSize(t *testing.T) {
	s := New[int](Options{})
	if !s.Empty() {
		t.Fatalf("new set should be empty")
	}
	if s.MaxSize() <= 0 {
		t.Fatalf("max size should be positive")
	}
	s.Insert(1)
	if s.Empty() {
		t.Fatalf("set with one element is not empty")
	}
}
