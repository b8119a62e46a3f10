// Package contigset implements a deferred-write sorted set: an ordered,
// duplicate-free collection backed by a contiguous slice.
//
// # Overview
//
// Mutations do not touch the sorted storage directly. Insert and Erase
// append to a small fixed-capacity operation log; the whole log is
// reconciled against storage in one amortized pass whenever an up-to-date
// view is needed (search, bounds, iteration, size) or the log fills up.
// Reconciliation collapses conflicting operations on the same value down
// to at most one net change (last write wins within the batch), drops
// changes that are no-ops against current contents, then applies all net
// inserts with a single two-run merge and all net deletes with a single
// two-pointer subtraction pass.
//
// API surface
//
//	s := contigset.New[int](contigset.Options{BufferOps: 64})
//	s.Insert(3)
//	s.Insert(1)
//	s.Erase(3)
//	for v := range s.All() { // reconciles, then yields ascending
//		_ = v
//	}
//	_, ok := s.Find(1) // ok == true
//
// # Concurrency
//
// A Set is not safe for concurrent use. Every public call, including
// reads, may reconcile and therefore mutate internal state; guard all
// access with external synchronization if sharing across goroutines.
package contigset
