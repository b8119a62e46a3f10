package contigset

import (
	"cmp"
	"slices"

	logpkg "github.com/nomad010/contiguous-ds/pkg/log"
)

// reconcile resolves every pending operation against the sorted store and
// clears the log. It is the only mutator of s.items. With an empty log it
// is a no-op, so read paths can call it unconditionally.
//
// Within one batch the last operation recorded for a value wins. The
// surviving outcome is then filtered against current contents: inserts of
// present values and deletes of absent values net to nothing.
func (s *Set[T]) reconcile() {
	if len(s.buf) == 0 {
		return
	}

	last := make(map[T]opKind, len(s.buf))
	for _, o := range s.buf {
		last[o.value] = o.kind
	}

	var inserts, deletes []T
	for v, k := range last {
		_, present := slices.BinarySearch(s.items, v)
		switch {
		case k == opInsert && !present:
			inserts = append(inserts, v)
		case k == opDelete && present:
			deletes = append(deletes, v)
		}
	}
	slices.Sort(inserts)
	slices.Sort(deletes)

	if len(inserts) > 0 {
		s.items = mergeRuns(s.items, inserts)
	}
	if len(deletes) > 0 {
		s.items = subtractSorted(s.items, deletes)
	}

	if s.logger != nil {
		s.logger.Debug("reconciled",
			logpkg.Int("ops", len(s.buf)),
			logpkg.Int("net_inserts", len(inserts)),
			logpkg.Int("net_deletes", len(deletes)),
			logpkg.Int("size", len(s.items)))
	}
	s.buf = s.buf[:0]
}

// mergeRuns merges two ascending runs into one ascending slice. The runs are
// disjoint (ins was filtered against a), so the result stays strictly
// increasing. The output is sized up front so the merge is all-or-nothing.
func mergeRuns[T cmp.Ordered](a, ins []T) []T {
	out := make([]T, 0, len(a)+len(ins))
	i, j := 0, 0
	for i < len(a) && j < len(ins) {
		if ins[j] < a[i] {
			out = append(out, ins[j])
			j++
		} else {
			out = append(out, a[i])
			i++
		}
	}
	out = append(out, a[i:]...)
	out = append(out, ins[j:]...)
	return out
}

// subtractSorted removes del from items in a single forward pass. Every
// value in del is sorted and present in items exactly once, so matches are
// consumed in store order and a two-cursor sweep suffices.
func subtractSorted[T cmp.Ordered](items, del []T) []T {
	w, d := 0, 0
	for i := range items {
		if d < len(del) && items[i] == del[d] {
			d++
			continue
		}
		items[w] = items[i]
		w++
	}
	return items[:w]
}
