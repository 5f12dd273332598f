// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package rule

import (
	"iter"

	"cloudeng.io/algo/container/heap"
	"cloudeng.io/errors"
	"cloudeng.io/reldate"
)

type mergeEntry[D reldate.Datelike[D]] struct {
	date D
	rule *T[D]
}

// Less orders heap entries chronologically.
func (e mergeEntry[D]) Less(other mergeEntry[D]) bool {
	return e.date.Compare(other.date) < 0
}

// Merged yields the elements of several rules as a single sequence in
// chronological order, for example a monthly billing rule interleaved with
// a weekly reminder rule. Each rule is cloned at construction, so the
// originals are left untouched. Rules must step forwards for the merged
// order to be meaningful.
type Merged[D reldate.Datelike[D]] struct {
	h heap.Heap[mergeEntry[D]]
}

// Merge returns a Merged sequence over the given rules. Each rule
// contributes its remaining elements, starting at its current cursor
// position. Rules whose next element cannot be computed contribute
// nothing; their errors are aggregated into the returned error. Unbounded
// rules are carried over as-is and make the merged sequence unbounded.
func Merge[D reldate.Datelike[D]](rules ...*T[D]) (*Merged[D], error) {
	m := &Merged[D]{h: make(heap.Heap[mergeEntry[D]], 0, len(rules))}
	errs := &errors.M{}
	for _, r := range rules {
		rc := r.Clone()
		date, ok, err := rc.Next()
		if err != nil {
			errs.Append(err)
			continue
		}
		if ok {
			m.h.Push(mergeEntry[D]{date: date, rule: rc})
		}
	}
	return m, errs.Err()
}

// Dates returns an iterator over the merged sequence in chronological
// order, consuming the Merged value as it goes. A rule element that cannot
// be represented is yielded as an error and ends the iteration.
func (m *Merged[D]) Dates() iter.Seq2[D, error] {
	return func(yield func(D, error) bool) {
		for m.h.Len() > 0 {
			entry := m.h.Pop()
			if !yield(entry.date, nil) {
				return
			}
			date, ok, err := entry.rule.Next()
			if err != nil {
				var zero D
				yield(zero, err)
				return
			}
			if ok {
				m.h.Push(mergeEntry[D]{date: date, rule: entry.rule})
			}
		}
	}
}
