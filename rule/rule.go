// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package rule provides generators for regular sequences of dates, such as
// the last day of every month, built on reldate.RelativeDuration. Every
// element of a sequence is recomputed from the anchor date as
// anchor + step*k rather than by adding the step to the previous element,
// so the end-of-month clamping applied at one element never compounds into
// the next: a monthly rule anchored on Jan 31 yields Feb 28/29 and then
// Mar 31, not Mar 28.
package rule

import (
	"fmt"
	"iter"

	"cloudeng.io/reldate"
)

// T generates a lazy sequence of dates spaced by a fixed
// reldate.RelativeDuration from an anchor date. The anchor itself is the
// first element. A T is unbounded unless limited by WithCount or WithEnd,
// and its only mutable state is the cursor counting elements already
// emitted; concurrent use of a single T requires external synchronization,
// but clones and the anchor may be used freely.
type T[D reldate.Datelike[D]] struct {
	anchor     D
	step       reldate.RelativeDuration
	count      int // limit on emitted elements, -1 when unbounded
	end        D
	hasEnd     bool
	rollingDay int // 0 when unset
	cursor     int
}

// New returns a rule anchored at the given date with the given step. A
// negative step counts backwards from the anchor; no special casing is
// applied.
func New[D reldate.Datelike[D]](anchor D, step reldate.RelativeDuration) *T[D] {
	return &T[D]{anchor: anchor, step: step, count: -1}
}

// Secondly returns a rule yielding dates one second apart.
func Secondly[D reldate.Datelike[D]](anchor D) *T[D] {
	return New(anchor, reldate.Seconds(1))
}

// Minutely returns a rule yielding dates one minute apart.
func Minutely[D reldate.Datelike[D]](anchor D) *T[D] {
	return New(anchor, reldate.Minutes(1))
}

// Hourly returns a rule yielding dates one hour apart.
func Hourly[D reldate.Datelike[D]](anchor D) *T[D] {
	return New(anchor, reldate.Hours(1))
}

// Daily returns a rule yielding dates one day apart.
func Daily[D reldate.Datelike[D]](anchor D) *T[D] {
	return New(anchor, reldate.Days(1))
}

// Weekly returns a rule yielding dates one week apart.
func Weekly[D reldate.Datelike[D]](anchor D) *T[D] {
	return New(anchor, reldate.Weeks(1))
}

// Monthly returns a rule yielding dates one calendar month apart.
// Month-ends are clamped backwards as necessary.
func Monthly[D reldate.Datelike[D]](anchor D) *T[D] {
	return New(anchor, reldate.Months(1))
}

// Quarterly returns a rule yielding dates three calendar months apart.
func Quarterly[D reldate.Datelike[D]](anchor D) *T[D] {
	return New(anchor, reldate.Months(3))
}

// Yearly returns a rule yielding dates one calendar year apart.
func Yearly[D reldate.Datelike[D]](anchor D) *T[D] {
	return New(anchor, reldate.Years(1))
}

// WithCount returns a copy of the rule that emits at most n elements,
// counting the anchor as the first. WithCount(0) yields an empty sequence.
func (r *T[D]) WithCount(n int) *T[D] {
	nr := *r
	nr.count = n
	return &nr
}

// WithEnd returns a copy of the rule that stops once a computed element
// passes the given date; an element equal to the bound is still emitted.
// For a backward-stepping rule the bound acts symmetrically, stopping at
// elements before it. A bound equal to the anchor yields exactly the
// anchor regardless of the step's direction. A bound on the wrong side of
// the anchor for the step's direction never triggers and leaves the rule
// unbounded.
func (r *T[D]) WithEnd(end D) *T[D] {
	nr := *r
	nr.end = end
	nr.hasEnd = true
	return &nr
}

// WithRollingDay returns a copy of the rule that moves every element onto
// the given day of its month, clamped backwards for short months. A monthly
// rule anchored on Feb 29 with rolling day 31 yields Feb 29, Mar 31,
// Apr 30 and so on. An error is returned if the day is not in the
// range 1-31.
func (r *T[D]) WithRollingDay(day int) (*T[D], error) {
	if day < 1 || day > 31 {
		return nil, fmt.Errorf("%w: rolling day %d not in range 1-31", reldate.ErrOutOfRange, day)
	}
	nr := *r
	nr.rollingDay = day
	return &nr, nil
}

// Clone returns an independent copy of the rule, including its cursor
// position; advancing one never affects the other.
func (r *T[D]) Clone() *T[D] {
	nr := *r
	return &nr
}

// Reset rewinds the cursor so that iteration restarts at the anchor.
func (r *T[D]) Reset() {
	r.cursor = 0
}

// element computes the k'th element of the sequence directly from the
// anchor. Scaling the step rather than iterating it is what keeps per-step
// clamping from accumulating.
func (r *T[D]) element(k int) (D, error) {
	date, err := reldate.Add(r.anchor, r.step.Mul(k))
	if err != nil {
		var zero D
		return zero, err
	}
	if r.rollingDay != 0 {
		return reldate.WithDay(date, r.rollingDay)
	}
	return date, nil
}

// pastEnd reports whether the date lies beyond the end bound in the
// direction of travel implied by the bound's position relative to the
// anchor. Equality is never past the bound. A bound equal to the anchor
// gives no direction, so any element other than the anchor is past it.
func (r *T[D]) pastEnd(date D) bool {
	if !r.hasEnd {
		return false
	}
	switch cmp := r.end.Compare(r.anchor); {
	case cmp > 0:
		return date.Compare(r.end) > 0
	case cmp < 0:
		return date.Compare(r.end) < 0
	default:
		return date.Compare(r.end) != 0
	}
}

// Nth returns the k'th element of the sequence, independently of the
// cursor and in constant time. The returned bool is false if k lies beyond
// the rule's count or end bound. An error wrapping reldate.ErrOutOfRange
// is returned if the element is not representable.
func (r *T[D]) Nth(k int) (D, bool, error) {
	var zero D
	if k < 0 || (r.count >= 0 && k >= r.count) {
		return zero, false, nil
	}
	date, err := r.element(k)
	if err != nil {
		return zero, false, err
	}
	if r.pastEnd(date) {
		return zero, false, nil
	}
	return date, true, nil
}

// Next returns the next element of the sequence and advances the cursor.
// The returned bool is false once the rule's count or end bound has been
// reached. An error wrapping reldate.ErrOutOfRange is returned if the
// element is not representable, in which case the cursor does not advance.
func (r *T[D]) Next() (D, bool, error) {
	date, ok, err := r.Nth(r.cursor)
	if err != nil || !ok {
		return date, false, err
	}
	r.cursor++
	return date, true, nil
}

// Dates returns an iterator over the remaining elements of the sequence,
// advancing the rule's cursor as it is consumed. A sequence with neither a
// count nor an end bound is infinite. An element that cannot be represented
// is yielded as an error and ends the iteration.
func (r *T[D]) Dates() iter.Seq2[D, error] {
	return func(yield func(D, error) bool) {
		for {
			date, ok, err := r.Next()
			if err != nil {
				yield(date, err)
				return
			}
			if !ok || !yield(date, nil) {
				return
			}
		}
	}
}
