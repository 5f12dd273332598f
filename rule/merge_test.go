// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package rule_test

import (
	"errors"
	"testing"

	"cloudeng.io/reldate"
	"cloudeng.io/reldate/rule"
)

func TestMerge(t *testing.T) {
	monthly := rule.Monthly(nd(2020, 1, 31)).WithCount(3)
	weekly := rule.Weekly(nd(2020, 1, 1)).WithCount(5)

	merged, err := rule.Merge(monthly, weekly)
	if err != nil {
		t.Fatal(err)
	}
	var dates []reldate.CalendarDate
	for d, err := range merged.Dates() {
		if err != nil {
			t.Fatal(err)
		}
		dates = append(dates, d)
	}

	want := []reldate.CalendarDate{
		nd(2020, 1, 1),
		nd(2020, 1, 8),
		nd(2020, 1, 15),
		nd(2020, 1, 22),
		nd(2020, 1, 29),
		nd(2020, 1, 31),
		nd(2020, 2, 29),
		nd(2020, 3, 31),
	}
	if got := len(dates); got != len(want) {
		t.Fatalf("got %v, want %v", dates, want)
	}
	for i := range want {
		if dates[i] != want[i] {
			t.Errorf("%v: got %v, want %v", i, dates[i], want[i])
		}
	}

	// The source rules are not consumed by merging.
	if d, ok, err := monthly.Next(); err != nil || !ok || d != nd(2020, 1, 31) {
		t.Errorf("got %v, %v, %v, want the anchor", d, ok, err)
	}
}

func TestMergeFromCursor(t *testing.T) {
	daily := rule.Daily(nd(2020, 1, 1)).WithCount(4)
	daily.Next() // skip the anchor

	merged, err := rule.Merge(daily)
	if err != nil {
		t.Fatal(err)
	}
	var dates []reldate.CalendarDate
	for d, err := range merged.Dates() {
		if err != nil {
			t.Fatal(err)
		}
		dates = append(dates, d)
	}
	if got, want := len(dates), 3; got != want {
		t.Fatalf("got %v, want %v", got, want)
	}
	if dates[0] != nd(2020, 1, 2) {
		t.Errorf("got %v, want %v", dates[0], nd(2020, 1, 2))
	}
}

func TestMergeEmpty(t *testing.T) {
	merged, err := rule.Merge[reldate.CalendarDate]()
	if err != nil {
		t.Fatal(err)
	}
	for d, err := range merged.Dates() {
		t.Errorf("unexpected element: %v, %v", d, err)
	}
}

func TestMergeErrors(t *testing.T) {
	// A rule already at the edge of the representable range fails to
	// produce its next element and is reported at construction.
	edge := rule.Yearly(nd(9999, 6, 30))
	edge.Next() // the anchor; the next element is out of range

	ok := rule.Daily(nd(2020, 1, 1)).WithCount(2)
	merged, err := rule.Merge(edge, ok)
	if !errors.Is(err, reldate.ErrOutOfRange) {
		t.Fatalf("got %v, want ErrOutOfRange", err)
	}

	// The healthy rule still contributes.
	var n int
	for _, err := range merged.Dates() {
		if err != nil {
			t.Fatal(err)
		}
		n++
	}
	if got, want := n, 2; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestMergeMidSequenceError(t *testing.T) {
	r := rule.Monthly(nd(9999, 11, 30))

	merged, err := rule.Merge(r)
	if err != nil {
		t.Fatal(err)
	}
	var seen int
	var last error
	for _, err := range merged.Dates() {
		if err != nil {
			last = err
			break
		}
		seen++
	}
	if seen != 2 || !errors.Is(last, reldate.ErrOutOfRange) {
		t.Errorf("got %v elements, %v, want 2 and ErrOutOfRange", seen, last)
	}
}
