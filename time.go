// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package reldate

import (
	"fmt"
	"time"
)

// Time adapts time.Time to the Datelike interface so that values carrying a
// time-of-day can be shifted by calendar months. The embedded time.Time is
// used as-is: its location rides along unchanged and no zone conversion is
// ever performed. Calendar shifts preserve the wall clock, subject to
// time.Date's normalization for wall times that do not exist in the
// location on the target day.
type Time struct {
	time.Time
}

// NewTime returns a Time wrapping the given time.Time.
func NewTime(t time.Time) Time {
	return Time{t}
}

// WithDate implements Datelike, preserving the clock and location. An error
// wrapping ErrOutOfRange is returned if the constructed time does not land
// on the requested calendar date.
func (t Time) WithDate(year int, month time.Month, day int) (Time, error) {
	hour, minute, sec := t.Clock()
	nt := time.Date(year, month, day, hour, minute, sec, t.Nanosecond(), t.Location())
	y, m, d := nt.Date()
	if y != year || m != month || d != day {
		return Time{}, fmt.Errorf("%w: %04d-%02d-%02d not representable", ErrOutOfRange, year, month, day)
	}
	return Time{nt}, nil
}

// Add implements Datelike. It never fails; time.Time spans a far larger
// range than any calendar date this package constructs.
func (t Time) Add(d time.Duration) (Time, error) {
	return Time{t.Time.Add(d)}, nil
}

// Compare implements Datelike.
func (t Time) Compare(other Time) int {
	return t.Time.Compare(other.Time)
}
