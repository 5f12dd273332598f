// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package reldate

import (
	"cmp"
	"fmt"
	"time"
)

// Years representable by a CalendarDate.
const (
	MinYear = -9999
	MaxYear = 9999
)

// CalendarDate represents a date with a year, month and day and no
// time-of-day component. It implements Datelike and is the natural anchor
// type for whole-day sequences. The zero value is not a valid date; use
// NewCalendarDate or CalendarDateFromTime.
type CalendarDate struct {
	year  int
	month time.Month
	day   int
}

// NewCalendarDate returns a CalendarDate for the given year, month and day.
// An error wrapping ErrOutOfRange is returned if the year is outside
// MinYear to MaxYear or the month/day do not name a valid calendar date.
func NewCalendarDate(year int, month time.Month, day int) (CalendarDate, error) {
	if year < MinYear || year > MaxYear {
		return CalendarDate{}, fmt.Errorf("%w: year %d not in range %d to %d", ErrOutOfRange, year, MinYear, MaxYear)
	}
	if month < time.January || month > time.December {
		return CalendarDate{}, fmt.Errorf("%w: month %d not in range 1-12", ErrOutOfRange, month)
	}
	if day < 1 || day > DaysInMonth(year, month) {
		return CalendarDate{}, fmt.Errorf("%w: day %d not valid for %v %d", ErrOutOfRange, day, month, year)
	}
	return CalendarDate{year: year, month: month, day: day}, nil
}

// CalendarDateFromTime returns the CalendarDate for the given time,
// discarding its time-of-day and location.
func CalendarDateFromTime(when time.Time) CalendarDate {
	y, m, d := when.Date()
	return CalendarDate{year: y, month: m, day: d}
}

// Year returns the year.
func (cd CalendarDate) Year() int { return cd.year }

// Month returns the month.
func (cd CalendarDate) Month() time.Month { return cd.month }

// Day returns the day of the month.
func (cd CalendarDate) Day() int { return cd.day }

// Date implements Datelike.
func (cd CalendarDate) Date() (year int, month time.Month, day int) {
	return cd.year, cd.month, cd.day
}

// WithDate implements Datelike.
func (cd CalendarDate) WithDate(year int, month time.Month, day int) (CalendarDate, error) {
	return NewCalendarDate(year, month, day)
}

// Add implements Datelike. The duration is truncated towards zero to a
// whole number of days before being applied, so durations of less than
// 24 hours leave the date unchanged.
func (cd CalendarDate) Add(d time.Duration) (CalendarDate, error) {
	days := int(d / (24 * time.Hour))
	if days == 0 {
		return cd, nil
	}
	y, m, dd := time.Date(cd.year, cd.month, cd.day+days, 0, 0, 0, 0, time.UTC).Date()
	if y < MinYear || y > MaxYear {
		return CalendarDate{}, fmt.Errorf("%w: year %d not in range %d to %d", ErrOutOfRange, y, MinYear, MaxYear)
	}
	return CalendarDate{year: y, month: m, day: dd}, nil
}

// Compare implements Datelike, ordering dates chronologically.
func (cd CalendarDate) Compare(other CalendarDate) int {
	switch {
	case cd.year != other.year:
		return cmp.Compare(cd.year, other.year)
	case cd.month != other.month:
		return cmp.Compare(cd.month, other.month)
	default:
		return cmp.Compare(cd.day, other.day)
	}
}

// Time returns the time at midnight UTC on the date.
func (cd CalendarDate) Time() time.Time {
	return time.Date(cd.year, cd.month, cd.day, 0, 0, 0, 0, time.UTC)
}

func (cd CalendarDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", cd.year, cd.month, cd.day)
}
