// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package reldate provides support for calendar-relative date arithmetic,
// that is, shifts such as 'one month later' or 'two years earlier' that
// cannot be expressed as a fixed elapsed time. It provides RelativeDuration,
// a value combining a whole-month count with an absolute time.Duration,
// shift functions for moving any date-like value by months or years with
// well-defined end-of-month behaviour, and (in the rule subpackage)
// generators for regular sequences of dates such as 'the 31st of every
// month'.
//
// Only the Gregorian calendar is supported and its rules are applied
// uniformly to all years; there is no timezone or locale handling.
//
// Shifting by months is unambiguous for days 1-28: one month after Jan 28
// is always Feb 28. When the source day does not exist in the target month
// the last day of the target month is used instead, so one month after
// Jan 31 2020 is Feb 29 2020. Shifted dates retain no memory of the day
// they were shifted from, which makes the application of a RelativeDuration
// to a date intentionally non-associative: shifting Jan 31 by one month
// twice yields Mar 28/29, whereas shifting it by two months at once yields
// Mar 31. Use rule.T to generate sequences of dates that sidestep this by
// recomputing every element from the starting date.
package reldate

import (
	"errors"
	"time"
)

// ErrOutOfRange is returned when a computed calendar shift or duration
// addition falls outside the representable range of the date-like type
// it is applied to. It is the only error kind returned by this package's
// arithmetic and is always wrapped with contextual detail.
var ErrOutOfRange = errors.New("date out of range")

// Datelike represents any date-like value that the shift functions and
// RelativeDuration can operate on. The type parameter is the implementing
// type itself, so that shifts return values of the concrete type rather
// than an interface.
//
// Date, Add and Compare mirror the methods of time.Time. WithDate is the
// single construction hook an implementation adds: it returns a value with
// the given calendar date and all other components (such as time of day)
// unchanged, or an error wrapping ErrOutOfRange if the date cannot be
// represented. WithDate is only ever called with a valid calendar date;
// day-of-month clamping has already been applied by the caller.
type Datelike[D any] interface {
	// Date returns the year, month and day of the value, as time.Time.Date does.
	Date() (year int, month time.Month, day int)

	// WithDate returns a copy of the value with the given calendar date,
	// preserving any sub-day components.
	WithDate(year int, month time.Month, day int) (D, error)

	// Add returns the value shifted by an absolute duration.
	Add(d time.Duration) (D, error)

	// Compare orders two values as time.Time.Compare does: -1 if the
	// receiver is earlier, 0 if equal, +1 if later.
	Compare(other D) int
}
