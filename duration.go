// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package reldate

import (
	"time"
)

// RelativeDuration represents the magnitude of a time span that may not be
// absolute, combining a signed number of whole calendar months with a signed
// absolute time.Duration. The two components are kept independent: the
// duration part is always interpreted as elapsed time and is never folded
// into months, even when it exceeds a nominal month. Values are immutable
// and compare field-wise with ==.
type RelativeDuration struct {
	months   int
	duration time.Duration
}

// Months returns a RelativeDuration of the given number of calendar months.
func Months(n int) RelativeDuration {
	return RelativeDuration{months: n}
}

// Years returns a RelativeDuration of the given number of calendar years,
// equivalent to Months(12 * n).
func Years(n int) RelativeDuration {
	return RelativeDuration{months: 12 * n}
}

// Weeks returns a RelativeDuration of an absolute 7*n days.
func Weeks(n int) RelativeDuration {
	return RelativeDuration{duration: time.Duration(n) * 7 * 24 * time.Hour}
}

// Days returns a RelativeDuration of an absolute n days.
func Days(n int) RelativeDuration {
	return RelativeDuration{duration: time.Duration(n) * 24 * time.Hour}
}

// Hours returns a RelativeDuration of an absolute n hours.
func Hours(n int) RelativeDuration {
	return RelativeDuration{duration: time.Duration(n) * time.Hour}
}

// Minutes returns a RelativeDuration of an absolute n minutes.
func Minutes(n int) RelativeDuration {
	return RelativeDuration{duration: time.Duration(n) * time.Minute}
}

// Seconds returns a RelativeDuration of an absolute n seconds.
func Seconds(n int) RelativeDuration {
	return RelativeDuration{duration: time.Duration(n) * time.Second}
}

// FromDuration returns a RelativeDuration with the given absolute duration
// and zero months.
func FromDuration(d time.Duration) RelativeDuration {
	return RelativeDuration{duration: d}
}

// WithDuration returns a copy of the RelativeDuration with its absolute
// duration part replaced.
func (rd RelativeDuration) WithDuration(d time.Duration) RelativeDuration {
	return RelativeDuration{months: rd.months, duration: d}
}

// MonthsPart returns the whole-month component.
func (rd RelativeDuration) MonthsPart() int {
	return rd.months
}

// DurationPart returns the absolute duration component.
func (rd RelativeDuration) DurationPart() time.Duration {
	return rd.duration
}

// IsZero returns true if both components are zero.
func (rd RelativeDuration) IsZero() bool {
	return rd.months == 0 && rd.duration == 0
}

// Plus returns the component-wise sum of two RelativeDurations. As a value
// in its own right a RelativeDuration forms a commutative group under Plus;
// the non-associativity documented in the package comment arises only when
// values are applied to dates.
func (rd RelativeDuration) Plus(other RelativeDuration) RelativeDuration {
	return RelativeDuration{
		months:   rd.months + other.months,
		duration: rd.duration + other.duration,
	}
}

// Minus returns the component-wise difference of two RelativeDurations.
func (rd RelativeDuration) Minus(other RelativeDuration) RelativeDuration {
	return rd.Plus(other.Neg())
}

// Neg returns the RelativeDuration with both components negated.
func (rd RelativeDuration) Neg() RelativeDuration {
	return RelativeDuration{months: -rd.months, duration: -rd.duration}
}

// Mul returns the RelativeDuration with both components scaled by n.
// Both fields are scaled directly rather than by repeated addition, which
// is what allows rule.T to recompute each element of a sequence from its
// anchor without accumulating clamping drift.
func (rd RelativeDuration) Mul(n int) RelativeDuration {
	return RelativeDuration{
		months:   rd.months * n,
		duration: rd.duration * time.Duration(n),
	}
}

// Div returns the RelativeDuration with both components divided by n using
// integer division.
func (rd RelativeDuration) Div(n int) RelativeDuration {
	return RelativeDuration{
		months:   rd.months / n,
		duration: rd.duration / time.Duration(n),
	}
}

// Add applies a RelativeDuration to a date in two ordered phases: the date
// is first shifted by the month component via ShiftMonths, with end-of-month
// clamping, and the absolute duration component is then added to the result.
// The intermediate value retains no memory of the original day, so
// Add(Add(d, x), x) is generally not the same as Add(d, x.Plus(x)):
// the first form clamps twice against each intermediate day, the second
// clamps once against the original. An error wrapping ErrOutOfRange is
// returned if either phase leaves the representable range of D.
func Add[D Datelike[D]](date D, delta RelativeDuration) (D, error) {
	shifted, err := ShiftMonths(date, delta.months)
	if err != nil {
		var zero D
		return zero, err
	}
	return shifted.Add(delta.duration)
}

// Sub subtracts a RelativeDuration from a date; it is Add with the negated
// delta.
func Sub[D Datelike[D]](date D, delta RelativeDuration) (D, error) {
	return Add(date, delta.Neg())
}
