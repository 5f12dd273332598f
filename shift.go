// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package reldate

import (
	"fmt"
	"time"
)

var (
	daysInMonth     []int // days in each month of a non-leap year
	daysInMonthLeap []int // days in each month of a leap year
)

func daysInMonthForYearInit(year int, month int) int {
	switch month {
	case 2:
		return DaysInFeb(year)
	case 4, 6, 9, 11:
		return 30
	default:
		return 31
	}
}

func init() {
	daysInMonth = make([]int, 12)
	daysInMonthLeap = make([]int, 12)
	for i := 0; i < 12; i++ {
		daysInMonth[i] = daysInMonthForYearInit(2023, i+1)
		daysInMonthLeap[i] = daysInMonthForYearInit(2024, i+1)
	}
}

// IsLeap returns true if the given year is a leap year.
func IsLeap(year int) bool {
	return year%4 == 0 && year%100 != 0 || year%400 == 0
}

// DaysInFeb returns the number of days in February for the given year.
func DaysInFeb(year int) int {
	if IsLeap(year) {
		return 29
	}
	return 28
}

// DaysInMonth returns the number of days in the given month for the given year.
func DaysInMonth(year int, month time.Month) int {
	if IsLeap(year) {
		return daysInMonthLeap[month-1]
	}
	return daysInMonth[month-1]
}

// clampDay shifts a day that does not exist in the given month backwards
// to the final day of that month. Days within the month are unchanged.
func clampDay(year int, month time.Month, day int) int {
	if n := DaysInMonth(year, month); day > n {
		return n
	}
	return day
}

// ShiftMonths returns the date shifted by the given (possibly negative)
// number of calendar months. Month-ends that do not exist in the target
// month are shifted backwards as necessary, so Jan 31 shifted by one month
// is Feb 28 or, in a leap year, Feb 29. Any time-of-day component is
// preserved unchanged. An error wrapping ErrOutOfRange is returned if the
// target date is not representable by D.
func ShiftMonths[D Datelike[D]](date D, months int) (D, error) {
	year, month, day := date.Date()
	// Month arithmetic over a zero-based month with floored division so
	// that negative shifts wrap correctly across year boundaries.
	total := year*12 + int(month) - 1 + months
	y, m0 := total/12, total%12
	if m0 < 0 {
		y--
		m0 += 12
	}
	m := time.Month(m0 + 1)
	return date.WithDate(y, m, clampDay(y, m, day))
}

// ShiftYears returns the date shifted by the given number of years. It is
// equivalent to ShiftMonths(date, 12*years); Feb 29 clamps to Feb 28 in
// non-leap target years.
func ShiftYears[D Datelike[D]](date D, years int) (D, error) {
	return ShiftMonths(date, years*12)
}

// WithMonth returns the date moved to the given month of the same year,
// clamping the day as per ShiftMonths. An error wrapping ErrOutOfRange is
// returned if the month is not in the range January to December.
func WithMonth[D Datelike[D]](date D, month time.Month) (D, error) {
	if month < time.January || month > time.December {
		var zero D
		return zero, fmt.Errorf("%w: month %d not in range 1-12", ErrOutOfRange, month)
	}
	_, current, _ := date.Date()
	return ShiftMonths(date, int(month)-int(current))
}

// WithYear returns the date moved to the given year, clamping the day as
// per ShiftMonths. The only day affected by clamping is Feb 29, which
// becomes Feb 28 in non-leap target years.
func WithYear[D Datelike[D]](date D, year int) (D, error) {
	current, _, _ := date.Date()
	return ShiftYears(date, year-current)
}

// WithDay returns the date moved to the given day of the same month,
// shifted backwards to the final day of the month if the month is shorter.
// An error wrapping ErrOutOfRange is returned if the day is not in the
// range 1-31.
func WithDay[D Datelike[D]](date D, day int) (D, error) {
	if day < 1 || day > 31 {
		var zero D
		return zero, fmt.Errorf("%w: day %d not in range 1-31", ErrOutOfRange, day)
	}
	year, month, _ := date.Date()
	return date.WithDate(year, month, clampDay(year, month, day))
}
