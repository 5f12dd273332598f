// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package reldate_test

import (
	"time"

	"cloudeng.io/reldate"
)

func nd(year int, month time.Month, day int) reldate.CalendarDate {
	cd, err := reldate.NewCalendarDate(year, month, day)
	if err != nil {
		panic(err)
	}
	return cd
}

func nt(year int, month time.Month, day, hour, minute, sec int) reldate.Time {
	return reldate.NewTime(time.Date(year, month, day, hour, minute, sec, 0, time.UTC))
}

func shiftMonths(d reldate.CalendarDate, n int) reldate.CalendarDate {
	nd, err := reldate.ShiftMonths(d, n)
	if err != nil {
		panic(err)
	}
	return nd
}

func shiftYears(d reldate.CalendarDate, n int) reldate.CalendarDate {
	nd, err := reldate.ShiftYears(d, n)
	if err != nil {
		panic(err)
	}
	return nd
}
