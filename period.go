// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package reldate

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"cloudeng.io/errors"
)

// ErrInvalidPeriod is returned for malformed ISO 8601 period strings.
var ErrInvalidPeriod = errors.New("invalid ISO 8601 period")

// consumeDesignated consumes a signed integer terminated by the given
// designator from spec, returning the value and the remainder. A missing
// designator yields zero and leaves spec untouched.
func consumeDesignated(spec string, designator byte) (int, string, error) {
	i := strings.IndexByte(spec, designator)
	if i < 0 {
		return 0, spec, nil
	}
	n, err := strconv.Atoi(spec[:i])
	if err != nil {
		return 0, "", fmt.Errorf("%w: %q is not a valid integer", ErrInvalidPeriod, spec[:i])
	}
	return n, spec[i+1:], nil
}

func parseDateSpec(datespec string) (months, days int, err error) {
	years, rest, err := consumeDesignated(datespec, 'Y')
	if err != nil {
		return 0, 0, err
	}
	months, rest, err = consumeDesignated(rest, 'M')
	if err != nil {
		return 0, 0, err
	}
	weeks, rest, err := consumeDesignated(rest, 'W')
	if err != nil {
		return 0, 0, err
	}
	days, rest, err = consumeDesignated(rest, 'D')
	if err != nil {
		return 0, 0, err
	}
	if rest != "" {
		return 0, 0, fmt.Errorf("%w: trailing characters %q in %q", ErrInvalidPeriod, rest, datespec)
	}
	return years*12 + months, weeks*7 + days, nil
}

func parseTimeSpec(timespec string) (time.Duration, error) {
	hours, rest, err := consumeDesignated(timespec, 'H')
	if err != nil {
		return 0, err
	}
	minutes, rest, err := consumeDesignated(rest, 'M')
	if err != nil {
		return 0, err
	}
	seconds, rest, err := consumeDesignated(rest, 'S')
	if err != nil {
		return 0, err
	}
	if rest != "" {
		return 0, fmt.Errorf("%w: trailing characters %q in %q", ErrInvalidPeriod, rest, timespec)
	}
	return time.Duration(hours)*time.Hour +
		time.Duration(minutes)*time.Minute +
		time.Duration(seconds)*time.Second, nil
}

// ParsePeriod parses an ISO 8601 period of the form PnYnMnWnDTnHnMnS into a
// RelativeDuration. Unlike a plain duration parse, the year and month
// designators retain their calendar identity and populate the month
// component; weeks, days and the time part populate the absolute duration
// component. Each n is a signed integer and any designator may be omitted,
// so 'P1M' is one calendar month and 'PT1M' one minute.
func ParsePeriod(val string) (RelativeDuration, error) {
	spec, ok := strings.CutPrefix(val, "P")
	if !ok {
		return RelativeDuration{}, fmt.Errorf("%w: %q must start with P", ErrInvalidPeriod, val)
	}
	datespec, timespec, _ := strings.Cut(spec, "T")
	months, days, err := parseDateSpec(datespec)
	if err != nil {
		return RelativeDuration{}, err
	}
	dur, err := parseTimeSpec(timespec)
	if err != nil {
		return RelativeDuration{}, err
	}
	return RelativeDuration{
		months:   months,
		duration: time.Duration(days)*24*time.Hour + dur,
	}, nil
}

// ParsePeriodList parses a comma separated list of ISO 8601 periods,
// returning the periods that parsed and an error aggregating every failure.
func ParsePeriodList(val string) ([]RelativeDuration, error) {
	if len(val) == 0 {
		return nil, nil
	}
	parts := strings.Split(val, ",")
	rds := make([]RelativeDuration, 0, len(parts))
	errs := &errors.M{}
	for _, part := range parts {
		rd, err := ParsePeriod(strings.TrimSpace(part))
		if err != nil {
			errs.Append(err)
			continue
		}
		rds = append(rds, rd)
	}
	return rds, errs.Err()
}

func appendSpec(out []byte, n int64, designator byte) []byte {
	if n == 0 {
		return out
	}
	out = strconv.AppendInt(out, n, 10)
	return append(out, designator)
}

// String renders the RelativeDuration in the ISO 8601 period form accepted
// by ParsePeriod. Sub-second precision is truncated. The zero value renders
// as 'P0D'.
func (rd RelativeDuration) String() string {
	if rd.IsZero() {
		return "P0D"
	}
	years, months := int64(rd.months/12), int64(rd.months%12)
	secs := int64(rd.duration / time.Second)
	days := secs / (24 * 60 * 60)
	secs -= days * 24 * 60 * 60
	hours := secs / (60 * 60)
	secs -= hours * 60 * 60
	minutes := secs / 60
	secs -= minutes * 60

	out := append(make([]byte, 0, 16), 'P')
	out = appendSpec(out, years, 'Y')
	out = appendSpec(out, months, 'M')
	out = appendSpec(out, days, 'D')
	if hours != 0 || minutes != 0 || secs != 0 {
		out = append(out, 'T')
		out = appendSpec(out, hours, 'H')
		out = appendSpec(out, minutes, 'M')
		out = appendSpec(out, secs, 'S')
	}
	return string(out)
}
