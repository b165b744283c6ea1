// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package civil provides a validated, immutable proleptic Gregorian calendar
// date and a calendar capability built on it that can be used with
// cloudeng.io/periods.
package civil

import (
	"errors"
	"time"

	"cloudeng.io/datetime"
)

// The range of representable years.
const (
	MinYear = -262144
	MaxYear = 262143
)

var (
	// ErrOutOfRange is returned when a year falls outside of
	// [MinYear, MaxYear].
	ErrOutOfRange = errors.New("date out of range")

	// ErrInvalidDate is returned for a month or day that does not exist,
	// eg. February 30 or month 13.
	ErrInvalidDate = errors.New("invalid date")
)

// Day numbers, relative to 1970-01-01, of the first and last
// representable dates.
var (
	minDays = daysFromCivil(MinYear, time.January, 1)
	maxDays = daysFromCivil(MaxYear, time.December, 31)
)

// IsLeap returns true if the given year is a leap year.
func IsLeap(year int) bool {
	return datetime.IsLeap(year)
}

// DaysInMonth returns the number of days in the given month for the given
// year. It returns 0 for an invalid month.
func DaysInMonth(year int, month time.Month) int {
	if month < time.January || month > time.December {
		return 0
	}
	return datetime.DaysInMonth(year, datetime.Month(month))
}

// DaysInYear returns 366 for leap years and 365 otherwise.
func DaysInYear(year int) int {
	if IsLeap(year) {
		return 366
	}
	return 365
}

// ISOWeeksInYear returns the number of ISO 8601 weeks, 52 or 53, in the
// given ISO week-numbering year.
func ISOWeeksInYear(year int) int {
	// December 28th is always in the last week of its ISO year.
	_, week := isoWeek(daysFromCivil(year, time.December, 28))
	return week
}

func yearDay(year int, month time.Month, day int) int {
	return datetime.Date{Month: datetime.Month(month), Day: day}.DayOfYear(year)
}
