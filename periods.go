// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package periods computes the boundaries of, and the periods adjacent to,
// the week, month, quarter and year that contain a given date.
//
// Weeks start on Sunday and end on Saturday. Quarters start in January,
// April, July and October. Month, quarter and year results always have a
// day of 1, with the exception of EndOfMonth, EndOfQuarter and EndOfYear.
// NextWeek and PreviousWeek always move a full week, even when given a
// Sunday.
//
// The calendar arithmetic itself is delegated to an implementation of
// Calendar, so that the same rules apply to any date representation.
// civil.Calendar and timecal.Calendar are provided, and the package level
// functions operate on civil.Date values.
//
// Every operation returns either a valid date or an error that satisfies
// errors.Is(err, ErrNoResult); the latter only occurs at the extremes of the
// range supported by the Calendar. No default or partial value is ever
// substituted.
package periods

import "time"

// Calendar represents the calendar operations that a date type D must
// support for use with a Calculator. Implementations must honor proleptic
// Gregorian semantics and must never return an invalid date; operations
// that cannot produce a valid date must return an error instead.
type Calendar[D any] interface {
	// Date returns the date for the specified year, month and day.
	Date(year int, month time.Month, day int) (D, error)

	Year(d D) int
	Month(d D) time.Month
	Day(d D) int
	Weekday(d D) time.Weekday

	// ISOWeek returns the ISO 8601 year and week in which d occurs.
	ISOWeek(d D) (year, week int)

	// FromISOWeek returns the specified weekday of the specified
	// ISO 8601 week.
	FromISOWeek(year, week int, wd time.Weekday) (D, error)

	// AddDays returns d plus n days, n may be negative.
	AddDays(d D, n int) (D, error)

	// WithYear, WithMonth and WithDay replace a single component of d and
	// return an error if the result is not a valid date, eg. February 30th.
	WithYear(d D, year int) (D, error)
	WithMonth(d D, month time.Month) (D, error)
	WithDay(d D, day int) (D, error)
}

// Calculator computes period boundaries for dates of type D. It has no
// mutable state and is safe for concurrent use.
type Calculator[D any] struct {
	cal Calendar[D]
}

// New returns a Calculator that uses the supplied calendar.
func New[D any](cal Calendar[D]) *Calculator[D] {
	return &Calculator[D]{cal: cal}
}

// Calendar returns the calendar used by c.
func (c *Calculator[D]) Calendar() Calendar[D] {
	return c.cal
}

// SortKey returns a value that orders dates chronologically, ie.
// SortKey(a) < SortKey(b) if and only if a is before b.
func (c *Calculator[D]) SortKey(d D) int64 {
	return int64(c.cal.Year(d))*512 + int64(c.cal.Month(d))*32 + int64(c.cal.Day(d))
}

// Compare returns -1, 0 or +1 depending on whether a is before, the same
// as or after b.
func (c *Calculator[D]) Compare(a, b D) int {
	ka, kb := c.SortKey(a), c.SortKey(b)
	switch {
	case ka < kb:
		return -1
	case ka > kb:
		return 1
	}
	return 0
}

func (c *Calculator[D]) addDays(op string, d D, n int) (D, error) {
	r, err := c.cal.AddDays(d, n)
	if err != nil {
		return fail[D](op, err)
	}
	return r, nil
}

func (c *Calculator[D]) withYear(op string, d D, year int) (D, error) {
	r, err := c.cal.WithYear(d, year)
	if err != nil {
		return fail[D](op, err)
	}
	return r, nil
}

func (c *Calculator[D]) withMonth(op string, d D, month time.Month) (D, error) {
	r, err := c.cal.WithMonth(d, month)
	if err != nil {
		return fail[D](op, err)
	}
	return r, nil
}

func (c *Calculator[D]) withDay(op string, d D, day int) (D, error) {
	r, err := c.cal.WithDay(d, day)
	if err != nil {
		return fail[D](op, err)
	}
	return r, nil
}
