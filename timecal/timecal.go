// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package timecal provides a calendar for use with cloudeng.io/periods
// that operates on time.Time values. Every time.Time is interpreted as the
// calendar date on which it falls in the calendar's location and the values
// it creates are the first instant of a date in that location. That instant
// is midnight unless a daylight saving transition skips midnight, in which
// case it is the instant of the transition. Validation and range checking
// follow cloudeng.io/periods/civil and the same errors are returned.
package timecal

import (
	"time"

	"cloudeng.io/periods/civil"
	"github.com/jinzhu/now"
)

// Option represents an option to New.
type Option func(o *options)

type options struct {
	loc *time.Location
}

// WithLocation sets the location used to determine the date of a
// time.Time and for the values returned. The default is time.UTC.
func WithLocation(loc *time.Location) Option {
	return func(o *options) {
		o.loc = loc
	}
}

// Calendar implements periods.Calendar[time.Time]. Note that
// periods.Calculator.BeginningOfWeek returns a Sunday input unchanged,
// including its time of day; use Truncate to obtain the start of that day.
type Calendar struct {
	loc *time.Location
}

// New returns a new Calendar.
func New(opts ...Option) Calendar {
	o := options{loc: time.UTC}
	for _, fn := range opts {
		fn(&o)
	}
	if o.loc == nil {
		o.loc = time.UTC
	}
	return Calendar{loc: o.loc}
}

// Location returns the location used by c.
func (c Calendar) Location() *time.Location {
	if c.loc == nil {
		return time.UTC
	}
	return c.loc
}

// Truncate returns the first instant of the date that t falls on in c's
// location.
func (c Calendar) Truncate(t time.Time) time.Time {
	t = t.In(c.Location())
	start := now.With(t).BeginningOfDay()
	if start.Day() == t.Day() {
		return start
	}
	// Midnight was skipped by a daylight saving transition and the
	// day starts at the transition.
	start, _ = time.Date(t.Year(), t.Month(), t.Day(), 12, 0, 0, 0, t.Location()).ZoneBounds()
	return start
}

func (c Calendar) date(t time.Time) (civil.Date, error) {
	return civil.FromTime(c.Truncate(t))
}

func (c Calendar) toTime(d civil.Date, err error) (time.Time, error) {
	if err != nil {
		return time.Time{}, err
	}
	return c.Truncate(time.Date(d.Year(), d.Month(), d.Day(), 12, 0, 0, 0, c.Location())), nil
}

func (c Calendar) Date(year int, month time.Month, day int) (time.Time, error) {
	return c.toTime(civil.New(year, month, day))
}

func (c Calendar) Year(t time.Time) int             { return t.In(c.Location()).Year() }
func (c Calendar) Month(t time.Time) time.Month     { return t.In(c.Location()).Month() }
func (c Calendar) Day(t time.Time) int              { return t.In(c.Location()).Day() }
func (c Calendar) Weekday(t time.Time) time.Weekday { return t.In(c.Location()).Weekday() }

func (c Calendar) ISOWeek(t time.Time) (year, week int) {
	return t.In(c.Location()).ISOWeek()
}

// FromISOWeek returns the specified weekday of the specified ISO 8601 week.
func (c Calendar) FromISOWeek(year, week int, wd time.Weekday) (time.Time, error) {
	return c.toTime(civil.FromISOWeek(year, week, wd))
}

// AddDays returns the date n days after t.
func (c Calendar) AddDays(t time.Time, n int) (time.Time, error) {
	d, err := c.date(t)
	if err != nil {
		return time.Time{}, err
	}
	return c.toTime(d.AddDays(n))
}

func (c Calendar) WithYear(t time.Time, year int) (time.Time, error) {
	return c.toTime(civil.New(year, c.Month(t), c.Day(t)))
}

func (c Calendar) WithMonth(t time.Time, month time.Month) (time.Time, error) {
	return c.toTime(civil.New(c.Year(t), month, c.Day(t)))
}

func (c Calendar) WithDay(t time.Time, day int) (time.Time, error) {
	return c.toTime(civil.New(c.Year(t), c.Month(t), day))
}
