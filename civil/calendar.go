// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package civil

import "time"

// Calendar provides the calendar operations on Date values that are
// required by periods.Calculator.
type Calendar struct{}

func (Calendar) Date(year int, month time.Month, day int) (Date, error) {
	return New(year, month, day)
}

func (Calendar) Year(d Date) int                 { return d.Year() }
func (Calendar) Month(d Date) time.Month         { return d.Month() }
func (Calendar) Day(d Date) int                  { return d.Day() }
func (Calendar) Weekday(d Date) time.Weekday     { return d.Weekday() }
func (Calendar) ISOWeek(d Date) (year, week int) { return d.ISOWeek() }

func (Calendar) FromISOWeek(year, week int, wd time.Weekday) (Date, error) {
	return FromISOWeek(year, week, wd)
}

func (Calendar) AddDays(d Date, n int) (Date, error) { return d.AddDays(n) }

func (Calendar) WithYear(d Date, year int) (Date, error) { return d.WithYear(year) }

func (Calendar) WithMonth(d Date, month time.Month) (Date, error) { return d.WithMonth(month) }

func (Calendar) WithDay(d Date, day int) (Date, error) { return d.WithDay(day) }
