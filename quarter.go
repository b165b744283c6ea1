// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package periods

import "time"

// Quarter returns the quarter, 1 to 4, that month falls in.
func Quarter(month time.Month) int {
	return (int(month)-1)/3 + 1
}

// QuarterStartMonth returns the first month of the quarter that month
// falls in: January, April, July or October.
func QuarterStartMonth(month time.Month) time.Month {
	return 1 + 3*((month-1)/3)
}

// BeginningOfQuarter returns the first day of the quarter containing d.
func (c *Calculator[D]) BeginningOfQuarter(d D) (D, error) {
	first, err := c.BeginningOfMonth(d)
	if err != nil {
		return first, err
	}
	return c.withMonth("BeginningOfQuarter", first, QuarterStartMonth(c.cal.Month(d)))
}

// EndOfQuarter returns the last day of the quarter containing d.
func (c *Calculator[D]) EndOfQuarter(d D) (D, error) {
	next, err := c.NextQuarter(d)
	if err != nil {
		return next, err
	}
	return c.addDays("EndOfQuarter", next, -1)
}

// NextQuarter returns the first day of the quarter following the one
// containing d. The fourth quarter rolls over to January 1st of the
// following year.
func (c *Calculator[D]) NextQuarter(d D) (D, error) {
	month := c.cal.Month(d)
	if month >= time.October {
		jan, err := c.BeginningOfYear(d)
		if err != nil {
			return jan, err
		}
		return c.withYear("NextQuarter", jan, c.cal.Year(d)+1)
	}
	first, err := c.BeginningOfMonth(d)
	if err != nil {
		return first, err
	}
	return c.withMonth("NextQuarter", first, QuarterStartMonth(month)+3)
}

// PreviousQuarter returns the first day of the quarter preceding the one
// containing d. The first quarter rolls back to October 1st of the
// previous year.
func (c *Calculator[D]) PreviousQuarter(d D) (D, error) {
	month := c.cal.Month(d)
	first, err := c.BeginningOfMonth(d)
	if err != nil {
		return first, err
	}
	if month <= time.March {
		prev, err := c.withYear("PreviousQuarter", first, c.cal.Year(d)-1)
		if err != nil {
			return prev, err
		}
		return c.withMonth("PreviousQuarter", prev, time.October)
	}
	return c.withMonth("PreviousQuarter", first, QuarterStartMonth(month)-3)
}
