// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package periods

import "time"

// BeginningOfMonth returns the first day of d's month.
func (c *Calculator[D]) BeginningOfMonth(d D) (D, error) {
	return c.withDay("BeginningOfMonth", d, 1)
}

// EndOfMonth returns the last day of d's month.
func (c *Calculator[D]) EndOfMonth(d D) (D, error) {
	next, err := c.NextMonth(d)
	if err != nil {
		return next, err
	}
	return c.addDays("EndOfMonth", next, -1)
}

// NextMonth returns the first day of the month following d's. December
// rolls over to January 1st of the following year.
func (c *Calculator[D]) NextMonth(d D) (D, error) {
	month := c.cal.Month(d)
	if month == time.December {
		return c.NextYear(d)
	}
	first, err := c.BeginningOfMonth(d)
	if err != nil {
		return first, err
	}
	return c.withMonth("NextMonth", first, month+1)
}

// PreviousMonth returns the first day of the month preceding d's. January
// rolls back to December 1st of the previous year.
func (c *Calculator[D]) PreviousMonth(d D) (D, error) {
	month := c.cal.Month(d)
	first, err := c.BeginningOfMonth(d)
	if err != nil {
		return first, err
	}
	if month == time.January {
		dec, err := c.withMonth("PreviousMonth", first, time.December)
		if err != nil {
			return dec, err
		}
		return c.withYear("PreviousMonth", dec, c.cal.Year(d)-1)
	}
	return c.withMonth("PreviousMonth", first, month-1)
}
