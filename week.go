// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package periods

import "time"

// BeginningOfWeek returns d if it is a Sunday and the most recent Sunday
// before d otherwise.
func (c *Calculator[D]) BeginningOfWeek(d D) (D, error) {
	if c.cal.Weekday(d) == time.Sunday {
		return d, nil
	}
	// ISO weeks start on Monday, so the Sunday of d's ISO week is the
	// first day of the following Sunday based week.
	year, week := c.cal.ISOWeek(d)
	sunday, err := c.cal.FromISOWeek(year, week, time.Sunday)
	if err != nil {
		return fail[D]("BeginningOfWeek", err)
	}
	return c.addDays("BeginningOfWeek", sunday, -7)
}

// EndOfWeek returns the Saturday that ends the week containing d.
func (c *Calculator[D]) EndOfWeek(d D) (D, error) {
	b, err := c.BeginningOfWeek(d)
	if err != nil {
		return b, err
	}
	return c.addDays("EndOfWeek", b, 6)
}

// NextWeek returns the Sunday that starts the week after the one
// containing d. For a Sunday this is 7 days later.
func (c *Calculator[D]) NextWeek(d D) (D, error) {
	b, err := c.BeginningOfWeek(d)
	if err != nil {
		return b, err
	}
	return c.addDays("NextWeek", b, 7)
}

// PreviousWeek returns the Sunday that starts the week before the one
// containing d. For a Sunday this is 7 days earlier.
func (c *Calculator[D]) PreviousWeek(d D) (D, error) {
	b, err := c.BeginningOfWeek(d)
	if err != nil {
		return b, err
	}
	return c.addDays("PreviousWeek", b, -7)
}
