// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package periods

import "time"

// BeginningOfYear returns January 1st of d's year.
func (c *Calculator[D]) BeginningOfYear(d D) (D, error) {
	first, err := c.BeginningOfMonth(d)
	if err != nil {
		return first, err
	}
	return c.withMonth("BeginningOfYear", first, time.January)
}

// EndOfYear returns December 31st of d's year.
func (c *Calculator[D]) EndOfYear(d D) (D, error) {
	r, err := c.cal.Date(c.cal.Year(d), time.December, 31)
	if err != nil {
		return fail[D]("EndOfYear", err)
	}
	return r, nil
}

// NextYear returns January 1st of the year following d's.
func (c *Calculator[D]) NextYear(d D) (D, error) {
	jan, err := c.BeginningOfYear(d)
	if err != nil {
		return jan, err
	}
	return c.withYear("NextYear", jan, c.cal.Year(d)+1)
}

// PreviousYear returns January 1st of the year preceding d's.
func (c *Calculator[D]) PreviousYear(d D) (D, error) {
	jan, err := c.BeginningOfYear(d)
	if err != nil {
		return jan, err
	}
	return c.withYear("PreviousYear", jan, c.cal.Year(d)-1)
}
