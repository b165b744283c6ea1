// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package periods

import (
	"fmt"
	"strings"
)

// Kind identifies a type of period.
type Kind int

const (
	Weekly Kind = iota + 1
	Monthly
	Quarterly
	Yearly
)

var kindNames = map[Kind][]string{
	Weekly:    {"weekly", "week"},
	Monthly:   {"monthly", "month"},
	Quarterly: {"quarterly", "quarter"},
	Yearly:    {"yearly", "year", "annual", "annually"},
}

// Kinds returns all of the supported period kinds in increasing order of
// duration.
func Kinds() []Kind {
	return []Kind{Weekly, Monthly, Quarterly, Yearly}
}

func (k Kind) String() string {
	if names, ok := kindNames[k]; ok {
		return names[0]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Parse parses a period kind from any of "weekly", "week", "monthly",
// "month", "quarterly", "quarter", "yearly", "year", "annual" or
// "annually" in either lower or upper case.
func (k *Kind) Parse(val string) error {
	lc := strings.ToLower(strings.TrimSpace(val))
	for _, kind := range Kinds() {
		for _, name := range kindNames[kind] {
			if lc == name {
				*k = kind
				return nil
			}
		}
	}
	return fmt.Errorf("%w: %q", ErrUnknownKind, val)
}

func unknownKind[D any](k Kind) (D, error) {
	var zero D
	return zero, fmt.Errorf("%w: %v", ErrUnknownKind, k)
}

// Beginning returns the first day of the period of kind k that contains d.
func (c *Calculator[D]) Beginning(k Kind, d D) (D, error) {
	switch k {
	case Weekly:
		return c.BeginningOfWeek(d)
	case Monthly:
		return c.BeginningOfMonth(d)
	case Quarterly:
		return c.BeginningOfQuarter(d)
	case Yearly:
		return c.BeginningOfYear(d)
	}
	return unknownKind[D](k)
}

// End returns the last day of the period of kind k that contains d.
func (c *Calculator[D]) End(k Kind, d D) (D, error) {
	switch k {
	case Weekly:
		return c.EndOfWeek(d)
	case Monthly:
		return c.EndOfMonth(d)
	case Quarterly:
		return c.EndOfQuarter(d)
	case Yearly:
		return c.EndOfYear(d)
	}
	return unknownKind[D](k)
}

// Next returns the first day of the period of kind k that follows the one
// containing d.
func (c *Calculator[D]) Next(k Kind, d D) (D, error) {
	switch k {
	case Weekly:
		return c.NextWeek(d)
	case Monthly:
		return c.NextMonth(d)
	case Quarterly:
		return c.NextQuarter(d)
	case Yearly:
		return c.NextYear(d)
	}
	return unknownKind[D](k)
}

// Previous returns the first day of the period of kind k that precedes the
// one containing d.
func (c *Calculator[D]) Previous(k Kind, d D) (D, error) {
	switch k {
	case Weekly:
		return c.PreviousWeek(d)
	case Monthly:
		return c.PreviousMonth(d)
	case Quarterly:
		return c.PreviousQuarter(d)
	case Yearly:
		return c.PreviousYear(d)
	}
	return unknownKind[D](k)
}

// Period represents the closed interval of dates [Start, End] of a single
// week, month, quarter or year.
type Period[D any] struct {
	Kind       Kind
	Start, End D
}

// Period returns the period of kind k that contains d.
func (c *Calculator[D]) Period(k Kind, d D) (Period[D], error) {
	start, err := c.Beginning(k, d)
	if err != nil {
		return Period[D]{}, err
	}
	end, err := c.End(k, d)
	if err != nil {
		return Period[D]{}, err
	}
	return Period[D]{Kind: k, Start: start, End: end}, nil
}

// Contains returns true if d lies within p.
func (c *Calculator[D]) Contains(p Period[D], d D) bool {
	return c.Compare(p.Start, d) <= 0 && c.Compare(d, p.End) <= 0
}

// Days returns the number of days in p.
func (c *Calculator[D]) Days(p Period[D]) int {
	n := 0
	for d := p.Start; c.Compare(d, p.End) <= 0; n++ {
		next, err := c.cal.AddDays(d, 1)
		if err != nil {
			return n + 1
		}
		d = next
	}
	return n
}
