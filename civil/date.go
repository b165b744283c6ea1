// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package civil

import (
	"cmp"
	"fmt"
	"time"
)

// Date represents a valid date in the proleptic Gregorian calendar. Date
// values are immutable and comparable with ==; the zero value is not a
// valid date and is reported as such by IsZero. Values are only created
// by New, MustNew, FromTime, FromISOWeek and the methods that derive one
// Date from another, all of which validate their result.
type Date struct {
	year  int32
	month uint8
	day   uint8
}

// New returns the Date for the specified year, month and day. It returns
// an error wrapping ErrOutOfRange if the year is not representable and
// ErrInvalidDate if the month or day do not exist.
func New(year int, month time.Month, day int) (Date, error) {
	if year < MinYear || year > MaxYear {
		return Date{}, fmt.Errorf("%w: year %d", ErrOutOfRange, year)
	}
	if month < time.January || month > time.December {
		return Date{}, fmt.Errorf("%w: month %d", ErrInvalidDate, month)
	}
	if day < 1 || day > DaysInMonth(year, month) {
		return Date{}, fmt.Errorf("%w: %v %d has no day %d", ErrInvalidDate, month, year, day)
	}
	return Date{year: int32(year), month: uint8(month), day: uint8(day)}, nil
}

// MustNew is like New but panics on error. It is intended for
// constants and tests.
func MustNew(year int, month time.Month, day int) Date {
	d, err := New(year, month, day)
	if err != nil {
		panic(err)
	}
	return d
}

// FromTime returns the Date of t in t's location.
func FromTime(t time.Time) (Date, error) {
	y, m, d := t.Date()
	return New(y, m, d)
}

// FromISOWeek returns the date of the specified weekday in the specified
// ISO 8601 week. The week must exist in year, ie. be in the range
// 1 to ISOWeeksInYear(year). The ISO year may differ from the calendar
// year of the returned date.
func FromISOWeek(year, week int, wd time.Weekday) (Date, error) {
	// Years further out can only yield out of range dates.
	if year < MinYear-1 || year > MaxYear+1 {
		return Date{}, fmt.Errorf("%w: iso year %d", ErrOutOfRange, year)
	}
	if week < 1 || week > ISOWeeksInYear(year) {
		return Date{}, fmt.Errorf("%w: iso year %d has no week %d", ErrInvalidDate, year, week)
	}
	if wd < time.Sunday || wd > time.Saturday {
		return Date{}, fmt.Errorf("%w: weekday %d", ErrInvalidDate, wd)
	}
	return fromDays(isoWeekStart(year, week) + isoWeekday(wd) - 1)
}

func fromDays(n int) (Date, error) {
	if n < minDays || n > maxDays {
		y, _, _ := civilFromDays(n)
		return Date{}, fmt.Errorf("%w: year %d", ErrOutOfRange, y)
	}
	y, m, d := civilFromDays(n)
	return Date{year: int32(y), month: uint8(m), day: uint8(d)}, nil
}

func (d Date) days() int {
	return daysFromCivil(int(d.year), time.Month(d.month), int(d.day))
}

// Year returns the year of d.
func (d Date) Year() int { return int(d.year) }

// Month returns the month of d.
func (d Date) Month() time.Month { return time.Month(d.month) }

// Day returns the day of the month of d.
func (d Date) Day() int { return int(d.day) }

// IsZero returns true for the zero value, which is not a valid date.
func (d Date) IsZero() bool { return d == Date{} }

// Weekday returns the day of the week of d.
func (d Date) Weekday() time.Weekday {
	return weekdayOf(d.days())
}

// YearDay returns the day of the year, 1-365 for non-leap years and
// 1-366 for leap years. It returns 0 for the zero Date.
func (d Date) YearDay() int {
	if d.IsZero() {
		return 0
	}
	return yearDay(int(d.year), time.Month(d.month), int(d.day))
}

// ISOWeek returns the ISO 8601 year and week number in which d occurs.
// Week ranges from 1 to 53. Jan 01 to Jan 03 of year n might belong to
// week 52 or 53 of year n-1, and Dec 29 to Dec 31 might belong to week 1
// of year n+1.
func (d Date) ISOWeek() (year, week int) {
	return isoWeek(d.days())
}

// AddDays returns d plus n days, n may be negative.
func (d Date) AddDays(n int) (Date, error) {
	cur := d.days()
	if n > maxDays-cur || n < minDays-cur {
		return Date{}, fmt.Errorf("%w: %v %+d days", ErrOutOfRange, d, n)
	}
	return fromDays(cur + n)
}

// Sub returns the number of days from u to d, ie. d - u.
func (d Date) Sub(u Date) int {
	return d.days() - u.days()
}

// WithYear returns d with its year replaced. February 29th has no
// counterpart in non-leap years and yields ErrInvalidDate.
func (d Date) WithYear(year int) (Date, error) {
	return New(year, d.Month(), d.Day())
}

// WithMonth returns d with its month replaced.
func (d Date) WithMonth(month time.Month) (Date, error) {
	return New(d.Year(), month, d.Day())
}

// WithDay returns d with its day of the month replaced.
func (d Date) WithDay(day int) (Date, error) {
	return New(d.Year(), d.Month(), day)
}

// Compare returns -1, 0 or +1 depending on whether d is before, the same
// as or after u.
func (d Date) Compare(u Date) int {
	switch {
	case d.year != u.year:
		return cmp.Compare(d.year, u.year)
	case d.month != u.month:
		return cmp.Compare(d.month, u.month)
	}
	return cmp.Compare(d.day, u.day)
}

// Before returns true if d is before u.
func (d Date) Before(u Date) bool { return d.Compare(u) < 0 }

// After returns true if d is after u.
func (d Date) After(u Date) bool { return d.Compare(u) > 0 }

// Time returns the first instant of d in the specified location. This is
// midnight unless a daylight saving transition skips midnight, in which
// case it is the instant of the transition.
func (d Date) Time(loc *time.Location) time.Time {
	t := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, loc)
	if t.Day() == d.Day() {
		return t
	}
	start, _ := time.Date(d.Year(), d.Month(), d.Day(), 12, 0, 0, 0, loc).ZoneBounds()
	return start
}

// String returns d in ISO 8601 extended format, eg. 2024-02-29. Years
// before 0 or after 9999 are signed, eg. -0001-01-01 or +10000-01-01.
func (d Date) String() string {
	if d.year < 0 || d.year > 9999 {
		return fmt.Sprintf("%+05d-%02d-%02d", d.year, d.month, d.day)
	}
	return fmt.Sprintf("%04d-%02d-%02d", d.year, d.month, d.day)
}
