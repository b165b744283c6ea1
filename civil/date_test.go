// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package civil_test

import (
	"errors"
	"testing"
	"time"
	_ "time/tzdata"

	"cloudeng.io/periods/civil"
)

func TestNew(t *testing.T) {
	for _, tc := range []struct {
		y, m, d int
	}{
		{2024, 2, 29},
		{2000, 2, 29},
		{2023, 12, 31},
		{1, 1, 1},
		{0, 3, 1},
		{-44, 3, 15},
		{civil.MinYear, 1, 1},
		{civil.MaxYear, 12, 31},
	} {
		d, err := civil.New(tc.y, time.Month(tc.m), tc.d)
		if err != nil {
			t.Errorf("%v-%v-%v: %v", tc.y, tc.m, tc.d, err)
			continue
		}
		if got, want := d.Year(), tc.y; got != want {
			t.Errorf("got %v, want %v", got, want)
		}
		if got, want := d.Month(), time.Month(tc.m); got != want {
			t.Errorf("got %v, want %v", got, want)
		}
		if got, want := d.Day(), tc.d; got != want {
			t.Errorf("got %v, want %v", got, want)
		}
	}

	for _, tc := range []struct {
		y, m, d int
		err     error
	}{
		{2023, 2, 29, civil.ErrInvalidDate},
		{1900, 2, 29, civil.ErrInvalidDate},
		{2024, 4, 31, civil.ErrInvalidDate},
		{2024, 0, 1, civil.ErrInvalidDate},
		{2024, 13, 1, civil.ErrInvalidDate},
		{2024, 1, 0, civil.ErrInvalidDate},
		{2024, 1, 32, civil.ErrInvalidDate},
		{civil.MinYear - 1, 12, 31, civil.ErrOutOfRange},
		{civil.MaxYear + 1, 1, 1, civil.ErrOutOfRange},
	} {
		_, err := civil.New(tc.y, time.Month(tc.m), tc.d)
		if !errors.Is(err, tc.err) {
			t.Errorf("%v-%v-%v: got %v, want %v", tc.y, tc.m, tc.d, err, tc.err)
		}
	}

	var zero civil.Date
	if !zero.IsZero() {
		t.Errorf("zero value should be zero")
	}
	if civil.MustNew(2024, 1, 1).IsZero() {
		t.Errorf("2024-01-01 should not be zero")
	}
}

func TestLeapAndDays(t *testing.T) {
	for _, tc := range []struct {
		year  int
		leap  bool
		feb   int
		weeks int
	}{
		{1900, false, 28, 52},
		{2000, true, 29, 52},
		{2004, true, 29, 53},
		{2015, false, 28, 53},
		{2020, true, 29, 53},
		{2021, false, 28, 52},
		{2023, false, 28, 52},
		{2024, true, 29, 52},
		{2026, false, 28, 53},
	} {
		if got, want := civil.IsLeap(tc.year), tc.leap; got != want {
			t.Errorf("%v: got %v, want %v", tc.year, got, want)
		}
		if got, want := civil.DaysInMonth(tc.year, time.February), tc.feb; got != want {
			t.Errorf("%v: got %v, want %v", tc.year, got, want)
		}
		if got, want := civil.DaysInYear(tc.year), 337+tc.feb; got != want {
			t.Errorf("%v: got %v, want %v", tc.year, got, want)
		}
		if got, want := civil.ISOWeeksInYear(tc.year), tc.weeks; got != want {
			t.Errorf("%v: got %v, want %v", tc.year, got, want)
		}
	}
	if got, want := civil.DaysInMonth(2024, 13), 0; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

// TestAgainstTime walks every day from 1583 to 2400 and compares
// the results with those computed by the time package.
func TestAgainstTime(t *testing.T) {
	start := civil.MustNew(1583, 1, 1)
	st := time.Date(1583, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2400, 12, 31, 0, 0, 0, 0, time.UTC)
	d, n := start, 0
	for when := st; !when.After(end); when = when.AddDate(0, 0, 1) {
		y, m, dd := when.Date()
		if d.Year() != y || d.Month() != m || d.Day() != dd {
			t.Fatalf("got %v, want %v", d, when.Format(time.DateOnly))
		}
		if got, want := d.Weekday(), when.Weekday(); got != want {
			t.Fatalf("%v: got %v, want %v", d, got, want)
		}
		if got, want := d.YearDay(), when.YearDay(); got != want {
			t.Fatalf("%v: got %v, want %v", d, got, want)
		}
		gy, gw := d.ISOWeek()
		wy, ww := when.ISOWeek()
		if gy != wy || gw != ww {
			t.Fatalf("%v: got %v/%v, want %v/%v", d, gy, gw, wy, ww)
		}
		fw, err := civil.FromISOWeek(wy, ww, when.Weekday())
		if err != nil || fw != d {
			t.Fatalf("%v: got %v (%v), want %v", d, fw, err, d)
		}
		if got, want := d.Sub(start), n; got != want {
			t.Fatalf("%v: got %v, want %v", d, got, want)
		}
		if got, want := d.String(), when.Format(time.DateOnly); got != want {
			t.Fatalf("got %v, want %v", got, want)
		}
		if got, want := d.Time(time.UTC), when; !got.Equal(want) {
			t.Fatalf("got %v, want %v", got, want)
		}
		fromTime, err := civil.FromTime(when)
		if err != nil || fromTime != d {
			t.Fatalf("got %v (%v), want %v", fromTime, err, d)
		}
		next, err := d.AddDays(1)
		if err != nil {
			t.Fatalf("%v: %v", d, err)
		}
		d = next
		n++
	}
}

func TestAddDays(t *testing.T) {
	nd := civil.MustNew
	for _, tc := range []struct {
		d    civil.Date
		n    int
		want civil.Date
	}{
		{nd(2024, 2, 28), 1, nd(2024, 2, 29)},
		{nd(2024, 2, 28), 2, nd(2024, 3, 1)},
		{nd(2023, 2, 28), 1, nd(2023, 3, 1)},
		{nd(2023, 12, 31), 1, nd(2024, 1, 1)},
		{nd(2024, 1, 1), -1, nd(2023, 12, 31)},
		{nd(2024, 1, 1), 366, nd(2025, 1, 1)},
		{nd(1, 1, 1), -1, nd(0, 12, 31)},
		{nd(0, 3, 1), -1, nd(0, 2, 29)},
		{nd(-1, 1, 1), 365, nd(0, 1, 1)},
		{nd(1970, 1, 1), 0, nd(1970, 1, 1)},
	} {
		got, err := tc.d.AddDays(tc.n)
		if err != nil {
			t.Errorf("%v %+d: %v", tc.d, tc.n, err)
			continue
		}
		if got != tc.want {
			t.Errorf("%v %+d: got %v, want %v", tc.d, tc.n, got, tc.want)
		}
		if back, _ := got.AddDays(-tc.n); back != tc.d {
			t.Errorf("%v %+d: got %v, want %v", got, -tc.n, back, tc.d)
		}
		if got, want := got.Sub(tc.d), tc.n; got != want {
			t.Errorf("got %v, want %v", got, want)
		}
	}

	first := civil.MustNew(civil.MinYear, 1, 1)
	last := civil.MustNew(civil.MaxYear, 12, 31)
	for _, tc := range []struct {
		d civil.Date
		n int
	}{
		{first, -1},
		{last, 1},
		{first, -1 << 62},
		{last, 1 << 62},
	} {
		if _, err := tc.d.AddDays(tc.n); !errors.Is(err, civil.ErrOutOfRange) {
			t.Errorf("%v %+d: got %v, want %v", tc.d, tc.n, err, civil.ErrOutOfRange)
		}
	}
	if got, err := first.AddDays(last.Sub(first)); err != nil || got != last {
		t.Errorf("got %v (%v), want %v", got, err, last)
	}
}

func TestWith(t *testing.T) {
	nd := civil.MustNew
	leap := nd(2024, 2, 29)
	if _, err := leap.WithYear(2023); !errors.Is(err, civil.ErrInvalidDate) {
		t.Errorf("got %v, want %v", err, civil.ErrInvalidDate)
	}
	if got, _ := leap.WithYear(2028); got != nd(2028, 2, 29) {
		t.Errorf("got %v, want %v", got, nd(2028, 2, 29))
	}
	if _, err := nd(2024, 1, 31).WithMonth(4); !errors.Is(err, civil.ErrInvalidDate) {
		t.Errorf("got %v, want %v", err, civil.ErrInvalidDate)
	}
	if got, _ := nd(2024, 1, 31).WithMonth(12); got != nd(2024, 12, 31) {
		t.Errorf("got %v, want %v", got, nd(2024, 12, 31))
	}
	if got, _ := nd(2024, 1, 31).WithDay(1); got != nd(2024, 1, 1) {
		t.Errorf("got %v, want %v", got, nd(2024, 1, 1))
	}
	if _, err := nd(civil.MinYear, 6, 1).WithYear(civil.MinYear - 1); !errors.Is(err, civil.ErrOutOfRange) {
		t.Errorf("got %v, want %v", err, civil.ErrOutOfRange)
	}
}

func TestCompare(t *testing.T) {
	nd := civil.MustNew
	for _, tc := range []struct {
		a, b civil.Date
		want int
	}{
		{nd(2024, 1, 1), nd(2024, 1, 1), 0},
		{nd(2024, 1, 1), nd(2024, 1, 2), -1},
		{nd(2024, 2, 1), nd(2024, 1, 31), 1},
		{nd(2023, 12, 31), nd(2024, 1, 1), -1},
		{nd(-1, 12, 31), nd(0, 1, 1), -1},
	} {
		if got := tc.a.Compare(tc.b); got != tc.want {
			t.Errorf("%v, %v: got %v, want %v", tc.a, tc.b, got, tc.want)
		}
		if got, want := tc.a.Before(tc.b), tc.want < 0; got != want {
			t.Errorf("%v, %v: got %v, want %v", tc.a, tc.b, got, want)
		}
		if got, want := tc.a.After(tc.b), tc.want > 0; got != want {
			t.Errorf("%v, %v: got %v, want %v", tc.a, tc.b, got, want)
		}
	}
}

func TestFromISOWeek(t *testing.T) {
	nd := civil.MustNew
	for _, tc := range []struct {
		year, week int
		wd         time.Weekday
		want       civil.Date
	}{
		{2021, 1, time.Monday, nd(2021, 1, 4)},
		{2020, 53, time.Sunday, nd(2021, 1, 3)},
		{2025, 1, time.Monday, nd(2024, 12, 30)},
		{2024, 9, time.Sunday, nd(2024, 3, 3)},
		{2026, 53, time.Thursday, nd(2026, 12, 31)},
	} {
		got, err := civil.FromISOWeek(tc.year, tc.week, tc.wd)
		if err != nil {
			t.Errorf("%v/%v/%v: %v", tc.year, tc.week, tc.wd, err)
			continue
		}
		if got != tc.want {
			t.Errorf("%v/%v/%v: got %v, want %v", tc.year, tc.week, tc.wd, got, tc.want)
		}
	}

	for _, tc := range []struct {
		year, week int
		err        error
	}{
		{2021, 53, civil.ErrInvalidDate},
		{2021, 0, civil.ErrInvalidDate},
		{civil.MaxYear + 5, 1, civil.ErrOutOfRange},
	} {
		if _, err := civil.FromISOWeek(tc.year, tc.week, time.Monday); !errors.Is(err, tc.err) {
			t.Errorf("%v/%v: got %v, want %v", tc.year, tc.week, err, tc.err)
		}
	}
}

func TestString(t *testing.T) {
	nd := civil.MustNew
	for _, tc := range []struct {
		d    civil.Date
		want string
	}{
		{nd(2024, 2, 29), "2024-02-29"},
		{nd(1, 1, 1), "0001-01-01"},
		{nd(0, 12, 31), "0000-12-31"},
		{nd(-1, 1, 1), "-0001-01-01"},
		{nd(-44, 3, 15), "-0044-03-15"},
		{nd(9999, 12, 31), "9999-12-31"},
		{nd(10000, 1, 1), "+10000-01-01"},
		{nd(civil.MinYear, 1, 1), "-262144-01-01"},
		{nd(civil.MaxYear, 12, 31), "+262143-12-31"},
	} {
		if got, want := tc.d.String(), tc.want; got != want {
			t.Errorf("got %v, want %v", got, want)
		}
	}
}

func TestTimeSkippedMidnight(t *testing.T) {
	loc, err := time.LoadLocation("America/Sao_Paulo")
	if err != nil {
		t.Fatal(err)
	}
	// Clocks moved from 00:00 to 01:00 on 2018-11-04.
	d := civil.MustNew(2018, 11, 4)
	if got, want := d.Time(loc), time.Date(2018, 11, 4, 1, 0, 0, 0, loc); !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := d.Time(loc).Day(), 4; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	prev := civil.MustNew(2018, 11, 3)
	if got, want := prev.Time(loc), time.Date(2018, 11, 3, 0, 0, 0, 0, loc); !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestCalendar(t *testing.T) {
	var cal civil.Calendar
	d, err := cal.Date(2024, 7, 14)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := cal.Weekday(d), time.Sunday; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	y, w := cal.ISOWeek(d)
	if got, err := cal.FromISOWeek(y, w, time.Sunday); err != nil || got != d {
		t.Errorf("got %v (%v), want %v", got, err, d)
	}
	if got, _ := cal.AddDays(d, -13); got != civil.MustNew(2024, 7, 1) {
		t.Errorf("got %v, want %v", got, civil.MustNew(2024, 7, 1))
	}
	if _, err := cal.WithDay(d, 32); !errors.Is(err, civil.ErrInvalidDate) {
		t.Errorf("got %v, want %v", err, civil.ErrInvalidDate)
	}
}
