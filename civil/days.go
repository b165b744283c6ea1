// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package civil

import "time"

// Conversions between year/month/day and a day number counted from
// 1970-01-01, based on 400 year eras of 146097 days with years
// starting on March 1st so that the leap day is last.

const (
	daysPerEra      = 146097
	epochShift      = 719468 // days from 0000-03-01 to 1970-01-01
	epochWeekdayOff = 4      // 1970-01-01 was a Thursday
)

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func floorMod(a, b int) int {
	return a - floorDiv(a, b)*b
}

func daysFromCivil(year int, month time.Month, day int) int {
	m := int(month)
	if m <= 2 {
		year--
	}
	era := floorDiv(year, 400)
	yoe := year - era*400
	mp := m - 3
	if m <= 2 {
		mp = m + 9
	}
	doy := (153*mp+2)/5 + day - 1
	doe := yoe*365 + yoe/4 - yoe/100 + doy
	return era*daysPerEra + doe - epochShift
}

func civilFromDays(n int) (int, time.Month, int) {
	n += epochShift
	era := floorDiv(n, daysPerEra)
	doe := n - era*daysPerEra
	yoe := (doe - doe/1460 + doe/36524 - doe/146096) / 365
	year := yoe + era*400
	doy := doe - (365*yoe + yoe/4 - yoe/100)
	mp := (5*doy + 2) / 153
	day := doy - (153*mp+2)/5 + 1
	month := mp + 3
	if mp >= 10 {
		month = mp - 9
	}
	if month <= 2 {
		year++
	}
	return year, time.Month(month), day
}

func weekdayOf(n int) time.Weekday {
	return time.Weekday(floorMod(n+epochWeekdayOff, 7))
}

// isoWeekday returns 1 for Monday through 7 for Sunday.
func isoWeekday(wd time.Weekday) int {
	if wd == time.Sunday {
		return 7
	}
	return int(wd)
}

func isoWeek(n int) (year, week int) {
	// The Thursday of an ISO week determines its year.
	thursday := n + 4 - isoWeekday(weekdayOf(n))
	year, _, _ = civilFromDays(thursday)
	jan1 := daysFromCivil(year, time.January, 1)
	return year, (thursday-jan1)/7 + 1
}

func isoWeekStart(year, week int) int {
	jan4 := daysFromCivil(year, time.January, 4)
	monday := jan4 - (isoWeekday(weekdayOf(jan4)) - 1)
	return monday + (week-1)*7
}
