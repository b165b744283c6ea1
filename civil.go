// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package periods

import "cloudeng.io/periods/civil"

var civilCalculator = New[civil.Date](civil.Calendar{})

// Civil returns a Calculator for civil.Date values. The package level
// functions below are shorthand for its methods.
func Civil() *Calculator[civil.Date] {
	return civilCalculator
}

func BeginningOfWeek(d civil.Date) (civil.Date, error) { return civilCalculator.BeginningOfWeek(d) }
func EndOfWeek(d civil.Date) (civil.Date, error)       { return civilCalculator.EndOfWeek(d) }
func NextWeek(d civil.Date) (civil.Date, error)        { return civilCalculator.NextWeek(d) }
func PreviousWeek(d civil.Date) (civil.Date, error)    { return civilCalculator.PreviousWeek(d) }

func BeginningOfMonth(d civil.Date) (civil.Date, error) { return civilCalculator.BeginningOfMonth(d) }
func EndOfMonth(d civil.Date) (civil.Date, error)       { return civilCalculator.EndOfMonth(d) }
func NextMonth(d civil.Date) (civil.Date, error)        { return civilCalculator.NextMonth(d) }
func PreviousMonth(d civil.Date) (civil.Date, error)    { return civilCalculator.PreviousMonth(d) }

func BeginningOfQuarter(d civil.Date) (civil.Date, error) { return civilCalculator.BeginningOfQuarter(d) }
func EndOfQuarter(d civil.Date) (civil.Date, error)       { return civilCalculator.EndOfQuarter(d) }
func NextQuarter(d civil.Date) (civil.Date, error)        { return civilCalculator.NextQuarter(d) }
func PreviousQuarter(d civil.Date) (civil.Date, error)    { return civilCalculator.PreviousQuarter(d) }

func BeginningOfYear(d civil.Date) (civil.Date, error) { return civilCalculator.BeginningOfYear(d) }
func EndOfYear(d civil.Date) (civil.Date, error)       { return civilCalculator.EndOfYear(d) }
func NextYear(d civil.Date) (civil.Date, error)        { return civilCalculator.NextYear(d) }
func PreviousYear(d civil.Date) (civil.Date, error)    { return civilCalculator.PreviousYear(d) }
