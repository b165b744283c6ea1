// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package periods

import (
	"errors"
	"fmt"
)

// ErrNoResult is matched by every error returned by a period operation
// that could not produce a date.
var ErrNoResult = errors.New("no result")

// ErrUnknownKind is returned for a Kind that is not one of Weekly, Monthly,
// Quarterly or Yearly.
var ErrUnknownKind = errors.New("unknown period kind")

// Error records the operation that failed to produce a date and the
// calendar error that caused it. When one operation is built on another,
// eg. EndOfMonth on NextMonth, Op names the innermost operation.
type Error struct {
	Op  string
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %v: %v", e.Op, ErrNoResult, e.Err)
}

// Unwrap returns both ErrNoResult and the underlying calendar error.
func (e *Error) Unwrap() []error {
	return []error{ErrNoResult, e.Err}
}

func fail[D any](op string, err error) (D, error) {
	var zero D
	var pe *Error
	if errors.As(err, &pe) {
		return zero, err
	}
	return zero, &Error{Op: op, Err: err}
}
