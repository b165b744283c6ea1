// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package schedule provides iterators over the successive starts of
// calendar periods, for example billing cycles or reporting windows, and
// for merging several such series into a single chronological sequence.
package schedule

import (
	"context"
	"iter"

	"cloudeng.io/algo/container/heap"
	"cloudeng.io/errors"
	"cloudeng.io/logging/ctxlog"
	"cloudeng.io/periods"
)

// Series represents a named, unbounded, sequence of period starts.
type Series struct {
	Name string
	Kind periods.Kind
}

// Due represents the start of a period in a Series.
type Due[D any] struct {
	Name string
	Kind periods.Kind
	Date D
}

type heapEntry struct {
	series int
	name   string
	kind   periods.Kind
}

// Merger merges the period starts of one or more Series. A Merger is
// not safe for concurrent use.
type Merger[D any] struct {
	ctx    context.Context
	calc   *periods.Calculator[D]
	from   D
	to     D
	series []Series
	errs   *errors.M
}

// Merge returns a Merger for the starts of the supplied series that fall
// between the beginning of the period containing from and to inclusive.
func Merge[D any](ctx context.Context, calc *periods.Calculator[D], from, to D, series ...Series) *Merger[D] {
	return &Merger[D]{
		ctx:    ctx,
		calc:   calc,
		from:   from,
		to:     to,
		series: series,
	}
}

func (m *Merger[D]) key(d D, series int) int64 {
	return m.calc.SortKey(d)*int64(len(m.series)) + int64(series)
}

func (m *Merger[D]) truncated(he heapEntry, err error) {
	ctxlog.Logger(m.ctx).Info("period series truncated",
		"series", he.name, "kind", he.kind.String(), "error", err)
	m.errs.Append(err)
}

// All returns an iterator over the merged period starts in chronological
// order. Starts that fall on the same date are returned in the order that
// their series were supplied to Merge. A series that can no longer be
// advanced, because its next start is outside of the range supported by
// the calendar, is dropped and the error recorded for Err. The iterator
// stops when the Merger's context is canceled.
func (m *Merger[D]) All() iter.Seq[Due[D]] {
	return func(yield func(Due[D]) bool) {
		m.errs = &errors.M{}
		dates := make(map[int64]D, len(m.series))
		h := heap.NewMin(heap.WithSliceCap[int64, heapEntry](len(m.series)))
		push := func(d D, he heapEntry) {
			if m.calc.Compare(d, m.to) > 0 {
				return
			}
			k := m.key(d, he.series)
			dates[k] = d
			h.Push(k, he)
		}
		for i, s := range m.series {
			he := heapEntry{series: i, name: s.Name, kind: s.Kind}
			start, err := m.calc.Beginning(s.Kind, m.from)
			if err != nil {
				m.truncated(he, err)
				continue
			}
			push(start, he)
		}
		for h.Len() > 0 {
			if err := m.ctx.Err(); err != nil {
				m.errs.Append(err)
				return
			}
			k, he := h.Pop()
			d := dates[k]
			delete(dates, k)
			if !yield(Due[D]{Name: he.name, Kind: he.kind, Date: d}) {
				return
			}
			next, err := m.calc.Next(he.kind, d)
			if err != nil {
				m.truncated(he, err)
				continue
			}
			push(next, he)
		}
	}
}

// Err returns any errors encountered by the most recent iteration.
func (m *Merger[D]) Err() error {
	if m.errs == nil {
		return nil
	}
	return m.errs.Err()
}

// Starts returns an iterator over the starts of successive periods of the
// specified kind, from the beginning of the period containing from up to
// and including to. The iteration ends early if a start cannot be computed.
func Starts[D any](calc *periods.Calculator[D], kind periods.Kind, from, to D) iter.Seq[D] {
	m := Merge(context.Background(), calc, from, to, Series{Kind: kind})
	return func(yield func(D) bool) {
		for due := range m.All() {
			if !yield(due.Date) {
				return
			}
		}
	}
}
