// SPDX-License-Identifier: MIT

package frame

import (
	"fmt"
	"time"
)

//go:generate go tool stringer -type=IndexKind -output=indexkind_string.go

// IndexKind tells how the labels of an Index are interpreted.
type IndexKind int

const (
	// RangeIndex labels positions 0..n-1 (the default index).
	RangeIndex IndexKind = iota
	// IntIndex carries arbitrary int64 labels.
	IntIndex
	// PeriodIndex carries monthly period ordinals (year*12 + month-1).
	PeriodIndex
	// TimeIndex carries wall-clock timestamps.
	TimeIndex
)

// Index is the time axis shared by the values of a Series or Frame.
//
// Labels are stored once: int64 labels for RangeIndex, IntIndex and
// PeriodIndex, timestamps for TimeIndex. The zero value is an empty RangeIndex.
// Index values are immutable; constructors copy their input.
type Index struct {
	kind  IndexKind
	ints  []int64
	times []time.Time
}

// NewRangeIndex returns the positional index 0..n-1. Negative n yields an empty index.
func NewRangeIndex(n int) Index {
	if n < 0 {
		n = 0
	}
	ints := make([]int64, n)
	for i := range ints {
		ints[i] = int64(i)
	}

	return Index{kind: RangeIndex, ints: ints}
}

// NewIntIndex returns an index over the given integer labels.
func NewIntIndex(labels []int64) Index {
	return Index{kind: IntIndex, ints: append([]int64(nil), labels...)}
}

// NewMonthlyIndex returns n consecutive monthly periods starting at year/month.
func NewMonthlyIndex(year int, month time.Month, n int) Index {
	if n < 0 {
		n = 0
	}
	start := int64(year)*12 + int64(month) - 1
	ints := make([]int64, n)
	for i := range ints {
		ints[i] = start + int64(i)
	}

	return Index{kind: PeriodIndex, ints: ints}
}

// NewPeriodIndex returns an index over raw monthly period ordinals.
func NewPeriodIndex(ordinals []int64) Index {
	return Index{kind: PeriodIndex, ints: append([]int64(nil), ordinals...)}
}

// NewTimeIndex returns an index over the given timestamps.
func NewTimeIndex(stamps []time.Time) Index {
	return Index{kind: TimeIndex, times: append([]time.Time(nil), stamps...)}
}

// Kind reports how labels are interpreted.
func (ix Index) Kind() IndexKind { return ix.kind }

// Len returns the number of labels.
func (ix Index) Len() int {
	if ix.kind == TimeIndex {
		return len(ix.times)
	}

	return len(ix.ints)
}

// Int returns the i-th integer label (RangeIndex, IntIndex, PeriodIndex).
func (ix Index) Int(i int) (int64, error) {
	if ix.kind == TimeIndex {
		return 0, frameErrorf("Index", "Int", ErrIndexKind)
	}
	if i < 0 || i >= len(ix.ints) {
		return 0, frameErrorf("Index", "Int", ErrOutOfRange)
	}

	return ix.ints[i], nil
}

// Time returns the i-th timestamp. PeriodIndex labels resolve to the first
// instant of their month in UTC.
func (ix Index) Time(i int) (time.Time, error) {
	switch ix.kind {
	case TimeIndex:
		if i < 0 || i >= len(ix.times) {
			return time.Time{}, frameErrorf("Index", "Time", ErrOutOfRange)
		}
		return ix.times[i], nil
	case PeriodIndex:
		if i < 0 || i >= len(ix.ints) {
			return time.Time{}, frameErrorf("Index", "Time", ErrOutOfRange)
		}
		ord := ix.ints[i]
		return time.Date(int(ord/12), time.Month(ord%12+1), 1, 0, 0, 0, 0, time.UTC), nil
	default:
		return time.Time{}, frameErrorf("Index", "Time", ErrIndexKind)
	}
}

// Label renders the i-th label for humans ("" when i is out of range).
func (ix Index) Label(i int) string {
	if i < 0 || i >= ix.Len() {
		return ""
	}
	switch ix.kind {
	case TimeIndex:
		return ix.times[i].Format(time.RFC3339)
	case PeriodIndex:
		t, _ := ix.Time(i)
		return t.Format("2006-01")
	default:
		return fmt.Sprintf("%d", ix.ints[i])
	}
}

// IsMonotonic reports whether labels are strictly increasing.
// Empty and single-label indexes are monotonic.
// Complexity: O(n).
func (ix Index) IsMonotonic() bool {
	if ix.kind == TimeIndex {
		for i := 1; i < len(ix.times); i++ {
			if !ix.times[i].After(ix.times[i-1]) {
				return false
			}
		}
		return true
	}
	for i := 1; i < len(ix.ints); i++ {
		if ix.ints[i] <= ix.ints[i-1] {
			return false
		}
	}

	return true
}

// IsEquallySpaced reports whether all consecutive label differences are equal.
// Indexes with fewer than three labels are equally spaced.
// Complexity: O(n).
func (ix Index) IsEquallySpaced() bool {
	if ix.kind == TimeIndex {
		if len(ix.times) < 3 {
			return true
		}
		step := ix.times[1].Sub(ix.times[0])
		for i := 2; i < len(ix.times); i++ {
			if ix.times[i].Sub(ix.times[i-1]) != step {
				return false
			}
		}
		return true
	}
	if len(ix.ints) < 3 {
		return true
	}
	step := ix.ints[1] - ix.ints[0]
	for i := 2; i < len(ix.ints); i++ {
		if ix.ints[i]-ix.ints[i-1] != step {
			return false
		}
	}

	return true
}

// Slice returns the labels in [lo, hi) as a new index of the same kind.
func (ix Index) Slice(lo, hi int) (Index, error) {
	if lo < 0 || hi > ix.Len() || lo > hi {
		return Index{}, frameErrorf("Index", "Slice", ErrOutOfRange)
	}
	if ix.kind == TimeIndex {
		return Index{kind: TimeIndex, times: append([]time.Time(nil), ix.times[lo:hi]...)}, nil
	}

	return Index{kind: ix.kind, ints: append([]int64(nil), ix.ints[lo:hi]...)}, nil
}

// Equal reports whether both indexes have the same kind and labels.
func (ix Index) Equal(other Index) bool {
	if ix.kind != other.kind || ix.Len() != other.Len() {
		return false
	}
	if ix.kind == TimeIndex {
		for i := range ix.times {
			if !ix.times[i].Equal(other.times[i]) {
				return false
			}
		}
		return true
	}
	for i := range ix.ints {
		if ix.ints[i] != other.ints[i] {
			return false
		}
	}

	return true
}

// String implements fmt.Stringer.
func (ix Index) String() string {
	return fmt.Sprintf("%s(len=%d)", ix.kind, ix.Len())
}
