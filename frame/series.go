// SPDX-License-Identifier: MIT

package frame

import (
	"fmt"
	"math"
	"strings"
)

// Series is a single variable observed over an Index.
//
// Invariant expected by validators (not enforced on hand-built values):
// Index.Len() == len(Values) and the Index is strictly increasing.
type Series struct {
	Name   string    // variable name, may be empty
	Index  Index     // time axis; zero value means "positions"
	Values []float64 // observations, NaN marks a missing value
}

// NewSeries returns a Series over a RangeIndex. values is copied.
// Complexity: O(n).
func NewSeries(name string, values []float64) *Series {
	return &Series{
		Name:   name,
		Index:  NewRangeIndex(len(values)),
		Values: append([]float64(nil), values...),
	}
}

// NewSeriesWithIndex returns a Series over ix, or ErrLengthMismatch when the
// index and the values disagree on length. values is copied.
func NewSeriesWithIndex(name string, ix Index, values []float64) (*Series, error) {
	if ix.Len() != len(values) {
		return nil, frameErrorf("Series", "New", ErrLengthMismatch)
	}

	return &Series{Name: name, Index: ix, Values: append([]float64(nil), values...)}, nil
}

// Len returns the number of observations.
func (s *Series) Len() int { return len(s.Values) }

// Axis returns the Index, or the positional index over Values when Index is
// the zero value.
func (s *Series) Axis() Index {
	return axisOr(s.Index, len(s.Values))
}

// At returns the i-th observation.
func (s *Series) At(i int) (float64, error) {
	if i < 0 || i >= len(s.Values) {
		return 0, frameErrorf("Series", "At", ErrOutOfRange)
	}

	return s.Values[i], nil
}

// HasNaNs reports whether any observation is NaN.
func (s *Series) HasNaNs() bool {
	return hasNaN(s.Values)
}

// Clone returns a deep copy.
func (s *Series) Clone() *Series {
	return &Series{Name: s.Name, Index: s.Index, Values: append([]float64(nil), s.Values...)}
}

// String implements fmt.Stringer.
func (s *Series) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Series %q [%d]\n", s.Name, len(s.Values))
	for i, v := range s.Values {
		fmt.Fprintf(&b, "  %s\t%g\n", s.Axis().Label(i), v)
	}

	return b.String()
}

func axisOr(ix Index, n int) Index {
	if ix.kind == RangeIndex && ix.Len() == 0 && n > 0 {
		return NewRangeIndex(n)
	}

	return ix
}

func hasNaN(xs []float64) bool {
	for _, x := range xs {
		if math.IsNaN(x) {
			return true
		}
	}

	return false
}
