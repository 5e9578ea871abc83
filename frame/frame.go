// SPDX-License-Identifier: MIT

package frame

// Frame holds named variables that share one Index.
//
// Storage is column-major: Data[j] holds every observation of Columns[j].
// Invariants expected by validators: len(Columns) == len(Data), every column
// has Index.Len() observations, column names are unique.
type Frame struct {
	Columns []string
	Index   Index
	Data    [][]float64
}

// NewFrame builds a Frame over a RangeIndex from column-major data.
//
// Errors:
//   - ErrLengthMismatch if len(columns) != len(data) or columns differ in length.
//
// Complexity: O(rows*cols) for the defensive copy.
func NewFrame(columns []string, data [][]float64) (*Frame, error) {
	rows := 0
	if len(data) > 0 {
		rows = len(data[0])
	}

	return NewFrameWithIndex(columns, NewRangeIndex(rows), data)
}

// NewFrameWithIndex builds a Frame over ix from column-major data.
func NewFrameWithIndex(columns []string, ix Index, data [][]float64) (*Frame, error) {
	if len(columns) != len(data) {
		return nil, frameErrorf("Frame", "New", ErrLengthMismatch)
	}
	cp := make([][]float64, len(data))
	for j, col := range data {
		if len(col) != ix.Len() {
			return nil, frameErrorf("Frame", "New", ErrLengthMismatch)
		}
		cp[j] = append([]float64(nil), col...)
	}

	return &Frame{Columns: append([]string(nil), columns...), Index: ix, Data: cp}, nil
}

// Len returns the number of rows (time points).
func (f *Frame) Len() int { return f.Axis().Len() }

// Axis returns the Index, or the positional index over the first column when
// Index is the zero value.
func (f *Frame) Axis() Index {
	n := 0
	if len(f.Data) > 0 {
		n = len(f.Data[0])
	}

	return axisOr(f.Index, n)
}

// NumColumns returns the number of variables.
func (f *Frame) NumColumns() int { return len(f.Columns) }

// Column returns the named variable as a Series sharing the frame's index.
func (f *Frame) Column(name string) (*Series, error) {
	for j, c := range f.Columns {
		if c == name {
			if j >= len(f.Data) {
				return nil, frameErrorf("Frame", "Column", ErrLengthMismatch)
			}
			return &Series{Name: c, Index: f.Index, Values: append([]float64(nil), f.Data[j]...)}, nil
		}
	}

	return nil, frameErrorf("Frame", "Column", ErrUnknownColumn)
}

// HasNaNs reports whether any cell is NaN.
func (f *Frame) HasNaNs() bool {
	for _, col := range f.Data {
		if hasNaN(col) {
			return true
		}
	}

	return false
}

// FromSeries wraps a Series as a one-column Frame.
func FromSeries(s *Series) *Frame {
	name := s.Name
	if name == "" {
		name = "0"
	}

	return &Frame{
		Columns: []string{name},
		Index:   s.Index,
		Data:    [][]float64{append([]float64(nil), s.Values...)},
	}
}
