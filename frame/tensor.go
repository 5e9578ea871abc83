// SPDX-License-Identifier: MIT

// Package frame - Tensor3D storage (row-major) & safe accessors.
//
// Purpose:
//   - Hold a panel of equal-length series as instances × variables × timepoints.
//   - Keep a flat buffer with the explicit offset formula (i*v + j)*t + k.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//
// Complexity quicksheet:
//   - NewTensor3D: O(n*v*t) zero-init; At/Set: O(1); Clone: O(n*v*t); Instance: O(v*t).

package frame

import (
	"fmt"
	"strings"
)

const (
	ctxTensor = "Tensor3D"
	ctxAt     = "At"
	ctxSet    = "Set"
	ctxNew    = "New"
)

// Tensor3D is a dense instances × variables × timepoints cube.
// The zero value has shape (0,0,0) and is rejected by the panel validators.
type Tensor3D struct {
	n, v, t int       // instances, variables, timepoints
	data    []float64 // len == n*v*t, row-major
}

// NewTensor3D allocates a zero-filled cube.
//
// Errors:
//   - ErrBadShape if any dimension is <= 0.
//
// Complexity: O(n*v*t) time and memory.
func NewTensor3D(instances, variables, timepoints int) (*Tensor3D, error) {
	if instances <= 0 || variables <= 0 || timepoints <= 0 {
		return nil, frameErrorf(ctxTensor, ctxNew, ErrBadShape)
	}

	return &Tensor3D{
		n:    instances,
		v:    variables,
		t:    timepoints,
		data: make([]float64, instances*variables*timepoints),
	}, nil
}

// NewTensor3DFrom copies a nested [instance][variable][time] slice into a cube.
// All inner slices must be rectangular, otherwise ErrLengthMismatch.
func NewTensor3DFrom(values [][][]float64) (*Tensor3D, error) {
	if len(values) == 0 || len(values[0]) == 0 || len(values[0][0]) == 0 {
		return nil, frameErrorf(ctxTensor, ctxNew, ErrBadShape)
	}
	n, v, t := len(values), len(values[0]), len(values[0][0])
	out, err := NewTensor3D(n, v, t)
	if err != nil {
		return nil, err
	}
	for i := range values {
		if len(values[i]) != v {
			return nil, frameErrorf(ctxTensor, ctxNew, ErrLengthMismatch)
		}
		for j := range values[i] {
			if len(values[i][j]) != t {
				return nil, frameErrorf(ctxTensor, ctxNew, ErrLengthMismatch)
			}
			copy(out.data[(i*v+j)*t:(i*v+j+1)*t], values[i][j])
		}
	}

	return out, nil
}

// Shape returns (instances, variables, timepoints).
func (m *Tensor3D) Shape() (int, int, int) { return m.n, m.v, m.t }

// Size returns the number of stored cells.
func (m *Tensor3D) Size() int { return len(m.data) }

func (m *Tensor3D) offset(method string, i, j, k int) (int, error) {
	if i < 0 || i >= m.n || j < 0 || j >= m.v || k < 0 || k >= m.t {
		return 0, fmt.Errorf("%s.%s(%d,%d,%d): %w", ctxTensor, method, i, j, k, ErrOutOfRange)
	}

	return (i*m.v+j)*m.t + k, nil
}

// At returns the cell (instance i, variable j, time k).
func (m *Tensor3D) At(i, j, k int) (float64, error) {
	off, err := m.offset(ctxAt, i, j, k)
	if err != nil {
		return 0, err
	}

	return m.data[off], nil
}

// Set assigns the cell (instance i, variable j, time k).
func (m *Tensor3D) Set(i, j, k int, x float64) error {
	off, err := m.offset(ctxSet, i, j, k)
	if err != nil {
		return err
	}
	m.data[off] = x

	return nil
}

// Instance returns instance i as a Frame over a RangeIndex, one column per
// variable named "0", "1", ....
func (m *Tensor3D) Instance(i int) (*Frame, error) {
	if i < 0 || i >= m.n {
		return nil, frameErrorf(ctxTensor, "Instance", ErrOutOfRange)
	}
	cols := make([]string, m.v)
	data := make([][]float64, m.v)
	for j := 0; j < m.v; j++ {
		cols[j] = fmt.Sprintf("%d", j)
		start := (i*m.v + j) * m.t
		data[j] = append([]float64(nil), m.data[start:start+m.t]...)
	}

	return &Frame{Columns: cols, Index: NewRangeIndex(m.t), Data: data}, nil
}

// HasNaNs reports whether any cell is NaN.
func (m *Tensor3D) HasNaNs() bool { return hasNaN(m.data) }

// Consistent reports whether the backing buffer matches the declared shape.
func (m *Tensor3D) Consistent() bool {
	return m.n > 0 && m.v > 0 && m.t > 0 && len(m.data) == m.n*m.v*m.t
}

// Clone returns a deep copy.
func (m *Tensor3D) Clone() *Tensor3D {
	return &Tensor3D{n: m.n, v: m.v, t: m.t, data: append([]float64(nil), m.data...)}
}

// String implements fmt.Stringer.
func (m *Tensor3D) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Tensor3D(%d,%d,%d)\n", m.n, m.v, m.t)
	for i := 0; i < m.n; i++ {
		for j := 0; j < m.v; j++ {
			start := (i*m.v + j) * m.t
			fmt.Fprintf(&b, "  [%d,%d] %v\n", i, j, m.data[start:start+m.t])
		}
	}

	return b.String()
}
