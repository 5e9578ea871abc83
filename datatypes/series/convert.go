// SPDX-License-Identifier: MIT

package series

import (
	"fmt"
	"math"

	"github.com/katalvlaran/tsmtype/frame"
)

// Vector extracts the single variable of a univariate Series-scitype object
// together with its time axis. The returned values are a copy.
//
// Errors:
//   - ErrNotUnivariate for frames or 2D slices with more than one column.
//   - ErrUnsupported for objects of no Series mtype.
//
// Callers should validate obj first; Vector does not re-check index order.
func Vector(obj any) ([]float64, frame.Index, error) {
	switch v := obj.(type) {
	case *frame.Series:
		if v == nil {
			return nil, frame.Index{}, fmt.Errorf("Vector: nil *frame.Series: %w", ErrUnsupported)
		}
		return append([]float64(nil), v.Values...), v.Axis(), nil
	case *frame.Frame:
		if v == nil {
			return nil, frame.Index{}, fmt.Errorf("Vector: nil *frame.Frame: %w", ErrUnsupported)
		}
		if len(v.Data) != 1 {
			return nil, frame.Index{}, fmt.Errorf("Vector: frame has %d columns: %w", len(v.Data), ErrNotUnivariate)
		}
		return append([]float64(nil), v.Data[0]...), v.Axis(), nil
	case []float64:
		return append([]float64(nil), v...), frame.NewRangeIndex(len(v)), nil
	case [][]float64:
		out := make([]float64, len(v))
		for i, row := range v {
			if len(row) != 1 {
				return nil, frame.Index{}, fmt.Errorf("Vector: row %d has %d columns: %w", i, len(row), ErrNotUnivariate)
			}
			out[i] = row[0]
		}
		return out, frame.NewRangeIndex(len(v)), nil
	default:
		return nil, frame.Index{}, fmt.Errorf("Vector: %T: %w", obj, ErrUnsupported)
	}
}

func duplicate(names []string) (string, bool) {
	seen := make(map[string]struct{}, len(names))
	for _, n := range names {
		if _, ok := seen[n]; ok {
			return n, true
		}
		seen[n] = struct{}{}
	}

	return "", false
}

func hasNaN(xs []float64) bool {
	for _, x := range xs {
		if math.IsNaN(x) {
			return true
		}
	}

	return false
}
