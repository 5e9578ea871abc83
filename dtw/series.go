// SPDX-License-Identifier: MIT

package dtw

import (
	"fmt"

	"github.com/katalvlaran/tsmtype/check"
	"github.com/katalvlaran/tsmtype/datatypes"
	"github.com/katalvlaran/tsmtype/datatypes/scitype"
	"github.com/katalvlaran/tsmtype/datatypes/series"
)

// Distance is DTW over any univariate Series container: *frame.Series,
// a one-column *frame.Frame, []float64 or an n×1 [][]float64.
//
// Both inputs are validated as Series before alignment; a failed check is
// returned as is (matches datatypes.ErrValidation). Multivariate input
// yields series.ErrNotUnivariate. Time labels are ignored.
func Distance(x, y any, opts *Options) (float64, error) {
	a, err := univariate(x, "x")
	if err != nil {
		return 0, err
	}
	b, err := univariate(y, "y")
	if err != nil {
		return 0, err
	}
	dist, _, err := DTW(a, b, opts)

	return dist, err
}

func univariate(obj any, name string) ([]float64, error) {
	err := check.Raise(obj, series.Mtypes(),
		datatypes.WithScitype(scitype.Series), datatypes.WithVarName(name))
	if err != nil {
		return nil, err
	}
	values, _, err := series.Vector(obj)
	if err != nil {
		return nil, fmt.Errorf("dtw: %s: %w", name, err)
	}

	return values, nil
}
