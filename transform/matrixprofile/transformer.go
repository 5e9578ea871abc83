// SPDX-License-Identifier: MIT

package matrixprofile

import (
	"fmt"

	"github.com/katalvlaran/tsmtype/check"
	"github.com/katalvlaran/tsmtype/datatypes"
	"github.com/katalvlaran/tsmtype/datatypes/scitype"
	"github.com/katalvlaran/tsmtype/datatypes/series"
	"github.com/katalvlaran/tsmtype/frame"
)

// Transformer turns a univariate series into its matrix profile.
//
// Fitting only validates the input; all work happens in Transform.
// A Transformer must not be fitted concurrently with other calls.
type Transformer struct {
	windowLength int
	opts         []Option
	cfg          config
	fitted       bool
}

// New returns an unfitted Transformer. Without WithWindowLength the
// subsequence length is DefaultWindowLength.
func New(opts ...Option) *Transformer {
	cfg := gatherOptions(opts)

	return &Transformer{
		windowLength: cfg.window,
		opts:         append([]Option(nil), opts...),
		cfg:          cfg,
	}
}

// WindowLength returns the subsequence length m.
func (t *Transformer) WindowLength() int { return t.windowLength }

// Metric returns the configured subsequence distance.
func (t *Transformer) Metric() Metric { return t.cfg.metric }

// IsFitted reports whether Fit succeeded at least once.
func (t *Transformer) IsFitted() bool { return t.fitted }

// Fit validates X as a univariate Series and marks the transformer fitted.
//
// Errors:
//   - datatypes.ErrValidation if X is no Series mtype.
//   - series.ErrNotUnivariate if X has several variables.
func (t *Transformer) Fit(X any) error {
	if _, err := t.values(X); err != nil {
		return err
	}
	t.fitted = true

	return nil
}

// Transform returns the matrix profile of X as a Series of length
// n − m + 1 over a positional index.
//
// Errors: ErrNotFitted, the validation errors of Fit, and those of Profile.
func (t *Transformer) Transform(X any) (*frame.Series, error) {
	if !t.fitted {
		return nil, ErrNotFitted
	}
	values, err := t.values(X)
	if err != nil {
		return nil, err
	}
	res, err := Profile(values, t.windowLength, t.opts...)
	if err != nil {
		return nil, err
	}

	return frame.NewSeries("", res.Distances), nil
}

// FitTransform is Fit followed by Transform.
func (t *Transformer) FitTransform(X any) (*frame.Series, error) {
	if err := t.Fit(X); err != nil {
		return nil, err
	}

	return t.Transform(X)
}

func (t *Transformer) values(X any) ([]float64, error) {
	err := check.Raise(X, series.Mtypes(),
		datatypes.WithScitype(scitype.Series), datatypes.WithVarName("X"))
	if err != nil {
		return nil, err
	}
	values, _, err := series.Vector(X)
	if err != nil {
		return nil, fmt.Errorf("matrixprofile: %w", err)
	}
	t.cfg.logger.Debug("Series validated.", "n", len(values), "m", t.windowLength)

	return values, nil
}
