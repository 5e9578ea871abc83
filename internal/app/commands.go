// SPDX-License-Identifier: MIT

package app

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/tsmtype/datatypes"
	"github.com/katalvlaran/tsmtype/internal/load"
	"github.com/katalvlaran/tsmtype/transform/matrixprofile"
)

type metadataOut struct {
	IsUnivariate    bool `yaml:"is_univariate"`
	IsEquallySpaced bool `yaml:"is_equally_spaced"`
	IsEmpty         bool `yaml:"is_empty"`
	HasNaNs         bool `yaml:"has_nans"`
	NInstances      int  `yaml:"n_instances"`
}

type failureOut struct {
	Mtype   string `yaml:"mtype"`
	Message string `yaml:"message"`
}

type checkOut struct {
	Valid    bool         `yaml:"valid"`
	Mtype    string       `yaml:"mtype,omitempty"`
	Metadata *metadataOut `yaml:"metadata,omitempty"`
	Failures []failureOut `yaml:"failures,omitempty"`
}

type inferOut struct {
	Scitype string `yaml:"scitype"`
	Mtype   string `yaml:"mtype"`
}

// profileOut is a series document that internal/load reads back.
type profileOut struct {
	Kind   string    `yaml:"kind"`
	Name   string    `yaml:"name"`
	Values []float64 `yaml:"values,flow"`
}

// runCheck validates obj against the configured mtypes, or every mtype of
// the configured scitype when none are given.
func (a *App) runCheck(obj any) error {
	mtypes := a.config.Mtypes
	if len(mtypes) == 0 {
		mtypes = a.registry.Mtypes(a.config.Scitype)
		if mtypes == nil {
			return fmt.Errorf("%q is not a supported scitype: %w", a.config.Scitype, datatypes.ErrDispatch)
		}
	}
	var opts []datatypes.CheckOption
	if a.config.Scitype != "" {
		opts = append(opts, datatypes.WithScitype(a.config.Scitype))
	}

	rep, err := a.registry.Check(obj, mtypes, opts...)
	if err != nil {
		return err
	}
	a.logger.Debug("Check finished.", "valid", rep.Valid, "mtypes", mtypes)

	out := checkOut{Valid: rep.Valid, Mtype: rep.Mtype}
	if md := rep.Metadata; md != nil {
		out.Metadata = &metadataOut{
			IsUnivariate:    md.IsUnivariate,
			IsEquallySpaced: md.IsEquallySpaced,
			IsEmpty:         md.IsEmpty,
			HasNaNs:         md.HasNaNs,
			NInstances:      md.NInstances,
		}
	}
	for i, msg := range rep.Messages {
		out.Failures = append(out.Failures, failureOut{Mtype: mtypes[i], Message: msg})
	}
	if err := a.emit(out); err != nil {
		return err
	}
	if !rep.Valid {
		return ErrNotConforming
	}

	return nil
}

// runInfer reports the mtype of obj under each candidate scitype.
func (a *App) runInfer(obj any) error {
	scitypes := a.registry.Scitypes()
	if a.config.Scitype != "" {
		scitypes = []string{a.config.Scitype}
	}

	var found []inferOut
	for _, sci := range scitypes {
		m, err := a.registry.Mtype(obj, sci)
		switch {
		case errors.Is(err, datatypes.ErrNoMatch):
			a.logger.Debug("No mtype matched.", "scitype", sci)
			continue
		case err != nil:
			return err
		}
		found = append(found, inferOut{Scitype: sci, Mtype: m})
	}
	if len(found) == 0 {
		a.logger.Info("No mtype matched the input.", "scitypes", scitypes)
		return ErrNotConforming
	}

	return a.emit(found)
}

// runProfile writes the matrix profile of obj as a series document.
func (a *App) runProfile(obj any) error {
	metric, err := parseMetric(a.config.Metric)
	if err != nil {
		return err
	}
	mp := matrixprofile.New(
		matrixprofile.WithWindowLength(a.config.Window),
		matrixprofile.WithMetric(metric),
		matrixprofile.WithLogger(a.logger),
	)
	out, err := mp.FitTransform(obj)
	if err != nil {
		return err
	}
	a.logger.Info("Matrix profile ready.", "window", mp.WindowLength(), "metric", metric.String(), "len", out.Len())

	return a.emit(profileOut{Kind: load.KindSeries, Name: "matrix_profile", Values: out.Values})
}
