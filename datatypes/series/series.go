// SPDX-License-Identifier: MIT

// Package series holds the validators for the Series scitype.
//
// Registered mtypes:
//
//	frame.Series   *frame.Series, univariate, strictly increasing index
//	frame.Frame    *frame.Frame, unique columns of index length
//	slice          []float64, or rectangular [][]float64 (rows are time points)
//
// Checks returns the CheckTable consumed by datatypes.NewRegistry. The single
// CheckFuncs are exported so panel validators can reuse them per instance.
package series

import (
	"errors"

	"github.com/katalvlaran/tsmtype/datatypes"
	"github.com/katalvlaran/tsmtype/datatypes/scitype"
	"github.com/katalvlaran/tsmtype/frame"
)

// Mtype tags of the Series scitype.
const (
	MtypeSeries = "frame.Series"
	MtypeFrame  = "frame.Frame"
	MtypeSlice  = "slice"
)

var (
	// ErrNotUnivariate indicates a multivariate object where one variable is required.
	ErrNotUnivariate = errors.New("series: object is not univariate")

	// ErrUnsupported indicates an object of no Series mtype.
	ErrUnsupported = errors.New("series: unsupported object")
)

// Mtypes lists the Series mtypes in registration order.
func Mtypes() []string { return []string{MtypeSeries, MtypeFrame, MtypeSlice} }

// Checks returns the Series sub-registry.
func Checks() datatypes.CheckTable {
	return datatypes.CheckTable{
		{Mtype: MtypeSeries, Scitype: scitype.Series}: CheckSeries,
		{Mtype: MtypeFrame, Scitype: scitype.Series}:  CheckFrame,
		{Mtype: MtypeSlice, Scitype: scitype.Series}:  CheckSlice,
	}
}

// CheckSeries validates a *frame.Series.
func CheckSeries(obj any, returnMetadata bool, varName string) datatypes.Result {
	s, ok := obj.(*frame.Series)
	if !ok {
		return datatypes.Reject("%s must be a *frame.Series, found %T", varName, obj)
	}
	if s == nil {
		return datatypes.Reject("%s must be a non-nil *frame.Series", varName)
	}
	ix := s.Axis()
	if ix.Len() != len(s.Values) {
		return datatypes.Reject("%s index has %d labels but there are %d values", varName, ix.Len(), len(s.Values))
	}
	if !ix.IsMonotonic() {
		return datatypes.Reject("the index of %s must be strictly increasing", varName)
	}
	if !returnMetadata {
		return datatypes.Accept(false, datatypes.Metadata{})
	}

	return datatypes.Accept(true, datatypes.Metadata{
		IsUnivariate:    true,
		IsEquallySpaced: ix.IsEquallySpaced(),
		IsEmpty:         len(s.Values) == 0,
		HasNaNs:         s.HasNaNs(),
		NInstances:      1,
	})
}

// CheckFrame validates a *frame.Frame.
func CheckFrame(obj any, returnMetadata bool, varName string) datatypes.Result {
	f, ok := obj.(*frame.Frame)
	if !ok {
		return datatypes.Reject("%s must be a *frame.Frame, found %T", varName, obj)
	}
	if f == nil {
		return datatypes.Reject("%s must be a non-nil *frame.Frame", varName)
	}
	if len(f.Columns) != len(f.Data) {
		return datatypes.Reject("%s has %d column names but %d data columns", varName, len(f.Columns), len(f.Data))
	}
	if dup, ok := duplicate(f.Columns); ok {
		return datatypes.Reject("%s must have unique column names, found duplicate %q", varName, dup)
	}
	ix := f.Axis()
	for j, col := range f.Data {
		if len(col) != ix.Len() {
			return datatypes.Reject("%s column %q has %d values but the index has %d labels",
				varName, f.Columns[j], len(col), ix.Len())
		}
	}
	if !ix.IsMonotonic() {
		return datatypes.Reject("the index of %s must be strictly increasing", varName)
	}
	if !returnMetadata {
		return datatypes.Accept(false, datatypes.Metadata{})
	}

	return datatypes.Accept(true, datatypes.Metadata{
		IsUnivariate:    len(f.Columns) < 2,
		IsEquallySpaced: ix.IsEquallySpaced(),
		IsEmpty:         ix.Len() == 0 || len(f.Columns) == 0,
		HasNaNs:         f.HasNaNs(),
		NInstances:      1,
	})
}

// CheckSlice validates a []float64 or a rectangular [][]float64.
func CheckSlice(obj any, returnMetadata bool, varName string) datatypes.Result {
	switch v := obj.(type) {
	case []float64:
		return datatypes.Accept(returnMetadata, datatypes.Metadata{
			IsUnivariate:    true,
			IsEquallySpaced: true,
			IsEmpty:         len(v) == 0,
			HasNaNs:         hasNaN(v),
			NInstances:      1,
		})
	case [][]float64:
		width := 0
		if len(v) > 0 {
			width = len(v[0])
		}
		nans := false
		for i, row := range v {
			if len(row) != width {
				return datatypes.Reject("%s rows must have equal length, row %d has %d, expected %d",
					varName, i, len(row), width)
			}
			nans = nans || hasNaN(row)
		}
		return datatypes.Accept(returnMetadata, datatypes.Metadata{
			IsUnivariate:    width < 2,
			IsEquallySpaced: true,
			IsEmpty:         len(v) == 0 || width == 0,
			HasNaNs:         nans,
			NInstances:      1,
		})
	default:
		return datatypes.Reject("%s must be a []float64 or [][]float64, found %T", varName, obj)
	}
}
