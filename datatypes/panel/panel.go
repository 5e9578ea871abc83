// SPDX-License-Identifier: MIT

// Package panel holds the validators for the Panel scitype: collections of
// series that share their variables.
//
// Registered mtypes:
//
//	frame.List         []*frame.Frame, every element a valid Series frame, same columns
//	tensor3d           *frame.Tensor3D, instances × variables × timepoints
//	frame.MultiIndex   *frame.MultiFrame, rows keyed by (instance, time)
//	frame.Nested       *frame.Nested, one *frame.Series per (instance, variable)
//
// Metadata is aggregated over instances: a panel is univariate when it has a
// single variable and equally spaced when every instance is.
package panel

import (
	"fmt"

	"github.com/katalvlaran/tsmtype/datatypes"
	"github.com/katalvlaran/tsmtype/datatypes/scitype"
	"github.com/katalvlaran/tsmtype/datatypes/series"
	"github.com/katalvlaran/tsmtype/frame"
)

// Mtype tags of the Panel scitype.
const (
	MtypeList       = "frame.List"
	MtypeTensor     = "tensor3d"
	MtypeMultiIndex = "frame.MultiIndex"
	MtypeNested     = "frame.Nested"
)

// Mtypes lists the Panel mtypes in registration order.
func Mtypes() []string { return []string{MtypeList, MtypeTensor, MtypeMultiIndex, MtypeNested} }

// Checks returns the Panel sub-registry.
func Checks() datatypes.CheckTable {
	return datatypes.CheckTable{
		{Mtype: MtypeList, Scitype: scitype.Panel}:       CheckList,
		{Mtype: MtypeTensor, Scitype: scitype.Panel}:     CheckTensor,
		{Mtype: MtypeMultiIndex, Scitype: scitype.Panel}: CheckMultiIndex,
		{Mtype: MtypeNested, Scitype: scitype.Panel}:     CheckNested,
	}
}

// CheckList validates a []*frame.Frame. Each element is checked as a Series
// frame under the name "<var>[i]".
func CheckList(obj any, returnMetadata bool, varName string) datatypes.Result {
	frames, ok := obj.([]*frame.Frame)
	if !ok {
		return datatypes.Reject("%s must be a []*frame.Frame, found %T", varName, obj)
	}

	agg := newAggregate(len(frames))
	for i, f := range frames {
		res := series.CheckFrame(f, true, fmt.Sprintf("%s[%d]", varName, i))
		if !res.Valid {
			return res
		}
		if i > 0 && !sameColumns(frames[0].Columns, f.Columns) {
			return datatypes.Reject("%s[%d] must have the same columns as %s[0]", varName, i, varName)
		}
		agg.add(*res.Metadata)
	}

	return datatypes.Accept(returnMetadata, agg.md)
}

// CheckTensor validates a *frame.Tensor3D with at least one cell.
func CheckTensor(obj any, returnMetadata bool, varName string) datatypes.Result {
	m, ok := obj.(*frame.Tensor3D)
	if !ok {
		return datatypes.Reject("%s must be a *frame.Tensor3D, found %T", varName, obj)
	}
	if m == nil {
		return datatypes.Reject("%s must be a non-nil *frame.Tensor3D", varName)
	}
	n, v, t := m.Shape()
	if n == 0 || v == 0 || t == 0 {
		return datatypes.Reject("%s must have a non-empty shape, found (%d, %d, %d)", varName, n, v, t)
	}
	if !m.Consistent() {
		return datatypes.Reject("%s buffer does not match its shape (%d, %d, %d)", varName, n, v, t)
	}

	return datatypes.Accept(returnMetadata, datatypes.Metadata{
		IsUnivariate:    v < 2,
		IsEquallySpaced: true,
		HasNaNs:         m.HasNaNs(),
		NInstances:      n,
	})
}

// CheckMultiIndex validates a *frame.MultiFrame: aligned row keys, unique
// columns, contiguous instances, strictly increasing time per instance.
func CheckMultiIndex(obj any, returnMetadata bool, varName string) datatypes.Result {
	mf, ok := obj.(*frame.MultiFrame)
	if !ok {
		return datatypes.Reject("%s must be a *frame.MultiFrame, found %T", varName, obj)
	}
	if mf == nil {
		return datatypes.Reject("%s must be a non-nil *frame.MultiFrame", varName)
	}
	if len(mf.Columns) != len(mf.Data) {
		return datatypes.Reject("%s has %d column names but %d data columns", varName, len(mf.Columns), len(mf.Data))
	}
	if dup, ok := duplicate(mf.Columns); ok {
		return datatypes.Reject("%s must have unique column names, found duplicate %q", varName, dup)
	}
	rows := len(mf.Instances)
	if len(mf.Times) != rows {
		return datatypes.Reject("%s has %d instance keys but %d time keys", varName, rows, len(mf.Times))
	}
	for j, col := range mf.Data {
		if len(col) != rows {
			return datatypes.Reject("%s column %q has %d values but there are %d rows", varName, mf.Columns[j], len(col), rows)
		}
	}

	var (
		done      = make(map[string]struct{})
		instances int
		spaced    = true
		start     = 0
	)
	for r := 0; r <= rows; r++ {
		if r < rows && r > start && mf.Instances[r] == mf.Instances[start] {
			if mf.Times[r] <= mf.Times[r-1] {
				return datatypes.Reject("time index of instance %q in %s must be strictly increasing", mf.Instances[r], varName)
			}
			continue
		}
		if r > start {
			// close block [start, r)
			spaced = spaced && frame.NewIntIndex(mf.Times[start:r]).IsEquallySpaced()
			instances++
		}
		if r == rows {
			break
		}
		id := mf.Instances[r]
		if _, seen := done[id]; seen {
			return datatypes.Reject("rows of instance %q in %s must be contiguous", id, varName)
		}
		done[id] = struct{}{}
		start = r
	}

	return datatypes.Accept(returnMetadata, datatypes.Metadata{
		IsUnivariate:    len(mf.Columns) < 2,
		IsEquallySpaced: spaced,
		IsEmpty:         rows == 0 || len(mf.Columns) == 0,
		HasNaNs:         mf.HasNaNs(),
		NInstances:      instances,
	})
}

// CheckNested validates a *frame.Nested: unique columns and, in every row,
// one valid *frame.Series per column.
func CheckNested(obj any, returnMetadata bool, varName string) datatypes.Result {
	nd, ok := obj.(*frame.Nested)
	if !ok {
		return datatypes.Reject("%s must be a *frame.Nested, found %T", varName, obj)
	}
	if nd == nil {
		return datatypes.Reject("%s must be a non-nil *frame.Nested", varName)
	}
	if dup, ok := duplicate(nd.Columns); ok {
		return datatypes.Reject("%s must have unique column names, found duplicate %q", varName, dup)
	}

	agg := newAggregate(len(nd.Cells))
	for i, row := range nd.Cells {
		if len(row) != len(nd.Columns) {
			return datatypes.Reject("%s row %d has %d cells but there are %d columns", varName, i, len(row), len(nd.Columns))
		}
		for j, cell := range row {
			res := series.CheckSeries(cell, true, fmt.Sprintf("%s[%d][%q]", varName, i, nd.Columns[j]))
			if !res.Valid {
				return res
			}
			agg.add(*res.Metadata)
		}
	}
	agg.md.IsUnivariate = len(nd.Columns) < 2
	agg.md.IsEmpty = agg.md.IsEmpty || len(nd.Columns) == 0

	return datatypes.Accept(returnMetadata, agg.md)
}

// aggregate folds per-instance metadata into panel metadata.
type aggregate struct {
	md datatypes.Metadata
}

func newAggregate(instances int) *aggregate {
	return &aggregate{md: datatypes.Metadata{
		IsUnivariate:    true,
		IsEquallySpaced: true,
		IsEmpty:         instances == 0,
		NInstances:      instances,
	}}
}

func (a *aggregate) add(md datatypes.Metadata) {
	a.md.IsUnivariate = a.md.IsUnivariate && md.IsUnivariate
	a.md.IsEquallySpaced = a.md.IsEquallySpaced && md.IsEquallySpaced
	a.md.HasNaNs = a.md.HasNaNs || md.HasNaNs
}

func sameColumns(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
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
