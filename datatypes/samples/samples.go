// SPDX-License-Identifier: MIT

// Package samples provides fixture objects for every registered
// (mtype, scitype) pair: known-valid objects with their expected metadata and
// known-invalid objects of the same Go type.
//
// Every call to All builds fresh objects, so tests may mutate them.
package samples

import (
	"math"

	"github.com/katalvlaran/tsmtype/datatypes"
	"github.com/katalvlaran/tsmtype/datatypes/panel"
	"github.com/katalvlaran/tsmtype/datatypes/scitype"
	"github.com/katalvlaran/tsmtype/datatypes/series"
	"github.com/katalvlaran/tsmtype/frame"
)

// Sample is one fixture. Metadata is the expected metadata when Valid.
type Sample struct {
	Name     string
	Mtype    string
	Scitype  string
	Obj      any
	Valid    bool
	Metadata *datatypes.Metadata
}

// Key returns the registry key the sample targets.
func (s Sample) Key() datatypes.Key { return datatypes.Key{Mtype: s.Mtype, Scitype: s.Scitype} }

// All returns every fixture, valid ones first within each key.
func All() []Sample {
	var out []Sample
	out = append(out, seriesSamples()...)
	out = append(out, panelSamples()...)

	return out
}

// Valid returns the valid fixtures only.
func Valid() []Sample {
	var out []Sample
	for _, s := range All() {
		if s.Valid {
			out = append(out, s)
		}
	}

	return out
}

// Invalid returns the invalid fixtures only.
func Invalid() []Sample {
	var out []Sample
	for _, s := range All() {
		if !s.Valid {
			out = append(out, s)
		}
	}

	return out
}

func md(univariate, spaced bool, instances int) *datatypes.Metadata {
	return &datatypes.Metadata{IsUnivariate: univariate, IsEquallySpaced: spaced, NInstances: instances}
}

func seriesSamples() []Sample {
	sci := scitype.Series
	monthly, _ := frame.NewSeriesWithIndex("passengers", frame.NewMonthlyIndex(1949, 1, 4), []float64{112, 118, 132, 129})
	withNaN := md(true, true, 1)
	withNaN.HasNaNs = true
	twoCols, _ := frame.NewFrame([]string{"a", "b"}, [][]float64{{1, 2, 3}, {4, 5, 6}})

	return []Sample{
		{Name: "monthly series", Mtype: series.MtypeSeries, Scitype: sci, Obj: monthly, Valid: true, Metadata: md(true, true, 1)},
		{Name: "series with gap", Mtype: series.MtypeSeries, Scitype: sci, Valid: true, Metadata: md(true, false, 1),
			Obj: &frame.Series{Index: frame.NewIntIndex([]int64{0, 1, 5}), Values: []float64{1, 2, 3}}},
		{Name: "series unsorted", Mtype: series.MtypeSeries, Scitype: sci,
			Obj: &frame.Series{Index: frame.NewIntIndex([]int64{2, 1}), Values: []float64{1, 2}}},

		{Name: "frame two columns", Mtype: series.MtypeFrame, Scitype: sci, Obj: twoCols, Valid: true, Metadata: md(false, true, 1)},
		{Name: "frame one column", Mtype: series.MtypeFrame, Scitype: sci, Valid: true, Metadata: withNaN,
			Obj: frame.FromSeries(frame.NewSeries("y", []float64{1, math.NaN()}))},
		{Name: "frame duplicate columns", Mtype: series.MtypeFrame, Scitype: sci,
			Obj: &frame.Frame{Columns: []string{"a", "a"}, Data: [][]float64{{1}, {2}}}},

		{Name: "flat slice", Mtype: series.MtypeSlice, Scitype: sci, Obj: []float64{1, 2, 3}, Valid: true, Metadata: md(true, true, 1)},
		{Name: "matrix slice", Mtype: series.MtypeSlice, Scitype: sci, Obj: [][]float64{{1, 2}, {3, 4}}, Valid: true, Metadata: md(false, true, 1)},
		{Name: "ragged slice", Mtype: series.MtypeSlice, Scitype: sci, Obj: [][]float64{{1, 2}, {3}}},
	}
}

func panelSamples() []Sample {
	sci := scitype.Panel
	f1, _ := frame.NewFrame([]string{"v"}, [][]float64{{1, 2, 3}})
	f2, _ := frame.NewFrame([]string{"v"}, [][]float64{{4, 5}})
	other, _ := frame.NewFrame([]string{"w"}, [][]float64{{4, 5}})
	cube, _ := frame.NewTensor3DFrom([][][]float64{
		{{1, 2, 3}, {4, 5, 6}},
		{{7, 8, 9}, {1, 2, 3}},
		{{4, 5, 6}, {7, 8, 9}},
	})
	nested, _ := frame.NewNested([]string{"v"}, [][]*frame.Series{
		{frame.NewSeries("v", []float64{1, 2})},
		{frame.NewSeries("v", []float64{3, 4, 5})},
	})

	return []Sample{
		{Name: "list of frames", Mtype: panel.MtypeList, Scitype: sci, Obj: []*frame.Frame{f1, f2}, Valid: true, Metadata: md(true, true, 2)},
		{Name: "list mixed columns", Mtype: panel.MtypeList, Scitype: sci, Obj: []*frame.Frame{f1, other}},

		{Name: "tensor", Mtype: panel.MtypeTensor, Scitype: sci, Obj: cube, Valid: true, Metadata: md(false, true, 3)},
		{Name: "tensor zero value", Mtype: panel.MtypeTensor, Scitype: sci, Obj: &frame.Tensor3D{}},

		{Name: "multiindex", Mtype: panel.MtypeMultiIndex, Scitype: sci, Valid: true, Metadata: md(true, true, 2),
			Obj: &frame.MultiFrame{
				Columns:   []string{"v"},
				Instances: []string{"a", "a", "b", "b"},
				Times:     []int64{0, 1, 0, 1},
				Data:      [][]float64{{1, 2, 3, 4}},
			}},
		{Name: "multiindex interleaved", Mtype: panel.MtypeMultiIndex, Scitype: sci,
			Obj: &frame.MultiFrame{
				Columns:   []string{"v"},
				Instances: []string{"a", "b", "a"},
				Times:     []int64{0, 0, 1},
				Data:      [][]float64{{1, 2, 3}},
			}},

		{Name: "nested", Mtype: panel.MtypeNested, Scitype: sci, Obj: nested, Valid: true, Metadata: md(true, true, 2)},
		{Name: "nested bad cell", Mtype: panel.MtypeNested, Scitype: sci,
			Obj: &frame.Nested{Columns: []string{"v"}, Cells: [][]any{{[]float64{1}}}}},
	}
}
