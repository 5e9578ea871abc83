// Package tsmtype validates and identifies in-memory time series containers.
//
// A container's concrete layout is its mtype (frame.Series, slice,
// tensor3d, ...). The abstract category it represents is its scitype
// (Series or Panel). The packages are organized as follows:
//
//	frame/                    Index, Series, Frame, Tensor3D, MultiFrame, Nested
//	datatypes/                Registry: CheckIs, Check, CheckRaise, Mtype
//	datatypes/series/         validators for the Series scitype
//	datatypes/panel/          validators for the Panel scitype
//	datatypes/scitype/        mtype → scitype register
//	datatypes/samples/        valid and invalid fixtures per (mtype, scitype)
//	check/                    default registry built on first use
//	dtw/                      dynamic time warping distance
//	transform/matrixprofile/  matrix profile transformer
//	datasets/                 airline passengers, pulse, chirp, OHLC
//	cmd/tsmtype/              check, infer and profile YAML documents
//
// Quick example:
//
//	y := frame.NewSeries("y", []float64{1, 2, 3})
//	ok, _ := check.Is(y, "frame.Series")    // true
//	m, _ := check.Mtype(y, "Series")        // "frame.Series"
//	err := check.Raise(y, "tensor3d")       // ErrValidation
//
//	go get github.com/katalvlaran/tsmtype
package tsmtype
