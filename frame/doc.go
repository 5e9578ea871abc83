// SPDX-License-Identifier: MIT

// Package frame holds the in-memory containers that time-series data lives in.
//
// Containers:
//
//	Index        time axis labels: range, integer, monthly period or timestamps.
//	Series       one variable observed over an Index.
//	Frame        several named variables sharing one Index (column-major).
//	Tensor3D     instances × variables × timepoints, row-major flat storage.
//	MultiFrame   long table keyed by (instance, time) rows.
//	Nested       instances × variables grid whose cells are Series.
//
// The containers are plain data: fields are exported so that callers (and
// validators) can build and inspect objects freely. Constructors such as
// NewSeries or NewFrame enforce shape contracts up front; objects assembled by
// hand are checked later by the datatypes validators, never here.
//
// Errors are sentinels (ErrBadShape, ErrLengthMismatch, ...) wrapped with the
// calling method for context; use errors.Is to branch on them.
package frame
