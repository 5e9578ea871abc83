// SPDX-License-Identifier: MIT

// Package check exposes the process-wide default mtype registry.
//
// The registry merges series.Checks and then panel.Checks, resolves omitted
// scitypes through the embedded scitype register, and is built on first use.
// It is read-only afterwards; every function here is safe for concurrent use.
//
//	if err := check.Raise(X, []string{"frame.Series", "slice"}, datatypes.WithScitype("Series")); err != nil {
//		return err
//	}
//	m, err := check.Mtype(X, "Panel") // e.g. "tensor3d"
package check

import (
	"sync"

	"github.com/katalvlaran/tsmtype/datatypes"
	"github.com/katalvlaran/tsmtype/datatypes/panel"
	"github.com/katalvlaran/tsmtype/datatypes/scitype"
	"github.com/katalvlaran/tsmtype/datatypes/series"
)

var defaultRegistry = sync.OnceValue(func() *datatypes.Registry {
	return New(nil)
})

// New builds a fresh registry from the built-in tables followed by extra.
// Entries of extra override built-in validators with the same key.
func New(extra []datatypes.CheckTable, opts ...datatypes.Option) *datatypes.Registry {
	tables := append([]datatypes.CheckTable{series.Checks(), panel.Checks()}, extra...)
	opts = append([]datatypes.Option{datatypes.WithScitypeLookup(scitype.MtypeToScitype)}, opts...)

	return datatypes.NewRegistry(tables, opts...)
}

// Registry returns the default registry, building it on first call.
func Registry() *datatypes.Registry { return defaultRegistry() }

// Is reports whether obj conforms to mtype. See datatypes.Registry.CheckIs.
func Is(obj, mtype any, opts ...datatypes.CheckOption) (bool, error) {
	return Registry().CheckIs(obj, mtype, opts...)
}

// Check validates obj and returns the report. See datatypes.Registry.Check.
func Check(obj, mtype any, opts ...datatypes.CheckOption) (datatypes.Report, error) {
	return Registry().Check(obj, mtype, opts...)
}

// Raise returns nil when obj conforms to mtype and an error otherwise.
// See datatypes.Registry.CheckRaise.
func Raise(obj, mtype any, opts ...datatypes.CheckOption) error {
	return Registry().CheckRaise(obj, mtype, opts...)
}

// Mtype infers the mtype of obj as scitype sci. See datatypes.Registry.Mtype.
func Mtype(obj any, sci string) (string, error) {
	return Registry().Mtype(obj, sci)
}
