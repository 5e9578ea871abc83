// SPDX-License-Identifier: MIT

// Package datatypes checks time-series containers ("mtypes") against abstract
// data categories ("scitypes") and infers the mtype of an object.
//
// 🚀 What is in here?
//
//	A Registry maps (mtype, scitype) keys to CheckFunc validators. It is built
//	once from per-scitype CheckTables and never mutated afterwards, so every
//	operation is a pure function of (registry, arguments) and safe to call
//	from many goroutines.
//
// ✨ Operations:
//   - CheckIs / Check: try one or more mtypes in order, first success wins;
//     when nothing validates, every per-mtype message is reported.
//   - CheckRaise: the same check, but failure is an error (*ValidationError).
//   - Mtype: re-validate against every mtype of a scitype and
//     return the single one that accepts the object.
//
// ⚙️ Usage:
//
//	reg := datatypes.NewRegistry(
//		[]datatypes.CheckTable{series.Checks(), panel.Checks()},
//		datatypes.WithScitypeLookup(scitype.MtypeToScitype),
//	)
//	rep, err := reg.Check(obj, []string{"frame.Series", "frame.Frame"})
//	name, err := reg.Mtype(obj, "Series")
//
// Errors:
//   - ErrInput: mtype argument is not a string or []string.
//   - ErrDispatch: no validator for a key, or unknown scitype.
//   - ErrValidation: CheckRaise on an object that matches no mtype.
//   - ErrInternalConsistency: two validators of one scitype accept the same object.
//
// The package-level default registry lives in package check.
package datatypes
