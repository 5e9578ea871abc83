// SPDX-License-Identifier: MIT

package datatypes

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInput indicates a malformed mtype argument: not a string or a
	// non-empty []string of non-empty tags.
	ErrInput = errors.New("datatypes: mtype must be a string or list of strings")

	// ErrDispatch indicates that no validator is registered for the requested
	// (mtype, scitype) combination, or that the scitype itself is unknown.
	ErrDispatch = errors.New("datatypes: unsupported mtype/scitype combination")

	// ErrNoMatch indicates that Mtype found no mtype accepting the object.
	// It wraps ErrDispatch.
	ErrNoMatch = fmt.Errorf("%w: no mtype matched", ErrDispatch)

	// ErrValidation indicates that an object conforms to none of the requested mtypes.
	ErrValidation = errors.New("datatypes: validation failed")

	// ErrInternalConsistency indicates overlapping validators: more than one
	// mtype of a scitype accepted the same object. This is a registry defect.
	ErrInternalConsistency = errors.New("datatypes: registry inconsistency")
)

// ValidationError is returned by CheckRaise. Its message is exactly the
// aggregated check message (Report.Msg).
type ValidationError struct {
	Report Report
}

// Error implements the error interface.
func (e *ValidationError) Error() string { return e.Report.Msg() }

// Unwrap lets errors.Is(err, ErrValidation) succeed.
func (e *ValidationError) Unwrap() error { return ErrValidation }

// AmbiguousMtypeError is returned by Mtype when several mtypes matched.
type AmbiguousMtypeError struct {
	Scitype string
	Mtypes  []string
}

// Error implements the error interface.
func (e *AmbiguousMtypeError) Error() string {
	return fmt.Sprintf("datatypes: more than one mtype identified as %s: [%s]",
		e.Scitype, strings.Join(e.Mtypes, ", "))
}

// Unwrap lets errors.Is(err, ErrInternalConsistency) succeed.
func (e *AmbiguousMtypeError) Unwrap() error { return ErrInternalConsistency }

// dispatchErrorf wraps ErrDispatch with call-site context.
func dispatchErrorf(format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrDispatch)
}
