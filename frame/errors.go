// SPDX-License-Identifier: MIT

package frame

import (
	"errors"
	"fmt"
)

var (
	// ErrBadShape is returned when a requested shape is invalid (a dimension <= 0).
	ErrBadShape = errors.New("frame: invalid shape")

	// ErrOutOfRange indicates that an index is outside valid bounds.
	ErrOutOfRange = errors.New("frame: index out of range")

	// ErrLengthMismatch indicates that parallel slices (index, values, columns)
	// disagree on their length.
	ErrLengthMismatch = errors.New("frame: length mismatch")

	// ErrUnknownColumn indicates that a requested column name does not exist.
	ErrUnknownColumn = errors.New("frame: unknown column")

	// ErrIndexKind indicates that an accessor was used on an index of another kind.
	ErrIndexKind = errors.New("frame: wrong index kind")
)

// frameErrorf wraps err with a "<Type>.<method>" prefix.
func frameErrorf(typ, method string, err error) error {
	return fmt.Errorf("%s.%s: %w", typ, method, err)
}
