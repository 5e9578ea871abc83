// SPDX-License-Identifier: MIT

package datasets

import "errors"

var (
	// ErrTooFewPoints indicates a request for fewer than one observation.
	ErrTooFewPoints = errors.New("datasets: length must be ≥ 1")

	// ErrCorruptData indicates an embedded dataset that fails to decode.
	ErrCorruptData = errors.New("datasets: corrupt embedded data")
)
