// SPDX-License-Identifier: MIT

package datatypes

import (
	"fmt"
	"strings"
)

// Key identifies one validator: the concrete mtype checked as a scitype.
type Key struct {
	Mtype   string
	Scitype string
}

// String implements fmt.Stringer.
func (k Key) String() string { return fmt.Sprintf("(%s, %s)", k.Mtype, k.Scitype) }

// Metadata describes a validated object. It is only produced on success.
//
// IsUnivariate and IsEquallySpaced are always populated; the remaining fields
// are filled by validators that can compute them cheaply.
type Metadata struct {
	IsUnivariate    bool // exactly one variable
	IsEquallySpaced bool // constant step between consecutive time labels
	IsEmpty         bool // no observations
	HasNaNs         bool // at least one missing value
	NInstances      int  // number of series in a panel; 1 for a single series
}

// Result is what a CheckFunc returns.
//
// Valid reports acceptance. Msg explains a rejection and is empty on success.
// Metadata is nil on rejection and when it was not requested.
type Result struct {
	Valid    bool
	Msg      string
	Metadata *Metadata
}

// Accept builds a successful Result. md is dropped unless returnMetadata.
func Accept(returnMetadata bool, md Metadata) Result {
	if !returnMetadata {
		return Result{Valid: true}
	}

	return Result{Valid: true, Metadata: &md}
}

// Reject builds a failed Result with a formatted message.
func Reject(format string, args ...any) Result {
	return Result{Msg: fmt.Sprintf(format, args...)}
}

// CheckFunc validates obj as one (mtype, scitype) pair.
//
// returnMetadata asks the validator to fill Result.Metadata on success;
// varName is the name used for obj in messages ("obj", "input", "X", ...).
// A CheckFunc must not panic on any input and must not retain obj.
type CheckFunc func(obj any, returnMetadata bool, varName string) Result

// CheckTable is a per-scitype sub-registry handed to NewRegistry.
type CheckTable map[Key]CheckFunc

// Report aggregates a multi-mtype check.
//
// On success it carries the accepting mtype and that validator's metadata
// unmodified. On failure Messages holds one entry per attempted mtype, in order,
// and Mtype and Metadata are empty.
type Report struct {
	Valid    bool
	Mtype    string
	Messages []string
	Metadata *Metadata
}

// Msg renders the failure message: the single message when exactly one mtype
// was attempted, otherwise the ordered list of per-mtype messages.
func (r Report) Msg() string {
	switch len(r.Messages) {
	case 0:
		return ""
	case 1:
		return r.Messages[0]
	}
	quoted := make([]string, len(r.Messages))
	for i, m := range r.Messages {
		quoted[i] = fmt.Sprintf("%q", m)
	}

	return "[" + strings.Join(quoted, ", ") + "]"
}
