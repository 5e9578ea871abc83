// SPDX-License-Identifier: MIT

package datatypes

import "fmt"

const (
	defaultCheckVarName = "obj"
	defaultRaiseVarName = "input"
)

// CheckOption tunes a single CheckIs/Check/CheckRaise call.
type CheckOption func(*checkConfig)

type checkConfig struct {
	scitype string // "" ⇒ resolve per mtype through the registry lookup
	varName string
}

// WithScitype checks every requested mtype as scitype instead of resolving
// each mtype's own scitype.
func WithScitype(scitype string) CheckOption {
	return func(c *checkConfig) { c.scitype = scitype }
}

// WithVarName sets the object name used in validator messages.
func WithVarName(name string) CheckOption {
	return func(c *checkConfig) { c.varName = name }
}

func gatherCheckOptions(varName string, opts []CheckOption) checkConfig {
	cfg := checkConfig{varName: varName}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// parseMtypes normalizes the mtype argument: a string, a []string, or a
// []any holding only strings. Anything else, an empty list or an empty tag
// is ErrInput.
func parseMtypes(mtype any) ([]string, error) {
	var out []string
	switch v := mtype.(type) {
	case string:
		out = []string{v}
	case []string:
		out = v
	case []any:
		out = make([]string, len(v))
		for i, x := range v {
			s, ok := x.(string)
			if !ok {
				return nil, fmt.Errorf("mtype list element %d is %T: %w", i, x, ErrInput)
			}
			out[i] = s
		}
	default:
		return nil, fmt.Errorf("got %T: %w", mtype, ErrInput)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("empty mtype list: %w", ErrInput)
	}
	for i, m := range out {
		if m == "" {
			return nil, fmt.Errorf("mtype %d is empty: %w", i, ErrInput)
		}
	}

	return out, nil
}

// CheckIs reports whether obj conforms to mtype (a string or []string).
// It is the boolean projection of Check.
func (r *Registry) CheckIs(obj, mtype any, opts ...CheckOption) (bool, error) {
	rep, err := r.check(obj, mtype, gatherCheckOptions(defaultCheckVarName, opts), false)
	if err != nil {
		return false, err
	}

	return rep.Valid, nil
}

// Check validates obj against each requested mtype in order and returns on
// the first success with that validator's metadata.
//
// Behavior:
//   - The scitype of each mtype is WithScitype when given, otherwise looked up
//     independently per mtype.
//   - An unregistered (mtype, scitype) pair aborts with ErrDispatch.
//   - When no mtype validates, Report.Messages holds one message per mtype.
//
// Errors: ErrInput, ErrDispatch. A rejected object is not an error.
func (r *Registry) Check(obj, mtype any, opts ...CheckOption) (Report, error) {
	return r.check(obj, mtype, gatherCheckOptions(defaultCheckVarName, opts), true)
}

// CheckRaise is Check with fail-fast semantics: nil when obj conforms,
// *ValidationError (matching ErrValidation) when it does not.
// The default object name in messages is "input".
func (r *Registry) CheckRaise(obj, mtype any, opts ...CheckOption) error {
	rep, err := r.check(obj, mtype, gatherCheckOptions(defaultRaiseVarName, opts), true)
	if err != nil {
		return err
	}
	if !rep.Valid {
		return &ValidationError{Report: rep}
	}

	return nil
}

func (r *Registry) check(obj, mtype any, cfg checkConfig, returnMetadata bool) (Report, error) {
	mtypes, err := parseMtypes(mtype)
	if err != nil {
		return Report{}, err
	}

	msgs := make([]string, 0, len(mtypes))
	for _, m := range mtypes {
		sci, err := r.resolveScitype(m, cfg.scitype)
		if err != nil {
			return Report{}, err
		}
		fn, ok := r.checks[Key{Mtype: m, Scitype: sci}]
		if !ok {
			return Report{}, dispatchErrorf("no check defined for mtype %q, scitype %q", m, sci)
		}

		res := fn(obj, returnMetadata, cfg.varName)
		if res.Valid {
			return Report{Valid: true, Mtype: m, Metadata: res.Metadata}, nil
		}
		msgs = append(msgs, res.Msg)
	}

	return Report{Messages: msgs}, nil
}

// resolveScitype returns explicit when set, otherwise the lookup result for mtype.
func (r *Registry) resolveScitype(mtype, explicit string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	if r.lookup == nil {
		return "", dispatchErrorf("no scitype given for mtype %q and no lookup configured", mtype)
	}
	sci, err := r.lookup(mtype)
	if err != nil {
		return "", fmt.Errorf("mtype %q: %v: %w", mtype, err, ErrDispatch)
	}

	return sci, nil
}

// Mtype infers the mtype of obj considered as scitype.
//
// A nil obj yields ("", nil) without inference. Every mtype of scitype is
// re-validated independently; exactly one must accept obj.
//
// Errors:
//   - ErrDispatch if scitype is not registered.
//   - ErrNoMatch (wraps ErrDispatch) if no mtype accepts obj.
//   - *AmbiguousMtypeError (wraps ErrInternalConsistency) if several do.
func (r *Registry) Mtype(obj any, scitype string) (string, error) {
	if obj == nil {
		return "", nil
	}
	candidates, ok := r.byScitype[scitype]
	if !ok {
		return "", dispatchErrorf("%q is not a supported scitype", scitype)
	}

	var matched []string
	for _, m := range candidates {
		if r.checks[Key{Mtype: m, Scitype: scitype}](obj, false, defaultCheckVarName).Valid {
			matched = append(matched, m)
		}
	}

	switch len(matched) {
	case 0:
		return "", fmt.Errorf("%w for scitype %q (%T)", ErrNoMatch, scitype, obj)
	case 1:
		r.log.Debug("Mtype inferred.", "scitype", scitype, "mtype", matched[0])
		return matched[0], nil
	default:
		return "", &AmbiguousMtypeError{Scitype: scitype, Mtypes: matched}
	}
}
