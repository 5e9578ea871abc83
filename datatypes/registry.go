// SPDX-License-Identifier: MIT

package datatypes

import (
	"log/slog"
	"sort"
)

// ScitypeLookup resolves the scitype an mtype belongs to. It is consulted
// only when the caller does not pass WithScitype.
type ScitypeLookup func(mtype string) (string, error)

// Option configures a Registry at construction time.
type Option func(*registryConfig)

type registryConfig struct {
	lookup ScitypeLookup
	logger *slog.Logger
}

// WithScitypeLookup sets the mtype→scitype table used when a check omits the
// scitype. Panics on nil.
func WithScitypeLookup(fn ScitypeLookup) Option {
	if fn == nil {
		panic("datatypes: WithScitypeLookup(nil)")
	}
	return func(c *registryConfig) { c.lookup = fn }
}

// WithLogger routes the registry's debug logging to l. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("datatypes: WithLogger(nil)")
	}
	return func(c *registryConfig) { c.logger = l }
}

// Registry maps (mtype, scitype) keys to validators.
//
// A Registry is immutable after NewRegistry returns; all methods are safe
// for concurrent use without further synchronization.
type Registry struct {
	checks    map[Key]CheckFunc
	byScitype map[string][]string // scitype → sorted mtypes
	scitypes  []string            // sorted
	lookup    ScitypeLookup
	log       *slog.Logger
}

// NewRegistry merges tables in order into a new Registry. A key present in
// several tables resolves to the validator of the last one.
// Nil validators are skipped.
//
// Without WithScitypeLookup, every check must name its scitype explicitly.
// Complexity: O(K log K) for K keys.
func NewRegistry(tables []CheckTable, opts ...Option) *Registry {
	cfg := registryConfig{logger: slog.Default()}
	for _, opt := range opts {
		opt(&cfg)
	}

	r := &Registry{
		checks:    make(map[Key]CheckFunc),
		byScitype: make(map[string][]string),
		lookup:    cfg.lookup,
		log:       cfg.logger,
	}
	for _, table := range tables {
		for key, fn := range table {
			if fn == nil {
				continue
			}
			if _, dup := r.checks[key]; dup {
				r.log.Debug("Overriding mtype check.", "mtype", key.Mtype, "scitype", key.Scitype)
			}
			r.checks[key] = fn
		}
	}
	for key := range r.checks {
		r.byScitype[key.Scitype] = append(r.byScitype[key.Scitype], key.Mtype)
	}
	for sci, mtypes := range r.byScitype {
		sort.Strings(mtypes)
		r.scitypes = append(r.scitypes, sci)
	}
	sort.Strings(r.scitypes)
	r.log.Debug("Mtype registry built.", "checks", len(r.checks), "scitypes", r.scitypes)

	return r
}

// Len returns the number of registered keys.
func (r *Registry) Len() int { return len(r.checks) }

// Has reports whether a validator is registered for key.
func (r *Registry) Has(key Key) bool {
	_, ok := r.checks[key]
	return ok
}

// Scitypes returns the registered scitypes in sorted order.
func (r *Registry) Scitypes() []string {
	return append([]string(nil), r.scitypes...)
}

// Mtypes returns the mtypes registered under scitype in sorted order,
// or nil when the scitype is unknown.
func (r *Registry) Mtypes(scitype string) []string {
	mtypes, ok := r.byScitype[scitype]
	if !ok {
		return nil
	}

	return append([]string(nil), mtypes...)
}

// Keys returns every registered key sorted by (scitype, mtype).
func (r *Registry) Keys() []Key {
	keys := make([]Key, 0, len(r.checks))
	for _, sci := range r.scitypes {
		for _, m := range r.byScitype[sci] {
			keys = append(keys, Key{Mtype: m, Scitype: sci})
		}
	}

	return keys
}
