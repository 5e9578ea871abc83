// SPDX-License-Identifier: MIT

// Package scitype is the register of known mtypes and the scitype each one
// represents. The register is an embedded YAML document decoded once.
package scitype

import (
	_ "embed"
	"errors"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"
)

// Scitype names.
const (
	Series = "Series"
	Panel  = "Panel"
)

// ErrUnknownMtype indicates an mtype missing from the register.
var ErrUnknownMtype = errors.New("scitype: unknown mtype")

//go:embed register.yaml
var registerYAML []byte

// Entry is one register row.
type Entry struct {
	Mtype       string `yaml:"mtype"`
	Scitype     string `yaml:"scitype"`
	Description string `yaml:"description"`
}

// Info describes a scitype.
type Info struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

// File models register.yaml.
type File struct {
	Version  int     `yaml:"version"`
	Scitypes []Info  `yaml:"scitypes"`
	Mtypes   []Entry `yaml:"mtypes"`
}

type table struct {
	file    *File
	byMtype map[string]Entry
}

var loadRegister = sync.OnceValues(func() (*table, error) {
	f, err := Parse(registerYAML)
	if err != nil {
		return nil, err
	}
	t := &table{file: f, byMtype: make(map[string]Entry, len(f.Mtypes))}
	for _, e := range f.Mtypes {
		t.byMtype[e.Mtype] = e
	}

	return t, nil
})

// Parse decodes and validates a register document.
func Parse(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("scitype: parse register: %w", err)
	}
	if f.Version == 0 {
		f.Version = 1
	}

	known := make(map[string]bool, len(f.Scitypes))
	for _, s := range f.Scitypes {
		known[s.Name] = true
	}
	seen := make(map[string]bool, len(f.Mtypes))
	for _, e := range f.Mtypes {
		if e.Mtype == "" || e.Scitype == "" {
			return nil, fmt.Errorf("scitype: register entry %+v: empty mtype or scitype", e)
		}
		if !known[e.Scitype] {
			return nil, fmt.Errorf("scitype: mtype %q refers to undeclared scitype %q", e.Mtype, e.Scitype)
		}
		if seen[e.Mtype] {
			return nil, fmt.Errorf("scitype: mtype %q registered twice", e.Mtype)
		}
		seen[e.Mtype] = true
	}

	return &f, nil
}

func mustRegister() *table {
	t, err := loadRegister()
	if err != nil {
		// register.yaml ships with the binary; a decode failure is a build defect.
		panic(err)
	}

	return t
}

// Register returns a copy of the register entries in document order.
func Register() []Entry {
	return append([]Entry(nil), mustRegister().file.Mtypes...)
}

// Scitypes returns the declared scitypes in document order.
func Scitypes() []Info {
	return append([]Info(nil), mustRegister().file.Scitypes...)
}

// MtypeToScitype returns the scitype mtype belongs to.
func MtypeToScitype(mtype string) (string, error) {
	e, ok := mustRegister().byMtype[mtype]
	if !ok {
		return "", fmt.Errorf("%q: %w", mtype, ErrUnknownMtype)
	}

	return e.Scitype, nil
}

// MtypesOf returns the mtypes registered for scitype in document order.
func MtypesOf(scitype string) []string {
	var out []string
	for _, e := range mustRegister().file.Mtypes {
		if e.Scitype == scitype {
			out = append(out, e.Mtype)
		}
	}

	return out
}
