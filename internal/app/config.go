// SPDX-License-Identifier: MIT

package app

import (
	"errors"
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/tsmtype/transform/matrixprofile"
)

// Commands understood by Run.
const (
	CommandCheck   = "check"
	CommandInfer   = "infer"
	CommandProfile = "profile"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	Command   string
	InputPath string // YAML container document

	Mtypes  []string // check: candidates in order
	Scitype string   // check/infer: scitype; "" ⇒ per-mtype / every scitype
	Window  int      // profile: subsequence length
	Metric  string   // profile: "znorm" or "dtw"

	LogFormat string
	LogLevel  string
	Dump      bool
}

// NewConfig validates cfg and returns a copy.
func NewConfig(cfg Config) (*Config, error) {
	if !slices.Contains([]string{CommandCheck, CommandInfer, CommandProfile}, cfg.Command) {
		return nil, fmt.Errorf("unknown command %q: must be 'check', 'infer' or 'profile'", cfg.Command)
	}
	if cfg.InputPath == "" {
		return nil, errors.New("InputPath is a required configuration field and cannot be empty")
	}
	if cfg.Command == CommandCheck && len(cfg.Mtypes) == 0 && cfg.Scitype == "" {
		return nil, errors.New("check needs -mtype or -scitype")
	}
	if cfg.Window < matrixprofile.MinWindowLength {
		return nil, fmt.Errorf("window must be ≥ %d, got %d", matrixprofile.MinWindowLength, cfg.Window)
	}
	if _, err := parseMetric(cfg.Metric); err != nil {
		return nil, err
	}
	cfg.Mtypes = slices.Clone(cfg.Mtypes)

	return &cfg, nil
}

func parseMetric(name string) (matrixprofile.Metric, error) {
	switch name {
	case "", "znorm":
		return matrixprofile.ZNormEuclidean, nil
	case "dtw":
		return matrixprofile.DTW, nil
	default:
		return 0, fmt.Errorf("invalid metric %q: must be 'znorm' or 'dtw'", name)
	}
}

// Defaults is the optional YAML file passed with -config. Zero fields leave
// the built-in flag defaults in place; explicit flags always win.
type Defaults struct {
	Mtypes    []string `yaml:"mtypes"`
	Scitype   string   `yaml:"scitype"`
	Window    int      `yaml:"window"`
	Metric    string   `yaml:"metric"`
	LogFormat string   `yaml:"log_format"`
	LogLevel  string   `yaml:"log_level"`
	Dump      bool     `yaml:"dump"`
}

// LoadDefaults reads a Defaults file. Unknown keys are an error.
func LoadDefaults(path string) (*Defaults, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	defer f.Close()

	var d Defaults
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&d); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}

	return &d, nil
}
