// SPDX-License-Identifier: MIT

package matrixprofile

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/tsmtype/dtw"
)

//go:generate go tool stringer -type=Metric -output=metric_string.go

// Metric selects the subsequence distance.
type Metric int

const (
	// ZNormEuclidean is the Euclidean distance of z-normalized subsequences.
	ZNormEuclidean Metric = iota
	// DTW is the warping distance of z-normalized subsequences.
	DTW
)

// DefaultWindowLength is the subsequence length used when none is given.
const DefaultWindowLength = 3

// MinWindowLength is the smallest admissible subsequence length.
const MinWindowLength = 3

// Option configures Profile and Transformer.
type Option func(*config)

type config struct {
	window    int
	metric    Metric
	exclusion int // < 0 ⇒ ⌈m/4⌉
	dtw       dtw.Options
	logger    *slog.Logger
}

func gatherOptions(opts []Option) config {
	cfg := config{
		window:    DefaultWindowLength,
		metric:    ZNormEuclidean,
		exclusion: -1,
		dtw:       dtw.DefaultOptions(),
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithWindowLength sets the subsequence length of a Transformer.
// Profile takes m explicitly and ignores this option.
// Panics if m < MinWindowLength.
func WithWindowLength(m int) Option {
	if m < MinWindowLength {
		panic(fmt.Sprintf("matrixprofile: WithWindowLength(%d) < %d", m, MinWindowLength))
	}
	return func(c *config) { c.window = m }
}

// WithMetric selects the subsequence distance. Panics on an unknown metric.
func WithMetric(metric Metric) Option {
	if metric != ZNormEuclidean && metric != DTW {
		panic(fmt.Sprintf("matrixprofile: WithMetric(%v)", metric))
	}
	return func(c *config) { c.metric = metric }
}

// WithExclusionZone overrides the ⌈m/4⌉ trivial-match radius.
// Panics on a negative zone.
func WithExclusionZone(zone int) Option {
	if zone < 0 {
		panic(fmt.Sprintf("matrixprofile: WithExclusionZone(%d)", zone))
	}
	return func(c *config) { c.exclusion = zone }
}

// WithDTWOptions configures the DTW metric. ReturnPath is ignored.
// Panics if the band or the penalty is invalid.
func WithDTWOptions(o dtw.Options) Option {
	if o.Window < -1 || o.SlopePenalty < 0 {
		panic(fmt.Sprintf("matrixprofile: WithDTWOptions(window=%d, penalty=%v)", o.Window, o.SlopePenalty))
	}
	o.ReturnPath = false
	return func(c *config) { c.dtw = o }
}

// WithLogger routes debug logging to l. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("matrixprofile: WithLogger(nil)")
	}
	return func(c *config) { c.logger = l }
}
