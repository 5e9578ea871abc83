// SPDX-License-Identifier: MIT

package datasets

import (
	"math/rand"
	"time"
)

// Option customizes a generator. Options that make no sense for a given
// generator are ignored by it.
type Option func(*config)

// config holds every generator knob with its default.
type config struct {
	rng        *rand.Rand // shared stream; nil ⇒ seed per call
	amplitude  float64    // Pulse/Chirp peak A (>0)
	frequency  float64    // Pulse f0 or Chirp start (cycles/sample); 0 ⇒ per-generator default
	chirpTo    float64    // Chirp end frequency f1 (cycles/sample, >0)
	duty       float64    // Pulse duty in [0,1]
	triangular bool       // Pulse shape
	trend      float64    // additive slope per sample
	noise      float64    // Gaussian sigma (≥0)
	start      time.Time  // OHLC first day
	price      float64    // OHLC initial price (>0)
	drift      float64    // OHLC daily drift μ
	vol        float64    // OHLC daily volatility σ (≥0)
	steps      int        // OHLC intraday steps (≥1)
}

const (
	defAmplitude     = 1.0
	defPulseFreq     = 0.125 // period ≈ 8 samples
	defChirpFrom     = 0.02
	defChirpTo       = 0.25
	defDuty          = 0.5
	defOHLCPrice     = 100.0
	defOHLCDrift     = 0.0005
	defOHLCVol       = 0.02
	defIntradaySteps = 8
)

// defaultStart is the first OHLC day.
var defaultStart = time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC)

func newConfig(opts ...Option) config {
	c := config{
		amplitude: defAmplitude,
		chirpTo:   defChirpTo,
		duty:      defDuty,
		start:     defaultStart,
		price:     defOHLCPrice,
		drift:     defOHLCDrift,
		vol:       defOHLCVol,
		steps:     defIntradaySteps,
	}
	for _, opt := range opts {
		opt(&c)
	}

	return c
}

// rngFrom returns the shared stream if present, else a source seeded by seed.
func (c config) rngFrom(seed int64) *rand.Rand {
	if c.rng != nil {
		return c.rng
	}

	return rand.New(rand.NewSource(seed))
}

// WithRand shares r across generator calls. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("datasets: WithRand(nil)")
	}
	return func(c *config) { c.rng = r }
}

// WithAmplitude sets the peak A of Pulse and Chirp. Panics if A <= 0.
func WithAmplitude(A float64) Option {
	if A <= 0 {
		panic("datasets: WithAmplitude(A<=0)")
	}
	return func(c *config) { c.amplitude = A }
}

// WithFrequency sets the Pulse base frequency or the Chirp start frequency,
// in cycles per sample. Panics if f0 <= 0.
func WithFrequency(f0 float64) Option {
	if f0 <= 0 {
		panic("datasets: WithFrequency(f0<=0)")
	}
	return func(c *config) { c.frequency = f0 }
}

// WithSweepTo sets the Chirp end frequency. Panics if f1 <= 0.
func WithSweepTo(f1 float64) Option {
	if f1 <= 0 {
		panic("datasets: WithSweepTo(f1<=0)")
	}
	return func(c *config) { c.chirpTo = f1 }
}

// WithDuty sets the rectangular Pulse duty cycle. Panics outside [0,1].
func WithDuty(d float64) Option {
	if d < 0 || d > 1 {
		panic("datasets: WithDuty(d∉[0,1])")
	}
	return func(c *config) { c.duty = d }
}

// WithTriangular switches Pulse to a triangular wave.
func WithTriangular() Option {
	return func(c *config) { c.triangular = true }
}

// WithTrend adds k*i to sample i of Pulse and Chirp.
func WithTrend(k float64) Option {
	return func(c *config) { c.trend = k }
}

// WithNoise adds Gaussian noise of standard deviation sigma to Pulse and
// Chirp. Panics if sigma < 0.
func WithNoise(sigma float64) Option {
	if sigma < 0 {
		panic("datasets: WithNoise(sigma<0)")
	}
	return func(c *config) { c.noise = sigma }
}

// WithStart sets the first OHLC day.
func WithStart(day time.Time) Option {
	return func(c *config) { c.start = day }
}

// WithGBM sets the OHLC initial price, daily drift and daily volatility.
// Panics if price <= 0 or vol < 0.
func WithGBM(price, drift, vol float64) Option {
	if price <= 0 || vol < 0 {
		panic("datasets: WithGBM(price<=0 or vol<0)")
	}
	return func(c *config) { c.price, c.drift, c.vol = price, drift, vol }
}

// WithIntradaySteps sets the number of OHLC steps per day. Panics if steps < 1.
func WithIntradaySteps(steps int) Option {
	if steps < 1 {
		panic("datasets: WithIntradaySteps(steps<1)")
	}
	return func(c *config) { c.steps = steps }
}
