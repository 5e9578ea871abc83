// SPDX-License-Identifier: MIT

package datasets

import (
	"fmt"
	"math"
	"time"

	"github.com/katalvlaran/tsmtype/frame"
)

const tau = 2.0 * math.Pi

// OHLC column names in output order.
var OHLCColumns = []string{"open", "high", "low", "close"}

// Pulse returns a length-n pulse series named "pulse".
//
// Shape:
//   - Rectangular: y ∈ {0, A} chosen by phase fraction < duty.
//   - Triangular:  y ∈ [0, A] via 1 − |2*frac − 1| (no trig).
//
// Additions: linear trend k*i, then Gaussian noise σ·N(0,1).
//
// Errors: ErrTooFewPoints if n < 1.
// Complexity: O(n).
func Pulse(n int, seed int64, opts ...Option) (*frame.Series, error) {
	if n < 1 {
		return nil, fmt.Errorf("Pulse: n=%d: %w", n, ErrTooFewPoints)
	}
	c := newConfig(opts...)
	f0 := c.frequency
	if f0 == 0 {
		f0 = defPulseFreq
	}
	rng := c.rngFrom(seed)

	out := make([]float64, n)
	for i := range out {
		frac := math.Mod(float64(i)*f0, 1)
		var y float64
		switch {
		case c.triangular:
			y = c.amplitude * (1 - math.Abs(2*frac-1))
		case frac < c.duty:
			y = c.amplitude
		}
		y += c.trend * float64(i)
		if c.noise > 0 {
			y += c.noise * rng.NormFloat64()
		}
		out[i] = y
	}

	return frame.NewSeries("pulse", out), nil
}

// Chirp returns a length-n linear chirp named "chirp" sweeping from f0 to f1.
//
// Model:
//   - fi  = f0 + (f1 − f0) * i/(n−1)  (cycles/sample)
//   - θᵢ₊₁ = θᵢ + τ * fi               (phase accumulator, τ=2π)
//   - yᵢ  = A * sin(θᵢ) + trend*i + noise
//
// Errors: ErrTooFewPoints if n < 1.
// Complexity: O(n).
func Chirp(n int, seed int64, opts ...Option) (*frame.Series, error) {
	if n < 1 {
		return nil, fmt.Errorf("Chirp: n=%d: %w", n, ErrTooFewPoints)
	}
	c := newConfig(opts...)
	f0 := c.frequency
	if f0 == 0 {
		f0 = defChirpFrom
	}
	rng := c.rngFrom(seed)

	out := make([]float64, n)
	theta := 0.0
	for i := range out {
		t := 0.0
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		theta += tau * (f0 + (c.chirpTo-f0)*t)
		y := c.amplitude*math.Sin(theta) + c.trend*float64(i)
		if c.noise > 0 {
			y += c.noise * rng.NormFloat64()
		}
		out[i] = y
	}

	return frame.NewSeries("chirp", out), nil
}

// OHLC returns daily candles as a four-column Frame (OHLCColumns) over a
// daily TimeIndex starting at WithStart (default 2020-01-01 UTC).
//
// Model (discrete GBM per intraday step with Δt = 1/steps):
//
//	S_{t+1} = S_t * exp((μ - 0.5σ²)Δt + σ√Δt * Z),  Z ~ N(0,1).
//
// Invariant: low ≤ min(open, close) ≤ max(open, close) ≤ high.
//
// Errors: ErrTooFewPoints if days < 1.
// Complexity: O(days * steps).
func OHLC(days int, seed int64, opts ...Option) (*frame.Frame, error) {
	if days < 1 {
		return nil, fmt.Errorf("OHLC: days=%d: %w", days, ErrTooFewPoints)
	}
	c := newConfig(opts...)
	rng := c.rngFrom(seed)

	open := make([]float64, days)
	high := make([]float64, days)
	low := make([]float64, days)
	closing := make([]float64, days)
	stamps := make([]time.Time, days)

	dt := 1.0 / float64(c.steps)
	driftTerm := (c.drift - 0.5*c.vol*c.vol) * dt
	noiseScale := c.vol * math.Sqrt(dt)
	price := c.price
	for d := 0; d < days; d++ {
		stamps[d] = c.start.AddDate(0, 0, d)
		open[d] = price
		hi, lo := price, price
		for s := 0; s < c.steps; s++ {
			price *= math.Exp(driftTerm + noiseScale*rng.NormFloat64())
			hi, lo = math.Max(hi, price), math.Min(lo, price)
		}
		closing[d] = price
		high[d], low[d] = hi, lo
	}

	return frame.NewFrameWithIndex(OHLCColumns, frame.NewTimeIndex(stamps),
		[][]float64{open, high, low, closing})
}
