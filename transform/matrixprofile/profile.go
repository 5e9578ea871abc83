// SPDX-License-Identifier: MIT

package matrixprofile

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/tsmtype/dtw"
)

var (
	// ErrWindowLength indicates a subsequence length below MinWindowLength.
	ErrWindowLength = errors.New("matrixprofile: window length too small")

	// ErrTooShort indicates a series shorter than the subsequence length.
	ErrTooShort = errors.New("matrixprofile: series shorter than window length")

	// ErrNotFitted indicates Transform on a Transformer that was never fitted.
	ErrNotFitted = errors.New("matrixprofile: transformer is not fitted")
)

// Result is a matrix profile of l = n − m + 1 subsequences.
//
// Distances[i] is the distance from subsequence i to its nearest admissible
// neighbour Indices[i]; +Inf and -1 when there is none.
type Result struct {
	Distances []float64
	Indices   []int
}

// Len returns the number of subsequences.
func (r Result) Len() int { return len(r.Distances) }

// Profile computes the self-join matrix profile of values with subsequence
// length m.
//
// Errors:
//   - ErrWindowLength if m < MinWindowLength.
//   - ErrTooShort if len(values) < m.
//   - dtw.ErrBadInput wrapped, for inconsistent DTW options.
//
// Complexity: see the package documentation.
func Profile(values []float64, m int, opts ...Option) (Result, error) {
	cfg := gatherOptions(opts)
	if m < MinWindowLength {
		return Result{}, fmt.Errorf("m=%d: %w", m, ErrWindowLength)
	}
	n := len(values)
	if n < m {
		return Result{}, fmt.Errorf("n=%d, m=%d: %w", n, m, ErrTooShort)
	}
	excl := cfg.exclusion
	if excl < 0 {
		excl = (m + 3) / 4
	}

	l := n - m + 1
	res := Result{Distances: make([]float64, l), Indices: make([]int, l)}
	for i := range res.Distances {
		res.Distances[i] = math.Inf(1)
		res.Indices[i] = -1
	}
	st := windowStats(values, m)

	switch cfg.metric {
	case DTW:
		if err := dtwProfile(st, m, excl, cfg.dtw, &res); err != nil {
			return Result{}, err
		}
	default:
		znormProfile(st, m, excl, &res)
	}
	cfg.logger.Debug("Matrix profile computed.", "n", n, "m", m, "metric", cfg.metric, "exclusion", excl)

	return res, nil
}

// stats holds per-subsequence moments over a NaN-free copy of the input.
type stats struct {
	t        []float64 // input with non-finite values zeroed
	mu       []float64
	sigma    []float64
	constant []bool
	valid    []bool // no NaN/±Inf inside the subsequence
}

func windowStats(values []float64, m int) stats {
	n := len(values)
	l := n - m + 1
	st := stats{
		t:        make([]float64, n),
		mu:       make([]float64, l),
		sigma:    make([]float64, l),
		constant: make([]bool, l),
		valid:    make([]bool, l),
	}
	finite := make([]bool, n)
	for i, x := range values {
		finite[i] = !math.IsNaN(x) && !math.IsInf(x, 0)
		if finite[i] {
			st.t[i] = x
		}
	}

	for i := 0; i < l; i++ {
		w := st.t[i : i+m]
		st.valid[i] = true
		lo, hi, sum := w[0], w[0], 0.0
		for k, x := range w {
			st.valid[i] = st.valid[i] && finite[i+k]
			lo, hi = math.Min(lo, x), math.Max(hi, x)
			sum += x
		}
		mu := sum / float64(m)
		ss := 0.0
		for _, x := range w {
			ss += (x - mu) * (x - mu)
		}
		st.mu[i] = mu
		st.sigma[i] = math.Sqrt(ss / float64(m))
		st.constant[i] = lo == hi
	}

	return st
}

// pairDistance is the z-normalized Euclidean distance given the centred
// covariance cov of subsequences i and j.
func (st *stats) pairDistance(i, j, m int, cov float64) float64 {
	ci, cj := st.constant[i], st.constant[j]
	switch {
	case ci && cj:
		return 0
	case ci || cj:
		return math.Sqrt(float64(m))
	}
	fm := float64(m)
	rho := math.Min(1, cov/(fm*st.sigma[i]*st.sigma[j]))

	return math.Sqrt(2 * fm * (1 - rho))
}

func (r *Result) offer(i, j int, d float64) {
	if d < r.Distances[i] {
		r.Distances[i] = d
		r.Indices[i] = j
	}
	if d < r.Distances[j] {
		r.Distances[j] = d
		r.Indices[j] = i
	}
}

// refreshEvery bounds rounding drift: the sliding covariance is recomputed
// from scratch every refreshEvery steps along a diagonal.
const refreshEvery = 64

// znormProfile walks each diagonal k > excl of the distance matrix, sliding
// the centred covariance of (i, i+k) in O(1) per step. Every term is taken
// relative to a window mean, so a large level does not cancel the variation.
func znormProfile(st stats, m, excl int, res *Result) {
	l := len(st.mu)
	t, mu := st.t, st.mu
	for k := excl + 1; k < l; k++ {
		var cov float64
		for i := 0; i+k < l; i++ {
			j := i + k
			if i%refreshEvery == 0 {
				cov = 0
				for p := 0; p < m; p++ {
					cov += (t[i+p] - mu[i]) * (t[j+p] - mu[j])
				}
			} else {
				in, out := i+m-1, i-1
				cov += (t[in]-mu[i-1])*(t[in+k]-mu[j]) - (t[out]-mu[i-1])*(t[out+k]-mu[j])
			}
			if !st.valid[i] || !st.valid[j] {
				continue
			}
			res.offer(i, j, st.pairDistance(i, j, m, cov))
		}
	}
}

func dtwProfile(st stats, m, excl int, o dtw.Options, res *Result) error {
	l := len(st.mu)
	z := make([][]float64, l)
	for i := range z {
		if st.valid[i] {
			z[i] = znorm(st.t[i:i+m], st.mu[i], st.sigma[i], st.constant[i])
		}
	}
	for i := 0; i < l; i++ {
		if !st.valid[i] {
			continue
		}
		for j := i + excl + 1; j < l; j++ {
			if !st.valid[j] {
				continue
			}
			d, _, err := dtw.DTW(z[i], z[j], &o)
			if err != nil {
				return fmt.Errorf("matrixprofile: %w", err)
			}
			res.offer(i, j, d)
		}
	}

	return nil
}

// znorm returns (w − mu) / sigma; constant windows normalize to zeros.
func znorm(w []float64, mu, sigma float64, constant bool) []float64 {
	out := make([]float64, len(w))
	if constant {
		return out
	}
	for k, x := range w {
		out[k] = (x - mu) / sigma
	}

	return out
}
