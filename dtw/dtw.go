// SPDX-License-Identifier: MIT

package dtw

import (
	"errors"
	"fmt"
	"math"
)

// DTW: Dynamic Time Warping
//
// Algorithm Outline (Full-Matrix):
//  1. Let n = len(a), m = len(b). Allocate (n+1)x(m+1) DP matrix D.
//  2. Initialize:
//     D[0][0] = 0
//     D[i][0] = +∞ for i=1..n
//     D[0][j] = +∞ for j=1..m
//  3. For i = 1..n:
//     For j = 1..m (and |i-j| ≤ Window, if constrained):
//     cost = |a[i-1] - b[j-1]|
//     ins   = D[i-1][j]   + SlopePenalty
//     del   = D[i][j-1]   + SlopePenalty
//     match = D[i-1][j-1]
//     D[i][j] = cost + min(ins, del, match)
//  4. distance = D[n][m].
//  5. If ReturnPath, backtrack from (n,m) to (1,1) preferring the diagonal.
//
// Complexity:
//
//	Time   = O(n·m), O(n·w) with a band of width w
//	Memory = O(n·m) (FullMatrix) or O(m) (TwoRows, NoMemory)
//
// Errors:
//   - ErrEmptyInput: if either input is empty.
//   - ErrBadInput: Window < -1, negative or NaN SlopePenalty, unknown MemoryMode.
//   - ErrPathNeedsMatrix: if ReturnPath=true without FullMatrix.
var (
	// ErrEmptyInput indicates one or both inputs are empty.
	ErrEmptyInput = errors.New("dtw: input sequences must be non-empty")

	// ErrBadInput indicates invalid options.
	ErrBadInput = errors.New("dtw: invalid options")

	// ErrPathNeedsMatrix indicates that path recovery requires FullMatrix mode.
	ErrPathNeedsMatrix = errors.New("dtw: ReturnPath requires MemoryMode=FullMatrix")
)

// DTW computes the Dynamic Time Warping distance between a and b.
// Returns (distance, path, error); path is nil unless opts.ReturnPath.
// A nil opts means DefaultOptions().
//
// When the band makes (n, m) unreachable the distance is +Inf and the path nil.
func DTW(a, b []float64, opts *Options) (distance float64, path []Coord, err error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if err = validate(len(a), len(b), o); err != nil {
		return 0, nil, err
	}

	switch o.MemoryMode {
	case FullMatrix:
		dp := fullMatrix(a, b, o)
		distance = dp[len(a)][len(b)]
		if o.ReturnPath && !math.IsInf(distance, 1) {
			path = backtrack(dp, o.SlopePenalty)
		}
	case TwoRows:
		distance = twoRows(a, b, o)
	case NoMemory:
		distance = oneRow(a, b, o)
	}

	return distance, path, nil
}

func validate(n, m int, o Options) error {
	if n == 0 || m == 0 {
		return ErrEmptyInput
	}
	if o.Window < -1 {
		return fmt.Errorf("Window=%d: %w", o.Window, ErrBadInput)
	}
	if o.SlopePenalty < 0 || math.IsNaN(o.SlopePenalty) {
		return fmt.Errorf("SlopePenalty=%v: %w", o.SlopePenalty, ErrBadInput)
	}
	if o.MemoryMode < FullMatrix || o.MemoryMode > NoMemory {
		return fmt.Errorf("MemoryMode=%v: %w", o.MemoryMode, ErrBadInput)
	}
	if o.ReturnPath && o.MemoryMode != FullMatrix {
		return ErrPathNeedsMatrix
	}

	return nil
}

// outside reports whether (i, j) falls outside the Sakoe–Chiba band.
func outside(i, j, window int) bool {
	return window >= 0 && abs(i-j) > window
}

func fullMatrix(a, b []float64, o Options) [][]float64 {
	n, m := len(a), len(b)
	inf := math.Inf(1)
	dp := make([][]float64, n+1)
	for i := range dp {
		dp[i] = make([]float64, m+1)
		dp[i][0] = inf
	}
	for j := 1; j <= m; j++ {
		dp[0][j] = inf
	}
	dp[0][0] = 0

	for i := 1; i <= n; i++ {
		for j := 1; j <= m; j++ {
			if outside(i, j, o.Window) {
				dp[i][j] = inf
				continue
			}
			best := min3(dp[i-1][j]+o.SlopePenalty, dp[i][j-1]+o.SlopePenalty, dp[i-1][j-1])
			dp[i][j] = math.Abs(a[i-1]-b[j-1]) + best
		}
	}

	return dp
}

func twoRows(a, b []float64, o Options) float64 {
	n, m := len(a), len(b)
	inf := math.Inf(1)
	prev := make([]float64, m+1)
	curr := make([]float64, m+1)
	for j := 1; j <= m; j++ {
		prev[j] = inf
	}

	for i := 1; i <= n; i++ {
		curr[0] = inf
		for j := 1; j <= m; j++ {
			if outside(i, j, o.Window) {
				curr[j] = inf
				continue
			}
			best := min3(prev[j]+o.SlopePenalty, curr[j-1]+o.SlopePenalty, prev[j-1])
			curr[j] = math.Abs(a[i-1]-b[j-1]) + best
		}
		prev, curr = curr, prev
	}

	return prev[m]
}

// oneRow overwrites row in place; diag carries D[i-1][j-1] across the sweep.
func oneRow(a, b []float64, o Options) float64 {
	n, m := len(a), len(b)
	inf := math.Inf(1)
	row := make([]float64, m+1)
	for j := 1; j <= m; j++ {
		row[j] = inf
	}

	for i := 1; i <= n; i++ {
		diag := row[0]
		row[0] = inf
		for j := 1; j <= m; j++ {
			up := row[j]
			if outside(i, j, o.Window) {
				row[j] = inf
			} else {
				best := min3(up+o.SlopePenalty, row[j-1]+o.SlopePenalty, diag)
				row[j] = math.Abs(a[i-1]-b[j-1]) + best
			}
			diag = up
		}
	}

	return row[m]
}

// backtrack walks from (n,m) to (1,1) choosing the cheapest predecessor,
// diagonal first on ties, and returns the path in forward order.
func backtrack(dp [][]float64, penalty float64) []Coord {
	i, j := len(dp)-1, len(dp[0])-1
	path := []Coord{{I: i - 1, J: j - 1}}
	for i > 1 || j > 1 {
		match, ins, del := math.Inf(1), math.Inf(1), math.Inf(1)
		if i > 1 && j > 1 {
			match = dp[i-1][j-1]
		}
		if i > 1 {
			ins = dp[i-1][j] + penalty
		}
		if j > 1 {
			del = dp[i][j-1] + penalty
		}
		switch {
		case match <= ins && match <= del:
			i, j = i-1, j-1
		case ins <= del:
			i--
		default:
			j--
		}
		path = append(path, Coord{I: i - 1, J: j - 1})
	}
	for l, r := 0, len(path)-1; l < r; l, r = l+1, r-1 {
		path[l], path[r] = path[r], path[l]
	}

	return path
}

// abs returns the absolute value of an int.
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// min3 returns the minimum of three float64 values.
func min3(a, b, c float64) float64 {
	if a < b {
		if a < c {
			return a
		}
		return c
	}
	if b < c {
		return b
	}
	return c
}
