// SPDX-License-Identifier: MIT

// Package matrixprofile computes the matrix profile of a univariate time
// series: for every subsequence of length m, the distance to its nearest
// non-trivial neighbour elsewhere in the same series.
//
// 🚀 What is in here?
//
//   - Profile: the kernel over a []float64, returning distances and
//     nearest-neighbour indices.
//   - Transformer: a fit/transform estimator over any univariate Series
//     container, validated through the default mtype registry. Its output is
//     a *frame.Series of length n − m + 1 over a positional index.
//
// ✨ Distances:
//   - ZNormEuclidean (default): Euclidean distance between z-normalized
//     subsequences. A constant subsequence is at distance 0 from another
//     constant one and √m from any other.
//   - DTW: dynamic time warping between z-normalized subsequences, see
//     package dtw.
//
// Neighbours closer than the exclusion zone (default ⌈m/4⌉ positions) are
// trivial matches and ignored. Subsequences holding NaN or ±Inf get distance
// +Inf and index -1, as do subsequences with no admissible neighbour.
//
// ⚙️ Usage:
//
//	mp := matrixprofile.New(matrixprofile.WithWindowLength(12))
//	out, err := mp.FitTransform(datasets.Airline())
//
// Complexity: O(l²) time for ZNormEuclidean and O(l²·m²) for DTW, with
// l = n − m + 1; O(n) memory.
package matrixprofile
