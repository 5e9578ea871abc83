// SPDX-License-Identifier: MIT

// Package dtw computes Dynamic Time Warping (DTW) distances between
// numeric time series, with optional alignment path and memory optimizations.
//
// 🚀 What is DTW?
//
//	DTW finds the best match between two sequences by warping the time
//	axis to minimize cumulative distance. Here it serves as an elastic
//	subsequence distance for the matrix-profile transformer and as a
//	standalone distance between Series containers.
//
// ✨ Key features:
//   - full-matrix mode: exact O(N·M) time & memory, alignment path on demand
//   - TwoRows / NoMemory modes: O(M) memory, distance only
//   - optional Sakoe–Chiba window (|i−j| ≤ w) for speed & constraint
//   - slope penalty to discourage excessive stretching
//   - Distance: validates any univariate Series mtype before aligning
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/tsmtype/dtw"
//
//	opts := dtw.DefaultOptions()
//	opts.Window = 10          // Sakoe–Chiba band ±10
//	opts.SlopePenalty = 0.5   // penalty for non-diagonal steps
//	opts.ReturnPath = true    // also return warp path
//	opts.MemoryMode = dtw.FullMatrix
//
//	dist, path, err := dtw.DTW(a, b, &opts)
//
//	// or, straight from containers:
//	dist, err = dtw.Distance(frame.NewSeries("a", a), []float64{...}, nil)
//
// Performance:
//
//   - Time:   O(N·M)
//   - Memory: O(N·M) (FullMatrix) or O(M) (TwoRows, NoMemory)
package dtw
