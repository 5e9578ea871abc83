// SPDX-License-Identifier: MIT

package dtw

import "fmt"

// MemoryMode controls how DTW stores its DP matrix.
//
//   - FullMatrix: keep the entire (n+1)x(m+1) matrix in memory.
//     Allows distance + full backtrace for the optimal warping path.
//     Memory: O(n·m).
//
//   - TwoRows: keep the previous and the current row.
//     Memory: O(m). Distance only.
//
//   - NoMemory: a single row plus one carried diagonal cell.
//     Memory: O(m), half of TwoRows. Distance only.
type MemoryMode int

const (
	// FullMatrix mode: store all rows, support path recovery.
	FullMatrix MemoryMode = iota

	// TwoRows mode: keep only two rows, no path recovery.
	TwoRows

	// NoMemory mode: keep one row, no path recovery.
	NoMemory
)

// String implements fmt.Stringer.
func (m MemoryMode) String() string {
	switch m {
	case FullMatrix:
		return "FullMatrix"
	case TwoRows:
		return "TwoRows"
	case NoMemory:
		return "NoMemory"
	default:
		return fmt.Sprintf("MemoryMode(%d)", int(m))
	}
}

// Options configures Dynamic Time Warping.
//
// Fields:
//   - Window: maximum deviation |i-j| allowed (Sakoe–Chiba band).
//     -1 disables the band; values below -1 are rejected with ErrBadInput.
//   - SlopePenalty: non-negative cost added to insertion/deletion steps.
//   - ReturnPath: backtrack and return the optimal warping path.
//     Requires MemoryMode=FullMatrix.
//   - MemoryMode: FullMatrix, TwoRows or NoMemory.
//
// Example:
//
//	opts := dtw.DefaultOptions()
//	opts.Window = 10       // only compare elements within ±10 steps
//	opts.ReturnPath = true // MemoryMode must stay FullMatrix
//
//	dist, path, err := dtw.DTW(seqA, seqB, &opts)
type Options struct {
	Window       int
	SlopePenalty float64
	ReturnPath   bool
	MemoryMode   MemoryMode
}

// DefaultOptions returns an unconstrained, penalty-free, distance-only
// configuration in TwoRows mode.
func DefaultOptions() Options {
	return Options{
		Window:       -1,
		SlopePenalty: 0,
		ReturnPath:   false,
		MemoryMode:   TwoRows,
	}
}

// Coord is one cell (I in a, J in b) of a warping path.
type Coord struct {
	I, J int
}
