package dtw_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/tsmtype/dtw"
	"github.com/katalvlaran/tsmtype/frame"
)

// ExampleDTW_Medium aligns two sequences that differ by one repeated sample.
//
// Options:
//   - Window = -1          (unconstrained)
//   - ReturnPath = true    (retrieve alignment path)
//   - MemoryMode = FullMatrix (O(N·M) mem)
func ExampleDTW_medium() {
	a := []float64{1, 3, 4, 9, 8}
	b := []float64{1, 3, 3, 4, 9, 8}
	opts := dtw.DefaultOptions()
	opts.ReturnPath = true
	opts.MemoryMode = dtw.FullMatrix

	dist, path, err := dtw.DTW(a, b, &opts)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("distance=%.0f\npath=%v\n", dist, path)
	// Output:
	// distance=0
	// path=[{0 0} {1 1} {1 2} {2 3} {3 4} {4 5}]
}

// ExampleDTW_WindowOnly shows strict diagonal alignment forcing infinite distance.
//
// Effect:
//
//	Window = 0 forbids every off-diagonal cell, so sequences of different
//	lengths can never be aligned.
func ExampleDTW_windowOnly() {
	a := []float64{2, 3, 4}
	b := []float64{2, 3, 4, 5}
	opts := dtw.DefaultOptions()
	opts.Window = 0

	dist, _, _ := dtw.DTW(a, b, &opts)
	if math.IsInf(dist, 1) {
		fmt.Println("distance=+Inf")
	}
	// Output:
	// distance=+Inf
}

// ExampleDTW_Special charges a penalty for a missing measurement.
//
// Use case:
//
//	Sensor data alignment where a single missing measurement incurs a penalty.
func ExampleDTW_special() {
	a := []float64{10, 11, 12, 13, 14}
	b := []float64{10, 11, 13, 14}
	opts := dtw.DefaultOptions()
	opts.Window = 1
	opts.SlopePenalty = 1.0
	opts.MemoryMode = dtw.NoMemory

	dist, _, _ := dtw.DTW(a, b, &opts)
	fmt.Printf("distance=%.0f\n", dist)
	// Output:
	// distance=2
}

// ExampleDistance compares a Series with a plain slice.
func ExampleDistance() {
	s := frame.NewSeries("a", []float64{0, 1, 2, 1, 0})

	d, err := dtw.Distance(s, []float64{0, 1, 1, 2, 1, 0}, nil)
	fmt.Println(d, err)
	// Output: 0 <nil>
}
