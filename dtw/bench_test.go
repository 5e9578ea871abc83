package dtw_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/tsmtype/datasets"
	"github.com/katalvlaran/tsmtype/dtw"
	"github.com/katalvlaran/tsmtype/frame"
)

// chirps returns two deterministic chirps of length n that differ in noise.
func chirps(b *testing.B, n int) (*frame.Series, *frame.Series) {
	b.Helper()
	x, err := datasets.Chirp(n, 1, datasets.WithNoise(0.05))
	if err != nil {
		b.Fatalf("Chirp: %v", err)
	}
	y, err := datasets.Chirp(n, 2, datasets.WithNoise(0.05))
	if err != nil {
		b.Fatalf("Chirp: %v", err)
	}

	return x, y
}

// BenchmarkDTW_ModesByBand sweeps the memory modes across Sakoe–Chiba bands.
// Window -1 is the unconstrained alignment.
func BenchmarkDTW_ModesByBand(b *testing.B) {
	x, y := chirps(b, 400)
	for _, mode := range []dtw.MemoryMode{dtw.FullMatrix, dtw.TwoRows, dtw.NoMemory} {
		for _, window := range []int{-1, 40, 10} {
			opts := dtw.DefaultOptions()
			opts.MemoryMode = mode
			opts.Window = window
			b.Run(fmt.Sprintf("%s/window=%d", mode, window), func(b *testing.B) {
				for i := 0; i < b.N; i++ {
					if _, _, err := dtw.DTW(x.Values, y.Values, &opts); err != nil {
						b.Fatalf("DTW failed: %v", err)
					}
				}
			})
		}
	}
}

// BenchmarkDTW_Path measures backtracking on top of the full matrix.
func BenchmarkDTW_Path(b *testing.B) {
	x, y := chirps(b, 200)
	opts := dtw.DefaultOptions()
	opts.MemoryMode = dtw.FullMatrix
	opts.ReturnPath = true

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := dtw.DTW(x.Values, y.Values, &opts); err != nil {
			b.Fatalf("DTW failed: %v", err)
		}
	}
}

// BenchmarkDistance measures the container path: two mtype checks plus the
// value copy, relative to the raw kernel for each input kind.
func BenchmarkDistance(b *testing.B) {
	x, y := chirps(b, 200)
	inputs := []struct {
		name string
		x, y any
	}{
		{"slice", x.Values, y.Values},
		{"frame.Series", x, y},
		{"frame.Frame", frame.FromSeries(x), frame.FromSeries(y)},
	}
	for _, in := range inputs {
		b.Run(in.name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if _, err := dtw.Distance(in.x, in.y, nil); err != nil {
					b.Fatalf("Distance failed: %v", err)
				}
			}
		})
	}
}
