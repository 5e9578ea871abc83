package datasets_test

import (
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tsmtype/check"
	"github.com/katalvlaran/tsmtype/datasets"
	"github.com/katalvlaran/tsmtype/frame"
)

func TestAirline(t *testing.T) {
	y, err := datasets.LoadAirline()
	require.NoError(t, err)
	require.Equal(t, 144, y.Len())
	assert.Equal(t, "Number of airline passengers", y.Name)
	assert.Equal(t, frame.PeriodIndex, y.Index.Kind())
	assert.Equal(t, "1949-01", y.Index.Label(0))
	assert.Equal(t, "1960-12", y.Index.Label(143))
	assert.Equal(t, 112.0, y.Values[0])
	assert.Equal(t, 432.0, y.Values[143])
	assert.Equal(t, 622.0, maxOf(y.Values))

	m, err := check.Mtype(y, "Series")
	require.NoError(t, err)
	assert.Equal(t, "frame.Series", m)

	rep, err := check.Check(y, "frame.Series")
	require.NoError(t, err)
	assert.True(t, rep.Metadata.IsEquallySpaced)
}

// TestAirline_FreshCopies ensures callers cannot corrupt the cached data.
func TestAirline_FreshCopies(t *testing.T) {
	a := datasets.Airline()
	a.Values[0] = -1
	b := datasets.Airline()
	assert.Equal(t, 112.0, b.Values[0])
}

func TestPulse(t *testing.T) {
	p, err := datasets.Pulse(16, 1)
	require.NoError(t, err)
	// f0 = 1/8, duty 0.5: four samples on, four off.
	assert.Equal(t, []float64{1, 1, 1, 1, 0, 0, 0, 0, 1, 1, 1, 1, 0, 0, 0, 0}, p.Values)

	tri, err := datasets.Pulse(5, 1, datasets.WithTriangular(), datasets.WithFrequency(0.25), datasets.WithAmplitude(2))
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0, 1, 2, 1, 0}, tri.Values, 1e-12)

	trended, err := datasets.Pulse(3, 1, datasets.WithDuty(0), datasets.WithTrend(0.5))
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0.5, 1}, trended.Values)

	_, err = datasets.Pulse(0, 1)
	assert.ErrorIs(t, err, datasets.ErrTooFewPoints)
}

func TestGenerators_Deterministic(t *testing.T) {
	a, err := datasets.Chirp(64, 42, datasets.WithNoise(0.1))
	require.NoError(t, err)
	b, err := datasets.Chirp(64, 42, datasets.WithNoise(0.1))
	require.NoError(t, err)
	if diff := cmp.Diff(a.Values, b.Values); diff != "" {
		t.Fatalf("same seed differs (-a +b):\n%s", diff)
	}

	c, err := datasets.Chirp(64, 43, datasets.WithNoise(0.1))
	require.NoError(t, err)
	assert.NotEqual(t, a.Values, c.Values)

	// A shared stream advances across calls.
	r := rand.New(rand.NewSource(7))
	p1, err := datasets.Pulse(8, 0, datasets.WithRand(r), datasets.WithNoise(1))
	require.NoError(t, err)
	p2, err := datasets.Pulse(8, 0, datasets.WithRand(r), datasets.WithNoise(1))
	require.NoError(t, err)
	assert.NotEqual(t, p1.Values, p2.Values)
}

func TestChirp_Bounded(t *testing.T) {
	c, err := datasets.Chirp(200, 0, datasets.WithAmplitude(3))
	require.NoError(t, err)
	for i, v := range c.Values {
		assert.LessOrEqual(t, math.Abs(v), 3.0, "i=%d", i)
	}

	one, err := datasets.Chirp(1, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, one.Len())
}

func TestOHLC(t *testing.T) {
	start := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	f, err := datasets.OHLC(30, 9, datasets.WithStart(start), datasets.WithGBM(50, 0, 0.05))
	require.NoError(t, err)
	assert.Equal(t, datasets.OHLCColumns, f.Columns)
	assert.Equal(t, 30, f.Len())
	assert.Equal(t, 50.0, f.Data[0][0])

	first, err := f.Index.Time(0)
	require.NoError(t, err)
	assert.True(t, first.Equal(start))

	open, high, low, closing := f.Data[0], f.Data[1], f.Data[2], f.Data[3]
	for d := range open {
		assert.LessOrEqual(t, low[d], math.Min(open[d], closing[d]), "day %d", d)
		assert.GreaterOrEqual(t, high[d], math.Max(open[d], closing[d]), "day %d", d)
		if d > 0 {
			assert.Equal(t, closing[d-1], open[d], "day %d opens at the previous close", d)
		}
	}

	rep, err := check.Check(f, "frame.Frame")
	require.NoError(t, err)
	require.True(t, rep.Valid, rep.Msg())
	assert.False(t, rep.Metadata.IsUnivariate)
	assert.True(t, rep.Metadata.IsEquallySpaced)

	_, err = datasets.OHLC(0, 1)
	assert.ErrorIs(t, err, datasets.ErrTooFewPoints)
}

func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { datasets.WithAmplitude(0) })
	assert.Panics(t, func() { datasets.WithFrequency(-1) })
	assert.Panics(t, func() { datasets.WithSweepTo(0) })
	assert.Panics(t, func() { datasets.WithDuty(1.5) })
	assert.Panics(t, func() { datasets.WithNoise(-0.1) })
	assert.Panics(t, func() { datasets.WithGBM(0, 0, 0) })
	assert.Panics(t, func() { datasets.WithIntradaySteps(0) })
	assert.Panics(t, func() { datasets.WithRand(nil) })
}

func maxOf(xs []float64) float64 {
	m := math.Inf(-1)
	for _, x := range xs {
		m = math.Max(m, x)
	}
	return m
}
