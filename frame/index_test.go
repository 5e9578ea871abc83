package frame_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tsmtype/frame"
)

// TestIndex_Monotonic covers strict ordering for every index kind.
func TestIndex_Monotonic(t *testing.T) {
	t0 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	cases := []struct {
		name string
		ix   frame.Index
		want bool
	}{
		{"empty range", frame.NewRangeIndex(0), true},
		{"range", frame.NewRangeIndex(5), true},
		{"int increasing", frame.NewIntIndex([]int64{1, 3, 9}), true},
		{"int duplicate", frame.NewIntIndex([]int64{1, 3, 3}), false},
		{"int decreasing", frame.NewIntIndex([]int64{5, 4}), false},
		{"monthly", frame.NewMonthlyIndex(1949, time.January, 24), true},
		{"time", frame.NewTimeIndex([]time.Time{t0, t0.Add(time.Hour)}), true},
		{"time reversed", frame.NewTimeIndex([]time.Time{t0.Add(time.Hour), t0}), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.ix.IsMonotonic())
		})
	}
}

// TestIndex_EquallySpaced checks constant-step detection, including monthly
// periods whose wall-clock lengths differ.
func TestIndex_EquallySpaced(t *testing.T) {
	t0 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	assert.True(t, frame.NewRangeIndex(10).IsEquallySpaced())
	assert.True(t, frame.NewIntIndex([]int64{0, 2, 4, 6}).IsEquallySpaced())
	assert.False(t, frame.NewIntIndex([]int64{0, 2, 5}).IsEquallySpaced())
	assert.True(t, frame.NewMonthlyIndex(1949, time.January, 144).IsEquallySpaced())
	assert.True(t, frame.NewIntIndex([]int64{0, 7}).IsEquallySpaced(), "two labels are trivially spaced")

	irregular := frame.NewTimeIndex([]time.Time{t0, t0.Add(time.Hour), t0.Add(3 * time.Hour)})
	assert.False(t, irregular.IsEquallySpaced())
}

// TestIndex_Accessors verifies kind-checked accessors and labels.
func TestIndex_Accessors(t *testing.T) {
	ix := frame.NewMonthlyIndex(1949, time.March, 3)
	assert.Equal(t, frame.PeriodIndex, ix.Kind())
	assert.Equal(t, "1949-05", ix.Label(2))
	assert.Equal(t, "", ix.Label(3))

	ts, err := ix.Time(0)
	require.NoError(t, err)
	assert.Equal(t, time.March, ts.Month())

	_, err = frame.NewRangeIndex(2).Time(0)
	assert.ErrorIs(t, err, frame.ErrIndexKind)

	_, err = ix.Int(5)
	assert.ErrorIs(t, err, frame.ErrOutOfRange)

	sub, err := frame.NewIntIndex([]int64{10, 20, 30}).Slice(1, 3)
	require.NoError(t, err)
	assert.True(t, sub.Equal(frame.NewIntIndex([]int64{20, 30})))
	assert.Equal(t, "IntIndex(len=2)", sub.String())
}
