package humanize

import (
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDuration(t *testing.T) {
	tests := []struct {
		seconds float64
		opts    DurationOptions
		want    string
	}{
		{0, DurationOptions{}, "0 seconds"},
		{1, DurationOptions{}, "1 second"},
		{45, DurationOptions{}, "45 seconds"},
		{60, DurationOptions{}, "1 minute"},
		{90, DurationOptions{}, "1 minute, 30 seconds"},
		{120, DurationOptions{}, "2 minutes"},
		{3599, DurationOptions{}, "59 minutes, 59 seconds"},
		{3600, DurationOptions{}, "1 hour"},
		{3661, DurationOptions{}, "1 hour, 1 minute"},
		{5400, DurationOptions{}, "1 hour, 30 minutes"},
		{9000, DurationOptions{}, "2 hours, 30 minutes"},
		{86400, DurationOptions{}, "1 day"},
		{93600, DurationOptions{}, "1 day, 2 hours"},
		{604800, DurationOptions{}, "7 days"},
		{2592000, DurationOptions{}, "1 month"},
		{31536000, DurationOptions{}, "1 year"},
		{36720000, DurationOptions{}, "1 year, 2 months"},

		{0, DurationOptions{Compact: true}, "0s"},
		{45, DurationOptions{Compact: true}, "45s"},
		{3660, DurationOptions{Compact: true}, "1h 1m"},
		{9000, DurationOptions{Compact: true}, "2h 30m"},
		{93600, DurationOptions{Compact: true}, "1d 2h"},
		{36720000, DurationOptions{Compact: true}, "1y 2mo"},

		{3661, DurationOptions{MaxUnits: 1}, "1 hour"},
		{93600, DurationOptions{MaxUnits: 1}, "1 day"},
		{93661, DurationOptions{MaxUnits: 3}, "1 day, 2 hours, 1 minute"},
		{9000, DurationOptions{Compact: true, MaxUnits: 1}, "3h"},
		{93661, DurationOptions{Compact: true, MaxUnits: 6}, "1d 2h 1m 1s"},

		{1e300, DurationOptions{MaxUnits: 1}, wholeCount(1e300, year) + " years"},
		{1e300, DurationOptions{Compact: true, MaxUnits: 1}, wholeCount(1e300, year) + "y"},
		{math.MaxFloat64, DurationOptions{MaxUnits: 1}, wholeCount(math.MaxFloat64, year) + " years"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			got, err := Duration(tt.seconds, tt.opts)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// wholeCount prints how many whole units fit in seconds, past the int64 range.
func wholeCount(seconds, unit float64) string {
	return strconv.FormatFloat(math.Floor(seconds/unit), 'f', 0, 64)
}

func TestDuration_HugeCountsStayPositive(t *testing.T) {
	got, err := Duration(1e300, DurationOptions{})
	require.NoError(t, err)
	assert.NotContains(t, got, "-")
	assert.Regexp(t, `^[1-9][0-9]{292} years, [0-9]+ months?$`, got)
}

func TestDuration_Rounding(t *testing.T) {
	t.Run("rounds last unit up at half", func(t *testing.T) {
		// 1h 29m 30s: 29m is the last term, 30s remains
		got, err := Duration(5370, DurationOptions{})
		require.NoError(t, err)
		assert.Equal(t, "1 hour, 30 minutes", got)
	})

	t.Run("keeps last unit below half", func(t *testing.T) {
		got, err := Duration(5369, DurationOptions{})
		require.NoError(t, err)
		assert.Equal(t, "1 hour, 29 minutes", got)
	})

	t.Run("uses only the remainder inside the current unit", func(t *testing.T) {
		// 59m 40s at one unit: the 40s remainder rounds minutes, not hours
		got, err := Duration(59*60+40, DurationOptions{MaxUnits: 1})
		require.NoError(t, err)
		assert.Equal(t, "60 minutes", got)
	})

	t.Run("singular becomes plural after rounding", func(t *testing.T) {
		got, err := Duration(90, DurationOptions{MaxUnits: 1})
		require.NoError(t, err)
		assert.Equal(t, "2 minutes", got)
	})
}

func TestDuration_SkipsZeroUnits(t *testing.T) {
	got, err := Duration(86401, DurationOptions{})
	require.NoError(t, err)
	assert.Equal(t, "1 day, 1 second", got)
	assert.NotContains(t, got, "0 ")
}

func TestDuration_HourBoundary(t *testing.T) {
	got, err := Duration(3599, DurationOptions{})
	require.NoError(t, err)
	assert.NotContains(t, got, "hour")

	got, err = Duration(3600, DurationOptions{})
	require.NoError(t, err)
	assert.Equal(t, "1 hour", got)
}

func TestDuration_SubSecond(t *testing.T) {
	got, err := Duration(0.4, DurationOptions{})
	require.NoError(t, err)
	assert.Equal(t, "0 seconds", got)

	got, err = Duration(1.9, DurationOptions{Compact: true})
	require.NoError(t, err)
	assert.Equal(t, "1s", got)
}

func TestDuration_Errors(t *testing.T) {
	for _, sec := range []float64{-1, -0.5, math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := Duration(sec, DurationOptions{})
		assert.ErrorIs(t, err, ErrInvalidDuration, "seconds=%v", sec)
	}

	_, err := Duration(60, DurationOptions{MaxUnits: -1})
	assert.ErrorIs(t, err, ErrInvalidDuration)
}
