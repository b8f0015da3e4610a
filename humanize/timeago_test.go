package humanize

import (
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeAgo(t *testing.T) {
	const ref = 1704067200
	tests := []struct {
		name string
		ago  float64
		want string
	}{
		{"identical", 0, "just now"},
		{"30 seconds", 30, "just now"},
		{"44 seconds", 44, "just now"},
		{"45 seconds", 45, "1 minute ago"},
		{"89 seconds", 89, "1 minute ago"},
		{"90 seconds", 90, "2 minutes ago"},
		{"30 minutes", 30 * minute, "30 minutes ago"},
		{"44 minutes", 44 * minute, "44 minutes ago"},
		{"45 minutes", 45 * minute, "1 hour ago"},
		{"89 minutes", 89 * minute, "1 hour ago"},
		{"90 minutes", 90 * minute, "2 hours ago"},
		{"5 hours", 5 * hour, "5 hours ago"},
		{"21 hours", 21 * hour, "21 hours ago"},
		{"22 hours", 22 * hour, "1 day ago"},
		{"35 hours", 35 * hour, "1 day ago"},
		{"36 hours", 36 * hour, "2 days ago"},
		{"7 days", 7 * day, "7 days ago"},
		{"25 days", 25 * day, "25 days ago"},
		{"26 days", 26 * day, "1 month ago"},
		{"45 days", 45 * day, "1 month ago"},
		{"46 days", 46 * day, "2 months ago"},
		{"180 days", 180 * day, "6 months ago"},
		{"319 days", 319 * day, "11 months ago"},
		{"320 days", 320 * day, "1 year ago"},
		{"547 days", 547 * day, "1 year ago"},
		{"548 days", 548 * day, "2 years ago"},
		{"5 years", 5 * year, "5 years ago"},
		{"future 30 seconds", -30, "just now"},
		{"future 1 minute", -60, "in 1 minute"},
		{"future 5 minutes", -5 * minute, "in 5 minutes"},
		{"future 1 hour", -hour, "in 1 hour"},
		{"future 3 hours", -3 * hour, "in 3 hours"},
		{"future 1 day", -day, "in 1 day"},
		{"future 2 days", -2 * day, "in 2 days"},
		{"future 1 month", -30 * day, "in 1 month"},
		{"future 1 year", -year, "in 1 year"},
		{"beyond int64 years", 1e300, roundedCount(1e300, year) + " years ago"},
		{"future beyond int64 years", -1e300, "in " + roundedCount(1e300, year) + " years"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := TimeAgo(Unix(ref-tt.ago), Unix(ref))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func roundedCount(seconds, unit float64) string {
	return strconv.FormatFloat(math.Round(seconds/unit), 'f', 0, 64)
}

func TestTimeAgo_RoundsHalfAwayFromZero(t *testing.T) {
	// 2.5 minutes
	got, err := TimeAgo(Unix(0), Unix(150))
	require.NoError(t, err)
	assert.Equal(t, "3 minutes ago", got)

	got, err = TimeAgo(Unix(150), Unix(0))
	require.NoError(t, err)
	assert.Equal(t, "in 3 minutes", got)
}

func TestTimeAgo_DefaultReference(t *testing.T) {
	for _, ts := range []Instant{
		Unix(0),
		Unix(1704067200.75),
		ISO("2024-01-15T10:30:00Z"),
	} {
		got, err := TimeAgo(ts, Instant{})
		require.NoError(t, err)
		assert.Equal(t, "just now", got)
	}
}

func TestTimeAgo_Literals(t *testing.T) {
	got, err := TimeAgo(Unix(1704067170), Unix(1704067200))
	require.NoError(t, err)
	assert.Equal(t, "just now", got)

	got, err = TimeAgo(Unix(1704067110), Unix(1704067200))
	require.NoError(t, err)
	assert.Equal(t, "2 minutes ago", got)

	got, err = TimeAgo(ISO("2024-01-01T00:00:00Z"), ISO("2024-01-01T05:00:00+00:00"))
	require.NoError(t, err)
	assert.Equal(t, "5 hours ago", got)
}

func TestTimeAgo_InvalidTimestamp(t *testing.T) {
	_, err := TimeAgo(ISO("yesterday"), Instant{})
	assert.ErrorIs(t, err, ErrInvalidTimestamp)

	_, err = TimeAgo(Unix(0), ISO("not a date"))
	assert.ErrorIs(t, err, ErrInvalidTimestamp)
}
