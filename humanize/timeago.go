package humanize

import (
	"math"
	"strings"
)

const (
	minute = 60
	hour   = 60 * minute
	day    = 24 * hour
	month  = 30 * day
	year   = 365 * day
)

// TimeAgo returns a relative time phrase for ts as seen from ref, e.g.
// "3 hours ago" or "in 2 days". An absent ref defaults to ts.
func TimeAgo(ts, ref Instant) (string, error) {
	t, err := ts.Seconds()
	if err != nil {
		return "", err
	}
	r, err := resolve(ref, t)
	if err != nil {
		return "", err
	}

	diff := r - t
	n, unit := relativeUnit(math.Abs(diff))
	if unit == "" {
		return "just now", nil
	}
	if n == 1 {
		unit = strings.TrimSuffix(unit, "s")
	}

	if diff < 0 {
		return "in " + formatCount(n) + " " + unit, nil
	}
	return formatCount(n) + " " + unit + " ago", nil
}

// relativeUnit buckets d seconds. An empty unit means "just now".
func relativeUnit(d float64) (float64, string) {
	switch {
	case d < 45:
		return 0, ""
	case d < 90:
		return 1, "minute"
	case d < 45*minute:
		return math.Round(d / minute), "minutes"
	case d < 90*minute:
		return 1, "hour"
	case d < 22*hour:
		return math.Round(d / hour), "hours"
	case d < 36*hour:
		return 1, "day"
	case d < 26*day:
		return math.Round(d / day), "days"
	case d < 46*day:
		return 1, "month"
	case d < 320*day:
		return math.Round(d / month), "months"
	case d < 548*day:
		return 1, "year"
	default:
		return math.Round(d / year), "years"
	}
}
