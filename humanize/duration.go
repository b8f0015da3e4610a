package humanize

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// DefaultMaxUnits is used when DurationOptions.MaxUnits is zero.
const DefaultMaxUnits = 2

// DurationOptions controls Duration output.
type DurationOptions struct {
	// Compact selects "1h 30m" over "1 hour, 30 minutes".
	Compact bool
	// MaxUnits caps the number of unit terms. Zero means DefaultMaxUnits.
	MaxUnits int
}

func (o DurationOptions) maxUnits() (int, error) {
	switch {
	case o.MaxUnits == 0:
		return DefaultMaxUnits, nil
	case o.MaxUnits < 0:
		return 0, fmt.Errorf("%w: max units must be at least 1, got %d", ErrInvalidDuration, o.MaxUnits)
	default:
		return o.MaxUnits, nil
	}
}

type durationUnit struct {
	name    string
	abbr    string
	seconds float64
}

var durationUnits = []durationUnit{
	{"year", "y", year},
	{"month", "mo", month},
	{"day", "d", day},
	{"hour", "h", hour},
	{"minute", "m", minute},
	{"second", "s", 1},
}

func (u durationUnit) format(count float64, compact bool) string {
	if compact {
		return formatCount(count) + u.abbr
	}
	if count == 1 {
		return "1 " + u.name
	}
	return formatCount(count) + " " + u.name + "s"
}

// formatCount prints a whole-number count. Counts stay float64 since
// finite inputs can exceed the int64 range.
func formatCount(n float64) string { return strconv.FormatFloat(n, 'f', 0, 64) }

// Duration formats seconds as "1 hour, 30 minutes" or, compact, "1h 30m".
func Duration(seconds float64, opts DurationOptions) (string, error) {
	if seconds < 0 || math.IsNaN(seconds) || math.IsInf(seconds, 0) {
		return "", fmt.Errorf("%w: %v must be non-negative and finite", ErrInvalidDuration, seconds)
	}
	maxUnits, err := opts.maxUnits()
	if err != nil {
		return "", err
	}

	var parts []string
	remaining := seconds
	for _, u := range durationUnits {
		if remaining < u.seconds {
			continue
		}

		count := math.Floor(remaining / u.seconds)
		remaining = math.Mod(remaining, u.seconds)
		parts = append(parts, u.format(count, opts.Compact))

		if len(parts) >= maxUnits {
			// only the remainder inside this unit decides the rounding
			if remaining >= u.seconds/2 {
				parts[len(parts)-1] = u.format(count+1, opts.Compact)
			}
			break
		}
	}

	if len(parts) == 0 {
		return zeroDuration(opts.Compact), nil
	}
	if opts.Compact {
		return strings.Join(parts, " "), nil
	}
	return strings.Join(parts, ", "), nil
}

func zeroDuration(compact bool) string {
	if compact {
		return "0s"
	}
	return "0 seconds"
}
