// Package humanize converts timestamps and durations to and from short
// English phrases: "3 hours ago", "1 hour, 30 minutes", "Last Friday",
// "January 15–22, 2024".
//
// Every function is pure. Nothing here reads the clock, the environment or
// the host locale, so the same input always produces the same output.
package humanize

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

type instantKind uint8

const (
	kindNone instantKind = iota
	kindUnix
	kindISO
	kindTime
)

// Instant is a point in time in one of the accepted encodings: epoch
// seconds, ISO-8601 text or a [time.Time]. The zero Instant is "absent".
type Instant struct {
	kind instantKind
	sec  float64
	text string
	t    time.Time
}

// Unix returns an Instant for sec seconds since the Unix epoch.
func Unix(sec float64) Instant { return Instant{kind: kindUnix, sec: sec} }

// ISO returns an Instant for ISO-8601 text. The text is validated lazily,
// by [Instant.Seconds].
func ISO(s string) Instant { return Instant{kind: kindISO, text: s} }

// Time returns an Instant for t.
func Time(t time.Time) Instant { return Instant{kind: kindTime, t: t} }

// ParseInstant reads s as epoch seconds if it is a number and as ISO-8601
// text otherwise.
func ParseInstant(s string) Instant {
	s = strings.TrimSpace(s)
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return Unix(f)
	}
	return ISO(s)
}

// IsZero reports whether i is the absent Instant.
func (i Instant) IsZero() bool { return i.kind == kindNone }

func (i Instant) String() string {
	switch i.kind {
	case kindUnix:
		return strconv.FormatFloat(i.sec, 'f', -1, 64)
	case kindISO:
		return i.text
	case kindTime:
		return i.t.Format(time.RFC3339Nano)
	default:
		return "<none>"
	}
}

// Seconds returns i as canonical epoch seconds.
func (i Instant) Seconds() (float64, error) {
	switch i.kind {
	case kindUnix:
		if math.IsNaN(i.sec) || math.IsInf(i.sec, 0) {
			return 0, fmt.Errorf("%w: %v is not finite", ErrInvalidTimestamp, i.sec)
		}
		return i.sec, nil
	case kindISO:
		t, err := parseISO(i.text)
		if err != nil {
			return 0, err
		}
		return timeSeconds(t), nil
	case kindTime:
		return timeSeconds(i.t), nil
	default:
		return 0, fmt.Errorf("%w: no timestamp given", ErrInvalidTimestamp)
	}
}

// Normalize converts an untyped timestamp to epoch seconds. It accepts Go
// integer and float values, strings, [time.Time] and [Instant].
func Normalize(v any) (float64, error) {
	switch x := v.(type) {
	case Instant:
		return x.Seconds()
	case int:
		return float64(x), nil
	case int8:
		return float64(x), nil
	case int16:
		return float64(x), nil
	case int32:
		return float64(x), nil
	case int64:
		return float64(x), nil
	case uint:
		return float64(x), nil
	case uint8:
		return float64(x), nil
	case uint16:
		return float64(x), nil
	case uint32:
		return float64(x), nil
	case uint64:
		return float64(x), nil
	case float32:
		return Unix(float64(x)).Seconds()
	case float64:
		return Unix(x).Seconds()
	case string:
		return ISO(x).Seconds()
	case time.Time:
		return timeSeconds(x), nil
	case *time.Time:
		if x == nil {
			return 0, fmt.Errorf("%w: nil time", ErrInvalidTimestamp)
		}
		return timeSeconds(*x), nil
	default:
		return 0, fmt.Errorf("%w: unsupported type %T", ErrInvalidTimestamp, v)
	}
}

// resolve normalizes i, falling back to def when i is absent.
func resolve(i Instant, def float64) (float64, error) {
	if i.IsZero() {
		return def, nil
	}
	return i.Seconds()
}

// isoLayouts covers extended and basic ISO-8601 dates, times down to hour
// precision, and offsets as Z, +hh:mm, +hhmm or +hh. Fractional seconds are
// accepted after the seconds field by time.Parse even though no layout
// spells them out.
var isoLayouts = buildISOLayouts()

func buildISOLayouts() []string {
	dates := []string{"2006-01-02", "20060102"}
	clocks := []string{"T15:04:05", "T15:04", "T150405", "T1504", "T15"}
	zones := []string{"Z07:00", "Z0700", "Z07", ""}

	var layouts []string
	for _, d := range dates {
		for _, c := range clocks {
			for _, z := range zones {
				layouts = append(layouts, d+c+z)
			}
		}
		layouts = append(layouts, d)
	}
	return layouts
}

// parseISO parses ISO-8601 text. Text without an offset is read as UTC.
func parseISO(s string) (time.Time, error) {
	v := strings.TrimSpace(s)
	if len(v) > 10 && v[10] == ' ' {
		v = v[:10] + "T" + v[11:]
	}
	for _, layout := range isoLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidTimestamp, s)
}

func timeSeconds(t time.Time) float64 {
	return float64(t.Unix()) + float64(t.Nanosecond())/1e9
}
