package humanize

import (
	"fmt"
	"math"
	"strconv"
	"time"
	_ "time/tzdata"
)

var weekdayNames = [...]string{
	"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
}

var monthNames = [...]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// civil is a calendar date with the time of day dropped.
type civil struct {
	year  int
	month time.Month
	day   int
	wd    time.Weekday
}

func (c civil) days() int64 {
	return time.Date(c.year, c.month, c.day, 0, 0, 0, 0, time.UTC).Unix() / day
}

func (c civil) monthDay() string {
	return monthNames[c.month-1] + " " + strconv.Itoa(c.day)
}

func (c civil) full() string {
	return c.monthDay() + ", " + strconv.Itoa(c.year)
}

// HumanDate labels the calendar day of ts relative to ref's day: "Today",
// "Yesterday", "Last Friday", "This Sunday", "March 5" or
// "January 1, 2023". An absent ref defaults to ts. tz is an IANA zone
// name, empty for UTC.
func HumanDate(ts, ref Instant, tz string) (string, error) {
	t, err := ts.Seconds()
	if err != nil {
		return "", err
	}
	r, err := resolve(ref, t)
	if err != nil {
		return "", err
	}
	loc, err := loadZone(tz)
	if err != nil {
		return "", err
	}

	date, err := civilDate(t, loc)
	if err != nil {
		return "", err
	}
	refDate, err := civilDate(r, loc)
	if err != nil {
		return "", err
	}

	switch diff := date.days() - refDate.days(); {
	case diff == 0:
		return "Today", nil
	case diff == -1:
		return "Yesterday", nil
	case diff == 1:
		return "Tomorrow", nil
	case diff >= -6 && diff <= -2:
		return "Last " + weekdayNames[date.wd], nil
	case diff >= 2 && diff <= 6:
		return "This " + weekdayNames[date.wd], nil
	case date.year == refDate.year:
		return date.monthDay(), nil
	default:
		return date.full(), nil
	}
}

// DateRange formats the span between two instants, collapsing shared
// month and year: "January 15–22, 2024". Reversed inputs are swapped.
func DateRange(start, end Instant, tz string) (string, error) {
	s, err := start.Seconds()
	if err != nil {
		return "", err
	}
	e, err := end.Seconds()
	if err != nil {
		return "", err
	}
	if s > e {
		s, e = e, s
	}
	loc, err := loadZone(tz)
	if err != nil {
		return "", err
	}

	from, err := civilDate(s, loc)
	if err != nil {
		return "", err
	}
	to, err := civilDate(e, loc)
	if err != nil {
		return "", err
	}

	switch {
	case from.year == to.year && from.month == to.month && from.day == to.day:
		return from.full(), nil
	case from.year == to.year && from.month == to.month:
		return fmt.Sprintf("%s–%d, %d", from.monthDay(), to.day, to.year), nil
	case from.year == to.year:
		return fmt.Sprintf("%s – %s", from.monthDay(), to.full()), nil
	default:
		return fmt.Sprintf("%s – %s", from.full(), to.full()), nil
	}
}

// loadZone resolves an IANA zone name. "Local" is refused since it would
// depend on the host.
func loadZone(tz string) (*time.Location, error) {
	if tz == "" {
		return time.UTC, nil
	}
	if tz == "Local" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTimezone, tz)
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrInvalidTimezone, tz, err)
	}
	return loc, nil
}

// ValidateTimezone reports whether tz can be used as a zone argument.
func ValidateTimezone(tz string) error {
	_, err := loadZone(tz)
	return err
}

// maxCivilSeconds keeps conversions well inside time.Time's range.
const maxCivilSeconds = 1 << 53

func civilDate(sec float64, loc *time.Location) (civil, error) {
	if math.Abs(sec) > maxCivilSeconds {
		return civil{}, fmt.Errorf("%w: %v is out of range", ErrInvalidTimestamp, sec)
	}
	whole := math.Floor(sec)
	t := time.Unix(int64(whole), int64((sec-whole)*1e9)).In(loc)
	return civil{year: t.Year(), month: t.Month(), day: t.Day(), wd: t.Weekday()}, nil
}
