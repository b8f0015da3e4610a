package humanize

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"
)

var parseUnits = map[string]float64{
	"s": 1, "sec": 1, "secs": 1, "second": 1, "seconds": 1,
	"m": minute, "min": minute, "mins": minute, "minute": minute, "minutes": minute,
	"h": hour, "hr": hour, "hrs": hour, "hour": hour, "hours": hour,
	"d": day, "day": day, "days": day,
	"w": 7 * day, "wk": 7 * day, "wks": 7 * day, "week": 7 * day, "weeks": 7 * day,
}

// ParseDuration parses a human-written duration into whole seconds. It
// understands colon notation ("2:30", "1:30:00") and unit tokens ("2h 30m",
// "2 hours and 30 minutes", "1.5h"). Negative durations are rejected.
func ParseDuration(text string) (int64, error) {
	s := strings.TrimSpace(text)
	if s == "" {
		return 0, fmt.Errorf("%w: empty string", ErrUnparseableDuration)
	}
	// also rejects unit words containing "-"
	if strings.Contains(s, "-") {
		return 0, fmt.Errorf("%w: negative durations are not allowed: %q", ErrUnparseableDuration, text)
	}

	if secs, ok, err := parseColon(s); ok {
		return secs, err
	}

	toks, err := scanTokens(s)
	if err != nil {
		return 0, err
	}
	if len(toks) == 0 {
		return 0, fmt.Errorf("%w: no duration found in %q", ErrUnparseableDuration, text)
	}

	var total float64
	for _, tok := range toks {
		unit, ok := parseUnits[strings.ToLower(tok.unit)]
		if !ok {
			return 0, fmt.Errorf("%w: unknown unit %q", ErrUnparseableDuration, tok.unit)
		}
		total += tok.value * unit
	}

	total = math.Trunc(total)
	if total >= math.MaxInt64 {
		return 0, fmt.Errorf("%w: %q is too large", ErrUnparseableDuration, text)
	}
	return int64(total), nil
}

// parseColon handles H:MM and H:MM:SS. ok is false when s is not in colon
// notation at all.
func parseColon(s string) (secs int64, ok bool, err error) {
	fields := strings.Split(s, ":")
	if len(fields) < 2 || len(fields) > 3 {
		return 0, false, nil
	}
	for _, f := range fields {
		if f == "" || !allDigits(f) {
			return 0, false, nil
		}
	}

	weights := []int64{3600, 60, 1}
	for i, f := range fields {
		n, perr := strconv.ParseInt(f, 10, 64)
		if perr != nil {
			return 0, true, fmt.Errorf("%w: %q: %w", ErrUnparseableDuration, s, perr)
		}
		if n > (math.MaxInt64-secs)/weights[i] {
			return 0, true, fmt.Errorf("%w: %q is too large", ErrUnparseableDuration, s)
		}
		secs += n * weights[i]
	}
	return secs, true, nil
}

type durationToken struct {
	value float64
	unit  string
}

// scanTokens splits s into number+unit tokens. Whitespace, commas and the
// word "and" between tokens are skipped; anything else is an error.
func scanTokens(s string) ([]durationToken, error) {
	var toks []durationToken
	for i := 0; i < len(s); {
		c := s[i]
		switch {
		case isSpace(c) || c == ',':
			i++
		case isDigit(c) || c == '.':
			start := i
			for i < len(s) && (isDigit(s[i]) || s[i] == '.') {
				i++
			}
			num := s[start:i]
			value, err := strconv.ParseFloat(num, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: bad number %q", ErrUnparseableDuration, num)
			}

			for i < len(s) && isSpace(s[i]) {
				i++
			}
			ustart := i
			for i < len(s) && isLetter(s[i]) {
				i++
			}
			if ustart == i {
				return nil, fmt.Errorf("%w: missing unit after %q", ErrUnparseableDuration, num)
			}
			toks = append(toks, durationToken{value: value, unit: s[ustart:i]})
		case isLetter(c):
			start := i
			for i < len(s) && isLetter(s[i]) {
				i++
			}
			if word := s[start:i]; !strings.EqualFold(word, "and") {
				return nil, fmt.Errorf("%w: unexpected word %q", ErrUnparseableDuration, word)
			}
		default:
			r, _ := utf8.DecodeRuneInString(s[i:])
			return nil, fmt.Errorf("%w: unexpected character %q", ErrUnparseableDuration, r)
		}
	}
	return toks, nil
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if !isDigit(s[i]) {
			return false
		}
	}
	return true
}

func isDigit(c byte) bool { return '0' <= c && c <= '9' }
func isLetter(c byte) bool { return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' }
func isSpace(c byte) bool { return c == ' ' || c == '\t' || c == '\n' || c == '\r' }
