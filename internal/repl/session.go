// Package repl is an interactive front end to the humanize functions.
package repl

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"olexsmir.xyz/whenwords/humanize"
)

var (
	errExit           = errors.New("exit")
	errUnknownCommand = errors.New("unknown command")
	errUsage          = errors.New("usage")
)

const helpText = `commands:
  ago <ts> [ref]          relative time, ref defaults to now
  duration <seconds>      format seconds
  parse <text>            parse a duration into seconds
  date <ts> [ref]         contextual date label
  range <start> <end>     date range
  tz [zone]               show or set the timezone
  compact [on|off]        show or set compact durations
  units [n]               show or set max duration units
  help                    this text
  exit                    leave`

// Session holds the settings that persist between lines.
type Session struct {
	Timezone string
	Compact  bool
	MaxUnits int
}

// Eval runs one line and returns what should be printed. now is used
// wherever a reference time is omitted.
func (s *Session) Eval(line string, now time.Time) (string, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", nil
	}
	cmd, args := strings.ToLower(fields[0]), fields[1:]

	switch cmd {
	case "help", "?":
		return helpText, nil
	case "exit", "quit":
		return "", errExit
	case "ago":
		if len(args) < 1 || len(args) > 2 {
			return "", fmt.Errorf("%w: ago <ts> [ref]", errUsage)
		}
		return humanize.TimeAgo(humanize.ParseInstant(args[0]), refArg(args, 1, now))
	case "duration":
		if len(args) != 1 {
			return "", fmt.Errorf("%w: duration <seconds>", errUsage)
		}
		secs, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return "", fmt.Errorf("%w: %q is not a number", humanize.ErrInvalidDuration, args[0])
		}
		return humanize.Duration(secs, humanize.DurationOptions{
			Compact:  s.Compact,
			MaxUnits: s.MaxUnits,
		})
	case "parse":
		secs, err := humanize.ParseDuration(strings.Join(args, " "))
		if err != nil {
			return "", err
		}
		return strconv.FormatInt(secs, 10), nil
	case "date":
		if len(args) < 1 || len(args) > 2 {
			return "", fmt.Errorf("%w: date <ts> [ref]", errUsage)
		}
		return humanize.HumanDate(humanize.ParseInstant(args[0]), refArg(args, 1, now), s.Timezone)
	case "range":
		if len(args) != 2 {
			return "", fmt.Errorf("%w: range <start> <end>", errUsage)
		}
		return humanize.DateRange(humanize.ParseInstant(args[0]), humanize.ParseInstant(args[1]), s.Timezone)
	case "tz":
		return s.setTimezone(args)
	case "compact":
		return s.setCompact(args)
	case "units":
		return s.setUnits(args)
	default:
		return "", fmt.Errorf("%w: %s (try help)", errUnknownCommand, cmd)
	}
}

func refArg(args []string, i int, now time.Time) humanize.Instant {
	if len(args) > i {
		return humanize.ParseInstant(args[i])
	}
	return humanize.Time(now)
}

func (s *Session) setTimezone(args []string) (string, error) {
	if len(args) == 1 {
		if err := humanize.ValidateTimezone(args[0]); err != nil {
			return "", err
		}
		s.Timezone = args[0]
	}
	if s.Timezone == "" {
		return "UTC", nil
	}
	return s.Timezone, nil
}

func (s *Session) setCompact(args []string) (string, error) {
	if len(args) == 1 {
		switch strings.ToLower(args[0]) {
		case "on", "true", "1":
			s.Compact = true
		case "off", "false", "0":
			s.Compact = false
		default:
			return "", fmt.Errorf("%w: compact [on|off]", errUsage)
		}
	}
	if s.Compact {
		return "on", nil
	}
	return "off", nil
}

func (s *Session) setUnits(args []string) (string, error) {
	if len(args) == 1 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 1 {
			return "", fmt.Errorf("%w: units <n>, n >= 1", errUsage)
		}
		s.MaxUnits = n
	}
	if s.MaxUnits == 0 {
		return strconv.Itoa(humanize.DefaultMaxUnits), nil
	}
	return strconv.Itoa(s.MaxUnits), nil
}
