package humanize

import "errors"

var (
	ErrInvalidTimestamp    = errors.New("invalid timestamp")
	ErrInvalidTimezone     = errors.New("invalid timezone")
	ErrInvalidDuration     = errors.New("invalid duration")
	ErrUnparseableDuration = errors.New("unparseable duration")
)
