package timeutil

import (
	"errors"
	"fmt"
)

// MinutesPerDay bounds every encoded wall-clock value.
const MinutesPerDay = 24 * 60

// ErrInvalidFormat is returned when a value is not a valid "HH:MM" wall-clock time.
var ErrInvalidFormat = errors.New("invalid time format, expected HH:MM")

// EncodeHHMM converts a 24h "HH:MM" string into minutes since midnight.
// Both parts must be exactly two digits; no timezone is applied.
func EncodeHHMM(value string) (int, error) {
	if len(value) != 5 || value[2] != ':' {
		return 0, fmt.Errorf("%w: %q", ErrInvalidFormat, value)
	}

	hour, ok := twoDigits(value[0], value[1])
	if !ok || hour > 23 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidFormat, value)
	}
	minute, ok := twoDigits(value[3], value[4])
	if !ok || minute > 59 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidFormat, value)
	}

	return hour*60 + minute, nil
}

func twoDigits(hi, lo byte) (int, bool) {
	if hi < '0' || hi > '9' || lo < '0' || lo > '9' {
		return 0, false
	}
	return int(hi-'0')*10 + int(lo-'0'), true
}
