package types

import (
	"errors"
	"fmt"
	"time"
)

// TimeFormat layout for wall-clock times ("HH:MM", 24h).
const TimeFormat = "15:04"

var (
	// ErrInvalidTimeFormat is returned when a string is not a valid HH:MM time
	ErrInvalidTimeFormat = errors.New("types: invalid time format, expected HH:MM")

	// ErrTimeOutOfRange is returned when an arithmetic result leaves the 00:00-23:59 range
	ErrTimeOutOfRange = errors.New("types: time out of range")
)

// TimeString is a wall-clock time of day without a date, stored as "HH:MM".
// The zero value is the empty string and reports IsZero.
type TimeString string

// NewTimeString extracts the wall-clock time from t, truncating seconds.
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(TimeFormat))
}

// NewTimeStringFromString parses and validates an "HH:MM" string.
func NewTimeStringFromString(s string) (TimeString, error) {
	ts := TimeString(s)
	if err := ts.Validate(); err != nil {
		return "", err
	}
	return ts, nil
}

// String returns the "HH:MM" representation.
func (t TimeString) String() string {
	return string(t)
}

// IsZero reports whether the value is unset.
func (t TimeString) IsZero() bool {
	return t == ""
}

// Validate checks that the value is a well-formed HH:MM time.
func (t TimeString) Validate() error {
	if _, _, err := t.parse(); err != nil {
		return err
	}
	return nil
}

// Clock returns the hour and minute components.
// The value must be valid; invalid values return 0, 0.
func (t TimeString) Clock() (hour, minute int) {
	h, m, err := t.parse()
	if err != nil {
		return 0, 0
	}
	return h, m
}

// MinutesFromMidnight returns the value as minutes since 00:00.
func (t TimeString) MinutesFromMidnight() int {
	h, m := t.Clock()
	return h*60 + m
}

// At anchors the wall-clock time to the given calendar date in the date's
// location, with seconds and nanoseconds truncated to zero.
func (t TimeString) At(date time.Time) time.Time {
	h, m := t.Clock()
	return time.Date(date.Year(), date.Month(), date.Day(), h, m, 0, 0, date.Location())
}

// AddMinutes returns the time shifted forward by the given number of minutes.
// Returns ErrTimeOutOfRange if the result would cross midnight.
func (t TimeString) AddMinutes(minutes int) (TimeString, error) {
	h, m, err := t.parse()
	if err != nil {
		return "", err
	}

	total := h*60 + m + minutes
	if total < 0 || total >= 24*60 {
		return "", fmt.Errorf("%w: %s + %d minutes", ErrTimeOutOfRange, t, minutes)
	}

	return TimeString(fmt.Sprintf("%02d:%02d", total/60, total%60)), nil
}

// IsBefore reports whether t is strictly earlier in the day than other.
func (t TimeString) IsBefore(other TimeString) bool {
	return t.MinutesFromMidnight() < other.MinutesFromMidnight()
}

// IsAfter reports whether t is strictly later in the day than other.
func (t TimeString) IsAfter(other TimeString) bool {
	return t.MinutesFromMidnight() > other.MinutesFromMidnight()
}

func (t TimeString) parse() (hour, minute int, err error) {
	parsed, err := time.Parse(TimeFormat, string(t))
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, string(t))
	}
	return parsed.Hour(), parsed.Minute(), nil
}
