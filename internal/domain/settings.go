package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/brightshine-detailing/scheduler-service/pkg/types"
)

var (
	// ErrNoWorkingDays is returned when the working-days set is empty.
	// An empty set would make forward projection search forever, so it is
	// rejected at configuration load, before any scheduling runs.
	ErrNoWorkingDays = errors.New("domain: working days set is empty")

	// ErrInvalidWorkingHours is returned when the working-hours window is
	// malformed or the lunch break does not fit inside it
	ErrInvalidWorkingHours = errors.New("domain: invalid working hours")
)

// WorkingHours defines the daily working window, optionally split by a
// lunch break. Either both lunch fields are set or neither.
type WorkingHours struct {
	Start      types.TimeString
	End        types.TimeString
	LunchStart types.TimeString
	LunchEnd   types.TimeString
}

// HasLunchBreak reports whether the day is split by a lunch break.
func (h WorkingHours) HasLunchBreak() bool {
	return !h.LunchStart.IsZero() && !h.LunchEnd.IsZero()
}

// BusinessSettings is the immutable scheduling configuration, threaded
// explicitly through every scheduling call rather than read from a global.
type BusinessSettings struct {
	WorkingHours WorkingHours

	// WorkingDays is the set of weekdays on which active work may occur.
	WorkingDays map[time.Weekday]bool

	// AdvanceBookingDays caps how far in the future a slot search looks.
	AdvanceBookingDays int

	// SameDayBooking allows offering slots on the current date, rounded up
	// to the next slot boundary. The source application disagreed with
	// itself on this rule across revisions, so it is configurable here.
	SameDayBooking bool
}

// DefaultBusinessSettings returns the documented shop defaults:
// 08:00-18:00, lunch 12:00-13:00, Monday-Saturday, 30-day horizon.
func DefaultBusinessSettings() BusinessSettings {
	return BusinessSettings{
		WorkingHours: WorkingHours{
			Start:      "08:00",
			End:        "18:00",
			LunchStart: "12:00",
			LunchEnd:   "13:00",
		},
		WorkingDays: map[time.Weekday]bool{
			time.Monday:    true,
			time.Tuesday:   true,
			time.Wednesday: true,
			time.Thursday:  true,
			time.Friday:    true,
			time.Saturday:  true,
		},
		AdvanceBookingDays: DefaultAdvanceBookingDays,
		SameDayBooking:     true,
	}
}

// Validate checks the settings invariants: well-formed times,
// start < lunchStart < lunchEnd < end when lunch is configured,
// start < end always, and a non-empty working-days set.
func (s BusinessSettings) Validate() error {
	h := s.WorkingHours

	for _, ts := range []types.TimeString{h.Start, h.End} {
		if err := ts.Validate(); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidWorkingHours, err)
		}
	}

	if !h.Start.IsBefore(h.End) {
		return fmt.Errorf("%w: start %s must be before end %s", ErrInvalidWorkingHours, h.Start, h.End)
	}

	if h.LunchStart.IsZero() != h.LunchEnd.IsZero() {
		return fmt.Errorf("%w: lunch start and end must be set together", ErrInvalidWorkingHours)
	}

	if h.HasLunchBreak() {
		for _, ts := range []types.TimeString{h.LunchStart, h.LunchEnd} {
			if err := ts.Validate(); err != nil {
				return fmt.Errorf("%w: %v", ErrInvalidWorkingHours, err)
			}
		}
		if !h.Start.IsBefore(h.LunchStart) || !h.LunchStart.IsBefore(h.LunchEnd) || !h.LunchEnd.IsBefore(h.End) {
			return fmt.Errorf("%w: lunch break %s-%s must fall strictly inside %s-%s",
				ErrInvalidWorkingHours, h.LunchStart, h.LunchEnd, h.Start, h.End)
		}
	}

	if len(s.WorkingDays) == 0 {
		return ErrNoWorkingDays
	}
	hasWorkingDay := false
	for _, working := range s.WorkingDays {
		if working {
			hasWorkingDay = true
			break
		}
	}
	if !hasWorkingDay {
		return ErrNoWorkingDays
	}

	if s.AdvanceBookingDays < MinAdvanceBookingDays || s.AdvanceBookingDays > MaxAdvanceBookingDays {
		return fmt.Errorf("%w: advance booking days must be between %d and %d",
			ErrInvalidWorkingHours, MinAdvanceBookingDays, MaxAdvanceBookingDays)
	}

	return nil
}

// IsWorkingDay reports whether the given weekday is in the working set.
func (s BusinessSettings) IsWorkingDay(day time.Weekday) bool {
	return s.WorkingDays[day]
}
