// Package calendar answers, for any calendar date, whether the shop works
// that day and which sub-intervals of the day are open for active work.
package calendar

import (
	"time"

	"github.com/brightshine-detailing/scheduler-service/internal/domain"
)

// Period is a contiguous interval within a single calendar day during which
// active work may occur. Start is inclusive, End exclusive.
type Period struct {
	Start time.Time
	End   time.Time
}

// Minutes returns the length of the period in whole minutes.
func (p Period) Minutes() int {
	return int(p.End.Sub(p.Start) / time.Minute)
}

// Contains reports whether t falls inside the half-open period [Start, End).
func (p Period) Contains(t time.Time) bool {
	return !t.Before(p.Start) && t.Before(p.End)
}

// IsWorkingDay reports whether the date's weekday is a working day.
func IsWorkingDay(date time.Time, settings domain.BusinessSettings) bool {
	return settings.IsWorkingDay(date.Weekday())
}

// WorkingPeriods returns the working periods of the given date in
// chronological order: none on a non-working day, a single full-day period
// when no lunch break is configured, or the morning and afternoon periods
// when the day is split by lunch. All instants are anchored to the date at
// the configured wall-clock times, seconds truncated to zero.
func WorkingPeriods(date time.Time, settings domain.BusinessSettings) []Period {
	if !IsWorkingDay(date, settings) {
		return nil
	}

	hours := settings.WorkingHours

	if !hours.HasLunchBreak() {
		return []Period{{
			Start: hours.Start.At(date),
			End:   hours.End.At(date),
		}}
	}

	return []Period{
		{Start: hours.Start.At(date), End: hours.LunchStart.At(date)},
		{Start: hours.LunchEnd.At(date), End: hours.End.At(date)},
	}
}
