// Package projection computes when active work started at a given instant
// finishes, walking the business calendar forward across lunch breaks, day
// boundaries and non-working days.
package projection

import (
	"errors"
	"fmt"
	"time"

	"github.com/brightshine-detailing/scheduler-service/internal/domain"
	"github.com/brightshine-detailing/scheduler-service/internal/scheduling/calendar"
)

var (
	// ErrNegativeDuration is returned for a negative work duration
	ErrNegativeDuration = errors.New("projection: work duration must not be negative")

	// ErrNoWorkingTime is returned when the forward walk finds no working
	// period within the safety horizon. With validated settings this only
	// happens for an empty working-days set.
	ErrNoWorkingTime = errors.New("projection: no working time reachable from start")
)

// maxScanDays bounds the forward walk so a misconfigured calendar surfaces
// as an error instead of an unbounded loop.
const maxScanDays = 2 * 366

// CalculateWorkEndTime returns the instant active work completes when
// workMinutes of work begin at start.
//
// The walk greedily consumes working periods in chronological order: the
// remainder of the period containing start first, then each following period,
// rolling over lunch breaks, day ends and non-working days. A start that
// falls outside any working period is not rejected; consumption simply
// begins at the next period. A zero duration returns start unchanged.
func CalculateWorkEndTime(start time.Time, workMinutes int, settings domain.BusinessSettings) (time.Time, error) {
	if workMinutes < 0 {
		return time.Time{}, fmt.Errorf("%w: %d", ErrNegativeDuration, workMinutes)
	}
	if workMinutes == 0 {
		return start, nil
	}
	if err := settings.Validate(); err != nil {
		return time.Time{}, err
	}

	remaining := workMinutes
	cursor := start.Truncate(time.Minute)

	for day := 0; day < maxScanDays; day++ {
		for _, period := range calendar.WorkingPeriods(cursor, settings) {
			if !cursor.Before(period.End) {
				continue
			}

			effectiveStart := cursor
			if effectiveStart.Before(period.Start) {
				effectiveStart = period.Start
			}

			available := int(period.End.Sub(effectiveStart) / time.Minute)
			if available <= 0 {
				continue
			}

			if remaining <= available {
				return effectiveStart.Add(time.Duration(remaining) * time.Minute), nil
			}

			remaining -= available
			cursor = period.End
		}

		// Day exhausted: move to midnight of the next calendar day. Periods
		// of non-working days are empty, so the loop advances day by day
		// until the next working day.
		year, month, dayOfMonth := cursor.Date()
		cursor = time.Date(year, month, dayOfMonth+1, 0, 0, 0, 0, cursor.Location())
	}

	return time.Time{}, ErrNoWorkingTime
}
