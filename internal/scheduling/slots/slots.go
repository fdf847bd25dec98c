// Package slots enumerates schedulable start instants across a date range,
// probing each working period at a fixed step and testing every candidate
// through the conflict detector.
package slots

import (
	"time"

	"github.com/brightshine-detailing/scheduler-service/internal/domain"
	"github.com/brightshine-detailing/scheduler-service/internal/scheduling/calendar"
	"github.com/brightshine-detailing/scheduler-service/internal/scheduling/conflict"
	"github.com/brightshine-detailing/scheduler-service/pkg/types"
)

// StepMinutes is the probe granularity within a working period.
const StepMinutes = domain.DefaultSlotStepMinutes

// FindAvailableSlots returns every schedulable slot between rangeStart and
// rangeEnd inclusive, in chronological order.
//
// Candidates are probed every StepMinutes from each working period's start.
// When probing the current date, candidates are advanced to the next step
// boundary at or after now so past times are never offered; if same-day
// booking is disabled the current date is skipped entirely. A candidate is
// accepted iff the conflict detector reports it schedulable; active work
// spilling into later days is permitted and reflected in the slot's
// WorkEndDate. The result is a pure function of its inputs.
func FindAvailableSlots(
	rangeStart, rangeEnd time.Time,
	workMinutes, dryingMinutes int,
	appointments []*domain.Appointment,
	settings domain.BusinessSettings,
	now time.Time,
) ([]domain.AvailabilitySlot, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	found := make([]domain.AvailabilitySlot, 0)

	for date := dateOnly(rangeStart); !date.After(dateOnly(rangeEnd)); date = date.AddDate(0, 0, 1) {
		if !calendar.IsWorkingDay(date, settings) {
			continue
		}

		sameDay := isSameDay(date, now)
		if sameDay && !settings.SameDayBooking {
			continue
		}

		for _, period := range calendar.WorkingPeriods(date, settings) {
			candidate := period.Start
			if sameDay {
				earliest := roundUpToStep(now)
				if candidate.Before(earliest) {
					candidate = earliest
				}
			}

			for candidate.Before(period.End) {
				check, err := conflict.CanScheduleService(candidate, workMinutes, dryingMinutes, appointments, settings)
				if err != nil {
					return nil, err
				}

				if check.CanSchedule {
					found = append(found, domain.AvailabilitySlot{
						Date:              date,
						StartTime:         types.NewTimeString(candidate),
						EndTime:           types.NewTimeString(check.WorkEndTime),
						WorkEndDate:       dateOnly(check.WorkEndTime),
						AvailableDuration: int(period.End.Sub(candidate) / time.Minute),
						CanStartService:   true,
					})
				}

				candidate = candidate.Add(StepMinutes * time.Minute)
			}
		}
	}

	return found, nil
}

// roundUpToStep returns t advanced to the next StepMinutes boundary, or t
// itself when already aligned. Seconds are truncated first.
func roundUpToStep(t time.Time) time.Time {
	t = t.Truncate(time.Minute)
	minute := t.Hour()*60 + t.Minute()
	rounded := ((minute + StepMinutes - 1) / StepMinutes) * StepMinutes
	return dateOnly(t).Add(time.Duration(rounded) * time.Minute)
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func isSameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
