// Package conflict decides whether a candidate appointment window collides
// with existing appointments, separating active-work overlap from
// drying-phase overlap.
package conflict

import (
	"fmt"
	"time"

	"github.com/brightshine-detailing/scheduler-service/internal/domain"
	"github.com/brightshine-detailing/scheduler-service/internal/scheduling/calendar"
	"github.com/brightshine-detailing/scheduler-service/internal/scheduling/projection"
)

// ScheduleCheck is the structured result of a schedulability test. Conflicts
// holds every detected reason, not just the first; callers render them as
// validation feedback.
type ScheduleCheck struct {
	CanSchedule         bool
	WorkEndTime         time.Time
	ServiceCompleteTime time.Time
	Conflicts           []string
}

// Overlaps reports whether the half-open intervals [aStart, aEnd) and
// [bStart, bEnd) intersect. Touching endpoints do not overlap.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

// HasConflict reports whether the active-work intervals of two appointments
// overlap. Symmetric; back-to-back appointments do not conflict.
func HasConflict(a, b *domain.Appointment) bool {
	return Overlaps(a.StartDateTime, a.EndDateTime, b.StartDateTime, b.EndDateTime)
}

// CanScheduleService tests whether a job with the given active-work and
// drying durations can start at the given instant.
//
// The work end is projected through the business calendar, then the work
// interval is checked against every active appointment's work interval, and,
// when a drying phase exists, the drying interval is checked against every
// active appointment's full passive window. Cancelled appointments never
// participate. A start outside working hours is reported as a conflict
// reason but the projection is still computed.
func CanScheduleService(
	start time.Time,
	workMinutes int,
	dryingMinutes int,
	appointments []*domain.Appointment,
	settings domain.BusinessSettings,
) (ScheduleCheck, error) {
	workEnd, err := projection.CalculateWorkEndTime(start, workMinutes, settings)
	if err != nil {
		return ScheduleCheck{}, err
	}

	check := ScheduleCheck{
		WorkEndTime:         workEnd,
		ServiceCompleteTime: workEnd.Add(time.Duration(dryingMinutes) * time.Minute),
	}

	if !insideWorkingPeriod(start, settings) {
		check.Conflicts = append(check.Conflicts,
			fmt.Sprintf("start time %s is outside working hours", start.Format(domain.TimeFormat)))
	}

	for _, appt := range appointments {
		if appt == nil || !appt.IsActive() {
			continue
		}

		if Overlaps(start, workEnd, appt.StartDateTime, appt.EndDateTime) {
			check.Conflicts = append(check.Conflicts,
				fmt.Sprintf("work time overlaps appointment #%d (%s - %s)",
					appt.ID,
					appt.StartDateTime.Format(domain.DateTimeFormat),
					appt.EndDateTime.Format(domain.DateTimeFormat)))
		}

		if dryingMinutes > 0 && Overlaps(workEnd, check.ServiceCompleteTime, appt.StartDateTime, appt.FinalInstant()) {
			check.Conflicts = append(check.Conflicts,
				fmt.Sprintf("drying time overlaps appointment #%d (%s - %s)",
					appt.ID,
					appt.StartDateTime.Format(domain.DateTimeFormat),
					appt.FinalInstant().Format(domain.DateTimeFormat)))
		}
	}

	check.CanSchedule = len(check.Conflicts) == 0
	return check, nil
}

func insideWorkingPeriod(t time.Time, settings domain.BusinessSettings) bool {
	for _, period := range calendar.WorkingPeriods(t, settings) {
		if period.Contains(t) {
			return true
		}
	}
	return false
}
