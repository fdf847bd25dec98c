package domain

import (
	"time"

	"github.com/brightshine-detailing/scheduler-service/pkg/types"
)

// AvailabilitySlot is a candidate start instant offered to the caller as
// bookable, with its projected active-work completion time. Slots are
// computed per query and never persisted.
type AvailabilitySlot struct {
	// Date is the calendar day of the candidate start.
	Date time.Time

	// StartTime is the candidate start wall-clock time.
	StartTime types.TimeString

	// EndTime is the wall-clock time active work completes. When the job
	// spills past the end of the day it refers to a later date and may read
	// numerically earlier than StartTime; compare WorkEndDate with Date to
	// detect spillover.
	EndTime     types.TimeString
	WorkEndDate time.Time

	// AvailableDuration is the contiguous working time, in minutes, left in
	// the slot's own working period from the candidate start.
	AvailableDuration int

	CanStartService bool
}
