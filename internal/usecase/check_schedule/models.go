package check_schedule

import (
	"time"

	"github.com/brightshine-detailing/scheduler-service/internal/scheduling/duration"
)

// Request describes the candidate start to test.
type Request struct {
	VehicleID     int64
	ServiceIDs    []int64
	StartDateTime time.Time
}

// Response is the structured schedulability verdict. Conflicts holds every
// detected reason; an empty list means the candidate is bookable.
type Response struct {
	CanSchedule         bool
	WorkEndTime         time.Time
	ServiceCompleteTime time.Time
	Conflicts           []string
	Duration            duration.Result
}
