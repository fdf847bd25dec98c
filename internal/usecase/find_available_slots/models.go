package find_available_slots

import (
	"time"

	"github.com/brightshine-detailing/scheduler-service/internal/domain"
	"github.com/brightshine-detailing/scheduler-service/internal/scheduling/duration"
)

// Request parameters of a slot search.
type Request struct {
	VehicleID  int64
	ServiceIDs []int64

	// RangeStart and RangeEnd bound the searched dates, inclusive. A zero
	// RangeStart defaults to today; a zero RangeEnd defaults to the default
	// search window.
	RangeStart time.Time
	RangeEnd   time.Time

	// Limit caps the number of returned slots; 0 returns all.
	Limit int
}

// Response holds the computed duration breakdown and the open slots.
type Response struct {
	VehicleID int64
	Duration  duration.Result
	Slots     []domain.AvailabilitySlot
}
