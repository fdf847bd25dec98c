package domain

import "time"

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusScheduled  AppointmentStatus = "scheduled"
	StatusInProgress AppointmentStatus = "in_progress"
	StatusCompleted  AppointmentStatus = "completed"
	StatusCancelled  AppointmentStatus = "cancelled"
)

// Appointment represents a scheduled detailing job.
//
// StartDateTime..EndDateTime is the active-work window during which the bay
// and staff are occupied. DryingEndDateTime, when set, marks the end of the
// passive drying phase that follows active work; it may fall outside working
// hours. When nil the appointment has no passive phase and EndDateTime is
// its final instant.
type Appointment struct {
	ID                int64
	ClientID          int64
	VehicleID         int64
	ServiceIDs        []int64
	StartDateTime     time.Time
	EndDateTime       time.Time
	DryingEndDateTime *time.Time
	Status            AppointmentStatus

	Observations *string
	Responsible  *string
	TotalPrice   float64

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the appointment participates in conflict checks.
// Cancelled appointments are retained in storage but logically deleted for
// scheduling purposes.
func (a *Appointment) IsActive() bool {
	return a.Status != StatusCancelled
}

// IsCancelled returns true if the appointment has been cancelled
func (a *Appointment) IsCancelled() bool {
	return a.Status == StatusCancelled
}

// CanBeCancelled returns true if the appointment can still be cancelled
func (a *Appointment) CanBeCancelled() bool {
	return a.Status == StatusScheduled || a.Status == StatusInProgress
}

// CanBeUpdated returns true if the appointment can be rescheduled or edited
func (a *Appointment) CanBeUpdated() bool {
	return a.Status == StatusScheduled
}

// FinalInstant returns the moment the vehicle is ready for pickup: the end
// of drying when a passive phase exists, otherwise the end of active work.
func (a *Appointment) FinalInstant() time.Time {
	if a.DryingEndDateTime != nil {
		return *a.DryingEndDateTime
	}
	return a.EndDateTime
}

// AppointmentsFilter filters appointment listings
type AppointmentsFilter struct {
	ClientID        *int64
	VehicleID       *int64
	StartDate       *time.Time
	EndDate         *time.Time
	Status          *AppointmentStatus
	IncludeInactive bool
}
