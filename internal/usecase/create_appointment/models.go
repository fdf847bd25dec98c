package create_appointment

import "time"

// Request carries the booking parameters.
type Request struct {
	ClientID      int64
	VehicleID     int64
	ServiceIDs    []int64
	StartDateTime time.Time
	Observations  *string
	Responsible   *string
}

// Response mirrors the created appointment.
type Response struct {
	ID                int64
	ClientID          int64
	VehicleID         int64
	ServiceIDs        []int64
	StartDateTime     time.Time
	EndDateTime       time.Time
	DryingEndDateTime *time.Time
	Status            string
	Observations      *string
	Responsible       *string
	TotalPrice        float64
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
