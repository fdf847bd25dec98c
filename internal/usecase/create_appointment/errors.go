package create_appointment

import "errors"

var (
	// ErrInvalidInput is returned for malformed request parameters
	ErrInvalidInput = errors.New("invalid input data")

	// ErrClientNotFound is returned when the client does not exist
	ErrClientNotFound = errors.New("client not found")

	// ErrVehicleNotFound is returned when the vehicle does not exist
	ErrVehicleNotFound = errors.New("vehicle not found")

	// ErrNoCompatibleServices is returned when no selected service is
	// offered for the vehicle's type and size
	ErrNoCompatibleServices = errors.New("no selected service is compatible with the vehicle")

	// ErrStartInPast is returned when the requested start has already passed
	ErrStartInPast = errors.New("start time is in the past")

	// ErrSameDayBookingDisabled is returned when same-day starts are not
	// accepted by business policy
	ErrSameDayBookingDisabled = errors.New("same-day booking is disabled")

	// ErrTooFarInFuture is returned when the start is beyond the advance
	// booking horizon
	ErrTooFarInFuture = errors.New("start time is beyond the booking horizon")

	// ErrScheduleConflict is returned when the requested window collides
	// with existing appointments or falls outside working hours
	ErrScheduleConflict = errors.New("requested time conflicts with the schedule")

	// ErrInternal is returned for unexpected failures
	ErrInternal = errors.New("usecase: internal error")
)
