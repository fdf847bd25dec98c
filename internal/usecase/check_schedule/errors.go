package check_schedule

import "errors"

var (
	// ErrInvalidInput is returned for malformed request parameters
	ErrInvalidInput = errors.New("invalid input data")

	// ErrVehicleNotFound is returned when the vehicle does not exist
	ErrVehicleNotFound = errors.New("vehicle not found")

	// ErrNoCompatibleServices is returned when no selected service is
	// offered for the vehicle's type and size
	ErrNoCompatibleServices = errors.New("no selected service is compatible with the vehicle")

	// ErrInternal is returned for unexpected failures
	ErrInternal = errors.New("usecase: internal error")
)
