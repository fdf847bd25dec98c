package find_available_slots

import "errors"

var (
	// ErrInvalidInput is returned for malformed request parameters
	ErrInvalidInput = errors.New("invalid input data")

	// ErrVehicleNotFound is returned when the vehicle does not exist
	ErrVehicleNotFound = errors.New("vehicle not found")

	// ErrNoCompatibleServices is returned when no selected service is
	// offered for the vehicle's type and size
	ErrNoCompatibleServices = errors.New("no selected service is compatible with the vehicle")

	// ErrRangeTooFarInFuture is returned when the searched range starts
	// beyond the advance booking horizon
	ErrRangeTooFarInFuture = errors.New("range is beyond the advance booking horizon")

	// ErrInternal is returned for unexpected failures
	ErrInternal = errors.New("usecase: internal error")
)
