package catalog

import "errors"

var (
	// ErrServiceNotFound is returned when the service does not exist
	ErrServiceNotFound = errors.New("service not found")

	// ErrVehicleNotFound is returned when the vehicle does not exist
	ErrVehicleNotFound = errors.New("vehicle not found")

	// ErrClientNotFound is returned when the client does not exist
	ErrClientNotFound = errors.New("client not found")

	// ErrInvalidInput is returned for malformed parameters
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned for unexpected failures
	ErrInternal = errors.New("service: internal error")
)
