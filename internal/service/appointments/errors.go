package appointments

import "errors"

var (
	// ErrAppointmentNotFound is returned when the appointment does not exist
	ErrAppointmentNotFound = errors.New("appointment not found")

	// ErrCannotCancel is returned when the appointment is already completed
	// or cancelled
	ErrCannotCancel = errors.New("appointment cannot be cancelled")

	// ErrInvalidStatus is returned for an unknown status value
	ErrInvalidStatus = errors.New("invalid appointment status")

	// ErrInvalidTransition is returned when the status change is not allowed
	// from the current status
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrInvalidInput is returned for malformed parameters
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned for unexpected failures
	ErrInternal = errors.New("service: internal error")
)
