package create_appointment

import (
	"fmt"
	"time"

	"github.com/brightshine-detailing/scheduler-service/internal/domain"
)

func validateRequest(req *Request) error {
	if req.ClientID <= 0 {
		return fmt.Errorf("%w: clientID must be positive", ErrInvalidInput)
	}

	if req.VehicleID <= 0 {
		return fmt.Errorf("%w: vehicleID must be positive", ErrInvalidInput)
	}

	if len(req.ServiceIDs) == 0 {
		return fmt.Errorf("%w: at least one service is required", ErrInvalidInput)
	}

	for _, id := range req.ServiceIDs {
		if id <= 0 {
			return fmt.Errorf("%w: serviceIDs must be positive", ErrInvalidInput)
		}
	}

	if req.StartDateTime.IsZero() {
		return fmt.Errorf("%w: startDateTime is required", ErrInvalidInput)
	}

	return nil
}

// validateStartTime applies the booking time policy: no starts in the past,
// no same-day starts when disabled, nothing beyond the advance horizon.
func validateStartTime(start, now time.Time, settings domain.BusinessSettings) error {
	if start.Before(now) {
		return ErrStartInPast
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	if !settings.SameDayBooking && start.Before(today.AddDate(0, 0, 1)) {
		return ErrSameDayBookingDisabled
	}

	horizon := today.AddDate(0, 0, settings.AdvanceBookingDays+1)
	if !start.Before(horizon) {
		return fmt.Errorf("%w: can only book %d days in advance",
			ErrTooFarInFuture, settings.AdvanceBookingDays)
	}

	return nil
}
