package find_available_slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/brightshine-detailing/scheduler-service/internal/domain"
	vehicleRepo "github.com/brightshine-detailing/scheduler-service/internal/infra/storage/vehicle"
	"github.com/brightshine-detailing/scheduler-service/internal/scheduling/duration"
	"github.com/brightshine-detailing/scheduler-service/internal/scheduling/slots"
)

// UseCase searches open appointment slots for a vehicle/service selection.
type UseCase struct {
	appointmentRepo AppointmentRepository
	serviceRepo     ServiceRepository
	vehicleRepo     VehicleRepository
	settings        domain.BusinessSettings
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase creates the slot search use case.
func NewUseCase(
	appointmentRepo AppointmentRepository,
	serviceRepo ServiceRepository,
	vehicleRepo VehicleRepository,
	settings domain.BusinessSettings,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		serviceRepo:     serviceRepo,
		vehicleRepo:     vehicleRepo,
		settings:        settings,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute runs the slot search.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("FindAvailableSlots: vehicle=%d, services=%v, from=%s, to=%s",
		req.VehicleID, req.ServiceIDs,
		req.RangeStart.Format(domain.DateFormat), req.RangeEnd.Format(domain.DateFormat))

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("FindAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	rangeStart, rangeEnd, err := resolveRange(req, now, uc.settings.AdvanceBookingDays)
	if err != nil {
		uc.logger.Warn("FindAvailableSlots: range validation failed: %v", err)
		return nil, err
	}

	vehicle, err := uc.vehicleRepo.GetByID(ctx, req.VehicleID)
	if err != nil {
		if errors.Is(err, vehicleRepo.ErrVehicleNotFound) {
			uc.logger.Warn("FindAvailableSlots: vehicle id=%d not found", req.VehicleID)
			return nil, ErrVehicleNotFound
		}
		uc.logger.Error("FindAvailableSlots: failed to get vehicle id=%d: %v", req.VehicleID, err)
		return nil, fmt.Errorf("%w: failed to get vehicle: %v", ErrInternal, err)
	}

	services, err := uc.serviceRepo.GetByIDs(ctx, req.ServiceIDs)
	if err != nil {
		uc.logger.Error("FindAvailableSlots: failed to get services %v: %v", req.ServiceIDs, err)
		return nil, fmt.Errorf("%w: failed to get services: %v", ErrInternal, err)
	}

	dur := duration.CalculateServiceDuration(req.ServiceIDs, vehicle.Size, services)
	if dur.WorkDuration == 0 {
		uc.logger.Warn("FindAvailableSlots: no compatible services for vehicle id=%d size=%s",
			req.VehicleID, vehicle.Size)
		return nil, ErrNoCompatibleServices
	}

	// The snapshot must cover appointments whose passive phase reaches into
	// the range and candidates that spill past its end.
	snapshotEnd := rangeEnd.AddDate(0, 0, spilloverDays(dur.TotalDuration)+1)
	appointments, err := uc.appointmentRepo.GetOverlappingWindow(ctx, rangeStart, snapshotEnd)
	if err != nil {
		uc.logger.Error("FindAvailableSlots: failed to get appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	found, err := slots.FindAvailableSlots(
		rangeStart, rangeEnd,
		dur.WorkDuration, dur.DryingDuration,
		appointments, uc.settings, now,
	)
	if err != nil {
		uc.logger.Error("FindAvailableSlots: slot search failed: %v", err)
		return nil, fmt.Errorf("%w: slot search failed: %v", ErrInternal, err)
	}

	if req.Limit > 0 && len(found) > req.Limit {
		found = found[:req.Limit]
	}

	uc.logger.Info("FindAvailableSlots: found %d slots for vehicle=%d (work=%dmin, drying=%dmin)",
		len(found), req.VehicleID, dur.WorkDuration, dur.DryingDuration)

	return &Response{
		VehicleID: req.VehicleID,
		Duration:  dur,
		Slots:     found,
	}, nil
}

// resolveRange applies defaults and clamps the range to the booking horizon.
func resolveRange(req *Request, now time.Time, advanceBookingDays int) (time.Time, time.Time, error) {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	horizon := today.AddDate(0, 0, advanceBookingDays)

	rangeStart := req.RangeStart
	if rangeStart.IsZero() || rangeStart.Before(today) {
		rangeStart = today
	}
	if rangeStart.After(horizon) {
		return time.Time{}, time.Time{},
			fmt.Errorf("%w: can only search %d days in advance", ErrRangeTooFarInFuture, advanceBookingDays)
	}

	rangeEnd := req.RangeEnd
	if rangeEnd.IsZero() {
		rangeEnd = rangeStart.AddDate(0, 0, domain.DefaultSlotSearchDays)
	}
	if rangeEnd.After(horizon) {
		rangeEnd = horizon
	}

	return rangeStart, rangeEnd, nil
}

// spilloverDays bounds how many extra days a candidate started inside the
// range can occupy past its end.
func spilloverDays(totalMinutes int) int {
	return totalMinutes/(24*60) + 2
}
