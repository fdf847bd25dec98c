package check_schedule

import (
	"context"
	"errors"
	"fmt"

	"github.com/brightshine-detailing/scheduler-service/internal/domain"
	vehicleRepo "github.com/brightshine-detailing/scheduler-service/internal/infra/storage/vehicle"
	"github.com/brightshine-detailing/scheduler-service/internal/scheduling/conflict"
	"github.com/brightshine-detailing/scheduler-service/internal/scheduling/duration"
)

// UseCase answers "can this job start at this instant" with a full list of
// conflict reasons, for booking-form validation.
type UseCase struct {
	appointmentRepo AppointmentRepository
	serviceRepo     ServiceRepository
	vehicleRepo     VehicleRepository
	settings        domain.BusinessSettings
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase creates the schedule check use case.
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

// Execute runs the schedulability check.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CheckSchedule: vehicle=%d, services=%v, start=%s",
		req.VehicleID, req.ServiceIDs, req.StartDateTime.Format(domain.DateTimeFormat))

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CheckSchedule: validation failed: %v", err)
		return nil, err
	}

	vehicle, err := uc.vehicleRepo.GetByID(ctx, req.VehicleID)
	if err != nil {
		if errors.Is(err, vehicleRepo.ErrVehicleNotFound) {
			uc.logger.Warn("CheckSchedule: vehicle id=%d not found", req.VehicleID)
			return nil, ErrVehicleNotFound
		}
		uc.logger.Error("CheckSchedule: failed to get vehicle id=%d: %v", req.VehicleID, err)
		return nil, fmt.Errorf("%w: failed to get vehicle: %v", ErrInternal, err)
	}

	services, err := uc.serviceRepo.GetByIDs(ctx, req.ServiceIDs)
	if err != nil {
		uc.logger.Error("CheckSchedule: failed to get services %v: %v", req.ServiceIDs, err)
		return nil, fmt.Errorf("%w: failed to get services: %v", ErrInternal, err)
	}

	dur := duration.CalculateServiceDuration(req.ServiceIDs, vehicle.Size, services)
	if dur.WorkDuration == 0 {
		uc.logger.Warn("CheckSchedule: no compatible services for vehicle id=%d size=%s",
			req.VehicleID, vehicle.Size)
		return nil, ErrNoCompatibleServices
	}

	// Pull every appointment whose passive window can touch the candidate's
	// interval. The job may spill across day boundaries, so the window is
	// padded on both sides.
	from := req.StartDateTime.AddDate(0, 0, -1)
	to := req.StartDateTime.AddDate(0, 0, spilloverDays(dur.TotalDuration)+1)
	appointments, err := uc.appointmentRepo.GetOverlappingWindow(ctx, from, to)
	if err != nil {
		uc.logger.Error("CheckSchedule: failed to get appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	check, err := conflict.CanScheduleService(
		req.StartDateTime, dur.WorkDuration, dur.DryingDuration,
		appointments, uc.settings,
	)
	if err != nil {
		uc.logger.Error("CheckSchedule: conflict check failed: %v", err)
		return nil, fmt.Errorf("%w: conflict check failed: %v", ErrInternal, err)
	}

	uc.logger.Info("CheckSchedule: vehicle=%d start=%s canSchedule=%t conflicts=%d",
		req.VehicleID, req.StartDateTime.Format(domain.DateTimeFormat),
		check.CanSchedule, len(check.Conflicts))

	return &Response{
		CanSchedule:         check.CanSchedule,
		WorkEndTime:         check.WorkEndTime,
		ServiceCompleteTime: check.ServiceCompleteTime,
		Conflicts:           check.Conflicts,
		Duration:            dur,
	}, nil
}

func spilloverDays(totalMinutes int) int {
	return totalMinutes/(24*60) + 2
}
