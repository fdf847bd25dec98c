package create_appointment

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/brightshine-detailing/scheduler-service/internal/domain"
	clientRepo "github.com/brightshine-detailing/scheduler-service/internal/infra/storage/client"
	vehicleRepo "github.com/brightshine-detailing/scheduler-service/internal/infra/storage/vehicle"
	"github.com/brightshine-detailing/scheduler-service/internal/scheduling/conflict"
	"github.com/brightshine-detailing/scheduler-service/internal/scheduling/duration"
)

// UseCase books an appointment. The conflict re-check and the insert run in
// one serializable transaction with the overlapping rows locked FOR UPDATE,
// so two concurrent requests for the same window cannot both commit.
type UseCase struct {
	appointmentRepo AppointmentRepository
	serviceRepo     ServiceRepository
	vehicleRepo     VehicleRepository
	clientRepo      ClientRepository
	txManager       TransactionManager
	settings        domain.BusinessSettings
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase creates the appointment creation use case.
func NewUseCase(
	appointmentRepo AppointmentRepository,
	serviceRepo ServiceRepository,
	vehicleRepo VehicleRepository,
	clientRepo ClientRepository,
	txManager TransactionManager,
	settings domain.BusinessSettings,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		serviceRepo:     serviceRepo,
		vehicleRepo:     vehicleRepo,
		clientRepo:      clientRepo,
		txManager:       txManager,
		settings:        settings,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute creates the appointment.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: client=%d, vehicle=%d, services=%v, start=%s",
		req.ClientID, req.VehicleID, req.ServiceIDs,
		req.StartDateTime.Format(domain.DateTimeFormat))

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	if err := validateStartTime(req.StartDateTime, now, uc.settings); err != nil {
		uc.logger.Warn("CreateAppointment: start time rejected: %v", err)
		return nil, err
	}

	client, err := uc.clientRepo.GetByID(ctx, req.ClientID)
	if err != nil {
		if errors.Is(err, clientRepo.ErrClientNotFound) {
			uc.logger.Warn("CreateAppointment: client id=%d not found", req.ClientID)
			return nil, ErrClientNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get client id=%d: %v", req.ClientID, err)
		return nil, fmt.Errorf("%w: failed to get client: %v", ErrInternal, err)
	}

	vehicle, err := uc.vehicleRepo.GetByID(ctx, req.VehicleID)
	if err != nil {
		if errors.Is(err, vehicleRepo.ErrVehicleNotFound) {
			uc.logger.Warn("CreateAppointment: vehicle id=%d not found", req.VehicleID)
			return nil, ErrVehicleNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get vehicle id=%d: %v", req.VehicleID, err)
		return nil, fmt.Errorf("%w: failed to get vehicle: %v", ErrInternal, err)
	}

	if vehicle.ClientID != client.ID {
		uc.logger.Warn("CreateAppointment: vehicle id=%d does not belong to client id=%d",
			req.VehicleID, req.ClientID)
		return nil, fmt.Errorf("%w: vehicle does not belong to the client", ErrInvalidInput)
	}

	services, err := uc.serviceRepo.GetByIDs(ctx, req.ServiceIDs)
	if err != nil {
		uc.logger.Error("CreateAppointment: failed to get services %v: %v", req.ServiceIDs, err)
		return nil, fmt.Errorf("%w: failed to get services: %v", ErrInternal, err)
	}

	dur := duration.CalculateServiceDuration(req.ServiceIDs, vehicle.Size, services)
	if dur.WorkDuration == 0 {
		uc.logger.Warn("CreateAppointment: no compatible services for vehicle id=%d size=%s",
			req.VehicleID, vehicle.Size)
		return nil, ErrNoCompatibleServices
	}

	var result *domain.Appointment

	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// Lock the rows the conflict check depends on. Inside a transaction
		// the repository appends FOR UPDATE, so a concurrent booking against
		// the same window waits until this one commits or rolls back.
		from := req.StartDateTime.AddDate(0, 0, -1)
		to := req.StartDateTime.AddDate(0, 0, spilloverDays(dur.TotalDuration)+1)
		appointments, err := uc.appointmentRepo.GetOverlappingWindow(txCtx, from, to)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to get appointments: %v", err)
			return fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
		}

		check, err := conflict.CanScheduleService(
			req.StartDateTime, dur.WorkDuration, dur.DryingDuration,
			appointments, uc.settings,
		)
		if err != nil {
			uc.logger.Error("CreateAppointment: conflict check failed: %v", err)
			return fmt.Errorf("%w: conflict check failed: %v", ErrInternal, err)
		}

		if !check.CanSchedule {
			uc.logger.Warn("CreateAppointment: schedule conflict for start=%s: %s",
				req.StartDateTime.Format(domain.DateTimeFormat),
				strings.Join(check.Conflicts, "; "))
			return fmt.Errorf("%w: %s", ErrScheduleConflict, strings.Join(check.Conflicts, "; "))
		}

		appt := &domain.Appointment{
			ClientID:      client.ID,
			VehicleID:     vehicle.ID,
			ServiceIDs:    req.ServiceIDs,
			StartDateTime: req.StartDateTime,
			EndDateTime:   check.WorkEndTime,
			Status:        domain.StatusScheduled,
			Observations:  req.Observations,
			Responsible:   req.Responsible,
			TotalPrice:    dur.TotalPrice,
		}
		if dur.DryingDuration > 0 {
			complete := check.ServiceCompleteTime
			appt.DryingEndDateTime = &complete
		}

		created, err := uc.appointmentRepo.Create(txCtx, appt)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateAppointment: created appointment id=%d (work end=%s)",
		result.ID, result.EndDateTime.Format(domain.DateTimeFormat))

	return toResponse(result), nil
}

func toResponse(appt *domain.Appointment) *Response {
	return &Response{
		ID:                appt.ID,
		ClientID:          appt.ClientID,
		VehicleID:         appt.VehicleID,
		ServiceIDs:        appt.ServiceIDs,
		StartDateTime:     appt.StartDateTime,
		EndDateTime:       appt.EndDateTime,
		DryingEndDateTime: appt.DryingEndDateTime,
		Status:            string(appt.Status),
		Observations:      appt.Observations,
		Responsible:       appt.Responsible,
		TotalPrice:        appt.TotalPrice,
		CreatedAt:         appt.CreatedAt,
		UpdatedAt:         appt.UpdatedAt,
	}
}

func spilloverDays(totalMinutes int) int {
	return totalMinutes/(24*60) + 2
}
