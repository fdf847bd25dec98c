package create_appointment

import (
	"errors"
	"net/http"

	"github.com/brightshine-detailing/scheduler-service/internal/api/handlers"
	createAppointment "github.com/brightshine-detailing/scheduler-service/internal/usecase/create_appointment"
)

const (
	msgInvalidRequestBody   = "invalid request body"
	msgInvalidDateTime      = "invalid startDateTime, expected YYYY-MM-DD HH:MM:SS"
	msgClientNotFound       = "client not found"
	msgVehicleNotFound      = "vehicle not found"
	msgNoCompatibleServices = "no selected service is compatible with the vehicle"
	msgStartInPast          = "start time is in the past"
	msgSameDayDisabled      = "same-day booking is disabled"
	msgTooFarInFuture       = "start time is beyond the booking horizon"
	msgScheduleConflict     = "requested time conflicts with the schedule"
)

type Handler struct {
	useCase CreateAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase CreateAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /appointments - Failed to parse start: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createAppointment.ErrScheduleConflict):
			h.logger.Warn("POST /appointments - Schedule conflict: client_id=%d, vehicle_id=%d", req.ClientID, req.VehicleID)
			handlers.RespondError(w, http.StatusConflict, msgScheduleConflict)

		case errors.Is(err, createAppointment.ErrClientNotFound):
			h.logger.Warn("POST /appointments - Client not found: client_id=%d", req.ClientID)
			handlers.RespondNotFound(w, msgClientNotFound)

		case errors.Is(err, createAppointment.ErrVehicleNotFound):
			h.logger.Warn("POST /appointments - Vehicle not found: vehicle_id=%d", req.VehicleID)
			handlers.RespondNotFound(w, msgVehicleNotFound)

		case errors.Is(err, createAppointment.ErrNoCompatibleServices):
			h.logger.Warn("POST /appointments - No compatible services: vehicle_id=%d", req.VehicleID)
			handlers.RespondBadRequest(w, msgNoCompatibleServices)

		case errors.Is(err, createAppointment.ErrStartInPast):
			h.logger.Warn("POST /appointments - Start in past: client_id=%d", req.ClientID)
			handlers.RespondBadRequest(w, msgStartInPast)

		case errors.Is(err, createAppointment.ErrSameDayBookingDisabled):
			h.logger.Warn("POST /appointments - Same-day booking disabled: client_id=%d", req.ClientID)
			handlers.RespondBadRequest(w, msgSameDayDisabled)

		case errors.Is(err, createAppointment.ErrTooFarInFuture):
			h.logger.Warn("POST /appointments - Too far in future: client_id=%d", req.ClientID)
			handlers.RespondBadRequest(w, msgTooFarInFuture)

		case errors.Is(err, createAppointment.ErrInvalidInput):
			h.logger.Warn("POST /appointments - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /appointments - Failed: client_id=%d, vehicle_id=%d, error=%v",
				req.ClientID, req.VehicleID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /appointments - Appointment created: appointment_id=%d, client_id=%d", result.ID, req.ClientID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
