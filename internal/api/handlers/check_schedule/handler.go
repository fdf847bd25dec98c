package check_schedule

import (
	"errors"
	"net/http"

	"github.com/brightshine-detailing/scheduler-service/internal/api/handlers"
	checkSchedule "github.com/brightshine-detailing/scheduler-service/internal/usecase/check_schedule"
)

const (
	msgInvalidRequestBody   = "invalid request body"
	msgInvalidDateTime      = "invalid startDateTime, expected YYYY-MM-DD HH:MM:SS"
	msgVehicleNotFound      = "vehicle not found"
	msgNoCompatibleServices = "no selected service is compatible with the vehicle"
)

type Handler struct {
	useCase CheckScheduleUseCase
	logger  Logger
}

func NewHandler(useCase CheckScheduleUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/availability/check
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CheckScheduleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /availability/check - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /availability/check - Failed to parse start: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, checkSchedule.ErrInvalidInput):
			h.logger.Warn("POST /availability/check - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		case errors.Is(err, checkSchedule.ErrVehicleNotFound):
			h.logger.Warn("POST /availability/check - Vehicle not found: vehicle_id=%d", req.VehicleID)
			handlers.RespondNotFound(w, msgVehicleNotFound)

		case errors.Is(err, checkSchedule.ErrNoCompatibleServices):
			h.logger.Warn("POST /availability/check - No compatible services: vehicle_id=%d", req.VehicleID)
			handlers.RespondBadRequest(w, msgNoCompatibleServices)

		default:
			h.logger.Error("POST /availability/check - Failed: vehicle_id=%d, error=%v", req.VehicleID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /availability/check - vehicle_id=%d canSchedule=%t", req.VehicleID, result.CanSchedule)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
