package find_available_slots

import (
	"errors"
	"net/http"

	"github.com/brightshine-detailing/scheduler-service/internal/api/handlers"
	findAvailableSlots "github.com/brightshine-detailing/scheduler-service/internal/usecase/find_available_slots"
)

const (
	msgInvalidQuery         = "invalid query parameters"
	msgVehicleNotFound      = "vehicle not found"
	msgNoCompatibleServices = "no selected service is compatible with the vehicle"
	msgRangeTooFar          = "requested range is beyond the booking horizon"
)

type Handler struct {
	useCase FindAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase FindAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/availability/slots
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	useCaseReq, err := ToUseCaseRequest(
		query.Get("vehicleId"),
		query.Get("serviceIds"),
		query.Get("from"),
		query.Get("to"),
		query.Get("limit"),
	)
	if err != nil {
		h.logger.Warn("GET /availability/slots - Invalid query: %v", err)
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, findAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /availability/slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidQuery)

		case errors.Is(err, findAvailableSlots.ErrVehicleNotFound):
			h.logger.Warn("GET /availability/slots - Vehicle not found: vehicle_id=%d", useCaseReq.VehicleID)
			handlers.RespondNotFound(w, msgVehicleNotFound)

		case errors.Is(err, findAvailableSlots.ErrNoCompatibleServices):
			h.logger.Warn("GET /availability/slots - No compatible services: vehicle_id=%d", useCaseReq.VehicleID)
			handlers.RespondBadRequest(w, msgNoCompatibleServices)

		case errors.Is(err, findAvailableSlots.ErrRangeTooFarInFuture):
			h.logger.Warn("GET /availability/slots - Range too far: vehicle_id=%d", useCaseReq.VehicleID)
			handlers.RespondBadRequest(w, msgRangeTooFar)

		default:
			h.logger.Error("GET /availability/slots - Failed: vehicle_id=%d, error=%v", useCaseReq.VehicleID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /availability/slots - Found %d slots: vehicle_id=%d", len(result.Slots), useCaseReq.VehicleID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
