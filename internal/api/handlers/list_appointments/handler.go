package list_appointments

import (
	"errors"
	"net/http"

	"github.com/brightshine-detailing/scheduler-service/internal/api/handlers"
	"github.com/brightshine-detailing/scheduler-service/internal/service/appointments"
)

const (
	msgInvalidQuery = "invalid query parameters"
	msgInvalidView  = "invalid view, expected today or upcoming"
)

type Handler struct {
	service AppointmentService
	logger  Logger
}

func NewHandler(service AppointmentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/appointments
//
// The view parameter selects a canned agenda (today, upcoming); otherwise the
// full filter set applies.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	switch view := query.Get("view"); view {
	case "":
		// fall through to the filtered listing below
	case "today":
		result, err := h.service.Today(r.Context())
		if err != nil {
			h.logger.Error("GET /appointments - Failed to list today: %v", err)
			handlers.RespondInternalError(w)
			return
		}
		h.logger.Info("GET /appointments - Listed %d appointments for today", result.Total)
		handlers.RespondJSON(w, http.StatusOK, result)
		return
	case "upcoming":
		result, err := h.service.Upcoming(r.Context())
		if err != nil {
			h.logger.Error("GET /appointments - Failed to list upcoming: %v", err)
			handlers.RespondInternalError(w)
			return
		}
		h.logger.Info("GET /appointments - Listed %d upcoming appointments", result.Total)
		handlers.RespondJSON(w, http.StatusOK, result)
		return
	default:
		h.logger.Warn("GET /appointments - Invalid view: %s", view)
		handlers.RespondBadRequest(w, msgInvalidView)
		return
	}

	serviceReq, err := ToServiceRequest(query)
	if err != nil {
		h.logger.Warn("GET /appointments - Invalid query: %v", err)
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}

	result, err := h.service.List(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrInvalidInput):
			h.logger.Warn("GET /appointments - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidQuery)

		default:
			h.logger.Error("GET /appointments - Failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /appointments - Listed %d appointments", result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
