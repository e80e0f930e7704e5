package get_appointment

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/appointments"
)

const (
	msgMissingEventID    = "идентификатор записи обязателен"
	msgNotFound          = "запись не найдена"
	msgSourceUnavailable = "календарь временно недоступен"
)

type Handler struct {
	service AppointmentsService
	logger  Logger
}

func NewHandler(service AppointmentsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/appointments/{eventId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	eventID := mux.Vars(r)["eventId"]
	if eventID == "" {
		h.logger.Warn("GET /appointments/{eventId} - Missing event ID")
		handlers.RespondBadRequest(w, msgMissingEventID)
		return
	}

	result, err := h.service.GetByID(r.Context(), eventID)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrAppointmentNotFound):
			h.logger.Warn("GET /appointments/{eventId} - Not found: event_id=%s", eventID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, appointments.ErrSourceUnavailable):
			h.logger.Error("GET /appointments/{eventId} - Source unavailable: %v", err)
			handlers.RespondServiceUnavailable(w, msgSourceUnavailable)

		default:
			h.logger.Error("GET /appointments/{eventId} - Failed to get appointment event_id=%s: %v", eventID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /appointments/{eventId} - Fetched appointment event_id=%s", eventID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
