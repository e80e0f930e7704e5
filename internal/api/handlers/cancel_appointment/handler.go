package cancel_appointment

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/appointments"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/appointments/models"
)

const (
	msgMissingEventID    = "идентификатор записи обязателен"
	msgInvalidBody       = "некорректное тело запроса"
	msgNotFound          = "запись не найдена"
	msgCannotCancel      = "запись нельзя отменить"
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

// Handle PATCH /api/v1/appointments/{eventId}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	eventID := mux.Vars(r)["eventId"]
	if eventID == "" {
		h.logger.Warn("PATCH /appointments/{eventId}/cancel - Missing event ID")
		handlers.RespondBadRequest(w, msgMissingEventID)
		return
	}

	// Тело опционально: отмена без причины допустима
	var req CancelAppointmentRequest
	if r.ContentLength > 0 {
		if err := handlers.DecodeJSON(r, &req); err != nil {
			h.logger.Warn("PATCH /appointments/{eventId}/cancel - Invalid body: %v", err)
			handlers.RespondBadRequest(w, msgInvalidBody)
			return
		}
	}

	err := h.service.Cancel(r.Context(), &models.CancelAppointmentRequest{
		EventID:            eventID,
		CancellationReason: req.CancellationReason,
	})
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrAppointmentNotFound):
			h.logger.Warn("PATCH /appointments/{eventId}/cancel - Not found: event_id=%s", eventID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, appointments.ErrCannotCancel):
			h.logger.Warn("PATCH /appointments/{eventId}/cancel - Cannot cancel: event_id=%s", eventID)
			handlers.RespondConflict(w, msgCannotCancel)

		case errors.Is(err, appointments.ErrSourceUnavailable):
			h.logger.Error("PATCH /appointments/{eventId}/cancel - Source unavailable: %v", err)
			handlers.RespondServiceUnavailable(w, msgSourceUnavailable)

		default:
			h.logger.Error("PATCH /appointments/{eventId}/cancel - Failed to cancel event_id=%s: %v", eventID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /appointments/{eventId}/cancel - Cancelled appointment event_id=%s", eventID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
