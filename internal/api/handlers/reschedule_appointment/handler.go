package reschedule_appointment

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/appointments"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/appointments/models"
)

const (
	msgMissingEventID    = "идентификатор записи обязателен"
	msgInvalidBody       = "некорректное тело запроса"
	msgInvalidNewStart   = "некорректное новое время, ожидается RFC 3339"
	msgNotFound          = "запись не найдена"
	msgCannotReschedule  = "запись нельзя перенести"
	msgSlotTaken         = "выбранное время уже занято"
	msgOutsideHours      = "выбранное время вне рабочих часов"
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

// Handle PATCH /api/v1/appointments/{eventId}/reschedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	eventID := mux.Vars(r)["eventId"]
	if eventID == "" {
		h.logger.Warn("PATCH /appointments/{eventId}/reschedule - Missing event ID")
		handlers.RespondBadRequest(w, msgMissingEventID)
		return
	}

	var req RescheduleAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /appointments/{eventId}/reschedule - Invalid body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	newStart, err := time.Parse(time.RFC3339, req.NewStart)
	if err != nil {
		h.logger.Warn("PATCH /appointments/{eventId}/reschedule - Invalid newStart: %v", err)
		handlers.RespondBadRequest(w, msgInvalidNewStart)
		return
	}

	result, err := h.service.Reschedule(r.Context(), &models.RescheduleAppointmentRequest{
		EventID:  eventID,
		NewStart: newStart,
	})
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrInvalidInput):
			h.logger.Warn("PATCH /appointments/{eventId}/reschedule - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidNewStart)

		case errors.Is(err, appointments.ErrAppointmentNotFound):
			h.logger.Warn("PATCH /appointments/{eventId}/reschedule - Not found: event_id=%s", eventID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, appointments.ErrCannotReschedule):
			h.logger.Warn("PATCH /appointments/{eventId}/reschedule - Cannot reschedule: event_id=%s", eventID)
			handlers.RespondConflict(w, msgCannotReschedule)

		case errors.Is(err, appointments.ErrSlotTaken):
			h.logger.Warn("PATCH /appointments/{eventId}/reschedule - Slot taken: %v", err)
			handlers.RespondConflict(w, msgSlotTaken)

		case errors.Is(err, appointments.ErrOutsideWorkingHours):
			h.logger.Warn("PATCH /appointments/{eventId}/reschedule - Outside working hours: %v", err)
			handlers.RespondBadRequest(w, msgOutsideHours)

		case errors.Is(err, appointments.ErrSourceUnavailable):
			h.logger.Error("PATCH /appointments/{eventId}/reschedule - Source unavailable: %v", err)
			handlers.RespondServiceUnavailable(w, msgSourceUnavailable)

		default:
			h.logger.Error("PATCH /appointments/{eventId}/reschedule - Failed to reschedule event_id=%s: %v", eventID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /appointments/{eventId}/reschedule - Rescheduled appointment event_id=%s", eventID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
