package list_upcoming

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/appointments"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/appointments/models"
)

const (
	msgInvalidDays       = "некорректный параметр days"
	msgInvalidLimit      = "некорректный параметр limit"
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

// Handle GET /api/v1/appointments/upcoming
// Query params: days (optional), limit (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	var days int
	if daysStr := query.Get("days"); daysStr != "" {
		parsed, err := strconv.Atoi(daysStr)
		if err != nil || parsed < 0 {
			h.logger.Warn("GET /appointments/upcoming - Invalid days: %s", daysStr)
			handlers.RespondBadRequest(w, msgInvalidDays)
			return
		}
		days = parsed
	}

	var limit int
	if limitStr := query.Get("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed < 0 {
			h.logger.Warn("GET /appointments/upcoming - Invalid limit: %s", limitStr)
			handlers.RespondBadRequest(w, msgInvalidLimit)
			return
		}
		limit = parsed
	}

	result, err := h.service.ListUpcoming(r.Context(), &models.ListUpcomingRequest{
		Days:  days,
		Limit: limit,
	})
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrSourceUnavailable):
			h.logger.Error("GET /appointments/upcoming - Source unavailable: %v", err)
			handlers.RespondServiceUnavailable(w, msgSourceUnavailable)

		default:
			h.logger.Error("GET /appointments/upcoming - Failed to list appointments: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /appointments/upcoming - Found %d upcoming appointments", result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
