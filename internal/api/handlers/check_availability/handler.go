package check_availability

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
	checkAvailability "github.com/m04kA/SMC-AvailabilityService/internal/usecase/check_availability"
)

const (
	msgMissingRange      = "параметр from обязателен"
	msgInvalidRange      = "некорректный период, ожидается RFC 3339"
	msgInvalidPreference = "некорректное предпочтение по времени суток"
	msgSourceUnavailable = "календарь временно недоступен"
)

type Handler struct {
	useCase CheckAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase CheckAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/availability
// Query params: from (required, RFC 3339), to (optional, RFC 3339,
// по умолчанию from + 7 дней), preference (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	fromStr := query.Get("from")
	if fromStr == "" {
		h.logger.Warn("GET /availability - Missing from param")
		handlers.RespondBadRequest(w, msgMissingRange)
		return
	}

	useCaseReq, err := ToUseCaseRequest(fromStr, query.Get("to"), query.Get("preference"))
	if err != nil {
		h.logger.Warn("GET /availability - Invalid range format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRange)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, checkAvailability.ErrInvalidRange):
			h.logger.Warn("GET /availability - Invalid range: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRange)

		case errors.Is(err, checkAvailability.ErrInvalidPreference):
			h.logger.Warn("GET /availability - Invalid preference: %v", err)
			handlers.RespondBadRequest(w, msgInvalidPreference)

		case errors.Is(err, checkAvailability.ErrSourceUnavailable):
			h.logger.Error("GET /availability - Source unavailable: %v", err)
			handlers.RespondServiceUnavailable(w, msgSourceUnavailable)

		default:
			h.logger.Error("GET /availability - Failed to check availability: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /availability - Found %d free slots", len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
