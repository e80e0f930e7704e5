package next_available

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	nextAvailable "github.com/m04kA/SMC-AvailabilityService/internal/usecase/next_available"
)

const (
	msgInvalidFrom       = "некорректный параметр from, ожидается RFC 3339"
	msgInvalidCount      = "некорректный параметр count"
	msgInvalidPreference = "некорректное предпочтение по времени суток"
	msgSourceUnavailable = "календарь временно недоступен"
)

type Handler struct {
	useCase NextAvailableUseCase
	logger  Logger
}

func NewHandler(useCase NextAvailableUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/availability/next
// Query params: from (optional, RFC 3339), count (optional), preference (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	var from time.Time
	if fromStr := query.Get("from"); fromStr != "" {
		parsed, err := time.Parse(time.RFC3339, fromStr)
		if err != nil {
			h.logger.Warn("GET /availability/next - Invalid from: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFrom)
			return
		}
		from = parsed
	}

	// Отсутствующий count означает значение по умолчанию;
	// явный некорректный count - ошибка клиента
	count := domain.DefaultNextSlotsCount
	if countStr := query.Get("count"); countStr != "" {
		parsed, err := strconv.Atoi(countStr)
		if err != nil {
			h.logger.Warn("GET /availability/next - Invalid count: %v", err)
			handlers.RespondBadRequest(w, msgInvalidCount)
			return
		}
		count = parsed
	}

	useCaseReq := &nextAvailable.Request{
		From:       from,
		Count:      count,
		Preference: query.Get("preference"),
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, nextAvailable.ErrInvalidCount):
			h.logger.Warn("GET /availability/next - Invalid count: %v", err)
			handlers.RespondBadRequest(w, msgInvalidCount)

		case errors.Is(err, nextAvailable.ErrInvalidPreference):
			h.logger.Warn("GET /availability/next - Invalid preference: %v", err)
			handlers.RespondBadRequest(w, msgInvalidPreference)

		case errors.Is(err, nextAvailable.ErrSourceUnavailable):
			h.logger.Error("GET /availability/next - Source unavailable: %v", err)
			handlers.RespondServiceUnavailable(w, msgSourceUnavailable)

		default:
			h.logger.Error("GET /availability/next - Failed to find slots: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /availability/next - Found %d of %d requested slots", len(result.Slots), count)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result, count))
}
