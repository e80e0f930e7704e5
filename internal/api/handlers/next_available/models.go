package next_available

import (
	"time"

	nextAvailable "github.com/m04kA/SMC-AvailabilityService/internal/usecase/next_available"
)

// NextAvailableResponse HTTP response model
type NextAvailableResponse struct {
	From       string `json:"from"`
	Preference string `json:"preference"`
	Requested  int    `json:"requested"`
	Slots      []Slot `json:"slots"`
}

// Slot модель свободного слота
type Slot struct {
	Start string `json:"start"` // RFC 3339
	End   string `json:"end"`   // RFC 3339
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *nextAvailable.Response, requested int) *NextAvailableResponse {
	slots := make([]Slot, len(resp.Slots))
	for i, s := range resp.Slots {
		slots[i] = Slot{
			Start: s.Start.Format(time.RFC3339),
			End:   s.End.Format(time.RFC3339),
		}
	}

	return &NextAvailableResponse{
		From:       resp.From.Format(time.RFC3339),
		Preference: string(resp.Preference),
		Requested:  requested,
		Slots:      slots,
	}
}
