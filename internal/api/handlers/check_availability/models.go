package check_availability

import (
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	checkAvailability "github.com/m04kA/SMC-AvailabilityService/internal/usecase/check_availability"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	From       string `json:"from"`
	To         string `json:"to"`
	Preference string `json:"preference"`
	Slots      []Slot `json:"slots"`
}

// Slot модель свободного слота
type Slot struct {
	Start string `json:"start"` // RFC 3339
	End   string `json:"end"`   // RFC 3339
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *checkAvailability.Response) *AvailabilityResponse {
	slots := make([]Slot, len(resp.Slots))
	for i, s := range resp.Slots {
		slots[i] = Slot{
			Start: s.Start.Format(time.RFC3339),
			End:   s.End.Format(time.RFC3339),
		}
	}

	return &AvailabilityResponse{
		From:       resp.From.Format(time.RFC3339),
		To:         resp.To.Format(time.RFC3339),
		Preference: string(resp.Preference),
		Slots:      slots,
	}
}

// ToUseCaseRequest создает запрос use case из query параметров.
// Пустой to означает период по умолчанию: from + 7 дней.
func ToUseCaseRequest(fromStr, toStr, preference string) (*checkAvailability.Request, error) {
	from, err := time.Parse(time.RFC3339, fromStr)
	if err != nil {
		return nil, err
	}

	to := from.AddDate(0, 0, domain.DefaultRangeDays)
	if toStr != "" {
		to, err = time.Parse(time.RFC3339, toStr)
		if err != nil {
			return nil, err
		}
	}

	return &checkAvailability.Request{
		From:       from,
		To:         to,
		Preference: preference,
	}, nil
}
