package create_appointment

import (
	"errors"
	"time"

	createAppointment "github.com/m04kA/SMC-AvailabilityService/internal/usecase/create_appointment"
)

// CreateAppointmentRequest HTTP request model
type CreateAppointmentRequest struct {
	CustomerName  string  `json:"customerName"`
	CustomerPhone string  `json:"customerPhone"`
	Type          string  `json:"type"`
	Start         string  `json:"start"` // RFC 3339
	Notes         *string `json:"notes,omitempty"`
}

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	EventID       string  `json:"eventId"`
	CustomerName  string  `json:"customerName"`
	CustomerPhone string  `json:"customerPhone"`
	Type          string  `json:"type"`
	Start         string  `json:"start"` // RFC 3339
	End           string  `json:"end"`   // RFC 3339
	Status        string  `json:"status"`
	Notes         *string `json:"notes,omitempty"`
	CreatedAt     string  `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP request в запрос use case
func (r *CreateAppointmentRequest) ToUseCaseRequest() (*createAppointment.Request, error) {
	if r.Start == "" {
		return nil, errors.New("start is required")
	}

	start, err := time.Parse(time.RFC3339, r.Start)
	if err != nil {
		return nil, err
	}

	return &createAppointment.Request{
		CustomerName:  r.CustomerName,
		CustomerPhone: r.CustomerPhone,
		Type:          r.Type,
		Start:         start,
		Notes:         r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createAppointment.Response) *AppointmentResponse {
	return &AppointmentResponse{
		EventID:       resp.EventID,
		CustomerName:  resp.CustomerName,
		CustomerPhone: resp.CustomerPhone,
		Type:          resp.Type,
		Start:         resp.Interval.Start.Format(time.RFC3339),
		End:           resp.Interval.End.Format(time.RFC3339),
		Status:        resp.Status,
		Notes:         resp.Notes,
		CreatedAt:     resp.CreatedAt.Format(time.RFC3339),
	}
}
