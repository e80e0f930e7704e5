package models

import (
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// Request модели

// CancelAppointmentRequest запрос на отмену записи
type CancelAppointmentRequest struct {
	EventID            string
	CancellationReason string
}

// RescheduleAppointmentRequest запрос на перенос записи
type RescheduleAppointmentRequest struct {
	EventID  string
	NewStart time.Time
}

// ListUpcomingRequest запрос на получение предстоящих записей
type ListUpcomingRequest struct {
	Days  int // Сколько дней вперед смотреть; 0 = значение по умолчанию
	Limit int // Максимум записей; 0 = значение по умолчанию
}

// Response модели

// AppointmentResponse ответ с данными записи
type AppointmentResponse struct {
	EventID       string  `json:"eventId"`
	CustomerName  string  `json:"customerName"`
	CustomerPhone string  `json:"customerPhone"`
	Type          string  `json:"type"`
	Start         string  `json:"start"` // RFC 3339
	End           string  `json:"end"`   // RFC 3339
	Status        string  `json:"status"`
	Notes         *string `json:"notes,omitempty"`

	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"` // RFC 3339

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// AppointmentListResponse ответ со списком записей
type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}

// FromDomainAppointment конвертирует доменную запись в response
func FromDomainAppointment(appt *domain.Appointment) *AppointmentResponse {
	resp := &AppointmentResponse{
		EventID:            appt.EventID,
		CustomerName:       appt.CustomerName,
		CustomerPhone:      appt.CustomerPhone,
		Type:               appt.Type,
		Start:              appt.Interval.Start.Format(time.RFC3339),
		End:                appt.Interval.End.Format(time.RFC3339),
		Status:             string(appt.Status),
		Notes:              appt.Notes,
		CancellationReason: appt.CancellationReason,
		CreatedAt:          appt.CreatedAt,
		UpdatedAt:          appt.UpdatedAt,
	}

	if appt.CancelledAt != nil {
		cancelledAt := appt.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledAt
	}

	return resp
}

// FromDomainAppointmentList конвертирует список доменных записей в response
func FromDomainAppointmentList(appts []*domain.Appointment) *AppointmentListResponse {
	list := make([]AppointmentResponse, 0, len(appts))
	for _, appt := range appts {
		list = append(list, *FromDomainAppointment(appt))
	}
	return &AppointmentListResponse{
		Appointments: list,
		Total:        len(list),
	}
}
