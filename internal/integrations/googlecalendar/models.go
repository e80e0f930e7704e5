package googlecalendar

import (
	"fmt"
	"time"

	"google.golang.org/api/calendar/v3"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// Ключи extended properties, в которых хранятся данные клиента.
// Description события остается человекочитаемым (заметки), а машинные
// поля живут в private properties и не зависят от форматирования текста.
const (
	propCustomerName  = "customerName"
	propCustomerPhone = "customerPhone"
	propType          = "appointmentType"
)

// toEvent конвертирует доменную запись в событие Google Calendar
func toEvent(appt *domain.Appointment) *calendar.Event {
	event := &calendar.Event{
		Summary: fmt.Sprintf("%s - %s", appt.Type, appt.CustomerName),
		Start:   &calendar.EventDateTime{DateTime: appt.Interval.Start.Format(time.RFC3339)},
		End:     &calendar.EventDateTime{DateTime: appt.Interval.End.Format(time.RFC3339)},
		ExtendedProperties: &calendar.EventExtendedProperties{
			Private: map[string]string{
				propCustomerName:  appt.CustomerName,
				propCustomerPhone: appt.CustomerPhone,
				propType:          appt.Type,
			},
		},
		// Напоминания как в календаре клиники: за сутки и за час
		Reminders: &calendar.EventReminders{
			UseDefault: false,
			Overrides: []*calendar.EventReminder{
				{Method: "popup", Minutes: 24 * 60},
				{Method: "popup", Minutes: 60},
			},
			ForceSendFields: []string{"UseDefault"},
		},
	}

	if appt.Notes != nil {
		event.Description = *appt.Notes
	}

	return event
}

// fromEvent конвертирует событие Google Calendar в доменную запись
func fromEvent(event *calendar.Event) (*domain.Appointment, error) {
	if event.Start == nil || event.End == nil || event.Start.DateTime == "" || event.End.DateTime == "" {
		// Событие на весь день (date без dateTime) записью не является
		return nil, fmt.Errorf("%w: event %s has no concrete start/end time", ErrInvalidResponse, event.Id)
	}

	start, err := time.Parse(time.RFC3339, event.Start.DateTime)
	if err != nil {
		return nil, fmt.Errorf("%w: event %s start: %v", ErrInvalidResponse, event.Id, err)
	}
	end, err := time.Parse(time.RFC3339, event.End.DateTime)
	if err != nil {
		return nil, fmt.Errorf("%w: event %s end: %v", ErrInvalidResponse, event.Id, err)
	}

	appt := &domain.Appointment{
		EventID:  event.Id,
		Interval: domain.TimeInterval{Start: start, End: end},
		Status:   domain.StatusConfirmed,
	}

	if event.Status == "cancelled" {
		appt.Status = domain.StatusCancelled
	}
	if event.Description != "" {
		notes := event.Description
		appt.Notes = &notes
	}
	if event.ExtendedProperties != nil && event.ExtendedProperties.Private != nil {
		appt.CustomerName = event.ExtendedProperties.Private[propCustomerName]
		appt.CustomerPhone = event.ExtendedProperties.Private[propCustomerPhone]
		appt.Type = event.ExtendedProperties.Private[propType]
	}
	if appt.Type == "" {
		appt.Type = event.Summary
	}

	if event.Created != "" {
		if created, err := time.Parse(time.RFC3339, event.Created); err == nil {
			appt.CreatedAt = created
		}
	}
	if event.Updated != "" {
		if updated, err := time.Parse(time.RFC3339, event.Updated); err == nil {
			appt.UpdatedAt = updated
		}
	}

	return appt, nil
}

// fromTimePeriod конвертирует busy-период freebusy ответа в интервал
func fromTimePeriod(period *calendar.TimePeriod) (domain.TimeInterval, error) {
	start, err := time.Parse(time.RFC3339, period.Start)
	if err != nil {
		return domain.TimeInterval{}, fmt.Errorf("%w: busy period start %q: %v", ErrInvalidResponse, period.Start, err)
	}
	end, err := time.Parse(time.RFC3339, period.End)
	if err != nil {
		return domain.TimeInterval{}, fmt.Errorf("%w: busy period end %q: %v", ErrInvalidResponse, period.End, err)
	}
	return domain.TimeInterval{Start: start, End: end}, nil
}
