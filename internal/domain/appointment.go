package domain

import "time"

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCompleted AppointmentStatus = "completed"
	StatusCancelled AppointmentStatus = "cancelled"
	StatusNoShow    AppointmentStatus = "no_show"
)

// Appointment represents a booked calendar event.
// EventID is the identifier assigned by the calendar provider: an opaque
// Google Calendar event id or a locally generated UUID, depending on which
// provider the service is wired to.
type Appointment struct {
	EventID       string
	CustomerName  string
	CustomerPhone string
	Type          string // e.g. checkup, cleaning, treatment
	Notes         *string
	Interval      TimeInterval
	Status        AppointmentStatus

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the appointment still occupies calendar time
func (a *Appointment) IsActive() bool {
	return a.Status != StatusCancelled && a.Status != StatusNoShow
}

// CanBeCancelled returns true if the appointment can be cancelled
func (a *Appointment) CanBeCancelled() bool {
	return a.Status == StatusConfirmed
}

// CanBeRescheduled returns true if the appointment can be moved to a new slot
func (a *Appointment) CanBeRescheduled() bool {
	return a.Status == StatusConfirmed
}

// UpcomingFilter фильтр для выборки предстоящих записей
type UpcomingFilter struct {
	From            time.Time
	To              time.Time
	Limit           int
	IncludeInactive bool
}
