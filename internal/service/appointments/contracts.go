package appointments

import (
	"context"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// AppointmentStore интерфейс хранилища записей.
// Реализуется клиентом Google Calendar и локальным репозиторием.
type AppointmentStore interface {
	GetByID(ctx context.Context, eventID string) (*domain.Appointment, error)
	Reschedule(ctx context.Context, eventID string, interval domain.TimeInterval) (*domain.Appointment, error)
	Cancel(ctx context.Context, eventID string, reason string) error
	ListRange(ctx context.Context, from, to time.Time, limit int) ([]*domain.Appointment, error)
}

// BusyIntervalSource интерфейс источника занятых интервалов календаря
type BusyIntervalSource interface {
	FetchBusyIntervals(ctx context.Context, from, to time.Time) ([]domain.TimeInterval, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
