package check_availability

import (
	"context"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// BusyIntervalSource интерфейс источника занятых интервалов календаря.
// Реализуется клиентом Google Calendar (freebusy) или локальным
// репозиторием записей.
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
