package create_appointment

import (
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// Request модель запроса на создание записи
type Request struct {
	CustomerName  string
	CustomerPhone string
	Type          string    // Тип визита: checkup, cleaning, treatment...
	Start         time.Time // Начало записи
	Notes         *string   // Свободные заметки, опционально
}

// Response модель ответа с созданной записью
type Response struct {
	EventID       string
	CustomerName  string
	CustomerPhone string
	Type          string
	Interval      domain.TimeInterval
	Status        string
	Notes         *string
	CreatedAt     time.Time
}
