package check_availability

import (
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// Request модель запроса на проверку доступности
type Request struct {
	From       time.Time // Начало периода поиска
	To         time.Time // Конец периода поиска (не включается)
	Preference string    // Предпочтение по времени суток: morning/afternoon/evening, пустое = любое
}

// Response модель ответа со списком свободных слотов
type Response struct {
	From       time.Time             // Период, на который запрашивались слоты
	To         time.Time
	Preference domain.TimePreference // Нормализованное предпочтение
	Slots      []domain.TimeInterval // Свободные слоты в хронологическом порядке
}
