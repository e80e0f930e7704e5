package next_available

import (
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// Request модель запроса ближайших свободных слотов
type Request struct {
	From       time.Time // Начало поиска; нулевое значение = сейчас
	Count      int       // Сколько слотов вернуть; 0 = значение по умолчанию
	Preference string    // Предпочтение по времени суток, пустое = любое
}

// Response модель ответа с ближайшими свободными слотами
type Response struct {
	From       time.Time             // Фактическое начало поиска
	Preference domain.TimePreference // Нормализованное предпочтение
	Slots      []domain.TimeInterval // До Count ближайших слотов по возрастанию начала
}
