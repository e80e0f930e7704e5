package next_available

import (
	"fmt"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// normalizeRequest валидирует запрос и приводит количество к допустимому.
// Неположительный Count - ошибка клиента (значение по умолчанию подставляет
// транспортный слой при отсутствии параметра). Завышенный Count молча
// ограничивается максимумом: голосовому боту незачем больше десяти вариантов.
func normalizeRequest(req *Request) (domain.TimePreference, int, error) {
	if req.Count <= 0 {
		return "", 0, fmt.Errorf("%w: count must be positive", ErrInvalidCount)
	}

	count := req.Count
	if count > domain.MaxNextSlotsCount {
		count = domain.MaxNextSlotsCount
	}

	pref, err := domain.ParseTimePreference(req.Preference)
	if err != nil {
		return "", 0, fmt.Errorf("%w: %q", ErrInvalidPreference, req.Preference)
	}

	return pref, count, nil
}
