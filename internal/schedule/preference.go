package schedule

import (
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// FilterPreference оставляет только слоты, начало которых попадает в
// запрошенное окно времени суток. Классификация идет по времени НАЧАЛА
// слота в таймзоне рабочих часов. PreferenceAny возвращает вход без
// изменений.
func FilterPreference(
	slots []domain.TimeInterval,
	pref domain.TimePreference,
	windows domain.PreferenceWindows,
	loc *time.Location,
) []domain.TimeInterval {
	if pref == domain.PreferenceAny {
		return append([]domain.TimeInterval(nil), slots...)
	}

	result := make([]domain.TimeInterval, 0, len(slots))
	for _, s := range slots {
		if windows.Matches(pref, s.Start.In(loc)) {
			result = append(result, s)
		}
	}
	return result
}
