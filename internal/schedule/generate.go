// Package schedule contains the pure slot-computation pipeline: candidate
// generation from a working-hours template, busy-interval conflict filtering
// and time-of-day preference filtering. It performs no I/O; use cases feed it
// busy intervals fetched from a calendar provider.
package schedule

import (
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// Generate производит все возможные слоты фиксированной длины внутри рабочих
// часов для полуоткрытого диапазона [rangeStart, rangeEnd). Эмитятся только
// слоты, целиком лежащие в диапазоне: граница диапазона режет день так же,
// как и любой другой момент времени, поэтому покрытие кандидатов всегда
// совпадает с окном запроса занятости.
//
// Слоты внутри дня идут подряд от открытия с шагом в длину слота; слот,
// который закончился бы после закрытия, не эмитится (неполный остаток дня
// отбрасывается). Дни вне рабочего расписания пропускаются.
//
// Вся арифметика выполняется в таймзоне политики через time.Date, поэтому
// дни с переходом на летнее/зимнее время обрабатываются календарём, а не
// фиксированным смещением в 24 часа.
func Generate(rangeStart, rangeEnd time.Time, wh domain.WorkingHoursPolicy, sp domain.SlotPolicy) []domain.TimeInterval {
	slots := make([]domain.TimeInterval, 0)
	step := sp.Duration()

	for day := startOfDay(rangeStart, wh.Location); day.Before(rangeEnd); day = nextDay(day, wh.Location) {
		if !wh.IsWorkingDay(day.Weekday()) {
			continue
		}

		open := wh.Open.At(day, wh.Location)
		close := wh.Close.At(day, wh.Location)

		for cur := open; !cur.Add(step).After(close); cur = cur.Add(step) {
			end := cur.Add(step)
			if cur.Before(rangeStart) || end.After(rangeEnd) {
				continue
			}
			slots = append(slots, domain.TimeInterval{Start: cur, End: end})
		}
	}

	return slots
}

// DropElapsed убирает слоты, начинающиеся не позже момента now.
// Слот, стартующий ровно в now, предложить уже нельзя.
func DropElapsed(slots []domain.TimeInterval, now time.Time) []domain.TimeInterval {
	result := make([]domain.TimeInterval, 0, len(slots))
	for _, s := range slots {
		if s.Start.After(now) {
			result = append(result, s)
		}
	}
	return result
}

// startOfDay возвращает полночь календарного дня t в таймзоне loc
func startOfDay(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

// nextDay возвращает полночь следующего календарного дня
func nextDay(day time.Time, loc *time.Location) time.Time {
	y, m, d := day.Date()
	return time.Date(y, m, d+1, 0, 0, 0, 0, loc)
}
