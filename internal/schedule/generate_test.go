package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

func athensPolicy(t *testing.T) domain.WorkingHoursPolicy {
	t.Helper()
	loc, err := time.LoadLocation("Europe/Athens")
	require.NoError(t, err)

	return domain.WorkingHoursPolicy{
		Days:     []time.Weekday{time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday},
		Open:     "09:00",
		Close:    "18:00",
		Location: loc,
	}
}

func TestGenerate_SingleWorkingDay(t *testing.T) {
	wh := athensPolicy(t)
	sp := domain.SlotPolicy{DurationMinutes: 30}

	// 2025-11-18 — вторник
	day := time.Date(2025, 11, 18, 0, 0, 0, 0, wh.Location)

	slots := Generate(day, day.AddDate(0, 0, 1), wh, sp)

	// 09:00, 09:30, ..., 17:30 — последний полный слот 17:30–18:00
	require.Len(t, slots, 18)
	assert.Equal(t, time.Date(2025, 11, 18, 9, 0, 0, 0, wh.Location), slots[0].Start)
	assert.Equal(t, time.Date(2025, 11, 18, 17, 30, 0, 0, wh.Location), slots[17].Start)
	assert.Equal(t, time.Date(2025, 11, 18, 18, 0, 0, 0, wh.Location), slots[17].End)
}

func TestGenerate_SlotInvariants(t *testing.T) {
	wh := athensPolicy(t)
	sp := domain.SlotPolicy{DurationMinutes: 30}

	start := time.Date(2025, 11, 17, 0, 0, 0, 0, wh.Location)
	end := time.Date(2025, 11, 23, 0, 0, 0, 0, wh.Location)

	slots := Generate(start, end, wh, sp)

	// Пн–Пт по 18 слотов, суббота и воскресенье пропущены
	require.Len(t, slots, 5*18)

	dayOpen := wh.Open.Minutes()
	dayClose := wh.Close.Minutes()
	for i, s := range slots {
		assert.Equal(t, sp.Duration(), s.Duration(), "slot %d duration", i)

		local := s.Start.In(wh.Location)
		startMinutes := local.Hour()*60 + local.Minute()
		assert.GreaterOrEqual(t, startMinutes, dayOpen, "slot %d starts before opening", i)

		localEnd := s.End.In(wh.Location)
		endMinutes := localEnd.Hour()*60 + localEnd.Minute()
		assert.LessOrEqual(t, endMinutes, dayClose, "slot %d ends after closing", i)

		assert.True(t, wh.IsWorkingDay(local.Weekday()), "slot %d on a non-working day", i)

		if i > 0 {
			assert.False(t, slots[i-1].Overlaps(s), "slots %d and %d overlap", i-1, i)
			assert.True(t, slots[i-1].Start.Before(s.Start), "slots %d and %d out of order", i-1, i)
		}
	}
}

func TestGenerate_PartialRemainderDiscarded(t *testing.T) {
	wh := athensPolicy(t)
	wh.Close = "10:15"
	sp := domain.SlotPolicy{DurationMinutes: 30}

	day := time.Date(2025, 11, 18, 0, 0, 0, 0, wh.Location)
	slots := Generate(day, day.AddDate(0, 0, 1), wh, sp)

	// 09:00–09:30 и 09:30–10:00; остаток 10:00–10:15 короче слота и не эмитится
	require.Len(t, slots, 2)
	assert.Equal(t, time.Date(2025, 11, 18, 10, 0, 0, 0, wh.Location), slots[1].End)
}

func TestGenerate_RangeEndClipsBoundaryDay(t *testing.T) {
	wh := athensPolicy(t)
	sp := domain.SlotPolicy{DurationMinutes: 30}

	// Вторник целиком плюс среда до полудня
	from := time.Date(2025, 11, 18, 0, 0, 0, 0, wh.Location)
	to := time.Date(2025, 11, 19, 12, 0, 0, 0, wh.Location)

	slots := Generate(from, to, wh, sp)

	// 18 слотов вторника + 6 слотов среды (09:00–12:00)
	require.Len(t, slots, 24)
	assert.Equal(t, time.Date(2025, 11, 19, 11, 30, 0, 0, wh.Location), slots[23].Start)
	for i, s := range slots {
		assert.False(t, s.End.After(to), "slot %d ends after range end", i)
	}
}

func TestGenerate_RangeEndAtMidnightExcludesNextDay(t *testing.T) {
	wh := athensPolicy(t)
	sp := domain.SlotPolicy{DurationMinutes: 30}

	from := time.Date(2025, 11, 18, 0, 0, 0, 0, wh.Location)
	to := from.AddDate(0, 0, 1)

	slots := Generate(from, to, wh, sp)

	// Полночь среды — исключённая граница: слоты среды не эмитятся
	require.Len(t, slots, 18)
	assert.Equal(t, time.Date(2025, 11, 18, 17, 30, 0, 0, wh.Location), slots[17].Start)
}

func TestGenerate_RangeStartClipsMorning(t *testing.T) {
	wh := athensPolicy(t)
	sp := domain.SlotPolicy{DurationMinutes: 30}

	from := time.Date(2025, 11, 18, 14, 0, 0, 0, wh.Location)
	to := time.Date(2025, 11, 19, 0, 0, 0, 0, wh.Location)

	slots := Generate(from, to, wh, sp)

	// Слоты до 14:00 лежат вне диапазона и не эмитятся
	require.Len(t, slots, 8)
	assert.Equal(t, time.Date(2025, 11, 18, 14, 0, 0, 0, wh.Location), slots[0].Start)
}

func TestGenerate_EqualBoundariesYieldEmpty(t *testing.T) {
	wh := athensPolicy(t)
	sp := domain.SlotPolicy{DurationMinutes: 30}

	at := time.Date(2025, 11, 18, 10, 0, 0, 0, wh.Location)

	// Пустой полуоткрытый диапазон — пустой результат, не ошибка
	assert.Empty(t, Generate(at, at, wh, sp))
}

func TestGenerate_NonWorkingDayYieldsEmpty(t *testing.T) {
	wh := athensPolicy(t)
	sp := domain.SlotPolicy{DurationMinutes: 30}

	// 2025-11-16 — воскресенье
	day := time.Date(2025, 11, 16, 0, 0, 0, 0, wh.Location)

	slots := Generate(day, day.AddDate(0, 0, 1), wh, sp)
	assert.Empty(t, slots)
}

func TestGenerate_DayTooShortForOneSlot(t *testing.T) {
	wh := athensPolicy(t)
	wh.Close = "09:20"
	sp := domain.SlotPolicy{DurationMinutes: 30}

	day := time.Date(2025, 11, 18, 0, 0, 0, 0, wh.Location)

	// Рабочий день короче слота — пустой результат, не ошибка
	slots := Generate(day, day.AddDate(0, 0, 1), wh, sp)
	assert.Empty(t, slots)
}

func TestGenerate_DSTTransitionDay(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Athens")
	require.NoError(t, err)

	wh := domain.WorkingHoursPolicy{
		Days:     []time.Weekday{time.Sunday},
		Open:     "09:00",
		Close:    "18:00",
		Location: loc,
	}
	sp := domain.SlotPolicy{DurationMinutes: 30}

	// 2026-03-29 — воскресенье перехода на летнее время (03:00 -> 04:00).
	// Рабочие часы целиком после перехода: по стенным часам день обычный.
	day := time.Date(2026, 3, 29, 0, 0, 0, 0, loc)

	slots := Generate(day, day.AddDate(0, 0, 1), wh, sp)

	require.Len(t, slots, 18)
	for i, s := range slots {
		assert.Equal(t, 30*time.Minute, s.Duration(), "slot %d duration", i)
	}
	assert.Equal(t, "09:00", slots[0].Start.In(loc).Format("15:04"))
	assert.Equal(t, "17:30", slots[17].Start.In(loc).Format("15:04"))
}

func TestDropElapsed(t *testing.T) {
	wh := athensPolicy(t)
	sp := domain.SlotPolicy{DurationMinutes: 30}

	day := time.Date(2025, 11, 18, 0, 0, 0, 0, wh.Location)
	slots := Generate(day, day.AddDate(0, 0, 1), wh, sp)

	// Запрос на "сегодня" в середине рабочего дня: всё, что началось
	// в 14:00 и раньше, больше не предлагается.
	now := time.Date(2025, 11, 18, 14, 0, 0, 0, wh.Location)
	remaining := DropElapsed(slots, now)

	require.Len(t, remaining, 7)
	assert.Equal(t, time.Date(2025, 11, 18, 14, 30, 0, 0, wh.Location), remaining[0].Start)
}
