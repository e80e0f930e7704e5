package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

func defaultWindows() domain.PreferenceWindows {
	return domain.PreferenceWindows{
		MorningEnd:   domain.DefaultMorningEnd,
		EveningStart: domain.DefaultEveningStart,
	}
}

func TestFilterPreference_Morning(t *testing.T) {
	wh := athensPolicy(t)
	sp := domain.SlotPolicy{DurationMinutes: 30}

	day := time.Date(2025, 11, 18, 0, 0, 0, 0, wh.Location)
	slots := Generate(day, day.AddDate(0, 0, 1), wh, sp)

	morning := FilterPreference(slots, domain.PreferenceMorning, defaultWindows(), wh.Location)

	// 09:00 ... 11:30 — старт строго раньше полудня
	require.Len(t, morning, 6)
	boundary := defaultWindows().MorningEnd.Minutes()
	for _, s := range morning {
		local := s.Start.In(wh.Location)
		assert.Less(t, local.Hour()*60+local.Minute(), boundary)
	}
}

func TestFilterPreference_AfternoonAndEvening(t *testing.T) {
	wh := athensPolicy(t)
	sp := domain.SlotPolicy{DurationMinutes: 30}

	day := time.Date(2025, 11, 18, 0, 0, 0, 0, wh.Location)
	slots := Generate(day, day.AddDate(0, 0, 1), wh, sp)

	afternoon := FilterPreference(slots, domain.PreferenceAfternoon, defaultWindows(), wh.Location)
	evening := FilterPreference(slots, domain.PreferenceEvening, defaultWindows(), wh.Location)

	// 12:00 ... 16:30 и 17:00, 17:30
	assert.Len(t, afternoon, 10)
	assert.Len(t, evening, 2)

	// Слот ровно на границе 12:00 относится к afternoon, ровно на 17:00 — к evening
	assert.Equal(t, "12:00", afternoon[0].Start.In(wh.Location).Format("15:04"))
	assert.Equal(t, "17:00", evening[0].Start.In(wh.Location).Format("15:04"))

	// Все три корзины вместе покрывают весь день без пересечений
	morning := FilterPreference(slots, domain.PreferenceMorning, defaultWindows(), wh.Location)
	assert.Equal(t, len(slots), len(morning)+len(afternoon)+len(evening))
}

func TestFilterPreference_AnyIsIdentity(t *testing.T) {
	wh := athensPolicy(t)
	sp := domain.SlotPolicy{DurationMinutes: 30}

	day := time.Date(2025, 11, 18, 0, 0, 0, 0, wh.Location)
	slots := Generate(day, day.AddDate(0, 0, 1), wh, sp)

	filtered := FilterPreference(slots, domain.PreferenceAny, defaultWindows(), wh.Location)
	assert.Equal(t, slots, filtered)
}
