package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

func interval(t *testing.T, loc *time.Location, day time.Time, from, to string) domain.TimeInterval {
	t.Helper()
	parse := func(s string) time.Time {
		parsed, err := time.Parse("15:04", s)
		require.NoError(t, err)
		return time.Date(day.Year(), day.Month(), day.Day(), parsed.Hour(), parsed.Minute(), 0, 0, loc)
	}
	return domain.TimeInterval{Start: parse(from), End: parse(to)}
}

func TestFilterBusy_BusyHourRemovesTwoSlots(t *testing.T) {
	wh := athensPolicy(t)
	sp := domain.SlotPolicy{DurationMinutes: 30}

	day := time.Date(2025, 11, 18, 0, 0, 0, 0, wh.Location)
	candidates := Generate(day, day.AddDate(0, 0, 1), wh, sp)
	require.Len(t, candidates, 18)

	busy := []domain.TimeInterval{interval(t, wh.Location, day, "10:00", "11:00")}

	free := FilterBusy(candidates, busy)

	// Выпадают ровно 10:00–10:30 и 10:30–11:00; граничные слоты остаются
	require.Len(t, free, 16)
	for _, s := range free {
		assert.False(t, s.Overlaps(busy[0]), "slot %s overlaps busy interval", s)
	}
	assert.Contains(t, free, interval(t, wh.Location, day, "09:30", "10:00"))
	assert.Contains(t, free, interval(t, wh.Location, day, "11:00", "11:30"))
	assert.NotContains(t, free, interval(t, wh.Location, day, "10:00", "10:30"))
	assert.NotContains(t, free, interval(t, wh.Location, day, "10:30", "11:00"))
}

func TestFilterBusy_HalfOpenSemantics(t *testing.T) {
	loc := time.UTC
	day := time.Date(2025, 11, 18, 0, 0, 0, 0, loc)
	slot := interval(t, loc, day, "09:00", "09:30")

	tests := []struct {
		name string
		busy domain.TimeInterval
		kept bool
	}{
		{"busy starts when slot ends", interval(t, loc, day, "09:30", "10:00"), true},
		{"busy ends when slot starts", interval(t, loc, day, "08:30", "09:00"), true},
		{"busy inside slot", interval(t, loc, day, "09:10", "09:20"), false},
		{"busy covers slot", interval(t, loc, day, "08:00", "10:00"), false},
		{"partial overlap from the right", interval(t, loc, day, "09:15", "09:45"), false},
		{"partial overlap from the left", interval(t, loc, day, "08:45", "09:15"), false},
		{"no overlap at all", interval(t, loc, day, "12:00", "13:00"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			free := FilterBusy([]domain.TimeInterval{slot}, []domain.TimeInterval{tt.busy})
			if tt.kept {
				assert.Len(t, free, 1)
			} else {
				assert.Empty(t, free)
			}
		})
	}
}

func TestFilterBusy_UnsortedOverlappingBusyInput(t *testing.T) {
	loc := time.UTC
	day := time.Date(2025, 11, 18, 0, 0, 0, 0, loc)

	candidates := []domain.TimeInterval{
		interval(t, loc, day, "09:00", "09:30"),
		interval(t, loc, day, "09:30", "10:00"),
		interval(t, loc, day, "10:00", "10:30"),
		interval(t, loc, day, "10:30", "11:00"),
	}

	// Провайдер не гарантирует ни порядок, ни непересекаемость busy-интервалов
	busy := []domain.TimeInterval{
		interval(t, loc, day, "10:15", "10:45"),
		interval(t, loc, day, "09:40", "10:20"),
		interval(t, loc, day, "09:35", "09:50"),
	}

	free := FilterBusy(candidates, busy)

	require.Len(t, free, 1)
	assert.Equal(t, interval(t, loc, day, "09:00", "09:30"), free[0])
}

func TestFilterBusy_NoBusyKeepsEverything(t *testing.T) {
	wh := athensPolicy(t)
	sp := domain.SlotPolicy{DurationMinutes: 30}

	day := time.Date(2025, 11, 18, 0, 0, 0, 0, wh.Location)
	candidates := Generate(day, day.AddDate(0, 0, 1), wh, sp)

	free := FilterBusy(candidates, nil)
	assert.Equal(t, candidates, free)
}
