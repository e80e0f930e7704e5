package next_available

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

type fakeBusySource struct {
	intervals []domain.TimeInterval
	err       error
	calls     int
	windows   []domain.TimeInterval
}

func (f *fakeBusySource) FetchBusyIntervals(_ context.Context, from, to time.Time) ([]domain.TimeInterval, error) {
	f.calls++
	f.windows = append(f.windows, domain.TimeInterval{Start: from, End: to})
	return f.intervals, f.err
}

type fixedTimeProvider struct {
	now time.Time
}

func (f *fixedTimeProvider) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func athens(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("Europe/Athens")
	require.NoError(t, err)
	return loc
}

func mustTime(t *testing.T, s string) types.TimeString {
	t.Helper()
	ts, err := types.NewTimeStringFromString(s)
	require.NoError(t, err)
	return ts
}

func newTestUseCase(t *testing.T, source *fakeBusySource, now time.Time, days []time.Weekday) *UseCase {
	t.Helper()

	uc := NewUseCase(
		source,
		domain.WorkingHoursPolicy{
			Days:     days,
			Open:     mustTime(t, "09:00"),
			Close:    mustTime(t, "18:00"),
			Location: athens(t),
		},
		domain.SlotPolicy{DurationMinutes: 30},
		domain.PreferenceWindows{
			MorningEnd:   mustTime(t, "12:00"),
			EveningStart: mustTime(t, "17:00"),
		},
		domain.DefaultSearchHorizonDays,
		nopLogger{},
	)
	uc.timeProvider = &fixedTimeProvider{now: now}
	return uc
}

func allWeekdays() []time.Weekday {
	return []time.Weekday{time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday}
}

func TestExecute_ReturnsRequestedCountAscending(t *testing.T) {
	loc := athens(t)
	// понедельник, 08:00 - до открытия
	now := time.Date(2025, 11, 17, 8, 0, 0, 0, loc)

	uc := newTestUseCase(t, &fakeBusySource{}, now, allWeekdays())

	resp, err := uc.Execute(context.Background(), &Request{Count: 5})
	require.NoError(t, err)

	require.Len(t, resp.Slots, 5)
	assert.True(t, resp.Slots[0].Start.Equal(time.Date(2025, 11, 17, 9, 0, 0, 0, loc)))
	for i := 1; i < len(resp.Slots); i++ {
		assert.True(t, resp.Slots[i-1].Start.Before(resp.Slots[i].Start))
	}
}

func TestExecute_CountClampedToMax(t *testing.T) {
	loc := athens(t)
	now := time.Date(2025, 11, 17, 8, 0, 0, 0, loc)

	uc := newTestUseCase(t, &fakeBusySource{}, now, allWeekdays())

	resp, err := uc.Execute(context.Background(), &Request{Count: 25})
	require.NoError(t, err)
	assert.Len(t, resp.Slots, domain.MaxNextSlotsCount)
}

func TestExecute_NonPositiveCountRejected(t *testing.T) {
	loc := athens(t)
	now := time.Date(2025, 11, 17, 8, 0, 0, 0, loc)
	uc := newTestUseCase(t, &fakeBusySource{}, now, allWeekdays())

	_, err := uc.Execute(context.Background(), &Request{Count: -1})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidCount))
}

func TestExecute_PastFromClampedToNow(t *testing.T) {
	loc := athens(t)
	now := time.Date(2025, 11, 17, 14, 0, 0, 0, loc)

	uc := newTestUseCase(t, &fakeBusySource{}, now, allWeekdays())

	resp, err := uc.Execute(context.Background(), &Request{
		From:  now.AddDate(0, 0, -7),
		Count: 1,
	})
	require.NoError(t, err)

	assert.True(t, resp.From.Equal(now))
	require.Len(t, resp.Slots, 1)
	assert.True(t, resp.Slots[0].Start.Equal(time.Date(2025, 11, 17, 14, 30, 0, 0, loc)))
}

func TestExecute_ExpandsSearchAcrossWeeks(t *testing.T) {
	loc := athens(t)
	// рабочий день только понедельник; стартуем во вторник - ближайшие
	// слоты лежат в следующем недельном окне
	now := time.Date(2025, 11, 18, 8, 0, 0, 0, loc)

	source := &fakeBusySource{}
	uc := newTestUseCase(t, source, now, []time.Weekday{time.Monday})

	resp, err := uc.Execute(context.Background(), &Request{Count: 3})
	require.NoError(t, err)

	require.Len(t, resp.Slots, 3)
	assert.True(t, resp.Slots[0].Start.Equal(time.Date(2025, 11, 24, 9, 0, 0, 0, loc)))
	// первое окно содержит понедельник 24-го, дальше идти не пришлось
	assert.Equal(t, 1, source.calls)
}

func TestExecute_WindowsTileWithoutDuplicates(t *testing.T) {
	loc := athens(t)
	// короткий рабочий день раз в неделю: набор идёт через много окон,
	// и слоты граничных дней не должны попадать в два окна сразу
	now := time.Date(2025, 11, 18, 8, 0, 0, 0, loc)

	source := &fakeBusySource{}
	uc := NewUseCase(
		source,
		domain.WorkingHoursPolicy{
			Days:     []time.Weekday{time.Monday},
			Open:     mustTime(t, "09:00"),
			Close:    mustTime(t, "10:00"),
			Location: loc,
		},
		domain.SlotPolicy{DurationMinutes: 30},
		domain.PreferenceWindows{
			MorningEnd:   mustTime(t, "12:00"),
			EveningStart: mustTime(t, "17:00"),
		},
		domain.DefaultSearchHorizonDays,
		nopLogger{},
	)
	uc.timeProvider = &fixedTimeProvider{now: now}

	resp, err := uc.Execute(context.Background(), &Request{Count: 10})
	require.NoError(t, err)

	// по два слота на понедельник, 5 понедельников
	require.Len(t, resp.Slots, 10)
	for i := 1; i < len(resp.Slots); i++ {
		assert.True(t, resp.Slots[i-1].Start.Before(resp.Slots[i].Start),
			"slots %d and %d are not strictly ascending", i-1, i)
	}
	assert.True(t, resp.Slots[0].Start.Equal(time.Date(2025, 11, 24, 9, 0, 0, 0, loc)))
	assert.True(t, resp.Slots[1].Start.Equal(time.Date(2025, 11, 24, 9, 30, 0, 0, loc)))
	assert.True(t, resp.Slots[9].Start.Equal(time.Date(2025, 12, 22, 9, 30, 0, 0, loc)))

	// окна запросов занятости стыкуются без перекрытия
	for i := 1; i < len(source.windows); i++ {
		assert.True(t, source.windows[i-1].End.Equal(source.windows[i].Start),
			"busy windows %d and %d do not tile", i-1, i)
	}
}

func TestExecute_EmptyHorizonIsSuccess(t *testing.T) {
	loc := athens(t)
	now := time.Date(2025, 11, 17, 8, 0, 0, 0, loc)

	// рабочих дней нет вовсе - кандидатов не будет ни в одном окне
	source := &fakeBusySource{}
	uc := newTestUseCase(t, source, now, nil)

	resp, err := uc.Execute(context.Background(), &Request{Count: 5})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
	// без кандидатов источник занятости не опрашивается
	assert.Equal(t, 0, source.calls)
}

func TestExecute_MorningPreferenceAcrossDays(t *testing.T) {
	loc := athens(t)
	// понедельник 13:00: утро сегодняшнего дня уже прошло
	now := time.Date(2025, 11, 17, 13, 0, 0, 0, loc)

	uc := newTestUseCase(t, &fakeBusySource{}, now, allWeekdays())

	resp, err := uc.Execute(context.Background(), &Request{Count: 3, Preference: "morning"})
	require.NoError(t, err)

	require.Len(t, resp.Slots, 3)
	for _, s := range resp.Slots {
		assert.Less(t, s.Start.In(loc).Hour(), 12)
	}
	// первый утренний слот - завтра в 09:00
	assert.True(t, resp.Slots[0].Start.Equal(time.Date(2025, 11, 18, 9, 0, 0, 0, loc)))
}

func TestExecute_SourceUnavailable(t *testing.T) {
	loc := athens(t)
	now := time.Date(2025, 11, 17, 8, 0, 0, 0, loc)

	source := &fakeBusySource{err: errors.New("dial tcp: connection refused")}
	uc := newTestUseCase(t, source, now, allWeekdays())

	_, err := uc.Execute(context.Background(), &Request{Count: 5})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrSourceUnavailable))
}
