package next_available

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/internal/schedule"
)

// UseCase use case поиска ближайших свободных слотов.
// Период поиска расширяется понедельно от точки старта до горизонта,
// пока не наберется нужное количество слотов.
type UseCase struct {
	busySource   BusyIntervalSource
	workingHours domain.WorkingHoursPolicy
	slotPolicy   domain.SlotPolicy
	windows      domain.PreferenceWindows
	horizonDays  int
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	busySource BusyIntervalSource,
	workingHours domain.WorkingHoursPolicy,
	slotPolicy domain.SlotPolicy,
	windows domain.PreferenceWindows,
	horizonDays int,
	logger Logger,
) *UseCase {
	if horizonDays <= 0 {
		horizonDays = domain.DefaultSearchHorizonDays
	}
	return &UseCase{
		busySource:   busySource,
		workingHours: workingHours,
		slotPolicy:   slotPolicy,
		windows:      windows,
		horizonDays:  horizonDays,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case поиска ближайших слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("NextAvailable: from=%s, count=%d, preference=%q",
		req.From.Format(time.RFC3339), req.Count, req.Preference)

	// 1. Валидация и нормализация запроса
	pref, count, err := normalizeRequest(req)
	if err != nil {
		uc.logger.Warn("NextAvailable: validation failed: %v", err)
		return nil, err
	}

	// 2. Точка старта поиска: не раньше текущего момента
	now := uc.timeProvider.Now()
	from := req.From
	if from.IsZero() || from.Before(now) {
		from = now
	}

	horizon := from.AddDate(0, 0, uc.horizonDays)
	found := make([]domain.TimeInterval, 0, count)

	// 3. Расширяем окно поиска по неделе за раз, чтобы не запрашивать
	// занятость на весь горизонт ради пары ближайших слотов. Окна
	// полуоткрытые и выравниваются по полуночи, чтобы стыковались без
	// перекрытия: слот не пересекает полночь и попадает ровно в одно окно
	loc := uc.workingHours.Location
	for windowStart := from; windowStart.Before(horizon) && len(found) < count; {
		windowEnd := startOfDay(windowStart, loc).AddDate(0, 0, domain.SearchWindowDays)
		if windowEnd.After(horizon) {
			windowEnd = horizon
		}

		candidates := schedule.Generate(windowStart, windowEnd, uc.workingHours, uc.slotPolicy)
		if len(candidates) > 0 {
			busy, err := uc.busySource.FetchBusyIntervals(ctx, windowStart, windowEnd)
			if err != nil {
				uc.logger.Error("NextAvailable: failed to fetch busy intervals: %v", err)
				return nil, fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
			}

			free := schedule.FilterBusy(candidates, busy)
			free = schedule.DropElapsed(free, now)
			free = schedule.FilterPreference(free, pref, uc.windows, uc.workingHours.Location)

			for _, s := range free {
				found = append(found, s)
				if len(found) == count {
					break
				}
			}
		}

		windowStart = windowEnd
	}

	uc.logger.Info("NextAvailable: found %d of %d requested slots", len(found), count)

	return &Response{
		From:       from,
		Preference: pref,
		Slots:      found,
	}, nil
}

// startOfDay возвращает полночь календарного дня t в таймзоне loc
func startOfDay(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}
