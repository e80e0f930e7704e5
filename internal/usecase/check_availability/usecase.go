package check_availability

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/internal/schedule"
)

// UseCase use case проверки доступности: какие слоты свободны в периоде
type UseCase struct {
	busySource   BusyIntervalSource
	workingHours domain.WorkingHoursPolicy
	slotPolicy   domain.SlotPolicy
	windows      domain.PreferenceWindows
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	busySource BusyIntervalSource,
	workingHours domain.WorkingHoursPolicy,
	slotPolicy domain.SlotPolicy,
	windows domain.PreferenceWindows,
	logger Logger,
) *UseCase {
	return &UseCase{
		busySource:   busySource,
		workingHours: workingHours,
		slotPolicy:   slotPolicy,
		windows:      windows,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case проверки доступности
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CheckAvailability: from=%s, to=%s, preference=%q",
		req.From.Format(time.RFC3339), req.To.Format(time.RFC3339), req.Preference)

	// 1. Валидация периода и предпочтения
	pref, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("CheckAvailability: validation failed: %v", err)
		return nil, err
	}

	// 2. Генерируем слоты-кандидаты по рабочим часам
	candidates := schedule.Generate(req.From, req.To, uc.workingHours, uc.slotPolicy)
	if len(candidates) == 0 {
		uc.logger.Info("CheckAvailability: no candidate slots in range (outside working hours)")
		return uc.response(req, pref, nil), nil
	}

	// 3. Получаем занятые интервалы из источника
	busy, err := uc.busySource.FetchBusyIntervals(ctx, req.From, req.To)
	if err != nil {
		uc.logger.Error("CheckAvailability: failed to fetch busy intervals: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}

	// 4. Убираем конфликтующие с занятостью слоты
	free := schedule.FilterBusy(candidates, busy)

	// 5. Убираем прошедшие слоты
	free = schedule.DropElapsed(free, uc.timeProvider.Now())

	// 6. Фильтруем по времени суток
	free = schedule.FilterPreference(free, pref, uc.windows, uc.workingHours.Location)

	uc.logger.Info("CheckAvailability: %d candidates, %d busy intervals, %d free slots",
		len(candidates), len(busy), len(free))

	return uc.response(req, pref, free), nil
}

func (uc *UseCase) response(req *Request, pref domain.TimePreference, slots []domain.TimeInterval) *Response {
	if slots == nil {
		slots = []domain.TimeInterval{}
	}
	return &Response{
		From:       req.From,
		To:         req.To,
		Preference: pref,
		Slots:      slots,
	}
}
