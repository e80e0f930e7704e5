package create_appointment

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// UseCase use case создания записи.
// Для локального провайдера защищается от двойного бронирования
// сериализуемой транзакцией: проверка занятости и вставка идут в одной
// транзакции с блокировкой строк. Для Google Calendar txManager равен nil -
// проверка и создание выполняются напрямую, гонка между двумя звонками
// в одну секунду считается допустимой (итоговая запись всё равно попадает
// в календарь и видна администратору).
type UseCase struct {
	store        AppointmentStore
	busySource   BusyIntervalSource
	workingHours domain.WorkingHoursPolicy
	slotPolicy   domain.SlotPolicy
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	store AppointmentStore,
	busySource BusyIntervalSource,
	workingHours domain.WorkingHoursPolicy,
	slotPolicy domain.SlotPolicy,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		store:        store,
		busySource:   busySource,
		workingHours: workingHours,
		slotPolicy:   slotPolicy,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания записи
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: customer=%s, type=%s, start=%s",
		req.CustomerName, req.Type, req.Start.Format(time.RFC3339))

	// 1. Валидация входных данных
	now := uc.timeProvider.Now()
	if err := validateRequest(req, now); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Интервал записи фиксированной длительности
	interval := domain.TimeInterval{
		Start: req.Start,
		End:   req.Start.Add(uc.slotPolicy.Duration()),
	}

	// 3. Проверяем попадание в рабочие часы
	if err := validateWithinWorkingHours(interval, uc.workingHours); err != nil {
		uc.logger.Warn("CreateAppointment: working hours check failed: %v", err)
		return nil, err
	}

	var result *domain.Appointment

	createFn := func(txCtx context.Context) error {
		// 4. Проверяем занятость интервала.
		// В транзакции запрос блокирует пересекающиеся строки (FOR UPDATE)
		busy, err := uc.busySource.FetchBusyIntervals(txCtx, interval.Start, interval.End)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to fetch busy intervals: %v", err)
			return fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
		}

		for _, b := range busy {
			if interval.Overlaps(b) {
				uc.logger.Warn("CreateAppointment: slot %s already taken", interval)
				return ErrSlotTaken
			}
		}

		// 5. Создаем запись
		appt := &domain.Appointment{
			CustomerName:  req.CustomerName,
			CustomerPhone: req.CustomerPhone,
			Type:          req.Type,
			Notes:         req.Notes,
			Interval:      interval,
			Status:        domain.StatusConfirmed,
		}

		created, err := uc.store.Create(txCtx, appt)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		result = created
		return nil
	}

	var err error
	if uc.txManager != nil {
		err = uc.txManager.DoSerializable(ctx, createFn)
	} else {
		err = createFn(ctx)
	}
	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateAppointment: successfully created appointment event_id=%s", result.EventID)

	return &Response{
		EventID:       result.EventID,
		CustomerName:  result.CustomerName,
		CustomerPhone: result.CustomerPhone,
		Type:          result.Type,
		Interval:      result.Interval,
		Status:        string(result.Status),
		Notes:         result.Notes,
		CreatedAt:     result.CreatedAt,
	}, nil
}
