package appointments

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/appointment"
	googleClient "github.com/m04kA/SMC-AvailabilityService/internal/integrations/googlecalendar"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/appointments/models"
)

// Service сервис управления существующими записями: просмотр, отмена,
// перенос, список предстоящих. Создание новых записей живет в отдельном
// usecase с транзакционной проверкой занятости.
type Service struct {
	store        AppointmentStore
	busySource   BusyIntervalSource
	workingHours domain.WorkingHoursPolicy
	slotPolicy   domain.SlotPolicy
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(
	store AppointmentStore,
	busySource BusyIntervalSource,
	workingHours domain.WorkingHoursPolicy,
	slotPolicy domain.SlotPolicy,
	logger Logger,
) *Service {
	return &Service{
		store:        store,
		busySource:   busySource,
		workingHours: workingHours,
		slotPolicy:   slotPolicy,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// GetByID получает запись по идентификатору события
func (s *Service) GetByID(ctx context.Context, eventID string) (*models.AppointmentResponse, error) {
	s.logger.Info("GetByID: fetching appointment event_id=%s", eventID)

	appt, err := s.fetch(ctx, eventID)
	if err != nil {
		return nil, err
	}

	return models.FromDomainAppointment(appt), nil
}

// Cancel отменяет запись с указанием причины
func (s *Service) Cancel(ctx context.Context, req *models.CancelAppointmentRequest) error {
	s.logger.Info("Cancel: cancelling appointment event_id=%s", req.EventID)

	if req.EventID == "" {
		return fmt.Errorf("%w: eventId is required", ErrInvalidInput)
	}

	appt, err := s.fetch(ctx, req.EventID)
	if err != nil {
		return err
	}

	if !appt.CanBeCancelled() {
		s.logger.Warn("Cancel: appointment event_id=%s in status %s cannot be cancelled", req.EventID, appt.Status)
		return ErrCannotCancel
	}

	if err := s.store.Cancel(ctx, req.EventID, req.CancellationReason); err != nil {
		return s.mapStoreError("Cancel", req.EventID, err)
	}

	s.logger.Info("Cancel: successfully cancelled appointment event_id=%s", req.EventID)
	return nil
}

// Reschedule переносит запись на новое время.
// Новый интервал проверяется на попадание в рабочие часы и на конфликт
// с другими записями; собственный интервал записи конфликтом не считается.
func (s *Service) Reschedule(ctx context.Context, req *models.RescheduleAppointmentRequest) (*models.AppointmentResponse, error) {
	s.logger.Info("Reschedule: moving appointment event_id=%s to %s",
		req.EventID, req.NewStart.Format(time.RFC3339))

	if req.EventID == "" {
		return nil, fmt.Errorf("%w: eventId is required", ErrInvalidInput)
	}

	now := s.timeProvider.Now()
	if req.NewStart.IsZero() || !req.NewStart.After(now) {
		return nil, fmt.Errorf("%w: new start time must be in the future", ErrInvalidInput)
	}

	appt, err := s.fetch(ctx, req.EventID)
	if err != nil {
		return nil, err
	}

	if !appt.CanBeRescheduled() {
		s.logger.Warn("Reschedule: appointment event_id=%s in status %s cannot be rescheduled", req.EventID, appt.Status)
		return nil, ErrCannotReschedule
	}

	newInterval := domain.TimeInterval{
		Start: req.NewStart,
		End:   req.NewStart.Add(s.slotPolicy.Duration()),
	}

	if err := s.validateWorkingHours(newInterval); err != nil {
		s.logger.Warn("Reschedule: working hours check failed: %v", err)
		return nil, err
	}

	busy, err := s.busySource.FetchBusyIntervals(ctx, newInterval.Start, newInterval.End)
	if err != nil {
		s.logger.Error("Reschedule: failed to fetch busy intervals: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}

	for _, b := range busy {
		// Занятость от текущего интервала самой записи не мешает переносу
		if sameInterval(b, appt.Interval) {
			continue
		}
		if newInterval.Overlaps(b) {
			s.logger.Warn("Reschedule: new slot %s already taken", newInterval)
			return nil, ErrSlotTaken
		}
	}

	updated, err := s.store.Reschedule(ctx, req.EventID, newInterval)
	if err != nil {
		return nil, s.mapStoreError("Reschedule", req.EventID, err)
	}

	s.logger.Info("Reschedule: successfully moved appointment event_id=%s", req.EventID)
	return models.FromDomainAppointment(updated), nil
}

// ListUpcoming возвращает предстоящие записи на ближайшие дни
func (s *Service) ListUpcoming(ctx context.Context, req *models.ListUpcomingRequest) (*models.AppointmentListResponse, error) {
	days := req.Days
	if days <= 0 {
		days = domain.DefaultRangeDays
	}
	if days > domain.MaxUpcomingDays {
		days = domain.MaxUpcomingDays
	}

	limit := req.Limit
	if limit <= 0 || limit > domain.MaxUpcomingResults {
		limit = domain.MaxUpcomingResults
	}

	now := s.timeProvider.Now()
	to := now.AddDate(0, 0, days)

	s.logger.Info("ListUpcoming: fetching appointments for %d days, limit=%d", days, limit)

	appts, err := s.store.ListRange(ctx, now, to, limit)
	if err != nil {
		s.logger.Error("ListUpcoming: store error: %v", err)
		return nil, s.mapStoreError("ListUpcoming", "", err)
	}

	s.logger.Info("ListUpcoming: found %d upcoming appointments", len(appts))
	return models.FromDomainAppointmentList(appts), nil
}

// fetch достает запись и приводит ошибки хранилища к ошибкам сервиса
func (s *Service) fetch(ctx context.Context, eventID string) (*domain.Appointment, error) {
	appt, err := s.store.GetByID(ctx, eventID)
	if err != nil {
		return nil, s.mapStoreError("GetByID", eventID, err)
	}
	return appt, nil
}

func (s *Service) mapStoreError(operation, eventID string, err error) error {
	switch {
	case errors.Is(err, appointmentRepo.ErrAppointmentNotFound),
		errors.Is(err, googleClient.ErrEventNotFound):
		s.logger.Warn("%s: appointment event_id=%s not found", operation, eventID)
		return ErrAppointmentNotFound
	case errors.Is(err, googleClient.ErrUnavailable),
		errors.Is(err, googleClient.ErrUnauthorized):
		s.logger.Error("%s: calendar unavailable for event_id=%s: %v", operation, eventID, err)
		return fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	default:
		s.logger.Error("%s: store error for event_id=%s: %v", operation, eventID, err)
		return fmt.Errorf("%w: %s - store error: %v", ErrInternal, operation, err)
	}
}

func (s *Service) validateWorkingHours(interval domain.TimeInterval) error {
	local := interval.Start.In(s.workingHours.Location)

	if !s.workingHours.IsWorkingDay(local.Weekday()) {
		return fmt.Errorf("%w: %s is not a working day", ErrOutsideWorkingHours, local.Weekday())
	}

	open := s.workingHours.Open.At(local, s.workingHours.Location)
	close := s.workingHours.Close.At(local, s.workingHours.Location)

	if interval.Start.Before(open) || interval.End.After(close) {
		return fmt.Errorf("%w: slot %s is outside %s-%s",
			ErrOutsideWorkingHours, interval, s.workingHours.Open, s.workingHours.Close)
	}

	return nil
}

func sameInterval(a, b domain.TimeInterval) bool {
	return a.Start.Equal(b.Start) && a.End.Equal(b.End)
}
