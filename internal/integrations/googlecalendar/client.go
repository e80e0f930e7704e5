package googlecalendar

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

const integrationName = "google_calendar"

// Client клиент Google Calendar API.
// Реализует и источник busy-интервалов (freebusy), и хранилище записей
// (events insert/get/patch/delete/list).
type Client struct {
	svc        *calendar.Service
	calendarID string
	timeout    time.Duration
	log        Logger
	metrics    MetricsObserver
}

// NewClient создает клиент с service account credentials из JSON файла
func NewClient(ctx context.Context, credentialsPath, calendarID string, timeout time.Duration, log Logger, m MetricsObserver) (*Client, error) {
	svc, err := calendar.NewService(ctx,
		option.WithCredentialsFile(credentialsPath),
		option.WithScopes(calendar.CalendarScope),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create calendar service: %v", ErrInternal, err)
	}

	return NewClientWithService(svc, calendarID, timeout, log, m), nil
}

// NewClientWithService создает клиент поверх готового calendar.Service.
// Используется в тестах с подменённым endpoint.
func NewClientWithService(svc *calendar.Service, calendarID string, timeout time.Duration, log Logger, m MetricsObserver) *Client {
	return &Client{
		svc:        svc,
		calendarID: calendarID,
		timeout:    timeout,
		log:        log,
		metrics:    m,
	}
}

// FetchBusyIntervals запрашивает freebusy информацию календаря за период.
// Возвращает занятые интервалы, отсортированные провайдером по началу.
func (c *Client) FetchBusyIntervals(ctx context.Context, from, to time.Time) ([]domain.TimeInterval, error) {
	var resp *calendar.FreeBusyResponse

	err := c.do(ctx, "freebusy", func(callCtx context.Context) error {
		var callErr error
		resp, callErr = c.svc.Freebusy.Query(&calendar.FreeBusyRequest{
			TimeMin: from.Format(time.RFC3339),
			TimeMax: to.Format(time.RFC3339),
			Items:   []*calendar.FreeBusyRequestItem{{Id: c.calendarID}},
		}).Context(callCtx).Do()
		return callErr
	})
	if err != nil {
		return nil, err
	}

	info, ok := resp.Calendars[c.calendarID]
	if !ok {
		return nil, fmt.Errorf("%w: calendar %s missing from freebusy response", ErrInvalidResponse, c.calendarID)
	}
	if len(info.Errors) > 0 {
		return nil, fmt.Errorf("%w: freebusy reported %q for calendar %s", ErrUnavailable, info.Errors[0].Reason, c.calendarID)
	}

	intervals := make([]domain.TimeInterval, 0, len(info.Busy))
	for _, period := range info.Busy {
		iv, err := fromTimePeriod(period)
		if err != nil {
			return nil, err
		}
		intervals = append(intervals, iv)
	}

	return intervals, nil
}

// Create создает событие-запись в календаре
func (c *Client) Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	var created *calendar.Event

	err := c.do(ctx, "events.insert", func(callCtx context.Context) error {
		var callErr error
		created, callErr = c.svc.Events.Insert(c.calendarID, toEvent(appt)).Context(callCtx).Do()
		return callErr
	})
	if err != nil {
		return nil, err
	}

	return fromEvent(created)
}

// GetByID получает запись по идентификатору события
func (c *Client) GetByID(ctx context.Context, eventID string) (*domain.Appointment, error) {
	var event *calendar.Event

	err := c.do(ctx, "events.get", func(callCtx context.Context) error {
		var callErr error
		event, callErr = c.svc.Events.Get(c.calendarID, eventID).Context(callCtx).Do()
		return callErr
	})
	if err != nil {
		return nil, err
	}

	appt, err := fromEvent(event)
	if err != nil {
		return nil, err
	}
	if appt.Status == domain.StatusCancelled {
		// Отменённое событие Google оставляет доступным по id;
		// для сервиса такая запись больше не существует
		return nil, ErrEventNotFound
	}

	return appt, nil
}

// Reschedule переносит запись на новый интервал
func (c *Client) Reschedule(ctx context.Context, eventID string, interval domain.TimeInterval) (*domain.Appointment, error) {
	patch := &calendar.Event{
		Start: &calendar.EventDateTime{DateTime: interval.Start.Format(time.RFC3339)},
		End:   &calendar.EventDateTime{DateTime: interval.End.Format(time.RFC3339)},
	}

	var updated *calendar.Event
	err := c.do(ctx, "events.patch", func(callCtx context.Context) error {
		var callErr error
		updated, callErr = c.svc.Events.Patch(c.calendarID, eventID, patch).Context(callCtx).Do()
		return callErr
	})
	if err != nil {
		return nil, err
	}

	return fromEvent(updated)
}

// Cancel удаляет запись из календаря.
// Причина отмены провайдером не хранится, логируется на нашей стороне.
func (c *Client) Cancel(ctx context.Context, eventID string, reason string) error {
	err := c.do(ctx, "events.delete", func(callCtx context.Context) error {
		return c.svc.Events.Delete(c.calendarID, eventID).Context(callCtx).Do()
	})
	if err != nil {
		return err
	}

	if reason != "" {
		c.log.Info("Cancel: event %s cancelled, reason: %s", eventID, reason)
	}
	return nil
}

// ListRange возвращает записи календаря за период в хронологическом порядке
func (c *Client) ListRange(ctx context.Context, from, to time.Time, limit int) ([]*domain.Appointment, error) {
	var resp *calendar.Events

	err := c.do(ctx, "events.list", func(callCtx context.Context) error {
		var callErr error
		resp, callErr = c.svc.Events.List(c.calendarID).
			TimeMin(from.Format(time.RFC3339)).
			TimeMax(to.Format(time.RFC3339)).
			SingleEvents(true).
			OrderBy("startTime").
			MaxResults(int64(limit)).
			Context(callCtx).
			Do()
		return callErr
	})
	if err != nil {
		return nil, err
	}

	appointments := make([]*domain.Appointment, 0, len(resp.Items))
	for _, event := range resp.Items {
		if event.Start == nil || event.Start.DateTime == "" {
			continue // события на весь день пропускаем
		}
		appt, err := fromEvent(event)
		if err != nil {
			c.log.Warn("ListRange: skipping malformed event %s: %v", event.Id, err)
			continue
		}
		appointments = append(appointments, appt)
	}

	return appointments, nil
}

// do выполняет вызов API с таймаутом и не более чем одним повтором.
// Повторяются только транзиентные сбои (сеть, 5xx, 429); ошибки
// авторизации и not-found отдаются сразу. Бюджет ретраев жёсткий:
// вызов происходит внутри голосового диалога, и ждать дольше нельзя.
func (c *Client) do(ctx context.Context, operation string, fn func(ctx context.Context) error) error {
	start := time.Now()

	var err error
	for attempt := 0; attempt < 2; attempt++ {
		callCtx, cancel := context.WithTimeout(ctx, c.timeout)
		err = fn(callCtx)
		cancel()

		if err == nil {
			c.observe(operation, "ok", start)
			return nil
		}
		if !isTransient(err) {
			break
		}
		// Бюджет вызывающей стороны исчерпан - повторять некуда
		if ctx.Err() != nil {
			break
		}
		c.log.Warn("%s: transient calendar API failure (attempt %d): %v", operation, attempt+1, err)
	}

	mapped := mapError(err)
	c.observe(operation, "error", start)
	c.log.Error("%s: calendar API call failed: %v", operation, err)
	return fmt.Errorf("%w: %s: %v", mapped, operation, err)
}

func (c *Client) observe(operation, status string, start time.Time) {
	if c.metrics == nil {
		return
	}
	c.metrics.ObserveIntegrationRequest(integrationName, operation, status, time.Since(start).Seconds())
}

// isTransient сообщает, имеет ли смысл один повтор
func isTransient(err error) bool {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		return apiErr.Code >= http.StatusInternalServerError || apiErr.Code == http.StatusTooManyRequests
	}
	// Сетевые ошибки и таймауты приходят не как googleapi.Error;
	// отменённый вызов не повторяется, а истёкший родительский контекст
	// дополнительно отсекается проверкой ctx.Err() в do
	return !errors.Is(err, context.Canceled)
}

func mapError(err error) error {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case http.StatusNotFound, http.StatusGone:
			return ErrEventNotFound
		case http.StatusUnauthorized, http.StatusForbidden:
			return ErrUnauthorized
		}
	}
	return ErrUnavailable
}
