package googlecalendar

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// countingLogger считает предупреждения о повторных попытках
type countingLogger struct{ warns int }

func (*countingLogger) Info(string, ...interface{})   {}
func (l *countingLogger) Warn(string, ...interface{}) { l.warns++ }
func (*countingLogger) Error(string, ...interface{})  {}

func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	svc, err := calendar.NewService(context.Background(),
		option.WithEndpoint(srv.URL),
		option.WithoutAuthentication(),
	)
	require.NoError(t, err)

	return NewClientWithService(svc, "clinic@example.com", 2*time.Second, nopLogger{}, nil), srv
}

func TestFetchBusyIntervals(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)

		var req calendar.FreeBusyRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Len(t, req.Items, 1)
		assert.Equal(t, "clinic@example.com", req.Items[0].Id)

		resp := calendar.FreeBusyResponse{
			Calendars: map[string]calendar.FreeBusyCalendar{
				"clinic@example.com": {
					Busy: []*calendar.TimePeriod{
						{Start: "2025-11-18T10:00:00+02:00", End: "2025-11-18T11:00:00+02:00"},
						{Start: "2025-11-18T15:30:00+02:00", End: "2025-11-18T16:00:00+02:00"},
					},
				},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	})

	client, _ := newTestClient(t, handler)

	from := time.Date(2025, 11, 18, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 1)

	intervals, err := client.FetchBusyIntervals(context.Background(), from, to)
	require.NoError(t, err)
	require.Len(t, intervals, 2)

	assert.True(t, intervals[0].Start.Equal(time.Date(2025, 11, 18, 8, 0, 0, 0, time.UTC)))
	assert.True(t, intervals[0].End.Equal(time.Date(2025, 11, 18, 9, 0, 0, 0, time.UTC)))
}

func TestFetchBusyIntervals_RetriesTransientOnce(t *testing.T) {
	var calls int
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			http.Error(w, `{"error": {"code": 503}}`, http.StatusServiceUnavailable)
			return
		}
		resp := calendar.FreeBusyResponse{
			Calendars: map[string]calendar.FreeBusyCalendar{
				"clinic@example.com": {Busy: nil},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	})

	client, _ := newTestClient(t, handler)

	intervals, err := client.FetchBusyIntervals(context.Background(), time.Now(), time.Now().Add(time.Hour))
	require.NoError(t, err)
	assert.Empty(t, intervals)
	assert.Equal(t, 2, calls)
}

func TestFetchBusyIntervals_UnavailableAfterRetry(t *testing.T) {
	var calls int
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		http.Error(w, `{"error": {"code": 500}}`, http.StatusInternalServerError)
	})

	client, _ := newTestClient(t, handler)

	_, err := client.FetchBusyIntervals(context.Background(), time.Now(), time.Now().Add(time.Hour))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnavailable))
	assert.Equal(t, 2, calls)
}

func TestFetchBusyIntervals_NoRetryAfterCallerDeadline(t *testing.T) {
	var calls atomic.Int32
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		time.Sleep(100 * time.Millisecond)
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	svc, err := calendar.NewService(context.Background(),
		option.WithEndpoint(srv.URL),
		option.WithoutAuthentication(),
	)
	require.NoError(t, err)

	log := &countingLogger{}
	client := NewClientWithService(svc, "clinic@example.com", time.Second, log, nil)

	// Дедлайн вызывающей стороны истекает во время первой попытки:
	// вторая попытка бессмысленна и не предпринимается
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	from := time.Date(2025, 11, 18, 0, 0, 0, 0, time.UTC)
	_, err = client.FetchBusyIntervals(ctx, from, from.AddDate(0, 0, 1))

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnavailable))
	assert.LessOrEqual(t, calls.Load(), int32(1))
	assert.Equal(t, 0, log.warns)
}

func TestGetByID_NotFoundIsNotRetried(t *testing.T) {
	var calls int
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		http.Error(w, `{"error": {"code": 404}}`, http.StatusNotFound)
	})

	client, _ := newTestClient(t, handler)

	_, err := client.GetByID(context.Background(), "missing-event")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrEventNotFound))
	assert.Equal(t, 1, calls)
}

func TestGetByID_UnauthorizedIsNotRetried(t *testing.T) {
	var calls int
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		http.Error(w, `{"error": {"code": 403}}`, http.StatusForbidden)
	})

	client, _ := newTestClient(t, handler)

	_, err := client.GetByID(context.Background(), "some-event")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnauthorized))
	assert.Equal(t, 1, calls)
}

func TestGetByID_CancelledEventTreatedAsMissing(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		event := calendar.Event{
			Id:     "evt-1",
			Status: "cancelled",
			Start:  &calendar.EventDateTime{DateTime: "2025-11-18T10:00:00+02:00"},
			End:    &calendar.EventDateTime{DateTime: "2025-11-18T10:30:00+02:00"},
		}
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(event))
	})

	client, _ := newTestClient(t, handler)

	_, err := client.GetByID(context.Background(), "evt-1")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrEventNotFound))
}

func TestListRange_SkipsAllDayEvents(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		events := calendar.Events{
			Items: []*calendar.Event{
				{
					Id:    "all-day",
					Start: &calendar.EventDateTime{Date: "2025-11-18"},
					End:   &calendar.EventDateTime{Date: "2025-11-19"},
				},
				{
					Id:      "evt-2",
					Summary: "Cleaning - Maria",
					Start:   &calendar.EventDateTime{DateTime: "2025-11-18T12:00:00+02:00"},
					End:     &calendar.EventDateTime{DateTime: "2025-11-18T12:30:00+02:00"},
					ExtendedProperties: &calendar.EventExtendedProperties{
						Private: map[string]string{
							propCustomerName:  "Maria",
							propCustomerPhone: "+306912345678",
							propType:          "Cleaning",
						},
					},
				},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(events))
	})

	client, _ := newTestClient(t, handler)

	from := time.Date(2025, 11, 18, 0, 0, 0, 0, time.UTC)
	appointments, err := client.ListRange(context.Background(), from, from.AddDate(0, 0, 7), 50)
	require.NoError(t, err)
	require.Len(t, appointments, 1)

	assert.Equal(t, "evt-2", appointments[0].EventID)
	assert.Equal(t, "Maria", appointments[0].CustomerName)
	assert.Equal(t, "+306912345678", appointments[0].CustomerPhone)
	assert.Equal(t, "Cleaning", appointments[0].Type)
}

func TestCreate_RoundTripsCustomerMetadata(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var event calendar.Event
		require.NoError(t, json.NewDecoder(r.Body).Decode(&event))

		assert.Equal(t, "Checkup - Nikos", event.Summary)
		require.NotNil(t, event.ExtendedProperties)
		assert.Equal(t, "Nikos", event.ExtendedProperties.Private[propCustomerName])
		require.NotNil(t, event.Reminders)
		assert.False(t, event.Reminders.UseDefault)

		event.Id = "created-evt"
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(event))
	})

	client, _ := newTestClient(t, handler)

	start := time.Date(2025, 11, 18, 10, 0, 0, 0, time.UTC)
	created, err := client.Create(context.Background(), &domain.Appointment{
		CustomerName:  "Nikos",
		CustomerPhone: "+306900000000",
		Type:          "Checkup",
		Interval:      domain.TimeInterval{Start: start, End: start.Add(30 * time.Minute)},
		Status:        domain.StatusConfirmed,
	})
	require.NoError(t, err)

	assert.Equal(t, "created-evt", created.EventID)
	assert.Equal(t, "Nikos", created.CustomerName)
	assert.True(t, created.Interval.Start.Equal(start))
}
