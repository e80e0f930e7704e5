package googlecalendar

import "errors"

var (
	// ErrEventNotFound возвращается, когда событие не найдено в календаре
	ErrEventNotFound = errors.New("googlecalendar client: event not found")

	// ErrUnauthorized возвращается при ошибке авторизации service account.
	// Не ретраится: повторный запрос с теми же credentials бессмысленен.
	ErrUnauthorized = errors.New("googlecalendar client: unauthorized")

	// ErrUnavailable возвращается, когда Calendar API недоступен
	// (timeout, сетевые ошибки, 5xx) после исчерпания бюджета ретраев
	ErrUnavailable = errors.New("googlecalendar client: calendar API unavailable")

	// ErrInvalidResponse возвращается при некорректном ответе API
	ErrInvalidResponse = errors.New("googlecalendar client: invalid response")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("googlecalendar client: internal error")
)
