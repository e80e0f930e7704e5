package check_availability

import "errors"

var (
	// ErrInvalidRange возвращается при некорректном запрошенном периоде
	ErrInvalidRange = errors.New("invalid availability range")

	// ErrInvalidPreference возвращается при неизвестном предпочтении по времени суток
	ErrInvalidPreference = errors.New("invalid time preference")

	// ErrSourceUnavailable возвращается, когда источник занятости недоступен.
	// Отличается от пустого результата: пустой список слотов - успешный ответ.
	ErrSourceUnavailable = errors.New("busy interval source unavailable")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
