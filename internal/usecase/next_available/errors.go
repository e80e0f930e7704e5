package next_available

import "errors"

var (
	// ErrInvalidCount возвращается при неположительном количестве слотов
	ErrInvalidCount = errors.New("invalid slot count")

	// ErrInvalidPreference возвращается при неизвестном предпочтении по времени суток
	ErrInvalidPreference = errors.New("invalid time preference")

	// ErrSourceUnavailable возвращается, когда источник занятости недоступен
	ErrSourceUnavailable = errors.New("busy interval source unavailable")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
