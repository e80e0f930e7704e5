package create_appointment

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrSlotTaken возвращается, когда запрошенный интервал уже занят
	ErrSlotTaken = errors.New("slot is already taken")

	// ErrOutsideWorkingHours возвращается, когда интервал не попадает в рабочие часы
	ErrOutsideWorkingHours = errors.New("slot is outside working hours")

	// ErrSourceUnavailable возвращается, когда календарь недоступен
	ErrSourceUnavailable = errors.New("calendar unavailable")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
