package appointments

import "errors"

var (
	// ErrAppointmentNotFound возвращается, когда запись не найдена
	ErrAppointmentNotFound = errors.New("appointment not found")

	// ErrCannotCancel возвращается, когда запись не может быть отменена
	ErrCannotCancel = errors.New("appointment cannot be cancelled")

	// ErrCannotReschedule возвращается, когда запись не может быть перенесена
	ErrCannotReschedule = errors.New("appointment cannot be rescheduled")

	// ErrSlotTaken возвращается, когда новый интервал переноса уже занят
	ErrSlotTaken = errors.New("slot is already taken")

	// ErrOutsideWorkingHours возвращается, когда интервал не попадает в рабочие часы
	ErrOutsideWorkingHours = errors.New("slot is outside working hours")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrSourceUnavailable возвращается, когда календарь недоступен
	ErrSourceUnavailable = errors.New("calendar unavailable")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
