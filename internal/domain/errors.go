package domain

import "errors"

var (
	// ErrInvalidInterval возвращается при нарушении инварианта start < end
	ErrInvalidInterval = errors.New("domain: invalid time interval")

	// ErrInvalidPolicy возвращается при некорректной конфигурации политики
	ErrInvalidPolicy = errors.New("domain: invalid policy")

	// ErrInvalidPreference возвращается при неизвестном значении time preference
	ErrInvalidPreference = errors.New("domain: invalid time preference")
)
