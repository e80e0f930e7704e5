package create_appointment

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request, now time.Time) error {
	if req.CustomerName == "" {
		return fmt.Errorf("%w: customer name is required", ErrInvalidInput)
	}
	if len(req.CustomerName) > domain.MaxNameLength {
		return fmt.Errorf("%w: customer name exceeds %d characters", ErrInvalidInput, domain.MaxNameLength)
	}

	if req.CustomerPhone == "" {
		return fmt.Errorf("%w: customer phone is required", ErrInvalidInput)
	}
	if len(req.CustomerPhone) > domain.MaxPhoneLength {
		return fmt.Errorf("%w: customer phone exceeds %d characters", ErrInvalidInput, domain.MaxPhoneLength)
	}

	if req.Type == "" {
		return fmt.Errorf("%w: appointment type is required", ErrInvalidInput)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	if req.Start.IsZero() {
		return fmt.Errorf("%w: start time is required", ErrInvalidInput)
	}
	if !req.Start.After(now) {
		return fmt.Errorf("%w: start time must be in the future", ErrInvalidInput)
	}

	return nil
}

// validateWithinWorkingHours проверяет, что интервал записи лежит внутри
// рабочего дня: день рабочий, начало не раньше открытия, конец не позже закрытия
func validateWithinWorkingHours(interval domain.TimeInterval, wh domain.WorkingHoursPolicy) error {
	local := interval.Start.In(wh.Location)

	if !wh.IsWorkingDay(local.Weekday()) {
		return fmt.Errorf("%w: %s is not a working day", ErrOutsideWorkingHours, local.Weekday())
	}

	open := wh.Open.At(local, wh.Location)
	close := wh.Close.At(local, wh.Location)

	if interval.Start.Before(open) || interval.End.After(close) {
		return fmt.Errorf("%w: slot %s-%s is outside %s-%s",
			ErrOutsideWorkingHours,
			interval.Start.In(wh.Location).Format("15:04"),
			interval.End.In(wh.Location).Format("15:04"),
			wh.Open, wh.Close)
	}

	return nil
}
