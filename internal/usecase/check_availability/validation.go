package check_availability

import (
	"fmt"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// validateRequest валидирует период и нормализует предпочтение
func validateRequest(req *Request) (domain.TimePreference, error) {
	if req.From.IsZero() || req.To.IsZero() {
		return "", fmt.Errorf("%w: from and to are required", ErrInvalidRange)
	}

	// Границы равны - пустой полуоткрытый период; это валидный запрос
	if req.To.Before(req.From) {
		return "", fmt.Errorf("%w: to must not be before from", ErrInvalidRange)
	}

	maxTo := req.From.AddDate(0, 0, domain.MaxRangeDays)
	if req.To.After(maxTo) {
		return "", fmt.Errorf("%w: range must not exceed %d days", ErrInvalidRange, domain.MaxRangeDays)
	}

	pref, err := domain.ParseTimePreference(req.Preference)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidPreference, req.Preference)
	}

	return pref, nil
}
