package domain

import (
	"fmt"
	"time"
)

// TimeInterval represents a half-open time range [Start, End).
// It models both busy blocks fetched from a calendar provider and
// candidate/available appointment slots.
type TimeInterval struct {
	Start time.Time
	End   time.Time
}

// NewTimeInterval creates a validated interval.
func NewTimeInterval(start, end time.Time) (TimeInterval, error) {
	iv := TimeInterval{Start: start, End: end}
	if err := iv.Validate(); err != nil {
		return TimeInterval{}, err
	}
	return iv, nil
}

// Validate checks the Start < End invariant.
func (i TimeInterval) Validate() error {
	if i.Start.IsZero() || i.End.IsZero() {
		return fmt.Errorf("%w: interval boundaries must be set", ErrInvalidInterval)
	}
	if !i.Start.Before(i.End) {
		return fmt.Errorf("%w: start %s is not before end %s", ErrInvalidInterval,
			i.Start.Format(time.RFC3339), i.End.Format(time.RFC3339))
	}
	return nil
}

// Overlaps reports whether two half-open intervals intersect.
// Intervals that only touch at a boundary do not overlap:
// [09:00, 09:30) and [09:30, 10:00) are disjoint.
func (i TimeInterval) Overlaps(other TimeInterval) bool {
	return i.Start.Before(other.End) && other.Start.Before(i.End)
}

// Duration returns the length of the interval.
func (i TimeInterval) Duration() time.Duration {
	return i.End.Sub(i.Start)
}

func (i TimeInterval) String() string {
	return fmt.Sprintf("[%s, %s)", i.Start.Format(time.RFC3339), i.End.Format(time.RFC3339))
}
