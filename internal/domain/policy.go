package domain

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// WorkingHoursPolicy describes the weekly template of days and daily
// open/close times during which appointment slots may be offered.
// All slot arithmetic is performed in Location; absolute timestamps are
// produced only at the boundary.
type WorkingHoursPolicy struct {
	Days     []time.Weekday
	Open     types.TimeString
	Close    types.TimeString
	Location *time.Location
}

// Validate checks the policy invariants: non-empty day set, open < close.
func (p WorkingHoursPolicy) Validate() error {
	if len(p.Days) == 0 {
		return fmt.Errorf("%w: working days must not be empty", ErrInvalidPolicy)
	}
	if p.Location == nil {
		return fmt.Errorf("%w: timezone is required", ErrInvalidPolicy)
	}
	if !p.Open.IsBefore(p.Close) {
		return fmt.Errorf("%w: open time %s must be before close time %s", ErrInvalidPolicy, p.Open, p.Close)
	}
	return nil
}

// IsWorkingDay reports whether the given weekday is part of the policy.
func (p WorkingHoursPolicy) IsWorkingDay(d time.Weekday) bool {
	for _, day := range p.Days {
		if day == d {
			return true
		}
	}
	return false
}

// SlotPolicy describes the fixed length of every offered slot.
type SlotPolicy struct {
	DurationMinutes int
}

// Validate checks the slot duration bounds.
func (p SlotPolicy) Validate() error {
	if p.DurationMinutes < MinSlotDurationMinutes || p.DurationMinutes > MaxSlotDurationMinutes {
		return fmt.Errorf("%w: slot duration must be between %d and %d minutes",
			ErrInvalidPolicy, MinSlotDurationMinutes, MaxSlotDurationMinutes)
	}
	return nil
}

// Duration returns the slot length as a time.Duration.
func (p SlotPolicy) Duration() time.Duration {
	return time.Duration(p.DurationMinutes) * time.Minute
}

// TimePreference is a coarse time-of-day bucket used to narrow results to
// a caller-stated preference.
type TimePreference string

const (
	PreferenceAny       TimePreference = "any"
	PreferenceMorning   TimePreference = "morning"
	PreferenceAfternoon TimePreference = "afternoon"
	PreferenceEvening   TimePreference = "evening"
)

// ParseTimePreference parses a preference value. Empty input means Any.
func ParseTimePreference(s string) (TimePreference, error) {
	switch TimePreference(s) {
	case "":
		return PreferenceAny, nil
	case PreferenceAny, PreferenceMorning, PreferenceAfternoon, PreferenceEvening:
		return TimePreference(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidPreference, s)
	}
}

// PreferenceWindows holds the configurable bucket boundaries.
// Morning is [start of working day, MorningEnd), afternoon is
// [MorningEnd, EveningStart), evening is [EveningStart, end of working day].
type PreferenceWindows struct {
	MorningEnd   types.TimeString
	EveningStart types.TimeString
}

// Validate checks that the boundaries are ordered.
func (w PreferenceWindows) Validate() error {
	if !w.MorningEnd.IsBefore(w.EveningStart) {
		return fmt.Errorf("%w: morning/afternoon boundary %s must be before afternoon/evening boundary %s",
			ErrInvalidPolicy, w.MorningEnd, w.EveningStart)
	}
	return nil
}

// Matches reports whether a slot starting at t (local wall-clock time in the
// working-hours timezone) falls into the requested bucket.
func (w PreferenceWindows) Matches(pref TimePreference, t time.Time) bool {
	if pref == PreferenceAny {
		return true
	}

	minutes := t.Hour()*60 + t.Minute()
	switch pref {
	case PreferenceMorning:
		return minutes < w.MorningEnd.Minutes()
	case PreferenceAfternoon:
		return minutes >= w.MorningEnd.Minutes() && minutes < w.EveningStart.Minutes()
	case PreferenceEvening:
		return minutes >= w.EveningStart.Minutes()
	default:
		return false
	}
}
