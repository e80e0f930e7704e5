package types

import (
	"fmt"
	"time"
)

// timeLayout формат времени HH:MM
const timeLayout = "15:04"

// TimeString represents a wall-clock time of day in "HH:MM" form.
// It is used for working-hours boundaries and preference windows, where only
// the local time of day matters and the date is supplied separately.
type TimeString string

// NewTimeString extracts the wall-clock time from t.
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(timeLayout))
}

// NewTimeStringFromString parses and validates an "HH:MM" string.
func NewTimeStringFromString(s string) (TimeString, error) {
	if _, err := time.Parse(timeLayout, s); err != nil {
		return "", fmt.Errorf("types: invalid time %q, expected HH:MM: %w", s, err)
	}
	return TimeString(s), nil
}

func (t TimeString) String() string {
	return string(t)
}

// Minutes returns the number of minutes since midnight.
func (t TimeString) Minutes() int {
	parsed, err := time.Parse(timeLayout, string(t))
	if err != nil {
		return 0
	}
	return parsed.Hour()*60 + parsed.Minute()
}

// IsBefore reports whether t is strictly earlier in the day than other.
func (t TimeString) IsBefore(other TimeString) bool {
	return t.Minutes() < other.Minutes()
}

// IsAfter reports whether t is strictly later in the day than other.
func (t TimeString) IsAfter(other TimeString) bool {
	return t.Minutes() > other.Minutes()
}

// AddMinutes returns the time of day m minutes later.
// The result must stay within the same day.
func (t TimeString) AddMinutes(m int) (TimeString, error) {
	total := t.Minutes() + m
	if total < 0 || total >= 24*60 {
		return "", fmt.Errorf("types: %s + %d minutes is outside the day", t, m)
	}
	return TimeString(fmt.Sprintf("%02d:%02d", total/60, total%60)), nil
}

// At anchors the wall-clock time onto the given calendar day in loc.
// The conversion goes through time.Date, so daylight-saving shifts are
// handled by the time package rather than by fixed offsets.
func (t TimeString) At(day time.Time, loc *time.Location) time.Time {
	y, m, d := day.In(loc).Date()
	parsed, err := time.Parse(timeLayout, string(t))
	if err != nil {
		return time.Time{}
	}
	return time.Date(y, m, d, parsed.Hour(), parsed.Minute(), 0, 0, loc)
}
