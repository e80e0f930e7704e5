package domain

// Default configuration values
const (
	DefaultSlotDurationMinutes = 30
	DefaultRangeDays           = 7  // default query range when range_end is omitted
	DefaultSearchHorizonDays   = 90 // maximum forward search window for nextAvailable
	DefaultNextSlotsCount      = 5
	MaxNextSlotsCount          = 10
	SearchWindowDays           = 7 // nextAvailable expands the range in windows of this size

	DefaultMorningEnd   = "12:00"
	DefaultEveningStart = "17:00"
)

// Business validation constants
const (
	MinSlotDurationMinutes = 5
	MaxSlotDurationMinutes = 480 // 8 hours
	MaxRangeDays           = 92  // longest availability range one query may cover
	MaxUpcomingDays        = 31
	MaxUpcomingResults     = 50
	MaxNotesLength         = 500
	MaxNameLength          = 200
	MaxPhoneLength         = 32
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// InactiveStatuses список статусов записей, не занимающих время в календаре.
// Используется при выборке busy-интервалов.
var InactiveStatuses = []AppointmentStatus{
	StatusCancelled,
	StatusNoShow,
}

// ActiveStatuses список статусов активных записей
var ActiveStatuses = []AppointmentStatus{
	StatusConfirmed,
	StatusCompleted,
}
