package domain

// Default configuration values
const (
	DefaultAdvanceBookingDays = 30
	DefaultSlotStepMinutes    = 30
	DefaultSlotSearchDays     = 14
)

// Business validation constants
const (
	MinAdvanceBookingDays = 1
	MaxAdvanceBookingDays = 365 // 1 year
	MaxWorkMinutes        = 7 * 24 * 60
	MaxDryingMinutes      = 7 * 24 * 60
	MaxObservationsLength = 500
)

// Time format constants
const (
	TimeFormat     = "15:04"               // HH:MM
	DateFormat     = "2006-01-02"          // YYYY-MM-DD
	DateTimeFormat = "2006-01-02T15:04:05" // local wall-clock datetime
)
