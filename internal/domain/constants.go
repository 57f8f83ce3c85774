package domain

// Default configuration values
const (
	DefaultSlotDurationMinutes = 60
	DefaultDailyStartTime      = "09:00"
	DefaultDailyEndTime        = "18:00"
	DefaultBasePrice           = 1000
	DefaultPreviewSlotsCount   = 10
)

// Business validation constants
const (
	MinSlotDurationMinutes      = 15
	MaxSlotDurationMinutes      = 480 // 8 hours
	MaxBasePrice                = 100000
	MinMultiplier               = 0.1
	MaxMultiplier               = 5.0
	MaxGenerationRangeDays      = 365 // 1 year
	MaxNotesLength              = 500
	MaxRuleNameLength           = 100
	MaxCancellationReasonLength = 500
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// HoursPerDay количество часовых точек в превью ценообразования
const HoursPerDay = 24

// InactiveStatuses список статусов неактивных бронирований
// Используется при подсчёте занятости слотов
var InactiveStatuses = []BookingStatus{
	StatusCancelled,
}

// ActiveStatuses список статусов активных бронирований
var ActiveStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusCompleted,
}
