package fieldservice

// Field модель площадки из FieldService
type Field struct {
	ID        string  `json:"id"`   // например "field-1", "premium-ground"
	Name      string  `json:"name"` // человекочитаемое название
	BasePrice float64 `json:"base_price"`
	IsActive  bool    `json:"is_active"`

	BusinessHours WeekSchedule `json:"business_hours"`
}

// WeekSchedule расписание работы площадки по дням недели
type WeekSchedule struct {
	Monday    DaySchedule `json:"monday"`
	Tuesday   DaySchedule `json:"tuesday"`
	Wednesday DaySchedule `json:"wednesday"`
	Thursday  DaySchedule `json:"thursday"`
	Friday    DaySchedule `json:"friday"`
	Saturday  DaySchedule `json:"saturday"`
	Sunday    DaySchedule `json:"sunday"`
}

// DaySchedule расписание работы площадки на один день
type DaySchedule struct {
	IsOpen    bool    `json:"is_open"`
	OpenTime  *string `json:"open_time,omitempty"`  // HH:MM
	CloseTime *string `json:"close_time,omitempty"` // HH:MM
}

// ErrorResponse модель ошибки от FieldService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
