package domain

// Значения по умолчанию
const (
	DefaultDurationMinutes  = 60
	DefaultRecurrenceMonths = 6
)

// Ограничения бизнес-валидации
const (
	MinDurationMinutes  = 5
	MaxDurationMinutes  = 480 // 8 hours
	MaxRecurrenceMonths = 24
	MaxNameLength       = 200
	MaxNotesLength      = 1000
)

// Форматы даты и времени
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
