package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-AgendaService/pkg/types"
)

// ClosedReason почему в этот день нет слотов
type ClosedReason string

const (
	ClosedNone    ClosedReason = ""
	ClosedHoliday ClosedReason = "holiday"
	ClosedDayOff  ClosedReason = "day_off"
)

// Request модель запроса свободных слотов
type Request struct {
	Date            time.Time // День в таймзоне бизнеса (время игнорируется)
	DurationMinutes int       // Длительность будущей записи
	StepMinutes     int       // Шаг сетки, 0 - равен длительности
}

// Response модель ответа со списком свободных слотов
type Response struct {
	Date         time.Time
	Closed       ClosedReason
	HolidayName  string // заполняется при Closed == ClosedHoliday
	WorkingHours *WorkingWindow
	Slots        []Slot
}

// WorkingWindow рабочее окно дня
type WorkingWindow struct {
	Start types.TimeString
	End   types.TimeString
}

// Slot свободный интервал без пересечений с записями
type Slot struct {
	StartAt         time.Time
	StartTime       types.TimeString // Время начала слота (например, "10:00")
	DurationMinutes int
}
