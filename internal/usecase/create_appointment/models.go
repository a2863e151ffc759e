package create_appointment

import (
	"time"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	"github.com/m04kA/SMC-AgendaService/internal/planning"
)

// Request модель запроса на создание записи или серии
type Request struct {
	ClientID        string
	StartAt         time.Time // начало первого вхождения, в таймзоне бизнеса
	DurationMinutes int
	Cost            *float64
	TagIDs          []string

	Recurrence       *domain.Recurrence // nil - одиночная запись
	RecurrenceMonths *int               // период серии, по умолчанию из конфигурации
	SkipDates        []string           // YYYY-MM-DD вхождений, которые не сохраняются
}

// Occurrence сохраненное вхождение и его конфликты
type Occurrence struct {
	Appointment *domain.Appointment
	Findings    []planning.Finding
}

// Response модель ответа
type Response struct {
	SeriesID *string
	Created  []Occurrence
	Skipped  []string // даты пропущенных вхождений
}
