package update_appointment

import (
	"time"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	"github.com/m04kA/SMC-AgendaService/internal/planning"
)

// Request модель запроса на изменение записи
type Request struct {
	ID              string
	Scope           domain.Scope // пусто - single
	ClientID        string
	StartAt         time.Time // новое начало редактируемого вхождения
	DurationMinutes int
	Cost            *float64
	TagIDs          []string
}

// Occurrence обновленное вхождение и его конфликты
type Occurrence struct {
	Appointment *domain.Appointment
	Findings    []planning.Finding
}

// Response модель ответа
type Response struct {
	Updated []Occurrence
}
