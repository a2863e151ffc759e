package check_conflicts

import (
	"time"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	"github.com/m04kA/SMC-AgendaService/internal/planning"
)

// Request кандидат для проверки
type Request struct {
	StartAt         time.Time
	DurationMinutes int
	ExcludeID       string // ID редактируемой записи

	Recurrence       *domain.Recurrence
	RecurrenceMonths *int
}

// Response конфликты кандидата и будущих вхождений серии
type Response struct {
	Findings    []planning.Finding
	Occurrences []planning.OccurrenceConflict // только для повторяющегося кандидата
}
