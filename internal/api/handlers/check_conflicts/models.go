package check_conflicts

import (
	"time"

	"github.com/m04kA/SMC-AgendaService/internal/api/handlers"
	"github.com/m04kA/SMC-AgendaService/internal/domain"
	checkConflicts "github.com/m04kA/SMC-AgendaService/internal/usecase/check_conflicts"
)

// CheckConflictsRequest HTTP request model
type CheckConflictsRequest struct {
	DateTime         string  `json:"dateTime"`
	Duration         int     `json:"duration"`
	ExcludeID        string  `json:"excludeId,omitempty"`
	Recurrence       *string `json:"recurrence,omitempty"`
	RecurrenceMonths *int    `json:"recurrenceMonths,omitempty"`
}

// OccurrenceResponse конфликтное будущее вхождение серии
type OccurrenceResponse struct {
	Index     int                        `json:"index"`
	Date      string                     `json:"date"` // значение для skipDates
	DateTime  string                     `json:"dateTime"`
	Conflicts []handlers.FindingResponse `json:"conflicts"`
}

// CheckConflictsResponse HTTP response model
type CheckConflictsResponse struct {
	Conflicts   []handlers.FindingResponse `json:"conflicts"`
	Occurrences []OccurrenceResponse       `json:"occurrences"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CheckConflictsRequest) ToUseCaseRequest(loc *time.Location) (*checkConflicts.Request, error) {
	startAt, err := handlers.ParseDateTime(r.DateTime, loc)
	if err != nil {
		return nil, err
	}

	var recurrence *domain.Recurrence
	if r.Recurrence != nil && *r.Recurrence != "" {
		rec := domain.Recurrence(*r.Recurrence)
		recurrence = &rec
	}

	return &checkConflicts.Request{
		StartAt:          startAt,
		DurationMinutes:  r.Duration,
		ExcludeID:        r.ExcludeID,
		Recurrence:       recurrence,
		RecurrenceMonths: r.RecurrenceMonths,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *checkConflicts.Response, loc *time.Location) *CheckConflictsResponse {
	result := &CheckConflictsResponse{
		Conflicts:   handlers.NewFindingsResponse(resp.Findings),
		Occurrences: make([]OccurrenceResponse, 0, len(resp.Occurrences)),
	}
	for _, occ := range resp.Occurrences {
		result.Occurrences = append(result.Occurrences, OccurrenceResponse{
			Index:     occ.Index,
			Date:      occ.Date,
			DateTime:  handlers.FormatDateTime(occ.StartAt, loc),
			Conflicts: handlers.NewFindingsResponse(occ.Findings),
		})
	}
	return result
}
