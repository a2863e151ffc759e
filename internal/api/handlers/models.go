package handlers

import (
	"time"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	"github.com/m04kA/SMC-AgendaService/internal/planning"
)

// AppointmentResponse HTTP модель записи
type AppointmentResponse struct {
	ID               string   `json:"id"`
	ClientID         string   `json:"clientId"`
	DateTime         string   `json:"dateTime"` // "2025-03-03T10:00"
	Duration         int      `json:"duration"`
	Cost             *float64 `json:"cost,omitempty"`
	TagIDs           []string `json:"tagIds"`
	Recurrence       *string  `json:"recurrence,omitempty"`
	RecurrenceMonths *int     `json:"recurrenceMonths,omitempty"`
	SeriesID         *string  `json:"seriesId,omitempty"`
	CreatedAt        string   `json:"createdAt"`
	UpdatedAt        string   `json:"updatedAt"`
}

// FindingResponse HTTP модель конфликта
type FindingResponse struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// NewAppointmentResponse конвертирует доменную запись в HTTP модель
func NewAppointmentResponse(a *domain.Appointment, loc *time.Location) *AppointmentResponse {
	var recurrence *string
	if a.Recurrence != nil {
		r := string(*a.Recurrence)
		recurrence = &r
	}

	tagIDs := a.TagIDs
	if tagIDs == nil {
		tagIDs = []string{}
	}

	return &AppointmentResponse{
		ID:               a.ID,
		ClientID:         a.ClientID,
		DateTime:         FormatDateTime(a.StartAt, loc),
		Duration:         a.DurationMinutes,
		Cost:             a.Cost,
		TagIDs:           tagIDs,
		Recurrence:       recurrence,
		RecurrenceMonths: a.RecurrenceMonths,
		SeriesID:         a.SeriesID,
		CreatedAt:        a.CreatedAt.Format(time.RFC3339),
		UpdatedAt:        a.UpdatedAt.Format(time.RFC3339),
	}
}

// NewFindingsResponse конвертирует конфликты, пустой список остается пустым массивом
func NewFindingsResponse(findings []planning.Finding) []FindingResponse {
	result := make([]FindingResponse, 0, len(findings))
	for _, f := range findings {
		result = append(result, FindingResponse{Type: string(f.Kind), Message: f.Message})
	}
	return result
}
