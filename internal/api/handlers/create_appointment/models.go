package create_appointment

import (
	"time"

	"github.com/m04kA/SMC-AgendaService/internal/api/handlers"
	"github.com/m04kA/SMC-AgendaService/internal/domain"
	createAppointment "github.com/m04kA/SMC-AgendaService/internal/usecase/create_appointment"
)

// CreateAppointmentRequest HTTP request model
type CreateAppointmentRequest struct {
	ClientID         string   `json:"clientId"`
	DateTime         string   `json:"dateTime"` // "2025-03-03T10:00"
	Duration         int      `json:"duration"`
	Cost             *float64 `json:"cost,omitempty"`
	TagIDs           []string `json:"tagIds,omitempty"`
	Recurrence       *string  `json:"recurrence,omitempty"`
	RecurrenceMonths *int     `json:"recurrenceMonths,omitempty"`
	SkipDates        []string `json:"skipDates,omitempty"` // ["2025-03-18"]
}

// CreatedOccurrence сохраненное вхождение с конфликтами
type CreatedOccurrence struct {
	*handlers.AppointmentResponse
	Conflicts []handlers.FindingResponse `json:"conflicts"`
}

// CreateAppointmentResponse HTTP response model
type CreateAppointmentResponse struct {
	SeriesID     *string             `json:"seriesId,omitempty"`
	Appointments []CreatedOccurrence `json:"appointments"`
	Skipped      []string            `json:"skipped"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateAppointmentRequest) ToUseCaseRequest(loc *time.Location) (*createAppointment.Request, error) {
	startAt, err := handlers.ParseDateTime(r.DateTime, loc)
	if err != nil {
		return nil, err
	}

	var recurrence *domain.Recurrence
	if r.Recurrence != nil && *r.Recurrence != "" {
		rec := domain.Recurrence(*r.Recurrence)
		recurrence = &rec
	}

	return &createAppointment.Request{
		ClientID:         r.ClientID,
		StartAt:          startAt,
		DurationMinutes:  r.Duration,
		Cost:             r.Cost,
		TagIDs:           r.TagIDs,
		Recurrence:       recurrence,
		RecurrenceMonths: r.RecurrenceMonths,
		SkipDates:        r.SkipDates,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createAppointment.Response, loc *time.Location) *CreateAppointmentResponse {
	result := &CreateAppointmentResponse{
		SeriesID:     resp.SeriesID,
		Appointments: make([]CreatedOccurrence, 0, len(resp.Created)),
		Skipped:      resp.Skipped,
	}
	if result.Skipped == nil {
		result.Skipped = []string{}
	}
	for _, occ := range resp.Created {
		result.Appointments = append(result.Appointments, CreatedOccurrence{
			AppointmentResponse: handlers.NewAppointmentResponse(occ.Appointment, loc),
			Conflicts:           handlers.NewFindingsResponse(occ.Findings),
		})
	}
	return result
}
