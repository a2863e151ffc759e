package update_appointment

import (
	"time"

	"github.com/m04kA/SMC-AgendaService/internal/api/handlers"
	"github.com/m04kA/SMC-AgendaService/internal/domain"
	updateAppointment "github.com/m04kA/SMC-AgendaService/internal/usecase/update_appointment"
)

// UpdateAppointmentRequest HTTP request model
type UpdateAppointmentRequest struct {
	ClientID string   `json:"clientId"`
	DateTime string   `json:"dateTime"`
	Duration int      `json:"duration"`
	Cost     *float64 `json:"cost,omitempty"`
	TagIDs   []string `json:"tagIds,omitempty"`
}

// UpdatedOccurrence измененное вхождение с конфликтами
type UpdatedOccurrence struct {
	*handlers.AppointmentResponse
	Conflicts []handlers.FindingResponse `json:"conflicts"`
}

// UpdateAppointmentResponse HTTP response model
type UpdateAppointmentResponse struct {
	Appointments []UpdatedOccurrence `json:"appointments"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *UpdateAppointmentRequest) ToUseCaseRequest(id, scope string, loc *time.Location) (*updateAppointment.Request, error) {
	startAt, err := handlers.ParseDateTime(r.DateTime, loc)
	if err != nil {
		return nil, err
	}

	return &updateAppointment.Request{
		ID:              id,
		Scope:           domain.Scope(scope),
		ClientID:        r.ClientID,
		StartAt:         startAt,
		DurationMinutes: r.Duration,
		Cost:            r.Cost,
		TagIDs:          r.TagIDs,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *updateAppointment.Response, loc *time.Location) *UpdateAppointmentResponse {
	result := &UpdateAppointmentResponse{Appointments: make([]UpdatedOccurrence, 0, len(resp.Updated))}
	for _, occ := range resp.Updated {
		result.Appointments = append(result.Appointments, UpdatedOccurrence{
			AppointmentResponse: handlers.NewAppointmentResponse(occ.Appointment, loc),
			Conflicts:           handlers.NewFindingsResponse(occ.Findings),
		})
	}
	return result
}
