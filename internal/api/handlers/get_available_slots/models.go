package get_available_slots

import (
	"strconv"
	"time"

	"github.com/m04kA/SMC-AgendaService/internal/api/handlers"
	"github.com/m04kA/SMC-AgendaService/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-AgendaService/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Date         string               `json:"date"`
	Closed       string               `json:"closed,omitempty"`
	Holiday      string               `json:"holiday,omitempty"`
	WorkingHours *domain.WorkingHours `json:"workingHours,omitempty"`
	Slots        []AvailableSlot      `json:"slots"`
}

// AvailableSlot модель временного слота
type AvailableSlot struct {
	StartTime       string `json:"startTime"`
	DateTime        string `json:"dateTime"`
	DurationMinutes int    `json:"durationMinutes"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response, loc *time.Location) *AvailableSlotsResponse {
	slots := make([]AvailableSlot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = AvailableSlot{
			StartTime:       slot.StartTime.String(),
			DateTime:        handlers.FormatDateTime(slot.StartAt, loc),
			DurationMinutes: slot.DurationMinutes,
		}
	}

	result := &AvailableSlotsResponse{
		Date:    resp.Date.Format(domain.DateFormat),
		Closed:  string(resp.Closed),
		Holiday: resp.HolidayName,
		Slots:   slots,
	}
	if resp.WorkingHours != nil {
		result.WorkingHours = &domain.WorkingHours{Start: resp.WorkingHours.Start, End: resp.WorkingHours.End}
	}
	return result
}

// ToUseCaseRequest создает запрос use case из query параметров
// duration по умолчанию - стандартная длительность записи
func ToUseCaseRequest(dateStr, durationStr, stepStr string, loc *time.Location) (*getAvailableSlots.Request, error) {
	date, err := time.ParseInLocation(domain.DateFormat, dateStr, loc)
	if err != nil {
		return nil, err
	}

	duration := domain.DefaultDurationMinutes
	if durationStr != "" {
		if duration, err = strconv.Atoi(durationStr); err != nil {
			return nil, err
		}
	}

	step := 0
	if stepStr != "" {
		if step, err = strconv.Atoi(stepStr); err != nil {
			return nil, err
		}
	}

	return &getAvailableSlots.Request{
		Date:            date,
		DurationMinutes: duration,
		StepMinutes:     step,
	}, nil
}
