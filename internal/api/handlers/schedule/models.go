package schedule

import (
	"encoding/json"
	"time"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
)

// WeeklyScheduleBody недельное расписание: ключ - день недели 0..6 (0 - воскресенье), null - выходной
type WeeklyScheduleBody map[int]*domain.WorkingHours

// HolidayRequest HTTP request model
type HolidayRequest struct {
	Date string `json:"date"` // "2025-03-19"
	Name string `json:"name"`
}

// HolidaysRequest один праздник или массив праздников
type HolidaysRequest []HolidayRequest

// UnmarshalJSON принимает как объект, так и массив
func (r *HolidaysRequest) UnmarshalJSON(data []byte) error {
	var list []HolidayRequest
	if err := json.Unmarshal(data, &list); err == nil {
		*r = list
		return nil
	}

	var single HolidayRequest
	if err := json.Unmarshal(data, &single); err != nil {
		return err
	}
	*r = HolidaysRequest{single}
	return nil
}

// HolidayResponse HTTP response model
type HolidayResponse struct {
	ID   string `json:"id"`
	Date string `json:"date"`
	Name string `json:"name"`
}

func (b WeeklyScheduleBody) toDomain() domain.WeeklySchedule {
	weekly := make(domain.WeeklySchedule, len(b))
	for day, hours := range b {
		weekly[time.Weekday(day)] = hours
	}
	return weekly
}

func newWeeklyScheduleBody(weekly domain.WeeklySchedule) WeeklyScheduleBody {
	body := make(WeeklyScheduleBody, 7)
	for day := time.Sunday; day <= time.Saturday; day++ {
		body[int(day)] = weekly[day]
	}
	return body
}

func newHolidayResponse(h *domain.Holiday) *HolidayResponse {
	return &HolidayResponse{ID: h.ID, Date: h.DateKey(), Name: h.Name}
}
