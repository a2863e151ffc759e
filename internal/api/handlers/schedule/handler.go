package schedule

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AgendaService/internal/api/handlers"
	scheduleService "github.com/m04kA/SMC-AgendaService/internal/service/schedule"
)

const (
	msgInvalidRequestBody = "cuerpo de la petición no válido"
	msgInvalidSchedule    = "horario no válido"
	msgInvalidHoliday     = "festivo no válido"
	msgInvalidUpcoming    = "parámetro upcoming no válido"
	msgHolidayNotFound    = "festivo no encontrado"
)

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// GetWeekly GET /api/v1/schedule
func (h *Handler) GetWeekly(w http.ResponseWriter, r *http.Request) {
	weekly, err := h.service.Weekly(r.Context())
	if err != nil {
		h.logger.Error("GET /schedule - Failed to get schedule: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, newWeeklyScheduleBody(weekly))
}

// SaveWeekly PUT /api/v1/schedule
func (h *Handler) SaveWeekly(w http.ResponseWriter, r *http.Request) {
	var body WeeklyScheduleBody
	if err := handlers.DecodeJSON(r, &body); err != nil {
		h.logger.Warn("PUT /schedule - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	saved, err := h.service.SaveWeekly(r.Context(), body.toDomain())
	if err != nil {
		if errors.Is(err, scheduleService.ErrInvalidInput) {
			h.logger.Warn("PUT /schedule - Invalid schedule: %v", err)
			handlers.RespondBadRequest(w, msgInvalidSchedule)
			return
		}
		h.logger.Error("PUT /schedule - Failed to save schedule: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("PUT /schedule - Schedule saved")
	handlers.RespondJSON(w, http.StatusOK, newWeeklyScheduleBody(saved))
}

// ListHolidays GET /api/v1/holidays?upcoming=true
func (h *Handler) ListHolidays(w http.ResponseWriter, r *http.Request) {
	upcoming := false
	if v := r.URL.Query().Get("upcoming"); v != "" {
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			handlers.RespondBadRequest(w, msgInvalidUpcoming)
			return
		}
		upcoming = parsed
	}

	holidays, err := h.service.ListHolidays(r.Context(), upcoming)
	if err != nil {
		h.logger.Error("GET /holidays - Failed to list holidays: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	response := make([]*HolidayResponse, 0, len(holidays))
	for _, hol := range holidays {
		response = append(response, newHolidayResponse(hol))
	}
	handlers.RespondJSON(w, http.StatusOK, response)
}

// CreateHolidays POST /api/v1/holidays, тело - объект или массив
func (h *Handler) CreateHolidays(w http.ResponseWriter, r *http.Request) {
	var req HolidaysRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("POST /holidays - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	inputs := make([]scheduleService.HolidayInput, 0, len(req))
	for _, hol := range req {
		inputs = append(inputs, scheduleService.HolidayInput{Date: hol.Date, Name: hol.Name})
	}

	created, err := h.service.CreateHolidays(r.Context(), inputs)
	if err != nil {
		if errors.Is(err, scheduleService.ErrInvalidInput) {
			h.logger.Warn("POST /holidays - Invalid holiday: %v", err)
			handlers.RespondBadRequest(w, msgInvalidHoliday)
			return
		}
		h.logger.Error("POST /holidays - Failed to create holidays: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	response := make([]*HolidayResponse, 0, len(created))
	for _, hol := range created {
		response = append(response, newHolidayResponse(hol))
	}

	h.logger.Info("POST /holidays - Created %d holidays", len(created))
	handlers.RespondJSON(w, http.StatusCreated, response)
}

// DeleteHoliday DELETE /api/v1/holidays/{holidayId}
func (h *Handler) DeleteHoliday(w http.ResponseWriter, r *http.Request) {
	holidayID := mux.Vars(r)["holidayId"]

	if err := h.service.DeleteHoliday(r.Context(), holidayID); err != nil {
		if errors.Is(err, scheduleService.ErrHolidayNotFound) {
			h.logger.Warn("DELETE /holidays/{id} - Holiday not found: holiday_id=%s", holidayID)
			handlers.RespondNotFound(w, msgHolidayNotFound)
			return
		}
		h.logger.Error("DELETE /holidays/{id} - Failed to delete holiday: holiday_id=%s, error=%v", holidayID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondNoContent(w)
}
