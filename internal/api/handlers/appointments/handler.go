package appointments

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AgendaService/internal/api/handlers"
	"github.com/m04kA/SMC-AgendaService/internal/domain"
	appointmentsService "github.com/m04kA/SMC-AgendaService/internal/service/appointments"
)

const (
	msgNotFound         = "cita no encontrada"
	msgInvalidFrom      = "parámetro from no válido"
	msgInvalidTo        = "parámetro to no válido"
	msgInvalidTimeRange = "from debe ser anterior a to"
)

type Handler struct {
	service AppointmentService
	loc     *time.Location
	logger  Logger
}

func NewHandler(service AppointmentService, loc *time.Location, logger Logger) *Handler {
	return &Handler{
		service: service,
		loc:     loc,
		logger:  logger,
	}
}

// Get GET /api/v1/appointments/{appointmentId}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	appointmentID := mux.Vars(r)["appointmentId"]

	appointment, err := h.service.Get(r.Context(), appointmentID)
	if err != nil {
		if errors.Is(err, appointmentsService.ErrAppointmentNotFound) {
			h.logger.Warn("GET /appointments/{id} - Appointment not found: appointment_id=%s", appointmentID)
			handlers.RespondNotFound(w, msgNotFound)
			return
		}
		h.logger.Error("GET /appointments/{id} - Failed to get appointment: appointment_id=%s, error=%v", appointmentID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, handlers.NewAppointmentResponse(appointment, h.loc))
}

// List GET /api/v1/appointments?from=&to=&clientId=
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	var filter domain.AppointmentsFilter

	if v := query.Get("from"); v != "" {
		from, err := h.parseBound(v)
		if err != nil {
			h.logger.Warn("GET /appointments - Invalid from %q: %v", v, err)
			handlers.RespondBadRequest(w, msgInvalidFrom)
			return
		}
		filter.From = &from
	}
	if v := query.Get("to"); v != "" {
		to, err := h.parseBound(v)
		if err != nil {
			h.logger.Warn("GET /appointments - Invalid to %q: %v", v, err)
			handlers.RespondBadRequest(w, msgInvalidTo)
			return
		}
		filter.To = &to
	}
	if v := query.Get("clientId"); v != "" {
		filter.ClientID = &v
	}

	list, err := h.service.List(r.Context(), filter)
	if err != nil {
		if errors.Is(err, appointmentsService.ErrInvalidTimeRange) {
			handlers.RespondBadRequest(w, msgInvalidTimeRange)
			return
		}
		h.logger.Error("GET /appointments - Failed to list appointments: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	response := make([]*handlers.AppointmentResponse, 0, len(list))
	for _, a := range list {
		response = append(response, handlers.NewAppointmentResponse(a, h.loc))
	}
	handlers.RespondJSON(w, http.StatusOK, response)
}

// parseBound принимает дату YYYY-MM-DD (полночь) или дату со временем
func (h *Handler) parseBound(v string) (time.Time, error) {
	if t, err := time.ParseInLocation(domain.DateFormat, v, h.loc); err == nil {
		return t, nil
	}
	return handlers.ParseDateTime(v, h.loc)
}
