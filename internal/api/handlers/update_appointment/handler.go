package update_appointment

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AgendaService/internal/api/handlers"
	updateAppointment "github.com/m04kA/SMC-AgendaService/internal/usecase/update_appointment"
)

const (
	msgInvalidRequestBody = "cuerpo de la petición no válido"
	msgInvalidDateTime    = "formato de fecha no válido, se espera YYYY-MM-DDTHH:MM"
	msgInvalidInput       = "datos de la cita no válidos"
	msgNotFound           = "cita no encontrada"
	msgClientNotFound     = "cliente no encontrado"
	msgNotInSeries        = "la cita no pertenece a una serie"
	msgPartialSeries      = "la serie se actualizó solo parcialmente"
)

type Handler struct {
	useCase UpdateAppointmentUseCase
	loc     *time.Location
	logger  Logger
}

func NewHandler(useCase UpdateAppointmentUseCase, loc *time.Location, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		loc:     loc,
		logger:  logger,
	}
}

// Handle PUT /api/v1/appointments/{appointmentId}?scope=single|future
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	appointmentID := mux.Vars(r)["appointmentId"]
	scope := r.URL.Query().Get("scope")

	var req UpdateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /appointments/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(appointmentID, scope, h.loc)
	if err != nil {
		h.logger.Warn("PUT /appointments/{id} - Invalid dateTime %q: %v", req.DateTime, err)
		handlers.RespondBadRequest(w, msgInvalidDateTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, updateAppointment.ErrInvalidInput):
			h.logger.Warn("PUT /appointments/{id} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, updateAppointment.ErrNotInSeries):
			h.logger.Warn("PUT /appointments/{id} - Not in series: appointment_id=%s", appointmentID)
			handlers.RespondBadRequest(w, msgNotInSeries)

		case errors.Is(err, updateAppointment.ErrAppointmentNotFound):
			h.logger.Warn("PUT /appointments/{id} - Appointment not found: appointment_id=%s", appointmentID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, updateAppointment.ErrClientNotFound):
			h.logger.Warn("PUT /appointments/{id} - Client not found: client_id=%s", req.ClientID)
			handlers.RespondNotFound(w, msgClientNotFound)

		case errors.Is(err, updateAppointment.ErrPartialSeries):
			h.logger.Error("PUT /appointments/{id} - Partial series: appointment_id=%s, error=%v", appointmentID, err)
			handlers.RespondError(w, http.StatusInternalServerError, msgPartialSeries)

		default:
			h.logger.Error("PUT /appointments/{id} - Failed to update appointment: appointment_id=%s, error=%v", appointmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /appointments/{id} - Updated %d appointments from appointment_id=%s", len(result.Updated), appointmentID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result, h.loc))
}
