package delete_appointment

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AgendaService/internal/api/handlers"
	"github.com/m04kA/SMC-AgendaService/internal/domain"
	deleteAppointment "github.com/m04kA/SMC-AgendaService/internal/usecase/delete_appointment"
)

const (
	msgInvalidScope  = "alcance no válido, se espera single o future"
	msgNotFound      = "cita no encontrada"
	msgPartialSeries = "la serie se eliminó solo parcialmente"
)

type Handler struct {
	useCase DeleteAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase DeleteAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/appointments/{appointmentId}?scope=single|future
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	appointmentID := mux.Vars(r)["appointmentId"]
	scope := domain.Scope(r.URL.Query().Get("scope"))

	result, err := h.useCase.Execute(r.Context(), &deleteAppointment.Request{ID: appointmentID, Scope: scope})
	if err != nil {
		switch {
		case errors.Is(err, deleteAppointment.ErrInvalidInput):
			h.logger.Warn("DELETE /appointments/{id} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidScope)

		case errors.Is(err, deleteAppointment.ErrAppointmentNotFound):
			h.logger.Warn("DELETE /appointments/{id} - Appointment not found: appointment_id=%s", appointmentID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, deleteAppointment.ErrPartialSeries):
			h.logger.Error("DELETE /appointments/{id} - Partial series: appointment_id=%s, error=%v", appointmentID, err)
			handlers.RespondError(w, http.StatusInternalServerError, msgPartialSeries)

		default:
			h.logger.Error("DELETE /appointments/{id} - Failed to delete appointment: appointment_id=%s, error=%v", appointmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /appointments/{id} - Deleted %d appointments, scope=%s", len(result.Deleted), scope)
	handlers.RespondJSON(w, http.StatusOK, &DeleteAppointmentResponse{Deleted: result.Deleted})
}
