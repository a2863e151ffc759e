package send_reminder

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AgendaService/internal/api/handlers"
	sendReminder "github.com/m04kA/SMC-AgendaService/internal/usecase/send_reminder"
)

const (
	msgMissingAppointmentID = "appointmentId requerido"
	msgMissingPhone         = "phone requerido"
	msgNotFound             = "Cita no encontrada"
	msgClientNotFound       = "Cliente no encontrado"
	msgNoPhone              = "Cliente sin teléfono"
)

type Handler struct {
	useCase SendReminderUseCase
	logger  Logger
}

func NewHandler(useCase SendReminderUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Send POST /api/v1/reminders/send?appointmentId=
func (h *Handler) Send(w http.ResponseWriter, r *http.Request) {
	appointmentID := r.URL.Query().Get("appointmentId")

	result, err := h.useCase.Execute(r.Context(), appointmentID)
	if err != nil {
		switch {
		case errors.Is(err, sendReminder.ErrInvalidInput):
			h.logger.Warn("POST /reminders/send - Missing appointmentId")
			handlers.RespondBadRequest(w, msgMissingAppointmentID)

		case errors.Is(err, sendReminder.ErrNoPhone):
			h.logger.Warn("POST /reminders/send - Client without phone: appointment_id=%s", appointmentID)
			handlers.RespondBadRequest(w, msgNoPhone)

		case errors.Is(err, sendReminder.ErrAppointmentNotFound):
			h.logger.Warn("POST /reminders/send - Appointment not found: appointment_id=%s", appointmentID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, sendReminder.ErrClientNotFound):
			h.logger.Warn("POST /reminders/send - Client not found: appointment_id=%s", appointmentID)
			handlers.RespondNotFound(w, msgClientNotFound)

		default:
			h.logger.Error("POST /reminders/send - Failed to send reminder: appointment_id=%s, error=%v", appointmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.respond(w, "POST /reminders/send", result)
}

// Test POST /api/v1/reminders/test?phone=
func (h *Handler) Test(w http.ResponseWriter, r *http.Request) {
	result, err := h.useCase.SendTest(r.Context(), r.URL.Query().Get("phone"))
	if err != nil {
		if errors.Is(err, sendReminder.ErrInvalidInput) {
			handlers.RespondBadRequest(w, msgMissingPhone)
			return
		}
		h.logger.Error("POST /reminders/test - Failed to send test message: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.respond(w, "POST /reminders/test", result)
}

// respond ошибка транспорта отдается как 502 с тем же телом
func (h *Handler) respond(w http.ResponseWriter, route string, result *sendReminder.Response) {
	status := http.StatusOK
	if !result.Success {
		status = http.StatusBadGateway
	}
	h.logger.Info("%s - phone=%s, success=%t", route, result.Phone, result.Success)
	handlers.RespondJSON(w, status, FromUseCaseResponse(result))
}
