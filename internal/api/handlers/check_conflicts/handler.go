package check_conflicts

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/SMC-AgendaService/internal/api/handlers"
	checkConflicts "github.com/m04kA/SMC-AgendaService/internal/usecase/check_conflicts"
)

const (
	msgInvalidRequestBody = "cuerpo de la petición no válido"
	msgInvalidDateTime    = "formato de fecha no válido, se espera YYYY-MM-DDTHH:MM"
	msgInvalidInput       = "datos de la cita no válidos"
)

type Handler struct {
	useCase CheckConflictsUseCase
	loc     *time.Location
	logger  Logger
}

func NewHandler(useCase CheckConflictsUseCase, loc *time.Location, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		loc:     loc,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments/conflicts
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CheckConflictsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments/conflicts - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(h.loc)
	if err != nil {
		h.logger.Warn("POST /appointments/conflicts - Invalid dateTime %q: %v", req.DateTime, err)
		handlers.RespondBadRequest(w, msgInvalidDateTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		if errors.Is(err, checkConflicts.ErrInvalidInput) {
			h.logger.Warn("POST /appointments/conflicts - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)
			return
		}
		h.logger.Error("POST /appointments/conflicts - Failed to check conflicts: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result, h.loc))
}
