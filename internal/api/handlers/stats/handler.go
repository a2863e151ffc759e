package stats

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AgendaService/internal/api/handlers"
	statsService "github.com/m04kA/SMC-AgendaService/internal/service/stats"
)

const msgInvalidSort = "ordenación no válida: sort=name|total|revenue|avgDuration, dir=asc|desc"

type Handler struct {
	service StatsService
	logger  Logger
}

func NewHandler(service StatsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/stats?sort=&dir=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	list, err := h.service.ClientStats(r.Context(), query.Get("sort"), query.Get("dir"))
	if err != nil {
		if errors.Is(err, statsService.ErrInvalidSort) {
			h.logger.Warn("GET /stats - Invalid sort: %v", err)
			handlers.RespondBadRequest(w, msgInvalidSort)
			return
		}
		h.logger.Error("GET /stats - Failed to compute stats: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	response := make([]ClientStatsResponse, 0, len(list))
	for _, s := range list {
		response = append(response, newClientStatsResponse(s))
	}
	handlers.RespondJSON(w, http.StatusOK, response)
}
