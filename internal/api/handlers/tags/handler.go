package tags

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AgendaService/internal/api/handlers"
	tagsService "github.com/m04kA/SMC-AgendaService/internal/service/tags"
)

const (
	msgInvalidRequestBody = "cuerpo de la petición no válido"
	msgInvalidInput       = "datos de la etiqueta no válidos"
	msgNotFound           = "etiqueta no encontrada"
)

type Handler struct {
	service TagService
	logger  Logger
}

func NewHandler(service TagService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Create POST /api/v1/tags
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req TagRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /tags - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	tag, err := h.service.Create(r.Context(), req.Name, req.Color)
	if err != nil {
		h.respondError(w, "POST /tags", "", err)
		return
	}

	h.logger.Info("POST /tags - Tag created: tag_id=%s", tag.ID)
	handlers.RespondJSON(w, http.StatusCreated, newTagResponse(tag))
}

// Update PUT /api/v1/tags/{tagId}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	tagID := mux.Vars(r)["tagId"]

	var req TagRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /tags/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	tag, err := h.service.Update(r.Context(), tagID, req.Name, req.Color)
	if err != nil {
		h.respondError(w, "PUT /tags/{id}", tagID, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, newTagResponse(tag))
}

// Delete DELETE /api/v1/tags/{tagId}, метка открепляется от всех записей
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	tagID := mux.Vars(r)["tagId"]

	if err := h.service.Delete(r.Context(), tagID); err != nil {
		h.respondError(w, "DELETE /tags/{id}", tagID, err)
		return
	}

	h.logger.Info("DELETE /tags/{id} - Tag deleted: tag_id=%s", tagID)
	handlers.RespondNoContent(w)
}

// Get GET /api/v1/tags/{tagId}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	tagID := mux.Vars(r)["tagId"]

	tag, err := h.service.Get(r.Context(), tagID)
	if err != nil {
		h.respondError(w, "GET /tags/{id}", tagID, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, newTagResponse(tag))
}

// List GET /api/v1/tags
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.service.List(r.Context())
	if err != nil {
		h.respondError(w, "GET /tags", "", err)
		return
	}

	response := make([]*TagResponse, 0, len(list))
	for _, t := range list {
		response = append(response, newTagResponse(t))
	}
	handlers.RespondJSON(w, http.StatusOK, response)
}

func (h *Handler) respondError(w http.ResponseWriter, route, tagID string, err error) {
	switch {
	case errors.Is(err, tagsService.ErrInvalidInput):
		h.logger.Warn("%s - Invalid input: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidInput)

	case errors.Is(err, tagsService.ErrTagNotFound):
		h.logger.Warn("%s - Tag not found: tag_id=%s", route, tagID)
		handlers.RespondNotFound(w, msgNotFound)

	default:
		h.logger.Error("%s - Failed: tag_id=%s, error=%v", route, tagID, err)
		handlers.RespondInternalError(w)
	}
}
