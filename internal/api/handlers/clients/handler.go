package clients

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AgendaService/internal/api/handlers"
	clientsService "github.com/m04kA/SMC-AgendaService/internal/service/clients"
)

const (
	msgInvalidRequestBody = "cuerpo de la petición no válido"
	msgInvalidInput       = "datos del cliente no válidos"
	msgNotFound           = "cliente no encontrado"
)

type Handler struct {
	service ClientService
	logger  Logger
}

func NewHandler(service ClientService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Create POST /api/v1/clients
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req ClientRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /clients - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	client, err := h.service.Create(r.Context(), req.ToServiceInput())
	if err != nil {
		h.respondError(w, "POST /clients", "", err)
		return
	}

	h.logger.Info("POST /clients - Client created: client_id=%s", client.ID)
	handlers.RespondJSON(w, http.StatusCreated, NewClientResponse(client))
}

// Update PUT /api/v1/clients/{clientId}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	clientID := mux.Vars(r)["clientId"]

	var req ClientRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /clients/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	client, err := h.service.Update(r.Context(), clientID, req.ToServiceInput())
	if err != nil {
		h.respondError(w, "PUT /clients/{id}", clientID, err)
		return
	}

	h.logger.Info("PUT /clients/{id} - Client updated: client_id=%s", clientID)
	handlers.RespondJSON(w, http.StatusOK, NewClientResponse(client))
}

// Delete DELETE /api/v1/clients/{clientId}, вместе с записями клиента
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	clientID := mux.Vars(r)["clientId"]

	if err := h.service.Delete(r.Context(), clientID); err != nil {
		h.respondError(w, "DELETE /clients/{id}", clientID, err)
		return
	}

	h.logger.Info("DELETE /clients/{id} - Client deleted: client_id=%s", clientID)
	handlers.RespondNoContent(w)
}

// Get GET /api/v1/clients/{clientId}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	clientID := mux.Vars(r)["clientId"]

	client, err := h.service.Get(r.Context(), clientID)
	if err != nil {
		h.respondError(w, "GET /clients/{id}", clientID, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, NewClientResponse(client))
}

// List GET /api/v1/clients?search=
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.service.List(r.Context(), r.URL.Query().Get("search"))
	if err != nil {
		h.respondError(w, "GET /clients", "", err)
		return
	}

	response := make([]*ClientResponse, 0, len(list))
	for _, c := range list {
		response = append(response, NewClientResponse(c))
	}
	handlers.RespondJSON(w, http.StatusOK, response)
}

func (h *Handler) respondError(w http.ResponseWriter, route, clientID string, err error) {
	switch {
	case errors.Is(err, clientsService.ErrInvalidInput):
		h.logger.Warn("%s - Invalid input: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidInput)

	case errors.Is(err, clientsService.ErrClientNotFound):
		h.logger.Warn("%s - Client not found: client_id=%s", route, clientID)
		handlers.RespondNotFound(w, msgNotFound)

	default:
		h.logger.Error("%s - Failed: client_id=%s, error=%v", route, clientID, err)
		handlers.RespondInternalError(w)
	}
}
