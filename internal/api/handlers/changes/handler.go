package changes

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/m04kA/SMC-AgendaService/internal/api/handlers"
	"github.com/m04kA/SMC-AgendaService/internal/infra/storage/changes"
)

const (
	msgStreamingUnsupported = "streaming no soportado"

	eventBuffer       = 64
	keepAliveInterval = 30 * time.Second
)

type Handler struct {
	hub    Subscriber
	logger Logger
}

func NewHandler(hub Subscriber, logger Logger) *Handler {
	return &Handler{
		hub:    hub,
		logger: logger,
	}
}

// Handle GET /api/v1/changes?collection= (server-sent events)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		handlers.RespondError(w, http.StatusInternalServerError, msgStreamingUnsupported)
		return
	}

	collection := r.URL.Query().Get("collection")
	if collection == "" {
		collection = changes.AllCollections
	}

	// поток живет дольше WriteTimeout сервера
	if err := http.NewResponseController(w).SetWriteDeadline(time.Time{}); err != nil {
		h.logger.Warn("GET /changes - Failed to reset write deadline: %v", err)
	}

	events := make(chan changes.Event, eventBuffer)
	unsubscribe := h.hub.Subscribe(collection, func(e changes.Event) {
		select {
		case events <- e:
		default:
			// медленный клиент, событие теряется
		}
	})
	defer unsubscribe()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	h.logger.Info("GET /changes - Client subscribed: collection=%s", collection)

	keepAlive := time.NewTicker(keepAliveInterval)
	defer keepAlive.Stop()

	for {
		select {
		case <-r.Context().Done():
			h.logger.Info("GET /changes - Client disconnected: collection=%s", collection)
			return

		case e := <-events:
			data, err := json.Marshal(e)
			if err != nil {
				h.logger.Error("GET /changes - Failed to encode event: %v", err)
				continue
			}
			if _, err := fmt.Fprintf(w, "event: change\ndata: %s\n\n", data); err != nil {
				return
			}
			flusher.Flush()

		case <-keepAlive.C:
			if _, err := fmt.Fprint(w, ": keep-alive\n\n"); err != nil {
				return
			}
			flusher.Flush()
		}
	}
}
