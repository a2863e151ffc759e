// Package changes раздает изменения таблиц подписчикам.
// Источник изменений: триггеры PostgreSQL, вызывающие pg_notify.
package changes

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/lib/pq"
)

// Channel канал LISTEN/NOTIFY, в который пишут триггеры
const Channel = "agenda_changes"

// AllCollections подписка на изменения всех коллекций
const AllCollections = "*"

const pingInterval = 90 * time.Second

// Event одно изменение строки
type Event struct {
	Collection string `json:"collection"`
	Op         string `json:"op"` // insert, update, delete
	ID         string `json:"id"`
}

// ParseEvent разбирает payload "<collection>:<op>:<id>"
func ParseEvent(payload string) (Event, error) {
	parts := strings.SplitN(payload, ":", 3)
	if len(parts) != 3 || parts[0] == "" || parts[1] == "" {
		return Event{}, fmt.Errorf("%w: %q", ErrInvalidPayload, payload)
	}
	return Event{Collection: parts[0], Op: parts[1], ID: parts[2]}, nil
}

// Hub слушает канал уведомлений и раздает события подписчикам
type Hub struct {
	logger Logger

	mu     sync.RWMutex
	subs   map[string]map[int]func(Event)
	nextID int
}

// NewHub создает хаб без подписчиков
func NewHub(logger Logger) *Hub {
	return &Hub{
		logger: logger,
		subs:   make(map[string]map[int]func(Event)),
	}
}

// Subscribe регистрирует обработчик изменений коллекции (AllCollections для всех).
// Возвращает функцию отписки. Обработчик вызывается из горутины хаба и не должен блокировать
func (h *Hub) Subscribe(collection string, fn func(Event)) func() {
	h.mu.Lock()
	defer h.mu.Unlock()

	id := h.nextID
	h.nextID++

	if h.subs[collection] == nil {
		h.subs[collection] = make(map[int]func(Event))
	}
	h.subs[collection][id] = fn

	return func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		delete(h.subs[collection], id)
		if len(h.subs[collection]) == 0 {
			delete(h.subs, collection)
		}
	}
}

// Publish доставляет событие подписчикам коллекции и подписчикам всех коллекций
func (h *Hub) Publish(event Event) {
	h.mu.RLock()
	handlers := make([]func(Event), 0, len(h.subs[event.Collection])+len(h.subs[AllCollections]))
	for _, fn := range h.subs[event.Collection] {
		handlers = append(handlers, fn)
	}
	for _, fn := range h.subs[AllCollections] {
		handlers = append(handlers, fn)
	}
	h.mu.RUnlock()

	for _, fn := range handlers {
		fn(event)
	}
}

// Listen подключается к PostgreSQL и раздает уведомления, пока ctx не отменен
func (h *Hub) Listen(ctx context.Context, dsn string) error {
	listener := pq.NewListener(dsn, 10*time.Second, time.Minute, func(ev pq.ListenerEventType, err error) {
		if err != nil {
			h.logger.Warn("ChangesHub: listener event %d: %v", ev, err)
		}
	})
	defer listener.Close()

	if err := listener.Listen(Channel); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrListen, Channel, err)
	}

	h.logger.Info("ChangesHub: listening on channel %s", Channel)

	return h.consume(ctx, listener.Notify, listener.Ping)
}

// consume читает уведомления из канала до отмены ctx или закрытия канала
func (h *Hub) consume(ctx context.Context, notifications <-chan *pq.Notification, ping func() error) error {
	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case n, ok := <-notifications:
			if !ok {
				return nil
			}
			// nil приходит после переподключения, часть событий могла быть потеряна
			if n == nil {
				h.logger.Warn("ChangesHub: connection re-established, events may have been missed")
				continue
			}
			event, err := ParseEvent(n.Extra)
			if err != nil {
				h.logger.Warn("ChangesHub: %v", err)
				continue
			}
			h.Publish(event)

		case <-ticker.C:
			if ping == nil {
				continue
			}
			go func() {
				if err := ping(); err != nil {
					h.logger.Warn("ChangesHub: ping failed: %v", err)
				}
			}()
		}
	}
}
