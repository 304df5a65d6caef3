// Package bus provides the in-process publish/subscribe dispatcher the
// storefront's views listen on. The composition root owns a single Bus
// and hands it to producers and consumers explicitly.
package bus

import (
	"sync"

	"github.com/shopeasy/storefront-service/internal/app/storefront/domain"
)

// Handler consumes a published event. Handlers run synchronously on the
// publishing goroutine, in subscription order.
type Handler func(event domain.Event)

// Bus dispatches domain events to handlers registered per event type.
type Bus struct {
	mu       sync.RWMutex
	handlers map[string][]Handler
}

// New creates an empty Bus.
func New() *Bus {
	return &Bus{
		handlers: make(map[string][]Handler),
	}
}

// Subscribe registers a handler for the given event type.
func (b *Bus) Subscribe(eventType string, h Handler) {
	if h == nil {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[eventType] = append(b.handlers[eventType], h)
}

// Publish delivers the event to every handler subscribed to its type.
// Publishing with no subscribers is a no-op.
func (b *Bus) Publish(event domain.Event) {
	if event == nil {
		return
	}
	b.mu.RLock()
	handlers := make([]Handler, len(b.handlers[event.EventType()]))
	copy(handlers, b.handlers[event.EventType()])
	b.mu.RUnlock()

	for _, h := range handlers {
		h(event)
	}
}
