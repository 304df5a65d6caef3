package domain

import "time"

// Event is the marker interface for cross-view signals published on the
// in-process bus. Events represent facts about things that have already
// happened in the storefront session.
type Event interface {
	EventType() string
	OccurredAt() time.Time
}

// Event type identifiers used for bus subscriptions.
const (
	EventCatalogLoaded = "catalog.loaded"
	EventCartChanged   = "cart.changed"
)

// CatalogLoadedEvent is published exactly once, after the catalog has
// been populated from its source or from the fallback sample set.
type CatalogLoadedEvent struct {
	Products     []*Product
	FromFallback bool
	LoadedAt     time.Time
}

func (e *CatalogLoadedEvent) EventType() string {
	return EventCatalogLoaded
}

func (e *CatalogLoadedEvent) OccurredAt() time.Time {
	return e.LoadedAt
}

// CartChangedEvent is published after every successful cart mutation.
// Consumers use ItemCount for badge displays and Lines for full
// re-renders.
type CartChangedEvent struct {
	Lines     []CartLine
	ItemCount int
	ChangedAt time.Time
}

func (e *CartChangedEvent) EventType() string {
	return EventCartChanged
}

func (e *CartChangedEvent) OccurredAt() time.Time {
	return e.ChangedAt
}
