package contracts

import "github.com/shopeasy/storefront-service/internal/app/storefront/domain"

// EventPublisher fans domain events out to subscribed views.
type EventPublisher interface {
	Publish(event domain.Event)
}
