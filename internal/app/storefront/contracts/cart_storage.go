package contracts

import (
	"context"

	"github.com/shopeasy/storefront-service/internal/app/storefront/domain"
)

// CartStorage persists the full cart contents under a fixed key.
// Writes are best-effort: the cart is a client-side cache, not a system
// of record, and a lost write loses at most the latest mutation.
type CartStorage interface {
	// Save replaces the stored cart with the given ordered lines.
	Save(ctx context.Context, lines []domain.CartLine) error

	// Load reads the stored cart back. A missing value yields (nil, nil);
	// a malformed one yields an error so the caller can degrade to an
	// empty cart instead of crashing.
	Load(ctx context.Context) ([]domain.CartLine, error)
}
