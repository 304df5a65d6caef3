package cart

import (
	"context"
	"sync"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/shopeasy/storefront-service/internal/app/storefront/catalog"
	"github.com/shopeasy/storefront-service/internal/app/storefront/contracts"
	"github.com/shopeasy/storefront-service/internal/app/storefront/domain"
	"github.com/shopeasy/storefront-service/internal/pkg/clock"
)

// Store owns the mutable cart for the session. Mutations are validated
// against the catalog's stock, persisted through CartStorage after
// every successful change, and announced on the event bus. Persistence
// is best-effort: a failed write is logged and the in-memory mutation
// stands.
type Store struct {
	catalog *catalog.Catalog
	storage contracts.CartStorage
	events  contracts.EventPublisher
	clock   clock.Clock
	log     zerolog.Logger

	mu    sync.Mutex
	lines []domain.CartLine
}

// NewStore constructs a Store and restores its contents from storage.
// Missing or malformed stored data yields an empty cart, never an
// error.
func NewStore(ctx context.Context, cat *catalog.Catalog, storage contracts.CartStorage, events contracts.EventPublisher, clk clock.Clock, log zerolog.Logger) *Store {
	s := &Store{
		catalog: cat,
		storage: storage,
		events:  events,
		clock:   clk,
		log:     log,
	}

	lines, err := storage.Load(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("stored cart unreadable, starting empty")
		return s
	}
	for _, line := range lines {
		// A persisted line with a non-positive quantity violates the
		// cart invariant; drop it instead of carrying it forward.
		if line.Quantity > 0 {
			s.lines = append(s.lines, line)
		}
	}
	return s
}

// AddItem adds the requested quantity of a product to the cart,
// appending a new line or accumulating onto the product's existing one.
// A requested quantity below one is clamped to one.
//
// It returns ErrProductNotFound for an unknown id, ErrOutOfStock when
// the product is unavailable or cannot cover the request on its own,
// and an InsufficientStockError when the existing line plus the request
// would exceed the available stock. Failures leave the cart unchanged.
func (s *Store) AddItem(ctx context.Context, productID, quantity int) error {
	if quantity < 1 {
		quantity = 1
	}

	product, ok := s.catalog.ByID(productID)
	if !ok {
		return domain.ErrProductNotFound
	}
	if !product.Available() || product.Quantity < quantity {
		return domain.ErrOutOfStock
	}

	s.mu.Lock()
	if idx := s.indexOf(productID); idx >= 0 {
		next := s.lines[idx].Quantity + quantity
		if next > product.Quantity {
			s.mu.Unlock()
			return &domain.InsufficientStockError{ProductID: productID, Available: product.Quantity}
		}
		s.lines[idx].Quantity = next
	} else {
		s.lines = append(s.lines, domain.NewCartLine(product, quantity))
	}
	lines := s.snapshot()
	s.mu.Unlock()

	s.persistAndNotify(ctx, lines)
	return nil
}

// RemoveItem removes the product's line from the cart. Removing an
// absent id is a no-op; no persistence or signal happens in that case.
func (s *Store) RemoveItem(ctx context.Context, productID int) {
	s.mu.Lock()
	idx := s.indexOf(productID)
	if idx < 0 {
		s.mu.Unlock()
		return
	}
	s.lines = append(s.lines[:idx], s.lines[idx+1:]...)
	lines := s.snapshot()
	s.mu.Unlock()

	s.persistAndNotify(ctx, lines)
}

// UpdateQuantity sets the product's line to the given quantity. A
// quantity of zero or less removes the line. A quantity above the
// product's available stock fails with an InsufficientStockError
// without mutating the cart. Updating a product that has no line in the
// cart is a reportable miss (ErrLineNotFound).
func (s *Store) UpdateQuantity(ctx context.Context, productID, quantity int) error {
	if quantity <= 0 {
		s.RemoveItem(ctx, productID)
		return nil
	}

	s.mu.Lock()
	idx := s.indexOf(productID)
	if idx < 0 {
		s.mu.Unlock()
		return domain.ErrLineNotFound
	}
	if product, ok := s.catalog.ByID(productID); ok && quantity > product.Quantity {
		s.mu.Unlock()
		return &domain.InsufficientStockError{ProductID: productID, Available: product.Quantity}
	}
	s.lines[idx].Quantity = quantity
	lines := s.snapshot()
	s.mu.Unlock()

	s.persistAndNotify(ctx, lines)
	return nil
}

// Clear empties the cart, persists the empty state and signals the
// change.
func (s *Store) Clear(ctx context.Context) {
	s.mu.Lock()
	s.lines = nil
	s.mu.Unlock()

	s.persistAndNotify(ctx, nil)
}

// Total returns the sum of price times quantity over all lines.
func (s *Store) Total() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := decimal.Zero
	for _, line := range s.lines {
		total = total.Add(line.Subtotal())
	}
	return total
}

// ItemCount returns the total unit count across all lines, for the
// cart badge.
func (s *Store) ItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return itemCount(s.lines)
}

// Len returns the number of distinct lines in the cart.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.lines)
}

// Lines returns a copy of the cart contents in insertion order.
func (s *Store) Lines() []domain.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

// indexOf and snapshot expect s.mu to be held.

func (s *Store) indexOf(productID int) int {
	for i, line := range s.lines {
		if line.ID == productID {
			return i
		}
	}
	return -1
}

func (s *Store) snapshot() []domain.CartLine {
	out := make([]domain.CartLine, len(s.lines))
	copy(out, s.lines)
	return out
}

// persistAndNotify writes the given snapshot to storage and publishes
// a cart-changed event. It must run without s.mu held: handlers are
// dispatched synchronously and may read the store back.
func (s *Store) persistAndNotify(ctx context.Context, lines []domain.CartLine) {
	if err := s.storage.Save(ctx, lines); err != nil {
		s.log.Warn().Err(err).Msg("cart persistence failed, keeping in-memory state")
	}
	if s.events != nil {
		s.events.Publish(&domain.CartChangedEvent{
			Lines:     lines,
			ItemCount: itemCount(lines),
			ChangedAt: s.clock.Now(),
		})
	}
}

func itemCount(lines []domain.CartLine) int {
	count := 0
	for _, line := range lines {
		count += line.Quantity
	}
	return count
}
