package catalog

import (
	"sync"

	"github.com/shopspring/decimal"

	"github.com/shopeasy/storefront-service/internal/app/storefront/domain"
)

// Catalog is the session-wide product collection. It is populated
// exactly once by the Loader and read-only afterwards. The mutex exists
// because the loader may complete on a different goroutine than the
// views that poll it.
type Catalog struct {
	mu       sync.RWMutex
	products []*domain.Product
	byID     map[int]*domain.Product
	ready    bool
}

// New creates an empty, not-yet-ready catalog.
func New() *Catalog {
	return &Catalog{
		byID: make(map[int]*domain.Product),
	}
}

// SetProducts populates the catalog. The first call wins; later calls
// are ignored so the collection stays immutable for the session.
func (c *Catalog) SetProducts(products []*domain.Product) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.ready {
		return
	}
	c.products = products
	c.byID = make(map[int]*domain.Product, len(products))
	for _, p := range products {
		c.byID[p.ID] = p
	}
	c.ready = true
}

// Ready reports whether the catalog has been populated. Views that
// attach after the loaded signal fired must poll this instead of
// waiting for the event.
func (c *Catalog) Ready() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.ready
}

// Products returns the full product list in catalog order.
func (c *Catalog) Products() []*domain.Product {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]*domain.Product, len(c.products))
	copy(out, c.products)
	return out
}

// Len returns the number of products in the catalog.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.products)
}

// ByID looks a product up by its id.
func (c *Catalog) ByID(id int) (*domain.Product, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	p, ok := c.byID[id]
	return p, ok
}

// Categories returns the distinct product categories in first-seen
// order, for the listing view's category selector.
func (c *Catalog) Categories() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	seen := make(map[string]bool, len(c.products))
	var out []string
	for _, p := range c.products {
		if !seen[p.Category] {
			seen[p.Category] = true
			out = append(out, p.Category)
		}
	}
	return out
}

// MaxPrice returns the highest product price rounded up to a whole
// amount, used as the ceiling of the listing view's price slider.
// An empty catalog yields zero.
func (c *Catalog) MaxPrice() decimal.Decimal {
	c.mu.RLock()
	defer c.mu.RUnlock()
	max := decimal.Zero
	for _, p := range c.products {
		if p.Price.GreaterThan(max) {
			max = p.Price
		}
	}
	return max.Ceil()
}

// Featured returns up to limit featured products; when nothing is
// flagged as featured it falls back to the first limit products.
func (c *Catalog) Featured(limit int) []*domain.Product {
	c.mu.RLock()
	defer c.mu.RUnlock()
	var out []*domain.Product
	for _, p := range c.products {
		if p.Featured {
			out = append(out, p)
			if len(out) == limit {
				return out
			}
		}
	}
	if len(out) > 0 {
		return out
	}
	if limit > len(c.products) {
		limit = len(c.products)
	}
	out = make([]*domain.Product, limit)
	copy(out, c.products[:limit])
	return out
}

// Related returns up to limit products sharing the given product's
// category, excluding the product itself. When the category has no
// other members it substitutes other products in catalog order.
func (c *Catalog) Related(id int, limit int) []*domain.Product {
	c.mu.RLock()
	defer c.mu.RUnlock()
	current, ok := c.byID[id]
	if !ok {
		return nil
	}
	var out []*domain.Product
	for _, p := range c.products {
		if p.ID != id && p.Category == current.Category {
			out = append(out, p)
			if len(out) == limit {
				return out
			}
		}
	}
	if len(out) > 0 {
		return out
	}
	for _, p := range c.products {
		if p.ID != id {
			out = append(out, p)
			if len(out) == limit {
				break
			}
		}
	}
	return out
}
