package cart

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/shopeasy/storefront-service/internal/app/storefront/catalog"
	"github.com/shopeasy/storefront-service/internal/app/storefront/domain"
	"github.com/shopeasy/storefront-service/internal/pkg/clock"
)

// Business-rule literals of the storefront: free shipping above $50,
// a flat rate below it, and an 8% tax.
var (
	freeShippingThreshold = decimal.NewFromInt(50)
	flatShippingRate      = decimal.RequireFromString("9.99")
	taxRate               = decimal.RequireFromString("0.08")
)

// deliveryLeadTime is the fixed delivery estimate shown on orders.
const deliveryLeadTime = 3 * 24 * time.Hour

// Summary is the order total breakdown shown by checkout and cart
// summary views.
type Summary struct {
	Subtotal decimal.Decimal
	Shipping decimal.Decimal
	Tax      decimal.Decimal
	Total    decimal.Decimal

	// Savings is the accumulated difference between original and
	// current prices over the cart, for lines whose product is
	// discounted.
	Savings decimal.Decimal
}

// FreeShipping reports whether the order ships for free.
func (s Summary) FreeShipping() bool {
	return s.Shipping.IsZero()
}

// Order is the result of a completed (mocked) checkout.
type Order struct {
	ID               string
	Lines            []domain.CartLine
	Summary          Summary
	PlacedAt         time.Time
	DeliveryEstimate time.Time
}

// Checkout computes order totals from the cart and places mock orders.
type Checkout struct {
	store   *Store
	catalog *catalog.Catalog
	clock   clock.Clock
	log     zerolog.Logger
}

// NewCheckout constructs a Checkout over the given store and catalog.
func NewCheckout(store *Store, cat *catalog.Catalog, clk clock.Clock, log zerolog.Logger) *Checkout {
	return &Checkout{
		store:   store,
		catalog: cat,
		clock:   clk,
		log:     log,
	}
}

// Summary computes the current order total breakdown.
func (c *Checkout) Summary() Summary {
	subtotal := c.store.Total()

	shipping := flatShippingRate
	if subtotal.GreaterThan(freeShippingThreshold) {
		shipping = decimal.Zero
	}
	tax := subtotal.Mul(taxRate)

	return Summary{
		Subtotal: subtotal,
		Shipping: shipping,
		Tax:      tax,
		Total:    subtotal.Add(shipping).Add(tax),
		Savings:  c.savings(),
	}
}

// savings sums (originalPrice - price) * quantity over lines whose
// product carries a higher original price. Lines whose product has
// vanished from the catalog contribute nothing.
func (c *Checkout) savings() decimal.Decimal {
	total := decimal.Zero
	for _, line := range c.store.Lines() {
		product, ok := c.catalog.ByID(line.ID)
		if !ok || product.OriginalPrice == nil || !product.OriginalPrice.GreaterThan(product.Price) {
			continue
		}
		perUnit := product.OriginalPrice.Sub(product.Price)
		total = total.Add(perUnit.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}
	return total
}

// PlaceOrder completes the mocked checkout: it snapshots the cart into
// an Order with a fresh id and a delivery estimate, then clears the
// cart. An empty cart fails with ErrEmptyCart.
func (c *Checkout) PlaceOrder(ctx context.Context) (*Order, error) {
	if c.store.Len() == 0 {
		return nil, domain.ErrEmptyCart
	}

	now := c.clock.Now()
	order := &Order{
		ID:               uuid.New().String(),
		Lines:            c.store.Lines(),
		Summary:          c.Summary(),
		PlacedAt:         now,
		DeliveryEstimate: now.Add(deliveryLeadTime),
	}

	c.store.Clear(ctx)

	c.log.Info().
		Str("order_id", order.ID).
		Str("total", order.Summary.Total.StringFixed(2)).
		Msg("order placed")
	return order, nil
}
