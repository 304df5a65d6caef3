package domain

import "github.com/shopspring/decimal"

// CartLine is one row of the cart: a product id plus the selected
// quantity, with display fields snapshotted at the moment the line was
// first created. Snapshots are deliberately never re-synced to the
// catalog, so the cart keeps showing the price at add time even if the
// underlying product changes later.
type CartLine struct {
	ID       int             `json:"id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Image    string          `json:"image"`
	Quantity int             `json:"quantity"`
}

// NewCartLine snapshots the product's display fields into a fresh line.
func NewCartLine(p *Product, quantity int) CartLine {
	return CartLine{
		ID:       p.ID,
		Name:     p.Name,
		Price:    p.Price,
		Image:    p.Image,
		Quantity: quantity,
	}
}

// Subtotal returns the line's price multiplied by its quantity.
func (l CartLine) Subtotal() decimal.Decimal {
	return l.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}
