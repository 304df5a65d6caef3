package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// StockStatus is the derived availability label shared by the listing
// and detail views. It is computed from the quantity and availability
// flag and never persisted.
type StockStatus string

const (
	// StockStatusIn indicates a product with comfortable stock levels.
	StockStatusIn StockStatus = "in-stock"

	// StockStatusLow indicates a product with five or fewer units left.
	StockStatusLow StockStatus = "low-stock"

	// StockStatusOut indicates a product that cannot be purchased.
	StockStatusOut StockStatus = "out-of-stock"
)

// lowStockThreshold is the largest quantity still reported as low stock.
const lowStockThreshold = 5

// Product is one entry of the catalog. Products are immutable after the
// catalog has been loaded; the field tags mirror the catalog JSON schema.
type Product struct {
	ID             int               `json:"id"`
	Name           string            `json:"name"`
	Description    string            `json:"description"`
	Price          decimal.Decimal   `json:"price"`
	OriginalPrice  *decimal.Decimal  `json:"originalPrice,omitempty"`
	Category       string            `json:"category"`
	Image          string            `json:"image"`
	Rating         float64           `json:"rating"`
	Reviews        int               `json:"reviews"`
	InStock        bool              `json:"inStock"`
	Quantity       int               `json:"quantity"`
	Specifications map[string]string `json:"specifications,omitempty"`
	Featured       bool              `json:"featured"`
}

// Available reports whether the product can be added to a cart.
// Quantity is the stronger truth: a product flagged as in stock with
// zero units left is still unavailable.
func (p *Product) Available() bool {
	return p.InStock && p.Quantity > 0
}

// DiscountPercent returns the rounded discount percentage implied by a
// higher original price, or 0 when the product is not discounted.
func (p *Product) DiscountPercent() int {
	if p.OriginalPrice == nil || !p.OriginalPrice.GreaterThan(p.Price) {
		return 0
	}
	ratio := p.OriginalPrice.Sub(p.Price).Div(*p.OriginalPrice)
	return int(ratio.Mul(decimal.NewFromInt(100)).Round(0).IntPart())
}

// StockStatus classifies the product as in-stock, low-stock or
// out-of-stock.
func (p *Product) StockStatus() StockStatus {
	switch {
	case !p.InStock || p.Quantity == 0:
		return StockStatusOut
	case p.Quantity <= lowStockThreshold:
		return StockStatusLow
	default:
		return StockStatusIn
	}
}

// StockLabel returns the user-facing text for the product's stock status.
func (p *Product) StockLabel() string {
	switch p.StockStatus() {
	case StockStatusOut:
		return "Out of Stock"
	case StockStatusLow:
		return fmt.Sprintf("Only %d left in stock", p.Quantity)
	default:
		return "In Stock"
	}
}
