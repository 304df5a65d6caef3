package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	assert.NoError(t, err)
	return d
}

func decPtr(t *testing.T, s string) *decimal.Decimal {
	t.Helper()
	d := dec(t, s)
	return &d
}

func TestAvailable(t *testing.T) {
	tests := []struct {
		name     string
		inStock  bool
		quantity int
		want     bool
	}{
		{"in stock with units", true, 10, true},
		{"flagged out of stock", false, 10, false},
		{"flagged in stock but zero units", true, 0, false},
		{"negative quantity", true, -1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &Product{InStock: tt.inStock, Quantity: tt.quantity}
			assert.Equal(t, tt.want, p.Available())
		})
	}
}

func TestDiscountPercent(t *testing.T) {
	t.Run("no original price", func(t *testing.T) {
		p := &Product{Price: dec(t, "699.99")}
		assert.Equal(t, 0, p.DiscountPercent())
	})

	t.Run("original price not higher", func(t *testing.T) {
		p := &Product{Price: dec(t, "699.99"), OriginalPrice: decPtr(t, "699.99")}
		assert.Equal(t, 0, p.DiscountPercent())
	})

	t.Run("rounded discount", func(t *testing.T) {
		// (799.99 - 699.99) / 799.99 * 100 = 12.50... -> 13
		p := &Product{Price: dec(t, "699.99"), OriginalPrice: decPtr(t, "799.99")}
		assert.Equal(t, 13, p.DiscountPercent())
	})

	t.Run("exact quarter off", func(t *testing.T) {
		p := &Product{Price: dec(t, "75"), OriginalPrice: decPtr(t, "100")}
		assert.Equal(t, 25, p.DiscountPercent())
	})
}

func TestStockStatus(t *testing.T) {
	tests := []struct {
		name     string
		inStock  bool
		quantity int
		want     StockStatus
	}{
		{"plenty", true, 25, StockStatusIn},
		{"boundary above low", true, 6, StockStatusIn},
		{"low boundary", true, 5, StockStatusLow},
		{"single unit", true, 1, StockStatusLow},
		{"zero units", true, 0, StockStatusOut},
		{"flag wins when units remain", false, 10, StockStatusOut},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &Product{InStock: tt.inStock, Quantity: tt.quantity}
			assert.Equal(t, tt.want, p.StockStatus())
		})
	}
}

func TestStockLabel(t *testing.T) {
	out := &Product{InStock: false}
	assert.Equal(t, "Out of Stock", out.StockLabel())

	low := &Product{InStock: true, Quantity: 3}
	assert.Equal(t, "Only 3 left in stock", low.StockLabel())

	in := &Product{InStock: true, Quantity: 30}
	assert.Equal(t, "In Stock", in.StockLabel())
}
