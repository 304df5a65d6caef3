package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewCartLine_SnapshotsDisplayFields(t *testing.T) {
	p := &Product{
		ID:       4,
		Name:     "Coffee Maker",
		Price:    dec(t, "89.99"),
		Image:    "☕",
		Category: "home",
		Quantity: 8,
		InStock:  true,
	}

	line := NewCartLine(p, 2)

	assert.Equal(t, 4, line.ID)
	assert.Equal(t, "Coffee Maker", line.Name)
	assert.True(t, line.Price.Equal(dec(t, "89.99")))
	assert.Equal(t, "☕", line.Image)
	assert.Equal(t, 2, line.Quantity)

	// The snapshot must not track later product changes.
	p.Price = dec(t, "99.99")
	p.Name = "Espresso Maker"
	assert.True(t, line.Price.Equal(dec(t, "89.99")))
	assert.Equal(t, "Coffee Maker", line.Name)
}

func TestCartLineSubtotal(t *testing.T) {
	line := CartLine{Price: dec(t, "19.99"), Quantity: 3}
	assert.True(t, line.Subtotal().Equal(dec(t, "59.97")))
}
