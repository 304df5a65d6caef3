package domain

import (
	"errors"
	"fmt"
)

// Errors for cart operations
var (
	// ErrProductNotFound indicates that no product with the given id
	// exists in the catalog.
	ErrProductNotFound = errors.New("product not found")

	// ErrOutOfStock indicates the product cannot satisfy the requested
	// quantity because it is unavailable or has no stock.
	ErrOutOfStock = errors.New("product is out of stock")

	// ErrLineNotFound indicates a quantity update was requested for a
	// product that has no line in the cart.
	ErrLineNotFound = errors.New("cart line not found")

	// ErrEmptyCart indicates checkout was attempted on an empty cart.
	ErrEmptyCart = errors.New("cart is empty")
)

// InsufficientStockError reports that the quantity a cart operation
// would end up with exceeds the units currently available. Available
// carries the limit so views can render an "only N available" message.
type InsufficientStockError struct {
	ProductID int
	Available int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("only %d items available", e.Available)
}
