package service

import (
	"context"

	"fitvibe/internal/apperr"
	"fitvibe/internal/models"
	"fitvibe/internal/repo"
)

type Cart struct {
	store repo.Store
}

func NewCart(store repo.Store) *Cart {
	return &Cart{store: store}
}

func (c *Cart) Get(ctx context.Context, userID string) ([]models.CartItem, error) {
	return c.store.Carts().Items(ctx, userID)
}

// Add puts quantity of productID into the user's cart. An existing
// entry accumulates; it is never overwritten.
func (c *Cart) Add(ctx context.Context, userID, productID string, quantity int) (*models.CartItem, error) {
	if productID == "" {
		return nil, apperr.Validation("product id is required")
	}
	if quantity < 1 {
		return nil, apperr.Validation("quantity must be at least 1")
	}

	// Cart entries may only reference products that exist right now.
	if _, err := c.store.Products().ByID(ctx, productID); err != nil {
		return nil, err
	}
	if err := c.store.Carts().Add(ctx, userID, productID, quantity); err != nil {
		return nil, err
	}

	items, err := c.store.Carts().Items(ctx, userID)
	if err != nil {
		return nil, err
	}
	for i := range items {
		if items[i].ProductID == productID {
			return &items[i], nil
		}
	}
	return nil, apperr.ErrNotFound
}

func (c *Cart) Remove(ctx context.Context, userID, productID string) error {
	return c.store.Carts().Remove(ctx, userID, productID)
}
