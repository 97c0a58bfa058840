// Package repo exposes typed repositories over the persisted
// collections. Relationship dereferencing (cart items to products,
// order items to product images) is explicit fetch-with-joined-data,
// never implicit.
package repo

import (
	"context"

	"fitvibe/internal/models"
)

// Store bundles the repositories plus transactional scope. InTx runs fn
// against a Store bound to a single snapshot-isolated transaction; a
// non-nil error from fn aborts it and discards every write.
type Store interface {
	Users() Users
	Products() Products
	Carts() Carts
	Orders() Orders
	Challenges() Challenges
	Activities() Activities
	InTx(ctx context.Context, fn func(Store) error) error
}

type Users interface {
	// Create persists a new user. Returns apperr.ErrDuplicateEmail when
	// the email is already registered.
	Create(ctx context.Context, u *models.User) error
	ByEmail(ctx context.Context, email string) (*models.User, error)
	ByID(ctx context.Context, id string) (*models.User, error)
	// ChallengesFor returns the user's challenge progress entries with
	// challenge content resolved (nil for stale refs).
	ChallengesFor(ctx context.Context, userID string) ([]models.UserChallenge, error)
}

// ProductFilter narrows and orders catalog listings. Sort is one of
// "price_asc", "price_desc" or empty (newest first).
type ProductFilter struct {
	Query    string
	Category string
	MinPrice *float64
	MaxPrice *float64
	Sort     string
}

type Products interface {
	List(ctx context.Context, f ProductFilter) ([]models.Product, error)
	ByID(ctx context.Context, id string) (*models.Product, error)
}

type Carts interface {
	// Items returns the cart in insertion order with products resolved;
	// entries whose product has been deleted carry a nil Product.
	Items(ctx context.Context, userID string) ([]models.CartItem, error)
	// Add appends a new entry or accumulates quantity onto an existing
	// one. It does not check product existence; callers do.
	Add(ctx context.Context, userID, productID string, quantity int) error
	// Remove deletes the matching entry, apperr.ErrNotFound if absent.
	Remove(ctx context.Context, userID, productID string) error
	Clear(ctx context.Context, userID string) error
}

type Orders interface {
	Create(ctx context.Context, o *models.Order) error
	// ByUser returns the user's orders newest first, item snapshots
	// intact, with current product images joined in where available.
	ByUser(ctx context.Context, userID string) ([]models.Order, error)
}

type Challenges interface {
	List(ctx context.Context) ([]models.Challenge, error)
	ByID(ctx context.Context, id string) (*models.Challenge, error)
}

type Activities interface {
	BySlug(ctx context.Context, slug string) (*models.Activity, error)
}
