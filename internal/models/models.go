package models

import (
	"encoding/json"
	"time"
)

// Order status lifecycle. Only Pending is set by this service; the
// remaining states belong to fulfillment.
const (
	OrderStatusPending   = "Pending"
	OrderStatusShipped   = "Shipped"
	OrderStatusDelivered = "Delivered"
	OrderStatusCancelled = "Cancelled"
)

// Challenge progress states.
const (
	ChallengeInProgress = "in-progress"
	ChallengeCompleted  = "completed"
)

type User struct {
	ID           string    `json:"id"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}

type Product struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Category    string    `json:"category"`
	ImageURL    string    `json:"imageURL,omitempty"`
	Stock       int       `json:"stock"`
	CreatedAt   time.Time `json:"createdAt"`
}

// CartItem is one (product, quantity) pair in a user's cart. Product is
// resolved at read time and is nil when the catalog entry has been
// deleted since the item was added.
type CartItem struct {
	ProductID string   `json:"productId"`
	Quantity  int      `json:"quantity"`
	Product   *Product `json:"product"`
}

// OrderItem is the immutable snapshot captured at purchase time. Name
// and PriceAtPurchase are denormalized so later catalog edits never
// change what an order records. ImageURL is joined in at read time and
// may be empty when the product no longer exists.
type OrderItem struct {
	ProductID       string  `json:"productId"`
	Name            string  `json:"name"`
	Quantity        int     `json:"quantity"`
	PriceAtPurchase float64 `json:"priceAtPurchase"`
	ImageURL        string  `json:"imageURL,omitempty"`
}

type Order struct {
	ID              string          `json:"id"`
	UserID          string          `json:"userId"`
	Items           []OrderItem     `json:"items"`
	TotalPrice      float64         `json:"totalPrice"`
	ShippingAddress json.RawMessage `json:"shippingAddress"`
	Status          string          `json:"status"`
	CreatedAt       time.Time       `json:"date"`
}

type Challenge struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Goal        string     `json:"goal"`
	StartDate   time.Time  `json:"startDate"`
	EndDate     *time.Time `json:"endDate,omitempty"`
}

// UserChallenge tracks one user's progress against a challenge.
// Challenge is resolved at read time and may be nil for stale refs.
type UserChallenge struct {
	ChallengeID string     `json:"challengeId"`
	Progress    int        `json:"progress"`
	Status      string     `json:"status"`
	Challenge   *Challenge `json:"challenge"`
}

// Activity is static page content (yoga flows, zumba playlists and the
// like), looked up by slug. Content is opaque JSON.
type Activity struct {
	Slug        string          `json:"slug"`
	Title       string          `json:"title"`
	Description string          `json:"description,omitempty"`
	Content     json.RawMessage `json:"content"`
}
