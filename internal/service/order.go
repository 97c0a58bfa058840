package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"fitvibe/internal/apperr"
	"fitvibe/internal/metrics"
	"fitvibe/internal/models"
	"fitvibe/internal/repo"
)

// Orders converts carts into durable orders. Placement is the one
// operation in the service that needs cross-table atomicity.
type Orders struct {
	store repo.Store
	log   zerolog.Logger
	now   func() time.Time
}

func NewOrders(store repo.Store, log zerolog.Logger) *Orders {
	return &Orders{store: store, log: log, now: time.Now}
}

// PlacedOrder is what the caller gets back on success.
type PlacedOrder struct {
	ID         string    `json:"id"`
	TotalPrice float64   `json:"totalPrice"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"date"`
}

// Place reads the user's cart, snapshots every line item at its current
// catalog price, persists the order and empties the cart, all inside a
// single snapshot-isolated transaction. Either the order exists and the
// cart is empty, or nothing changed.
//
// paymentInfo is accepted and ignored: payment capture lives outside
// this service.
func (s *Orders) Place(ctx context.Context, userID string, shippingAddress, paymentInfo json.RawMessage) (*PlacedOrder, error) {
	if emptyJSON(shippingAddress) {
		return nil, apperr.Validation("shipping address is required")
	}

	var placed *PlacedOrder
	err := s.store.InTx(ctx, func(tx repo.Store) error {
		if _, err := tx.Users().ByID(ctx, userID); err != nil {
			return err
		}

		items, err := tx.Carts().Items(ctx, userID)
		if err != nil {
			return err
		}
		if len(items) == 0 {
			return apperr.ErrEmptyCart
		}

		// Snapshot name and price per line, at this instant. A cart
		// entry whose product vanished aborts the whole placement.
		var total float64
		orderItems := make([]models.OrderItem, 0, len(items))
		for _, it := range items {
			if it.Product == nil {
				return fmt.Errorf("%w: product %s", apperr.ErrIntegrity, it.ProductID)
			}
			total += it.Product.Price * float64(it.Quantity)
			orderItems = append(orderItems, models.OrderItem{
				ProductID:       it.ProductID,
				Name:            it.Product.Name,
				Quantity:        it.Quantity,
				PriceAtPurchase: it.Product.Price,
			})
		}

		order := &models.Order{
			ID:              uuid.NewString(),
			UserID:          userID,
			Items:           orderItems,
			TotalPrice:      total,
			ShippingAddress: shippingAddress,
			Status:          models.OrderStatusPending,
			CreatedAt:       s.now().UTC(),
		}
		if err := tx.Orders().Create(ctx, order); err != nil {
			return err
		}
		if err := tx.Carts().Clear(ctx, userID); err != nil {
			return err
		}

		placed = &PlacedOrder{
			ID:         order.ID,
			TotalPrice: order.TotalPrice,
			Status:     order.Status,
			CreatedAt:  order.CreatedAt,
		}
		return nil
	})
	if err != nil {
		metrics.OrderPlacementFailuresTotal.Inc()
		if isDomainErr(err) {
			return nil, err
		}
		s.log.Error().Err(err).Str("user_id", userID).Msg("order placement rolled back")
		return nil, &apperr.OrderPlacementError{Err: err}
	}

	metrics.OrdersPlacedTotal.Inc()
	s.log.Info().Str("user_id", userID).Str("order_id", placed.ID).
		Float64("total", placed.TotalPrice).Msg("order placed")
	return placed, nil
}

// ListByUser returns the caller's orders, newest first.
func (s *Orders) ListByUser(ctx context.Context, userID string) ([]models.Order, error) {
	return s.store.Orders().ByUser(ctx, userID)
}

// isDomainErr reports whether err is a business precondition failure
// that keeps its own HTTP mapping, as opposed to an infrastructure
// failure that gets wrapped as OrderPlacementError.
func isDomainErr(err error) bool {
	var ve *apperr.ValidationError
	return errors.Is(err, apperr.ErrEmptyCart) ||
		errors.Is(err, apperr.ErrIntegrity) ||
		errors.Is(err, apperr.ErrNotFound) ||
		errors.As(err, &ve)
}

// emptyJSON reports whether raw carries no usable address: absent,
// JSON null, empty string or empty object.
func emptyJSON(raw json.RawMessage) bool {
	t := bytes.TrimSpace(raw)
	switch {
	case len(t) == 0:
		return true
	case bytes.Equal(t, []byte("null")):
		return true
	case bytes.Equal(t, []byte(`""`)):
		return true
	case bytes.Equal(t, []byte("{}")):
		return true
	}
	return false
}
