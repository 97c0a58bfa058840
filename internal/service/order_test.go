package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"fitvibe/internal/apperr"
	"fitvibe/internal/models"
	"fitvibe/internal/repo"
)

const (
	testUserID   = "11111111-1111-1111-1111-111111111111"
	yogaMatID    = "22222222-2222-2222-2222-222222222222"
	resistBandID = "33333333-3333-3333-3333-333333333333"
)

var testAddress = json.RawMessage(`"123 Main St"`)

func newTestStore(t *testing.T) *repo.Mem {
	t.Helper()
	m := repo.NewMem()
	m.SeedUser(models.User{
		ID:        testUserID,
		FirstName: "Avery",
		LastName:  "Kim",
		Email:     "avery@example.com",
		CreatedAt: time.Now().UTC(),
	})
	m.SeedProduct(models.Product{
		ID: yogaMatID, Name: "Yoga Mat", Price: 20.00, Category: "equipment", Stock: 10,
	})
	m.SeedProduct(models.Product{
		ID: resistBandID, Name: "Resistance Band", Price: 15.00, Category: "equipment", Stock: 25,
	})
	return m
}

func fillCart(t *testing.T, m *repo.Mem) {
	t.Helper()
	ctx := context.Background()
	if err := m.Carts().Add(ctx, testUserID, yogaMatID, 2); err != nil {
		t.Fatalf("add yoga mat: %v", err)
	}
	if err := m.Carts().Add(ctx, testUserID, resistBandID, 1); err != nil {
		t.Fatalf("add resistance band: %v", err)
	}
}

func TestPlaceOrderSnapshotsCartAndClearsIt(t *testing.T) {
	ctx := context.Background()
	m := newTestStore(t)
	fillCart(t, m)
	svc := NewOrders(m, zerolog.Nop())

	placed, err := svc.Place(ctx, testUserID, testAddress, nil)
	if err != nil {
		t.Fatalf("place: %v", err)
	}
	if placed.TotalPrice != 55.00 {
		t.Errorf("total = %v, want 55.00", placed.TotalPrice)
	}
	if placed.Status != models.OrderStatusPending {
		t.Errorf("status = %q, want %q", placed.Status, models.OrderStatusPending)
	}
	if placed.ID == "" || placed.CreatedAt.IsZero() {
		t.Errorf("placed order missing id or timestamp: %+v", placed)
	}

	items, err := m.Carts().Items(ctx, testUserID)
	if err != nil {
		t.Fatalf("cart items: %v", err)
	}
	if len(items) != 0 {
		t.Errorf("cart has %d items after placement, want 0", len(items))
	}

	orders, err := svc.ListByUser(ctx, testUserID)
	if err != nil {
		t.Fatalf("list orders: %v", err)
	}
	if len(orders) != 1 {
		t.Fatalf("got %d orders, want 1", len(orders))
	}
	o := orders[0]
	if len(o.Items) != 2 {
		t.Fatalf("order has %d items, want 2", len(o.Items))
	}
	byProduct := map[string]models.OrderItem{}
	for _, it := range o.Items {
		byProduct[it.ProductID] = it
	}
	if it := byProduct[yogaMatID]; it.Name != "Yoga Mat" || it.Quantity != 2 || it.PriceAtPurchase != 20.00 {
		t.Errorf("yoga mat snapshot = %+v", it)
	}
	if it := byProduct[resistBandID]; it.Name != "Resistance Band" || it.Quantity != 1 || it.PriceAtPurchase != 15.00 {
		t.Errorf("resistance band snapshot = %+v", it)
	}
}

func TestPlacedOrderPriceSurvivesCatalogEdit(t *testing.T) {
	ctx := context.Background()
	m := newTestStore(t)
	fillCart(t, m)
	svc := NewOrders(m, zerolog.Nop())

	if _, err := svc.Place(ctx, testUserID, testAddress, nil); err != nil {
		t.Fatalf("place: %v", err)
	}

	// Catalog edit after the fact must not touch the recorded price.
	m.SeedProduct(models.Product{
		ID: yogaMatID, Name: "Yoga Mat", Price: 25.00, Category: "equipment", Stock: 10,
	})

	orders, err := svc.ListByUser(ctx, testUserID)
	if err != nil {
		t.Fatalf("list orders: %v", err)
	}
	for _, it := range orders[0].Items {
		if it.ProductID == yogaMatID && it.PriceAtPurchase != 20.00 {
			t.Errorf("priceAtPurchase = %v after catalog edit, want 20.00", it.PriceAtPurchase)
		}
	}
	if orders[0].TotalPrice != 55.00 {
		t.Errorf("totalPrice = %v after catalog edit, want 55.00", orders[0].TotalPrice)
	}
}

func TestPlaceOrderEmptyCart(t *testing.T) {
	ctx := context.Background()
	m := newTestStore(t)
	svc := NewOrders(m, zerolog.Nop())

	_, err := svc.Place(ctx, testUserID, testAddress, nil)
	if !errors.Is(err, apperr.ErrEmptyCart) {
		t.Fatalf("err = %v, want ErrEmptyCart", err)
	}

	orders, _ := svc.ListByUser(ctx, testUserID)
	if len(orders) != 0 {
		t.Errorf("order created from empty cart")
	}
}

func TestPlaceOrderMissingAddress(t *testing.T) {
	ctx := context.Background()
	m := newTestStore(t)
	fillCart(t, m)
	svc := NewOrders(m, zerolog.Nop())

	for _, addr := range []json.RawMessage{nil, json.RawMessage(`null`), json.RawMessage(`""`), json.RawMessage(`{}`)} {
		_, err := svc.Place(ctx, testUserID, addr, nil)
		var ve *apperr.ValidationError
		if !errors.As(err, &ve) {
			t.Errorf("address %q: err = %v, want ValidationError", addr, err)
		}
	}

	items, _ := m.Carts().Items(ctx, testUserID)
	if len(items) != 2 {
		t.Errorf("cart mutated by rejected placement: %d items", len(items))
	}
}

func TestPlaceOrderDanglingProductAborts(t *testing.T) {
	ctx := context.Background()
	m := newTestStore(t)
	fillCart(t, m)
	m.DeleteProduct(resistBandID)
	svc := NewOrders(m, zerolog.Nop())

	_, err := svc.Place(ctx, testUserID, testAddress, nil)
	if !errors.Is(err, apperr.ErrIntegrity) {
		t.Fatalf("err = %v, want ErrIntegrity", err)
	}

	orders, _ := svc.ListByUser(ctx, testUserID)
	if len(orders) != 0 {
		t.Errorf("partial order created from cart with dangling ref")
	}
	items, _ := m.Carts().Items(ctx, testUserID)
	if len(items) != 2 {
		t.Errorf("cart changed by aborted placement: %d items, want 2", len(items))
	}
}

func TestPlaceOrderTwiceCreatesOneOrder(t *testing.T) {
	ctx := context.Background()
	m := newTestStore(t)
	fillCart(t, m)
	svc := NewOrders(m, zerolog.Nop())

	if _, err := svc.Place(ctx, testUserID, testAddress, nil); err != nil {
		t.Fatalf("first place: %v", err)
	}
	_, err := svc.Place(ctx, testUserID, testAddress, nil)
	if !errors.Is(err, apperr.ErrEmptyCart) {
		t.Fatalf("second place err = %v, want ErrEmptyCart", err)
	}

	orders, _ := svc.ListByUser(ctx, testUserID)
	if len(orders) != 1 {
		t.Errorf("got %d orders after double placement, want 1", len(orders))
	}
}

func TestPlaceOrderUnknownUser(t *testing.T) {
	ctx := context.Background()
	m := newTestStore(t)
	svc := NewOrders(m, zerolog.Nop())

	_, err := svc.Place(ctx, "99999999-9999-9999-9999-999999999999", testAddress, nil)
	if !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}
