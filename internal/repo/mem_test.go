package repo

import (
	"context"
	"errors"
	"testing"

	"fitvibe/internal/models"
)

func TestMemInTxRollsBackOnError(t *testing.T) {
	ctx := context.Background()
	m := NewMem()
	m.SeedUser(models.User{ID: "u1", Email: "u1@example.com"})
	m.SeedProduct(models.Product{ID: "p1", Name: "Yoga Mat", Price: 20})
	if err := m.Carts().Add(ctx, "u1", "p1", 2); err != nil {
		t.Fatalf("add: %v", err)
	}

	boom := errors.New("boom")
	err := m.InTx(ctx, func(tx Store) error {
		if err := tx.Orders().Create(ctx, &models.Order{ID: "o1", UserID: "u1"}); err != nil {
			return err
		}
		if err := tx.Carts().Clear(ctx, "u1"); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want boom", err)
	}

	items, _ := m.Carts().Items(ctx, "u1")
	if len(items) != 1 {
		t.Errorf("cart cleared despite rollback: %d items", len(items))
	}
	orders, _ := m.Orders().ByUser(ctx, "u1")
	if len(orders) != 0 {
		t.Errorf("order visible despite rollback")
	}
}

func TestMemInTxCommitsOnSuccess(t *testing.T) {
	ctx := context.Background()
	m := NewMem()
	m.SeedUser(models.User{ID: "u1", Email: "u1@example.com"})
	if err := m.Carts().Add(ctx, "u1", "p1", 1); err != nil {
		t.Fatalf("add: %v", err)
	}

	err := m.InTx(ctx, func(tx Store) error {
		if err := tx.Orders().Create(ctx, &models.Order{ID: "o1", UserID: "u1"}); err != nil {
			return err
		}
		return tx.Carts().Clear(ctx, "u1")
	})
	if err != nil {
		t.Fatalf("tx: %v", err)
	}

	items, _ := m.Carts().Items(ctx, "u1")
	if len(items) != 0 {
		t.Errorf("cart not cleared after commit")
	}
	orders, _ := m.Orders().ByUser(ctx, "u1")
	if len(orders) != 1 {
		t.Errorf("order not visible after commit")
	}
}

func TestMemCartKeepsInsertionOrder(t *testing.T) {
	ctx := context.Background()
	m := NewMem()
	for _, id := range []string{"p3", "p1", "p2"} {
		if err := m.Carts().Add(ctx, "u1", id, 1); err != nil {
			t.Fatalf("add %s: %v", id, err)
		}
	}
	items, err := m.Carts().Items(ctx, "u1")
	if err != nil {
		t.Fatalf("items: %v", err)
	}
	got := []string{items[0].ProductID, items[1].ProductID, items[2].ProductID}
	want := []string{"p3", "p1", "p2"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}
}
