package repo

import (
	"context"

	"fitvibe/internal/models"
)

type ordersPG struct{ q querier }

func (r *ordersPG) Create(ctx context.Context, o *models.Order) error {
	_, err := r.q.Exec(ctx, `
		insert into orders(id, user_id, total_price, shipping_address, status, created_at)
		values ($1, $2, $3, $4::jsonb, $5, $6)
	`, o.ID, o.UserID, o.TotalPrice, string(o.ShippingAddress), o.Status, o.CreatedAt)
	if err != nil {
		return err
	}
	for _, it := range o.Items {
		_, err = r.q.Exec(ctx, `
			insert into order_items(order_id, product_id, name, quantity, price_at_purchase)
			values ($1, $2, $3, $4, $5)
		`, o.ID, it.ProductID, it.Name, it.Quantity, it.PriceAtPurchase)
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *ordersPG) ByUser(ctx context.Context, userID string) ([]models.Order, error) {
	rows, err := r.q.Query(ctx, `
		select id, user_id, total_price, shipping_address::text, status, created_at
		from orders
		where user_id = $1
		order by created_at desc
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Order{}
	for rows.Next() {
		var o models.Order
		var addr string
		if err := rows.Scan(&o.ID, &o.UserID, &o.TotalPrice, &addr, &o.Status, &o.CreatedAt); err != nil {
			return nil, err
		}
		o.ShippingAddress = []byte(addr)
		out = append(out, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range out {
		items, err := r.itemsFor(ctx, out[i].ID)
		if err != nil {
			return nil, err
		}
		out[i].Items = items
	}
	return out, nil
}

func (r *ordersPG) itemsFor(ctx context.Context, orderID string) ([]models.OrderItem, error) {
	rows, err := r.q.Query(ctx, `
		select oi.product_id, oi.name, oi.quantity, oi.price_at_purchase,
		       coalesce(p.image_url, '')
		from order_items oi
		left join products p on p.id = oi.product_id
		where oi.order_id = $1
		order by oi.id
	`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []models.OrderItem{}
	for rows.Next() {
		var it models.OrderItem
		if err := rows.Scan(&it.ProductID, &it.Name, &it.Quantity, &it.PriceAtPurchase, &it.ImageURL); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}
