package repo

import (
	"context"
	"time"

	"fitvibe/internal/apperr"
	"fitvibe/internal/models"
)

type cartsPG struct{ q querier }

func (r *cartsPG) Items(ctx context.Context, userID string) ([]models.CartItem, error) {
	rows, err := r.q.Query(ctx, `
		select ci.product_id, ci.quantity,
		       p.id, p.name, p.description, p.price, p.category, coalesce(p.image_url, ''), p.stock, p.created_at
		from cart_items ci
		left join products p on p.id = ci.product_id
		where ci.user_id = $1
		order by ci.id
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.CartItem{}
	for rows.Next() {
		var it models.CartItem
		var pID, name, desc, category, imageURL *string
		var price *float64
		var stock *int
		var created *time.Time
		if err := rows.Scan(&it.ProductID, &it.Quantity,
			&pID, &name, &desc, &price, &category, &imageURL, &stock, &created); err != nil {
			return nil, err
		}
		if pID != nil {
			it.Product = &models.Product{
				ID:          *pID,
				Name:        deref(name),
				Description: deref(desc),
				Price:       *price,
				Category:    deref(category),
				ImageURL:    deref(imageURL),
				Stock:       *stock,
				CreatedAt:   derefTime(created),
			}
		}
		out = append(out, it)
	}
	return out, rows.Err()
}

func (r *cartsPG) Add(ctx context.Context, userID, productID string, quantity int) error {
	// Accumulate, never overwrite: adding 2 then 3 of the same product
	// leaves one entry with quantity 5.
	_, err := r.q.Exec(ctx, `
		insert into cart_items(user_id, product_id, quantity)
		values ($1, $2, $3)
		on conflict (user_id, product_id)
		do update set quantity = cart_items.quantity + excluded.quantity
	`, userID, productID, quantity)
	return err
}

func (r *cartsPG) Remove(ctx context.Context, userID, productID string) error {
	ct, err := r.q.Exec(ctx, `
		delete from cart_items where user_id = $1 and product_id = $2
	`, userID, productID)
	if err != nil {
		return mapLookupErr(err)
	}
	if ct.RowsAffected() == 0 {
		return apperr.ErrNotFound
	}
	return nil
}

func (r *cartsPG) Clear(ctx context.Context, userID string) error {
	_, err := r.q.Exec(ctx, `delete from cart_items where user_id = $1`, userID)
	return err
}
