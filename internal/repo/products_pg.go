package repo

import (
	"context"
	"fmt"
	"strings"

	"fitvibe/internal/models"
)

type productsPG struct{ q querier }

const productColumns = `id, name, description, price, category, coalesce(image_url, ''), stock, created_at`

func (r *productsPG) List(ctx context.Context, f ProductFilter) ([]models.Product, error) {
	var (
		conds []string
		args  []any
	)
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if f.Query != "" {
		conds = append(conds, `name ilike '%' || `+arg(f.Query)+` || '%'`)
	}
	if f.Category != "" {
		conds = append(conds, `category ilike '%' || `+arg(f.Category)+` || '%'`)
	}
	if f.MinPrice != nil {
		conds = append(conds, `price >= `+arg(*f.MinPrice))
	}
	if f.MaxPrice != nil {
		conds = append(conds, `price <= `+arg(*f.MaxPrice))
	}

	sql := `select ` + productColumns + ` from products`
	if len(conds) > 0 {
		sql += ` where ` + strings.Join(conds, " and ")
	}
	switch f.Sort {
	case "price_asc":
		sql += ` order by price asc`
	case "price_desc":
		sql += ` order by price desc`
	default:
		sql += ` order by created_at desc`
	}

	rows, err := r.q.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Product{}
	for rows.Next() {
		var p models.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Price,
			&p.Category, &p.ImageURL, &p.Stock, &p.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *productsPG) ByID(ctx context.Context, id string) (*models.Product, error) {
	var p models.Product
	err := r.q.QueryRow(ctx, `select `+productColumns+` from products where id = $1`, id).
		Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Category, &p.ImageURL, &p.Stock, &p.CreatedAt)
	if err != nil {
		return nil, mapLookupErr(err)
	}
	return &p, nil
}
