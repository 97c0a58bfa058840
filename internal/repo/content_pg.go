package repo

import (
	"context"

	"fitvibe/internal/models"
)

type challengesPG struct{ q querier }

const challengeColumns = `id, title, description, goal, start_date, end_date`

func (r *challengesPG) List(ctx context.Context) ([]models.Challenge, error) {
	rows, err := r.q.Query(ctx, `select `+challengeColumns+` from challenges order by start_date desc`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Challenge{}
	for rows.Next() {
		var c models.Challenge
		if err := rows.Scan(&c.ID, &c.Title, &c.Description, &c.Goal, &c.StartDate, &c.EndDate); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *challengesPG) ByID(ctx context.Context, id string) (*models.Challenge, error) {
	var c models.Challenge
	err := r.q.QueryRow(ctx, `select `+challengeColumns+` from challenges where id = $1`, id).
		Scan(&c.ID, &c.Title, &c.Description, &c.Goal, &c.StartDate, &c.EndDate)
	if err != nil {
		return nil, mapLookupErr(err)
	}
	return &c, nil
}

type activitiesPG struct{ q querier }

func (r *activitiesPG) BySlug(ctx context.Context, slug string) (*models.Activity, error) {
	var a models.Activity
	var content string
	err := r.q.QueryRow(ctx, `
		select slug, title, coalesce(description, ''), content::text
		from activities
		where slug = lower($1)
	`, slug).Scan(&a.Slug, &a.Title, &a.Description, &content)
	if err != nil {
		return nil, mapLookupErr(err)
	}
	a.Content = []byte(content)
	return &a, nil
}
