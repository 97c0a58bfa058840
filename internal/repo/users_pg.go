package repo

import (
	"context"
	"time"

	"fitvibe/internal/apperr"
	"fitvibe/internal/models"
)

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func derefTime(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return *t
}

type usersPG struct{ q querier }

func (r *usersPG) Create(ctx context.Context, u *models.User) error {
	_, err := r.q.Exec(ctx, `
		insert into users(id, first_name, last_name, email, password_hash, created_at)
		values ($1, $2, $3, lower($4), $5, $6)
	`, u.ID, u.FirstName, u.LastName, u.Email, u.PasswordHash, u.CreatedAt)
	if isUniqueViolation(err) {
		return apperr.ErrDuplicateEmail
	}
	return err
}

const userColumns = `id, first_name, last_name, email, password_hash, created_at`

func (r *usersPG) ByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	err := r.q.QueryRow(ctx, `select `+userColumns+` from users where email = lower($1)`, email).
		Scan(&u.ID, &u.FirstName, &u.LastName, &u.Email, &u.PasswordHash, &u.CreatedAt)
	if err != nil {
		return nil, mapLookupErr(err)
	}
	return &u, nil
}

func (r *usersPG) ByID(ctx context.Context, id string) (*models.User, error) {
	var u models.User
	err := r.q.QueryRow(ctx, `select `+userColumns+` from users where id = $1`, id).
		Scan(&u.ID, &u.FirstName, &u.LastName, &u.Email, &u.PasswordHash, &u.CreatedAt)
	if err != nil {
		return nil, mapLookupErr(err)
	}
	return &u, nil
}

func (r *usersPG) ChallengesFor(ctx context.Context, userID string) ([]models.UserChallenge, error) {
	rows, err := r.q.Query(ctx, `
		select uc.challenge_id, uc.progress, uc.status,
		       c.id, c.title, c.description, c.goal, c.start_date, c.end_date
		from user_challenges uc
		left join challenges c on c.id = uc.challenge_id
		where uc.user_id = $1
		order by uc.id
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.UserChallenge{}
	for rows.Next() {
		var uc models.UserChallenge
		var cID, title, desc, goal *string
		var start, end *time.Time
		if err := rows.Scan(&uc.ChallengeID, &uc.Progress, &uc.Status,
			&cID, &title, &desc, &goal, &start, &end); err != nil {
			return nil, err
		}
		if cID != nil {
			uc.Challenge = &models.Challenge{
				ID:          *cID,
				Title:       deref(title),
				Description: deref(desc),
				Goal:        deref(goal),
				StartDate:   derefTime(start),
				EndDate:     end,
			}
		}
		out = append(out, uc)
	}
	return out, rows.Err()
}
