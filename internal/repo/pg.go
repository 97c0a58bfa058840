package repo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"fitvibe/internal/apperr"
)

// querier is satisfied by both *pgxpool.Pool and pgx.Tx, so the same
// repository code runs inside and outside a transaction.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// PG is the postgres-backed Store.
type PG struct {
	pool *pgxpool.Pool
	q    querier
}

func NewPG(pool *pgxpool.Pool) *PG {
	return &PG{pool: pool, q: pool}
}

func (s *PG) Users() Users           { return &usersPG{q: s.q} }
func (s *PG) Products() Products     { return &productsPG{q: s.q} }
func (s *PG) Carts() Carts           { return &cartsPG{q: s.q} }
func (s *PG) Orders() Orders         { return &ordersPG{q: s.q} }
func (s *PG) Challenges() Challenges { return &challengesPG{q: s.q} }
func (s *PG) Activities() Activities { return &activitiesPG{q: s.q} }

// InTx runs fn inside one serializable transaction. Order placement is
// the only caller needing cross-table atomicity.
func (s *PG) InTx(ctx context.Context, fn func(Store) error) error {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(&PG{pool: s.pool, q: tx}); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

const (
	pgUniqueViolation = "23505"
	pgInvalidTextRep  = "22P02"
)

// mapLookupErr normalizes driver-level misses: no rows and malformed
// uuid input both read as "no such entity".
func mapLookupErr(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return apperr.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgInvalidTextRep {
		return apperr.ErrNotFound
	}
	return err
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}
