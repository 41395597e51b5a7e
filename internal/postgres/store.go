package postgres

import (
	"context"
	"errors"

	"github.com/ariefcatur/go-seller-orders/internal/orders"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Store implements orders.Store on Postgres. A Store returned to an InTx
// callback runs every statement in that transaction.
type Store struct {
	DB *pgxpool.Pool
	q  querier
	tx bool
}

var _ orders.Store = (*Store)(nil)

func NewStore(db *pgxpool.Pool) *Store { return &Store{DB: db, q: db} }

func (s *Store) InTx(ctx context.Context, fn func(tx orders.Store) error) error {
	if s.tx {
		return fn(s)
	}
	tx, err := s.DB.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(&Store{DB: s.DB, q: tx, tx: true}); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

const uniqueViolation = "23505"

// mapErr turns driver errors the domain cares about into its sentinels.
func mapErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return orders.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return orders.ErrAlreadyExists
	}
	return err
}

func affected(ct pgconn.CommandTag, err error) error {
	if err != nil {
		return mapErr(err)
	}
	if ct.RowsAffected() == 0 {
		return orders.ErrNotFound
	}
	return nil
}
