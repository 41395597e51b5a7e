package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ariefcatur/go-seller-orders/internal/orders"
	"github.com/jackc/pgx/v5"
)

const orderCols = `id, client_id, owner_id, lines, total_cents, status, created_at`

func scanOrder(row pgx.Row) (orders.Order, error) {
	var (
		o     orders.Order
		lines []byte
	)
	if err := row.Scan(&o.ID, &o.Client, &o.Owner, &lines, &o.TotalCents, &o.Status, &o.CreatedAt); err != nil {
		return orders.Order{}, mapErr(err)
	}
	if err := json.Unmarshal(lines, &o.Lines); err != nil {
		return orders.Order{}, fmt.Errorf("decode lines of order %s: %w", o.ID, err)
	}
	return o, nil
}

func encodeLines(lines []orders.Line) ([]byte, error) {
	if lines == nil {
		lines = []orders.Line{}
	}
	return json.Marshal(lines)
}

func (s *Store) CreateOrder(ctx context.Context, o *orders.Order) error {
	lines, err := encodeLines(o.Lines)
	if err != nil {
		return err
	}
	_, err = s.q.Exec(ctx, `
		INSERT INTO orders(`+orderCols+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		o.ID, o.Client, o.Owner, lines, o.TotalCents, string(o.Status), o.CreatedAt)
	return mapErr(err)
}

func (s *Store) GetOrder(ctx context.Context, id string) (orders.Order, error) {
	return scanOrder(s.q.QueryRow(ctx, `SELECT `+orderCols+` FROM orders WHERE id = $1`, id))
}

func (s *Store) ListOrders(ctx context.Context, f orders.OrderFilter) ([]orders.Order, error) {
	rows, err := s.q.Query(ctx, `
		SELECT `+orderCols+` FROM orders
		WHERE ($1 = '' OR owner_id = $1)
		  AND ($2 = '' OR status = $2)
		ORDER BY created_at, id`, f.Owner, string(f.Status))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []orders.Order{}
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

func (s *Store) UpdateOrder(ctx context.Context, o orders.Order) error {
	lines, err := encodeLines(o.Lines)
	if err != nil {
		return err
	}
	return affected(s.q.Exec(ctx, `
		UPDATE orders SET client_id = $2, lines = $3, total_cents = $4, status = $5
		WHERE id = $1`, o.ID, o.Client, lines, o.TotalCents, string(o.Status)))
}

func (s *Store) DeleteOrder(ctx context.Context, id string) error {
	return affected(s.q.Exec(ctx, `DELETE FROM orders WHERE id = $1`, id))
}
