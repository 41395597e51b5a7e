package postgres

import (
	"context"

	"github.com/ariefcatur/go-seller-orders/internal/orders"
)

const clientCols = `id, name, last_name, company, email, phone, owner_id, created_at`

func (s *Store) CreateClient(ctx context.Context, c *orders.Client) error {
	_, err := s.q.Exec(ctx, `
		INSERT INTO clients(`+clientCols+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		c.ID, c.Name, c.LastName, c.Company, c.Email, c.Phone, c.Owner, c.CreatedAt)
	return mapErr(err)
}

func (s *Store) GetClient(ctx context.Context, id string) (orders.Client, error) {
	var c orders.Client
	err := s.q.QueryRow(ctx, `SELECT `+clientCols+` FROM clients WHERE id = $1`, id).
		Scan(&c.ID, &c.Name, &c.LastName, &c.Company, &c.Email, &c.Phone, &c.Owner, &c.CreatedAt)
	return c, mapErr(err)
}

func (s *Store) ListClients(ctx context.Context, owner string) ([]orders.Client, error) {
	rows, err := s.q.Query(ctx, `
		SELECT `+clientCols+` FROM clients
		WHERE $1 = '' OR owner_id = $1
		ORDER BY created_at, id`, owner)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []orders.Client{}
	for rows.Next() {
		var c orders.Client
		if err := rows.Scan(&c.ID, &c.Name, &c.LastName, &c.Company, &c.Email, &c.Phone, &c.Owner, &c.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (s *Store) UpdateClient(ctx context.Context, c orders.Client) error {
	return affected(s.q.Exec(ctx, `
		UPDATE clients SET name = $2, last_name = $3, company = $4, email = $5, phone = $6
		WHERE id = $1`, c.ID, c.Name, c.LastName, c.Company, c.Email, c.Phone))
}

func (s *Store) DeleteClient(ctx context.Context, id string) error {
	return affected(s.q.Exec(ctx, `DELETE FROM clients WHERE id = $1`, id))
}
