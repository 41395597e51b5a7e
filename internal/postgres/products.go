package postgres

import (
	"context"
	"errors"

	"github.com/ariefcatur/go-seller-orders/internal/orders"
	"github.com/jackc/pgx/v5"
)

const productCols = `id, name, price_cents, stock, created_at`

func scanProduct(row pgx.Row) (orders.Product, error) {
	var p orders.Product
	err := row.Scan(&p.ID, &p.Name, &p.PriceCents, &p.Stock, &p.CreatedAt)
	return p, mapErr(err)
}

func collectProducts(rows pgx.Rows, err error) ([]orders.Product, error) {
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []orders.Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (s *Store) CreateProduct(ctx context.Context, p *orders.Product) error {
	_, err := s.q.Exec(ctx, `
		INSERT INTO products(`+productCols+`)
		VALUES ($1, $2, $3, $4, $5)`,
		p.ID, p.Name, p.PriceCents, p.Stock, p.CreatedAt)
	return mapErr(err)
}

func (s *Store) GetProduct(ctx context.Context, id string) (orders.Product, error) {
	return scanProduct(s.q.QueryRow(ctx, `SELECT `+productCols+` FROM products WHERE id = $1`, id))
}

func (s *Store) ListProducts(ctx context.Context) ([]orders.Product, error) {
	return collectProducts(s.q.Query(ctx, `SELECT `+productCols+` FROM products ORDER BY name, id`))
}

func (s *Store) UpdateProduct(ctx context.Context, p orders.Product) error {
	return affected(s.q.Exec(ctx, `
		UPDATE products SET name = $2, price_cents = $3, stock = $4
		WHERE id = $1`, p.ID, p.Name, p.PriceCents, p.Stock))
}

func (s *Store) DeleteProduct(ctx context.Context, id string) error {
	return affected(s.q.Exec(ctx, `DELETE FROM products WHERE id = $1`, id))
}

func (s *Store) SearchProducts(ctx context.Context, text string, limit int) ([]orders.Product, error) {
	return collectProducts(s.q.Query(ctx, `
		SELECT `+productCols+` FROM products
		WHERE to_tsvector('simple', name) @@ plainto_tsquery('simple', $1)
		   OR name ILIKE '%' || $1 || '%'
		ORDER BY name, id
		LIMIT $2`, text, limit))
}

// ReserveStock checks and decrements in one statement, so two concurrent
// reservations can never both pass the check.
func (s *Store) ReserveStock(ctx context.Context, id string, qty int) (orders.Product, error) {
	p, err := scanProduct(s.q.QueryRow(ctx, `
		UPDATE products SET stock = stock - $2
		WHERE id = $1 AND stock >= $2
		RETURNING `+productCols, id, qty))
	if !errors.Is(err, orders.ErrNotFound) {
		return p, err
	}

	var (
		name  string
		stock int
	)
	if err := s.q.QueryRow(ctx, `SELECT name, stock FROM products WHERE id = $1`, id).Scan(&name, &stock); err != nil {
		return orders.Product{}, mapErr(err)
	}
	return orders.Product{}, &orders.InsufficientStockError{
		ProductID: id, ProductName: name, Available: stock, Requested: qty,
	}
}

func (s *Store) ReleaseStock(ctx context.Context, id string, qty int) (orders.Product, error) {
	return scanProduct(s.q.QueryRow(ctx, `
		UPDATE products SET stock = stock + $2
		WHERE id = $1
		RETURNING `+productCols, id, qty))
}
