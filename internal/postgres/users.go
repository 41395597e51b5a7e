package postgres

import (
	"context"

	"github.com/ariefcatur/go-seller-orders/internal/orders"
)

const userCols = `id, email, name, last_name, password_hash, created_at`

func (s *Store) CreateUser(ctx context.Context, u *orders.User) error {
	_, err := s.q.Exec(ctx, `
		INSERT INTO users(`+userCols+`)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		u.ID, u.Email, u.Name, u.LastName, u.PasswordHash, u.CreatedAt)
	return mapErr(err)
}

func (s *Store) scanUser(ctx context.Context, where string, arg any) (orders.User, error) {
	var u orders.User
	err := s.q.QueryRow(ctx, `SELECT `+userCols+` FROM users WHERE `+where, arg).
		Scan(&u.ID, &u.Email, &u.Name, &u.LastName, &u.PasswordHash, &u.CreatedAt)
	return u, mapErr(err)
}

func (s *Store) GetUser(ctx context.Context, id string) (orders.User, error) {
	return s.scanUser(ctx, `id = $1`, id)
}

func (s *Store) GetUserByEmail(ctx context.Context, email string) (orders.User, error) {
	return s.scanUser(ctx, `lower(email) = lower($1)`, email)
}
