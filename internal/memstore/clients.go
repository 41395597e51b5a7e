package memstore

import (
	"context"
	"sort"
	"strings"

	"github.com/ariefcatur/go-seller-orders/internal/orders"
)

func (s *Store) emailTaken(email, exceptID string) bool {
	for _, c := range s.d.clients {
		if c.ID != exceptID && strings.EqualFold(c.Email, email) {
			return true
		}
	}
	return false
}

func (s *Store) CreateClient(ctx context.Context, c *orders.Client) error {
	unlock, err := s.lock(ctx)
	if err != nil {
		return err
	}
	defer unlock()
	if s.emailTaken(c.Email, "") {
		return orders.ErrAlreadyExists
	}
	s.d.clients[c.ID] = *c
	return nil
}

func (s *Store) GetClient(ctx context.Context, id string) (orders.Client, error) {
	unlock, err := s.lock(ctx)
	if err != nil {
		return orders.Client{}, err
	}
	defer unlock()
	c, ok := s.d.clients[id]
	if !ok {
		return orders.Client{}, orders.ErrNotFound
	}
	return c, nil
}

func (s *Store) ListClients(ctx context.Context, owner string) ([]orders.Client, error) {
	unlock, err := s.lock(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()
	out := []orders.Client{}
	for _, c := range s.d.clients {
		if owner == "" || c.Owner == owner {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (s *Store) UpdateClient(ctx context.Context, c orders.Client) error {
	unlock, err := s.lock(ctx)
	if err != nil {
		return err
	}
	defer unlock()
	if _, ok := s.d.clients[c.ID]; !ok {
		return orders.ErrNotFound
	}
	if s.emailTaken(c.Email, c.ID) {
		return orders.ErrAlreadyExists
	}
	s.d.clients[c.ID] = c
	return nil
}

func (s *Store) DeleteClient(ctx context.Context, id string) error {
	unlock, err := s.lock(ctx)
	if err != nil {
		return err
	}
	defer unlock()
	if _, ok := s.d.clients[id]; !ok {
		return orders.ErrNotFound
	}
	delete(s.d.clients, id)
	return nil
}
