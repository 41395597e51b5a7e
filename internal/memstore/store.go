// Package memstore keeps the whole catalog in process memory. One mutex
// serializes every operation, and InTx restores a snapshot when the
// callback fails.
package memstore

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/ariefcatur/go-seller-orders/internal/orders"
)

type data struct {
	users    map[string]orders.User
	products map[string]orders.Product
	clients  map[string]orders.Client
	orders   map[string]orders.Order
}

func (d *data) clone() *data {
	c := &data{
		users:    make(map[string]orders.User, len(d.users)),
		products: make(map[string]orders.Product, len(d.products)),
		clients:  make(map[string]orders.Client, len(d.clients)),
		orders:   make(map[string]orders.Order, len(d.orders)),
	}
	for k, v := range d.users {
		c.users[k] = v
	}
	for k, v := range d.products {
		c.products[k] = v
	}
	for k, v := range d.clients {
		c.clients[k] = v
	}
	for k, v := range d.orders {
		c.orders[k] = v
	}
	return c
}

type Store struct {
	mu   *sync.Mutex
	d    *data
	held bool // inside InTx, mu is already locked
}

var _ orders.Store = (*Store)(nil)

func New() *Store {
	return &Store{
		mu: &sync.Mutex{},
		d: &data{
			users:    map[string]orders.User{},
			products: map[string]orders.Product{},
			clients:  map[string]orders.Client{},
			orders:   map[string]orders.Order{},
		},
	}
}

func (s *Store) lock(ctx context.Context) (func(), error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s.held {
		return func() {}, nil
	}
	s.mu.Lock()
	return s.mu.Unlock, nil
}

func (s *Store) InTx(ctx context.Context, fn func(tx orders.Store) error) error {
	if s.held {
		return fn(s)
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := s.d.clone()
	if err := fn(&Store{mu: s.mu, d: s.d, held: true}); err != nil {
		*s.d = *snap
		return err
	}
	return nil
}

// ---- users ----

func (s *Store) CreateUser(ctx context.Context, u *orders.User) error {
	unlock, err := s.lock(ctx)
	if err != nil {
		return err
	}
	defer unlock()
	for _, x := range s.d.users {
		if strings.EqualFold(x.Email, u.Email) {
			return orders.ErrAlreadyExists
		}
	}
	s.d.users[u.ID] = *u
	return nil
}

func (s *Store) GetUser(ctx context.Context, id string) (orders.User, error) {
	unlock, err := s.lock(ctx)
	if err != nil {
		return orders.User{}, err
	}
	defer unlock()
	u, ok := s.d.users[id]
	if !ok {
		return orders.User{}, orders.ErrNotFound
	}
	return u, nil
}

func (s *Store) GetUserByEmail(ctx context.Context, email string) (orders.User, error) {
	unlock, err := s.lock(ctx)
	if err != nil {
		return orders.User{}, err
	}
	defer unlock()
	for _, u := range s.d.users {
		if strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}
	return orders.User{}, orders.ErrNotFound
}

// ---- products ----

func (s *Store) CreateProduct(ctx context.Context, p *orders.Product) error {
	unlock, err := s.lock(ctx)
	if err != nil {
		return err
	}
	defer unlock()
	if _, ok := s.d.products[p.ID]; ok {
		return orders.ErrAlreadyExists
	}
	s.d.products[p.ID] = *p
	return nil
}

func (s *Store) GetProduct(ctx context.Context, id string) (orders.Product, error) {
	unlock, err := s.lock(ctx)
	if err != nil {
		return orders.Product{}, err
	}
	defer unlock()
	p, ok := s.d.products[id]
	if !ok {
		return orders.Product{}, orders.ErrNotFound
	}
	return p, nil
}

func (s *Store) ListProducts(ctx context.Context) ([]orders.Product, error) {
	unlock, err := s.lock(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()
	out := make([]orders.Product, 0, len(s.d.products))
	for _, p := range s.d.products {
		out = append(out, p)
	}
	sortProducts(out)
	return out, nil
}

func (s *Store) UpdateProduct(ctx context.Context, p orders.Product) error {
	unlock, err := s.lock(ctx)
	if err != nil {
		return err
	}
	defer unlock()
	if _, ok := s.d.products[p.ID]; !ok {
		return orders.ErrNotFound
	}
	s.d.products[p.ID] = p
	return nil
}

func (s *Store) DeleteProduct(ctx context.Context, id string) error {
	unlock, err := s.lock(ctx)
	if err != nil {
		return err
	}
	defer unlock()
	if _, ok := s.d.products[id]; !ok {
		return orders.ErrNotFound
	}
	delete(s.d.products, id)
	return nil
}

func (s *Store) SearchProducts(ctx context.Context, text string, limit int) ([]orders.Product, error) {
	unlock, err := s.lock(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()
	terms := strings.Fields(strings.ToLower(text))
	var out []orders.Product
	for _, p := range s.d.products {
		name := strings.ToLower(p.Name)
		for _, t := range terms {
			if strings.Contains(name, t) {
				out = append(out, p)
				break
			}
		}
	}
	sortProducts(out)
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (s *Store) ReserveStock(ctx context.Context, id string, qty int) (orders.Product, error) {
	unlock, err := s.lock(ctx)
	if err != nil {
		return orders.Product{}, err
	}
	defer unlock()
	p, ok := s.d.products[id]
	if !ok {
		return orders.Product{}, orders.ErrNotFound
	}
	if p.Stock < qty {
		return orders.Product{}, &orders.InsufficientStockError{
			ProductID: p.ID, ProductName: p.Name, Available: p.Stock, Requested: qty,
		}
	}
	p.Stock -= qty
	s.d.products[id] = p
	return p, nil
}

func (s *Store) ReleaseStock(ctx context.Context, id string, qty int) (orders.Product, error) {
	unlock, err := s.lock(ctx)
	if err != nil {
		return orders.Product{}, err
	}
	defer unlock()
	p, ok := s.d.products[id]
	if !ok {
		return orders.Product{}, orders.ErrNotFound
	}
	p.Stock += qty
	s.d.products[id] = p
	return p, nil
}

func sortProducts(ps []orders.Product) {
	sort.Slice(ps, func(i, j int) bool {
		if ps[i].Name != ps[j].Name {
			return ps[i].Name < ps[j].Name
		}
		return ps[i].ID < ps[j].ID
	})
}
