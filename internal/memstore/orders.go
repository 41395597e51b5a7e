package memstore

import (
	"context"
	"sort"

	"github.com/ariefcatur/go-seller-orders/internal/orders"
)

func copyOrder(o orders.Order) orders.Order {
	o.Lines = append([]orders.Line(nil), o.Lines...)
	return o
}

func (s *Store) CreateOrder(ctx context.Context, o *orders.Order) error {
	unlock, err := s.lock(ctx)
	if err != nil {
		return err
	}
	defer unlock()
	if _, ok := s.d.orders[o.ID]; ok {
		return orders.ErrAlreadyExists
	}
	s.d.orders[o.ID] = copyOrder(*o)
	return nil
}

func (s *Store) GetOrder(ctx context.Context, id string) (orders.Order, error) {
	unlock, err := s.lock(ctx)
	if err != nil {
		return orders.Order{}, err
	}
	defer unlock()
	o, ok := s.d.orders[id]
	if !ok {
		return orders.Order{}, orders.ErrNotFound
	}
	return copyOrder(o), nil
}

func (s *Store) ListOrders(ctx context.Context, f orders.OrderFilter) ([]orders.Order, error) {
	unlock, err := s.lock(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()
	out := []orders.Order{}
	for _, o := range s.d.orders {
		if f.Owner != "" && o.Owner != f.Owner {
			continue
		}
		if f.Status != "" && o.Status != f.Status {
			continue
		}
		out = append(out, copyOrder(o))
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (s *Store) UpdateOrder(ctx context.Context, o orders.Order) error {
	unlock, err := s.lock(ctx)
	if err != nil {
		return err
	}
	defer unlock()
	if _, ok := s.d.orders[o.ID]; !ok {
		return orders.ErrNotFound
	}
	s.d.orders[o.ID] = copyOrder(o)
	return nil
}

func (s *Store) DeleteOrder(ctx context.Context, id string) error {
	unlock, err := s.lock(ctx)
	if err != nil {
		return err
	}
	defer unlock()
	if _, ok := s.d.orders[id]; !ok {
		return orders.ErrNotFound
	}
	delete(s.d.orders, id)
	return nil
}

func (s *Store) Aggregate(ctx context.Context, p orders.Pipeline) ([]orders.GroupTotal, error) {
	unlock, err := s.lock(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()
	all := make([]orders.Order, 0, len(s.d.orders))
	for _, o := range s.d.orders {
		all = append(all, o)
	}
	return p.Apply(all), nil
}
