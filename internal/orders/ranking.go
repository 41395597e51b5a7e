package orders

import (
	"context"
	"errors"
)

// TopClients ranks clients by completed-order revenue, highest first.
func (s *Service) TopClients(ctx context.Context) ([]ClientTotal, error) {
	if _, err := principal(ctx); err != nil {
		return nil, err
	}
	rows, err := s.aggregate(ctx, TopClientsPipeline)
	if err != nil {
		return nil, err
	}
	out := make([]ClientTotal, 0, len(rows))
	for _, r := range rows {
		c, err := s.Store.GetClient(ctx, r.Key)
		if errors.Is(err, ErrNotFound) {
			c = Client{ID: r.Key}
		} else if err != nil {
			return nil, s.fail("top clients", err)
		}
		out = append(out, ClientTotal{Client: c, TotalCents: r.TotalCents})
	}
	return out, nil
}

// TopSellers returns the three sellers with the highest completed-order revenue.
func (s *Service) TopSellers(ctx context.Context) ([]SellerTotal, error) {
	if _, err := principal(ctx); err != nil {
		return nil, err
	}
	rows, err := s.aggregate(ctx, TopSellersPipeline)
	if err != nil {
		return nil, err
	}
	out := make([]SellerTotal, 0, len(rows))
	for _, r := range rows {
		u, err := s.Store.GetUser(ctx, r.Key)
		if errors.Is(err, ErrNotFound) {
			u = User{ID: r.Key}
		} else if err != nil {
			return nil, s.fail("top sellers", err)
		}
		out = append(out, SellerTotal{Seller: u, TotalCents: r.TotalCents})
	}
	return out, nil
}

func (s *Service) aggregate(ctx context.Context, p Pipeline) ([]GroupTotal, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	rows, err := s.Store.Aggregate(ctx, p)
	if err != nil {
		return nil, s.fail("aggregate "+p.String(), err)
	}
	return rows, nil
}
