package orders

import (
	"context"
	"strings"

	"github.com/google/uuid"
)

const searchLimit = 10

func (in ProductInput) validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return invalid("product name is required")
	}
	if in.PriceCents < 0 {
		return invalid("price must not be negative")
	}
	if in.Stock < 0 {
		return invalid("stock must not be negative")
	}
	return nil
}

func (s *Service) CreateProduct(ctx context.Context, in ProductInput) (Product, error) {
	if _, err := principal(ctx); err != nil {
		return Product{}, err
	}
	if err := in.validate(); err != nil {
		return Product{}, err
	}
	p := Product{
		ID:         uuid.NewString(),
		Name:       strings.TrimSpace(in.Name),
		PriceCents: in.PriceCents,
		Stock:      in.Stock,
		CreatedAt:  s.now(),
	}
	if err := s.Store.CreateProduct(ctx, &p); err != nil {
		return Product{}, s.fail("create product", err)
	}
	return p, nil
}

func (s *Service) ListProducts(ctx context.Context) ([]Product, error) {
	if _, err := principal(ctx); err != nil {
		return nil, err
	}
	ps, err := s.Store.ListProducts(ctx)
	return ps, s.fail("list products", err)
}

func (s *Service) GetProduct(ctx context.Context, id string) (Product, error) {
	if _, err := principal(ctx); err != nil {
		return Product{}, err
	}
	var (
		p   Product
		err error
	)
	if s.Cache != nil {
		p, err = s.Cache.Fetch(ctx, id, func(ctx context.Context) (Product, error) {
			return s.Store.GetProduct(ctx, id)
		})
	} else {
		p, err = s.Store.GetProduct(ctx, id)
	}
	if err != nil {
		return Product{}, s.fail("get product", err)
	}
	return p, nil
}

func (s *Service) UpdateProduct(ctx context.Context, id string, in ProductInput) (Product, error) {
	if _, err := principal(ctx); err != nil {
		return Product{}, err
	}
	if err := in.validate(); err != nil {
		return Product{}, err
	}
	p, err := s.Store.GetProduct(ctx, id)
	if err != nil {
		return Product{}, s.fail("update product", err)
	}
	p.Name = strings.TrimSpace(in.Name)
	p.PriceCents = in.PriceCents
	p.Stock = in.Stock
	if err := s.Store.UpdateProduct(ctx, p); err != nil {
		return Product{}, s.fail("update product", err)
	}
	s.invalidate(ctx, p.ID)
	return p, nil
}

// DeleteProduct is a hard delete. Orders keep their dangling line references.
func (s *Service) DeleteProduct(ctx context.Context, id string) error {
	if _, err := principal(ctx); err != nil {
		return err
	}
	if _, err := s.Store.GetProduct(ctx, id); err != nil {
		return s.fail("delete product", err)
	}
	if err := s.Store.DeleteProduct(ctx, id); err != nil {
		return s.fail("delete product", err)
	}
	s.invalidate(ctx, id)
	return nil
}

func (s *Service) SearchProducts(ctx context.Context, text string) ([]Product, error) {
	if _, err := principal(ctx); err != nil {
		return nil, err
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, invalid("search text is required")
	}
	ps, err := s.Store.SearchProducts(ctx, text, searchLimit)
	return ps, s.fail("search products", err)
}
