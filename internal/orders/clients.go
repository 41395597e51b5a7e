package orders

import (
	"context"
	"strings"

	"github.com/google/uuid"
)

func (in ClientInput) validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return invalid("client name is required")
	}
	if !validEmail(in.Email) {
		return invalid("email %q is not valid", in.Email)
	}
	return nil
}

func (in ClientInput) normalized() ClientInput {
	in.Name = strings.TrimSpace(in.Name)
	in.LastName = strings.TrimSpace(in.LastName)
	in.Company = strings.TrimSpace(in.Company)
	in.Email = normalizeEmail(in.Email)
	in.Phone = strings.TrimSpace(in.Phone)
	return in
}

func (s *Service) CreateClient(ctx context.Context, in ClientInput) (Client, error) {
	p, err := principal(ctx)
	if err != nil {
		return Client{}, err
	}
	in = in.normalized()
	if err := in.validate(); err != nil {
		return Client{}, err
	}
	c := Client{
		ID:        uuid.NewString(),
		Name:      in.Name,
		LastName:  in.LastName,
		Company:   in.Company,
		Email:     in.Email,
		Phone:     in.Phone,
		Owner:     CanonicalID(p.ID),
		CreatedAt: s.now(),
	}
	if err := s.Store.CreateClient(ctx, &c); err != nil {
		return Client{}, s.fail("create client", err)
	}
	return c, nil
}

// ownedClient resolves the client before checking ownership so that a
// missing client stays ErrNotFound.
func (s *Service) ownedClient(ctx context.Context, id string) (Client, error) {
	p, err := principal(ctx)
	if err != nil {
		return Client{}, err
	}
	c, err := s.Store.GetClient(ctx, id)
	if err != nil {
		return Client{}, err
	}
	if err := Authorize(p, c.Owner); err != nil {
		return Client{}, err
	}
	return c, nil
}

func (s *Service) GetClient(ctx context.Context, id string) (Client, error) {
	c, err := s.ownedClient(ctx, id)
	return c, s.fail("get client", err)
}

func (s *Service) UpdateClient(ctx context.Context, id string, in ClientInput) (Client, error) {
	c, err := s.ownedClient(ctx, id)
	if err != nil {
		return Client{}, s.fail("update client", err)
	}
	in = in.normalized()
	if err := in.validate(); err != nil {
		return Client{}, err
	}
	c.Name, c.LastName, c.Company, c.Email, c.Phone = in.Name, in.LastName, in.Company, in.Email, in.Phone
	if err := s.Store.UpdateClient(ctx, c); err != nil {
		return Client{}, s.fail("update client", err)
	}
	return c, nil
}

func (s *Service) DeleteClient(ctx context.Context, id string) error {
	if _, err := s.ownedClient(ctx, id); err != nil {
		return s.fail("delete client", err)
	}
	return s.fail("delete client", s.Store.DeleteClient(ctx, id))
}

// ListClients returns the clients of every seller.
func (s *Service) ListClients(ctx context.Context) ([]Client, error) {
	if _, err := principal(ctx); err != nil {
		return nil, err
	}
	cs, err := s.Store.ListClients(ctx, "")
	return cs, s.fail("list clients", err)
}

func (s *Service) MyClients(ctx context.Context) ([]Client, error) {
	p, err := principal(ctx)
	if err != nil {
		return nil, err
	}
	cs, err := s.Store.ListClients(ctx, CanonicalID(p.ID))
	return cs, s.fail("my clients", err)
}
