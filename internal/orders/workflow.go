package orders

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func validateLines(lines []LineInput) error {
	if len(lines) == 0 {
		return invalid("an order needs at least one line")
	}
	for i, l := range lines {
		if strings.TrimSpace(l.ProductID) == "" {
			return invalid("line %d has no product", i+1)
		}
		if l.Qty <= 0 {
			return invalid("line %d quantity must be positive", i+1)
		}
	}
	return nil
}

// CreateOrder reserves stock for every line and stores the order in one
// transaction: either all reservations and the order commit, or nothing does.
func (s *Service) CreateOrder(ctx context.Context, in OrderInput) (Order, error) {
	p, err := principal(ctx)
	if err != nil {
		return Order{}, err
	}
	if strings.TrimSpace(in.Client) == "" {
		return Order{}, invalid("client is required")
	}
	if err := validateLines(in.Lines); err != nil {
		return Order{}, err
	}
	if in.Status != "" {
		st, err := ParseStatus(string(in.Status))
		if err != nil {
			return Order{}, err
		}
		if st != StatusPending {
			return Order{}, invalid("new orders start as %s", StatusPending)
		}
	}

	var out Order
	err = s.Store.InTx(ctx, func(tx Store) error {
		c, err := tx.GetClient(ctx, in.Client)
		if err != nil {
			return err
		}
		if err := Authorize(p, c.Owner); err != nil {
			return err
		}
		lines, total, err := NewLedger(tx).ReserveLines(ctx, in.Lines)
		if err != nil {
			return err
		}
		out = Order{
			ID:         uuid.NewString(),
			Client:     c.ID,
			Owner:      CanonicalID(p.ID),
			Lines:      lines,
			TotalCents: total,
			Status:     StatusPending,
			CreatedAt:  s.now(),
		}
		return tx.CreateOrder(ctx, &out)
	})
	if err != nil {
		return Order{}, s.fail("create order", err)
	}

	s.logger().Info("order created", zap.String("order_id", out.ID),
		zap.String("owner", out.Owner), zap.Int("total_cents", out.TotalCents))
	s.publish(ctx, EventOrderCreated, out, out.Lines, nil)
	return out, nil
}

// UpdateOrder revises client, lines and status of an order. The new client
// must belong to the caller, and so must the order itself.
func (s *Service) UpdateOrder(ctx context.Context, id string, in OrderInput) (Order, error) {
	p, err := principal(ctx)
	if err != nil {
		return Order{}, err
	}
	if in.Lines != nil {
		if err := validateLines(in.Lines); err != nil {
			return Order{}, err
		}
	}
	if in.Status != "" {
		st, err := ParseStatus(string(in.Status))
		if err != nil {
			return Order{}, err
		}
		in.Status = st
	}

	var (
		out                Order
		reserved, released []Line
	)
	err = s.Store.InTx(ctx, func(tx Store) error {
		cur, err := tx.GetOrder(ctx, id)
		if err != nil {
			return err
		}
		clientID := in.Client
		if strings.TrimSpace(clientID) == "" {
			clientID = cur.Client
		}
		c, err := tx.GetClient(ctx, clientID)
		if err != nil {
			return err
		}
		if err := Authorize(p, c.Owner); err != nil {
			return err
		}
		if err := Authorize(p, cur.Owner); err != nil {
			return err
		}

		target := cur.Status
		if in.Status != "" {
			target = in.Status
		}
		if target != cur.Status && !CanTransition(cur.Status, target) {
			return invalid("order cannot move from %s to %s", cur.Status, target)
		}

		ledger := NewLedger(tx)
		next := cur
		next.Client = c.ID
		if in.Lines != nil {
			if cur.Status != StatusPending {
				return invalid("only %s orders can be revised", StatusPending)
			}
			if s.ReleaseStock {
				if err := ledger.ReleaseLines(ctx, cur.Lines); err != nil {
					return err
				}
				released = append(released, cur.Lines...)
			}
			lines, total, err := ledger.ReserveLines(ctx, in.Lines)
			if err != nil {
				return err
			}
			next.Lines, next.TotalCents = lines, total
			reserved = lines
		}
		if target == StatusCancelled && cur.Status == StatusPending && s.ReleaseStock {
			if err := ledger.ReleaseLines(ctx, next.Lines); err != nil {
				return err
			}
			released = append(released, next.Lines...)
		}
		next.Status = target

		if err := tx.UpdateOrder(ctx, next); err != nil {
			return err
		}
		out = next
		return nil
	})
	if err != nil {
		return Order{}, s.fail("update order", err)
	}

	s.logger().Info("order updated", zap.String("order_id", out.ID),
		zap.String("status", string(out.Status)), zap.Int("total_cents", out.TotalCents))
	s.publish(ctx, EventOrderUpdated, out, reserved, released)
	return out, nil
}

// DeleteOrder is guarded by the order's own owner. Stock held by a pending
// order goes back when ReleaseStock is set.
func (s *Service) DeleteOrder(ctx context.Context, id string) error {
	p, err := principal(ctx)
	if err != nil {
		return err
	}
	var (
		cur      Order
		released []Line
	)
	err = s.Store.InTx(ctx, func(tx Store) error {
		cur, err = tx.GetOrder(ctx, id)
		if err != nil {
			return err
		}
		if err := Authorize(p, cur.Owner); err != nil {
			return err
		}
		if s.ReleaseStock && cur.Status == StatusPending {
			if err := NewLedger(tx).ReleaseLines(ctx, cur.Lines); err != nil {
				return err
			}
			released = cur.Lines
		}
		return tx.DeleteOrder(ctx, id)
	})
	if err != nil {
		return s.fail("delete order", err)
	}

	s.logger().Info("order deleted", zap.String("order_id", id))
	s.publish(ctx, EventOrderDeleted, cur, nil, released)
	return nil
}

// GetOrder answers ErrCredentialsInvalid, not an empty result, when the
// order belongs to another seller.
func (s *Service) GetOrder(ctx context.Context, id string) (Order, error) {
	p, err := principal(ctx)
	if err != nil {
		return Order{}, err
	}
	o, err := s.Store.GetOrder(ctx, id)
	if err != nil {
		return Order{}, s.fail("get order", err)
	}
	if err := Authorize(p, o.Owner); err != nil {
		return Order{}, err
	}
	return o, nil
}

func (s *Service) ListOrders(ctx context.Context) ([]Order, error) {
	if _, err := principal(ctx); err != nil {
		return nil, err
	}
	os, err := s.Store.ListOrders(ctx, OrderFilter{})
	return os, s.fail("list orders", err)
}

func (s *Service) MyOrders(ctx context.Context) ([]Order, error) {
	p, err := principal(ctx)
	if err != nil {
		return nil, err
	}
	os, err := s.Store.ListOrders(ctx, OrderFilter{Owner: CanonicalID(p.ID)})
	return os, s.fail("my orders", err)
}

func (s *Service) OrdersByStatus(ctx context.Context, status string) ([]Order, error) {
	p, err := principal(ctx)
	if err != nil {
		return nil, err
	}
	st, err := ParseStatus(status)
	if err != nil {
		return nil, err
	}
	os, err := s.Store.ListOrders(ctx, OrderFilter{Owner: CanonicalID(p.ID), Status: st})
	return os, s.fail("orders by status", err)
}
