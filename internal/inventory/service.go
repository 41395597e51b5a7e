package inventory

import (
	"context"

	kafkax "github.com/ariefcatur/go-seller-orders/internal/kafka"
	"github.com/ariefcatur/go-seller-orders/internal/orders"
	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// Deduper reports whether an event id is seen for the first time.
type Deduper func(ctx context.Context, eventID string) (bool, error)

// Service keeps cached product stock in line with committed orders on every
// API replica. It consumes the order event stream.
type Service struct {
	Cache orders.ProductCache
	Dedup Deduper
	// Forget drops a dedup mark so a redelivered event is handled again.
	Forget func(ctx context.Context, eventID string) error
	Log    *zap.Logger
}

// HandleOrderEvent: dipasang sebagai handler consumer.
func (s *Service) HandleOrderEvent(ctx context.Context, m kafkago.Message) error {
	env, err := kafkax.DecodeEnvelope(m.Value)
	if err != nil {
		s.Log.Warn("skip undecodable event", zap.Int64("offset", m.Offset), zap.Error(err))
		return nil
	}
	switch env.EventType {
	case orders.EventOrderCreated, orders.EventOrderUpdated, orders.EventOrderDeleted:
	default:
		return nil
	}

	p, err := kafkax.UnwrapPayload[orders.OrderEventPayload](env.Payload)
	if err != nil {
		s.Log.Warn("skip event with bad payload", zap.String("event_id", env.EventID), zap.Error(err))
		return nil
	}

	if s.Dedup != nil {
		first, err := s.Dedup(ctx, env.EventID)
		if err != nil {
			return err
		}
		if !first {
			return nil
		}
	}

	ids := p.ProductIDs()
	if err := s.Cache.Invalidate(ctx, ids...); err != nil {
		// mark dihapus lagi, supaya redelivery tidak dianggap duplikat
		if s.Dedup != nil && s.Forget != nil {
			if ferr := s.Forget(ctx, env.EventID); ferr != nil {
				s.Log.Error("drop dedup mark", zap.String("event_id", env.EventID), zap.Error(ferr))
			}
		}
		return err
	}
	s.Log.Info("order event projected",
		zap.String("event_type", env.EventType),
		zap.String("order_id", p.OrderID),
		zap.String("status", string(p.Status)),
		zap.Strings("product_ids", ids),
	)
	return nil
}
