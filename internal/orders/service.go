package orders

import (
	"context"
	"errors"
	"time"

	"github.com/ariefcatur/go-seller-orders/internal/auth"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type PasswordHasher interface {
	Hash(plain string) (string, error)
	Compare(plain, digest string) bool
}

type TokenIssuer interface {
	Issue(p auth.Principal) (string, error)
}

// ProductCache sits in front of product reads. Fetch calls load on a miss.
type ProductCache interface {
	Fetch(ctx context.Context, id string, load func(ctx context.Context) (Product, error)) (Product, error)
	Invalidate(ctx context.Context, ids ...string) error
}

// Service implements every API operation on top of a Store.
type Service struct {
	Store  Store
	Hasher PasswordHasher
	Tokens TokenIssuer
	Cache  ProductCache // optional
	Events EventSink    // optional
	Log    *zap.Logger
	Name   string // producer name stamped on events

	// ReleaseStock gives reserved stock back when a pending order is
	// revised, cancelled or deleted.
	ReleaseStock bool

	Now func() time.Time
}

func (s *Service) logger() *zap.Logger {
	if s.Log == nil {
		return zap.NewNop()
	}
	return s.Log
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now().UTC()
	}
	return time.Now().UTC()
}

func principal(ctx context.Context) (*auth.Principal, error) {
	p := auth.FromContext(ctx)
	if p == nil || p.ID == "" {
		return nil, ErrCredentialsInvalid
	}
	return p, nil
}

// fail tags unexpected store errors and logs them once.
func (s *Service) fail(op string, err error) error {
	err = asInternal(op, err)
	if errors.Is(err, ErrInternal) {
		s.logger().Error("operation failed", zap.String("op", op), zap.Error(err))
	}
	return err
}

func (s *Service) invalidate(ctx context.Context, ids ...string) {
	if s.Cache == nil || len(ids) == 0 {
		return
	}
	if err := s.Cache.Invalidate(ctx, ids...); err != nil {
		s.logger().Warn("product cache invalidation failed", zap.Strings("product_ids", ids), zap.Error(err))
	}
}

// publish runs after commit. A failed emit does not undo the order, the
// projector and the cache TTL bound the staleness it can cause.
func (s *Service) publish(ctx context.Context, eventType string, o Order, reserved, released []Line) {
	payload := OrderEventPayload{
		OrderID:    o.ID,
		ClientID:   o.Client,
		OwnerID:    o.Owner,
		Status:     o.Status,
		TotalCents: o.TotalCents,
		Reserved:   toLineQty(reserved),
		Released:   toLineQty(released),
	}
	s.invalidate(ctx, payload.ProductIDs()...)
	if s.Events == nil {
		return
	}
	raw, err := marshalPayload(payload)
	if err != nil {
		s.logger().Error("encode event", zap.String("event_type", eventType), zap.Error(err))
		return
	}
	env := Envelope{
		EventID:       uuid.NewString(),
		EventType:     eventType,
		EventVersion:  1,
		OccurredAt:    s.now(),
		Producer:      s.Name,
		TraceID:       TraceID(ctx),
		CorrelationID: o.ID,
		Payload:       raw,
	}
	if err := s.Events.Emit(ctx, env); err != nil {
		s.logger().Error("emit event", zap.String("event_type", eventType),
			zap.String("order_id", o.ID), zap.Error(err))
	}
}

type traceKey struct{}

// WithTraceID attaches the request id that events carry as trace id.
func WithTraceID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, traceKey{}, id)
}

func TraceID(ctx context.Context) string {
	s, _ := ctx.Value(traceKey{}).(string)
	return s
}
