package orders

import (
	"context"
	"encoding/json"
	"time"
)

const (
	EventOrderCreated = "OrderCreated"
	EventOrderUpdated = "OrderUpdated"
	EventOrderDeleted = "OrderDeleted"
)

type Envelope struct {
	EventID       string          `json:"event_id"`
	EventType     string          `json:"event_type"`
	EventVersion  int             `json:"event_version"`
	OccurredAt    time.Time       `json:"occurred_at"`
	Producer      string          `json:"producer"`
	TraceID       string          `json:"trace_id,omitempty"`
	CorrelationID string          `json:"correlation_id,omitempty"` // biasanya order_id
	Payload       json.RawMessage `json:"payload"`
}

type LineQty struct {
	ProductID string `json:"product_id"`
	Qty       int    `json:"qty"`
}

// OrderEventPayload lists the stock touched by the change: Reserved lines
// were taken from stock, Released lines were given back.
type OrderEventPayload struct {
	OrderID    string    `json:"order_id"`
	ClientID   string    `json:"client_id"`
	OwnerID    string    `json:"owner_id"`
	Status     Status    `json:"status"`
	TotalCents int       `json:"total_cents"`
	Reserved   []LineQty `json:"reserved,omitempty"`
	Released   []LineQty `json:"released,omitempty"`
}

// ProductIDs returns every product whose stock the event changed.
func (p OrderEventPayload) ProductIDs() []string {
	seen := map[string]bool{}
	var out []string
	for _, l := range append(append([]LineQty{}, p.Reserved...), p.Released...) {
		if !seen[l.ProductID] {
			seen[l.ProductID] = true
			out = append(out, l.ProductID)
		}
	}
	return out
}

// EventSink receives order events once the change is committed.
type EventSink interface {
	Emit(ctx context.Context, env Envelope) error
}

func toLineQty(lines []Line) []LineQty {
	out := make([]LineQty, 0, len(lines))
	for _, l := range lines {
		out = append(out, LineQty{ProductID: l.ProductID, Qty: l.Qty})
	}
	return out
}
