package orders

import (
	"context"
	"errors"
	"math"
)

// MaxOrderTotalCents is the largest total an order row can hold.
const MaxOrderTotalCents = math.MaxInt32

// Reservation is the outcome of one successful stock decrement.
type Reservation struct {
	ProductID   string
	ProductName string
	Qty         int
	PriceCents  int
	Remaining   int
}

// Ledger owns product stock. It never reads-then-writes: both directions go
// through a single conditional store operation.
type Ledger struct{ Stock StockStore }

func NewLedger(s StockStore) Ledger { return Ledger{Stock: s} }

func (l Ledger) Reserve(ctx context.Context, productID string, qty int) (Reservation, error) {
	if qty <= 0 {
		return Reservation{}, invalid("quantity for product %s must be positive", productID)
	}
	p, err := l.Stock.ReserveStock(ctx, productID, qty)
	if err != nil {
		return Reservation{}, err
	}
	return Reservation{
		ProductID:   p.ID,
		ProductName: p.Name,
		Qty:         qty,
		PriceCents:  p.PriceCents,
		Remaining:   p.Stock,
	}, nil
}

// Release returns qty units to the product. Products deleted since the
// reservation are skipped.
func (l Ledger) Release(ctx context.Context, productID string, qty int) error {
	if qty <= 0 {
		return invalid("quantity for product %s must be positive", productID)
	}
	_, err := l.Stock.ReleaseStock(ctx, productID, qty)
	if errors.Is(err, ErrNotFound) {
		return nil
	}
	return err
}

// ReserveLines reserves every line in order and stops at the first failure.
// The caller's transaction undoes the lines already reserved.
func (l Ledger) ReserveLines(ctx context.Context, in []LineInput) ([]Line, int, error) {
	lines := make([]Line, 0, len(in))
	total := 0
	for _, it := range in {
		r, err := l.Reserve(ctx, it.ProductID, it.Qty)
		if err != nil {
			return nil, 0, err
		}
		lines = append(lines, Line{ProductID: r.ProductID, Qty: r.Qty, PriceCents: r.PriceCents})
		total += r.Qty * r.PriceCents
		if total > MaxOrderTotalCents {
			return nil, 0, invalid("order total exceeds %d cents", MaxOrderTotalCents)
		}
	}
	return lines, total, nil
}

func (l Ledger) ReleaseLines(ctx context.Context, lines []Line) error {
	for _, ln := range lines {
		if err := l.Release(ctx, ln.ProductID, ln.Qty); err != nil {
			return err
		}
	}
	return nil
}
