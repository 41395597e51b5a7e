package postgres

import (
	"context"

	"github.com/ariefcatur/go-seller-orders/internal/orders"
)

var groupColumn = map[orders.GroupKey]string{
	orders.GroupByClient: "client_id",
	orders.GroupBySeller: "owner_id",
}

// aggregateQuery compiles a pipeline to SQL. ORDER BY is always applied
// before LIMIT.
func aggregateQuery(p orders.Pipeline) (string, []any, error) {
	if err := p.Validate(); err != nil {
		return "", nil, err
	}
	col := groupColumn[p.GroupBy]
	sql := `SELECT ` + col + ` AS key, SUM(total_cents)::bigint AS total
		FROM orders
		WHERE status = $1
		GROUP BY ` + col + `
		ORDER BY total DESC, key ASC`
	args := []any{string(p.Match)}
	if p.Limit > 0 {
		sql += `
		LIMIT $2`
		args = append(args, p.Limit)
	}
	return sql, args, nil
}

func (s *Store) Aggregate(ctx context.Context, p orders.Pipeline) ([]orders.GroupTotal, error) {
	sql, args, err := aggregateQuery(p)
	if err != nil {
		return nil, err
	}
	rows, err := s.q.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []orders.GroupTotal{}
	for rows.Next() {
		var (
			key   string
			total int64
		)
		if err := rows.Scan(&key, &total); err != nil {
			return nil, err
		}
		out = append(out, orders.GroupTotal{Key: key, TotalCents: int(total)})
	}
	return out, rows.Err()
}
