package orders

import (
	"fmt"
	"sort"
)

type GroupKey string

const (
	GroupByClient GroupKey = "client"
	GroupBySeller GroupKey = "seller"
)

// Pipeline is a revenue aggregation: keep orders with status Match, group
// them by GroupBy, sum their totals, sort by sum descending and only then
// keep the first Limit groups (0 keeps all).
type Pipeline struct {
	Match   Status
	GroupBy GroupKey
	Limit   int
}

type GroupTotal struct {
	Key        string
	TotalCents int
}

var (
	TopClientsPipeline = Pipeline{Match: StatusCompleted, GroupBy: GroupByClient}
	TopSellersPipeline = Pipeline{Match: StatusCompleted, GroupBy: GroupBySeller, Limit: 3}
)

func (p Pipeline) Validate() error {
	if _, ok := validNext[p.Match]; !ok {
		return invalid("unknown status %q", p.Match)
	}
	switch p.GroupBy {
	case GroupByClient, GroupBySeller:
	default:
		return invalid("unknown group key %q", p.GroupBy)
	}
	if p.Limit < 0 {
		return invalid("negative limit %d", p.Limit)
	}
	return nil
}

func (p Pipeline) key(o Order) string {
	if p.GroupBy == GroupBySeller {
		return o.Owner
	}
	return o.Client
}

// Apply evaluates the pipeline over orders held in memory.
func (p Pipeline) Apply(orders []Order) []GroupTotal {
	sums := map[string]int{}
	for _, o := range orders {
		if o.Status != p.Match {
			continue
		}
		sums[p.key(o)] += o.TotalCents
	}
	out := make([]GroupTotal, 0, len(sums))
	for k, v := range sums {
		out = append(out, GroupTotal{Key: k, TotalCents: v})
	}
	return SortAndLimit(out, p.Limit)
}

// SortAndLimit orders by total descending, ties by key, then truncates.
func SortAndLimit(rows []GroupTotal, limit int) []GroupTotal {
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].TotalCents != rows[j].TotalCents {
			return rows[i].TotalCents > rows[j].TotalCents
		}
		return rows[i].Key < rows[j].Key
	})
	if limit > 0 && len(rows) > limit {
		rows = rows[:limit]
	}
	return rows
}

func (p Pipeline) String() string {
	return fmt.Sprintf("match=%s group=%s sort=desc limit=%d", p.Match, p.GroupBy, p.Limit)
}
