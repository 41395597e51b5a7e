package redisx

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/ariefcatur/go-seller-orders/internal/orders"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// ProductCache is a cache-aside layer for product reads. Concurrent misses
// on the same product share one load. Redis failures degrade to the loader.
type ProductCache struct {
	rdb   *redis.Client
	ttl   time.Duration
	log   *zap.Logger
	group singleflight.Group
}

func NewProductCache(rdb *redis.Client, ttl time.Duration, log *zap.Logger) *ProductCache {
	if ttl <= 0 {
		ttl = TTLProductCache
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &ProductCache{rdb: rdb, ttl: ttl, log: log}
}

func (c *ProductCache) Fetch(ctx context.Context, id string, load func(ctx context.Context) (orders.Product, error)) (orders.Product, error) {
	key := fmt.Sprintf(KeyProduct, id)

	b, err := c.rdb.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var p orders.Product
		if err := json.Unmarshal(b, &p); err == nil {
			return p, nil
		}
		c.log.Warn("drop undecodable cached product", zap.String("key", key))
	case !errors.Is(err, redis.Nil):
		c.log.Warn("product cache read failed", zap.String("key", key), zap.Error(err))
	}

	v, err, _ := c.group.Do(key, func() (any, error) {
		p, err := load(ctx)
		if err != nil {
			return orders.Product{}, err
		}
		raw, err := json.Marshal(p)
		if err == nil {
			err = c.rdb.Set(ctx, key, raw, c.ttl).Err()
		}
		if err != nil {
			c.log.Warn("product cache write failed", zap.String("key", key), zap.Error(err))
		}
		return p, nil
	})
	if err != nil {
		return orders.Product{}, err
	}
	return v.(orders.Product), nil
}

func (c *ProductCache) Invalidate(ctx context.Context, ids ...string) error {
	if len(ids) == 0 {
		return nil
	}
	keys := make([]string, 0, len(ids))
	for _, id := range ids {
		keys = append(keys, fmt.Sprintf(KeyProduct, id))
	}
	return c.rdb.Del(ctx, keys...).Err()
}
