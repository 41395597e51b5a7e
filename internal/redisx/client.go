package redisx

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

func New(addr string) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:         addr,
		DialTimeout:  2 * time.Second,
		ReadTimeout:  2 * time.Second,
		WriteTimeout: 2 * time.Second,
	})
}

// MarkOnce records that service handled id. It reports false when the mark
// already existed.
func MarkOnce(ctx context.Context, rdb *redis.Client, service, id string) (bool, error) {
	return rdb.SetNX(ctx, fmt.Sprintf(KeyDedup, service, id), "1", TTLDedup).Result()
}

// Unmark removes the mark set by MarkOnce.
func Unmark(ctx context.Context, rdb *redis.Client, service, id string) error {
	return rdb.Del(ctx, fmt.Sprintf(KeyDedup, service, id)).Err()
}
