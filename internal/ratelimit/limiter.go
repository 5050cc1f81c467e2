package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// Limiter is a fixed-window counter per key stored in Redis.
type Limiter struct {
	rdb    *redis.Client
	prefix string
	limit  int
	window time.Duration
}

func New(rdb *redis.Client, prefix string, limit int, window time.Duration) *Limiter {
	return &Limiter{rdb: rdb, prefix: prefix, limit: limit, window: window}
}

// Allow counts one hit for key and reports whether it is within the limit.
// A non-positive limit disables limiting.
func (l *Limiter) Allow(ctx context.Context, key string) (bool, error) {
	if l.limit <= 0 {
		return true, nil
	}

	k := fmt.Sprintf("ratelimit:%s:%s", l.prefix, key)

	var (
		incr *redis.IntCmd
		ttl  *redis.DurationCmd
	)
	_, err := l.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, k)
		ttl = pipe.PTTL(ctx, k)
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("ratelimit: %w", err)
	}

	// A counter without expiry starts its window now, including one left
	// behind by an earlier failed EXPIRE.
	if ttl.Val() < 0 {
		if err := l.rdb.PExpire(ctx, k, l.window).Err(); err != nil {
			return false, fmt.Errorf("ratelimit: %w", err)
		}
	}

	return incr.Val() <= int64(l.limit), nil
}
