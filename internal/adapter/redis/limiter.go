package redis

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

// Limiter is a fixed-window counter per key. The first hit of a window sets
// the key's expiry, so a window starts at the first request rather than on
// a wall-clock boundary.
type Limiter struct {
	rdb    *redis.Client
	limit  int64
	window time.Duration
	logger *slog.Logger
}

func NewLimiter(rdb *redis.Client, limit int64, window time.Duration, logger *slog.Logger) *Limiter {
	return &Limiter{rdb: rdb, limit: limit, window: window, logger: logger}
}

// Allow reports whether another hit for scope and client fits in the
// current window. Redis failures allow the hit.
func (l *Limiter) Allow(ctx context.Context, scope, client string) bool {
	key := fmt.Sprintf("rl:%s:%s", scope, client)

	count, err := l.rdb.Incr(ctx, key).Result()
	if err != nil {
		l.logger.Warn("rate limiter unavailable", slog.String("key", key), slog.Any("error", err))
		return true
	}
	if count == 1 {
		if err = l.rdb.Expire(ctx, key, l.window).Err(); err != nil {
			l.logger.Warn("rate limiter expire failed", slog.String("key", key), slog.Any("error", err))
		}
	}
	return count <= l.limit
}
