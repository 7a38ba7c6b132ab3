package db

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"whit-sponsors/internal/config/configs"
)

// NewRedisClient parses the redis:// address and pings the server. The
// caller must close the returned client.
func NewRedisClient(ctx context.Context, cfg configs.Redis) (*redis.Client, error) {
	opts, err := redis.ParseURL(cfg.Address)
	if err != nil {
		return nil, fmt.Errorf("parse redis address: %w", err)
	}
	client := redis.NewClient(opts)

	ctxPing, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err = client.Ping(ctxPing).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return client, nil
}
