package cache

import (
	"context"
	"log/slog"
	"time"

	"experience-booking/internal/pkg/config"

	"github.com/redis/go-redis/v9"
)

// NewStore returns a redis-backed store when caching is enabled and redis
// answers a ping, and a NoopCache otherwise. The returned client is nil
// whenever the store is a NoopCache.
func NewStore(ctx context.Context, cfg config.CacheConfig, logger *slog.Logger) (Store, *redis.Client) {
	if !cfg.Enabled {
		logger.Info("Response cache disabled")
		return NewNoopCache(), nil
	}

	timeout := cfg.DialTimeout
	if timeout <= 0 {
		timeout = 2 * time.Second
	}

	client := redis.NewClient(&redis.Options{
		Addr:        cfg.RedisAddr,
		Password:    cfg.RedisPassword,
		DB:          cfg.RedisDB,
		DialTimeout: timeout,
	})

	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		logger.Warn("Redis unreachable, response cache disabled", "addr", cfg.RedisAddr, "error", err)
		_ = client.Close()
		return NewNoopCache(), nil
	}

	logger.Info("Response cache enabled", "addr", cfg.RedisAddr, "ttl", cfg.TTL)
	return NewRedisCache(client, cfg, logger), client
}
