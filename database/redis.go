package database

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

type RedisConfig struct {
	URL          string
	PoolSize     int
	DialTimeout  time.Duration
	MinIdleConns int
	ReadTimeout  time.Duration
	MaxRetries   int
}

// DefaultRedisConfig returns connection settings for url with the pool sizes
// the report cache needs.
func DefaultRedisConfig(url string) RedisConfig {
	return RedisConfig{
		URL:          url,
		PoolSize:     10,
		DialTimeout:  5 * time.Second,
		MinIdleConns: 2,
		ReadTimeout:  3 * time.Second,
		MaxRetries:   3,
	}
}

// NewRedisClient creates a Redis client with the provided configuration and
// pings it before returning.
func NewRedisClient(ctx context.Context, config RedisConfig, logger zerolog.Logger) (*redis.Client, error) {
	opt, err := redis.ParseURL(config.URL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse Redis URL")
	}

	opt.PoolSize = config.PoolSize
	opt.MinIdleConns = config.MinIdleConns
	opt.DialTimeout = config.DialTimeout
	opt.ReadTimeout = config.ReadTimeout
	opt.MaxRetries = config.MaxRetries

	client := redis.NewClient(opt)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, errors.Wrap(err, "failed to ping Redis server")
	}

	logger.Info().
		Int("pool_size", config.PoolSize).
		Int("min_idle_conns", config.MinIdleConns).
		Dur("dial_timeout", config.DialTimeout).
		Dur("read_timeout", config.ReadTimeout).
		Int("max_retries", config.MaxRetries).
		Msg("Redis client initialized")
	return client, nil
}

// LogRedisPool logs the connection pool statistics for monitoring
func LogRedisPool(client *redis.Client, logger zerolog.Logger) {
	stats := client.PoolStats()
	logger.Debug().
		Uint32("total", stats.TotalConns).
		Uint32("idle", stats.IdleConns).
		Uint32("stale", stats.StaleConns).
		Msg("Redis pool stats")
}
