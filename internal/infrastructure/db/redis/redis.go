// Package redis holds the Redis-backed business read cache and its shared
// connection helper.
package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	clientName = "directory-api"

	defaultTimeout  = 5 * time.Second
	defaultPoolSize = 10
)

// Config holds the connection settings for the cache.
type Config struct {
	Addr string
	DB   int
	// Timeout bounds the startup ping. Zero means defaultTimeout.
	Timeout time.Duration
	// PoolSize caps the client's connection pool. Zero means defaultPoolSize.
	PoolSize int
}

// clientOptions builds the go-redis options for cfg, naming the client so
// cache connections are identifiable in CLIENT LIST output.
func clientOptions(cfg Config) *redis.Options {
	pool := cfg.PoolSize
	if pool <= 0 {
		pool = defaultPoolSize
	}
	return &redis.Options{
		Addr:       cfg.Addr,
		DB:         cfg.DB,
		PoolSize:   pool,
		ClientName: clientName,
	}
}

// Connect builds the cache client and verifies the server is reachable with
// a ping. The cache is best-effort at request time, but an unreachable Redis
// at startup is a deployment fault and fails fast.
func Connect(ctx context.Context, cfg Config) (*redis.Client, error) {
	client := redis.NewClient(clientOptions(cfg))

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return client, nil
}
