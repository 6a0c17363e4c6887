// Package mongo holds the MongoDB-backed repositories for users, businesses,
// and bookings, plus the shared connection helper.
package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	appName = "directory-api"

	defaultTimeout     = 10 * time.Second
	defaultMaxPoolSize = 50
)

// Config holds the connection settings for the directory database.
type Config struct {
	URI      string
	Database string
	// Timeout bounds the initial dial and ping. Zero means defaultTimeout.
	Timeout time.Duration
	// MaxPoolSize caps the driver's connection pool. Zero means
	// defaultMaxPoolSize.
	MaxPoolSize uint64
}

// clientOptions builds the driver options for cfg, applying the pool cap and
// tagging connections with the service's app name so they are identifiable
// in db.currentOp output.
func clientOptions(cfg Config) *options.ClientOptions {
	pool := cfg.MaxPoolSize
	if pool == 0 {
		pool = defaultMaxPoolSize
	}
	return options.Client().
		ApplyURI(cfg.URI).
		SetAppName(appName).
		SetMaxPoolSize(pool)
}

// Connect dials the directory database and verifies it is reachable with a
// ping before any repository is constructed on top of it.
func Connect(ctx context.Context, cfg Config) (*mongo.Client, *mongo.Database, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	connectCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, clientOptions(cfg))
	if err != nil {
		return nil, nil, fmt.Errorf("mongo connect: %w", err)
	}

	if err := client.Ping(connectCtx, nil); err != nil {
		_ = client.Disconnect(connectCtx)
		return nil, nil, fmt.Errorf("mongo ping: %w", err)
	}

	return client, client.Database(cfg.Database), nil
}
