// Package redis builds the go-redis client the plan repository stores into.
package redis

import (
	"context"
	"crypto/tls"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/encounter-budget/internal/errors"
)

// Options configures Redis client behavior. Zero values keep go-redis defaults.
type Options struct {
	PoolSize    int
	MaxRetries  int
	DialTimeout time.Duration
	UseTLS      bool
}

// NewClient creates a client for a single instance without contacting it
func NewClient(endpoint string, opts *Options) (Client, error) {
	if endpoint == "" {
		return nil, errors.InvalidArgument("redis endpoint is required")
	}
	if opts == nil {
		opts = &Options{}
	}
	if opts.PoolSize < 0 || opts.MaxRetries < 0 {
		return nil, errors.InvalidArgumentf("redis pool size and retries must not be negative, got %d/%d",
			opts.PoolSize, opts.MaxRetries)
	}

	redisOpts := &redis.Options{
		Addr:        endpoint,
		PoolSize:    opts.PoolSize,
		MaxRetries:  opts.MaxRetries,
		DialTimeout: opts.DialTimeout,
	}

	if opts.UseTLS {
		redisOpts.TLSConfig = &tls.Config{
			InsecureSkipVerify: true, // #nosec G402 // For self-signed certs
		}
	}

	return redis.NewClient(redisOpts), nil
}

// Connect creates a client and pings it. The client is closed when the ping fails.
func Connect(ctx context.Context, endpoint string, opts *Options) (Client, error) {
	client, err := NewClient(endpoint, opts)
	if err != nil {
		return nil, err
	}

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close() // nolint:errcheck // the ping error is the one to report
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to reach redis at "+endpoint).
			WithMeta("endpoint", endpoint)
	}

	return client, nil
}
