// Package redis provides the Redis client and the response cache built
// on top of it.
package redis

import (
	"context"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/pharmindex/repurpose/internal/config"
	"github.com/pharmindex/repurpose/internal/infrastructure/monitoring/logging"
	apperrors "github.com/pharmindex/repurpose/pkg/errors"
)

const pingTimeout = 5 * time.Second

// Client wraps a standalone go-redis client.
type Client struct {
	rdb  redis.UniversalClient
	cfg  config.RedisConfig
	log  logging.Logger
	once sync.Once
}

// NewClient connects to Redis and verifies the connection with a ping.
func NewClient(cfg config.RedisConfig, log logging.Logger) (*Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		PoolSize:     cfg.PoolSize,
		DialTimeout:  cfg.DialTimeout,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	})

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return nil, apperrors.Wrap(err, apperrors.CodeCacheError, "redis connection failed")
	}

	log.Info("connected to redis",
		logging.String("addr", cfg.Addr),
		logging.Int("db", cfg.DB),
	)
	return &Client{rdb: rdb, cfg: cfg, log: log}, nil
}

// NewClientWithRedis wraps an existing go-redis client, used by tests.
func NewClientWithRedis(rdb redis.UniversalClient, log logging.Logger) *Client {
	return &Client{rdb: rdb, log: log}
}

// HealthCheck pings the server.
func (c *Client) HealthCheck(ctx context.Context) error {
	if err := c.rdb.Ping(ctx).Err(); err != nil {
		return apperrors.Wrap(err, apperrors.CodeCacheError, "redis health check failed")
	}
	return nil
}

// Close shuts the client down.  Safe to call more than once.
func (c *Client) Close() error {
	var err error
	c.once.Do(func() {
		err = c.rdb.Close()
		if err != nil {
			c.log.Error("failed to close redis client", logging.Err(err))
			return
		}
		c.log.Info("closed redis client")
	})
	return err
}
