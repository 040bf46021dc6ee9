// Package redis implements the solwatch stores on top of Redis.
//
// Layout:
//
//	address:{address}          hash  address, nickname, origin, created_at, active
//	address:active             set   active addresses
//	tx:{signature}             hash  one transaction record
//	tx:index                   zset  signatures scored by observation time (µs)
//	tx:index:{address}         zset  same, per address
//	settings:{address}         hash  min_amount, types, channel
//
// Every write is a single MULTI/EXEC block or Lua script.
package redis

import (
	"context"
	"fmt"

	"github.com/gabapcia/solwatch/internal/tracker"

	"github.com/redis/go-redis/v9"
)

type client struct {
	conn *redis.Client
}

func (c *client) Close() error {
	return c.conn.Close()
}

// storageError wraps a backend failure so callers can match tracker.ErrStorage.
func storageError(op string, err error) error {
	return fmt.Errorf("%w: redis %s: %w", tracker.ErrStorage, op, err)
}

func NewClient(ctx context.Context, addr, username, password string, db int) (*client, error) {
	conn := redis.NewClient(&redis.Options{
		Addr:     addr,
		Username: username,
		Password: password,
		DB:       db,
	})

	if err := conn.Ping(ctx).Err(); err != nil {
		_ = conn.Close()
		return nil, storageError("ping", err)
	}

	return &client{
		conn: conn,
	}, nil
}
