// Package sqldb implements the solwatch stores on database/sql.
//
// The sqlite3 and postgres drivers are supported. Both accept the $N
// placeholders and the ON CONFLICT clauses used here. Timestamps are stored
// as unix microseconds so ordering is identical on both engines.
package sqldb

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/gabapcia/solwatch/internal/tracker"

	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
)

const (
	DriverSQLite   = "sqlite3"
	DriverPostgres = "postgres"

	// MaxQueryLimit bounds QueryTransactions results.
	MaxQueryLimit = 50
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS tracked_addresses (
		address    TEXT PRIMARY KEY,
		nickname   TEXT NOT NULL DEFAULT '',
		origin     TEXT NOT NULL DEFAULT '',
		created_at BIGINT NOT NULL,
		active     BOOLEAN NOT NULL DEFAULT TRUE
	)`,
	`CREATE INDEX IF NOT EXISTS tracked_addresses_active_idx ON tracked_addresses (active)`,
	`CREATE TABLE IF NOT EXISTS transactions (
		signature   TEXT PRIMARY KEY,
		address     TEXT NOT NULL,
		type        TEXT NOT NULL,
		amount      TEXT,
		mint        TEXT NOT NULL DEFAULT '',
		observed_at BIGINT NOT NULL,
		block_time  BIGINT,
		slot        BIGINT NOT NULL DEFAULT 0
	)`,
	`CREATE INDEX IF NOT EXISTS transactions_address_idx ON transactions (address, observed_at DESC, slot DESC)`,
	`CREATE INDEX IF NOT EXISTS transactions_observed_idx ON transactions (observed_at DESC, slot DESC)`,
	`CREATE TABLE IF NOT EXISTS notification_settings (
		address    TEXT PRIMARY KEY,
		min_amount TEXT,
		types      TEXT NOT NULL DEFAULT 'all',
		channel    TEXT NOT NULL DEFAULT ''
	)`,
}

// Config describes the database connection.
type Config struct {
	Driver          string
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

type client struct {
	db *sql.DB
}

func (c *client) Close() error {
	return c.db.Close()
}

// storageError wraps a backend failure so callers can match tracker.ErrStorage.
func storageError(op string, err error) error {
	return fmt.Errorf("%w: sql %s: %w", tracker.ErrStorage, op, err)
}

// New opens the database, checks the connection and creates the schema when
// missing.
func New(ctx context.Context, cfg Config) (*client, error) {
	switch cfg.Driver {
	case DriverSQLite, DriverPostgres:
	default:
		return nil, storageError("open", fmt.Errorf("unsupported driver %q", cfg.Driver))
	}

	db, err := sql.Open(cfg.Driver, cfg.DSN)
	if err != nil {
		return nil, storageError("open", err)
	}

	if cfg.Driver == DriverSQLite {
		// sqlite allows a single writer.
		db.SetMaxOpenConns(1)
	} else {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
		db.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, storageError("ping", err)
	}

	c := &client{db: db}
	if err := c.createSchema(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	return c, nil
}

func (c *client) createSchema(ctx context.Context) error {
	for _, stmt := range schema {
		if _, err := c.db.ExecContext(ctx, stmt); err != nil {
			return storageError("create schema", err)
		}
	}
	return nil
}

func toMicros(t time.Time) int64 {
	return t.UTC().UnixMicro()
}

func fromMicros(us int64) time.Time {
	return time.UnixMicro(us).UTC()
}
