package sqldb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/gabapcia/solwatch/internal/addressbook"
	"github.com/gabapcia/solwatch/internal/pkg/validator"
	"github.com/gabapcia/solwatch/internal/tracker"
)

const addressColumns = `address, nickname, origin, created_at, active`

func (c *client) UpsertTrackedAddress(ctx context.Context, a tracker.TrackedAddress) error {
	if !validator.IsSolanaAddress(a.Address) {
		return fmt.Errorf("%w: malformed address %q", validator.ErrValidationFailed, a.Address)
	}

	_, err := c.db.ExecContext(ctx, `
		INSERT INTO tracked_addresses (address, nickname, origin, created_at, active)
		VALUES ($1, $2, $3, $4, TRUE)
		ON CONFLICT (address) DO UPDATE SET
			nickname = excluded.nickname,
			origin = excluded.origin,
			active = TRUE
	`, a.Address, a.Nickname, a.Origin, toMicros(a.CreatedAt))
	if err != nil {
		return storageError("upsert address", err)
	}

	return nil
}

func (c *client) DeactivateTrackedAddress(ctx context.Context, address string) (bool, error) {
	res, err := c.db.ExecContext(ctx, `UPDATE tracked_addresses SET active = FALSE WHERE address = $1`, address)
	if err != nil {
		return false, storageError("deactivate address", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, storageError("deactivate address", err)
	}

	return n > 0, nil
}

func (c *client) ListActiveTrackedAddresses(ctx context.Context) ([]tracker.TrackedAddress, error) {
	rows, err := c.db.QueryContext(ctx, `SELECT `+addressColumns+` FROM tracked_addresses WHERE active = TRUE`)
	if err != nil {
		return nil, storageError("list active addresses", err)
	}
	defer rows.Close()

	var addresses []tracker.TrackedAddress
	for rows.Next() {
		a, err := scanAddress(rows)
		if err != nil {
			return nil, storageError("scan address", err)
		}
		addresses = append(addresses, a)
	}
	if err := rows.Err(); err != nil {
		return nil, storageError("list active addresses", err)
	}

	return addresses, nil
}

func (c *client) GetTrackedAddress(ctx context.Context, address string) (tracker.TrackedAddress, error) {
	row := c.db.QueryRowContext(ctx, `SELECT `+addressColumns+` FROM tracked_addresses WHERE address = $1`, address)

	a, err := scanAddress(row)
	if errors.Is(err, sql.ErrNoRows) {
		return tracker.TrackedAddress{}, tracker.ErrAddressNotFound
	}
	if err != nil {
		return tracker.TrackedAddress{}, storageError("get address", err)
	}

	return a, nil
}

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanAddress(s scanner) (tracker.TrackedAddress, error) {
	var (
		a         tracker.TrackedAddress
		createdAt int64
	)
	if err := s.Scan(&a.Address, &a.Nickname, &a.Origin, &createdAt, &a.Active); err != nil {
		return tracker.TrackedAddress{}, err
	}

	a.CreatedAt = fromMicros(createdAt)
	return a, nil
}

var (
	_ tracker.Storage     = new(client)
	_ addressbook.Storage = new(client)
)
