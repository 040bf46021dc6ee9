package sqldb

import (
	"context"
	"database/sql"
	"errors"

	"github.com/gabapcia/solwatch/internal/notify"
	"github.com/gabapcia/solwatch/internal/txclass"

	"github.com/shopspring/decimal"
)

func (c *client) UpsertNotificationSettings(ctx context.Context, address string, s notify.Settings) error {
	var minAmount sql.NullString
	if s.MinAmount != nil {
		minAmount = sql.NullString{String: s.MinAmount.String(), Valid: true}
	}

	_, err := c.db.ExecContext(ctx, `
		INSERT INTO notification_settings (address, min_amount, types, channel)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (address) DO UPDATE SET
			min_amount = excluded.min_amount,
			types = excluded.types,
			channel = excluded.channel
	`, address, minAmount, txclass.JoinTypes(s.Types), s.Channel)
	if err != nil {
		return storageError("upsert settings", err)
	}

	return nil
}

func (c *client) GetNotificationSettings(ctx context.Context, address string) (notify.Settings, error) {
	var (
		s         notify.Settings
		minAmount sql.NullString
		types     string
	)

	err := c.db.QueryRowContext(ctx, `
		SELECT min_amount, types, channel FROM notification_settings WHERE address = $1
	`, address).Scan(&minAmount, &types, &s.Channel)
	if errors.Is(err, sql.ErrNoRows) {
		return notify.DefaultSettings(), nil
	}
	if err != nil {
		return notify.Settings{}, storageError("get settings", err)
	}

	if minAmount.Valid {
		value, err := decimal.NewFromString(minAmount.String)
		if err != nil {
			return notify.Settings{}, storageError("decode settings", err)
		}
		s.MinAmount = &value
	}

	if s.Types, err = txclass.ParseTypes(types); err != nil {
		return notify.Settings{}, storageError("decode settings", err)
	}

	return s, nil
}

var _ notify.SettingsStorage = new(client)
