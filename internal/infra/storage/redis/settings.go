package redis

import (
	"context"
	"fmt"

	"github.com/gabapcia/solwatch/internal/notify"
	"github.com/gabapcia/solwatch/internal/txclass"

	"github.com/shopspring/decimal"
)

const settingsKeyPrefix = "settings"

func settingsKey(address string) string {
	return fmt.Sprintf("%s:%s", settingsKeyPrefix, address)
}

// UpsertNotificationSettings overwrites every field in one HSET.
func (c *client) UpsertNotificationSettings(ctx context.Context, address string, s notify.Settings) error {
	var minAmount string
	if s.MinAmount != nil {
		minAmount = s.MinAmount.String()
	}

	err := c.conn.HSet(ctx, settingsKey(address),
		"min_amount", minAmount,
		"types", txclass.JoinTypes(s.Types),
		"channel", s.Channel,
	).Err()
	if err != nil {
		return storageError("upsert settings", err)
	}

	return nil
}

func (c *client) GetNotificationSettings(ctx context.Context, address string) (notify.Settings, error) {
	fields, err := c.conn.HGetAll(ctx, settingsKey(address)).Result()
	if err != nil {
		return notify.Settings{}, storageError("get settings", err)
	}
	if len(fields) == 0 {
		return notify.DefaultSettings(), nil
	}

	s := notify.Settings{Channel: fields["channel"]}

	if raw := fields["min_amount"]; raw != "" {
		minAmount, err := decimal.NewFromString(raw)
		if err != nil {
			return notify.Settings{}, storageError("decode settings", err)
		}
		s.MinAmount = &minAmount
	}

	if s.Types, err = txclass.ParseTypes(fields["types"]); err != nil {
		return notify.Settings{}, storageError("decode settings", err)
	}

	return s, nil
}

var _ notify.SettingsStorage = new(client)
