package notify

import (
	"context"
	"slices"

	"github.com/gabapcia/solwatch/internal/pkg/validator"
	"github.com/gabapcia/solwatch/internal/txclass"

	"github.com/shopspring/decimal"
)

// Settings controls which events of an address reach the subscribers.
//
// The zero value is the default: no threshold, every type, no channel.
type Settings struct {
	// MinAmount suppresses events without an amount or with an amount below it.
	// Nil disables the threshold.
	MinAmount *decimal.Decimal `validate:"omitempty,gte=0"`

	// Types is the allow-list of transaction types. Empty means all types.
	Types []txclass.Type `validate:"dive,txtype"`

	// Channel is an opaque destination identifier handed to subscribers.
	Channel string `validate:"max=128"`
}

// Validate rejects negative thresholds and unknown types.
func (s Settings) Validate() error {
	return validator.Validate(s)
}

// DefaultSettings returns the settings used for addresses never configured.
func DefaultSettings() Settings {
	return Settings{}
}

// AllTypes reports whether the type allow-list is the "all types" sentinel.
func (s Settings) AllTypes() bool {
	return len(s.Types) == 0
}

// AllowsType reports whether events of type t pass the allow-list.
func (s Settings) AllowsType(t txclass.Type) bool {
	return s.AllTypes() || slices.Contains(s.Types, t)
}

// AllowsAmount reports whether amount passes the threshold.
func (s Settings) AllowsAmount(amount *decimal.Decimal) bool {
	if s.MinAmount == nil {
		return true
	}

	return amount != nil && amount.GreaterThanOrEqual(*s.MinAmount)
}

// SettingsStorage reads and writes per-address notification settings.
type SettingsStorage interface {
	// UpsertNotificationSettings stores settings for address, replacing any
	// previous value.
	UpsertNotificationSettings(ctx context.Context, address string, settings Settings) error

	// GetNotificationSettings returns the stored settings for address, or
	// DefaultSettings when none were stored.
	GetNotificationSettings(ctx context.Context, address string) (Settings, error)
}
