package addressbook

import (
	"context"

	"github.com/gabapcia/solwatch/internal/notify"
	"github.com/gabapcia/solwatch/internal/pkg/validator"
	"github.com/gabapcia/solwatch/internal/tracker"
)

// Storage is the persistence used by the address book.
type Storage interface {
	notify.SettingsStorage

	UpsertTrackedAddress(ctx context.Context, address tracker.TrackedAddress) error
	DeactivateTrackedAddress(ctx context.Context, address string) (bool, error)
	GetTrackedAddress(ctx context.Context, address string) (tracker.TrackedAddress, error)
	ListActiveTrackedAddresses(ctx context.Context) ([]tracker.TrackedAddress, error)
	QueryTransactions(ctx context.Context, address string, limit int) ([]tracker.TransactionRecord, error)
}

type addressInput struct {
	Address string `validate:"required,solana_address"`
}

func validateAddress(address string) error {
	return validator.Validate(addressInput{Address: address})
}
