package tracker

import (
	"context"
	"time"

	"github.com/gabapcia/solwatch/internal/pkg/validator"
)

// TrackedAddress is a Solana address under watch.
type TrackedAddress struct {
	Address   string `validate:"required,solana_address"`
	Nickname  string `validate:"max=64"`
	Origin    string `validate:"max=64"`
	CreatedAt time.Time
	Active    bool
}

// DisplayName returns the nickname when set, the address otherwise.
func (a TrackedAddress) DisplayName() string {
	if a.Nickname != "" {
		return a.Nickname
	}
	return a.Address
}

// addressInput is the validated input of remove-style operations.
type addressInput struct {
	Address string `validate:"required,solana_address"`
}

func validateAddress(address string) error {
	return validator.Validate(addressInput{Address: address})
}

// NewTrackedAddress validates the input and returns an active address
// created at now.
func NewTrackedAddress(address, nickname, origin string, now time.Time) (TrackedAddress, error) {
	a := TrackedAddress{
		Address:   address,
		Nickname:  nickname,
		Origin:    origin,
		CreatedAt: now.UTC(),
		Active:    true,
	}

	return a, validator.Validate(a)
}

// Storage is the persistence used by the supervisor.
//
// Implementations wrap every backend failure with ErrStorage. Each write is a
// single atomic operation.
type Storage interface {
	// UpsertTrackedAddress inserts the address or updates its nickname and
	// origin, marking it active. CreatedAt is kept from the first insert.
	UpsertTrackedAddress(ctx context.Context, address TrackedAddress) error

	// DeactivateTrackedAddress marks the address inactive and reports whether
	// it was known. Calling it twice is harmless.
	DeactivateTrackedAddress(ctx context.Context, address string) (bool, error)

	// ListActiveTrackedAddresses returns the active addresses in no particular order.
	ListActiveTrackedAddresses(ctx context.Context) ([]TrackedAddress, error)

	// RecordTransaction stores the record unless its signature already
	// exists, reporting whether it was created.
	RecordTransaction(ctx context.Context, record TransactionRecord) (bool, error)
}
