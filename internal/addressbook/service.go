// Package addressbook serves the read side of tracked addresses and the
// notification settings configured for them.
package addressbook

import (
	"cmp"
	"context"
	"slices"
	"time"

	"github.com/gabapcia/solwatch/internal/notify"
	"github.com/gabapcia/solwatch/internal/tracker"
)

// Service lists tracked addresses, their activity and their notification
// settings.
//
// Track and Untrack only write the store. A supervisor running in another
// process applies them on its next resync.
type Service interface {
	// Track validates and stores the address as active, updating its
	// nickname and origin when already known.
	Track(ctx context.Context, address, nickname, origin string) error

	// Untrack marks the address inactive. It returns
	// tracker.ErrAddressNotFound when the address was never tracked.
	Untrack(ctx context.Context, address string) error

	// List returns the active addresses, oldest first.
	List(ctx context.Context) ([]tracker.TrackedAddress, error)

	// Get returns one address, active or not, or tracker.ErrAddressNotFound.
	Get(ctx context.Context, address string) (tracker.TrackedAddress, error)

	// Activity returns the latest recorded transactions, newest first. An
	// empty address lists every address. limit is clamped by the store.
	Activity(ctx context.Context, address string, limit int) ([]tracker.TransactionRecord, error)

	// ConfigureNotifications replaces the settings of address.
	ConfigureNotifications(ctx context.Context, address string, settings notify.Settings) error

	// NotificationSettings returns the settings of address or the defaults.
	NotificationSettings(ctx context.Context, address string) (notify.Settings, error)
}

type service struct {
	storage Storage
	now     func() time.Time
}

var _ Service = (*service)(nil)

type Option func(*service)

// WithClock overrides the time source used for new addresses.
func WithClock(now func() time.Time) Option {
	return func(s *service) {
		s.now = now
	}
}

func New(storage Storage, opts ...Option) *service {
	s := &service{
		storage: storage,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (s *service) Track(ctx context.Context, address, nickname, origin string) error {
	tracked, err := tracker.NewTrackedAddress(address, nickname, origin, s.now())
	if err != nil {
		return err
	}

	return s.storage.UpsertTrackedAddress(ctx, tracked)
}

func (s *service) Untrack(ctx context.Context, address string) error {
	if err := validateAddress(address); err != nil {
		return err
	}

	existed, err := s.storage.DeactivateTrackedAddress(ctx, address)
	if err != nil {
		return err
	}
	if !existed {
		return tracker.ErrAddressNotFound
	}

	return nil
}

func (s *service) List(ctx context.Context) ([]tracker.TrackedAddress, error) {
	addresses, err := s.storage.ListActiveTrackedAddresses(ctx)
	if err != nil {
		return nil, err
	}

	slices.SortFunc(addresses, func(a, b tracker.TrackedAddress) int {
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(a.Address, b.Address)
	})

	return addresses, nil
}

func (s *service) Get(ctx context.Context, address string) (tracker.TrackedAddress, error) {
	if err := validateAddress(address); err != nil {
		return tracker.TrackedAddress{}, err
	}

	return s.storage.GetTrackedAddress(ctx, address)
}

func (s *service) Activity(ctx context.Context, address string, limit int) ([]tracker.TransactionRecord, error) {
	if address != "" {
		if err := validateAddress(address); err != nil {
			return nil, err
		}
	}

	return s.storage.QueryTransactions(ctx, address, limit)
}

func (s *service) ConfigureNotifications(ctx context.Context, address string, settings notify.Settings) error {
	if err := validateAddress(address); err != nil {
		return err
	}

	if err := settings.Validate(); err != nil {
		return err
	}

	return s.storage.UpsertNotificationSettings(ctx, address, settings)
}

func (s *service) NotificationSettings(ctx context.Context, address string) (notify.Settings, error) {
	if err := validateAddress(address); err != nil {
		return notify.Settings{}, err
	}

	return s.storage.GetNotificationSettings(ctx, address)
}
