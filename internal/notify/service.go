// Package notify decides whether a transaction event should be delivered
// according to the address settings, and fans delivered events out to the
// registered subscribers.
package notify

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/gabapcia/solwatch/internal/pkg/logger"
)

// DefaultSubscriberTimeout bounds a single subscriber call.
const DefaultSubscriberTimeout = 10 * time.Second

// SubscriptionID identifies a registered subscriber.
type SubscriptionID uint64

type Service interface {
	// Subscribe appends sub to the delivery list. Subscribers are invoked in
	// registration order.
	Subscribe(name string, sub Subscriber) SubscriptionID

	// Unsubscribe removes a subscriber, reporting whether it was registered.
	Unsubscribe(id SubscriptionID) bool

	// ShouldDeliver applies settings to event.
	ShouldDeliver(settings Settings, event Event) bool

	// Dispatch loads the address settings and, when they allow it, hands the
	// event to every subscriber. Subscriber failures are logged and never
	// returned; the error reports a settings read failure only.
	Dispatch(ctx context.Context, event Event) (delivered bool, err error)
}

type subscription struct {
	id   SubscriptionID
	name string
	sub  Subscriber
}

type service struct {
	mu            sync.RWMutex
	subscriptions []subscription
	nextID        SubscriptionID

	settingsStorage   SettingsStorage
	subscriberTimeout time.Duration
}

var _ Service = (*service)(nil)

func (s *service) Subscribe(name string, sub Subscriber) SubscriptionID {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	s.subscriptions = append(s.subscriptions, subscription{
		id:   s.nextID,
		name: name,
		sub:  sub,
	})

	return s.nextID
}

func (s *service) Unsubscribe(id SubscriptionID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, subscription := range s.subscriptions {
		if subscription.id == id {
			s.subscriptions = append(s.subscriptions[:i:i], s.subscriptions[i+1:]...)
			return true
		}
	}

	return false
}

func (s *service) ShouldDeliver(settings Settings, event Event) bool {
	return settings.AllowsAmount(event.Amount) && settings.AllowsType(event.Type)
}

func (s *service) Dispatch(ctx context.Context, event Event) (bool, error) {
	settings, err := s.settingsStorage.GetNotificationSettings(ctx, event.Address)
	if err != nil {
		return false, fmt.Errorf("get notification settings: %w", err)
	}

	if !s.ShouldDeliver(settings, event) {
		logger.Debug(ctx, "notification suppressed by settings",
			"event.address", event.Address,
			"event.signature", event.Signature,
			"event.type", event.Type,
			"event.amount", event.AmountString(),
		)
		return false, nil
	}

	event.Channel = settings.Channel

	s.mu.RLock()
	subscriptions := make([]subscription, len(s.subscriptions))
	copy(subscriptions, s.subscriptions)
	s.mu.RUnlock()

	for _, subscription := range subscriptions {
		if err := s.deliver(ctx, subscription, event); err != nil {
			logger.Error(ctx, "subscriber failed",
				"subscriber", subscription.name,
				"event.id", event.ID,
				"event.signature", event.Signature,
				"error", err,
			)
		}
	}

	return true, nil
}

// deliver calls one subscriber under its own timeout, turning a panic into
// an error.
func (s *service) deliver(ctx context.Context, subscription subscription, event Event) (err error) {
	ctx, cancel := context.WithTimeout(ctx, s.subscriberTimeout)
	defer cancel()

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("subscriber panicked: %v", r)
		}
	}()

	return subscription.sub.Notify(ctx, event)
}

type config struct {
	subscriberTimeout time.Duration
}

type Option func(*config)

// WithSubscriberTimeout bounds each subscriber call. Non-positive values are ignored.
func WithSubscriberTimeout(d time.Duration) Option {
	return func(c *config) {
		if d > 0 {
			c.subscriberTimeout = d
		}
	}
}

func New(settingsStorage SettingsStorage, opts ...Option) *service {
	cfg := config{
		subscriberTimeout: DefaultSubscriberTimeout,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &service{
		settingsStorage:   settingsStorage,
		subscriberTimeout: cfg.subscriberTimeout,
	}
}
