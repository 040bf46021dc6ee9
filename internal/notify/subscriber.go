package notify

import (
	"context"

	"github.com/gabapcia/solwatch/internal/pkg/logger"
)

// Subscriber receives delivered events.
type Subscriber interface {
	Notify(ctx context.Context, event Event) error
}

// SubscriberFunc adapts a function to Subscriber.
type SubscriberFunc func(ctx context.Context, event Event) error

func (f SubscriberFunc) Notify(ctx context.Context, event Event) error {
	return f(ctx, event)
}

// LogSubscriber writes every event to the structured log.
type LogSubscriber struct{}

var _ Subscriber = LogSubscriber{}

func (LogSubscriber) Notify(ctx context.Context, event Event) error {
	logger.Info(ctx, "transaction detected",
		"event.id", event.ID,
		"event.address", event.Address,
		"event.nickname", event.Nickname,
		"event.signature", event.Signature,
		"event.type", event.Type,
		"event.amount", event.AmountString(),
		"event.mint", event.Mint,
		"event.slot", event.Slot,
		"event.channel", event.Channel,
	)

	return nil
}
