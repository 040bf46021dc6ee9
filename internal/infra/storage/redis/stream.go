package redis

import (
	"context"
	"time"

	"github.com/gabapcia/solwatch/internal/notify"

	"github.com/redis/go-redis/v9"
)

// DefaultStreamMaxLen caps the event stream, approximately.
const DefaultStreamMaxLen = 10_000

// streamPublisher appends delivered events to a Redis stream so other
// processes can consume them with XREAD or consumer groups.
type streamPublisher struct {
	conn   *redis.Client
	stream string
	maxLen int64
}

// StreamPublisher returns a notify.Subscriber writing to stream.
func (c *client) StreamPublisher(stream string, maxLen int64) *streamPublisher {
	if maxLen <= 0 {
		maxLen = DefaultStreamMaxLen
	}

	return &streamPublisher{
		conn:   c.conn,
		stream: stream,
		maxLen: maxLen,
	}
}

func (p *streamPublisher) Notify(ctx context.Context, e notify.Event) error {
	var blockTime string
	if e.BlockTime != nil {
		blockTime = e.BlockTime.UTC().Format(time.RFC3339)
	}

	var amount string
	if e.Amount != nil {
		amount = e.Amount.String()
	}

	err := p.conn.XAdd(ctx, &redis.XAddArgs{
		Stream: p.stream,
		MaxLen: p.maxLen,
		Approx: true,
		Values: map[string]any{
			"id":         e.ID,
			"address":    e.Address,
			"nickname":   e.Nickname,
			"signature":  e.Signature,
			"type":       e.Type.String(),
			"amount":     amount,
			"mint":       e.Mint,
			"slot":       e.Slot,
			"block_time": blockTime,
			"emitted_at": e.EmittedAt.UTC().Format(time.RFC3339Nano),
			"channel":    e.Channel,
		},
	}).Err()
	if err != nil {
		return storageError("publish event", err)
	}

	return nil
}

var _ notify.Subscriber = new(streamPublisher)
