// Package webhook delivers notification events as JSON POST requests.
package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gabapcia/solwatch/internal/notify"
	transporthttp "github.com/gabapcia/solwatch/internal/pkg/transport/http"

	"github.com/hashicorp/go-retryablehttp"
)

// ErrUnexpectedStatus is returned when the endpoint answers outside 2xx.
var ErrUnexpectedStatus = errors.New("unexpected webhook response status")

// Payload is the JSON body posted for each event.
type Payload struct {
	ID        string     `json:"id"`
	Address   string     `json:"address"`
	Nickname  string     `json:"nickname,omitempty"`
	Signature string     `json:"signature"`
	Type      string     `json:"type"`
	Amount    *string    `json:"amount"`
	Mint      string     `json:"mint,omitempty"`
	Slot      uint64     `json:"slot"`
	BlockTime *time.Time `json:"block_time,omitempty"`
	EmittedAt time.Time  `json:"emitted_at"`
	Channel   string     `json:"channel,omitempty"`
	Text      string     `json:"text"`
}

func newPayload(e notify.Event) Payload {
	p := Payload{
		ID:        e.ID,
		Address:   e.Address,
		Nickname:  e.Nickname,
		Signature: e.Signature,
		Type:      e.Type.String(),
		Mint:      e.Mint,
		Slot:      e.Slot,
		BlockTime: e.BlockTime,
		EmittedAt: e.EmittedAt.UTC(),
		Channel:   e.Channel,
		Text:      e.Message(),
	}
	if e.Amount != nil {
		amount := e.Amount.String()
		p.Amount = &amount
	}
	return p
}

type subscriber struct {
	url    string
	client *retryablehttp.Client
}

var _ notify.Subscriber = (*subscriber)(nil)

// New returns a subscriber posting to url. opts configure the retrying
// HTTP client.
func New(url string, opts ...transporthttp.Option) *subscriber {
	return &subscriber{
		url:    url,
		client: transporthttp.NewClient(append([]transporthttp.Option{transporthttp.WithName("webhook")}, opts...)...),
	}
}

func (s *subscriber) Notify(ctx context.Context, event notify.Event) error {
	body, err := json.Marshal(newPayload(event))
	if err != nil {
		return err
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Solwatch-Event-Id", event.ID)

	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	return nil
}
