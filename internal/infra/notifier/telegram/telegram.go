// Package telegram delivers notification events as Telegram chat messages.
package telegram

import (
	"context"

	"github.com/gabapcia/solwatch/internal/notify"
	"github.com/gabapcia/solwatch/internal/pkg/logger"

	"github.com/go-telegram/bot"
)

type config struct {
	serverURL   string
	defaultChat string
}

// Option configures the subscriber.
type Option func(*config)

// WithDefaultChat sets the chat used when an event carries no channel.
func WithDefaultChat(chatID string) Option {
	return func(c *config) {
		c.defaultChat = chatID
	}
}

// WithServerURL points the bot at another Bot API server.
func WithServerURL(url string) Option {
	return func(c *config) {
		c.serverURL = url
	}
}

type subscriber struct {
	bot         *bot.Bot
	defaultChat string
}

var _ notify.Subscriber = (*subscriber)(nil)

// New returns a subscriber sending messages with the bot identified by token.
// The token is not checked against the API.
func New(token string, opts ...Option) (*subscriber, error) {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	botOpts := []bot.Option{bot.WithSkipGetMe()}
	if cfg.serverURL != "" {
		botOpts = append(botOpts, bot.WithServerURL(cfg.serverURL))
	}

	b, err := bot.New(token, botOpts...)
	if err != nil {
		return nil, err
	}

	return &subscriber{
		bot:         b,
		defaultChat: cfg.defaultChat,
	}, nil
}

// Notify sends the event to its channel, or to the default chat. Events with
// neither are dropped.
func (s *subscriber) Notify(ctx context.Context, event notify.Event) error {
	chatID := event.Channel
	if chatID == "" {
		chatID = s.defaultChat
	}
	if chatID == "" {
		logger.Debug(ctx, "telegram notification skipped without a chat", "event.id", event.ID)
		return nil
	}

	_, err := s.bot.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: chatID,
		Text:   event.Message(),
	})
	return err
}
