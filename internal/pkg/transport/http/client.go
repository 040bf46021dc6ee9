// Package http builds retrying HTTP clients on top of hashicorp's
// retryablehttp. Retries are logged at debug level.
package http

import (
	"net/http"
	"time"

	"github.com/gabapcia/solwatch/internal/pkg/logger"

	"github.com/hashicorp/go-retryablehttp"
)

type config struct {
	timeout      time.Duration // per attempt
	retryWaitMin time.Duration
	retryWaitMax time.Duration
	retryMax     int
	name         string
}

// Option configures the HTTP client.
type Option func(*config)

// NewClient returns a retryablehttp.Client. Defaults: 5s timeout, 2 retries
// waiting between 1s and 5s.
func NewClient(opts ...Option) *retryablehttp.Client {
	cfg := config{
		timeout:      5 * time.Second,
		retryWaitMin: 1 * time.Second,
		retryWaitMax: 5 * time.Second,
		retryMax:     2,
		name:         "http",
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	client := retryablehttp.NewClient()
	client.Logger = nil
	client.HTTPClient.Timeout = cfg.timeout
	client.RetryWaitMin = cfg.retryWaitMin
	client.RetryWaitMax = cfg.retryWaitMax
	client.RetryMax = cfg.retryMax
	client.RequestLogHook = func(_ retryablehttp.Logger, req *http.Request, attempt int) {
		if attempt == 0 {
			return
		}
		logger.Debug(req.Context(), "retrying http request",
			"client", cfg.name,
			"method", req.Method,
			"host", req.URL.Host,
			"attempt", attempt,
		)
	}
	return client
}

// NewStandardClient returns NewClient wrapped as a plain *http.Client, for
// libraries that only accept the standard type.
func NewStandardClient(opts ...Option) *http.Client {
	return NewClient(opts...).StandardClient()
}

// WithTimeout sets the timeout of a single attempt.
func WithTimeout(d time.Duration) Option {
	return func(c *config) {
		c.timeout = d
	}
}

// WithRetryWaitMin sets the minimum delay between attempts.
func WithRetryWaitMin(d time.Duration) Option {
	return func(c *config) {
		c.retryWaitMin = d
	}
}

// WithRetryWaitMax sets the maximum delay between attempts.
func WithRetryWaitMax(d time.Duration) Option {
	return func(c *config) {
		c.retryWaitMax = d
	}
}

// WithRetryMax sets how many times a failed request is retried.
func WithRetryMax(n int) Option {
	return func(c *config) {
		c.retryMax = n
	}
}

// WithName labels retry logs with the client's purpose.
func WithName(name string) Option {
	return func(c *config) {
		c.name = name
	}
}
