// Package solana implements tracker.Chain over a Solana JSON-RPC node using
// gagliardetto/solana-go.
//
// The RPC client is rebuilt when a call fails below the JSON-RPC layer
// (connection reset, timeout, HTTP error). Each rebuild bumps a generation
// counter so that concurrent callers failing on the same client rebuild it
// once. Fetched transactions are kept in a small LRU cache shared by every
// watcher.
package solana

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/gabapcia/solwatch/internal/pkg/logger"
	"github.com/gabapcia/solwatch/internal/pkg/resilience/retry"
	transporthttp "github.com/gabapcia/solwatch/internal/pkg/transport/http"
	"github.com/gabapcia/solwatch/internal/tracker"

	"github.com/gagliardetto/solana-go/rpc"
	"github.com/gagliardetto/solana-go/rpc/jsonrpc"
	"github.com/golang/groupcache/lru"
)

const defaultCacheSize = 1024

type config struct {
	httpOpts   []transporthttp.Option
	retry      retry.Retry
	commitment rpc.CommitmentType
	cacheSize  int
}

// Option configures the client.
type Option func(*config)

// WithHTTPOptions configures the HTTP transport of the RPC client.
func WithHTTPOptions(opts ...transporthttp.Option) Option {
	return func(c *config) {
		c.httpOpts = append(c.httpOpts, opts...)
	}
}

// WithRetry replaces the retry policy of RPC calls.
func WithRetry(r retry.Retry) Option {
	return func(c *config) {
		c.retry = r
	}
}

// WithCommitment sets the commitment level of reads. Default: confirmed.
func WithCommitment(commitment rpc.CommitmentType) Option {
	return func(c *config) {
		c.commitment = commitment
	}
}

// WithCacheSize sets how many transactions are cached. Zero disables the cache.
func WithCacheSize(n int) Option {
	return func(c *config) {
		c.cacheSize = n
	}
}

type client struct {
	endpoint string
	cfg      config

	mu         sync.RWMutex
	conn       *rpc.Client
	generation uint64
	closed     bool

	cacheMu sync.Mutex
	cache   *lru.Cache
}

var _ tracker.Chain = (*client)(nil)

// NewClient returns a client for the node at endpoint. No request is made
// until the first call.
func NewClient(endpoint string, opts ...Option) *client {
	cfg := config{
		commitment: rpc.CommitmentConfirmed,
		cacheSize:  defaultCacheSize,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.retry == nil {
		cfg.retry = retry.New(
			retry.WithAttempts(2),
			retry.WithRetryIf(func(err error) bool {
				return !errors.Is(err, tracker.ErrTransactionNotFound) && !errors.Is(err, context.Canceled)
			}),
		)
	}

	c := &client{
		endpoint: endpoint,
		cfg:      cfg,
	}
	c.conn = c.dial()

	if cfg.cacheSize > 0 {
		c.cache = lru.New(cfg.cacheSize)
	}

	return c
}

func (c *client) dial() *rpc.Client {
	rpcClient := jsonrpc.NewClientWithOpts(c.endpoint, &jsonrpc.RPCClientOpts{
		HTTPClient: transporthttp.NewStandardClient(append([]transporthttp.Option{transporthttp.WithName("solana-rpc")}, c.cfg.httpOpts...)...),
	})
	return rpc.NewWithCustomRPCClient(rpcClient)
}

// current returns the live RPC client and its generation.
func (c *client) current() (*rpc.Client, uint64, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.closed {
		return nil, 0, errors.New("client closed")
	}
	return c.conn, c.generation, nil
}

// rebuild replaces the RPC client unless another caller already replaced
// the generation that failed.
func (c *client) rebuild(ctx context.Context, failed uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed || c.generation != failed {
		return
	}

	_ = c.conn.Close()
	c.conn = c.dial()
	c.generation++

	logger.Warn(ctx, "solana rpc client rebuilt", "generation", c.generation)
}

// isTransportError reports whether err happened below the JSON-RPC layer.
func isTransportError(err error) bool {
	if err == nil || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	var rpcErr *jsonrpc.RPCError
	return !errors.As(err, &rpcErr)
}

// call runs fn against the current RPC client under the retry policy,
// rebuilding the client on transport errors. Errors other than
// ErrTransactionNotFound are wrapped with ErrTransientFetch.
func (c *client) call(ctx context.Context, method string, fn func(*rpc.Client) error) error {
	err := c.cfg.retry.Execute(ctx, func() error {
		conn, generation, err := c.current()
		if err != nil {
			return err
		}

		err = fn(conn)
		if isTransportError(err) && !errors.Is(err, tracker.ErrTransactionNotFound) {
			c.rebuild(ctx, generation)
		}
		return err
	})

	switch {
	case err == nil:
		return nil
	case errors.Is(err, tracker.ErrTransactionNotFound):
		return err
	default:
		return fmt.Errorf("%w: %s: %w", tracker.ErrTransientFetch, method, err)
	}
}

func (c *client) cached(signature string) (*tracker.TransactionDetails, bool) {
	if c.cache == nil {
		return nil, false
	}

	c.cacheMu.Lock()
	defer c.cacheMu.Unlock()

	v, ok := c.cache.Get(signature)
	if !ok {
		return nil, false
	}
	return v.(*tracker.TransactionDetails), true
}

func (c *client) remember(details *tracker.TransactionDetails) {
	if c.cache == nil {
		return
	}

	c.cacheMu.Lock()
	defer c.cacheMu.Unlock()

	c.cache.Add(details.Signature, details)
}

// Close releases the RPC connections. Calls made afterwards fail.
func (c *client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil
	}
	c.closed = true

	return c.conn.Close()
}
