package tracker

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gabapcia/solwatch/internal/notify"
	"github.com/gabapcia/solwatch/internal/pkg/logger"

	"github.com/gagliardetto/solana-go"
)

func init() {
	_ = logger.Init(logger.WithLevel("error"))
}

func newAddress() string {
	return solana.NewWallet().PublicKey().String()
}

// memoryStorage is an in-memory Storage with injectable failures.
type memoryStorage struct {
	mu        sync.Mutex
	addresses map[string]TrackedAddress
	records   map[string]TransactionRecord

	failRecords int
	recordCalls atomic.Int64
}

func newMemoryStorage() *memoryStorage {
	return &memoryStorage{
		addresses: make(map[string]TrackedAddress),
		records:   make(map[string]TransactionRecord),
	}
}

func (m *memoryStorage) UpsertTrackedAddress(_ context.Context, a TrackedAddress) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if existing, ok := m.addresses[a.Address]; ok {
		a.CreatedAt = existing.CreatedAt
	}
	a.Active = true
	m.addresses[a.Address] = a
	return nil
}

func (m *memoryStorage) DeactivateTrackedAddress(_ context.Context, address string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	a, ok := m.addresses[address]
	if !ok {
		return false, nil
	}
	a.Active = false
	m.addresses[address] = a
	return true, nil
}

func (m *memoryStorage) ListActiveTrackedAddresses(context.Context) ([]TrackedAddress, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var active []TrackedAddress
	for _, a := range m.addresses {
		if a.Active {
			active = append(active, a)
		}
	}
	return active, nil
}

func (m *memoryStorage) RecordTransaction(_ context.Context, r TransactionRecord) (bool, error) {
	m.recordCalls.Add(1)

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.failRecords > 0 {
		m.failRecords--
		return false, fmt.Errorf("%w: disk full", ErrStorage)
	}

	if _, ok := m.records[r.Signature]; ok {
		return false, nil
	}
	m.records[r.Signature] = r
	return true, nil
}

func (m *memoryStorage) address(address string) (TrackedAddress, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	a, ok := m.addresses[address]
	return a, ok
}

func (m *memoryStorage) record(signature string) (TransactionRecord, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	r, ok := m.records[signature]
	return r, ok
}

func (m *memoryStorage) recordCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return len(m.records)
}

// scriptedChain serves signature histories pushed by the test.
type scriptedChain struct {
	mu          sync.Mutex
	history     map[string][]SignatureInfo
	txs         map[string]*TransactionDetails
	missing     map[string]bool
	blocking    map[string]chan struct{}
	failListing int

	listCalls  atomic.Int64
	fetchCalls atomic.Int64
	closed     atomic.Bool
}

func newScriptedChain() *scriptedChain {
	return &scriptedChain{
		history:  make(map[string][]SignatureInfo),
		txs:      make(map[string]*TransactionDetails),
		missing:  make(map[string]bool),
		blocking: make(map[string]chan struct{}),
	}
}

// push prepends signature to the address history.
func (c *scriptedChain) push(address, signature string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	slot := uint64(len(c.history[address]) + 1)
	blockTime := time.Unix(1_700_000_000+int64(slot), 0).UTC()

	c.history[address] = append([]SignatureInfo{{
		Signature:          signature,
		Slot:               slot,
		BlockTime:          &blockTime,
		ConfirmationStatus: "finalized",
	}}, c.history[address]...)

	c.txs[signature] = &TransactionDetails{
		Signature: signature,
		Slot:      slot,
		BlockTime: &blockTime,
	}
}

// pushFailed prepends a signature whose transaction failed on chain.
func (c *scriptedChain) pushFailed(address, signature string) {
	c.push(address, signature)

	c.mu.Lock()
	defer c.mu.Unlock()

	c.history[address][0].Failed = true
}

// block makes Transaction(signature) wait for cancellation. The returned
// channel is closed once the fetch started.
func (c *scriptedChain) block(signature string) <-chan struct{} {
	c.mu.Lock()
	defer c.mu.Unlock()

	entered := make(chan struct{})
	c.blocking[signature] = entered
	return entered
}

func (c *scriptedChain) RecentSignatures(ctx context.Context, address string, limit int) ([]SignatureInfo, error) {
	c.listCalls.Add(1)

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.failListing > 0 {
		c.failListing--
		return nil, fmt.Errorf("%w: connection reset", ErrTransientFetch)
	}

	history := c.history[address]
	if len(history) > limit {
		history = history[:limit]
	}
	return append([]SignatureInfo(nil), history...), nil
}

func (c *scriptedChain) Transaction(ctx context.Context, signature string) (*TransactionDetails, error) {
	c.fetchCalls.Add(1)

	c.mu.Lock()
	entered, blocked := c.blocking[signature]
	if blocked {
		delete(c.blocking, signature)
	}
	missing := c.missing[signature]
	tx := c.txs[signature]
	c.mu.Unlock()

	if blocked {
		close(entered)
		<-ctx.Done()
		return nil, fmt.Errorf("%w: %w", ErrTransientFetch, ctx.Err())
	}

	if missing || tx == nil {
		return nil, ErrTransactionNotFound
	}
	return tx, nil
}

func (c *scriptedChain) Close() error {
	c.closed.Store(true)
	return nil
}

// recordingDispatcher collects dispatched events.
type recordingDispatcher struct {
	mu     sync.Mutex
	events []notify.Event
}

func (d *recordingDispatcher) Dispatch(_ context.Context, e notify.Event) (bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.events = append(d.events, e)
	return true, nil
}

func (d *recordingDispatcher) Events() []notify.Event {
	d.mu.Lock()
	defer d.mu.Unlock()

	return append([]notify.Event(nil), d.events...)
}

func newTestSupervisor(t *testing.T, storage Storage, chain Chain, dispatcher Dispatcher, opts ...Option) *service {
	t.Helper()

	opts = append([]Option{
		WithPollInterval(2 * time.Millisecond),
		WithFailureBackoff(5*time.Millisecond, 10*time.Millisecond),
	}, opts...)

	s := New(storage, chain, dispatcher, opts...)
	t.Cleanup(func() { _ = s.Stop() })

	return s
}

// waitNextCycles waits until the address has been polled n more times.
func waitNextCycles(t *testing.T, chain *scriptedChain, n int64) {
	t.Helper()

	target := chain.listCalls.Load() + n
	deadline := time.Now().Add(2 * time.Second)
	for chain.listCalls.Load() < target {
		if time.Now().After(deadline) {
			t.Fatalf("timed out waiting for %d poll cycles", n)
		}
		time.Sleep(time.Millisecond)
	}
}
