// Package tracker runs one polling task per tracked Solana address and turns
// newly observed transactions into recorded, classified notification events.
package tracker

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/gabapcia/solwatch/internal/notify"
	"github.com/gabapcia/solwatch/internal/pkg/logger"
	"github.com/gabapcia/solwatch/internal/pkg/types"
	"github.com/gabapcia/solwatch/internal/pkg/x/chflow"
	"github.com/gabapcia/solwatch/internal/pkg/x/keymu"
)

const (
	DefaultPollInterval      = 10 * time.Second
	DefaultFailureBackoff    = 30 * time.Second
	DefaultMaxFailureBackoff = 5 * time.Minute
	DefaultSignatureLimit    = 10
)

// Dispatcher delivers events of newly recorded transactions.
type Dispatcher interface {
	Dispatch(ctx context.Context, event notify.Event) (bool, error)
}

type Supervisor interface {
	// Start launches a task for every active address. Calling it while
	// running does nothing. Tasks are detached from ctx cancellation.
	Start(ctx context.Context) error

	// AddAddress validates and persists the address, starting the
	// supervisor if needed, and ensures exactly one task watches it.
	// Adding a tracked address updates its nickname and origin.
	AddAddress(ctx context.Context, address, nickname, origin string) error

	// RemoveAddress deactivates the address and stops its task. When it
	// returns, the task has exited and will not notify again.
	RemoveAddress(ctx context.Context, address string) error

	// Resync starts tasks for active addresses without one and stops tasks
	// whose address is no longer active.
	Resync(ctx context.Context) error

	// Status returns the state of the task watching address.
	Status(address string) (State, bool)

	// Watched returns the addresses with a running task, sorted.
	Watched() []string

	// Stop cancels and waits for every task, then closes the chain client.
	Stop() error
}

type service struct {
	// lifecycle is held exclusively by Start, Resync and Stop, and shared by
	// AddAddress and RemoveAddress.
	lifecycle sync.RWMutex
	isStarted bool
	isStopped bool
	rootCtx   context.Context
	cancel    context.CancelFunc
	loops     sync.WaitGroup

	// keys serializes add and remove of the same address.
	keys keymu.Mutex

	mu    sync.Mutex
	tasks map[string]*watchTask

	storage    Storage
	chain      Chain
	dispatcher Dispatcher

	pollInterval      time.Duration
	failureBackoff    time.Duration
	maxFailureBackoff time.Duration
	signatureLimit    int
	resyncInterval    time.Duration
	now               func() time.Time

	instruments *instruments
}

var _ Supervisor = (*service)(nil)

func (s *service) Start(ctx context.Context) error {
	s.lifecycle.Lock()
	defer s.lifecycle.Unlock()

	if s.isStopped {
		return ErrSupervisorStopped
	}
	if s.isStarted {
		return nil
	}

	addresses, err := s.storage.ListActiveTrackedAddresses(ctx)
	if err != nil {
		return fmt.Errorf("load active addresses: %w", err)
	}

	s.rootCtx, s.cancel = context.WithCancel(context.WithoutCancel(ctx))
	for _, a := range addresses {
		s.spawn(a.Address, a.Nickname)
	}

	if s.resyncInterval > 0 {
		s.loops.Add(1)
		go s.resyncLoop(s.rootCtx)
	}

	s.isStarted = true
	logger.Info(ctx, "supervisor started", "addresses", len(addresses))
	return nil
}

func (s *service) AddAddress(ctx context.Context, address, nickname, origin string) error {
	tracked, err := NewTrackedAddress(address, nickname, origin, s.now())
	if err != nil {
		return err
	}

	if err := s.Start(ctx); err != nil {
		return err
	}

	s.lifecycle.RLock()
	defer s.lifecycle.RUnlock()

	if s.isStopped {
		return ErrSupervisorStopped
	}

	unlock := s.keys.Lock(address)
	defer unlock()

	if err := s.storage.UpsertTrackedAddress(ctx, tracked); err != nil {
		return err
	}

	s.mu.Lock()
	task, ok := s.tasks[address]
	s.mu.Unlock()

	if ok {
		task.setNickname(nickname)
		return nil
	}

	s.spawn(address, nickname)
	logger.Info(ctx, "address tracked", "address", address, "nickname", nickname, "origin", origin)
	return nil
}

func (s *service) RemoveAddress(ctx context.Context, address string) error {
	if err := validateAddress(address); err != nil {
		return err
	}

	s.lifecycle.RLock()
	defer s.lifecycle.RUnlock()

	unlock := s.keys.Lock(address)
	defer unlock()

	existed, err := s.storage.DeactivateTrackedAddress(ctx, address)
	if err != nil {
		return err
	}

	s.mu.Lock()
	task, ok := s.tasks[address]
	s.mu.Unlock()

	if ok {
		task.stop()

		s.mu.Lock()
		delete(s.tasks, address)
		s.mu.Unlock()
		s.instruments.watched.Add(ctx, -1)
	}

	if !existed {
		return ErrAddressNotFound
	}

	logger.Info(ctx, "address untracked", "address", address)
	return nil
}

func (s *service) Resync(ctx context.Context) error {
	s.lifecycle.Lock()
	defer s.lifecycle.Unlock()

	if !s.isStarted || s.isStopped {
		return nil
	}

	addresses, err := s.storage.ListActiveTrackedAddresses(ctx)
	if err != nil {
		return fmt.Errorf("load active addresses: %w", err)
	}

	active := types.NewSet[string]()
	nicknames := make(map[string]string, len(addresses))
	for _, a := range addresses {
		active.Add(a.Address)
		nicknames[a.Address] = a.Nickname
	}

	s.mu.Lock()
	running := types.NewSet[string]()
	for address := range s.tasks {
		running.Add(address)
	}
	s.mu.Unlock()

	for address := range running.Difference(active) {
		s.mu.Lock()
		task := s.tasks[address]
		delete(s.tasks, address)
		s.mu.Unlock()

		task.stop()
		s.instruments.watched.Add(ctx, -1)
		logger.Info(ctx, "task stopped by resync", "address", address)
	}

	for address := range active.Difference(running) {
		s.spawn(address, nicknames[address])
		logger.Info(ctx, "task started by resync", "address", address)
	}

	s.mu.Lock()
	for address := range active {
		if task, ok := s.tasks[address]; ok {
			task.setNickname(nicknames[address])
		}
	}
	s.mu.Unlock()

	return nil
}

func (s *service) resyncLoop(ctx context.Context) {
	defer s.loops.Done()

	for chflow.Sleep(ctx, s.resyncInterval) {
		if err := s.Resync(ctx); err != nil {
			logger.Error(ctx, "resync failed", "error", err)
		}
	}
}

func (s *service) Status(address string) (State, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	task, ok := s.tasks[address]
	if !ok {
		return StateInactive, false
	}
	return task.State(), true
}

func (s *service) Watched() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	watched := types.NewSet[string]()
	for address := range s.tasks {
		watched.Add(address)
	}
	return types.Sorted(watched)
}

func (s *service) Stop() error {
	s.lifecycle.Lock()
	if s.isStopped {
		s.lifecycle.Unlock()
		return nil
	}
	s.isStopped = true

	if s.cancel != nil {
		s.cancel()
	}

	s.mu.Lock()
	tasks := s.tasks
	s.tasks = make(map[string]*watchTask)
	s.mu.Unlock()
	s.lifecycle.Unlock()

	for _, task := range tasks {
		<-task.done
	}
	s.loops.Wait()

	return s.chain.Close()
}

// spawn starts a task for address. The caller holds the key lock for
// address or the exclusive lifecycle lock.
func (s *service) spawn(address, nickname string) {
	ctx, cancel := context.WithCancel(s.rootCtx)
	task := newWatchTask(address, nickname, cancel)

	s.mu.Lock()
	s.tasks[address] = task
	s.mu.Unlock()

	s.instruments.watched.Add(ctx, 1)
	go s.run(ctx, task)
}

type config struct {
	pollInterval      time.Duration
	failureBackoff    time.Duration
	maxFailureBackoff time.Duration
	signatureLimit    int
	resyncInterval    time.Duration
	now               func() time.Time
}

type Option func(*config)

// WithPollInterval sets the pause between successful cycles.
func WithPollInterval(d time.Duration) Option {
	return func(c *config) {
		c.pollInterval = d
	}
}

// WithFailureBackoff sets the first and the largest pause after a failed
// cycle. A first pause not longer than the poll interval is replaced by twice
// the poll interval.
func WithFailureBackoff(initial, maxInterval time.Duration) Option {
	return func(c *config) {
		c.failureBackoff = initial
		c.maxFailureBackoff = maxInterval
	}
}

// WithSignatureLimit sets how many recent signatures each cycle requests.
func WithSignatureLimit(n int) Option {
	return func(c *config) {
		c.signatureLimit = n
	}
}

// WithResyncInterval enables the periodic Resync. Zero disables it.
func WithResyncInterval(d time.Duration) Option {
	return func(c *config) {
		c.resyncInterval = d
	}
}

// WithClock overrides the time source for timestamps.
func WithClock(now func() time.Time) Option {
	return func(c *config) {
		c.now = now
	}
}

func New(storage Storage, chain Chain, dispatcher Dispatcher, opts ...Option) *service {
	cfg := config{
		pollInterval:      DefaultPollInterval,
		failureBackoff:    DefaultFailureBackoff,
		maxFailureBackoff: DefaultMaxFailureBackoff,
		signatureLimit:    DefaultSignatureLimit,
		now:               time.Now,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.failureBackoff <= cfg.pollInterval {
		cfg.failureBackoff = 2 * cfg.pollInterval
	}
	if cfg.maxFailureBackoff < cfg.failureBackoff {
		cfg.maxFailureBackoff = cfg.failureBackoff
	}
	if cfg.signatureLimit <= 0 {
		cfg.signatureLimit = DefaultSignatureLimit
	}

	return &service{
		tasks:             make(map[string]*watchTask),
		storage:           storage,
		chain:             chain,
		dispatcher:        dispatcher,
		pollInterval:      cfg.pollInterval,
		failureBackoff:    cfg.failureBackoff,
		maxFailureBackoff: cfg.maxFailureBackoff,
		signatureLimit:    cfg.signatureLimit,
		resyncInterval:    cfg.resyncInterval,
		now:               cfg.now,
		instruments:       newInstruments(),
	}
}
