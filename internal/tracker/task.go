package tracker

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gabapcia/solwatch/internal/notify"
	"github.com/gabapcia/solwatch/internal/pkg/logger"
	"github.com/gabapcia/solwatch/internal/pkg/x/chflow"
	"github.com/gabapcia/solwatch/internal/txclass"

	"github.com/cenkalti/backoff/v5"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// failureJitter keeps every failure pause longer than the poll interval,
// given a first step of at least twice that interval.
const failureJitter = 0.2

// watchTask polls a single address until its context is canceled.
//
// lastSeen and baselined are only touched by the task goroutine.
type watchTask struct {
	address string
	cancel  context.CancelFunc
	done    chan struct{}
	state   atomic.Uint32

	mu       sync.Mutex
	nickname string

	lastSeen  string
	baselined bool
}

func newWatchTask(address, nickname string, cancel context.CancelFunc) *watchTask {
	t := &watchTask{
		address:  address,
		nickname: nickname,
		cancel:   cancel,
		done:     make(chan struct{}),
	}
	t.setState(StateStarting)
	return t
}

func (t *watchTask) State() State {
	return State(t.state.Load())
}

func (t *watchTask) setState(s State) {
	t.state.Store(uint32(s))
}

func (t *watchTask) Nickname() string {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.nickname
}

func (t *watchTask) setNickname(nickname string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.nickname = nickname
}

// stop cancels the task and blocks until its goroutine returned.
func (t *watchTask) stop() {
	t.cancel()
	<-t.done
}

func (s *service) newFailureBackOff() *backoff.ExponentialBackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = s.failureBackoff
	b.MaxInterval = s.maxFailureBackoff
	b.RandomizationFactor = failureJitter
	b.Reset()
	return b
}

// run is the task goroutine: poll, then sleep the poll interval or, after a
// failure, the next failure backoff step. Failures never end the loop.
func (s *service) run(ctx context.Context, task *watchTask) {
	defer close(task.done)
	defer task.setState(StateStopped)

	ctx = logger.Derive(ctx, "address", task.address)
	failures := s.newFailureBackOff()

	for {
		err := s.poll(ctx, task)
		if ctx.Err() != nil {
			return
		}

		wait := s.pollInterval
		if err != nil {
			wait = failures.NextBackOff()
			logger.Error(ctx, "poll cycle failed", "retry_in", wait.String(), "error", err)
		} else {
			failures.Reset()
			task.setState(StateWatching)
		}

		if !chflow.Sleep(ctx, wait) {
			return
		}
	}
}

// poll runs one cycle. Only the newest signature is considered: when it
// differs from the last seen one it is fetched, classified, recorded and,
// if newly recorded and successful on chain, dispatched. lastSeen advances only when every step
// succeeded, so a failed cycle is retried as a whole.
func (s *service) poll(ctx context.Context, task *watchTask) (err error) {
	ctx, span := s.instruments.tracer.Start(ctx, "tracker.poll",
		trace.WithAttributes(attribute.String("solana.address", task.address)),
	)
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			s.instruments.pollFailures.Add(ctx, 1)
		}
		span.End()
	}()

	s.instruments.polls.Add(ctx, 1)

	signatures, err := s.chain.RecentSignatures(ctx, task.address, s.signatureLimit)
	if err != nil {
		return err
	}

	if !task.baselined {
		if len(signatures) > 0 {
			task.lastSeen = signatures[0].Signature
		}
		task.baselined = true
		logger.Debug(ctx, "baseline recorded", "signature", task.lastSeen)
		return nil
	}

	if len(signatures) == 0 || signatures[0].Signature == task.lastSeen {
		return nil
	}

	newest := signatures[0]
	if err := s.process(ctx, task, newest); err != nil {
		return err
	}

	task.lastSeen = newest.Signature
	return nil
}

func (s *service) process(ctx context.Context, task *watchTask, sig SignatureInfo) error {
	ctx = logger.Derive(ctx, "signature", sig.Signature)

	details, err := s.chain.Transaction(ctx, sig.Signature)
	if errors.Is(err, ErrTransactionNotFound) {
		logger.Warn(ctx, "transaction not available, skipping signature")
		return nil
	}
	if err != nil {
		return err
	}

	classification := txclass.Classify(details.Transaction)

	record := TransactionRecord{
		Signature:  sig.Signature,
		Address:    task.address,
		Type:       classification.Type,
		Amount:     classification.Amount,
		Mint:       classification.Mint,
		ObservedAt: s.now().UTC(),
		BlockTime:  firstNonNil(details.BlockTime, sig.BlockTime),
		Slot:       max(details.Slot, sig.Slot),
	}

	created, err := s.storage.RecordTransaction(ctx, record)
	if err != nil {
		return err
	}
	if !created {
		logger.Debug(ctx, "transaction already recorded")
		return nil
	}

	s.instruments.recordsCreated.Add(ctx, 1, metric.WithAttributes(attribute.String("tx.type", record.Type.String())))
	logger.Debug(ctx, "transaction recorded",
		"tx.type", record.Type,
		"tx.failed", sig.Failed,
		"tx.confirmation_status", sig.ConfirmationStatus,
	)

	// Failed transactions are kept in history only.
	if sig.Failed {
		return nil
	}

	// A removed address must not notify.
	if ctx.Err() != nil {
		return ctx.Err()
	}

	s.notify(ctx, task, record)
	return nil
}

func (s *service) notify(ctx context.Context, task *watchTask, record TransactionRecord) {
	event := notify.Event{
		ID:        newEventID(),
		Address:   record.Address,
		Nickname:  task.Nickname(),
		Signature: record.Signature,
		Type:      record.Type,
		Amount:    record.Amount,
		Mint:      record.Mint,
		Slot:      record.Slot,
		BlockTime: record.BlockTime,
		EmittedAt: s.now().UTC(),
	}

	delivered, err := s.dispatcher.Dispatch(ctx, event)
	if err != nil {
		logger.Error(ctx, "notification dispatch failed", "event.id", event.ID, "error", err)
		return
	}

	attrs := metric.WithAttributes(attribute.String("tx.type", record.Type.String()))
	if delivered {
		s.instruments.delivered.Add(ctx, 1, attrs)
	} else {
		s.instruments.suppressed.Add(ctx, 1, attrs)
	}
}

func newEventID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

func firstNonNil(values ...*time.Time) *time.Time {
	for _, v := range values {
		if v != nil {
			return v
		}
	}
	return nil
}
