// Command solwatch watches Solana addresses and notifies about their new
// transactions.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gabapcia/solwatch/internal/addressbook"
	"github.com/gabapcia/solwatch/internal/config"
	"github.com/gabapcia/solwatch/internal/handlers/cli"
	"github.com/gabapcia/solwatch/internal/infra/blockchain/solana"
	"github.com/gabapcia/solwatch/internal/infra/notifier/telegram"
	"github.com/gabapcia/solwatch/internal/infra/notifier/webhook"
	"github.com/gabapcia/solwatch/internal/infra/storage/redis"
	"github.com/gabapcia/solwatch/internal/infra/storage/sqldb"
	"github.com/gabapcia/solwatch/internal/notify"
	"github.com/gabapcia/solwatch/internal/pkg/logger"
	"github.com/gabapcia/solwatch/internal/pkg/telemetry"
	transporthttp "github.com/gabapcia/solwatch/internal/pkg/transport/http"
	"github.com/gabapcia/solwatch/internal/tracker"

	"github.com/gagliardetto/solana-go/rpc"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 15 * time.Second

// store is what both the supervisor and the address book need from storage.
type store interface {
	tracker.Storage
	addressbook.Storage
	Close() error
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	shutdownTelemetry := telemetry.ShutdownFunc(func(context.Context) error { return nil })
	if cfg.Telemetry.Enabled {
		if shutdownTelemetry, err = telemetry.Init(ctx, cfg.Telemetry.ServiceName); err != nil {
			return fmt.Errorf("init telemetry: %w", err)
		}
	}

	if err := logger.Init(
		logger.WithLevel(cfg.Log.Level),
		logger.WithFile(cfg.Log.File, cfg.Log.MaxSizeMB, cfg.Log.MaxBackups, cfg.Log.MaxAgeDays),
		logger.WithName(cfg.Telemetry.ServiceName),
	); err != nil {
		return errors.Join(fmt.Errorf("init logger: %w", err), shutdownTelemetry(ctx))
	}
	defer func() { _ = logger.Sync() }()

	storage, stream, err := openStore(ctx, cfg)
	if err != nil {
		return errors.Join(err, shutdownTelemetry(ctx))
	}

	dispatcher := notify.New(storage, notify.WithSubscriberTimeout(cfg.Notify.SubscriberTimeout))
	dispatcher.Subscribe("log", notify.LogSubscriber{})
	if cfg.Notify.WebhookURL != "" {
		dispatcher.Subscribe("webhook", webhook.New(cfg.Notify.WebhookURL,
			transporthttp.WithTimeout(cfg.Notify.SubscriberTimeout),
			transporthttp.WithRetryMax(cfg.RPC.RetryMax),
		))
	}
	if cfg.Notify.TelegramToken != "" {
		bot, err := telegram.New(cfg.Notify.TelegramToken, telegram.WithDefaultChat(cfg.Notify.TelegramChat))
		if err != nil {
			return errors.Join(fmt.Errorf("init telegram: %w", err), storage.Close(), shutdownTelemetry(ctx))
		}
		dispatcher.Subscribe("telegram", bot)
	}
	if stream != nil {
		dispatcher.Subscribe("redis-stream", stream)
	}

	chain := solana.NewClient(cfg.RPC.Endpoint,
		solana.WithCommitment(rpc.CommitmentType(cfg.RPC.Commitment)),
		solana.WithCacheSize(cfg.RPC.CacheSize),
		solana.WithHTTPOptions(
			transporthttp.WithTimeout(cfg.RPC.Timeout),
			transporthttp.WithRetryMax(cfg.RPC.RetryMax),
			transporthttp.WithRetryWaitMin(cfg.RPC.RetryWaitMin),
			transporthttp.WithRetryWaitMax(cfg.RPC.RetryWaitMax),
		),
	)

	sup := tracker.New(storage, chain, dispatcher,
		tracker.WithPollInterval(cfg.Poll.Interval),
		tracker.WithFailureBackoff(cfg.Poll.FailureBackoff, cfg.Poll.MaxFailureBackoff),
		tracker.WithSignatureLimit(cfg.Poll.SignatureLimit),
		tracker.WithResyncInterval(cfg.Poll.ResyncInterval),
	)
	book := addressbook.New(storage)

	runErr := cli.Run(ctx, sup, book)

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()

	// The store outlives the tasks; telemetry is flushed alongside it.
	stopErr := sup.Stop()

	var g errgroup.Group
	g.Go(storage.Close)
	g.Go(func() error { return shutdownTelemetry(shutdownCtx) })

	return errors.Join(runErr, stopErr, g.Wait())
}

// openStore connects the configured backend. stream is the event stream
// publisher, set only for Redis with a stream name.
func openStore(ctx context.Context, cfg config.Config) (store, notify.Subscriber, error) {
	switch cfg.Storage {
	case config.StorageRedis:
		c, err := redis.NewClient(ctx, cfg.Redis.Addr, cfg.Redis.Username, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			return nil, nil, err
		}
		if cfg.Redis.Stream == "" {
			return c, nil, nil
		}
		return c, c.StreamPublisher(cfg.Redis.Stream, cfg.Redis.StreamMaxLen), nil
	default:
		c, err := sqldb.New(ctx, sqldb.Config{
			Driver:          cfg.SQL.Driver,
			DSN:             cfg.SQL.DSN,
			MaxOpenConns:    cfg.SQL.MaxOpenConns,
			MaxIdleConns:    cfg.SQL.MaxIdleConns,
			ConnMaxLifetime: cfg.SQL.ConnMaxLifetime,
		})
		if err != nil {
			return nil, nil, err
		}
		return c, nil, nil
	}
}
