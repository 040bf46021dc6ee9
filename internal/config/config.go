// Package config loads the solwatch settings from SOLWATCH_* environment
// variables.
package config

import (
	"fmt"
	"time"

	"github.com/gabapcia/solwatch/internal/pkg/validator"

	"github.com/kelseyhightower/envconfig"
)

// Prefix is prepended to every variable name.
const Prefix = "solwatch"

const (
	StorageRedis = "redis"
	StorageSQL   = "sql"
)

type Log struct {
	Level      string `envconfig:"LEVEL" default:"info" validate:"oneof=debug info warn error"`
	File       string `envconfig:"FILE"`
	MaxSizeMB  int    `envconfig:"MAX_SIZE_MB" default:"100" validate:"gte=1"`
	MaxBackups int    `envconfig:"MAX_BACKUPS" default:"5" validate:"gte=0"`
	MaxAgeDays int    `envconfig:"MAX_AGE_DAYS" default:"30" validate:"gte=0"`
}

type Telemetry struct {
	Enabled     bool   `envconfig:"ENABLED" default:"false"`
	ServiceName string `envconfig:"SERVICE_NAME" default:"solwatch" validate:"required"`
}

type RPC struct {
	Endpoint     string        `envconfig:"ENDPOINT" default:"https://api.mainnet-beta.solana.com" validate:"required,url"`
	Timeout      time.Duration `envconfig:"TIMEOUT" default:"15s" validate:"gt=0"`
	RetryMax     int           `envconfig:"RETRY_MAX" default:"3" validate:"gte=0"`
	RetryWaitMin time.Duration `envconfig:"RETRY_WAIT_MIN" default:"500ms"`
	RetryWaitMax time.Duration `envconfig:"RETRY_WAIT_MAX" default:"5s"`
	Commitment   string        `envconfig:"COMMITMENT" default:"confirmed" validate:"oneof=processed confirmed finalized"`
	CacheSize    int           `envconfig:"CACHE_SIZE" default:"1024" validate:"gte=0"`
}

type Poll struct {
	Interval          time.Duration `envconfig:"INTERVAL" default:"10s" validate:"gt=0"`
	FailureBackoff    time.Duration `envconfig:"FAILURE_BACKOFF" default:"30s"`
	MaxFailureBackoff time.Duration `envconfig:"MAX_FAILURE_BACKOFF" default:"5m"`
	SignatureLimit    int           `envconfig:"SIGNATURE_LIMIT" default:"10" validate:"gte=1,lte=1000"`
	// ResyncInterval bounds how long a running daemon takes to apply track
	// and untrack commands issued from another process. Zero disables it.
	ResyncInterval    time.Duration `envconfig:"RESYNC_INTERVAL" default:"15s" validate:"gte=0"`
}

type Redis struct {
	Addr     string `envconfig:"ADDR" default:"localhost:6379"`
	Username string `envconfig:"USERNAME"`
	Password string `envconfig:"PASSWORD"`
	DB       int    `envconfig:"DB" default:"0" validate:"gte=0"`

	// Stream enables the event stream subscriber when set.
	Stream       string `envconfig:"STREAM"`
	StreamMaxLen int64  `envconfig:"STREAM_MAX_LEN" default:"10000" validate:"gte=0"`
}

type SQL struct {
	Driver          string        `envconfig:"DRIVER" default:"sqlite3" validate:"oneof=sqlite3 postgres"`
	DSN             string        `envconfig:"DSN" default:"solwatch.db"`
	MaxOpenConns    int           `envconfig:"MAX_OPEN_CONNS" default:"10" validate:"gte=0"`
	MaxIdleConns    int           `envconfig:"MAX_IDLE_CONNS" default:"5" validate:"gte=0"`
	ConnMaxLifetime time.Duration `envconfig:"CONN_MAX_LIFETIME" default:"30m"`
}

type Notify struct {
	SubscriberTimeout time.Duration `envconfig:"SUBSCRIBER_TIMEOUT" default:"10s" validate:"gt=0"`
	WebhookURL        string        `envconfig:"WEBHOOK_URL" validate:"omitempty,url"`
	TelegramToken     string        `envconfig:"TELEGRAM_TOKEN"`
	TelegramChat      string        `envconfig:"TELEGRAM_CHAT"`
}

// Config is the full process configuration.
//
// Nested groups read their fields under the group name, for example
// SOLWATCH_RPC_ENDPOINT or SOLWATCH_REDIS_ADDR.
type Config struct {
	Storage   string    `envconfig:"STORAGE" default:"sql" validate:"oneof=redis sql"`
	Log       Log       `envconfig:"LOG"`
	Telemetry Telemetry `envconfig:"TELEMETRY"`
	RPC       RPC       `envconfig:"RPC"`
	Poll      Poll      `envconfig:"POLL"`
	Redis     Redis     `envconfig:"REDIS"`
	SQL       SQL       `envconfig:"SQL"`
	Notify    Notify    `envconfig:"NOTIFY"`
}

// Load reads and validates the environment.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}

	if err := validator.Validate(cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}
