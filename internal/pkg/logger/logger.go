// Package logger provides a global, sugared zap logger with optional
// OpenTelemetry integration.
//
// Records are written as JSON to stdout and, when configured, to a rotating
// file. An OTEL bridge core is added when telemetry.LoggerProvider returns a
// provider. Loggers can be scoped to a context with Derive, and trace/span ids
// from the context are attached to every record.
package logger

import (
	"context"
	"os"
	"sync"

	"github.com/gabapcia/solwatch/internal/pkg/telemetry"

	"go.opentelemetry.io/contrib/bridges/otelzap"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

type ctxKeyType struct{}

// ctxKey stores a derived *zap.SugaredLogger in a context.
var ctxKey ctxKeyType

var (
	// baseLogger is the process-wide logger, set once by Init.
	baseLogger *zap.SugaredLogger

	initBaseLoggerOnce sync.Once
)

// fileConfig describes the rotating file sink.
type fileConfig struct {
	path       string
	maxSizeMB  int
	maxBackups int
	maxAgeDays int
}

type config struct {
	level string
	file  *fileConfig
	name  string
}

// Option configures the logger before initialization.
type Option func(*config)

// WithLevel sets the minimum level: debug, info, warn, error, panic or fatal.
func WithLevel(l string) Option {
	return func(c *config) {
		c.level = l
	}
}

// WithFile also writes records to path, rotating it once it reaches
// maxSizeMB. Zero values for maxBackups and maxAgeDays keep every file.
func WithFile(path string, maxSizeMB, maxBackups, maxAgeDays int) Option {
	return func(c *config) {
		if path == "" {
			c.file = nil
			return
		}

		c.file = &fileConfig{
			path:       path,
			maxSizeMB:  maxSizeMB,
			maxBackups: maxBackups,
			maxAgeDays: maxAgeDays,
		}
	}
}

// WithName sets the instrumentation scope used by the OTEL bridge.
func WithName(name string) Option {
	return func(c *config) {
		c.name = name
	}
}

// Init configures the global logger. Only the first successful call has any
// effect. An invalid level returns an error and leaves the logger unset.
func Init(opts ...Option) error {
	cfg := config{level: "info", name: "solwatch"}
	for _, opt := range opts {
		opt(&cfg)
	}

	level, err := zapcore.ParseLevel(cfg.level)
	if err != nil {
		return err
	}

	initBaseLoggerOnce.Do(func() {
		encoder := zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())

		cores := []zapcore.Core{
			zapcore.NewCore(encoder, zapcore.AddSync(os.Stdout), level),
		}

		if cfg.file != nil {
			cores = append(cores, zapcore.NewCore(encoder, zapcore.AddSync(&lumberjack.Logger{
				Filename:   cfg.file.path,
				MaxSize:    cfg.file.maxSizeMB,
				MaxBackups: cfg.file.maxBackups,
				MaxAge:     cfg.file.maxAgeDays,
			}), level))
		}

		if lp := telemetry.LoggerProvider(); lp != nil {
			cores = append(cores, otelzap.NewCore(cfg.name, otelzap.WithLoggerProvider(lp)))
		}

		baseLogger = zap.New(zapcore.NewTee(cores...)).Sugar()
	})

	return nil
}

// Sync flushes buffered records. Call it on shutdown.
func Sync() error {
	return baseLogger.Sync()
}

// fromCtx returns the logger stored by Derive, falling back to the base
// logger, or a no-op logger before Init.
func fromCtx(ctx context.Context) *zap.SugaredLogger {
	if l, ok := ctx.Value(ctxKey).(*zap.SugaredLogger); ok && l != nil {
		return l
	}
	if baseLogger != nil {
		return baseLogger
	}
	return zap.NewNop().Sugar()
}

// deriveFromCtx returns the context logger (or the base one) enriched with
// the span ids of ctx and keysAndValues.
func deriveFromCtx(ctx context.Context, keysAndValues ...any) *zap.SugaredLogger {
	l := fromCtx(ctx)

	if sc := trace.SpanContextFromContext(ctx); sc.IsValid() {
		keysAndValues = append(keysAndValues,
			"trace_id", sc.TraceID().String(),
			"span_id", sc.SpanID().String(),
		)
	}

	if len(keysAndValues) == 0 {
		return l
	}

	return l.With(keysAndValues...)
}

// Derive returns a child context whose logger carries keysAndValues on every
// record logged through it.
func Derive(ctx context.Context, keysAndValues ...any) context.Context {
	return context.WithValue(ctx, ctxKey, fromCtx(ctx).With(keysAndValues...))
}

func log(ctx context.Context, level zapcore.Level, msg string, keysAndValues ...any) {
	l := deriveFromCtx(ctx)

	switch level {
	case zapcore.DebugLevel:
		l.Debugw(msg, keysAndValues...)
	case zapcore.InfoLevel:
		l.Infow(msg, keysAndValues...)
	case zapcore.WarnLevel:
		l.Warnw(msg, keysAndValues...)
	case zapcore.ErrorLevel:
		l.Errorw(msg, keysAndValues...)
	case zapcore.DPanicLevel:
		l.DPanicw(msg, keysAndValues...)
	case zapcore.PanicLevel:
		l.Panicw(msg, keysAndValues...)
	case zapcore.FatalLevel:
		l.Fatalw(msg, keysAndValues...)
	}
}

// Debug logs at debug level.
func Debug(ctx context.Context, msg string, keysAndValues ...any) {
	log(ctx, zapcore.DebugLevel, msg, keysAndValues...)
}

// Info logs at info level.
func Info(ctx context.Context, msg string, keysAndValues ...any) {
	log(ctx, zapcore.InfoLevel, msg, keysAndValues...)
}

// Warn logs at warn level.
func Warn(ctx context.Context, msg string, keysAndValues ...any) {
	log(ctx, zapcore.WarnLevel, msg, keysAndValues...)
}

// Error logs at error level.
func Error(ctx context.Context, msg string, keysAndValues ...any) {
	log(ctx, zapcore.ErrorLevel, msg, keysAndValues...)
}

// Panic logs at panic level, then panics.
func Panic(ctx context.Context, msg string, keysAndValues ...any) {
	log(ctx, zapcore.PanicLevel, msg, keysAndValues...)
}

// Fatal logs at fatal level, then exits with status 1.
func Fatal(ctx context.Context, msg string, keysAndValues ...any) {
	log(ctx, zapcore.FatalLevel, msg, keysAndValues...)
}
