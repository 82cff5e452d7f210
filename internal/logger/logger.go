package logger

import (
	"context"
	"errors"
	"time"

	"github.com/TheZeroSlave/zapsentry"
	"github.com/getsentry/sentry-go"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/sphera-world/market-engine/internal/domain"
)

var (
	// log is the process logger. It discards everything until Initialize runs.
	log = zap.NewNop()
	// sentryClient is set when a sentry DSN or client was configured
	sentryClient *sentry.Client
)

// Config holds logger configuration
type Config struct {
	Debug bool
	// Service names the binary (api-server, worker-market, sweeper). It is
	// attached to every line and sent to sentry as a tag.
	Service         string
	Environment     string
	SentryDSN       string
	SentryClient    *sentry.Client
	BreadcrumbLevel zapcore.Level
	Tags            map[string]string
}

func (c Config) level() zapcore.Level {
	if c.Debug {
		return zapcore.DebugLevel
	}
	return zapcore.InfoLevel
}

func (c Config) sentryTags() map[string]string {
	tags := make(map[string]string, len(c.Tags)+2)
	for k, v := range c.Tags {
		tags[k] = v
	}
	if c.Service != "" {
		tags["service"] = c.Service
	}
	if c.Environment != "" {
		tags["environment"] = c.Environment
	}
	return tags
}

// Initialize builds the process logger. Errors and above are forwarded to
// sentry when a DSN or a client is configured; lower levels become breadcrumbs.
func Initialize(cfg Config) error {
	zapConfig := zap.NewProductionConfig()
	if cfg.Debug {
		zapConfig = zap.NewDevelopmentConfig()
	}
	zapConfig.Level = zap.NewAtomicLevelAt(cfg.level())

	base, err := zapConfig.Build()
	if err != nil {
		return err
	}
	if cfg.Service != "" {
		base = base.With(zap.String("service", cfg.Service))
	}

	client, err := newSentryClient(cfg)
	if err != nil {
		return err
	}
	if client == nil {
		log = base
		return nil
	}

	breadcrumbs := cfg.BreadcrumbLevel
	if breadcrumbs == zapcore.InvalidLevel {
		breadcrumbs = zapcore.InfoLevel
	}
	core, err := zapsentry.NewCore(zapsentry.Configuration{
		Level:             zapcore.ErrorLevel,
		EnableBreadcrumbs: true,
		BreadcrumbLevel:   breadcrumbs,
		Tags:              cfg.sentryTags(),
	}, zapsentry.NewSentryClientFromClient(client))
	if err != nil {
		return err
	}

	sentryClient = client
	log = zapsentry.AttachCoreToLogger(core, base)
	return nil
}

func newSentryClient(cfg Config) (*sentry.Client, error) {
	if cfg.SentryClient != nil {
		return cfg.SentryClient, nil
	}
	if cfg.SentryDSN == "" {
		return nil, nil
	}
	return sentry.NewClient(sentry.ClientOptions{
		Dsn:         cfg.SentryDSN,
		Debug:       cfg.Debug,
		Environment: cfg.Environment,
	})
}

// Flush waits for buffered sentry events to be sent
func Flush(timeout time.Duration) {
	if sentryClient != nil {
		sentryClient.Flush(timeout)
	}
}

// ErrorFields describes err for a log line: its engine error code and kind
// when it carries them.
func ErrorFields(err error) []zap.Field {
	fields := []zap.Field{zap.Error(err)}
	var me *domain.MarketError
	if errors.As(err, &me) {
		fields = append(fields, zap.String("error_code", me.Code))
	}
	if kind := domain.KindOf(err); kind != "" {
		fields = append(fields, zap.String("error_kind", kind))
	}
	return fields
}

// FromContext returns the logger bound to the sentry hub carried by ctx
func FromContext(ctx context.Context) *zap.Logger {
	if ctx == nil {
		return log
	}
	return log.With(zapsentry.Context(ctx))
}

// Default returns the process logger
func Default() *zap.Logger {
	return log
}

func Info(msg string, fields ...zap.Field) {
	log.Info(msg, fields...)
}

func InfoCtx(ctx context.Context, msg string, fields ...zap.Field) {
	FromContext(ctx).Info(msg, fields...)
}

// Error logs err as the message, tagged with its engine code and kind
func Error(err error, fields ...zap.Field) {
	logError(log, err, fields)
}

// ErrorCtx is Error bound to the sentry hub carried by ctx
func ErrorCtx(ctx context.Context, err error, fields ...zap.Field) {
	logError(FromContext(ctx), err, fields)
}

func logError(l *zap.Logger, err error, fields []zap.Field) {
	if err == nil {
		l.Error("error occurred", fields...)
		return
	}
	l.Error(err.Error(), append(fields, ErrorFields(err)[1:]...)...)
}

func Fatal(msg string, fields ...zap.Field) {
	log.Fatal(msg, fields...)
}

func FatalCtx(ctx context.Context, msg string, fields ...zap.Field) {
	FromContext(ctx).Fatal(msg, fields...)
}

func Warn(msg string, fields ...zap.Field) {
	log.Warn(msg, fields...)
}

func WarnCtx(ctx context.Context, msg string, fields ...zap.Field) {
	FromContext(ctx).Warn(msg, fields...)
}

func Debug(msg string, fields ...zap.Field) {
	log.Debug(msg, fields...)
}

func DebugCtx(ctx context.Context, msg string, fields ...zap.Field) {
	FromContext(ctx).Debug(msg, fields...)
}
