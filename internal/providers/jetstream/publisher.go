package jetstream

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
	"go.uber.org/zap"

	"github.com/sphera-world/market-engine/internal/adapter"
	"github.com/sphera-world/market-engine/internal/logger"
	"github.com/sphera-world/market-engine/internal/messaging"
)

const defaultSubjectPrefix = "market.jobs.failed"

// duplicateWindow bounds how long JetStream remembers an event id. A failure
// republished by a retried activity inside the window is stored once.
const duplicateWindow = 10 * time.Minute

// Config holds the NATS connection and the stream failure events land in
type Config struct {
	URL            string
	ConnectionName string
	MaxReconnects  int
	ReconnectWait  time.Duration

	// StreamName is declared on connect to capture <SubjectPrefix>.>.
	// Empty leaves stream management to the operator.
	StreamName    string
	StreamMaxAge  time.Duration
	SubjectPrefix string
}

func (c Config) subjectPrefix() string {
	if c.SubjectPrefix == "" {
		return defaultSubjectPrefix
	}
	return c.SubjectPrefix
}

func (c Config) streamConfig() jetstream.StreamConfig {
	return jetstream.StreamConfig{
		Name:        c.StreamName,
		Description: "terminal market job failures",
		Subjects:    []string{c.subjectPrefix() + ".>"},
		Retention:   jetstream.LimitsPolicy,
		Storage:     jetstream.FileStorage,
		MaxAge:      c.StreamMaxAge,
		Duplicates:  duplicateWindow,
	}
}

type publisher struct {
	nc     adapter.NatsConn
	js     adapter.JetStream
	prefix string
}

// NewPublisher connects to NATS and, when a stream name is configured,
// declares the failure stream before returning
func NewPublisher(ctx context.Context, cfg Config, natsJS adapter.NatsJetStream) (messaging.Publisher, error) {
	nc, js, err := natsJS.Connect(cfg.URL,
		nats.Name(cfg.ConnectionName),
		nats.MaxReconnects(cfg.MaxReconnects),
		nats.ReconnectWait(cfg.ReconnectWait),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				logger.Warn("Disconnected from NATS", zap.Error(err))
			}
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.Info("Reconnected to NATS", zap.String("url", nc.ConnectedUrl()))
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	if cfg.StreamName != "" {
		if _, err := js.CreateOrUpdateStream(ctx, cfg.streamConfig()); err != nil {
			nc.Close()
			return nil, fmt.Errorf("failed to declare stream %s: %w", cfg.StreamName, err)
		}
		logger.InfoCtx(ctx, "Declared job failure stream",
			zap.String("stream", cfg.StreamName),
			zap.String("subjects", cfg.subjectPrefix()+".>"))
	}

	return &publisher{nc: nc, js: js, prefix: cfg.subjectPrefix()}, nil
}

// PublishJobFailure publishes event on <prefix>.<job kind>. The event id is
// the message id, so JetStream drops a republished copy.
func (p *publisher) PublishJobFailure(ctx context.Context, event messaging.JobFailureEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	subject := p.prefix + "." + string(event.Kind)
	ack, err := p.js.Publish(ctx, subject, data, jetstream.WithMsgID(event.EventID))
	if err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}

	logger.DebugCtx(ctx, "Published job failure",
		zap.String("subject", subject),
		zap.String("eventId", event.EventID),
		zap.String("jobId", event.JobID),
		zap.Bool("duplicate", ack != nil && ack.Duplicate))
	return nil
}

func (p *publisher) Close() {
	if p.nc != nil {
		p.nc.Close()
	}
}
