package logger

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/sphera-world/market-engine/internal/domain"
)

func observe(t *testing.T) *observer.ObservedLogs {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	prev := log
	log = zap.New(core)
	t.Cleanup(func() { log = prev })
	return logs
}

func TestInitialize_WithoutSentry(t *testing.T) {
	prev := log
	t.Cleanup(func() { log = prev })

	require.NoError(t, Initialize(Config{Debug: true, Service: "sweeper"}))
	assert.True(t, Default().Core().Enabled(zapcore.DebugLevel))

	require.NoError(t, Initialize(Config{Service: "sweeper"}))
	assert.False(t, Default().Core().Enabled(zapcore.DebugLevel))
	assert.True(t, Default().Core().Enabled(zapcore.InfoLevel))
}

func TestConfig_SentryTags(t *testing.T) {
	cfg := Config{
		Service:     "worker-market",
		Environment: "testnet",
		Tags:        map[string]string{"region": "eu"},
	}
	assert.Equal(t, map[string]string{
		"service":     "worker-market",
		"environment": "testnet",
		"region":      "eu",
	}, cfg.sentryTags())
}

func TestError_TagsEngineErrors(t *testing.T) {
	logs := observe(t)

	Error(fmt.Errorf("verify: %w", domain.ErrEventMismatch), zap.String("transaction_id", "0.0.5-1-2"))

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "verify: accept bid event does not match the claim", entry.Message)
	fields := entry.ContextMap()
	assert.Equal(t, "0.0.5-1-2", fields["transaction_id"])
	assert.Equal(t, "EVENT_MISMATCH", fields["error_code"])
	assert.Equal(t, "validation failure", fields["error_kind"])
}

func TestError_PlainAndNil(t *testing.T) {
	logs := observe(t)

	Error(errors.New("boom"))
	Error(nil)

	require.Equal(t, 2, logs.Len())
	assert.Equal(t, "boom", logs.All()[0].Message)
	assert.NotContains(t, logs.All()[0].ContextMap(), "error_kind")
	assert.Equal(t, "error occurred", logs.All()[1].Message)
}
