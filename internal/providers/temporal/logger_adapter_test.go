package temporal

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.temporal.io/sdk/log"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestZapLoggerAdapter(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := NewZapLoggerAdapter(zap.New(core))

	l.Info("started worker", "TaskQueue", "market", "Attempt", 2)
	l.Error("activity failed", "Error", errors.New("mirror timeout"), 7, "seven", "dangling")

	withLogger, ok := l.(log.WithLogger)
	require.True(t, ok)
	withLogger.With("WorkflowID", "market-job-1").Debug("replayed")

	require.Equal(t, 3, logs.Len())
	entries := logs.All()

	info := entries[0].ContextMap()
	assert.Equal(t, "temporal", info["component"])
	assert.Equal(t, "market", info["TaskQueue"])
	assert.EqualValues(t, 2, info["Attempt"])

	failed := entries[1].ContextMap()
	assert.Equal(t, "mirror timeout", failed["Error"])
	assert.Equal(t, "seven", failed["7"])
	assert.Equal(t, "dangling", failed["extra"])

	assert.Equal(t, "market-job-1", entries[2].ContextMap()["WorkflowID"])
	assert.Equal(t, zapcore.DebugLevel, entries[2].Level)
}
