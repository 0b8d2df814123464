package log_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"calendar-webhook/pkg/log"
)

func TestLoggerAddsRequestID(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := log.New(zap.New(core))

	ctx := log.WithRequestID(context.Background(), "req-1")
	l.Infof(ctx, "created %s", "evt")
	l.Info(context.Background(), "no id")

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "created evt", entries[0].Message)
	assert.Equal(t, "req-1", entries[0].ContextMap()[log.FieldRequestID])
	assert.NotContains(t, entries[1].ContextMap(), log.FieldRequestID, "entry without request id should not carry the field")
}

func TestRequestIDFromContext(t *testing.T) {
	assert.Empty(t, log.RequestIDFromContext(context.Background()))
	assert.Empty(t, log.RequestIDFromContext(nil)) //nolint:staticcheck
}

func TestInitFallsBackOnBadLevel(t *testing.T) {
	l := log.Init(log.ZapConfig{Level: "loud", Mode: log.ModeProduction, Encoding: log.EncodingJSON})
	require.NotNil(t, l)
	l.Debug(context.Background(), "dropped at info level")
}
