package obs

import (
	"context"
	"corvo-delivery/internal/platform/logging"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func timed(ctx context.Context, fail bool) (err error) {
	defer Time(ctx, "test.op")(&err)
	if fail {
		return errors.New("boom")
	}
	return nil
}

func TestTime(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	ctx := logging.WithContext(context.Background(), zap.New(core))
	ctx = WithRequestID(ctx, "req-1")

	require.NoError(t, timed(ctx, false))
	require.Error(t, timed(ctx, true))

	entries := logs.All()
	require.Len(t, entries, 2)

	assert.Equal(t, zapcore.DebugLevel, entries[0].Level)
	assert.Equal(t, "test.op", entries[0].ContextMap()["op"])
	assert.Equal(t, "req-1", entries[0].ContextMap()["req_id"])

	assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
	assert.Equal(t, "boom", entries[1].ContextMap()["error"])
}

func TestRequestIDMissing(t *testing.T) {
	assert.Empty(t, RequestID(context.Background()))
}
