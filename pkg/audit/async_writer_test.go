package audit_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carebook/carebook/pkg/audit"
)

func TestAsyncWriterStoresThroughBatches(t *testing.T) {
	storage := audit.NewMemoryStorage()
	writer, closeFn := audit.NewAsyncWriter(storage, audit.AsyncOptions{
		BatchSize:    2,
		BatchTimeout: 10 * time.Millisecond,
	})

	require.NoError(t, writer.Store(context.Background(), audit.Event{
		ID: "e1", Action: "booking.create", CreatedAt: time.Now(),
	}))
	require.NoError(t, writer.Store(context.Background(), audit.Event{
		ID: "e2", Action: "booking.cancel", CreatedAt: time.Now(),
	}))

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, closeFn(ctx))

	events, err := storage.Query(context.Background(), audit.Criteria{})
	require.NoError(t, err)
	assert.Len(t, events, 2)
}

func TestAsyncWriterRejectsAfterClose(t *testing.T) {
	storage := audit.NewMemoryStorage()
	writer, closeFn := audit.NewAsyncWriter(storage, audit.AsyncOptions{})

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, closeFn(ctx))

	err := writer.Store(context.Background(), audit.Event{
		ID: "e1", Action: "booking.create", CreatedAt: time.Now(),
	})
	assert.ErrorIs(t, err, audit.ErrStorageNotAvailable)
}

func TestLoggerWithAsyncStorage(t *testing.T) {
	storage := audit.NewMemoryStorage()
	logger := audit.NewLogger(storage,
		audit.WithAsync(audit.AsyncOptions{BatchTimeout: 10 * time.Millisecond}),
	)

	require.NoError(t, logger.Log(context.Background(), "profile.update"))

	events, err := storage.Query(context.Background(), audit.Criteria{})
	require.NoError(t, err)
	assert.Len(t, events, 1)
}
