package audit_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carebook/carebook/pkg/audit"
)

type ctxKey string

const (
	ctxUserID    ctxKey = "user_id"
	ctxSessionID ctxKey = "session_id"
	ctxIP        ctxKey = "ip"
)

func stringExtractor(key ctxKey) func(context.Context) (string, bool) {
	return func(ctx context.Context) (string, bool) {
		value, ok := ctx.Value(key).(string)
		return value, ok && value != ""
	}
}

func newTestLogger(storage audit.Storage, opts ...audit.Option) audit.Logger {
	base := []audit.Option{
		audit.WithUserIDExtractor(stringExtractor(ctxUserID)),
		audit.WithSessionIDExtractor(stringExtractor(ctxSessionID)),
		audit.WithIPExtractor(stringExtractor(ctxIP)),
	}
	return audit.NewLogger(storage, append(base, opts...)...)
}

func TestLoggerLog(t *testing.T) {
	storage := audit.NewMemoryStorage()
	logger := newTestLogger(storage)

	ctx := context.WithValue(context.Background(), ctxUserID, "patient-1")
	ctx = context.WithValue(ctx, ctxSessionID, "session-1")
	ctx = context.WithValue(ctx, ctxIP, "203.0.113.7")

	err := logger.Log(ctx, "profile.update",
		audit.WithResource("patients", "patient-1"),
		audit.WithMetadata("fields_changed", []string{"firstName"}),
	)
	require.NoError(t, err)

	events, err := storage.Query(context.Background(), audit.Criteria{})
	require.NoError(t, err)
	require.Len(t, events, 1)

	event := events[0]
	assert.NotEmpty(t, event.ID)
	assert.Equal(t, "patient-1", event.UserID)
	assert.Equal(t, "session-1", event.SessionID)
	assert.Equal(t, "203.0.113.7", event.IP)
	assert.Equal(t, "profile.update", event.Action)
	assert.Equal(t, "patients", event.Resource)
	assert.Equal(t, "patient-1", event.ResourceID)
	assert.Equal(t, audit.ResultSuccess, event.Result)
	assert.Empty(t, event.Error)
	assert.False(t, event.CreatedAt.IsZero())
}

func TestLoggerLogError(t *testing.T) {
	storage := audit.NewMemoryStorage()
	logger := newTestLogger(storage)

	ctx := context.WithValue(context.Background(), ctxUserID, "patient-1")

	err := logger.LogError(ctx, "booking.create", errors.New("slot already taken"),
		audit.WithResource("bookings", "booking-9"),
	)
	require.NoError(t, err)

	events, err := storage.Query(context.Background(), audit.Criteria{})
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, audit.ResultError, events[0].Result)
	assert.Equal(t, "slot already taken", events[0].Error)
}

func TestLoggerRequiresAction(t *testing.T) {
	logger := newTestLogger(audit.NewMemoryStorage())

	err := logger.Log(context.Background(), "")
	assert.ErrorIs(t, err, audit.ErrEventValidation)
}

func TestLoggerSnapshots(t *testing.T) {
	storage := audit.NewMemoryStorage()
	logger := newTestLogger(storage)

	err := logger.Log(context.Background(), "profile.update",
		audit.WithChange(
			map[string]any{"city": "Mumbai"},
			map[string]any{"city": "Pune"},
		),
	)
	require.NoError(t, err)

	events, err := storage.Query(context.Background(), audit.Criteria{})
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "Mumbai", events[0].Before["city"])
	assert.Equal(t, "Pune", events[0].After["city"])
}

func TestLoggerFiltersMetadataAndSnapshots(t *testing.T) {
	storage := audit.NewMemoryStorage()
	logger := newTestLogger(storage,
		audit.WithMetadataFilter(audit.NewMetadataFilter()),
	)

	err := logger.Log(context.Background(), "profile.update",
		audit.WithMetadata("password", "hunter2"),
		audit.WithMetadata("city", "Mumbai"),
		audit.WithChange(
			map[string]any{"phone": "9876543210", "city": "Mumbai"},
			map[string]any{"phone": "9123456780", "city": "Pune"},
		),
	)
	require.NoError(t, err)

	events, err := storage.Query(context.Background(), audit.Criteria{})
	require.NoError(t, err)
	require.Len(t, events, 1)

	event := events[0]
	assert.NotContains(t, event.Metadata, "password")
	assert.Equal(t, "Mumbai", event.Metadata["city"])
	assert.Equal(t, "98******10", event.Before["phone"])
	assert.Equal(t, "91******80", event.After["phone"])
	assert.Equal(t, "Pune", event.After["city"])
}

func TestNewLoggerPanicsOnNilStorage(t *testing.T) {
	assert.Panics(t, func() {
		audit.NewLogger(nil)
	})
}
