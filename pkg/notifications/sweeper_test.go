package notifications_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carebook/carebook/pkg/notifications"
)

// recordingSender counts deliveries and fails on demand.
type recordingSender struct {
	channel notifications.Channel
	fail    error
	mu      sync.Mutex
	sent    []string
}

func (s *recordingSender) Channel() notifications.Channel { return s.channel }

func (s *recordingSender) Send(ctx context.Context, item notifications.Item) error {
	if s.fail != nil {
		return s.fail
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sent = append(s.sent, item.ID)
	return nil
}

func (s *recordingSender) sentCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sent)
}

type sweepEnv struct {
	storage *notifications.MemoryStorage
	sweeper *notifications.Sweeper
	email   *recordingSender
	now     *time.Time
}

func newSweepEnv(t *testing.T, prefs notifications.PreferencesSource, extra ...notifications.Sender) sweepEnv {
	t.Helper()

	current := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	now := &current

	storage := notifications.NewMemoryStorage()
	storage.SetTimeSource(func() time.Time { return *now })

	email := &recordingSender{channel: notifications.ChannelEmail}
	senders := append([]notifications.Sender{email}, extra...)

	sweeper, err := notifications.NewSweeper(storage, prefs, senders,
		notifications.WithTimeSource(func() time.Time { return *now }),
		notifications.WithBatchSize(10),
	)
	require.NoError(t, err)

	return sweepEnv{storage: storage, sweeper: sweeper, email: email, now: now}
}

func (e sweepEnv) enqueue(t *testing.T, item notifications.Item) notifications.Item {
	t.Helper()
	item.ScheduledFor = *e.now
	require.NoError(t, e.storage.Create(context.Background(), item))
	return item
}

func TestSweeperDelivers(t *testing.T) {
	ctx := context.Background()
	env := newSweepEnv(t, nil)

	item := env.enqueue(t, notifications.Item{
		ID:         "item-1",
		UserID:     "user-1",
		Type:       notifications.EventAppointmentConfirmed,
		Channels:   []notifications.Channel{notifications.ChannelEmail},
		MaxRetries: 3,
	})

	require.NoError(t, env.sweeper.Sweep(ctx))

	got, err := env.storage.Get(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, notifications.StatusSent, got.Status)
	assert.Equal(t, 1, env.email.sentCount())

	t.Run("a second sweep does not resend", func(t *testing.T) {
		require.NoError(t, env.sweeper.Sweep(ctx))
		assert.Equal(t, 1, env.email.sentCount())
	})
}

func TestSweeperRetryPolicy(t *testing.T) {
	ctx := context.Background()

	t.Run("failure reschedules with linear backoff", func(t *testing.T) {
		env := newSweepEnv(t, nil)
		env.email.fail = errors.New("gateway timeout")

		item := env.enqueue(t, notifications.Item{
			ID:         "item-1",
			UserID:     "user-1",
			Type:       notifications.EventAppointmentConfirmed,
			Channels:   []notifications.Channel{notifications.ChannelEmail},
			MaxRetries: 3,
		})

		require.NoError(t, env.sweeper.Sweep(ctx))

		got, err := env.storage.Get(ctx, item.ID)
		require.NoError(t, err)
		assert.Equal(t, notifications.StatusPending, got.Status)
		assert.Equal(t, 1, got.RetryCount)
		assert.Equal(t, env.now.Add(15*time.Minute), got.ScheduledFor)

		// Second attempt backs off twice as far.
		*env.now = env.now.Add(16 * time.Minute)
		require.NoError(t, env.sweeper.Sweep(ctx))

		got, err = env.storage.Get(ctx, item.ID)
		require.NoError(t, err)
		assert.Equal(t, 2, got.RetryCount)
		assert.Equal(t, env.now.Add(30*time.Minute), got.ScheduledFor)
	})

	t.Run("exceeding the ceiling is terminal failed", func(t *testing.T) {
		env := newSweepEnv(t, nil)
		env.email.fail = errors.New("gateway down")

		item := env.enqueue(t, notifications.Item{
			ID:         "item-1",
			UserID:     "user-1",
			Type:       notifications.EventPaymentFailed,
			Channels:   []notifications.Channel{notifications.ChannelEmail},
			MaxRetries: 2,
		})

		for range 3 {
			require.NoError(t, env.sweeper.Sweep(ctx))
			*env.now = env.now.Add(2 * time.Hour)
		}

		got, err := env.storage.Get(ctx, item.ID)
		require.NoError(t, err)
		require.Equal(t, notifications.StatusFailed, got.Status)
		assert.Equal(t, 2, got.RetryCount)
		assert.Contains(t, got.LastError, "gateway down")

		// Terminal: further sweeps never touch the schedule again.
		scheduledFor := got.ScheduledFor
		*env.now = env.now.Add(2 * time.Hour)
		require.NoError(t, env.sweeper.Sweep(ctx))

		got, err = env.storage.Get(ctx, item.ID)
		require.NoError(t, err)
		assert.Equal(t, notifications.StatusFailed, got.Status)
		assert.Equal(t, scheduledFor, got.ScheduledFor)
	})
}

func TestSweeperQuietHours(t *testing.T) {
	ctx := context.Background()
	prefs := notifications.StaticPreferences{
		"user-1": {
			Appointment: notifications.ChannelFlags{Email: true},
			QuietStart:  "22:00",
			QuietEnd:    "07:00",
		},
	}
	env := newSweepEnv(t, prefs)
	*env.now = time.Date(2026, 8, 29, 23, 0, 0, 0, time.UTC) // inside the window

	item := env.enqueue(t, notifications.Item{
		ID:         "item-1",
		UserID:     "user-1",
		Type:       notifications.EventAppointmentConfirmed,
		Channels:   []notifications.Channel{notifications.ChannelEmail},
		MaxRetries: 3,
	})

	require.NoError(t, env.sweeper.Sweep(ctx))

	got, err := env.storage.Get(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, notifications.StatusPending, got.Status)
	// Deferred exactly one hour forward without consuming a retry.
	assert.Equal(t, env.now.Add(time.Hour), got.ScheduledFor)
	assert.Zero(t, got.RetryCount)
	assert.Equal(t, 0, env.email.sentCount())

	t.Run("delivers after the window ends", func(t *testing.T) {
		*env.now = time.Date(2026, 8, 30, 7, 30, 0, 0, time.UTC)
		require.NoError(t, env.sweeper.Sweep(ctx))

		got, err := env.storage.Get(ctx, item.ID)
		require.NoError(t, err)
		assert.Equal(t, notifications.StatusSent, got.Status)
		assert.Equal(t, 1, env.email.sentCount())
	})
}

func TestSweeperCancelsWhenPreferencesChanged(t *testing.T) {
	ctx := context.Background()
	prefs := notifications.StaticPreferences{
		"user-1": {}, // user has since disabled everything
	}
	env := newSweepEnv(t, prefs)

	item := env.enqueue(t, notifications.Item{
		ID:         "item-1",
		UserID:     "user-1",
		Type:       notifications.EventReviewRequest,
		Channels:   []notifications.Channel{notifications.ChannelEmail},
		MaxRetries: 3,
	})

	require.NoError(t, env.sweeper.Sweep(ctx))

	got, err := env.storage.Get(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, notifications.StatusCancelled, got.Status)
	assert.Equal(t, 0, env.email.sentCount())
}

func TestSweeperMultiChannel(t *testing.T) {
	ctx := context.Background()

	sms := &recordingSender{channel: notifications.ChannelSMS}
	env := newSweepEnv(t, nil, sms)

	item := env.enqueue(t, notifications.Item{
		ID:         "item-1",
		UserID:     "user-1",
		Type:       notifications.EventAppointmentConfirmed,
		Channels:   []notifications.Channel{notifications.ChannelEmail, notifications.ChannelSMS},
		MaxRetries: 3,
	})

	require.NoError(t, env.sweeper.Sweep(ctx))

	got, err := env.storage.Get(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, notifications.StatusSent, got.Status)
	assert.Equal(t, 1, env.email.sentCount())
	assert.Equal(t, 1, sms.sentCount())
}

func TestSweeperRecoversFromPanic(t *testing.T) {
	ctx := context.Background()

	panicking := notifications.SenderFunc{
		Ch: notifications.ChannelEmail,
		Fn: func(ctx context.Context, item notifications.Item) error {
			panic("boom")
		},
	}

	current := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	storage := notifications.NewMemoryStorage()
	storage.SetTimeSource(func() time.Time { return current })

	sweeper, err := notifications.NewSweeper(storage, nil, []notifications.Sender{panicking},
		notifications.WithTimeSource(func() time.Time { return current }),
	)
	require.NoError(t, err)

	item := notifications.Item{
		ID:           "item-1",
		UserID:       "user-1",
		Type:         notifications.EventAppointmentConfirmed,
		Channels:     []notifications.Channel{notifications.ChannelEmail},
		MaxRetries:   3,
		ScheduledFor: current,
	}
	require.NoError(t, storage.Create(ctx, item))

	require.NoError(t, sweeper.Sweep(ctx))

	got, err := storage.Get(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, notifications.StatusPending, got.Status)
	assert.Equal(t, 1, got.RetryCount)
}

func TestSweeperStartStop(t *testing.T) {
	storage := notifications.NewMemoryStorage()
	sender := &recordingSender{channel: notifications.ChannelEmail}

	sweeper, err := notifications.NewSweeper(storage, nil, []notifications.Sender{sender},
		notifications.WithPullInterval(10*time.Millisecond),
	)
	require.NoError(t, err)

	require.NoError(t, sweeper.Start(context.Background()))
	assert.Error(t, sweeper.Start(context.Background()), "double start is rejected")

	time.Sleep(30 * time.Millisecond)
	require.NoError(t, sweeper.Stop())
	assert.Error(t, sweeper.Stop(), "double stop is rejected")
}

func TestNewSweeperValidation(t *testing.T) {
	sender := &recordingSender{channel: notifications.ChannelEmail}

	_, err := notifications.NewSweeper(nil, nil, []notifications.Sender{sender})
	assert.ErrorIs(t, err, notifications.ErrStorageNil)

	_, err = notifications.NewSweeper(notifications.NewMemoryStorage(), nil, nil)
	assert.ErrorIs(t, err, notifications.ErrNoSenders)
}
