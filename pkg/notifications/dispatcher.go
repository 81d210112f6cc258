package notifications

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/carebook/carebook/pkg/logger"
)

// DefaultMaxRetries is the delivery retry ceiling applied to new items.
const DefaultMaxRetries = 3

// Dispatcher converts domain events into queued items. It only persists;
// delivery happens in the Sweeper, so enqueueing never waits on a gateway
// and never surfaces delivery errors.
type Dispatcher struct {
	storage    Storage
	prefs      PreferencesSource
	maxRetries int
	logger     *slog.Logger
	now        func() time.Time
}

// DispatcherOption configures a Dispatcher.
type DispatcherOption func(*Dispatcher)

// WithDispatcherLogger sets the logger.
func WithDispatcherLogger(log *slog.Logger) DispatcherOption {
	return func(d *Dispatcher) {
		d.logger = log
	}
}

// WithMaxRetries overrides the retry ceiling stamped on new items.
func WithMaxRetries(n int) DispatcherOption {
	return func(d *Dispatcher) {
		if n >= 0 {
			d.maxRetries = n
		}
	}
}

// NewDispatcher creates a dispatcher. A nil prefs source means every user
// gets DefaultPreferences.
func NewDispatcher(storage Storage, prefs PreferencesSource, opts ...DispatcherOption) *Dispatcher {
	if prefs == nil {
		prefs = StaticPreferences{}
	}

	d := &Dispatcher{
		storage:    storage,
		prefs:      prefs,
		maxRetries: DefaultMaxRetries,
		logger:     slog.Default(),
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Enqueue resolves the event's channels against the user's preferences and
// persists an item due immediately. An empty channel intersection is
// persisted as cancelled so the outcome stays visible in the user's
// notification history.
func (d *Dispatcher) Enqueue(ctx context.Context, event Event) (Item, error) {
	prefs, err := d.prefs.Preferences(ctx, event.UserID)
	if err != nil {
		// Preference lookup failure must not lose the event.
		d.logger.LogAttrs(ctx, slog.LevelWarn, "preference lookup failed, using defaults",
			logger.UserID(event.UserID),
			logger.EventType(string(event.Type)),
			logger.Error(err),
		)
		prefs = DefaultPreferences()
	}

	channels := ResolveChannels(prefs, event.Type, event.Channels)

	now := d.now()
	item := Item{
		ID:           uuid.NewString(),
		UserID:       event.UserID,
		Type:         event.Type,
		Channels:     channels,
		Status:       StatusPending,
		MaxRetries:   d.maxRetries,
		ScheduledFor: now,
		Payload:      event.Payload,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if len(channels) == 0 {
		item.Status = StatusCancelled
		item.LastError = "no enabled channels for event type"
	}

	if err := d.storage.Create(ctx, item); err != nil {
		return Item{}, fmt.Errorf("failed to enqueue notification: %w", err)
	}

	d.logger.LogAttrs(ctx, slog.LevelDebug, "notification enqueued",
		logger.MessageID(item.ID),
		logger.UserID(item.UserID),
		logger.EventType(string(item.Type)),
		slog.String("status", string(item.Status)),
		slog.Int("channels", len(channels)),
	)
	return item, nil
}
