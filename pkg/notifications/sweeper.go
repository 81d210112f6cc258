package notifications

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/carebook/carebook/pkg/logger"
)

// Sweeper drains due notification items. It claims a bounded page per tick,
// delivers each item sequentially, and applies the retry, quiet-hours and
// cancellation policies. Mutual exclusion between overlapping sweeps comes
// entirely from the storage's atomic claim.
type Sweeper struct {
	storage Storage
	prefs   PreferencesSource
	senders senderSet

	pullInterval time.Duration
	batchSize    int
	retryBackoff time.Duration
	quietDefer   time.Duration
	staleAfter   time.Duration
	logger       *slog.Logger
	now          func() time.Time

	mu     sync.Mutex
	wg     sync.WaitGroup
	cancel context.CancelFunc
}

// SweeperOption configures a Sweeper.
type SweeperOption func(*Sweeper)

// WithSweeperLogger sets the logger.
func WithSweeperLogger(log *slog.Logger) SweeperOption {
	return func(s *Sweeper) { s.logger = log }
}

// WithPullInterval sets how often the sweeper polls for due items.
func WithPullInterval(d time.Duration) SweeperOption {
	return func(s *Sweeper) {
		if d > 0 {
			s.pullInterval = d
		}
	}
}

// WithBatchSize bounds how many items one sweep claims.
func WithBatchSize(n int) SweeperOption {
	return func(s *Sweeper) {
		if n > 0 {
			s.batchSize = n
		}
	}
}

// WithStaleAfter sets how long an item may sit in processing before a
// sweep reclaims it (crashed-sweep recovery).
func WithStaleAfter(d time.Duration) SweeperOption {
	return func(s *Sweeper) {
		if d > 0 {
			s.staleAfter = d
		}
	}
}

// WithTimeSource overrides the clock. Test helper.
func WithTimeSource(now func() time.Time) SweeperOption {
	return func(s *Sweeper) {
		if now != nil {
			s.now = now
		}
	}
}

// NewSweeper creates a sweeper. At least one sender is required; a nil
// prefs source means every user gets DefaultPreferences.
func NewSweeper(storage Storage, prefs PreferencesSource, senders []Sender, opts ...SweeperOption) (*Sweeper, error) {
	if storage == nil {
		return nil, ErrStorageNil
	}
	set := newSenderSet(senders)
	if len(set) == 0 {
		return nil, ErrNoSenders
	}
	if prefs == nil {
		prefs = StaticPreferences{}
	}

	s := &Sweeper{
		storage:      storage,
		prefs:        prefs,
		senders:      set,
		pullInterval: 30 * time.Second,
		batchSize:    50,
		retryBackoff: 15 * time.Minute,
		quietDefer:   time.Hour,
		staleAfter:   10 * time.Minute,
		logger:       slog.Default(),
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Start begins sweeping in the background.
func (s *Sweeper) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cancel != nil {
		return fmt.Errorf("sweeper already started")
	}

	ctx, s.cancel = context.WithCancel(ctx)
	s.wg.Add(1)
	go s.loop(ctx)

	s.logger.Info("notification sweeper started",
		slog.Duration("pull_interval", s.pullInterval),
		slog.Int("batch_size", s.batchSize))
	return nil
}

// Stop shuts the sweeper down and waits for the in-flight sweep to finish.
func (s *Sweeper) Stop() error {
	s.mu.Lock()
	cancel := s.cancel
	s.cancel = nil
	s.mu.Unlock()

	if cancel == nil {
		return fmt.Errorf("sweeper not started")
	}

	cancel()
	s.wg.Wait()
	s.logger.Info("notification sweeper stopped")
	return nil
}

// Run starts the sweeper and returns a function suitable for errgroup.
func (s *Sweeper) Run(ctx context.Context) func() error {
	return func() error {
		if err := s.Start(ctx); err != nil {
			return err
		}
		<-ctx.Done()
		return s.Stop()
	}
}

func (s *Sweeper) loop(ctx context.Context) {
	defer s.wg.Done()

	ticker := time.NewTicker(s.pullInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := s.Sweep(ctx); err != nil {
				s.logger.ErrorContext(ctx, "sweep failed", logger.Error(err))
			}
		}
	}
}

// Sweep performs one pass: reclaim stale claims, then claim and process a
// bounded page of due items sequentially. Exported so cron-style callers
// can drive the sweeper without Start.
func (s *Sweeper) Sweep(ctx context.Context) error {
	if reclaimed, err := s.storage.ReclaimStale(ctx, s.staleAfter); err != nil {
		s.logger.WarnContext(ctx, "failed to reclaim stale items", logger.Error(err))
	} else if reclaimed > 0 {
		s.logger.InfoContext(ctx, "reclaimed stale processing items", slog.Int("count", reclaimed))
	}

	items, err := s.storage.ClaimDue(ctx, s.batchSize)
	if err != nil {
		return fmt.Errorf("failed to claim due items: %w", err)
	}

	for _, item := range items {
		s.process(ctx, item)
	}
	return nil
}

// process handles one claimed item. The sweep owns the item while it is
// processing; every exit path transitions it out.
func (s *Sweeper) process(ctx context.Context, item Item) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.ErrorContext(ctx, "sender panicked",
				logger.MessageID(item.ID),
				slog.Any("panic", r))
			s.retryOrFail(ctx, item, fmt.Sprintf("panic: %v", r))
		}
	}()

	prefs, err := s.prefs.Preferences(ctx, item.UserID)
	if err != nil {
		prefs = DefaultPreferences()
	}

	// Preferences may have changed since enqueue; re-resolve before sending.
	channels := ResolveChannels(prefs, item.Type, item.Channels)
	if len(channels) == 0 {
		if err := s.storage.MarkCancelled(ctx, item.ID, "no enabled channels for event type"); err != nil {
			s.logger.ErrorContext(ctx, "failed to cancel item", logger.MessageID(item.ID), logger.Error(err))
		}
		return
	}

	if InQuietHours(prefs, s.now()) {
		// Deferred, not failed: the hour-forward push does not consume a retry.
		if err := s.storage.Reschedule(ctx, item.ID, s.now().Add(s.quietDefer), false); err != nil {
			s.logger.ErrorContext(ctx, "failed to defer item for quiet hours", logger.MessageID(item.ID), logger.Error(err))
		}
		s.logger.DebugContext(ctx, "delivery deferred for quiet hours",
			logger.MessageID(item.ID),
			logger.UserID(item.UserID))
		return
	}

	var failures []string
	for _, ch := range channels {
		sender, ok := s.senders[ch]
		if !ok {
			failures = append(failures, fmt.Sprintf("%s: %s", ch, ErrSenderNotFound))
			continue
		}
		if err := sender.Send(ctx, item); err != nil {
			failures = append(failures, fmt.Sprintf("%s: %s", ch, err))
		}
	}

	if len(failures) > 0 {
		s.retryOrFail(ctx, item, strings.Join(failures, "; "))
		return
	}

	if err := s.storage.MarkSent(ctx, item.ID); err != nil {
		s.logger.ErrorContext(ctx, "failed to mark item sent", logger.MessageID(item.ID), logger.Error(err))
		return
	}
	s.logger.InfoContext(ctx, "notification delivered",
		logger.MessageID(item.ID),
		logger.UserID(item.UserID),
		logger.EventType(string(item.Type)),
		slog.Int("channels", len(channels)))
}

// retryOrFail applies the retry policy: linear backoff of
// retryCount * 15 minutes until the ceiling, then terminal failure.
func (s *Sweeper) retryOrFail(ctx context.Context, item Item, lastError string) {
	if item.RetryCount >= item.MaxRetries {
		if err := s.storage.MarkFailed(ctx, item.ID, lastError); err != nil {
			s.logger.ErrorContext(ctx, "failed to mark item failed", logger.MessageID(item.ID), logger.Error(err))
			return
		}
		s.logger.WarnContext(ctx, "notification failed terminally",
			logger.MessageID(item.ID),
			logger.UserID(item.UserID),
			logger.RetryCount(item.RetryCount),
			slog.String("last_error", lastError))
		return
	}

	nextRetry := item.RetryCount + 1
	backoff := time.Duration(nextRetry) * s.retryBackoff
	if err := s.storage.Reschedule(ctx, item.ID, s.now().Add(backoff), true); err != nil {
		s.logger.ErrorContext(ctx, "failed to reschedule item", logger.MessageID(item.ID), logger.Error(err))
		return
	}
	s.logger.WarnContext(ctx, "delivery failed, retry scheduled",
		logger.MessageID(item.ID),
		logger.RetryCount(nextRetry),
		slog.Duration("backoff", backoff),
		slog.String("error", lastError))
}
