package notifications

import (
	"context"
	"time"
)

// Storage persists queued notification items and enforces the lifecycle
// transitions. Implementations must make ClaimDue atomic per item so that
// overlapping sweeps cannot claim the same item twice.
type Storage interface {
	// Create stores a new item.
	Create(ctx context.Context, item Item) error

	// Get retrieves a single item.
	Get(ctx context.Context, itemID string) (*Item, error)

	// List returns a user's items, newest first.
	List(ctx context.Context, userID string, opts ListOptions) ([]Item, error)

	// ClaimDue atomically transitions up to limit due pending items
	// (scheduled_for <= now) to processing and returns them. The caller
	// owns the returned items until it transitions them out of processing.
	ClaimDue(ctx context.Context, limit int) ([]Item, error)

	// MarkSent transitions a processing item to terminal sent.
	MarkSent(ctx context.Context, itemID string) error

	// MarkFailed transitions a processing item to terminal failed,
	// recording the last delivery error. The schedule is never mutated
	// again after this.
	MarkFailed(ctx context.Context, itemID, lastError string) error

	// MarkCancelled transitions a pending or processing item to terminal
	// cancelled (user preferences exclude every requested channel, or the
	// event became moot).
	MarkCancelled(ctx context.Context, itemID, reason string) error

	// Reschedule returns a processing item to pending with a new due time.
	// When consumeRetry is true the retry count is incremented; quiet-hours
	// deferrals pass false so they do not eat into the retry budget.
	Reschedule(ctx context.Context, itemID string, at time.Time, consumeRetry bool) error

	// ReclaimStale returns items stuck in processing longer than olderThan
	// back to pending (crashed sweep recovery). Reports how many items
	// were reclaimed.
	ReclaimStale(ctx context.Context, olderThan time.Duration) (int, error)
}

// ListOptions filters and paginates List results.
type ListOptions struct {
	Limit    int       // 0 = no limit
	Offset   int       // skipped items for pagination
	Statuses []Status  // empty = all statuses
	Types    []EventType
}
