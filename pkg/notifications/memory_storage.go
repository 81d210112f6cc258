package notifications

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"
)

// MemoryStorage is an in-memory implementation of the Storage interface.
// Suitable for development and testing; swap in MongoStorage for anything
// that must survive a restart.
type MemoryStorage struct {
	items map[string]*Item
	mu    sync.Mutex
	now   func() time.Time
}

// NewMemoryStorage creates a new in-memory notification item storage.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{
		items: make(map[string]*Item),
		now:   time.Now,
	}
}

// SetTimeSource overrides the clock. Test helper; not safe to call while
// a sweep is running.
func (s *MemoryStorage) SetTimeSource(now func() time.Time) {
	s.now = now
}

func (s *MemoryStorage) Create(ctx context.Context, item Item) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if item.ID == "" {
		return errors.New("item ID is required")
	}
	if item.UserID == "" {
		return errors.New("user ID is required")
	}
	if _, exists := s.items[item.ID]; exists {
		return fmt.Errorf("item %s already exists", item.ID)
	}

	now := s.now()
	if item.CreatedAt.IsZero() {
		item.CreatedAt = now
	}
	if item.UpdatedAt.IsZero() {
		item.UpdatedAt = now
	}
	if item.Status == "" {
		item.Status = StatusPending
	}
	if item.ScheduledFor.IsZero() {
		item.ScheduledFor = now
	}

	stored := item
	s.items[item.ID] = &stored
	return nil
}

func (s *MemoryStorage) Get(ctx context.Context, itemID string) (*Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, exists := s.items[itemID]
	if !exists {
		return nil, ErrItemNotFound
	}

	copied := *item
	return &copied, nil
}

func (s *MemoryStorage) List(ctx context.Context, userID string, opts ListOptions) ([]Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var filtered []Item
	for _, item := range s.items {
		if item.UserID != userID {
			continue
		}
		if len(opts.Statuses) > 0 && !containsStatus(opts.Statuses, item.Status) {
			continue
		}
		if len(opts.Types) > 0 && !containsType(opts.Types, item.Type) {
			continue
		}
		filtered = append(filtered, *item)
	}

	sort.Slice(filtered, func(i, j int) bool {
		return filtered[i].CreatedAt.After(filtered[j].CreatedAt)
	})

	start := opts.Offset
	if start > len(filtered) {
		return []Item{}, nil
	}
	end := start + opts.Limit
	if opts.Limit == 0 || end > len(filtered) {
		end = len(filtered)
	}
	return filtered[start:end], nil
}

func (s *MemoryStorage) ClaimDue(ctx context.Context, limit int) ([]Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()

	// Deterministic claim order: oldest due first.
	var due []*Item
	for _, item := range s.items {
		if item.Status == StatusPending && !item.ScheduledFor.After(now) {
			due = append(due, item)
		}
	}
	sort.Slice(due, func(i, j int) bool {
		return due[i].ScheduledFor.Before(due[j].ScheduledFor)
	})

	if limit > 0 && len(due) > limit {
		due = due[:limit]
	}

	claimed := make([]Item, 0, len(due))
	for _, item := range due {
		item.Status = StatusProcessing
		processingAt := now
		item.ProcessingAt = &processingAt
		item.UpdatedAt = now
		claimed = append(claimed, *item)
	}
	return claimed, nil
}

func (s *MemoryStorage) MarkSent(ctx context.Context, itemID string) error {
	return s.transition(itemID, StatusSent, StatusProcessing)
}

func (s *MemoryStorage) MarkFailed(ctx context.Context, itemID, lastError string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, exists := s.items[itemID]
	if !exists {
		return ErrItemNotFound
	}
	if item.Status != StatusProcessing {
		return fmt.Errorf("%w: %s -> failed", ErrInvalidTransition, item.Status)
	}

	item.Status = StatusFailed
	item.LastError = lastError
	item.ProcessingAt = nil
	item.UpdatedAt = s.now()
	return nil
}

func (s *MemoryStorage) MarkCancelled(ctx context.Context, itemID, reason string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, exists := s.items[itemID]
	if !exists {
		return ErrItemNotFound
	}
	if item.Status != StatusPending && item.Status != StatusProcessing {
		return fmt.Errorf("%w: %s -> cancelled", ErrInvalidTransition, item.Status)
	}

	item.Status = StatusCancelled
	item.LastError = reason
	item.ProcessingAt = nil
	item.UpdatedAt = s.now()
	return nil
}

func (s *MemoryStorage) Reschedule(ctx context.Context, itemID string, at time.Time, consumeRetry bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, exists := s.items[itemID]
	if !exists {
		return ErrItemNotFound
	}
	if item.Status != StatusProcessing {
		return fmt.Errorf("%w: %s -> pending", ErrInvalidTransition, item.Status)
	}

	item.Status = StatusPending
	item.ScheduledFor = at
	item.ProcessingAt = nil
	if consumeRetry {
		item.RetryCount++
	}
	item.UpdatedAt = s.now()
	return nil
}

func (s *MemoryStorage) ReclaimStale(ctx context.Context, olderThan time.Duration) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	cutoff := now.Add(-olderThan)

	reclaimed := 0
	for _, item := range s.items {
		if item.Status != StatusProcessing || item.ProcessingAt == nil {
			continue
		}
		if item.ProcessingAt.After(cutoff) {
			continue
		}
		item.Status = StatusPending
		item.ProcessingAt = nil
		item.UpdatedAt = now
		reclaimed++
	}
	return reclaimed, nil
}

func (s *MemoryStorage) transition(itemID string, to Status, from Status) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, exists := s.items[itemID]
	if !exists {
		return ErrItemNotFound
	}
	if item.Status != from {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, item.Status, to)
	}

	item.Status = to
	item.ProcessingAt = nil
	item.UpdatedAt = s.now()
	return nil
}

func containsStatus(haystack []Status, needle Status) bool {
	for _, s := range haystack {
		if s == needle {
			return true
		}
	}
	return false
}

func containsType(haystack []EventType, needle EventType) bool {
	for _, t := range haystack {
		if t == needle {
			return true
		}
	}
	return false
}
