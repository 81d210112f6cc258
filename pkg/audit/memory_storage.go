package audit

import (
	"context"
	"fmt"
	"sort"
	"sync"
)

// MemoryStorage is an in-memory Storage for tests and development.
type MemoryStorage struct {
	mu     sync.RWMutex
	events []Event
}

// NewMemoryStorage creates an empty in-memory audit storage.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{}
}

// Store appends a single event.
func (s *MemoryStorage) Store(ctx context.Context, event Event) error {
	return s.StoreBatch(ctx, []Event{event})
}

// StoreBatch appends a batch of events, rejecting duplicate IDs.
func (s *MemoryStorage) StoreBatch(_ context.Context, events []Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, event := range events {
		for _, existing := range s.events {
			if existing.ID == event.ID {
				return fmt.Errorf("%w: %s", ErrDuplicateEvent, event.ID)
			}
		}
		s.events = append(s.events, event)
	}
	return nil
}

// Query returns matching events newest first, honoring cursor, offset
// and limit.
func (s *MemoryStorage) Query(_ context.Context, criteria Criteria) ([]Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := make([]Event, 0)
	for _, event := range s.events {
		if matches(event, criteria) {
			matched = append(matched, event)
		}
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	// Cursor points at the last event of the previous page; resume after it.
	if criteria.Cursor != "" {
		start := len(matched)
		for i, event := range matched {
			if event.ID == criteria.Cursor {
				start = i + 1
				break
			}
		}
		matched = matched[start:]
	}

	if criteria.Offset > 0 {
		if criteria.Offset >= len(matched) {
			return []Event{}, nil
		}
		matched = matched[criteria.Offset:]
	}

	if criteria.Limit > 0 && len(matched) > criteria.Limit {
		matched = matched[:criteria.Limit]
	}

	return matched, nil
}

// Count returns the number of matching events.
func (s *MemoryStorage) Count(_ context.Context, criteria Criteria) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var count int64
	for _, event := range s.events {
		if matches(event, criteria) {
			count++
		}
	}
	return count, nil
}

func matches(event Event, c Criteria) bool {
	if c.UserID != "" && event.UserID != c.UserID {
		return false
	}
	if c.SessionID != "" && event.SessionID != c.SessionID {
		return false
	}
	if c.Action != "" && event.Action != c.Action {
		return false
	}
	if c.Resource != "" && event.Resource != c.Resource {
		return false
	}
	if c.ResourceID != "" && event.ResourceID != c.ResourceID {
		return false
	}
	if c.Result != "" && event.Result != c.Result {
		return false
	}
	if !c.StartTime.IsZero() && event.CreatedAt.Before(c.StartTime) {
		return false
	}
	if !c.EndTime.IsZero() && event.CreatedAt.After(c.EndTime) {
		return false
	}
	return true
}
