package audit

import "context"

type reader struct {
	storage Storage
}

// NewReader creates a new audit reader over the given storage.
func NewReader(storage Storage) Reader {
	if storage == nil {
		panic("audit: storage cannot be nil")
	}
	return &reader{storage: storage}
}

// Find retrieves audit events matching the criteria.
func (r *reader) Find(ctx context.Context, criteria Criteria) ([]Event, error) {
	return r.storage.Query(ctx, criteria)
}

// FindWithCursor retrieves a page of events and a cursor for the next page.
// An empty next cursor means the last page was reached.
func (r *reader) FindWithCursor(ctx context.Context, criteria Criteria, cursor string) ([]Event, string, error) {
	paged := criteria
	paged.Cursor = cursor
	if cursor != "" {
		paged.Offset = 0
	}

	events, err := r.storage.Query(ctx, paged)
	if err != nil {
		return nil, "", err
	}

	nextCursor := ""
	if criteria.Limit > 0 && len(events) == criteria.Limit {
		nextCursor = events[len(events)-1].ID
	}

	return events, nextCursor, nil
}

// Count returns the number of events matching the criteria, using the
// storage's count path when it has one.
func (r *reader) Count(ctx context.Context, criteria Criteria) (int64, error) {
	if counter, ok := r.storage.(StorageCounter); ok {
		return counter.Count(ctx, criteria)
	}

	events, err := r.storage.Query(ctx, criteria)
	if err != nil {
		return 0, err
	}
	return int64(len(events)), nil
}
