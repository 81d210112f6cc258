package audit

import (
	"context"
	"fmt"
	"time"
)

// Result represents the outcome of an audited action.
type Result string

const (
	ResultSuccess Result = "success"
	ResultFailure Result = "failure"
	ResultError   Result = "error"
)

// Event is a single audit log entry. Before and After hold snapshots of the
// mutated resource for create, update and delete actions; both pass through
// the configured MetadataFilter before storage.
type Event struct {
	ID         string         `json:"id" bson:"_id"`
	UserID     string         `json:"user_id" bson:"user_id"`
	SessionID  string         `json:"session_id,omitempty" bson:"session_id,omitempty"`
	Action     string         `json:"action" bson:"action"`
	Resource   string         `json:"resource,omitempty" bson:"resource,omitempty"`
	ResourceID string         `json:"resource_id,omitempty" bson:"resource_id,omitempty"`
	Result     Result         `json:"result" bson:"result"`
	Error      string         `json:"error,omitempty" bson:"error,omitempty"`
	RequestID  string         `json:"request_id,omitempty" bson:"request_id,omitempty"`
	IP         string         `json:"ip,omitempty" bson:"ip,omitempty"`
	UserAgent  string         `json:"user_agent,omitempty" bson:"user_agent,omitempty"`
	Before     map[string]any `json:"before,omitempty" bson:"before,omitempty"`
	After      map[string]any `json:"after,omitempty" bson:"after,omitempty"`
	Metadata   map[string]any `json:"metadata,omitempty" bson:"metadata,omitempty"`
	CreatedAt  time.Time      `json:"created_at" bson:"created_at"`
}

// Validate checks if the event has all required fields.
func (e *Event) Validate() error {
	if e.Action == "" {
		return fmt.Errorf("%w: action is required", ErrEventValidation)
	}
	return nil
}

// EventOption applies configuration to an Event during creation.
// Used with Log and LogError to add resources, snapshots and metadata.
type EventOption func(*Event)

// Logger records audit events.
type Logger interface {
	Log(ctx context.Context, action string, opts ...EventOption) error
	LogError(ctx context.Context, action string, err error, opts ...EventOption) error
}

// Reader queries stored audit events.
type Reader interface {
	Find(ctx context.Context, criteria Criteria) ([]Event, error)
	FindWithCursor(ctx context.Context, criteria Criteria, cursor string) ([]Event, string, error)
	Count(ctx context.Context, criteria Criteria) (int64, error)
}

// Criteria narrows a query. Zero-valued fields are ignored.
type Criteria struct {
	UserID     string
	SessionID  string
	Action     string
	Resource   string
	ResourceID string
	Result     Result
	StartTime  time.Time
	EndTime    time.Time
	Limit      int
	Offset     int
	Cursor     string
}

// Storage persists audit events. Query returns events newest first.
type Storage interface {
	Store(ctx context.Context, event Event) error
	Query(ctx context.Context, criteria Criteria) ([]Event, error)
}

// StorageCounter is implemented by storages with an optimized count path.
type StorageCounter interface {
	Count(ctx context.Context, criteria Criteria) (int64, error)
}

// batchWriter provides bulk storage for audit events. Used by the async
// writer to amortize storage round trips.
type batchWriter interface {
	StoreBatch(ctx context.Context, events []Event) error
}
