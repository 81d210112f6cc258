package audit

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// DefaultCollectionName is the collection MongoStorage uses unless
// overridden.
const DefaultCollectionName = "audit_events"

// MongoStorage is the durable Storage implementation. Events are written
// once and never updated; queries page newest first.
type MongoStorage struct {
	coll *mongo.Collection
}

// NewMongoStorage creates a storage over the given collection.
func NewMongoStorage(coll *mongo.Collection) (*MongoStorage, error) {
	if coll == nil {
		return nil, ErrStorageNotAvailable
	}
	return &MongoStorage{coll: coll}, nil
}

// EnsureIndexes creates the indexes the query paths rely on. Call once at
// startup.
func (s *MongoStorage) EnsureIndexes(ctx context.Context) error {
	_, err := s.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "action", Value: 1}, {Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "resource", Value: 1}, {Key: "resource_id", Value: 1}}},
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
	})
	if err != nil {
		return fmt.Errorf("failed to create audit indexes: %w", err)
	}
	return nil
}

// Store persists a single event.
func (s *MongoStorage) Store(ctx context.Context, event Event) error {
	if _, err := s.coll.InsertOne(ctx, event); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("%w: %s", ErrDuplicateEvent, event.ID)
		}
		return fmt.Errorf("failed to insert audit event: %w", err)
	}
	return nil
}

// StoreBatch persists a batch of events in one insert.
func (s *MongoStorage) StoreBatch(ctx context.Context, events []Event) error {
	if len(events) == 0 {
		return nil
	}

	docs := make([]any, len(events))
	for i, event := range events {
		docs[i] = event
	}

	if _, err := s.coll.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("failed to insert audit events: %w", err)
	}
	return nil
}

// Query returns matching events newest first.
func (s *MongoStorage) Query(ctx context.Context, criteria Criteria) ([]Event, error) {
	filter, err := s.filterFor(ctx, criteria)
	if err != nil {
		return nil, err
	}

	findOpts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	if criteria.Offset > 0 {
		findOpts.SetSkip(int64(criteria.Offset))
	}
	if criteria.Limit > 0 {
		findOpts.SetLimit(int64(criteria.Limit))
	}

	cursor, err := s.coll.Find(ctx, filter, findOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to query audit events: %w", err)
	}
	defer cursor.Close(ctx)

	events := []Event{}
	if err := cursor.All(ctx, &events); err != nil {
		return nil, fmt.Errorf("failed to decode audit events: %w", err)
	}
	return events, nil
}

// Count implements StorageCounter with a server-side count.
func (s *MongoStorage) Count(ctx context.Context, criteria Criteria) (int64, error) {
	filter, err := s.filterFor(ctx, criteria)
	if err != nil {
		return 0, err
	}

	count, err := s.coll.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("failed to count audit events: %w", err)
	}
	return count, nil
}

func (s *MongoStorage) filterFor(ctx context.Context, criteria Criteria) (bson.M, error) {
	filter := bson.M{}
	if criteria.UserID != "" {
		filter["user_id"] = criteria.UserID
	}
	if criteria.SessionID != "" {
		filter["session_id"] = criteria.SessionID
	}
	if criteria.Action != "" {
		filter["action"] = criteria.Action
	}
	if criteria.Resource != "" {
		filter["resource"] = criteria.Resource
	}
	if criteria.ResourceID != "" {
		filter["resource_id"] = criteria.ResourceID
	}
	if criteria.Result != "" {
		filter["result"] = criteria.Result
	}

	createdAt := bson.M{}
	if !criteria.StartTime.IsZero() {
		createdAt["$gte"] = criteria.StartTime
	}
	if !criteria.EndTime.IsZero() {
		createdAt["$lte"] = criteria.EndTime
	}

	// The cursor is the ID of the last event on the previous page; resume
	// strictly before its timestamp in the newest-first ordering.
	if criteria.Cursor != "" {
		var last Event
		err := s.coll.FindOne(ctx, bson.M{"_id": criteria.Cursor}).Decode(&last)
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("%w: unknown cursor %q", ErrEventValidation, criteria.Cursor)
		}
		if err != nil {
			return nil, fmt.Errorf("failed to resolve audit cursor: %w", err)
		}
		createdAt["$lt"] = last.CreatedAt
	}

	if len(createdAt) > 0 {
		filter["created_at"] = createdAt
	}

	return filter, nil
}
