package notifications

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// DefaultCollectionName is the collection MongoStorage uses unless
// overridden.
const DefaultCollectionName = "notification_items"

// MongoStorage is the durable Storage implementation. The pending ->
// processing claim is a FindOneAndUpdate, so a document can only be
// claimed by one sweep even when sweeps overlap.
type MongoStorage struct {
	coll *mongo.Collection
	now  func() time.Time
}

// NewMongoStorage creates a storage over the given collection.
func NewMongoStorage(coll *mongo.Collection) (*MongoStorage, error) {
	if coll == nil {
		return nil, ErrStorageNil
	}
	return &MongoStorage{coll: coll, now: time.Now}, nil
}

// EnsureIndexes creates the indexes the claim and list queries rely on.
// Call once at startup.
func (s *MongoStorage) EnsureIndexes(ctx context.Context) error {
	_, err := s.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "status", Value: 1}, {Key: "scheduled_for", Value: 1}}},
		{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "status", Value: 1}, {Key: "processing_at", Value: 1}}},
	})
	if err != nil {
		return fmt.Errorf("failed to create notification indexes: %w", err)
	}
	return nil
}

func (s *MongoStorage) Create(ctx context.Context, item Item) error {
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

	if _, err := s.coll.InsertOne(ctx, item); err != nil {
		return fmt.Errorf("failed to insert notification item: %w", err)
	}
	return nil
}

func (s *MongoStorage) Get(ctx context.Context, itemID string) (*Item, error) {
	var item Item
	err := s.coll.FindOne(ctx, bson.M{"_id": itemID}).Decode(&item)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrItemNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load notification item: %w", err)
	}
	return &item, nil
}

func (s *MongoStorage) List(ctx context.Context, userID string, opts ListOptions) ([]Item, error) {
	filter := bson.M{"user_id": userID}
	if len(opts.Statuses) > 0 {
		filter["status"] = bson.M{"$in": opts.Statuses}
	}
	if len(opts.Types) > 0 {
		filter["type"] = bson.M{"$in": opts.Types}
	}

	findOpts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	if opts.Offset > 0 {
		findOpts.SetSkip(int64(opts.Offset))
	}
	if opts.Limit > 0 {
		findOpts.SetLimit(int64(opts.Limit))
	}

	cursor, err := s.coll.Find(ctx, filter, findOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to list notification items: %w", err)
	}
	defer cursor.Close(ctx)

	items := []Item{}
	if err := cursor.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("failed to decode notification items: %w", err)
	}
	return items, nil
}

func (s *MongoStorage) ClaimDue(ctx context.Context, limit int) ([]Item, error) {
	now := s.now()

	// One FindOneAndUpdate per claim. The atomic single-document update is
	// the mutual-exclusion primitive: a concurrent sweep sees the status
	// already flipped and claims a different document.
	var claimed []Item
	for limit <= 0 || len(claimed) < limit {
		var item Item
		err := s.coll.FindOneAndUpdate(ctx,
			bson.M{
				"status":        StatusPending,
				"scheduled_for": bson.M{"$lte": now},
			},
			bson.M{"$set": bson.M{
				"status":        StatusProcessing,
				"processing_at": now,
				"updated_at":    now,
			}},
			options.FindOneAndUpdate().
				SetSort(bson.D{{Key: "scheduled_for", Value: 1}}).
				SetReturnDocument(options.After),
		).Decode(&item)
		if errors.Is(err, mongo.ErrNoDocuments) {
			break
		}
		if err != nil {
			return claimed, fmt.Errorf("failed to claim notification item: %w", err)
		}
		claimed = append(claimed, item)
	}
	return claimed, nil
}

func (s *MongoStorage) MarkSent(ctx context.Context, itemID string) error {
	return s.transition(ctx, itemID,
		bson.M{"_id": itemID, "status": StatusProcessing},
		bson.M{"$set": bson.M{
			"status":     StatusSent,
			"updated_at": s.now(),
		}, "$unset": bson.M{"processing_at": ""}},
	)
}

func (s *MongoStorage) MarkFailed(ctx context.Context, itemID, lastError string) error {
	return s.transition(ctx, itemID,
		bson.M{"_id": itemID, "status": StatusProcessing},
		bson.M{"$set": bson.M{
			"status":     StatusFailed,
			"last_error": lastError,
			"updated_at": s.now(),
		}, "$unset": bson.M{"processing_at": ""}},
	)
}

func (s *MongoStorage) MarkCancelled(ctx context.Context, itemID, reason string) error {
	return s.transition(ctx, itemID,
		bson.M{"_id": itemID, "status": bson.M{"$in": []Status{StatusPending, StatusProcessing}}},
		bson.M{"$set": bson.M{
			"status":     StatusCancelled,
			"last_error": reason,
			"updated_at": s.now(),
		}, "$unset": bson.M{"processing_at": ""}},
	)
}

func (s *MongoStorage) Reschedule(ctx context.Context, itemID string, at time.Time, consumeRetry bool) error {
	update := bson.M{
		"$set": bson.M{
			"status":        StatusPending,
			"scheduled_for": at,
			"updated_at":    s.now(),
		},
		"$unset": bson.M{"processing_at": ""},
	}
	if consumeRetry {
		update["$inc"] = bson.M{"retry_count": 1}
	}
	return s.transition(ctx, itemID, bson.M{"_id": itemID, "status": StatusProcessing}, update)
}

func (s *MongoStorage) ReclaimStale(ctx context.Context, olderThan time.Duration) (int, error) {
	cutoff := s.now().Add(-olderThan)

	res, err := s.coll.UpdateMany(ctx,
		bson.M{
			"status":        StatusProcessing,
			"processing_at": bson.M{"$lte": cutoff},
		},
		bson.M{
			"$set":   bson.M{"status": StatusPending, "updated_at": s.now()},
			"$unset": bson.M{"processing_at": ""},
		},
	)
	if err != nil {
		return 0, fmt.Errorf("failed to reclaim stale notification items: %w", err)
	}
	return int(res.ModifiedCount), nil
}

// transition runs a guarded update and distinguishes "not found" from
// "found but in the wrong status".
func (s *MongoStorage) transition(ctx context.Context, itemID string, filter, update bson.M) error {
	res, err := s.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update notification item: %w", err)
	}
	if res.MatchedCount == 0 {
		count, err := s.coll.CountDocuments(ctx, bson.M{"_id": itemID})
		if err != nil {
			return fmt.Errorf("failed to check notification item: %w", err)
		}
		if count == 0 {
			return ErrItemNotFound
		}
		return ErrInvalidTransition
	}
	return nil
}
