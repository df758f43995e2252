package subscriptions

import (
	"context"
	"errors"

	"courses-backend/internal/db"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrDuplicate reports that an upsert lost an insert race on the email index.
var ErrDuplicate = errors.New("duplicate subscription")

type Repository interface {
	Available() bool
	Upsert(ctx context.Context, sub Subscription) error
	List(ctx context.Context, limit, offset int64) ([]Subscription, error)
	Count(ctx context.Context) (int64, error)
}

type MongoRepository struct {
	store *db.Handle
}

func NewRepository(store *db.Handle) *MongoRepository {
	return &MongoRepository{store: store}
}

func (r *MongoRepository) Available() bool {
	return r.store.Connected()
}

// Upsert writes sub keyed by email in a single conditional update. Existing
// records keep their _id and created_at.
func (r *MongoRepository) Upsert(ctx context.Context, sub Subscription) error {
	col, err := r.store.Collection(db.Subscriptions)
	if err != nil {
		return err
	}

	_, err = col.UpdateOne(ctx, bson.M{"email": sub.Email}, upsertDocument(sub), options.Update().SetUpsert(true))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicate
		}
		return err
	}
	return nil
}

// upsertDocument refreshes the mutable fields on every call and sets identity
// and creation time only when the upsert inserts.
func upsertDocument(sub Subscription) bson.M {
	return bson.M{
		"$set": bson.M{
			"email":      sub.Email,
			"name":       sub.Name,
			"interests":  sub.Interests,
			"updated_at": sub.UpdatedAt,
		},
		"$setOnInsert": bson.M{
			"_id":        sub.ID,
			"created_at": sub.CreatedAt,
		},
	}
}

func (r *MongoRepository) List(ctx context.Context, limit, offset int64) ([]Subscription, error) {
	col, err := r.store.Collection(db.Subscriptions)
	if err != nil {
		return nil, err
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "updated_at", Value: -1}}).
		SetLimit(limit).
		SetSkip(offset)

	cursor, err := col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	items := make([]Subscription, 0)
	for cursor.Next(ctx) {
		var sub Subscription
		if err := cursor.Decode(&sub); err != nil {
			return nil, err
		}
		items = append(items, sub)
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *MongoRepository) Count(ctx context.Context) (int64, error) {
	col, err := r.store.Collection(db.Subscriptions)
	if err != nil {
		return 0, err
	}
	return col.CountDocuments(ctx, bson.M{})
}
