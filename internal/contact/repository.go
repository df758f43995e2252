package contact

import (
	"context"

	"courses-backend/internal/db"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Repository interface {
	Available() bool
	Create(ctx context.Context, msg Message) error
	List(ctx context.Context, limit, offset int64) ([]Message, error)
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

func (r *MongoRepository) Create(ctx context.Context, msg Message) error {
	col, err := r.store.Collection(db.ContactMessages)
	if err != nil {
		return err
	}
	_, err = col.InsertOne(ctx, msg)
	return err
}

func (r *MongoRepository) List(ctx context.Context, limit, offset int64) ([]Message, error) {
	col, err := r.store.Collection(db.ContactMessages)
	if err != nil {
		return nil, err
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(limit).
		SetSkip(offset)

	cursor, err := col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	items := make([]Message, 0)
	for cursor.Next(ctx) {
		var msg Message
		if err := cursor.Decode(&msg); err != nil {
			return nil, err
		}
		items = append(items, msg)
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *MongoRepository) Count(ctx context.Context) (int64, error) {
	col, err := r.store.Collection(db.ContactMessages)
	if err != nil {
		return 0, err
	}
	return col.CountDocuments(ctx, bson.M{})
}
