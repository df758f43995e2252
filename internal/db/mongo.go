package db

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrUnavailable is returned by every store operation when the service runs
// without a database.
var ErrUnavailable = errors.New("database not available")

const (
	CourseCategories = "coursecategory"
	Staff            = "staff"
	ContactMessages  = "contactmessage"
	Subscriptions    = "subscription"
)

// Handle is either backed by a database client or explicitly absent. Callers
// go through Collection, which reports ErrUnavailable in the absent case. A
// client whose server is down is still "connected"; its operations fail.
type Handle struct {
	client   *mongo.Client
	database *mongo.Database
}

// Disconnected returns a handle for running without a database.
func Disconnected() *Handle {
	return &Handle{}
}

// Connect builds a client for uri without waiting for the server. The driver
// selects servers per operation and keeps reconnecting, so a handle created
// during an outage starts working once the server is back. Only a malformed
// URI fails here.
func Connect(ctx context.Context, uri, dbName string) (*Handle, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}

	return &Handle{
		client:   client,
		database: client.Database(dbName),
	}, nil
}

func (h *Handle) Ping(ctx context.Context) error {
	if !h.Connected() {
		return ErrUnavailable
	}
	return h.client.Ping(ctx, nil)
}

func (h *Handle) Connected() bool {
	return h != nil && h.database != nil
}

func (h *Handle) Collection(name string) (*mongo.Collection, error) {
	if !h.Connected() {
		return nil, ErrUnavailable
	}
	return h.database.Collection(name), nil
}

func (h *Handle) CollectionNames(ctx context.Context) ([]string, error) {
	if !h.Connected() {
		return nil, ErrUnavailable
	}
	return h.database.ListCollectionNames(ctx, bson.D{})
}

func (h *Handle) Disconnect(ctx context.Context) error {
	if h == nil || h.client == nil {
		return nil
	}
	return h.client.Disconnect(ctx)
}

func EnsureIndexes(ctx context.Context, h *Handle) error {
	if !h.Connected() {
		return ErrUnavailable
	}

	indexTimeout, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	_, err := h.database.Collection(CourseCategories).Indexes().CreateOne(indexTimeout, mongo.IndexModel{
		Keys:    bson.D{{Key: "slug", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return err
	}

	_, err = h.database.Collection(Subscriptions).Indexes().CreateOne(indexTimeout, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return err
	}

	_, err = h.database.Collection(ContactMessages).Indexes().CreateOne(indexTimeout, mongo.IndexModel{
		Keys: bson.D{{Key: "created_at", Value: -1}},
	})
	if err != nil {
		return err
	}

	return nil
}
