package catalog

import (
	"context"
	"errors"

	"courses-backend/internal/db"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrDuplicate reports that a record with the same _id or slug already exists.
var ErrDuplicate = errors.New("duplicate record")

type Repository interface {
	Available() bool
	CountCategories(ctx context.Context) (int64, error)
	InsertCategory(ctx context.Context, item CourseCategory) error
	ListCategories(ctx context.Context) ([]CourseCategory, error)
	FindCategoryBySlug(ctx context.Context, slug string) (CourseCategory, error)
	CountStaff(ctx context.Context) (int64, error)
	InsertStaff(ctx context.Context, item StaffMember) error
	ListStaff(ctx context.Context) ([]StaffMember, error)
}

type MongoRepository struct {
	store *db.Handle
}

func NewRepository(store *db.Handle) *MongoRepository {
	return &MongoRepository{store: store}
}

var withoutID = bson.M{"_id": 0}

func (r *MongoRepository) Available() bool {
	return r.store.Connected()
}

func (r *MongoRepository) CountCategories(ctx context.Context) (int64, error) {
	return r.count(ctx, db.CourseCategories)
}

func (r *MongoRepository) InsertCategory(ctx context.Context, item CourseCategory) error {
	return r.insert(ctx, db.CourseCategories, item)
}

func (r *MongoRepository) ListCategories(ctx context.Context) ([]CourseCategory, error) {
	col, err := r.store.Collection(db.CourseCategories)
	if err != nil {
		return nil, err
	}

	cursor, err := col.Find(ctx, bson.M{}, options.Find().SetProjection(withoutID))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	items := make([]CourseCategory, 0)
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *MongoRepository) FindCategoryBySlug(ctx context.Context, slug string) (CourseCategory, error) {
	col, err := r.store.Collection(db.CourseCategories)
	if err != nil {
		return CourseCategory{}, err
	}

	var item CourseCategory
	opts := options.FindOne().SetProjection(withoutID)
	if err := col.FindOne(ctx, bson.M{"slug": slug}, opts).Decode(&item); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return CourseCategory{}, ErrNotFound
		}
		return CourseCategory{}, err
	}
	return item, nil
}

func (r *MongoRepository) CountStaff(ctx context.Context) (int64, error) {
	return r.count(ctx, db.Staff)
}

func (r *MongoRepository) InsertStaff(ctx context.Context, item StaffMember) error {
	return r.insert(ctx, db.Staff, item)
}

func (r *MongoRepository) ListStaff(ctx context.Context) ([]StaffMember, error) {
	col, err := r.store.Collection(db.Staff)
	if err != nil {
		return nil, err
	}

	cursor, err := col.Find(ctx, bson.M{}, options.Find().SetProjection(withoutID))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	items := make([]StaffMember, 0)
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *MongoRepository) count(ctx context.Context, name string) (int64, error) {
	col, err := r.store.Collection(name)
	if err != nil {
		return 0, err
	}
	return col.CountDocuments(ctx, bson.M{})
}

func (r *MongoRepository) insert(ctx context.Context, name string, doc interface{}) error {
	col, err := r.store.Collection(name)
	if err != nil {
		return err
	}
	if _, err := col.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicate
		}
		return err
	}
	return nil
}
