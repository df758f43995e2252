package subscriptions

import (
	"context"
	"testing"
	"time"

	"courses-backend/internal/db"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestUpsertDocumentSetsIdentityOnlyOnInsert(t *testing.T) {
	created := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	updated := created.Add(time.Hour)
	name := "Ada"
	sub := Subscription{
		ID:        "65f0c0ffee0000000000abcd",
		Email:     "ada@example.com",
		Name:      &name,
		Interests: []string{"robotics"},
		CreatedAt: created,
		UpdatedAt: updated,
	}

	require.Equal(t, bson.M{
		"$set": bson.M{
			"email":      "ada@example.com",
			"name":       &name,
			"interests":  []string{"robotics"},
			"updated_at": updated,
		},
		"$setOnInsert": bson.M{
			"_id":        "65f0c0ffee0000000000abcd",
			"created_at": created,
		},
	}, upsertDocument(sub))
}

func TestUpsertDocumentClearsOmittedOptionalFields(t *testing.T) {
	doc := upsertDocument(Subscription{Email: "bob@example.com"})

	set := doc["$set"].(bson.M)
	require.Contains(t, set, "name")
	require.Nil(t, set["name"])
	require.Contains(t, set, "interests")
	require.Nil(t, set["interests"])
	require.NotContains(t, set, "created_at")
	require.NotContains(t, set, "_id")
}

func TestMongoRepositoryWithoutDatabase(t *testing.T) {
	repo := NewRepository(db.Disconnected())
	require.False(t, repo.Available())
	require.ErrorIs(t, repo.Upsert(context.Background(), Subscription{Email: "a@example.com"}), db.ErrUnavailable)
}
