package mongo

import (
	"askadam/fitness-assistant/internal/repository"
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// mongoProfileRepository implements repository.ProfileRepository over the
// preferences map on the user document.
type mongoProfileRepository struct {
	collection *mongo.Collection
}

// NewMongoProfileRepository creates a new profile preferences repository.
func NewMongoProfileRepository(db *mongo.Database) repository.ProfileRepository {
	return &mongoProfileRepository{
		collection: db.Collection(userCollectionName),
	}
}

// GetPreferences retrieves the user's preferences map. A user without one
// gets an empty map, not an error.
func (r *mongoProfileRepository) GetPreferences(ctx context.Context, userID primitive.ObjectID) (map[string]any, error) {
	var doc struct {
		Preferences map[string]any `bson:"preferences"`
	}
	err := r.collection.FindOne(ctx, bson.M{"_id": userID}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	if doc.Preferences == nil {
		return map[string]any{}, nil
	}
	return doc.Preferences, nil
}

// MergePreferences shallow-merges the patch into the stored preferences.
// Each field is set individually under the preferences namespace so fields
// absent from the patch survive. Unknown fields are written through as-is.
func (r *mongoProfileRepository) MergePreferences(ctx context.Context, userID primitive.ObjectID, patch map[string]any) error {
	if len(patch) == 0 {
		return nil
	}

	set := bson.M{"updatedAt": time.Now().UTC()}
	for field, value := range patch {
		set["preferences."+field] = value
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": userID}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}
