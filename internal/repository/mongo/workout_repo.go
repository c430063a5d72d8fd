package mongo

import (
	"askadam/fitness-assistant/internal/domain"
	"askadam/fitness-assistant/internal/repository"
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// mongoWorkoutRepository implements repository.WorkoutRepository. The split
// lives as a workoutSplit array on the user's own document rather than in a
// separate collection, so reads and writes address users by _id.
type mongoWorkoutRepository struct {
	collection *mongo.Collection
}

// NewMongoWorkoutRepository creates a new workout split repository.
func NewMongoWorkoutRepository(db *mongo.Database) repository.WorkoutRepository {
	return &mongoWorkoutRepository{
		collection: db.Collection(userCollectionName),
	}
}

// GetSplit retrieves the user's workout split. A user without one gets an
// empty slice, not an error.
func (r *mongoWorkoutRepository) GetSplit(ctx context.Context, userID primitive.ObjectID) ([]domain.WorkoutDay, error) {
	var doc struct {
		WorkoutSplit []domain.WorkoutDay `bson:"workoutSplit"`
	}
	err := r.collection.FindOne(ctx, bson.M{"_id": userID}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	if doc.WorkoutSplit == nil {
		return []domain.WorkoutDay{}, nil
	}
	return doc.WorkoutSplit, nil
}

// SaveSplit merge-writes the whole collection under the workoutSplit key.
// Other fields on the user document are left untouched.
func (r *mongoWorkoutRepository) SaveSplit(ctx context.Context, userID primitive.ObjectID, days []domain.WorkoutDay) error {
	if days == nil {
		days = []domain.WorkoutDay{}
	}
	update := bson.M{
		"$set": bson.M{
			"workoutSplit": days,
			"updatedAt":    time.Now().UTC(),
		},
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": userID}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}
