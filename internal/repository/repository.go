package repository

import (
	"askadam/fitness-assistant/internal/domain"
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Error constants for the repository layer.
var (
	ErrNotFound     = RepositoryError("not found")
	ErrUpdateFailed = RepositoryError("update failed")
)

// RepositoryError helps distinguish repository errors.
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// UserRepository defines the interface for interacting with user accounts.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (primitive.ObjectID, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error)
}

// WorkoutRepository reads and writes the workout split embedded in the
// user's document. SaveSplit merge-writes the whole collection under the
// workoutSplit key; GetSplit returns an empty slice when none exists.
type WorkoutRepository interface {
	GetSplit(ctx context.Context, userID primitive.ObjectID) ([]domain.WorkoutDay, error)
	SaveSplit(ctx context.Context, userID primitive.ObjectID, days []domain.WorkoutDay) error
}

// ProfileRepository reads and merge-writes the preferences map embedded in
// the user's document. MergePreferences is a shallow merge: fields in the
// patch replace or add to the stored map, other fields are untouched.
type ProfileRepository interface {
	GetPreferences(ctx context.Context, userID primitive.ObjectID) (map[string]any, error)
	MergePreferences(ctx context.Context, userID primitive.ObjectID, patch map[string]any) error
}
