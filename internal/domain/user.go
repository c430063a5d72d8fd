package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User represents a registered account. The user document also carries the
// profile preferences map and the workout split, mirroring the single
// per-user document the app reads and merge-writes.
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         string             `bson:"name" json:"name"`
	Email        string             `bson:"email" json:"email"` // Unique
	PasswordHash string             `bson:"passwordHash" json:"-"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`

	// Preferences is an open mapping of profile fields (height, weight,
	// goals, medicalConditions, ...). Unknown fields are written through
	// as-is; no fixed schema is enforced.
	Preferences map[string]any `bson:"preferences,omitempty" json:"preferences,omitempty"`

	// WorkoutSplit is the user's collection of workout days.
	WorkoutSplit []WorkoutDay `bson:"workoutSplit,omitempty" json:"workoutSplit,omitempty"`
}
