package store

import (
	"askadam/fitness-assistant/internal/domain"
	"askadam/fitness-assistant/internal/repository"
	"context"
	"time"
)

// WorkoutStore loads and saves a single user's workout day collection.
// Load returns an empty collection when none exists yet.
type WorkoutStore interface {
	Load(ctx context.Context) ([]domain.WorkoutDay, error)
	Save(ctx context.Context, days []domain.WorkoutDay) error
}

// ProfileStore merge-writes partial profile fields into the user's profile.
type ProfileStore interface {
	Update(ctx context.Context, patch map[string]any) error
}

// DefaultLockTimeout bounds how long an adapter call waits for the per-user
// lock before surfacing a store I/O error.
const DefaultLockTimeout = 10 * time.Second

// Router hands out store adapters routed by sign-in state: a present user
// identity targets the remote per-user document, an absent one targets the
// local guest file. Adapter calls for the same user are serialized through a
// shared keyed lock.
type Router struct {
	workouts    repository.WorkoutRepository
	profiles    repository.ProfileRepository
	locks       *KeyedLock
	guestPath   string
	lockTimeout time.Duration
}

// NewRouter creates a store router. guestPath is the file backing the
// signed-out workout collection.
func NewRouter(workouts repository.WorkoutRepository, profiles repository.ProfileRepository, guestPath string, lockTimeout time.Duration) *Router {
	if lockTimeout <= 0 {
		lockTimeout = DefaultLockTimeout
	}
	return &Router{
		workouts:    workouts,
		profiles:    profiles,
		locks:       NewKeyedLock(),
		guestPath:   guestPath,
		lockTimeout: lockTimeout,
	}
}

// WorkoutStore returns the workout adapter for the given user identity.
// An empty userID means no one is signed in and routes to local storage.
func (r *Router) WorkoutStore(userID string) WorkoutStore {
	if userID == "" {
		return newLocalWorkoutStore(r.guestPath, r.locks, r.lockTimeout)
	}
	return newRemoteWorkoutStore(r.workouts, userID, r.locks, r.lockTimeout)
}

// ProfileStore returns the profile adapter for the given user identity.
// Profile updates require a signed-in user; the guest adapter no-ops.
func (r *Router) ProfileStore(userID string) ProfileStore {
	if userID == "" {
		return guestProfileStore{}
	}
	return newRemoteProfileStore(r.profiles, userID)
}
