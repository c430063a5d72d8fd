package store

import (
	"askadam/fitness-assistant/internal/domain"
	"askadam/fitness-assistant/internal/repository"
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// remoteWorkoutStore targets the signed-in user's remote document. Calls
// are serialized per user through the shared keyed lock so back-to-back
// load-modify-save cycles never interleave.
type remoteWorkoutStore struct {
	repo        repository.WorkoutRepository
	userID      string
	locks       *KeyedLock
	lockTimeout time.Duration
}

func newRemoteWorkoutStore(repo repository.WorkoutRepository, userID string, locks *KeyedLock, lockTimeout time.Duration) *remoteWorkoutStore {
	return &remoteWorkoutStore{
		repo:        repo,
		userID:      userID,
		locks:       locks,
		lockTimeout: lockTimeout,
	}
}

func (s *remoteWorkoutStore) objectID() (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(s.userID)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("invalid user id %q: %w", s.userID, err)
	}
	return id, nil
}

// Load fetches the user's workout split, defaulting to empty when the user
// has none yet.
func (s *remoteWorkoutStore) Load(ctx context.Context) ([]domain.WorkoutDay, error) {
	release, err := s.locks.Acquire(s.userID, s.lockTimeout)
	if err != nil {
		return nil, err
	}
	defer release()

	id, err := s.objectID()
	if err != nil {
		return nil, err
	}

	days, err := s.repo.GetSplit(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return []domain.WorkoutDay{}, nil
		}
		return nil, err
	}
	return days, nil
}

// Save merge-writes the whole collection back to the user's document.
func (s *remoteWorkoutStore) Save(ctx context.Context, days []domain.WorkoutDay) error {
	release, err := s.locks.Acquire(s.userID, s.lockTimeout)
	if err != nil {
		return err
	}
	defer release()

	id, err := s.objectID()
	if err != nil {
		return err
	}
	return s.repo.SaveSplit(ctx, id, days)
}

// remoteProfileStore merge-writes profile fields for a signed-in user.
type remoteProfileStore struct {
	repo   repository.ProfileRepository
	userID string
}

func newRemoteProfileStore(repo repository.ProfileRepository, userID string) *remoteProfileStore {
	return &remoteProfileStore{repo: repo, userID: userID}
}

func (s *remoteProfileStore) Update(ctx context.Context, patch map[string]any) error {
	id, err := primitive.ObjectIDFromHex(s.userID)
	if err != nil {
		return fmt.Errorf("invalid user id %q: %w", s.userID, err)
	}
	return s.repo.MergePreferences(ctx, id, patch)
}

// guestProfileStore is the signed-out profile adapter. There is no profile
// document to write, so updates are dropped with an error log.
type guestProfileStore struct{}

func (guestProfileStore) Update(_ context.Context, patch map[string]any) error {
	log.Printf("ERROR: Cannot update profile without a signed-in user (dropping %d field(s))", len(patch))
	return nil
}
