package store

import (
	"askadam/fitness-assistant/internal/domain"
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"
)

// guestLockKey serializes all guest-store access; signed-out sessions share
// one local collection under a fixed key.
const guestLockKey = "guest"

// localWorkoutStore keeps the signed-out workout collection in a single
// JSON-encoded file, the server-side analog of browser-local storage.
type localWorkoutStore struct {
	path        string
	locks       *KeyedLock
	lockTimeout time.Duration
}

func newLocalWorkoutStore(path string, locks *KeyedLock, lockTimeout time.Duration) *localWorkoutStore {
	return &localWorkoutStore{path: path, locks: locks, lockTimeout: lockTimeout}
}

type localSplitFile struct {
	WorkoutSplit []domain.WorkoutDay `json:"workoutSplit"`
}

// Load reads the guest collection, defaulting to empty when the file does
// not exist yet.
func (s *localWorkoutStore) Load(_ context.Context) ([]domain.WorkoutDay, error) {
	release, err := s.locks.Acquire(guestLockKey, s.lockTimeout)
	if err != nil {
		return nil, err
	}
	defer release()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []domain.WorkoutDay{}, nil
		}
		return nil, err
	}

	var file localSplitFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, err
	}
	if file.WorkoutSplit == nil {
		return []domain.WorkoutDay{}, nil
	}
	return file.WorkoutSplit, nil
}

// Save writes the whole collection back, via a temp file rename so a failed
// write never truncates the previous state.
func (s *localWorkoutStore) Save(_ context.Context, days []domain.WorkoutDay) error {
	release, err := s.locks.Acquire(guestLockKey, s.lockTimeout)
	if err != nil {
		return err
	}
	defer release()

	if days == nil {
		days = []domain.WorkoutDay{}
	}
	data, err := json.Marshal(localSplitFile{WorkoutSplit: days})
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}
