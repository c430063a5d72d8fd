package store

import (
	"askadam/fitness-assistant/internal/domain"
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"
)

func guestStore(t *testing.T) WorkoutStore {
	t.Helper()
	path := filepath.Join(t.TempDir(), "guest_workouts.json")
	router := NewRouter(nil, nil, path, time.Second)
	return router.WorkoutStore("")
}

func TestLocalStoreLoadDefaultsToEmpty(t *testing.T) {
	s := guestStore(t)

	days, err := s.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(days) != 0 {
		t.Errorf("expected empty collection, got %+v", days)
	}
}

func TestLocalStoreRoundTrip(t *testing.T) {
	s := guestStore(t)
	want := []domain.WorkoutDay{
		{ID: "day-1", Name: "Push Day", Exercises: []domain.Exercise{
			{ID: "ex-1", Name: "Bench Press", Sets: 3, Reps: "8-12"},
		}},
	}

	if err := s.Save(context.Background(), want); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := s.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(got) != 1 || got[0].ID != "day-1" || got[0].Name != "Push Day" {
		t.Fatalf("round trip mismatch: %+v", got)
	}
	if got[0].Exercises[0].Reps.String() != "8-12" {
		t.Errorf("reps = %q, want 8-12", got[0].Exercises[0].Reps)
	}
}

func TestLocalStoreOverwriteIsAtomicReplace(t *testing.T) {
	s := guestStore(t)
	ctx := context.Background()

	if err := s.Save(ctx, []domain.WorkoutDay{{ID: "a", Name: "A"}, {ID: "b", Name: "B"}}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := s.Save(ctx, []domain.WorkoutDay{{ID: "b", Name: "B"}}); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(got) != 1 || got[0].ID != "b" {
		t.Errorf("expected only day b, got %+v", got)
	}
}

func TestKeyedLockSerializesAndTimesOut(t *testing.T) {
	locks := NewKeyedLock()

	release, err := locks.Acquire("user-1", time.Second)
	if err != nil {
		t.Fatalf("first acquire: %v", err)
	}

	// Held lock: the next caller times out instead of hanging forever.
	if _, err := locks.Acquire("user-1", 20*time.Millisecond); !errors.Is(err, ErrLockTimeout) {
		t.Fatalf("expected ErrLockTimeout, got %v", err)
	}

	// Other keys are unaffected.
	release2, err := locks.Acquire("user-2", 20*time.Millisecond)
	if err != nil {
		t.Fatalf("independent key blocked: %v", err)
	}
	release2()

	release()
	release3, err := locks.Acquire("user-1", 20*time.Millisecond)
	if err != nil {
		t.Fatalf("acquire after release: %v", err)
	}
	release3()
}
