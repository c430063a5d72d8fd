package actions

import (
	"askadam/fitness-assistant/internal/domain"
	"askadam/fitness-assistant/internal/store"
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/google/uuid"
)

// Dispatcher maps decoded actions to their effecting handlers against the
// store adapters. Effects are best-effort: a failed action is logged and
// the remaining actions still run, so the chat keeps working even when a
// mutation silently does not land.
type Dispatcher struct {
	workouts store.WorkoutStore
	profile  store.ProfileStore
}

// NewDispatcher creates a dispatcher bound to one user's store adapters.
func NewDispatcher(workouts store.WorkoutStore, profile store.ProfileStore) *Dispatcher {
	return &Dispatcher{workouts: workouts, profile: profile}
}

// Dispatch applies the actions in the order the model emitted them. Each
// action is an independent load-modify-save round trip; there is no
// cross-action transaction. Dispatch returns only after every handler has
// completed.
func (d *Dispatcher) Dispatch(ctx context.Context, acts []Action) {
	for _, a := range acts {
		if err := d.apply(ctx, a); err != nil {
			log.Printf("ERROR: Action %s failed: %v", a.Type, err)
		}
	}
}

func (d *Dispatcher) apply(ctx context.Context, a Action) error {
	switch a.Type {
	case ActionCreateWorkoutDay:
		return d.createWorkoutDay(ctx, a.Data)
	case ActionEditWorkoutDay:
		return d.editWorkoutDay(ctx, a.Data)
	case ActionDeleteWorkoutDay:
		return d.deleteWorkoutDay(ctx, a.Data)
	case ActionUpdateProfile:
		return d.updateProfile(ctx, a.Data)
	default:
		log.Printf("WARN: Unknown action type: %s", a.Type)
		return nil
	}
}

// workoutDayPayload is the loosely-typed CREATE/EDIT payload. ID is decoded
// as any so a missing or non-string id can be skipped with a warning rather
// than failing the whole payload.
type workoutDayPayload struct {
	ID        any               `json:"id"`
	Name      string            `json:"name"`
	Exercises []domain.Exercise `json:"exercises"`
}

func stringID(v any) (string, bool) {
	s, ok := v.(string)
	return s, ok && s != ""
}

// fillExerciseIDs backfills ids the model omitted. IDs come from a
// collision-resistant generator so a new day never duplicates an existing id.
func fillExerciseIDs(exercises []domain.Exercise) []domain.Exercise {
	if exercises == nil {
		exercises = []domain.Exercise{}
	}
	for i := range exercises {
		if exercises[i].ID == "" {
			exercises[i].ID = uuid.NewString()
		}
	}
	return exercises
}

func (d *Dispatcher) createWorkoutDay(ctx context.Context, data json.RawMessage) error {
	var p workoutDayPayload
	if err := json.Unmarshal(data, &p); err != nil {
		log.Printf("WARN: Skipping CREATE_WORKOUT_DAY, malformed payload: %v", err)
		return nil
	}

	// No hard validation: the day is created even from partial data.
	day := domain.WorkoutDay{
		Name:      p.Name,
		Exercises: fillExerciseIDs(p.Exercises),
	}
	if id, ok := stringID(p.ID); ok {
		day.ID = id
	} else {
		day.ID = uuid.NewString()
	}

	days, err := d.workouts.Load(ctx)
	if err != nil {
		return fmt.Errorf("loading workout split: %w", err)
	}
	days = append(days, day)
	if err := d.workouts.Save(ctx, days); err != nil {
		return fmt.Errorf("saving workout split: %w", err)
	}
	return nil
}

func (d *Dispatcher) editWorkoutDay(ctx context.Context, data json.RawMessage) error {
	var p workoutDayPayload
	if err := json.Unmarshal(data, &p); err != nil {
		log.Printf("WARN: Skipping EDIT_WORKOUT_DAY, malformed payload: %v", err)
		return nil
	}
	id, ok := stringID(p.ID)
	if !ok {
		log.Printf("WARN: Skipping EDIT_WORKOUT_DAY: missing or invalid id")
		return nil
	}

	days, err := d.workouts.Load(ctx)
	if err != nil {
		return fmt.Errorf("loading workout split: %w", err)
	}

	for i := range days {
		if days[i].ID == id {
			days[i].Name = p.Name
			days[i].Exercises = fillExerciseIDs(p.Exercises)
			if err := d.workouts.Save(ctx, days); err != nil {
				return fmt.Errorf("saving workout split: %w", err)
			}
			return nil
		}
	}

	// Unmatched id is a no-op, not an error.
	log.Printf("WARN: EDIT_WORKOUT_DAY: no workout day with id %s", id)
	return nil
}

func (d *Dispatcher) deleteWorkoutDay(ctx context.Context, data json.RawMessage) error {
	var p struct {
		ID any `json:"id"`
	}
	if err := json.Unmarshal(data, &p); err != nil {
		log.Printf("WARN: Skipping DELETE_WORKOUT_DAY, malformed payload: %v", err)
		return nil
	}
	id, ok := stringID(p.ID)
	if !ok {
		log.Printf("WARN: Skipping DELETE_WORKOUT_DAY: missing or invalid id")
		return nil
	}

	days, err := d.workouts.Load(ctx)
	if err != nil {
		return fmt.Errorf("loading workout split: %w", err)
	}

	kept := days[:0]
	for _, day := range days {
		if day.ID != id {
			kept = append(kept, day)
		}
	}
	if len(kept) == len(days) {
		// Unmatched id leaves the collection unchanged.
		log.Printf("WARN: DELETE_WORKOUT_DAY: no workout day with id %s", id)
		return nil
	}
	if err := d.workouts.Save(ctx, kept); err != nil {
		return fmt.Errorf("saving workout split: %w", err)
	}
	return nil
}

func (d *Dispatcher) updateProfile(ctx context.Context, data json.RawMessage) error {
	var patch map[string]any
	if err := json.Unmarshal(data, &patch); err != nil {
		log.Printf("WARN: Skipping UPDATE_PROFILE, malformed payload: %v", err)
		return nil
	}
	if len(patch) == 0 {
		log.Printf("WARN: Skipping UPDATE_PROFILE: empty payload")
		return nil
	}
	if err := d.profile.Update(ctx, patch); err != nil {
		return fmt.Errorf("merging profile fields: %w", err)
	}
	return nil
}
