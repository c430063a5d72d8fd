package actions

import (
	"askadam/fitness-assistant/internal/domain"
	"context"
	"encoding/json"
	"errors"
	"testing"
)

// fakeWorkoutStore is an in-memory store.WorkoutStore.
type fakeWorkoutStore struct {
	days      []domain.WorkoutDay
	loadErr   error
	saveErr   error
	saveCalls int
}

func (f *fakeWorkoutStore) Load(context.Context) ([]domain.WorkoutDay, error) {
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	out := make([]domain.WorkoutDay, len(f.days))
	copy(out, f.days)
	return out, nil
}

func (f *fakeWorkoutStore) Save(_ context.Context, days []domain.WorkoutDay) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saveCalls++
	f.days = days
	return nil
}

// fakeProfileStore records merge patches.
type fakeProfileStore struct {
	patches []map[string]any
}

func (f *fakeProfileStore) Update(_ context.Context, patch map[string]any) error {
	f.patches = append(f.patches, patch)
	return nil
}

func dispatch(t *testing.T, workouts *fakeWorkoutStore, profile *fakeProfileStore, actionType, payload string) {
	t.Helper()
	d := NewDispatcher(workouts, profile)
	d.Dispatch(context.Background(), []Action{{Type: actionType, Data: json.RawMessage(payload)}})
}

func TestCreateWorkoutDayGeneratesIDs(t *testing.T) {
	ws := &fakeWorkoutStore{}
	payload := `{"name":"Push Day","exercises":[{"name":"Bench Press","sets":3,"reps":10}]}`

	dispatch(t, ws, &fakeProfileStore{}, ActionCreateWorkoutDay, payload)
	dispatch(t, ws, &fakeProfileStore{}, ActionCreateWorkoutDay, payload)

	if len(ws.days) != 2 {
		t.Fatalf("expected 2 workout days, got %d", len(ws.days))
	}
	first, second := ws.days[0], ws.days[1]
	if first.ID == "" || second.ID == "" {
		t.Error("generated day ids must be non-empty")
	}
	if first.ID == second.ID {
		t.Error("generated day ids must be distinct")
	}
	if first.Name != "Push Day" {
		t.Errorf("day name = %q, want %q", first.Name, "Push Day")
	}
	if len(first.Exercises) != 1 {
		t.Fatalf("expected 1 exercise, got %d", len(first.Exercises))
	}
	ex := first.Exercises[0]
	if ex.ID == "" {
		t.Error("generated exercise id must be non-empty")
	}
	if ex.Sets != 3 || ex.Reps.String() != "10" {
		t.Errorf("exercise = %+v, want sets 3 reps 10", ex)
	}
}

func TestCreateWorkoutDayKeepsProvidedID(t *testing.T) {
	ws := &fakeWorkoutStore{}
	dispatch(t, ws, &fakeProfileStore{}, ActionCreateWorkoutDay, `{"id":"day-7","name":"Legs","exercises":[]}`)

	if len(ws.days) != 1 || ws.days[0].ID != "day-7" {
		t.Fatalf("expected day with id day-7, got %+v", ws.days)
	}
}

func TestEditWorkoutDayReplacesInPlace(t *testing.T) {
	ws := &fakeWorkoutStore{days: []domain.WorkoutDay{
		{ID: "day-1", Name: "Push", Exercises: []domain.Exercise{{ID: "ex-1", Name: "Bench Press", Sets: 3, Reps: "10"}}},
		{ID: "day-2", Name: "Pull", Exercises: []domain.Exercise{}},
	}}

	dispatch(t, ws, &fakeProfileStore{}, ActionEditWorkoutDay,
		`{"id":"day-1","name":"Push (heavy)","exercises":[{"name":"Incline Press","sets":4,"reps":"6-8"}]}`)

	if len(ws.days) != 2 {
		t.Fatalf("expected 2 days, got %d", len(ws.days))
	}
	edited := ws.days[0]
	if edited.ID != "day-1" {
		t.Errorf("edit must preserve the day id, got %q", edited.ID)
	}
	if edited.Name != "Push (heavy)" {
		t.Errorf("day name = %q", edited.Name)
	}
	if len(edited.Exercises) != 1 || edited.Exercises[0].Reps.String() != "6-8" {
		t.Errorf("exercises not replaced: %+v", edited.Exercises)
	}
	if edited.Exercises[0].ID == "" {
		t.Error("new exercise id must be backfilled")
	}
}

func TestEditAndDeleteSkipWithoutStringID(t *testing.T) {
	for _, tc := range []struct {
		actionType string
		payload    string
	}{
		{ActionEditWorkoutDay, `{"name":"No ID","exercises":[]}`},
		{ActionEditWorkoutDay, `{"id":42,"name":"Numeric ID","exercises":[]}`},
		{ActionDeleteWorkoutDay, `{}`},
		{ActionDeleteWorkoutDay, `{"id":true}`},
	} {
		ws := &fakeWorkoutStore{days: []domain.WorkoutDay{{ID: "day-1", Name: "Push"}}}
		dispatch(t, ws, &fakeProfileStore{}, tc.actionType, tc.payload)

		if ws.saveCalls != 0 {
			t.Errorf("%s %s: expected zero store mutations, got %d saves", tc.actionType, tc.payload, ws.saveCalls)
		}
	}
}

func TestDeleteWorkoutDay(t *testing.T) {
	ws := &fakeWorkoutStore{days: []domain.WorkoutDay{
		{ID: "day-1", Name: "Push"},
		{ID: "day-2", Name: "Pull"},
	}}

	dispatch(t, ws, &fakeProfileStore{}, ActionDeleteWorkoutDay, `{"id":"day-1"}`)

	if len(ws.days) != 1 || ws.days[0].ID != "day-2" {
		t.Fatalf("expected only day-2 to remain, got %+v", ws.days)
	}
}

func TestDeleteUnmatchedIDLeavesCollectionUnchanged(t *testing.T) {
	ws := &fakeWorkoutStore{days: []domain.WorkoutDay{{ID: "day-1", Name: "Push"}}}

	dispatch(t, ws, &fakeProfileStore{}, ActionDeleteWorkoutDay, `{"id":"nope"}`)

	if len(ws.days) != 1 || ws.saveCalls != 0 {
		t.Fatalf("collection changed: days=%+v saves=%d", ws.days, ws.saveCalls)
	}
}

func TestUpdateProfileMergesFields(t *testing.T) {
	ps := &fakeProfileStore{}
	dispatch(t, &fakeWorkoutStore{}, ps, ActionUpdateProfile, `{"weight":"80kg","goals":"muscle gain"}`)

	if len(ps.patches) != 1 {
		t.Fatalf("expected 1 patch, got %d", len(ps.patches))
	}
	if ps.patches[0]["weight"] != "80kg" || ps.patches[0]["goals"] != "muscle gain" {
		t.Errorf("unexpected patch: %v", ps.patches[0])
	}
}

func TestUpdateProfileSkipsEmptyPayload(t *testing.T) {
	ps := &fakeProfileStore{}
	dispatch(t, &fakeWorkoutStore{}, ps, ActionUpdateProfile, `{}`)

	if len(ps.patches) != 0 {
		t.Errorf("expected empty payload to be skipped, got %v", ps.patches)
	}
}

func TestUnknownActionTypeIsIgnored(t *testing.T) {
	ws := &fakeWorkoutStore{days: []domain.WorkoutDay{{ID: "day-1", Name: "Push"}}}
	dispatch(t, ws, &fakeProfileStore{}, "RENAME_WORKOUT_DAY", `{"id":"day-1","name":"Other"}`)

	if ws.saveCalls != 0 || ws.days[0].Name != "Push" {
		t.Errorf("unknown action must be a no-op, got %+v", ws.days)
	}
}

func TestStoreFailureDoesNotAbortRemainingActions(t *testing.T) {
	ws := &fakeWorkoutStore{loadErr: errors.New("remote read failed")}
	ps := &fakeProfileStore{}
	d := NewDispatcher(ws, ps)

	d.Dispatch(context.Background(), []Action{
		{Type: ActionCreateWorkoutDay, Data: json.RawMessage(`{"name":"Doomed","exercises":[]}`)},
		{Type: ActionUpdateProfile, Data: json.RawMessage(`{"injuries":"none"}`)},
	})

	if len(ps.patches) != 1 {
		t.Errorf("profile action should still run after a workout store failure, got %d patches", len(ps.patches))
	}
}

func TestDispatchAppliesActionsInEmissionOrder(t *testing.T) {
	ws := &fakeWorkoutStore{}
	d := NewDispatcher(ws, &fakeProfileStore{})

	d.Dispatch(context.Background(), []Action{
		{Type: ActionCreateWorkoutDay, Data: json.RawMessage(`{"id":"day-1","name":"A","exercises":[]}`)},
		{Type: ActionCreateWorkoutDay, Data: json.RawMessage(`{"id":"day-2","name":"B","exercises":[]}`)},
		{Type: ActionDeleteWorkoutDay, Data: json.RawMessage(`{"id":"day-1"}`)},
	})

	if len(ws.days) != 1 || ws.days[0].ID != "day-2" {
		t.Fatalf("expected day-2 only after ordered dispatch, got %+v", ws.days)
	}
}
