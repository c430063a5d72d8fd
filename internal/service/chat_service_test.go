package service

import (
	"askadam/fitness-assistant/internal/gemini"
	"askadam/fitness-assistant/internal/store"
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// fakeLLM returns a scripted response (or error) and records the prompt.
type fakeLLM struct {
	response string
	err      error
	system   string
	message  string
}

func (f *fakeLLM) Chat(_ context.Context, system string, _ []gemini.Message, message string) (string, error) {
	f.system = system
	f.message = message
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

func guestRouter(t *testing.T) *store.Router {
	t.Helper()
	path := filepath.Join(t.TempDir(), "guest_workouts.json")
	return store.NewRouter(nil, nil, path, time.Second)
}

func TestSendMessageAppliesActionsAndReturnsText(t *testing.T) {
	llm := &fakeLLM{response: "Great, I've set that up for you!\n" +
		"Actions\n" +
		"CREATE_WORKOUT_DAY\n" +
		`{"name":"Push Day","exercises":[{"name":"Bench Press","sets":3,"reps":10}]}`}
	stores := guestRouter(t)
	svc := NewChatService(llm, stores, nil)

	reply, err := svc.SendMessage(context.Background(), "", nil, "set up a push day for me")
	if err != nil {
		t.Fatalf("SendMessage: %v", err)
	}
	if reply != "Great, I've set that up for you!" {
		t.Errorf("reply = %q", reply)
	}

	days, err := stores.WorkoutStore("").Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(days) != 1 {
		t.Fatalf("expected 1 persisted day, got %d", len(days))
	}
	day := days[0]
	if day.Name != "Push Day" || day.ID == "" {
		t.Errorf("persisted day = %+v", day)
	}
	if len(day.Exercises) != 1 {
		t.Fatalf("expected 1 exercise, got %d", len(day.Exercises))
	}
	ex := day.Exercises[0]
	if ex.ID == "" || ex.Name != "Bench Press" || ex.Sets != 3 || ex.Reps.String() != "10" {
		t.Errorf("persisted exercise = %+v", ex)
	}
}

func TestSendMessageIncludesSplitContext(t *testing.T) {
	llm := &fakeLLM{response: "Done!\nActions\nCREATE_WORKOUT_DAY\n{\"name\":\"Leg Day\",\"exercises\":[]}"}
	stores := guestRouter(t)
	svc := NewChatService(llm, stores, nil)

	if _, err := svc.SendMessage(context.Background(), "", nil, "add a leg day"); err != nil {
		t.Fatalf("first SendMessage: %v", err)
	}
	if _, err := svc.SendMessage(context.Background(), "", nil, "what does my week look like?"); err != nil {
		t.Fatalf("second SendMessage: %v", err)
	}

	if !strings.Contains(llm.system, "Leg Day") {
		t.Error("second prompt should carry the saved workout split")
	}
	if llm.message != "what does my week look like?" {
		t.Errorf("message = %q", llm.message)
	}
}

func TestSendMessageLLMFailureFallsBack(t *testing.T) {
	llm := &fakeLLM{err: gemini.ErrUnavailable}
	svc := NewChatService(llm, guestRouter(t), nil)

	reply, err := svc.SendMessage(context.Background(), "", nil, "hello")
	if err != nil {
		t.Fatalf("SendMessage: %v", err)
	}
	if reply != llmFailureMessage {
		t.Errorf("reply = %q, want fallback message", reply)
	}
}

func TestSendMessageEmptyResponseFallsBackWithoutMutations(t *testing.T) {
	// Actions but no conversational text: nothing must be applied.
	llm := &fakeLLM{response: "Actions\nCREATE_WORKOUT_DAY\n{\"name\":\"Sneaky Day\",\"exercises\":[]}"}
	stores := guestRouter(t)
	svc := NewChatService(llm, stores, nil)

	reply, err := svc.SendMessage(context.Background(), "", nil, "hello")
	if err != nil {
		t.Fatalf("SendMessage: %v", err)
	}
	if reply != emptyReplyMessage {
		t.Errorf("reply = %q, want empty-reply message", reply)
	}

	days, err := stores.WorkoutStore("").Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(days) != 0 {
		t.Errorf("expected no persisted days, got %+v", days)
	}
}

func TestSendMessageMalformedActionStillReturnsText(t *testing.T) {
	llm := &fakeLLM{response: "Here you go.\nActions\nCREATE_WORKOUT_DAY\n{\"name\": \"broken"}
	stores := guestRouter(t)
	svc := NewChatService(llm, stores, nil)

	reply, err := svc.SendMessage(context.Background(), "", nil, "hello")
	if err != nil {
		t.Fatalf("SendMessage: %v", err)
	}
	if reply != "Here you go." {
		t.Errorf("reply = %q", reply)
	}

	days, _ := stores.WorkoutStore("").Load(context.Background())
	if len(days) != 0 {
		t.Errorf("malformed action must not persist anything, got %+v", days)
	}
}

func TestSendMessageGuestProfileUpdateIsNoOp(t *testing.T) {
	llm := &fakeLLM{response: "Noted!\nActions\nUPDATE_PROFILE\n{\"weight\":\"80kg\"}"}
	svc := NewChatService(llm, guestRouter(t), nil)

	reply, err := svc.SendMessage(context.Background(), "", nil, "I weigh 80kg")
	if err != nil {
		t.Fatalf("SendMessage: %v", err)
	}
	if reply != "Noted!" {
		t.Errorf("reply = %q", reply)
	}
}
