package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

// fakeGemini stands in for the generateContent endpoint.
func fakeGemini(t *testing.T, status int, reply string, gotBody *generateContentRequest) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, ":generateContent") {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if r.Header.Get("x-goog-api-key") == "" {
			t.Error("missing API key header")
		}
		if gotBody != nil {
			if err := json.NewDecoder(r.Body).Decode(gotBody); err != nil {
				t.Errorf("decoding request body: %v", err)
			}
		}
		w.WriteHeader(status)
		if status == http.StatusOK {
			resp := map[string]any{
				"candidates": []map[string]any{
					{"content": map[string]any{"role": "model", "parts": []map[string]any{{"text": reply}}}},
				},
			}
			_ = json.NewEncoder(w).Encode(resp)
		}
	}))
}

func newTestClient(baseURL string) *Client {
	return NewClient("test-key", "gemini-2.0-flash", baseURL, 0.7, 2048)
}

func TestChatSendsSystemHistoryAndMessage(t *testing.T) {
	var got generateContentRequest
	srv := fakeGemini(t, http.StatusOK, "Hi there!", &got)
	defer srv.Close()

	client := newTestClient(srv.URL)
	history := []Message{
		{Role: "user", Content: "hello"},
		{Role: "model", Content: "hey"},
	}
	reply, err := client.Chat(context.Background(), "system text", history, "make me a plan")
	if err != nil {
		t.Fatalf("Chat: %v", err)
	}
	if reply != "Hi there!" {
		t.Errorf("reply = %q", reply)
	}

	if got.SystemInstruction == nil || got.SystemInstruction.Parts[0].Text != "system text" {
		t.Error("system instruction not forwarded")
	}
	if len(got.Contents) != 3 {
		t.Fatalf("expected 3 contents, got %d", len(got.Contents))
	}
	if got.Contents[1].Role != "model" {
		t.Errorf("history role = %q, want model", got.Contents[1].Role)
	}
	last := got.Contents[2]
	if last.Role != "user" || last.Parts[0].Text != "make me a plan" {
		t.Errorf("last content = %+v", last)
	}
	if got.GenerationConfig == nil || got.GenerationConfig.MaxOutputTokens != 2048 {
		t.Error("generation config not forwarded")
	}
}

func TestChatStatusErrors(t *testing.T) {
	cases := []struct {
		status int
		want   error
	}{
		{http.StatusUnauthorized, ErrUnauthorized},
		{http.StatusForbidden, ErrUnauthorized},
		{http.StatusTooManyRequests, ErrRateLimited},
		{http.StatusInternalServerError, ErrUnavailable},
	}
	for _, tc := range cases {
		srv := fakeGemini(t, tc.status, "", nil)
		client := newTestClient(srv.URL)
		_, err := client.Chat(context.Background(), "", nil, "hi")
		srv.Close()
		if !errors.Is(err, tc.want) {
			t.Errorf("status %d: got %v, want %v", tc.status, err, tc.want)
		}
	}
}

func TestChatMissingAPIKey(t *testing.T) {
	client := NewClient("", "gemini-2.0-flash", "http://unused", 0.7, 2048)
	if _, err := client.Chat(context.Background(), "", nil, "hi"); !errors.Is(err, ErrUnauthorized) {
		t.Errorf("expected ErrUnauthorized, got %v", err)
	}
}

func TestBuildSystemPromptIncludesContext(t *testing.T) {
	prompt := BuildSystemPrompt(
		map[string]any{"weight": "80kg"},
		nil,
	)
	if !strings.Contains(prompt, "ADAM") {
		t.Error("persona missing from prompt")
	}
	if !strings.Contains(prompt, "CREATE_WORKOUT_DAY") {
		t.Error("action protocol missing from prompt")
	}
	if !strings.Contains(prompt, `"weight":"80kg"`) {
		t.Error("profile context missing from prompt")
	}
	if strings.Contains(prompt, "Current Workout Split") {
		t.Error("empty split should not be rendered")
	}
}
