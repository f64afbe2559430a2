// ABOUTME: Tests for coach prompt building, caching, and the Groq client.
// ABOUTME: Uses httptest for the API and a map-backed cache for isolation.
package coach

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/harperreed/planner/internal/models"
)

type memCache struct {
	m map[string]string
}

func (c *memCache) Get(key string) (string, bool) {
	v, ok := c.m[key]
	return v, ok
}

func (c *memCache) Set(key, value string) error {
	c.m[key] = value
	return nil
}

type stubChatter struct {
	reply string
	calls int
}

func (s *stubChatter) Chat(_ context.Context, _ []Message) (string, error) {
	s.calls++
	return s.reply, nil
}

func loggedState(t *testing.T) *models.PlannerState {
	t.Helper()
	start := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
	state := models.NewPlannerState(models.FrameworkStrengthLinear, start)
	rpe := 8.5
	day := state.Day(0, 0)
	day.Training[0].LoadKg = 100
	day.Training[0].ActualRPE = &rpe
	day.SessionRPE = &rpe
	day.SleepHours = 7
	return state
}

func TestBuildPrompt(t *testing.T) {
	state := loggedState(t)
	prompt, err := BuildPrompt(state.Framework, 0, 0, state.Day(0, 0))
	if err != nil {
		t.Fatalf("BuildPrompt() error = %v", err)
	}
	for _, want := range []string{
		"Framework: STRENGTH_LINEAR",
		"Week 1, day 1",
		"Squat (SQUAT)",
		"100.0 kg",
		"actual RPE 8.5",
		"Session RPE: 8.5",
		"Sleep: 7.0 h",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q\nprompt:\n%s", want, prompt)
		}
	}
	// Unlogged exercises stay out of the prompt.
	if strings.Contains(prompt, "Deadlift") {
		t.Error("prompt should only include logged exercises")
	}
}

func TestBuildPromptNothingLogged(t *testing.T) {
	start := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
	state := models.NewPlannerState(models.FrameworkStrengthLinear, start)
	if _, err := BuildPrompt(state.Framework, 0, 0, state.Day(0, 0)); err == nil {
		t.Error("BuildPrompt() with no logged work should error")
	}
}

func TestFeedbackCaches(t *testing.T) {
	state := loggedState(t)
	stub := &stubChatter{reply: "good session"}
	cache := &memCache{m: map[string]string{}}
	coach := New(stub, cache)

	first, err := coach.Feedback(context.Background(), state, 0, 0)
	if err != nil {
		t.Fatalf("Feedback() error = %v", err)
	}
	second, err := coach.Feedback(context.Background(), state, 0, 0)
	if err != nil {
		t.Fatalf("Feedback() second error = %v", err)
	}
	if first != "good session" || second != "good session" {
		t.Errorf("Feedback() = %q, %q, want cached reply", first, second)
	}
	if stub.calls != 1 {
		t.Errorf("backend calls = %d, want 1 (second hit cached)", stub.calls)
	}
}

func TestFeedbackNilCache(t *testing.T) {
	state := loggedState(t)
	stub := &stubChatter{reply: "ok"}
	coach := New(stub, nil)

	for i := 0; i < 2; i++ {
		if _, err := coach.Feedback(context.Background(), state, 0, 0); err != nil {
			t.Fatalf("Feedback() error = %v", err)
		}
	}
	if stub.calls != 2 {
		t.Errorf("backend calls = %d, want 2 without cache", stub.calls)
	}
}

func TestFileCache(t *testing.T) {
	cache, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache() error = %v", err)
	}

	if _, ok := cache.Get("missing"); ok {
		t.Error("Get() on empty cache should miss")
	}
	if err := cache.Set("k", "hello"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	got, ok := cache.Get("k")
	if !ok || got != "hello" {
		t.Errorf("Get() = %q, %v, want hello, true", got, ok)
	}
}

func TestClientChat(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("Authorization = %q", got)
		}
		var req map[string]interface{}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if req["model"] != DefaultModel {
			t.Errorf("model = %v, want %s", req["model"], DefaultModel)
		}
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"role": "assistant", "content": "push the squat"}},
			},
		})
	}))
	defer srv.Close()

	client := NewClient("test-key", "")
	client.SetAPIURL(srv.URL)

	reply, err := client.Chat(context.Background(), []Message{{Role: "user", Content: "hi"}})
	if err != nil {
		t.Fatalf("Chat() error = %v", err)
	}
	if reply != "push the squat" {
		t.Errorf("Chat() = %q", reply)
	}
}

func TestClientChatAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":{"message":"invalid api key","type":"auth"}}`))
	}))
	defer srv.Close()

	client := NewClient("bad", "")
	client.SetAPIURL(srv.URL)

	_, err := client.Chat(context.Background(), []Message{{Role: "user", Content: "hi"}})
	if err == nil || !strings.Contains(err.Error(), "invalid api key") {
		t.Errorf("Chat() error = %v, want API error surfaced", err)
	}
}
