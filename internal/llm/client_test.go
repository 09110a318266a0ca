package llm

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(endpoint string) Config {
	cfg := DefaultConfig()
	cfg.Endpoint = endpoint
	cfg.Model = "test-model"
	cfg.MaxRetries = 0
	return cfg
}

func completionsReply(content string) map[string]any {
	return map[string]any{
		"model": "test-model",
		"choices": []map[string]any{
			{"message": map[string]any{"role": "assistant", "content": content}},
		},
	}
}

func TestChatClient_Generate(t *testing.T) {
	var gotAuth string
	var gotBody chatRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		json.NewEncoder(w).Encode(completionsReply("Hello there!"))
	}))
	defer srv.Close()

	cfg := testConfig(srv.URL)
	cfg.APIKey = "secret"
	client := NewChatClient(cfg, nil)

	resp, err := client.Generate(context.Background(), GenerateRequest{
		Task:         TaskChat,
		SystemPrompt: "You are a study assistant.",
		UserPrompt:   "hi",
		History: []Message{
			{Role: "user", Content: "earlier question"},
			{Role: "assistant", Content: "earlier answer"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "Hello there!", resp.Text)
	assert.Equal(t, "test-model", resp.Model)

	assert.Equal(t, "Bearer secret", gotAuth)
	require.Len(t, gotBody.Messages, 4)
	assert.Equal(t, "system", gotBody.Messages[0].Role)
	assert.Equal(t, "earlier question", gotBody.Messages[1].Content)
	assert.Equal(t, "hi", gotBody.Messages[3].Content)
}

func TestChatClient_Generate_NoSystemPrompt(t *testing.T) {
	var gotBody chatRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		json.NewEncoder(w).Encode(completionsReply("ok"))
	}))
	defer srv.Close()

	client := NewChatClient(testConfig(srv.URL), nil)
	_, err := client.Generate(context.Background(), GenerateRequest{Task: TaskChat, UserPrompt: "hi"})
	require.NoError(t, err)
	require.Len(t, gotBody.Messages, 1)
	assert.Equal(t, "user", gotBody.Messages[0].Role)
}

func TestChatClient_Generate_RetriesThenSucceeds(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		json.NewEncoder(w).Encode(completionsReply("second try"))
	}))
	defer srv.Close()

	cfg := testConfig(srv.URL)
	cfg.MaxRetries = 1
	client := NewChatClient(cfg, nil)

	resp, err := client.Generate(context.Background(), GenerateRequest{Task: TaskChat, UserPrompt: "hi"})
	require.NoError(t, err)
	assert.Equal(t, "second try", resp.Text)
	assert.Equal(t, int32(2), calls.Load())
}

func TestChatClient_Generate_RetryExhausted(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	cfg := testConfig(srv.URL)
	cfg.MaxRetries = 1
	client := NewChatClient(cfg, nil)

	_, err := client.Generate(context.Background(), GenerateRequest{Task: TaskChat, UserPrompt: "hi"})
	assert.ErrorIs(t, err, ErrRetryExhausted)
}

func TestChatClient_Generate_ServerDown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	client := NewChatClient(testConfig(srv.URL), nil)
	_, err := client.Generate(context.Background(), GenerateRequest{Task: TaskChat, UserPrompt: "hi"})
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestChatClient_Generate_Timeout(t *testing.T) {
	if testing.Short() {
		t.Skip("timeout test sleeps")
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Drain the body so the server can detect client cancellation;
		// otherwise r.Context() is never done and Close deadlocks.
		io.Copy(io.Discard, r.Body)
		<-r.Context().Done()
	}))
	defer srv.Close()

	cfg := testConfig(srv.URL)
	cfg.Tasks[TaskChat] = TaskConfig{TimeoutMs: 50}
	client := NewChatClient(cfg, nil)

	_, err := client.Generate(context.Background(), GenerateRequest{Task: TaskChat, UserPrompt: "hi"})
	assert.ErrorIs(t, err, ErrTimeout)
}

func TestChatClient_Generate_ReportsToObserver(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(completionsReply("ok"))
	}))
	defer srv.Close()

	var events []CallEvent
	observer := observerFunc(func(e CallEvent) { events = append(events, e) })
	client := NewChatClient(testConfig(srv.URL), observer)

	_, err := client.Generate(context.Background(), GenerateRequest{Task: TaskSummarize, UserPrompt: "hi"})
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, TaskSummarize, events[0].Task)
	assert.True(t, events[0].Success)
}

type observerFunc func(CallEvent)

func (f observerFunc) OnCallComplete(e CallEvent) { f(e) }
