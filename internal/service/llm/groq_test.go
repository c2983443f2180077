package llm

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"chatpaat/internal/domain"
	"chatpaat/internal/domain/services"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, nil))
}

// completionServer emulates an OpenAI-compatible chat completion endpoint.
func completionServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("POST /chat/completions", handler)
	return httptest.NewServer(mux)
}

func newTestClient(t *testing.T, baseURL string) *Client {
	t.Helper()
	client, err := NewClient("test-key", baseURL, testLogger())
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}
	return client
}

func TestNewClient_RequiresAPIKey(t *testing.T) {
	if _, err := NewClient("", "", testLogger()); err == nil {
		t.Fatal("expected error for missing API key")
	}
}

func TestComplete_ReturnsReplyText(t *testing.T) {
	var gotBody struct {
		Model    string `json:"model"`
		Messages []struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"messages"`
	}

	server := completionServer(t, func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decode request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"id":     "chatcmpl-1",
			"object": "chat.completion",
			"choices": []map[string]interface{}{
				{
					"index":         0,
					"finish_reason": "stop",
					"message": map[string]string{
						"role":    "assistant",
						"content": "Hello there!",
					},
				},
			},
		})
	})
	defer server.Close()

	client := newTestClient(t, server.URL)
	reply, err := client.Complete(context.Background(), &services.CompletionRequest{
		Messages: []services.CompletionMessage{
			{Role: "system", Content: "You are a helpful assistant."},
			{Role: "user", Content: "Hello"},
		},
		Model:       "llama-3.1-8b-instant",
		MaxTokens:   1024,
		Temperature: 0.6,
		Timeout:     5 * time.Second,
	})
	if err != nil {
		t.Fatalf("Complete failed: %v", err)
	}

	if reply != "Hello there!" {
		t.Errorf("expected reply 'Hello there!', got %q", reply)
	}
	if gotBody.Model != "llama-3.1-8b-instant" {
		t.Errorf("expected model to be forwarded, got %q", gotBody.Model)
	}
	if len(gotBody.Messages) != 2 || gotBody.Messages[0].Role != "system" || gotBody.Messages[1].Content != "Hello" {
		t.Errorf("messages not forwarded verbatim: %+v", gotBody.Messages)
	}
}

func TestComplete_NonSuccessStatusIsUpstreamError(t *testing.T) {
	server := completionServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":{"message":"boom"}}`))
	})
	defer server.Close()

	client := newTestClient(t, server.URL)
	_, err := client.Complete(context.Background(), &services.CompletionRequest{
		Messages: []services.CompletionMessage{{Role: "user", Content: "Hello"}},
		Model:    "llama-3.1-8b-instant",
	})
	if !errors.Is(err, domain.ErrUpstream) {
		t.Fatalf("expected ErrUpstream, got %v", err)
	}
}

func TestComplete_EmptyChoicesIsUpstreamError(t *testing.T) {
	server := completionServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"chatcmpl-1","object":"chat.completion","choices":[]}`))
	})
	defer server.Close()

	client := newTestClient(t, server.URL)
	_, err := client.Complete(context.Background(), &services.CompletionRequest{
		Messages: []services.CompletionMessage{{Role: "user", Content: "Hello"}},
		Model:    "llama-3.1-8b-instant",
	})
	if !errors.Is(err, domain.ErrUpstream) {
		t.Fatalf("expected ErrUpstream, got %v", err)
	}
}

func TestComplete_EmptyReplyIsUpstreamError(t *testing.T) {
	server := completionServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"chatcmpl-1","object":"chat.completion","choices":[{"index":0,"finish_reason":"stop","message":{"role":"assistant","content":"   "}}]}`))
	})
	defer server.Close()

	client := newTestClient(t, server.URL)
	_, err := client.Complete(context.Background(), &services.CompletionRequest{
		Messages: []services.CompletionMessage{{Role: "user", Content: "Hello"}},
		Model:    "llama-3.1-8b-instant",
	})
	if !errors.Is(err, domain.ErrUpstream) {
		t.Fatalf("expected ErrUpstream, got %v", err)
	}
}

func TestComplete_TimeoutIsUpstreamError(t *testing.T) {
	block := make(chan struct{})
	server := completionServer(t, func(w http.ResponseWriter, r *http.Request) {
		<-block
	})
	defer server.Close()
	defer close(block)

	client := newTestClient(t, server.URL)
	_, err := client.Complete(context.Background(), &services.CompletionRequest{
		Messages: []services.CompletionMessage{{Role: "user", Content: "Hello"}},
		Model:    "llama-3.1-8b-instant",
		Timeout:  50 * time.Millisecond,
	})
	if !errors.Is(err, domain.ErrUpstream) {
		t.Fatalf("expected ErrUpstream on timeout, got %v", err)
	}
}
