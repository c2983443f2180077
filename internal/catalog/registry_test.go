package catalog

import (
	"testing"
	"time"
)

func TestNewRegistry_LoadsEmbeddedProfile(t *testing.T) {
	registry, err := NewRegistry()
	if err != nil {
		t.Fatalf("NewRegistry failed: %v", err)
	}

	if registry.SystemPrompt() == "" {
		t.Error("expected non-empty system prompt")
	}
	if registry.TitlePrompt() == "" {
		t.Error("expected non-empty title prompt")
	}

	reply := registry.Reply()
	if reply.Model == "" {
		t.Error("expected reply model to be set")
	}
	if reply.MaxTokens <= 0 {
		t.Errorf("expected positive reply max_tokens, got %d", reply.MaxTokens)
	}
	if reply.Timeout() <= 0 {
		t.Errorf("expected positive reply timeout, got %v", reply.Timeout())
	}
}

func TestNewRegistry_TitlePathIsCheap(t *testing.T) {
	registry, err := NewRegistry()
	if err != nil {
		t.Fatalf("NewRegistry failed: %v", err)
	}

	title := registry.Title()
	reply := registry.Reply()

	// The title path must be bounded tighter than the reply path: tiny
	// output, low randomness, shorter timeout.
	if title.MaxTokens >= reply.MaxTokens {
		t.Errorf("title max_tokens %d should be below reply max_tokens %d", title.MaxTokens, reply.MaxTokens)
	}
	if title.Temperature >= reply.Temperature {
		t.Errorf("title temperature %v should be below reply temperature %v", title.Temperature, reply.Temperature)
	}
	if title.Timeout() > reply.Timeout() {
		t.Errorf("title timeout %v should not exceed reply timeout %v", title.Timeout(), reply.Timeout())
	}
	if title.Timeout() > time.Minute {
		t.Errorf("title timeout %v unexpectedly long", title.Timeout())
	}
}
