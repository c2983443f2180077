package services

import (
	"context"
	"time"
)

// CompletionMessage is one role-tagged entry sent to the completion provider.
type CompletionMessage struct {
	// Role is "system", "user" or "assistant"
	Role string

	// Content is the free-form message text
	Content string
}

// CompletionRequest contains the parameters for a completion call.
type CompletionRequest struct {
	// Messages is the ordered conversation context, sent verbatim
	Messages []CompletionMessage

	// Model is the provider model identifier
	Model string

	// MaxTokens bounds the generated output length
	MaxTokens int

	// Temperature controls sampling randomness
	Temperature float32

	// Timeout bounds the whole call; zero means the caller's context governs
	Timeout time.Duration
}

// CompletionProvider is the remote text-generation capability. Any transport
// error, non-success response or unusable reply surfaces as a single uniform
// domain.UpstreamError; callers never inspect provider-specific error shapes.
type CompletionProvider interface {
	Complete(ctx context.Context, req *CompletionRequest) (string, error)
}
