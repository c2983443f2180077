package llm

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"chatpaat/internal/domain"
	"chatpaat/internal/domain/services"
)

// Client implements the CompletionProvider interface against an
// OpenAI-compatible chat completion endpoint (Groq in production).
// It is stateless: every call is an independent request/response exchange.
type Client struct {
	client *openai.Client
	logger *slog.Logger
}

// NewClient creates a new completion client with the given API key.
// baseURL overrides the endpoint for OpenAI-compatible providers; an empty
// value keeps the library default.
func NewClient(apiKey, baseURL string, logger *slog.Logger) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("completion provider API key is required")
	}

	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}

	return &Client{
		client: openai.NewClientWithConfig(cfg),
		logger: logger,
	}, nil
}

// Complete sends the ordered message list to the provider and returns the
// generated text. Every failure mode - transport error, non-success status,
// missing or empty reply - surfaces as a domain.UpstreamError so callers
// never depend on provider-specific error shapes.
func (c *Client) Complete(ctx context.Context, req *services.CompletionRequest) (string, error) {
	if req.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, req.Timeout)
		defer cancel()
	}

	messages := make([]openai.ChatCompletionMessage, 0, len(req.Messages))
	for _, msg := range req.Messages {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    msg.Role,
			Content: msg.Content,
		})
	}

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       req.Model,
		Messages:    messages,
		MaxTokens:   req.MaxTokens,
		Temperature: req.Temperature,
	})
	if err != nil {
		return "", &domain.UpstreamError{Message: "completion request failed", Cause: err}
	}

	if len(resp.Choices) == 0 {
		return "", &domain.UpstreamError{Message: "completion returned no choices"}
	}

	text := resp.Choices[0].Message.Content
	if strings.TrimSpace(text) == "" {
		return "", &domain.UpstreamError{Message: "completion returned an empty reply"}
	}

	return text, nil
}

var _ services.CompletionProvider = (*Client)(nil)
