package chat

import (
	"context"
	"log/slog"
	"strings"

	"chatpaat/internal/catalog"
	"chatpaat/internal/config"
	"chatpaat/internal/domain/models"
	"chatpaat/internal/domain/services"
)

// TitleGenerator derives a short chat title from the first message of a
// conversation. Generation is best-effort: any provider failure or unusable
// result falls back to a truncation of the seed text, so this component
// never fails outward.
type TitleGenerator struct {
	provider services.CompletionProvider
	catalog  *catalog.Registry
	logger   *slog.Logger
}

// NewTitleGenerator creates a new title generator
func NewTitleGenerator(
	provider services.CompletionProvider,
	catalog *catalog.Registry,
	logger *slog.Logger,
) services.TitleGenerator {
	return &TitleGenerator{
		provider: provider,
		catalog:  catalog,
		logger:   logger,
	}
}

// Generate returns a usable title for the given seed text. It always
// succeeds.
func (g *TitleGenerator) Generate(ctx context.Context, seed string) string {
	params := g.catalog.Title()

	text, err := g.provider.Complete(ctx, &services.CompletionRequest{
		Messages: []services.CompletionMessage{
			{Role: models.RoleSystem, Content: g.catalog.TitlePrompt()},
			{Role: models.RoleUser, Content: seed},
		},
		Model:       params.Model,
		MaxTokens:   params.MaxTokens,
		Temperature: params.Temperature,
		Timeout:     params.Timeout(),
	})
	if err != nil {
		g.logger.Warn("title generation failed, falling back to truncation", "error", err)
		return truncate(seed, config.TitleFallbackLength)
	}

	title := strings.TrimSpace(text)
	if title == "" {
		return truncate(seed, config.TitleFallbackLength)
	}

	return truncate(title, config.MaxChatTitleLength)
}

// truncate returns at most n runes of s with surrounding space trimmed.
func truncate(s string, n int) string {
	s = strings.TrimSpace(s)
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return strings.TrimSpace(string(runes[:n]))
}
