package repositories

import (
	"context"

	"chatpaat/internal/domain/models"
)

// TurnRepository persists the turns of a chat
type TurnRepository interface {
	// Append inserts a turn, filling in its serial id
	Append(ctx context.Context, turn *models.Turn) error

	// ListByChat returns all turns of a chat in ascending creation order
	ListByChat(ctx context.Context, chatID string) ([]models.Turn, error)

	// Window returns the n most recent turns of a chat, reordered ascending
	// by (created_at, id) so they read as a transcript prefix. Only committed
	// turns are visible.
	Window(ctx context.Context, chatID string, n int) ([]models.Turn, error)
}
