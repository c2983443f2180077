package repositories

import (
	"context"
	"time"

	"chatpaat/internal/domain/models"
)

// ChatRepository persists conversations
type ChatRepository interface {
	// GetOrCreate resolves the chat with the given id, creating it owned by
	// userID when absent. The insert must be conditional at the store level
	// so concurrent calls with the same new id yield exactly one row.
	// Returns the resolved chat and whether this call created it.
	GetOrCreate(ctx context.Context, chatID, userID string) (*models.Chat, bool, error)

	// Get retrieves a chat by id regardless of owner
	Get(ctx context.Context, chatID string) (*models.Chat, error)

	// SetTitle assigns a title to a still-untitled chat. A chat that already
	// has a title keeps it (lost-update safe under concurrent submissions).
	SetTitle(ctx context.Context, chatID, title string) error

	// Touch bumps the chat's updated_at timestamp
	Touch(ctx context.Context, chatID string, at time.Time) error

	// ListByCreatedRange returns up to limit chats owned by userID whose
	// creation time falls in [from, to), most recent first.
	ListByCreatedRange(ctx context.Context, userID string, from, to time.Time, limit int) ([]models.Chat, error)
}
