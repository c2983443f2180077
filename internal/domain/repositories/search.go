package repositories

import (
	"context"

	"chatpaat/internal/domain/models"
)

// SearchRepository persists per-user search history
type SearchRepository interface {
	// Append inserts a search record, filling in its serial id and
	// creation timestamp
	Append(ctx context.Context, record *models.SearchRecord) error
}
