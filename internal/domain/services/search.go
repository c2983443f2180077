package services

import (
	"context"

	"chatpaat/internal/domain/models"
)

// SearchService records per-user search queries
type SearchService interface {
	// RecordQuery appends a search query to the user's history
	RecordQuery(ctx context.Context, userID, query string) (*models.SearchRecord, error)
}
