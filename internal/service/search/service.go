package search

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"chatpaat/internal/domain"
	"chatpaat/internal/domain/models"
	"chatpaat/internal/domain/repositories"
	"chatpaat/internal/domain/services"
)

// Service implements the SearchService interface
type Service struct {
	searchRepo repositories.SearchRepository
	logger     *slog.Logger
}

// NewService creates a new search history service
func NewService(searchRepo repositories.SearchRepository, logger *slog.Logger) services.SearchService {
	return &Service{
		searchRepo: searchRepo,
		logger:     logger,
	}
}

// RecordQuery appends a search query to the user's history
func (s *Service) RecordQuery(ctx context.Context, userID, query string) (*models.SearchRecord, error) {
	if strings.TrimSpace(query) == "" {
		return nil, fmt.Errorf("%w: search query is required", domain.ErrValidation)
	}

	record := &models.SearchRecord{
		UserID: userID,
		Query:  query,
	}
	if err := s.searchRepo.Append(ctx, record); err != nil {
		return nil, err
	}

	s.logger.Info("search query stored", "user_id", userID)

	return record, nil
}
