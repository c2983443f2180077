package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"chatpaat/internal/domain"
	"chatpaat/internal/domain/models"
	"chatpaat/internal/domain/repositories"
)

// PostgresSearchRepository implements the SearchRepository interface using PostgreSQL
type PostgresSearchRepository struct {
	pool   *pgxpool.Pool
	tables *TableNames
	logger *slog.Logger
}

// NewSearchRepository creates a new PostgresSearchRepository
func NewSearchRepository(config *RepositoryConfig) repositories.SearchRepository {
	return &PostgresSearchRepository{
		pool:   config.Pool,
		tables: config.Tables,
		logger: config.Logger,
	}
}

// Append inserts a search record
func (r *PostgresSearchRepository) Append(ctx context.Context, record *models.SearchRecord) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (user_id, search_query)
		VALUES ($1, $2)
		RETURNING id, created_at
	`, r.tables.Searches)

	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query,
		record.UserID,
		record.Query,
	).Scan(&record.ID, &record.CreatedAt)

	if err != nil {
		if IsPgForeignKeyError(err) {
			return fmt.Errorf("user %s: %w", record.UserID, domain.ErrNotFound)
		}
		return fmt.Errorf("append search record: %w", err)
	}

	return nil
}
