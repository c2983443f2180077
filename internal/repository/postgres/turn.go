package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"chatpaat/internal/domain"
	"chatpaat/internal/domain/models"
	"chatpaat/internal/domain/repositories"
)

// PostgresTurnRepository implements the TurnRepository interface using PostgreSQL
type PostgresTurnRepository struct {
	pool   *pgxpool.Pool
	tables *TableNames
	logger *slog.Logger
}

// NewTurnRepository creates a new PostgresTurnRepository
func NewTurnRepository(config *RepositoryConfig) repositories.TurnRepository {
	return &PostgresTurnRepository{
		pool:   config.Pool,
		tables: config.Tables,
		logger: config.Logger,
	}
}

// Append inserts a turn, filling in its serial id
func (r *PostgresTurnRepository) Append(ctx context.Context, turn *models.Turn) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (chat_id, role, content, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, r.tables.Turns)

	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query,
		turn.ChatID,
		turn.Role,
		turn.Content,
		turn.CreatedAt,
	).Scan(&turn.ID)

	if err != nil {
		if IsPgForeignKeyError(err) {
			return fmt.Errorf("chat %s: %w", turn.ChatID, domain.ErrNotFound)
		}
		return fmt.Errorf("append turn: %w", err)
	}

	return nil
}

// ListByChat returns all turns of a chat in ascending creation order
func (r *PostgresTurnRepository) ListByChat(ctx context.Context, chatID string) ([]models.Turn, error) {
	query := fmt.Sprintf(`
		SELECT id, chat_id, role, content, created_at
		FROM %s
		WHERE chat_id = $1
		ORDER BY created_at ASC, id ASC
	`, r.tables.Turns)

	executor := GetExecutor(ctx, r.pool)
	rows, err := executor.Query(ctx, query, chatID)
	if err != nil {
		return nil, fmt.Errorf("list turns: %w", err)
	}
	defer rows.Close()

	return scanTurns(rows)
}

// Window returns the n most recent turns of a chat in ascending creation
// order. The inner query selects the newest n turns; the outer query flips
// them back into transcript order.
func (r *PostgresTurnRepository) Window(ctx context.Context, chatID string, n int) ([]models.Turn, error) {
	query := fmt.Sprintf(`
		SELECT id, chat_id, role, content, created_at
		FROM (
			SELECT id, chat_id, role, content, created_at
			FROM %s
			WHERE chat_id = $1
			ORDER BY created_at DESC, id DESC
			LIMIT $2
		) recent
		ORDER BY created_at ASC, id ASC
	`, r.tables.Turns)

	executor := GetExecutor(ctx, r.pool)
	rows, err := executor.Query(ctx, query, chatID, n)
	if err != nil {
		return nil, fmt.Errorf("window turns: %w", err)
	}
	defer rows.Close()

	return scanTurns(rows)
}

func scanTurns(rows pgx.Rows) ([]models.Turn, error) {
	var turns []models.Turn
	for rows.Next() {
		var turn models.Turn
		err := rows.Scan(
			&turn.ID,
			&turn.ChatID,
			&turn.Role,
			&turn.Content,
			&turn.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan turn: %w", err)
		}
		turns = append(turns, turn)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate turns: %w", err)
	}

	if turns == nil {
		turns = []models.Turn{}
	}

	return turns, nil
}

var _ repositories.TurnRepository = (*PostgresTurnRepository)(nil)
