package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"chatpaat/internal/domain"
	"chatpaat/internal/domain/models"
	"chatpaat/internal/domain/repositories"
)

// PostgresChatRepository implements the ChatRepository interface using PostgreSQL
type PostgresChatRepository struct {
	pool   *pgxpool.Pool
	tables *TableNames
	logger *slog.Logger
}

// NewChatRepository creates a new PostgresChatRepository
func NewChatRepository(config *RepositoryConfig) repositories.ChatRepository {
	return &PostgresChatRepository{
		pool:   config.Pool,
		tables: config.Tables,
		logger: config.Logger,
	}
}

// GetOrCreate resolves the chat with the given id, creating it owned by
// userID when absent. The conditional insert happens at the store level
// (ON CONFLICT DO NOTHING), so concurrent calls with the same new id commit
// exactly one row; the loser of the race observes the winner's row.
func (r *PostgresChatRepository) GetOrCreate(ctx context.Context, chatID, userID string) (*models.Chat, bool, error) {
	insert := fmt.Sprintf(`
		INSERT INTO %s (id, user_id, title, created_at, updated_at)
		VALUES ($1, $2, NULL, $3, $3)
		ON CONFLICT (id) DO NOTHING
		RETURNING id, user_id, title, created_at, updated_at
	`, r.tables.Chats)

	executor := GetExecutor(ctx, r.pool)

	var chat models.Chat
	err := executor.QueryRow(ctx, insert, chatID, userID, time.Now()).Scan(
		&chat.ID,
		&chat.UserID,
		&chat.Title,
		&chat.CreatedAt,
		&chat.UpdatedAt,
	)
	if err == nil {
		return &chat, true, nil
	}
	if !IsPgNoRowsError(err) {
		return nil, false, fmt.Errorf("create chat: %w", err)
	}

	// Conflict: the row already exists (possibly just committed by a
	// concurrent request). Fetch it.
	existing, err := r.Get(ctx, chatID)
	if err != nil {
		return nil, false, err
	}

	return existing, false, nil
}

// Get retrieves a chat by id regardless of owner
func (r *PostgresChatRepository) Get(ctx context.Context, chatID string) (*models.Chat, error) {
	query := fmt.Sprintf(`
		SELECT id, user_id, title, created_at, updated_at
		FROM %s
		WHERE id = $1
	`, r.tables.Chats)

	var chat models.Chat
	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query, chatID).Scan(
		&chat.ID,
		&chat.UserID,
		&chat.Title,
		&chat.CreatedAt,
		&chat.UpdatedAt,
	)

	if err != nil {
		if IsPgNoRowsError(err) {
			return nil, fmt.Errorf("chat %s: %w", chatID, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get chat: %w", err)
	}

	return &chat, nil
}

// SetTitle assigns a title to a still-untitled chat. The title IS NULL guard
// keeps a concurrent submission from overwriting an already-assigned title.
func (r *PostgresChatRepository) SetTitle(ctx context.Context, chatID, title string) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET title = $1, updated_at = $2
		WHERE id = $3 AND title IS NULL
	`, r.tables.Chats)

	executor := GetExecutor(ctx, r.pool)
	if _, err := executor.Exec(ctx, query, title, time.Now(), chatID); err != nil {
		return fmt.Errorf("set chat title: %w", err)
	}

	// Zero rows affected means another request titled the chat first;
	// that is fine.
	return nil
}

// Touch bumps the chat's updated_at timestamp
func (r *PostgresChatRepository) Touch(ctx context.Context, chatID string, at time.Time) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET updated_at = $1
		WHERE id = $2
	`, r.tables.Chats)

	executor := GetExecutor(ctx, r.pool)
	result, err := executor.Exec(ctx, query, at, chatID)
	if err != nil {
		return fmt.Errorf("touch chat: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("chat %s: %w", chatID, domain.ErrNotFound)
	}

	return nil
}

// ListByCreatedRange returns up to limit chats owned by userID created in
// [from, to), most recent first. Ownership is enforced in the query itself,
// never by post-filtering a broader fetch.
func (r *PostgresChatRepository) ListByCreatedRange(ctx context.Context, userID string, from, to time.Time, limit int) ([]models.Chat, error) {
	query := fmt.Sprintf(`
		SELECT id, user_id, title, created_at, updated_at
		FROM %s
		WHERE user_id = $1 AND created_at >= $2 AND created_at < $3
		ORDER BY created_at DESC
		LIMIT $4
	`, r.tables.Chats)

	executor := GetExecutor(ctx, r.pool)
	rows, err := executor.Query(ctx, query, userID, from, to, limit)
	if err != nil {
		return nil, fmt.Errorf("list chats: %w", err)
	}
	defer rows.Close()

	var chats []models.Chat
	for rows.Next() {
		var chat models.Chat
		err := rows.Scan(
			&chat.ID,
			&chat.UserID,
			&chat.Title,
			&chat.CreatedAt,
			&chat.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan chat: %w", err)
		}
		chats = append(chats, chat)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate chats: %w", err)
	}

	// Return empty slice instead of nil
	if chats == nil {
		chats = []models.Chat{}
	}

	return chats, nil
}
