package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// EnsureSchema creates the tables and indexes for the configured prefix if
// they do not exist yet. Statements are idempotent so startup is safe to
// repeat across deploys and concurrent instances.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool, tables *TableNames) error {
	statements := []string{
		fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				id UUID PRIMARY KEY,
				username TEXT NOT NULL,
				email TEXT NOT NULL,
				password_hash TEXT NOT NULL,
				created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
				CONSTRAINT %s_username_key UNIQUE (username),
				CONSTRAINT %s_email_key UNIQUE (email)
			)
		`, tables.Users, tables.Users, tables.Users),
		fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				id UUID PRIMARY KEY,
				user_id UUID NOT NULL REFERENCES %s(id) ON DELETE CASCADE,
				title TEXT,
				created_at TIMESTAMPTZ NOT NULL,
				updated_at TIMESTAMPTZ NOT NULL
			)
		`, tables.Chats, tables.Users),
		fmt.Sprintf(`
			CREATE INDEX IF NOT EXISTS %s_user_created_idx
			ON %s (user_id, created_at DESC)
		`, tables.Chats, tables.Chats),
		fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				id BIGSERIAL PRIMARY KEY,
				chat_id UUID NOT NULL REFERENCES %s(id) ON DELETE CASCADE,
				role TEXT NOT NULL CHECK (role IN ('user', 'assistant')),
				content TEXT NOT NULL,
				created_at TIMESTAMPTZ NOT NULL
			)
		`, tables.Turns, tables.Chats),
		fmt.Sprintf(`
			CREATE INDEX IF NOT EXISTS %s_chat_created_idx
			ON %s (chat_id, created_at, id)
		`, tables.Turns, tables.Turns),
		fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				id BIGSERIAL PRIMARY KEY,
				user_id UUID NOT NULL REFERENCES %s(id) ON DELETE CASCADE,
				search_query TEXT NOT NULL,
				created_at TIMESTAMPTZ NOT NULL DEFAULT now()
			)
		`, tables.Searches, tables.Users),
	}

	for _, stmt := range statements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}

	return nil
}
