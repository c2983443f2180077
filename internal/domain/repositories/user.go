package repositories

import (
	"context"

	"chatpaat/internal/domain/models"
)

// UserRepository persists registered accounts
type UserRepository interface {
	// Create inserts a new user. A duplicate username or email surfaces as
	// a field-specific validation error.
	Create(ctx context.Context, user *models.User) error

	// GetByEmail retrieves a user by email address
	GetByEmail(ctx context.Context, email string) (*models.User, error)

	// GetByID retrieves a user by id
	GetByID(ctx context.Context, id string) (*models.User, error)
}
