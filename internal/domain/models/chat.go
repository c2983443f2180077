package models

import (
	"time"
)

// Chat represents a conversation thread owned by exactly one user.
// Title is nil until the first turn derives one; the owner never changes
// once set.
type Chat struct {
	ID        string    `json:"id" db:"id"`
	UserID    string    `json:"user_id" db:"user_id"`
	Title     *string   `json:"title" db:"title"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
