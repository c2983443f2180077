package models

import (
	"time"
)

// SearchRecord is one entry of a user's search history. Records are
// append-only and never mutated.
type SearchRecord struct {
	ID        int64     `json:"id" db:"id"`
	UserID    string    `json:"user_id" db:"user_id"`
	Query     string    `json:"search_query" db:"search_query"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
