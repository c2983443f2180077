package models

import (
	"time"
)

// Turn roles. Only user and assistant turns are persisted; the system role
// exists solely on the wire to the completion provider.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleSystem    = "system"
)

// Turn is a single role-tagged message within a chat. Creation time is the
// canonical ordering key; the serial id breaks ties between turns created in
// the same instant.
type Turn struct {
	ID        int64     `json:"id" db:"id"`
	ChatID    string    `json:"chat_id" db:"chat_id"`
	Role      string    `json:"role" db:"role"`
	Content   string    `json:"content" db:"content"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
