package services

import (
	"context"

	"chatpaat/internal/domain/models"
)

// SubmitTurnRequest carries one inbound user message. ChatID is optional:
// when empty a fresh conversation id is generated server-side; when set, the
// chat is resolved or created with get-or-create semantics so client retries
// are idempotent.
type SubmitTurnRequest struct {
	UserID  string `json:"-"`
	ChatID  string `json:"chat_id"`
	Content string `json:"content"`
}

// SubmitTurnResult is the outcome of a successfully processed turn.
type SubmitTurnResult struct {
	ChatID string `json:"chat_id"`
	Reply  string `json:"reply"`
}

// ChatService owns the conversation-turn protocol and the ownership-guarded
// read operations around it.
type ChatService interface {
	// SubmitTurn attaches the message to its conversation, obtains the
	// assistant reply from the completion provider and persists both turns.
	// The user turn survives a provider failure; the assistant turn is only
	// written on success.
	SubmitTurn(ctx context.Context, req *SubmitTurnRequest) (*SubmitTurnResult, error)

	// GetChatTurns returns the full ordered transcript of a chat the
	// requesting user owns.
	GetChatTurns(ctx context.Context, chatID, userID string) ([]models.Turn, error)

	// ListToday returns the user's chats created today, most recent first.
	ListToday(ctx context.Context, userID string) ([]models.Chat, error)

	// ListYesterday returns the user's chats created yesterday.
	ListYesterday(ctx context.Context, userID string) ([]models.Chat, error)

	// ListLastSevenDays returns the user's chats created in the seven
	// calendar days before yesterday (excluding yesterday and today).
	ListLastSevenDays(ctx context.Context, userID string) ([]models.Chat, error)
}

// TitleGenerator derives a short human-readable label for a new chat from
// its first message. It never fails outward: any provider failure falls back
// to a truncation of the seed text.
type TitleGenerator interface {
	Generate(ctx context.Context, seed string) string
}
