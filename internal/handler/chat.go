package handler

import (
	"context"
	"log/slog"
	"net/http"

	"chatpaat/internal/domain/models"
	"chatpaat/internal/domain/services"
	"chatpaat/internal/httputil"
)

// ChatHandler handles chat HTTP requests
// Follows Clean Architecture: handlers only communicate with services, never repositories
type ChatHandler struct {
	chatService services.ChatService
	logger      *slog.Logger
}

// NewChatHandler creates a new chat handler
func NewChatHandler(chatService services.ChatService, logger *slog.Logger) *ChatHandler {
	return &ChatHandler{
		chatService: chatService,
		logger:      logger,
	}
}

// SubmitPrompt submits one user message and returns the assistant reply
// POST /api/prompt
// Returns 201 with the reply and its chat id
func (h *ChatHandler) SubmitPrompt(w http.ResponseWriter, r *http.Request) {
	userID := httputil.GetUserID(r)

	var req services.SubmitTurnRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	req.UserID = userID

	result, err := h.chatService.SubmitTurn(r.Context(), &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, promptResponse{
		ChatID: result.ChatID,
		Reply:  result.Reply,
	})
}

// GetMessages retrieves the ordered transcript of a chat
// GET /api/chats/{id}/messages
// Returns 403 if the chat belongs to another user
func (h *ChatHandler) GetMessages(w http.ResponseWriter, r *http.Request) {
	userID := httputil.GetUserID(r)
	chatID := r.PathValue("id")

	turns, err := h.chatService.GetChatTurns(r.Context(), chatID, userID)
	if err != nil {
		handleError(w, err)
		return
	}

	messages := make([]messageResponse, 0, len(turns))
	for _, turn := range turns {
		messages = append(messages, messageResponse{
			Role:    turn.Role,
			Content: turn.Content,
		})
	}

	httputil.RespondJSON(w, http.StatusOK, messages)
}

// ListToday retrieves the user's chats created today
// GET /api/chats/today
func (h *ChatHandler) ListToday(w http.ResponseWriter, r *http.Request) {
	h.respondListing(w, r, h.chatService.ListToday)
}

// ListYesterday retrieves the user's chats created yesterday
// GET /api/chats/yesterday
func (h *ChatHandler) ListYesterday(w http.ResponseWriter, r *http.Request) {
	h.respondListing(w, r, h.chatService.ListYesterday)
}

// ListLastSevenDays retrieves the user's chats from the seven days before
// yesterday
// GET /api/chats/seven-days
func (h *ChatHandler) ListLastSevenDays(w http.ResponseWriter, r *http.Request) {
	h.respondListing(w, r, h.chatService.ListLastSevenDays)
}

func (h *ChatHandler) respondListing(
	w http.ResponseWriter,
	r *http.Request,
	list func(ctx context.Context, userID string) ([]models.Chat, error),
) {
	userID := httputil.GetUserID(r)

	chats, err := list(r.Context(), userID)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, chats)
}
