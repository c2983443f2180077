package chat

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"

	"chatpaat/internal/catalog"
	"chatpaat/internal/config"
	"chatpaat/internal/domain"
	"chatpaat/internal/domain/models"
	"chatpaat/internal/domain/repositories"
	"chatpaat/internal/domain/services"
)

// Service implements the ChatService interface. It owns the turn protocol:
// resolve-or-create the chat, guard ownership, title new chats best-effort,
// persist the user turn, assemble the bounded context window, call the
// completion provider and persist the reply.
type Service struct {
	chatRepo  repositories.ChatRepository
	turnRepo  repositories.TurnRepository
	provider  services.CompletionProvider
	titles    services.TitleGenerator
	catalog   *catalog.Registry
	txManager repositories.TransactionManager
	logger    *slog.Logger

	// now is swappable for deterministic date-window tests
	now func() time.Time
}

// NewService creates a new chat service
func NewService(
	chatRepo repositories.ChatRepository,
	turnRepo repositories.TurnRepository,
	provider services.CompletionProvider,
	titles services.TitleGenerator,
	catalog *catalog.Registry,
	txManager repositories.TransactionManager,
	logger *slog.Logger,
) *Service {
	return &Service{
		chatRepo:  chatRepo,
		turnRepo:  turnRepo,
		provider:  provider,
		titles:    titles,
		catalog:   catalog,
		txManager: txManager,
		logger:    logger,
		now:       time.Now,
	}
}

// SubmitTurn processes one inbound user message and returns the assistant
// reply. The user turn is deliberately not rolled back when the provider
// call fails: the message is never silently lost.
func (s *Service) SubmitTurn(ctx context.Context, req *services.SubmitTurnRequest) (*services.SubmitTurnResult, error) {
	if err := s.validateSubmitTurnRequest(req); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	chatID := req.ChatID
	if chatID == "" {
		chatID = uuid.NewString()
	}

	// Resolve-or-create is atomic at the store level, so a client retrying
	// with the same new id cannot create a duplicate conversation
	chat, created, err := s.chatRepo.GetOrCreate(ctx, chatID, req.UserID)
	if err != nil {
		return nil, err
	}

	// A just-created chat is owned by the requester by construction; a
	// pre-existing one must belong to them, or nothing is persisted
	if chat.UserID != req.UserID {
		return nil, fmt.Errorf("chat %s: %w", chatID, domain.ErrForbidden)
	}

	if chat.Title == nil {
		// Best-effort: the generator never fails, and a lost store update
		// only leaves the chat untitled for the next submission
		title := s.titles.Generate(ctx, req.Content)
		if err := s.chatRepo.SetTitle(ctx, chatID, title); err != nil {
			s.logger.Warn("set chat title failed", "chat_id", chatID, "error", err)
		}
	}

	userTurn := &models.Turn{
		ChatID:    chatID,
		Role:      models.RoleUser,
		Content:   req.Content,
		CreatedAt: s.now(),
	}
	if err := s.appendTurn(ctx, userTurn); err != nil {
		return nil, fmt.Errorf("persist user turn: %w", err)
	}

	// The window reads committed rows only, so it is a consistent prefix of
	// the persisted transcript even under concurrent submissions
	window, err := s.turnRepo.Window(ctx, chatID, config.ContextWindowTurns)
	if err != nil {
		return nil, fmt.Errorf("assemble context window: %w", err)
	}

	params := s.catalog.Reply()
	reply, err := s.provider.Complete(ctx, &services.CompletionRequest{
		Messages:    s.buildMessages(window),
		Model:       params.Model,
		MaxTokens:   params.MaxTokens,
		Temperature: params.Temperature,
		Timeout:     params.Timeout(),
	})
	if err != nil {
		// The user turn above survives; the conversation shows a user
		// message with no matching reply
		s.logger.Error("completion provider call failed",
			"chat_id", chatID,
			"error", err,
		)
		return nil, err
	}

	assistantTurn := &models.Turn{
		ChatID:    chatID,
		Role:      models.RoleAssistant,
		Content:   reply,
		CreatedAt: s.now(),
	}
	if err := s.appendTurn(ctx, assistantTurn); err != nil {
		return nil, fmt.Errorf("persist assistant turn: %w", err)
	}

	s.logger.Info("turn completed",
		"chat_id", chatID,
		"created", created,
		"context_turns", len(window),
	)

	return &services.SubmitTurnResult{ChatID: chatID, Reply: reply}, nil
}

// appendTurn writes a turn and bumps the chat's updated_at in one
// transaction.
func (s *Service) appendTurn(ctx context.Context, turn *models.Turn) error {
	return s.txManager.ExecTx(ctx, func(txCtx context.Context) error {
		if err := s.turnRepo.Append(txCtx, turn); err != nil {
			return err
		}
		return s.chatRepo.Touch(txCtx, turn.ChatID, turn.CreatedAt)
	})
}

// buildMessages converts the windowed turns to the wire format, prepending
// the default system directive when the window carries none. The directive
// exists only on the wire; it is never persisted.
func (s *Service) buildMessages(window []models.Turn) []services.CompletionMessage {
	messages := make([]services.CompletionMessage, 0, len(window)+1)

	hasSystem := false
	for _, turn := range window {
		if turn.Role == models.RoleSystem {
			hasSystem = true
		}
		messages = append(messages, services.CompletionMessage{
			Role:    turn.Role,
			Content: turn.Content,
		})
	}

	if !hasSystem {
		messages = append([]services.CompletionMessage{
			{Role: models.RoleSystem, Content: s.catalog.SystemPrompt()},
		}, messages...)
	}

	return messages
}

// GetChatTurns returns the full ordered transcript of a chat the requesting
// user owns.
func (s *Service) GetChatTurns(ctx context.Context, chatID, userID string) ([]models.Turn, error) {
	chat, err := s.chatRepo.Get(ctx, chatID)
	if err != nil {
		return nil, err
	}

	if chat.UserID != userID {
		return nil, fmt.Errorf("chat %s: %w", chatID, domain.ErrForbidden)
	}

	return s.turnRepo.ListByChat(ctx, chatID)
}

// ListToday returns the user's chats created today, most recent first
func (s *Service) ListToday(ctx context.Context, userID string) ([]models.Chat, error) {
	w := todayWindow(s.now())
	return s.chatRepo.ListByCreatedRange(ctx, userID, w.From, w.To, config.ListChatsLimit)
}

// ListYesterday returns the user's chats created yesterday
func (s *Service) ListYesterday(ctx context.Context, userID string) ([]models.Chat, error) {
	w := yesterdayWindow(s.now())
	return s.chatRepo.ListByCreatedRange(ctx, userID, w.From, w.To, config.ListChatsLimit)
}

// ListLastSevenDays returns the user's chats created in the seven calendar
// days before yesterday
func (s *Service) ListLastSevenDays(ctx context.Context, userID string) ([]models.Chat, error) {
	w := sevenDayWindow(s.now())
	return s.chatRepo.ListByCreatedRange(ctx, userID, w.From, w.To, config.ListChatsLimit)
}

// Validation methods

func (s *Service) validateSubmitTurnRequest(req *services.SubmitTurnRequest) error {
	return validation.ValidateStruct(req,
		validation.Field(&req.UserID, validation.Required),
		validation.Field(&req.ChatID, is.UUID),
		validation.Field(&req.Content,
			validation.Required,
			validation.Length(1, config.MaxContentLength),
		),
	)
}

var _ services.ChatService = (*Service)(nil)
