package auth

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	authtoken "chatpaat/internal/auth"
	"chatpaat/internal/config"
	"chatpaat/internal/domain"
	"chatpaat/internal/domain/models"
	"chatpaat/internal/domain/repositories"
	"chatpaat/internal/domain/services"
)

// Service implements the AuthService interface
type Service struct {
	userRepo repositories.UserRepository
	issuer   *authtoken.Issuer
	logger   *slog.Logger
}

// NewService creates a new auth service
func NewService(
	userRepo repositories.UserRepository,
	issuer *authtoken.Issuer,
	logger *slog.Logger,
) services.AuthService {
	return &Service{
		userRepo: userRepo,
		issuer:   issuer,
		logger:   logger,
	}
}

// Register creates a new account and returns a token pair for it
func (s *Service) Register(ctx context.Context, req *services.RegisterRequest) (*services.AuthResult, error) {
	// Normalize before validation: the email validator is case-sensitive
	// about domains, and the stored form is lowercase anyway
	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	if err := s.validateRegisterRequest(req); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{
		ID:           uuid.NewString(),
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	}

	// Uniqueness of username and email is enforced by the store; duplicates
	// come back as field-specific validation errors
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	tokens, err := s.issuer.IssuePair(user.ID)
	if err != nil {
		return nil, err
	}

	s.logger.Info("user registered",
		"id", user.ID,
		"username", user.Username,
	)

	return &services.AuthResult{Tokens: *tokens, User: user}, nil
}

// Login verifies credentials and returns a token pair. An unknown email and
// a wrong password fail identically so the endpoint gives no enumeration
// signal.
func (s *Service) Login(ctx context.Context, req *services.LoginRequest) (*services.AuthResult, error) {
	if err := s.validateLoginRequest(req); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, invalidCredentials()
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		return nil, invalidCredentials()
	}

	tokens, err := s.issuer.IssuePair(user.ID)
	if err != nil {
		return nil, err
	}

	s.logger.Info("user logged in", "id", user.ID)

	return &services.AuthResult{Tokens: *tokens, User: user}, nil
}

// Refresh exchanges a valid refresh token for a new access token
func (s *Service) Refresh(ctx context.Context, refreshToken string) (string, error) {
	userID, err := s.issuer.VerifyRefresh(refreshToken)
	if err != nil {
		return "", invalidCredentials()
	}

	// The account may have been removed since the refresh token was minted
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return "", invalidCredentials()
	}

	return s.issuer.IssueAccess(userID)
}

// invalidCredentials is the uniform login failure
func invalidCredentials() error {
	return &domain.UnauthorizedError{Message: "invalid credentials"}
}

// Validation methods

func (s *Service) validateRegisterRequest(req *services.RegisterRequest) error {
	return validation.ValidateStruct(req,
		validation.Field(&req.Username, validation.Required, validation.Length(1, 150)),
		validation.Field(&req.Email, validation.Required, is.Email),
		validation.Field(&req.Password,
			validation.Required,
			validation.Length(config.MinPasswordLength, 128),
		),
	)
}

func (s *Service) validateLoginRequest(req *services.LoginRequest) error {
	return validation.ValidateStruct(req,
		validation.Field(&req.Email, validation.Required),
		validation.Field(&req.Password, validation.Required),
	)
}
