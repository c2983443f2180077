package services

import (
	"context"

	"chatpaat/internal/domain/models"
)

// RegisterRequest carries the credentials for a new account.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest carries login credentials.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TokenPair is a short-lived access credential plus a longer-lived refresh
// credential.
type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// AuthResult is returned by Register and Login.
type AuthResult struct {
	Tokens TokenPair
	User   *models.User
}

// AuthService handles registration, login and token refresh. Login failures
// are uniform: an unknown email and a wrong password produce the same error,
// giving no enumeration signal.
type AuthService interface {
	Register(ctx context.Context, req *RegisterRequest) (*AuthResult, error)
	Login(ctx context.Context, req *LoginRequest) (*AuthResult, error)

	// Refresh exchanges a valid refresh token for a new access token.
	Refresh(ctx context.Context, refreshToken string) (string, error)
}
