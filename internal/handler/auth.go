package handler

import (
	"log/slog"
	"net/http"

	"chatpaat/internal/domain/services"
	"chatpaat/internal/httputil"
)

// AuthHandler handles account HTTP requests
// Follows Clean Architecture: handlers only communicate with services, never repositories
type AuthHandler struct {
	authService services.AuthService
	logger      *slog.Logger
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService services.AuthService, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		logger:      logger,
	}
}

// Register creates a new account
// POST /api/register
// Returns 201 with a token pair, 400 on invalid input or duplicates
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req services.RegisterRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.authService.Register(r.Context(), &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, tokenResponse{
		Access:  result.Tokens.Access,
		Refresh: result.Tokens.Refresh,
		User:    result.User,
	})
}

// Login verifies credentials
// POST /api/login
// Returns 200 with a token pair, 401 on any credential failure
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req services.LoginRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.authService.Login(r.Context(), &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, tokenResponse{
		Access:  result.Tokens.Access,
		Refresh: result.Tokens.Refresh,
		User:    result.User,
	})
}

// Refresh exchanges a refresh token for a new access token
// POST /api/token/refresh
func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	var req refreshRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	access, err := h.authService.Refresh(r.Context(), req.Refresh)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, refreshResponse{Access: access})
}
