package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"testing"
	"time"

	authtoken "chatpaat/internal/auth"
	"chatpaat/internal/domain"
	"chatpaat/internal/domain/models"
	"chatpaat/internal/domain/services"
)

type fakeUserRepo struct {
	byID    map[string]*models.User
	byEmail map[string]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byID:    make(map[string]*models.User),
		byEmail: make(map[string]*models.User),
	}
}

func (r *fakeUserRepo) Create(ctx context.Context, user *models.User) error {
	if _, ok := r.byEmail[user.Email]; ok {
		return &domain.ValidationError{Message: "email already exists"}
	}
	for _, existing := range r.byID {
		if existing.Username == user.Username {
			return &domain.ValidationError{Message: "username already exists"}
		}
	}
	u := *user
	r.byID[user.ID] = &u
	r.byEmail[user.Email] = &u
	return nil
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	user, ok := r.byEmail[email]
	if !ok {
		return nil, fmt.Errorf("user: %w", domain.ErrNotFound)
	}
	u := *user
	return &u, nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	user, ok := r.byID[id]
	if !ok {
		return nil, fmt.Errorf("user %s: %w", id, domain.ErrNotFound)
	}
	u := *user
	return &u, nil
}

func newTestService(t *testing.T) (services.AuthService, *fakeUserRepo, *authtoken.Issuer) {
	t.Helper()

	issuer, err := authtoken.NewIssuer("test-secret", 15*time.Minute, 7*24*time.Hour)
	if err != nil {
		t.Fatalf("NewIssuer failed: %v", err)
	}
	repo := newFakeUserRepo()
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	return NewService(repo, issuer, logger), repo, issuer
}

func TestRegisterThenLogin(t *testing.T) {
	svc, _, issuer := newTestService(t)
	ctx := context.Background()

	reg, err := svc.Register(ctx, &services.RegisterRequest{
		Username: "ada",
		Email:    "Ada@Example.COM",
		Password: "correct horse",
	})
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if reg.User.Email != "ada@example.com" {
		t.Errorf("expected lowercased email, got %q", reg.User.Email)
	}
	if reg.User.PasswordHash == "correct horse" {
		t.Error("password stored in clear")
	}
	if reg.Tokens.Access == "" || reg.Tokens.Refresh == "" {
		t.Error("expected a token pair on registration")
	}

	login, err := svc.Login(ctx, &services.LoginRequest{
		Email:    "ada@example.com",
		Password: "correct horse",
	})
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if login.User.ID != reg.User.ID {
		t.Errorf("login resolved a different user: %s vs %s", login.User.ID, reg.User.ID)
	}

	userID, err := issuer.VerifyAccess(login.Tokens.Access)
	if err != nil {
		t.Fatalf("VerifyAccess failed: %v", err)
	}
	if userID != reg.User.ID {
		t.Errorf("access token subject mismatch: %s", userID)
	}
}

func TestLogin_UniformFailureMessage(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	if _, err := svc.Register(ctx, &services.RegisterRequest{
		Username: "ada",
		Email:    "ada@example.com",
		Password: "correct horse",
	}); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	// Unknown email and wrong password must be indistinguishable
	_, unknownErr := svc.Login(ctx, &services.LoginRequest{
		Email:    "nobody@example.com",
		Password: "correct horse",
	})
	_, wrongErr := svc.Login(ctx, &services.LoginRequest{
		Email:    "ada@example.com",
		Password: "wrong password",
	})

	for _, err := range []error{unknownErr, wrongErr} {
		if !errors.Is(err, domain.ErrUnauthorized) {
			t.Fatalf("expected ErrUnauthorized, got %v", err)
		}
	}
	if unknownErr.Error() != wrongErr.Error() {
		t.Errorf("failure messages differ: %q vs %q", unknownErr.Error(), wrongErr.Error())
	}
}

func TestRegister_DuplicateEmailIsValidationError(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	if _, err := svc.Register(ctx, &services.RegisterRequest{
		Username: "ada",
		Email:    "ada@example.com",
		Password: "correct horse",
	}); err != nil {
		t.Fatalf("first Register failed: %v", err)
	}

	_, err := svc.Register(ctx, &services.RegisterRequest{
		Username: "grace",
		Email:    "ada@example.com",
		Password: "another pass",
	})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation for duplicate email, got %v", err)
	}
	if !strings.Contains(err.Error(), "email") {
		t.Errorf("expected field-specific message, got %q", err.Error())
	}
}

func TestRegister_AcceptsMixedCaseEmail(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	// The email validator only accepts lowercase domains, so validation
	// must run on the normalized address, not the raw input
	cases := []string{
		"ada@EXAMPLE.COM",
		"Grace@Example.Com",
		"ALAN@example.com",
	}
	for i, email := range cases {
		result, err := svc.Register(ctx, &services.RegisterRequest{
			Username: fmt.Sprintf("user%d", i),
			Email:    email,
			Password: "correct horse",
		})
		if err != nil {
			t.Fatalf("Register(%q) failed: %v", email, err)
		}
		if result.User.Email != strings.ToLower(email) {
			t.Errorf("expected %q stored lowercase, got %q", email, result.User.Email)
		}
	}
}

func TestRegister_RejectsInvalidInput(t *testing.T) {
	svc, repo, _ := newTestService(t)
	ctx := context.Background()

	cases := []struct {
		name string
		req  services.RegisterRequest
	}{
		{"missing username", services.RegisterRequest{Email: "a@b.com", Password: "longenough"}},
		{"bad email", services.RegisterRequest{Username: "ada", Email: "not-an-email", Password: "longenough"}},
		{"short password", services.RegisterRequest{Username: "ada", Email: "a@b.com", Password: "short"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Register(ctx, &tc.req)
			if !errors.Is(err, domain.ErrValidation) {
				t.Fatalf("expected ErrValidation, got %v", err)
			}
		})
	}
	if len(repo.byID) != 0 {
		t.Errorf("no user should be persisted, found %d", len(repo.byID))
	}
}

func TestRefresh(t *testing.T) {
	svc, repo, issuer := newTestService(t)
	ctx := context.Background()

	reg, err := svc.Register(ctx, &services.RegisterRequest{
		Username: "ada",
		Email:    "ada@example.com",
		Password: "correct horse",
	})
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	access, err := svc.Refresh(ctx, reg.Tokens.Refresh)
	if err != nil {
		t.Fatalf("Refresh failed: %v", err)
	}
	userID, err := issuer.VerifyAccess(access)
	if err != nil {
		t.Fatalf("refreshed token does not verify: %v", err)
	}
	if userID != reg.User.ID {
		t.Errorf("refreshed token subject mismatch: %s", userID)
	}

	// An access token is not accepted where a refresh token is expected
	if _, err := svc.Refresh(ctx, reg.Tokens.Access); !errors.Is(err, domain.ErrUnauthorized) {
		t.Errorf("expected ErrUnauthorized for access-as-refresh, got %v", err)
	}

	// A valid token for a removed account is rejected
	delete(repo.byID, reg.User.ID)
	if _, err := svc.Refresh(ctx, reg.Tokens.Refresh); !errors.Is(err, domain.ErrUnauthorized) {
		t.Errorf("expected ErrUnauthorized for deleted account, got %v", err)
	}
}
