package auth

import (
	"errors"
	"testing"
	"time"

	"chatpaat/internal/domain"
)

func newTestIssuer(t *testing.T) *Issuer {
	t.Helper()
	issuer, err := NewIssuer("test-secret", 15*time.Minute, 7*24*time.Hour)
	if err != nil {
		t.Fatalf("NewIssuer failed: %v", err)
	}
	return issuer
}

func TestNewIssuer_RequiresSecret(t *testing.T) {
	if _, err := NewIssuer("", time.Minute, time.Hour); err == nil {
		t.Fatal("expected error for empty secret")
	}
}

func TestIssuePair_AccessRoundTrip(t *testing.T) {
	issuer := newTestIssuer(t)

	pair, err := issuer.IssuePair("user-123")
	if err != nil {
		t.Fatalf("IssuePair failed: %v", err)
	}

	userID, err := issuer.VerifyAccess(pair.Access)
	if err != nil {
		t.Fatalf("VerifyAccess failed: %v", err)
	}
	if userID != "user-123" {
		t.Errorf("expected subject 'user-123', got %q", userID)
	}
}

func TestVerifyAccess_RejectsRefreshToken(t *testing.T) {
	issuer := newTestIssuer(t)

	pair, err := issuer.IssuePair("user-123")
	if err != nil {
		t.Fatalf("IssuePair failed: %v", err)
	}

	if _, err := issuer.VerifyAccess(pair.Refresh); !errors.Is(err, domain.ErrUnauthorized) {
		t.Errorf("expected ErrUnauthorized for refresh token on access path, got %v", err)
	}
}

func TestVerifyRefresh_RoundTrip(t *testing.T) {
	issuer := newTestIssuer(t)

	pair, err := issuer.IssuePair("user-456")
	if err != nil {
		t.Fatalf("IssuePair failed: %v", err)
	}

	userID, err := issuer.VerifyRefresh(pair.Refresh)
	if err != nil {
		t.Fatalf("VerifyRefresh failed: %v", err)
	}
	if userID != "user-456" {
		t.Errorf("expected subject 'user-456', got %q", userID)
	}

	if _, err := issuer.VerifyRefresh(pair.Access); !errors.Is(err, domain.ErrUnauthorized) {
		t.Errorf("expected ErrUnauthorized for access token on refresh path, got %v", err)
	}
}

func TestVerifyAccess_RejectsWrongSecret(t *testing.T) {
	issuer := newTestIssuer(t)
	other, err := NewIssuer("other-secret", 15*time.Minute, time.Hour)
	if err != nil {
		t.Fatalf("NewIssuer failed: %v", err)
	}

	pair, err := other.IssuePair("user-123")
	if err != nil {
		t.Fatalf("IssuePair failed: %v", err)
	}

	if _, err := issuer.VerifyAccess(pair.Access); !errors.Is(err, domain.ErrUnauthorized) {
		t.Errorf("expected ErrUnauthorized for foreign signature, got %v", err)
	}
}

func TestVerifyAccess_RejectsExpiredToken(t *testing.T) {
	issuer, err := NewIssuer("test-secret", -time.Minute, time.Hour)
	if err != nil {
		t.Fatalf("NewIssuer failed: %v", err)
	}

	pair, err := issuer.IssuePair("user-123")
	if err != nil {
		t.Fatalf("IssuePair failed: %v", err)
	}

	if _, err := issuer.VerifyAccess(pair.Access); !errors.Is(err, domain.ErrUnauthorized) {
		t.Errorf("expected ErrUnauthorized for expired token, got %v", err)
	}
}

func TestVerifyAccess_RejectsGarbage(t *testing.T) {
	issuer := newTestIssuer(t)

	if _, err := issuer.VerifyAccess("not-a-token"); !errors.Is(err, domain.ErrUnauthorized) {
		t.Errorf("expected ErrUnauthorized for malformed token, got %v", err)
	}
}
