package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"chatpaat/internal/domain"
	"chatpaat/internal/domain/services"
)

// Token types embedded in the claims so an access token cannot be replayed
// as a refresh token or vice versa.
const (
	tokenTypeAccess  = "access"
	tokenTypeRefresh = "refresh"
)

// Claims are the JWT claims carried by both token kinds.
type Claims struct {
	TokenType string `json:"token_type"`
	jwt.RegisteredClaims
}

// Issuer mints and verifies HMAC-signed access and refresh tokens.
type Issuer struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

// NewIssuer creates a token issuer. The secret must be non-empty; it is the
// process-wide signing key for both token kinds.
func NewIssuer(secret string, accessTTL, refreshTTL time.Duration) (*Issuer, error) {
	if secret == "" {
		return nil, errors.New("JWT secret cannot be empty")
	}

	return &Issuer{
		secret:     []byte(secret),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}, nil
}

// IssuePair mints an access and a refresh token for the given user.
func (i *Issuer) IssuePair(userID string) (*services.TokenPair, error) {
	access, err := i.sign(userID, tokenTypeAccess, i.accessTTL)
	if err != nil {
		return nil, fmt.Errorf("sign access token: %w", err)
	}

	refresh, err := i.sign(userID, tokenTypeRefresh, i.refreshTTL)
	if err != nil {
		return nil, fmt.Errorf("sign refresh token: %w", err)
	}

	return &services.TokenPair{Access: access, Refresh: refresh}, nil
}

// IssueAccess mints a fresh access token for the given user.
func (i *Issuer) IssueAccess(userID string) (string, error) {
	access, err := i.sign(userID, tokenTypeAccess, i.accessTTL)
	if err != nil {
		return "", fmt.Errorf("sign access token: %w", err)
	}
	return access, nil
}

// VerifyAccess validates an access token and returns the subject user id.
func (i *Issuer) VerifyAccess(tokenString string) (string, error) {
	return i.verify(tokenString, tokenTypeAccess)
}

// VerifyRefresh validates a refresh token and returns the subject user id.
func (i *Issuer) VerifyRefresh(tokenString string) (string, error) {
	return i.verify(tokenString, tokenTypeRefresh)
}

func (i *Issuer) sign(userID, tokenType string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &Claims{
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(i.secret)
}

func (i *Issuer) verify(tokenString, wantType string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		// Prevent algorithm confusion attacks - accept HS256 only
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, fmt.Errorf("unexpected signing method: %s", t.Method.Alg())
		}
		return i.secret, nil
	})
	if err != nil || !token.Valid {
		return "", domain.ErrUnauthorized
	}

	claims, ok := token.Claims.(*Claims)
	if !ok {
		return "", domain.ErrUnauthorized
	}

	if claims.Subject == "" || claims.TokenType != wantType {
		return "", domain.ErrUnauthorized
	}

	return claims.Subject, nil
}

var _ TokenVerifier = (*Issuer)(nil)
