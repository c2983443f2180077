package httputil

import (
	"context"
	"net/http"
)

// Unexported key type so other packages cannot collide with our context
// entries.
type contextKey string

const (
	userIDKey contextKey = "userID"
)

// WithUserID returns the request with the authenticated user's id attached
// to its context. Set by the auth middleware after token verification.
func WithUserID(r *http.Request, userID string) *http.Request {
	ctx := context.WithValue(r.Context(), userIDKey, userID)
	return r.WithContext(ctx)
}

// GetUserID returns the authenticated user id from the request context, or
// the empty string on an unauthenticated request.
func GetUserID(r *http.Request) string {
	userID, _ := r.Context().Value(userIDKey).(string)
	return userID
}
