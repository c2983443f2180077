package auth

// TokenVerifier validates bearer credentials presented on authenticated
// requests. This abstraction keeps the middleware agnostic to how tokens
// are minted.
type TokenVerifier interface {
	// VerifyAccess validates an access token and returns the subject user id.
	// Returns an error if the token is invalid, expired, of the wrong type,
	// or has an invalid signature.
	VerifyAccess(tokenString string) (string, error)
}
