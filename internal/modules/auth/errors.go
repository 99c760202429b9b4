package auth

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserExists         = errors.New("username or email already taken")
	ErrUserNotFound       = errors.New("user not found")

	// ErrUnauthenticated means no refresh token was presented at all.
	ErrUnauthenticated = errors.New("missing refresh token")

	// ErrTokenReused means the presented refresh token passed signature
	// and expiry checks but is no longer the stored one: it was rotated
	// away, or the session was logged out. The client must fully
	// re-login; retrying will not help.
	ErrTokenReused = errors.New("refresh token superseded or revoked")
)
