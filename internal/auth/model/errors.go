package model

import "errors"

var (
	// ErrInvalidCredentials indicates a failed sign-in attempt.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrAccountNotFound indicates that no account exists for the email.
	ErrAccountNotFound = errors.New("account not found")
	// ErrRoleNotFound indicates an authenticated but unauthorized principal.
	// The session is cleared and the principal is forced out.
	ErrRoleNotFound = errors.New("no admin role assigned to this principal")
	// ErrSessionNotFound indicates that no persisted session state exists.
	ErrSessionNotFound = errors.New("session not found")
	// ErrInvalidToken indicates a missing, malformed or expired token.
	ErrInvalidToken = errors.New("invalid or expired token")
)
