package apperrors

import "errors"

// Every failure kind the engine can surface. Callers branch with errors.Is;
// wrapped variants carry operation detail.
var (
	ErrInvalidInput        = errors.New("invalid input")
	ErrNotFound            = errors.New("not found")
	ErrNoActiveSession     = errors.New("no focus session is running")
	ErrSessionRunning      = errors.New("a focus session is already running")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrUserExists          = errors.New("user already registered")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrStoreUnavailable    = errors.New("event store unavailable")
	ErrNarrator            = errors.New("narrative generator failure")
)
