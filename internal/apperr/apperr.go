package apperr

import "errors"

// Sentinel errors shared between repositories, services and handlers.
// Handlers translate them to HTTP status codes in one place.
var (
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("already exists")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrInvalidToken        = errors.New("invalid token")
	ErrUpstreamUnavailable = errors.New("upstream service unavailable")
)
