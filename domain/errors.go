package domain

import "errors"

// Authentication and authorization failures, surfaced as 401/403.
var (
	ErrMissingCredential = errors.New("missing authorization header")
	ErrInvalidToken      = errors.New("invalid token")
	ErrTokenExpired      = errors.New("token expired")
	ErrForbidden         = errors.New("forbidden access")
)

// Store failures.
var (
	ErrInvalidID        = errors.New("invalid identifier")
	ErrNotFound         = errors.New("not found")
	ErrStoreUnavailable = errors.New("store unavailable")
)

// Payment gateway failures.
var (
	ErrInvalidAmount      = errors.New("invalid payment amount")
	ErrGatewayUnavailable = errors.New("payment gateway unavailable")
)
