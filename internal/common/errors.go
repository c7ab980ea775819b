// Package common defines shared constants and sentinel errors used across
// the portfolio backend. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")

	// Project validation errors.
	ErrMissingDeployedURL = errors.New("deployed url entry is required")
	ErrUnknownURLType     = errors.New("unknown url type")
	ErrInvalidPhotoSet    = errors.New("invalid photo set")
	ErrInvalidOrderSet    = errors.New("invalid display order set")
)
