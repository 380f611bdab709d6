package utils

import (
	"errors"
	"fmt"
)

var (
	ErrActivityNotFound  = errors.New("activity not found")
	ErrInvalidLocation   = errors.New("activity location is missing or invalid")
	ErrInvalidAddress    = errors.New("invalid address")
	ErrInvalidCategory   = errors.New("invalid category")
	ErrMissingCredential = errors.New("events api client id not configured")
	ErrDatabaseError     = errors.New("database error")
)

// UpstreamAuthError means the events API rejected our credential. The upstream
// diagnostic payload is kept so callers can see what the API complained about.
type UpstreamAuthError struct {
	Details string
}

func (e *UpstreamAuthError) Error() string {
	return "events api rejected the configured client id"
}

// UpstreamError is any other non-success reply from the events API.
type UpstreamError struct {
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("events api returned status %d", e.StatusCode)
}
