package domain

import (
	"errors"
	"fmt"
	"net/http"
)

// Sentinel errors for the error taxonomy. Callers classify with errors.Is.
var (
	// ErrMissingCredentials indicates the upstream API key or secret is not
	// configured. This is a fatal configuration error raised before any
	// network call, never retried.
	ErrMissingCredentials = errors.New("missing upstream API credentials")

	// ErrInvalidRequest indicates missing or malformed request parameters.
	// Surfaced as a 400 with no upstream call made.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrUpstreamAuth indicates the upstream token request failed.
	ErrUpstreamAuth = errors.New("upstream authentication failed")
)

// UpstreamError carries the HTTP status and body text of a failed upstream
// call for diagnostics.
type UpstreamError struct {
	// Status is the upstream HTTP status code
	Status int

	// Body is the upstream response body text
	Body string
}

// Error implements the error interface.
func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream API error (%d): %s", e.Status, e.Body)
}

// RateLimited reports whether the upstream rejected the call with 429.
func (e *UpstreamError) RateLimited() bool {
	return e.Status == http.StatusTooManyRequests
}

// AuthExpired reports whether the upstream rejected the bearer token with 401.
func (e *UpstreamError) AuthExpired() bool {
	return e.Status == http.StatusUnauthorized
}

// NewUpstreamError creates an UpstreamError from a status code and body.
func NewUpstreamError(status int, body string) *UpstreamError {
	return &UpstreamError{Status: status, Body: body}
}

// AsUpstreamError unwraps an UpstreamError from err, if present.
func AsUpstreamError(err error) (*UpstreamError, bool) {
	var ue *UpstreamError
	if errors.As(err, &ue) {
		return ue, true
	}
	return nil, false
}
