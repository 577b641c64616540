package gateway

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrAuthRequired means an operation that needs a session was invoked
	// with none present. No network call was made.
	ErrAuthRequired = errors.New("authentication required")
	// ErrAuthExpired means the backend rejected the token. The session has
	// already been cleared by the time callers see this.
	ErrAuthExpired = errors.New("session expired")
	ErrForbidden   = errors.New("forbidden")
	ErrNotFound    = errors.New("not found")
)

// APIError is a failure the backend reported with a message payload.
// RedirectTo is set when the failure was a 401 that triggered the redirect
// policy, so the UI layer can send the user to the right login page.
type APIError struct {
	Status     int
	Message    string
	RedirectTo string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("backend returned status %d", e.Status)
	}
	return fmt.Sprintf("backend returned status %d: %s", e.Status, e.Message)
}

// Unwrap maps well-known statuses onto the sentinel errors so callers can
// use errors.Is without inspecting status codes.
func (e *APIError) Unwrap() error {
	switch e.Status {
	case http.StatusUnauthorized:
		return ErrAuthExpired
	case http.StatusForbidden:
		return ErrForbidden
	case http.StatusNotFound:
		return ErrNotFound
	}
	return nil
}

// TransportError is a network failure or a status >= 500. The prior local
// state is left untouched when one of these surfaces.
type TransportError struct {
	Status int // 0 when the request never completed
	Err    error
}

func (e *TransportError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("backend unavailable (status %d)", e.Status)
	}
	return fmt.Sprintf("request failed: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// ValidationError reports input rejected client-side before any network call.
type ValidationError string

func (e ValidationError) Error() string { return string(e) }
