package client

import (
	"errors"
	"fmt"
)

// Sentinel errors for the failure kinds callers need to tell apart.
var (
	// ErrAuth indicates the API rejected the configured key.
	ErrAuth = errors.New("authentication rejected")

	// ErrNetwork indicates the request never produced an HTTP response.
	ErrNetwork = errors.New("network failure")

	// ErrNotFound indicates the requested resource does not exist.
	ErrNotFound = errors.New("not found")
)

// APIError is returned for non-OK responses that are not auth or
// not-found failures.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("HTTP error %d: %s", e.StatusCode, e.Body)
}
