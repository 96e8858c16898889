package models

import (
	"errors"
	"fmt"
)

var (
	// ErrCacheMiss indicates the key is absent (or expired) in the backing store
	ErrCacheMiss = errors.New("cache miss")

	// ErrNotFound indicates the upstream API has no resource for the identifier
	ErrNotFound = errors.New("resource not found upstream")

	// ErrFetchTimeout indicates the upstream request exceeded its deadline
	ErrFetchTimeout = errors.New("timeout while fetching from upstream")

	// ErrInvalidIdentifier indicates an empty or unusable entity identifier
	ErrInvalidIdentifier = errors.New("invalid entity identifier")

	// ErrEmptyCacheKey indicates a GetOrFetch call with an empty key
	ErrEmptyCacheKey = errors.New("cache key must not be empty")

	// ErrRateLimitExceeded indicates that rate limit has been exceeded
	ErrRateLimitExceeded = errors.New("rate limit exceeded")

	// ErrMalformedPayload indicates an upstream response that does not match
	// the expected structure
	ErrMalformedPayload = errors.New("malformed upstream payload")
)

// UpstreamError represents a non-success HTTP status from the upstream API
type UpstreamError struct {
	StatusCode int
	Endpoint   string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream returned status %d for %s", e.StatusCode, e.Endpoint)
}

// FetchError wraps the terminal failure after the retry budget is exhausted
type FetchError struct {
	Endpoint string
	Attempts int
	Err      error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %s failed after %d attempts: %v", e.Endpoint, e.Attempts, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// NewFetchError creates the terminal fetch error carrying the last failure
func NewFetchError(endpoint string, attempts int, err error) *FetchError {
	return &FetchError{
		Endpoint: endpoint,
		Attempts: attempts,
		Err:      err,
	}
}
