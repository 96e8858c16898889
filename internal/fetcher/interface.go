package fetcher

import "context"

// Service defines the interface for fetching raw payloads from the upstream API
// External packages should use this interface, not the concrete implementations
type Service interface {
	// Get issues a GET for the endpoint path (relative to the configured
	// base address) and returns the response body on success.
	Get(ctx context.Context, endpoint string) ([]byte, error)
}
