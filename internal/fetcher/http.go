package fetcher

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"pokemcp/internal/models"
)

// HTTPFetcher implements Service against the PokeAPI REST service. Any
// failure — transport error or non-success status — is retried with
// exponential backoff until the attempt budget runs out. All endpoints are
// idempotent reads, so retrying unconditionally is safe.
type HTTPFetcher struct {
	client      *http.Client
	baseURL     string
	maxAttempts int
	minBackoff  time.Duration
	maxBackoff  time.Duration
}

// NewHTTPFetcher creates a new HTTP-based PokeAPI fetcher
func NewHTTPFetcher(baseURL string, timeout time.Duration, maxAttempts int, minBackoff, maxBackoff time.Duration) Service {
	return newHTTPFetcher(baseURL, timeout, maxAttempts, minBackoff, maxBackoff)
}

// newHTTPFetcher creates the concrete implementation
func newHTTPFetcher(baseURL string, timeout time.Duration, maxAttempts int, minBackoff, maxBackoff time.Duration) *HTTPFetcher {
	if maxAttempts < 1 {
		maxAttempts = 1
	}

	return &HTTPFetcher{
		client: &http.Client{
			Timeout: timeout,
		},
		baseURL:     strings.TrimSuffix(baseURL, "/"),
		maxAttempts: maxAttempts,
		minBackoff:  minBackoff,
		maxBackoff:  maxBackoff,
	}
}

// Get retrieves the endpoint, retrying failures with exponential backoff.
// After exhausting the budget the last failure is returned wrapped in a
// models.FetchError.
func (f *HTTPFetcher) Get(ctx context.Context, endpoint string) ([]byte, error) {
	if endpoint == "" {
		return nil, models.ErrInvalidIdentifier
	}
	if !strings.HasPrefix(endpoint, "/") {
		endpoint = "/" + endpoint
	}

	var lastErr error
	backoff := f.minBackoff

	for attempt := 1; attempt <= f.maxAttempts; attempt++ {
		if attempt > 1 {
			// Wait before the next attempt, but give up if the caller does
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(backoff):
			}

			backoff *= 2
			if backoff > f.maxBackoff {
				backoff = f.maxBackoff
			}
		}

		body, err := f.doRequest(ctx, endpoint)
		if err == nil {
			return body, nil
		}
		lastErr = err
	}

	return nil, models.NewFetchError(endpoint, f.maxAttempts, lastErr)
}

// doRequest performs a single GET attempt
func (f *HTTPFetcher) doRequest(ctx context.Context, endpoint string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.baseURL+endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", "PokeMCP/1.0")
	req.Header.Set("Accept", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return nil, fmt.Errorf("%w: %v", models.ErrFetchTimeout, err)
		}
		return nil, fmt.Errorf("failed to reach upstream: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("%w: %s", models.ErrNotFound, endpoint)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &models.UpstreamError{StatusCode: resp.StatusCode, Endpoint: endpoint}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	return body, nil
}
