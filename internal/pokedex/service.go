package pokedex

import (
	"context"
	"strings"
	"time"

	"pokemcp/internal/cache/apiCache"
	"pokemcp/internal/fetcher"
	"pokemcp/internal/logger"
	"pokemcp/internal/models"
)

// maxListLimit is the upper bound enforced on paginated listings
const maxListLimit = 100

// defaultListLimit is used when the caller passes no limit
const defaultListLimit = 20

// service implements the Service interface. One instance is constructed at
// process start and shares a single fetcher/cache pair across all operations.
type service struct {
	fetcher fetcher.Service
	cache   apiCache.Service
	logger  logger.Service
	ttl     time.Duration
}

// NewService creates a new Pokédex service
func NewService(
	fetcher fetcher.Service,
	cache apiCache.Service,
	logger logger.Service,
	ttl time.Duration,
) Service {
	return &service{
		fetcher: fetcher,
		cache:   cache,
		logger:  logger,
		ttl:     ttl,
	}
}

// normalize lower-cases and trims an identifier. The same normalized form is
// used in both the cache key and the request path, otherwise keys fragment.
func normalize(nameOrID string) (string, error) {
	id := strings.ToLower(strings.TrimSpace(nameOrID))
	if id == "" {
		return "", models.ErrInvalidIdentifier
	}
	return id, nil
}

// clampLimit applies the listing bounds
func clampLimit(limit int) int {
	if limit <= 0 {
		return defaultListLimit
	}
	if limit > maxListLimit {
		return maxListLimit
	}
	return limit
}

// passthrough wraps a fetcher call into a fetch closure that caches the raw
// response body unmodified
func (s *service) passthrough(endpoint string) apiCache.FetchFunc {
	return func(ctx context.Context) (string, error) {
		body, err := s.fetcher.Get(ctx, endpoint)
		if err != nil {
			s.logger.LogError(ctx, logger.OpFetchUpstream, endpoint, "Upstream fetch failed", err, models.LogSeverityMedium, nil)
			return "", err
		}
		return string(body), nil
	}
}
