package pokedex

import (
	"testing"
	"time"

	"pokemcp/internal/cache"
	"pokemcp/internal/cache/apiCache"
	"pokemcp/internal/mocks"
	"pokemcp/internal/models"

	"github.com/stretchr/testify/assert"
)

// newTestService wires a service over a real in-memory cache and a mocked
// fetcher, so tests exercise the actual hit/miss path end to end
func newTestService(t *testing.T) (*mocks.MockFetcher, Service) {
	t.Helper()

	mockFetcher := new(mocks.MockFetcher)
	mockLogger := new(mocks.MockLogger)
	mockLogger.ExpectAnyLogs()

	store := cache.NewMemoryCache()
	svc := NewService(mockFetcher, apiCache.New(store, 1*time.Hour), mockLogger, 1*time.Hour)

	return mockFetcher, svc
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		wantErr  bool
	}{
		{"lowercase name", "pikachu", "pikachu", false},
		{"uppercase name", "PIKACHU", "pikachu", false},
		{"mixed case", "PiKaChU", "pikachu", false},
		{"surrounding whitespace", "  pikachu  ", "pikachu", false},
		{"numeric id", "25", "25", false},
		{"empty", "", "", true},
		{"whitespace only", "   ", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := normalize(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, models.ErrInvalidIdentifier)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestClampLimit(t *testing.T) {
	tests := []struct {
		name     string
		input    int
		expected int
	}{
		{"zero uses default", 0, defaultListLimit},
		{"negative uses default", -5, defaultListLimit},
		{"within bounds", 50, 50},
		{"at cap", maxListLimit, maxListLimit},
		{"above cap", 500, maxListLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, clampLimit(tt.input))
		})
	}
}

func TestLastPathSegment(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"trailing slash", "https://pokeapi.co/api/v2/evolution-chain/10/", "10"},
		{"no trailing slash", "https://pokeapi.co/api/v2/evolution-chain/10", "10"},
		{"bare value", "10", "10"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, lastPathSegment(tt.input))
		})
	}
}
