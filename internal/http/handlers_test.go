package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"pokemcp/internal/http/mocks"
	"pokemcp/internal/models"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	loggermocks "pokemcp/internal/mocks"
)

// newTestHandler creates a handler over mocked dependencies
func newTestHandler(t *testing.T) (*mocks.MockPokedexService, *Handler) {
	t.Helper()

	mockPokedex := new(mocks.MockPokedexService)
	mockLogger := new(loggermocks.MockLogger)
	mockLogger.ExpectAnyLogs()

	return mockPokedex, NewHandler(mockPokedex, mockLogger)
}

func TestHandler_GetPokemon_Success(t *testing.T) {
	mockPokedex, handler := newTestHandler(t)

	mockPokedex.On("GetPokemon", mock.Anything, "pikachu").Return(&models.Pokemon{ID: 25, Name: "pikachu"}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/pokemon/pikachu", nil)
	req = mux.SetURLVars(req, map[string]string{"name": "pikachu"})
	rec := httptest.NewRecorder()

	handler.GetPokemon(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var p models.Pokemon
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &p))
	assert.Equal(t, 25, p.ID)
	assert.Equal(t, "pikachu", p.Name)
	mockPokedex.AssertExpectations(t)
}

func TestHandler_GetPokemon_NotFound(t *testing.T) {
	mockPokedex, handler := newTestHandler(t)

	fetchErr := models.NewFetchError("/pokemon/missingno", 3, models.ErrNotFound)
	mockPokedex.On("GetPokemon", mock.Anything, "missingno").Return(nil, fetchErr)

	req := httptest.NewRequest(http.MethodGet, "/api/pokemon/missingno", nil)
	req = mux.SetURLVars(req, map[string]string{"name": "missingno"})
	rec := httptest.NewRecorder()

	handler.GetPokemon(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Error)
	assert.NotEmpty(t, resp.Message)
}

func TestHandler_GetPokemon_InvalidIdentifier(t *testing.T) {
	mockPokedex, handler := newTestHandler(t)

	mockPokedex.On("GetPokemon", mock.Anything, " ").Return(nil, models.ErrInvalidIdentifier)

	req := httptest.NewRequest(http.MethodGet, "/api/pokemon/%20", nil)
	req = mux.SetURLVars(req, map[string]string{"name": " "})
	rec := httptest.NewRecorder()

	handler.GetPokemon(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_GetPokemonStats(t *testing.T) {
	mockPokedex, handler := newTestHandler(t)

	stats := &models.PokemonStats{
		Name:  "pikachu",
		Stats: map[string]int{"hp": 35, "speed": 90, "total": 125},
	}
	mockPokedex.On("GetPokemonStats", mock.Anything, "pikachu").Return(stats, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/pokemon/pikachu/stats", nil)
	req = mux.SetURLVars(req, map[string]string{"name": "pikachu"})
	rec := httptest.NewRecorder()

	handler.GetPokemonStats(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var result models.PokemonStats
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, 125, result.Stats["total"])
}

func TestHandler_ListPokemon_ForwardsPagination(t *testing.T) {
	mockPokedex, handler := newTestHandler(t)

	result := &models.ListResult{
		Results: []models.PageEntry{{Name: "bulbasaur"}},
		Limit:   50,
		Offset:  10,
	}
	mockPokedex.On("ListPokemon", mock.Anything, 50, 10).Return(result, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/pokemon?limit=50&offset=10", nil)
	rec := httptest.NewRecorder()

	handler.ListPokemon(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	mockPokedex.AssertExpectations(t)
}

func TestHandler_ListPokemon_DefaultsOnMissingParams(t *testing.T) {
	mockPokedex, handler := newTestHandler(t)

	// Absent query params reach the service as zero values; the service
	// applies its own defaults
	result := &models.ListResult{Results: []models.PageEntry{}, Limit: 20, Offset: 0}
	mockPokedex.On("ListPokemon", mock.Anything, 0, 0).Return(result, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/pokemon", nil)
	rec := httptest.NewRecorder()

	handler.ListPokemon(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	mockPokedex.AssertExpectations(t)
}

func TestHandler_GetMoveSummary(t *testing.T) {
	mockPokedex, handler := newTestHandler(t)

	power := 90
	summary := &models.MoveSummary{Name: "thunderbolt", Type: "electric", Power: &power}
	mockPokedex.On("GetMoveSummary", mock.Anything, "thunderbolt").Return(summary, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/moves/thunderbolt/summary", nil)
	req = mux.SetURLVars(req, map[string]string{"name": "thunderbolt"})
	rec := httptest.NewRecorder()

	handler.GetMoveSummary(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var result models.MoveSummary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, "thunderbolt", result.Name)
	require.NotNil(t, result.Power)
	assert.Equal(t, 90, *result.Power)
}

func TestHandler_GetDualTypeMatchups(t *testing.T) {
	mockPokedex, handler := newTestHandler(t)

	matchups := models.DualTypeMatchups{
		"2x": {"fire", "ground"},
		"0x": {"normal", "fighting", "poison"},
	}
	mockPokedex.On("GetDualTypeMatchups", mock.Anything, "ghost", "steel").Return(matchups, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/types/ghost/combined/steel", nil)
	req = mux.SetURLVars(req, map[string]string{"one": "ghost", "two": "steel"})
	rec := httptest.NewRecorder()

	handler.GetDualTypeMatchups(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var result models.DualTypeMatchups
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.ElementsMatch(t, []string{"fire", "ground"}, result["2x"])
}

func TestHandler_ListTypes(t *testing.T) {
	mockPokedex, handler := newTestHandler(t)

	mockPokedex.On("ListTypes").Return([]string{"fire", "water", "grass"})

	req := httptest.NewRequest(http.MethodGet, "/api/types", nil)
	rec := httptest.NewRecorder()

	handler.ListTypes(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var result map[string][]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, []string{"fire", "water", "grass"}, result["types"])
}

func TestHandler_GetResource(t *testing.T) {
	mockPokedex, handler := newTestHandler(t)

	payload := json.RawMessage(`{"id":25,"name":"pikachu"}`)
	mockPokedex.On("GetResource", mock.Anything, "pokemon", "25").Return(payload, nil)

	req := httptest.NewRequest(http.MethodGet, "/resources/pokemon/25", nil)
	req = mux.SetURLVars(req, map[string]string{"entity": "pokemon", "id": "25"})
	rec := httptest.NewRecorder()

	handler.GetResource(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"id":25,"name":"pikachu"}`, rec.Body.String())
}

func TestHandler_GetResource_UnknownEntity(t *testing.T) {
	mockPokedex, handler := newTestHandler(t)

	mockPokedex.On("GetResource", mock.Anything, "berry", "cheri").Return(nil, models.ErrInvalidIdentifier)

	req := httptest.NewRequest(http.MethodGet, "/resources/berry/cheri", nil)
	req = mux.SetURLVars(req, map[string]string{"entity": "berry", "id": "cheri"})
	rec := httptest.NewRecorder()

	handler.GetResource(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_HealthCheck(t *testing.T) {
	_, handler := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()

	handler.HealthCheck(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))

	var resp HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "healthy", resp.Status)
}

func TestStatusCodeForError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"not found", models.ErrNotFound, http.StatusNotFound},
		{"not found wrapped in fetch error", models.NewFetchError("/pokemon/x", 3, models.ErrNotFound), http.StatusNotFound},
		{"invalid identifier", models.ErrInvalidIdentifier, http.StatusBadRequest},
		{"empty cache key", models.ErrEmptyCacheKey, http.StatusBadRequest},
		{"fetch timeout", models.ErrFetchTimeout, http.StatusGatewayTimeout},
		{"malformed payload", models.ErrMalformedPayload, http.StatusBadGateway},
		{"upstream error", &models.UpstreamError{StatusCode: 500, Endpoint: "/pokemon/x"}, http.StatusBadGateway},
		{"upstream error wrapped in fetch error", models.NewFetchError("/pokemon/x", 3, &models.UpstreamError{StatusCode: 503}), http.StatusBadGateway},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, statusCodeForError(tt.err))
		})
	}
}

func TestParseListParams(t *testing.T) {
	tests := []struct {
		name           string
		url            string
		expectedLimit  int
		expectedOffset int
	}{
		{"both params", "/api/pokemon?limit=50&offset=100", 50, 100},
		{"missing params", "/api/pokemon", 0, 0},
		{"invalid limit", "/api/pokemon?limit=abc&offset=10", 0, 10},
		{"invalid offset", "/api/pokemon?limit=10&offset=xyz", 10, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.url, nil)
			limit, offset := parseListParams(req)
			assert.Equal(t, tt.expectedLimit, limit)
			assert.Equal(t, tt.expectedOffset, offset)
		})
	}
}
