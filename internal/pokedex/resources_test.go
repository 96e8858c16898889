package pokedex

import (
	"context"
	"testing"

	"pokemcp/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGetResource_KnownEntity(t *testing.T) {
	mockFetcher, svc := newTestService(t)
	ctx := context.Background()

	abilityJSON := `{"id":9,"name":"static","is_main_series":true}`
	mockFetcher.On("Get", mock.Anything, "/ability/static").Return([]byte(abilityJSON), nil).Once()

	raw, err := svc.GetResource(ctx, "ability", "static")

	require.NoError(t, err)
	assert.JSONEq(t, abilityJSON, string(raw))

	// Repeat read is a cache hit
	_, err = svc.GetResource(ctx, "ability", "static")
	require.NoError(t, err)
	mockFetcher.AssertExpectations(t)
}

func TestGetResource_UnknownEntity(t *testing.T) {
	_, svc := newTestService(t)
	ctx := context.Background()

	raw, err := svc.GetResource(ctx, "berry", "cheri")

	assert.Nil(t, raw)
	assert.ErrorIs(t, err, models.ErrInvalidIdentifier)
	assert.Contains(t, err.Error(), "berry")
}

func TestGetResource_EmptyIdentifier(t *testing.T) {
	_, svc := newTestService(t)
	ctx := context.Background()

	raw, err := svc.GetResource(ctx, "pokemon", "")

	assert.Nil(t, raw)
	assert.ErrorIs(t, err, models.ErrInvalidIdentifier)
}

func TestGetResource_SeparateNamespaceFromTools(t *testing.T) {
	mockFetcher, svc := newTestService(t)
	ctx := context.Background()

	// The same upstream endpoint backs both, but resource reads and tool
	// results are cached independently
	mockFetcher.On("Get", mock.Anything, "/pokemon/pikachu").Return([]byte(pikachuJSON), nil).Twice()

	_, err := svc.GetPokemon(ctx, "pikachu")
	require.NoError(t, err)

	_, err = svc.GetResource(ctx, "pokemon", "pikachu")
	require.NoError(t, err)

	mockFetcher.AssertExpectations(t)
}

func TestResourceEntities(t *testing.T) {
	entities := ResourceEntities()

	assert.Len(t, entities, 8)
	for _, expected := range []string{"pokemon", "species", "move", "item", "type", "ability", "generation", "pokedex"} {
		assert.Contains(t, entities, expected)
	}
}

func TestGetResource_ByNumericID(t *testing.T) {
	mockFetcher, svc := newTestService(t)
	ctx := context.Background()

	generationJSON := `{"id":1,"name":"generation-i"}`
	mockFetcher.On("Get", mock.Anything, "/generation/1").Return([]byte(generationJSON), nil).Once()

	raw, err := svc.GetResource(ctx, "generation", "1")

	require.NoError(t, err)
	assert.JSONEq(t, generationJSON, string(raw))
}
