package mocks

import (
	"context"
	"encoding/json"

	"pokemcp/internal/models"

	"github.com/stretchr/testify/mock"
)

// MockPokedexService is a mock implementation of pokedex.Service
type MockPokedexService struct {
	mock.Mock
}

func (m *MockPokedexService) GetPokemon(ctx context.Context, nameOrID string) (*models.Pokemon, error) {
	args := m.Called(ctx, nameOrID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Pokemon), args.Error(1)
}

func (m *MockPokedexService) GetPokemonSpecies(ctx context.Context, nameOrID string) (json.RawMessage, error) {
	args := m.Called(ctx, nameOrID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(json.RawMessage), args.Error(1)
}

func (m *MockPokedexService) GetPokemonStats(ctx context.Context, nameOrID string) (*models.PokemonStats, error) {
	args := m.Called(ctx, nameOrID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PokemonStats), args.Error(1)
}

func (m *MockPokedexService) GetPokemonAbilities(ctx context.Context, nameOrID string) (*models.PokemonAbilities, error) {
	args := m.Called(ctx, nameOrID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PokemonAbilities), args.Error(1)
}

func (m *MockPokedexService) GetEvolutionChain(ctx context.Context, nameOrID string) (*models.EvolutionChain, error) {
	args := m.Called(ctx, nameOrID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.EvolutionChain), args.Error(1)
}

func (m *MockPokedexService) ListPokemon(ctx context.Context, limit, offset int) (*models.ListResult, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ListResult), args.Error(1)
}

func (m *MockPokedexService) SearchPokemonByType(ctx context.Context, typeName string) ([]models.TypePokemon, error) {
	args := m.Called(ctx, typeName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.TypePokemon), args.Error(1)
}

func (m *MockPokedexService) GetMove(ctx context.Context, nameOrID string) (json.RawMessage, error) {
	args := m.Called(ctx, nameOrID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(json.RawMessage), args.Error(1)
}

func (m *MockPokedexService) GetMoveSummary(ctx context.Context, nameOrID string) (*models.MoveSummary, error) {
	args := m.Called(ctx, nameOrID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MoveSummary), args.Error(1)
}

func (m *MockPokedexService) GetMovesLearnedByPokemon(ctx context.Context, nameOrID string) (*models.PokemonMoves, error) {
	args := m.Called(ctx, nameOrID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PokemonMoves), args.Error(1)
}

func (m *MockPokedexService) ListMoves(ctx context.Context, limit, offset int) (*models.ListResult, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ListResult), args.Error(1)
}

func (m *MockPokedexService) GetMovesByType(ctx context.Context, typeName string) ([]models.PageEntry, error) {
	args := m.Called(ctx, typeName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.PageEntry), args.Error(1)
}

func (m *MockPokedexService) GetItem(ctx context.Context, nameOrID string) (json.RawMessage, error) {
	args := m.Called(ctx, nameOrID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(json.RawMessage), args.Error(1)
}

func (m *MockPokedexService) GetItemSummary(ctx context.Context, nameOrID string) (*models.ItemSummary, error) {
	args := m.Called(ctx, nameOrID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ItemSummary), args.Error(1)
}

func (m *MockPokedexService) ListItems(ctx context.Context, limit, offset int) (*models.ListResult, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ListResult), args.Error(1)
}

func (m *MockPokedexService) GetItemsByCategory(ctx context.Context, category string) (*models.ItemCategory, error) {
	args := m.Called(ctx, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ItemCategory), args.Error(1)
}

func (m *MockPokedexService) GetItemHeldByPokemon(ctx context.Context, itemName string) ([]models.ItemHolderInfo, error) {
	args := m.Called(ctx, itemName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ItemHolderInfo), args.Error(1)
}

func (m *MockPokedexService) GetType(ctx context.Context, nameOrID string) (json.RawMessage, error) {
	args := m.Called(ctx, nameOrID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(json.RawMessage), args.Error(1)
}

func (m *MockPokedexService) GetTypeMatchups(ctx context.Context, attackingType string) (*models.TypeMatchups, error) {
	args := m.Called(ctx, attackingType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.TypeMatchups), args.Error(1)
}

func (m *MockPokedexService) GetTypeDefenses(ctx context.Context, defendingType string) (*models.TypeDefenses, error) {
	args := m.Called(ctx, defendingType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.TypeDefenses), args.Error(1)
}

func (m *MockPokedexService) GetDualTypeMatchups(ctx context.Context, typeOne, typeTwo string) (models.DualTypeMatchups, error) {
	args := m.Called(ctx, typeOne, typeTwo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(models.DualTypeMatchups), args.Error(1)
}

func (m *MockPokedexService) ListTypes() []string {
	args := m.Called()
	return args.Get(0).([]string)
}

func (m *MockPokedexService) GetResource(ctx context.Context, entity, nameOrID string) (json.RawMessage, error) {
	args := m.Called(ctx, entity, nameOrID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(json.RawMessage), args.Error(1)
}
