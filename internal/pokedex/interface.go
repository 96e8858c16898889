package pokedex

import (
	"context"
	"encoding/json"

	"pokemcp/internal/models"
)

// Service defines the interface for the Pokédex operations exposed at the
// protocol boundary. Every operation normalizes its identifier, builds a
// namespaced cache key and delegates to the cache layer with a fetch closure.
// External packages should use this interface, not the concrete implementations
type Service interface {
	// Pokémon
	GetPokemon(ctx context.Context, nameOrID string) (*models.Pokemon, error)
	GetPokemonSpecies(ctx context.Context, nameOrID string) (json.RawMessage, error)
	GetPokemonStats(ctx context.Context, nameOrID string) (*models.PokemonStats, error)
	GetPokemonAbilities(ctx context.Context, nameOrID string) (*models.PokemonAbilities, error)
	GetEvolutionChain(ctx context.Context, nameOrID string) (*models.EvolutionChain, error)
	ListPokemon(ctx context.Context, limit, offset int) (*models.ListResult, error)
	SearchPokemonByType(ctx context.Context, typeName string) ([]models.TypePokemon, error)

	// Moves
	GetMove(ctx context.Context, nameOrID string) (json.RawMessage, error)
	GetMoveSummary(ctx context.Context, nameOrID string) (*models.MoveSummary, error)
	GetMovesLearnedByPokemon(ctx context.Context, nameOrID string) (*models.PokemonMoves, error)
	ListMoves(ctx context.Context, limit, offset int) (*models.ListResult, error)
	GetMovesByType(ctx context.Context, typeName string) ([]models.PageEntry, error)

	// Items
	GetItem(ctx context.Context, nameOrID string) (json.RawMessage, error)
	GetItemSummary(ctx context.Context, nameOrID string) (*models.ItemSummary, error)
	ListItems(ctx context.Context, limit, offset int) (*models.ListResult, error)
	GetItemsByCategory(ctx context.Context, category string) (*models.ItemCategory, error)
	GetItemHeldByPokemon(ctx context.Context, itemName string) ([]models.ItemHolderInfo, error)

	// Types
	GetType(ctx context.Context, nameOrID string) (json.RawMessage, error)
	GetTypeMatchups(ctx context.Context, attackingType string) (*models.TypeMatchups, error)
	GetTypeDefenses(ctx context.Context, defendingType string) (*models.TypeDefenses, error)
	GetDualTypeMatchups(ctx context.Context, typeOne, typeTwo string) (models.DualTypeMatchups, error)
	ListTypes() []string

	// Raw entity views for addressable resources
	GetResource(ctx context.Context, entity, nameOrID string) (json.RawMessage, error)
}
