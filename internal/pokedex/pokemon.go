package pokedex

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"pokemcp/internal/models"
)

// GetPokemon returns full details for a Pokémon by name or Pokédex ID.
// The cached value is the trimmed Pokemon model, not the raw upstream body.
func (s *service) GetPokemon(ctx context.Context, nameOrID string) (*models.Pokemon, error) {
	id, err := normalize(nameOrID)
	if err != nil {
		return nil, err
	}

	key := "pokemon:" + id

	raw, err := s.cache.GetOrFetch(ctx, key, s.ttl, func(ctx context.Context) (string, error) {
		body, err := s.fetcher.Get(ctx, "/pokemon/"+id)
		if err != nil {
			return "", err
		}

		var p models.Pokemon
		if err := json.Unmarshal(body, &p); err != nil {
			return "", fmt.Errorf("%w: pokemon %s: %v", models.ErrMalformedPayload, id, err)
		}

		trimmed, err := json.Marshal(p)
		if err != nil {
			return "", fmt.Errorf("failed to marshal pokemon %s: %w", id, err)
		}
		return string(trimmed), nil
	})
	if err != nil {
		return nil, err
	}

	var p models.Pokemon
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return nil, fmt.Errorf("%w: cached pokemon %s: %v", models.ErrMalformedPayload, id, err)
	}
	return &p, nil
}

// GetPokemonSpecies returns species-level data (Pokédex entries, habitat,
// generation, legendary status) as a raw passthrough.
func (s *service) GetPokemonSpecies(ctx context.Context, nameOrID string) (json.RawMessage, error) {
	id, err := normalize(nameOrID)
	if err != nil {
		return nil, err
	}

	raw, err := s.cache.GetOrFetch(ctx, "pokemon_species:"+id, s.ttl, s.passthrough("/pokemon-species/"+id))
	if err != nil {
		return nil, err
	}
	return json.RawMessage(raw), nil
}

// GetPokemonStats returns the base stats map plus the "total" sum
func (s *service) GetPokemonStats(ctx context.Context, nameOrID string) (*models.PokemonStats, error) {
	id, err := normalize(nameOrID)
	if err != nil {
		return nil, err
	}

	key := "pokemon_stats:" + id

	raw, err := s.cache.GetOrFetch(ctx, key, s.ttl, func(ctx context.Context) (string, error) {
		body, err := s.fetcher.Get(ctx, "/pokemon/"+id)
		if err != nil {
			return "", err
		}

		var p models.Pokemon
		if err := json.Unmarshal(body, &p); err != nil {
			return "", fmt.Errorf("%w: pokemon %s: %v", models.ErrMalformedPayload, id, err)
		}

		stats := make(map[string]int, len(p.Stats)+1)
		total := 0
		for _, st := range p.Stats {
			stats[st.Stat.Name] = st.BaseStat
			total += st.BaseStat
		}
		stats["total"] = total

		out, err := json.Marshal(models.PokemonStats{Name: p.Name, Stats: stats})
		if err != nil {
			return "", fmt.Errorf("failed to marshal stats for %s: %w", id, err)
		}
		return string(out), nil
	})
	if err != nil {
		return nil, err
	}

	var result models.PokemonStats
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		return nil, fmt.Errorf("%w: cached stats %s: %v", models.ErrMalformedPayload, id, err)
	}
	return &result, nil
}

// GetPokemonAbilities returns all abilities including hidden ones
func (s *service) GetPokemonAbilities(ctx context.Context, nameOrID string) (*models.PokemonAbilities, error) {
	id, err := normalize(nameOrID)
	if err != nil {
		return nil, err
	}

	key := "pokemon_abilities:" + id

	raw, err := s.cache.GetOrFetch(ctx, key, s.ttl, func(ctx context.Context) (string, error) {
		body, err := s.fetcher.Get(ctx, "/pokemon/"+id)
		if err != nil {
			return "", err
		}

		var p models.Pokemon
		if err := json.Unmarshal(body, &p); err != nil {
			return "", fmt.Errorf("%w: pokemon %s: %v", models.ErrMalformedPayload, id, err)
		}

		abilities := make([]models.AbilityInfo, 0, len(p.Abilities))
		for _, a := range p.Abilities {
			abilities = append(abilities, models.AbilityInfo{
				Name:     a.Ability.Name,
				IsHidden: a.IsHidden,
				Slot:     a.Slot,
			})
		}

		out, err := json.Marshal(models.PokemonAbilities{Name: p.Name, Abilities: abilities})
		if err != nil {
			return "", fmt.Errorf("failed to marshal abilities for %s: %w", id, err)
		}
		return string(out), nil
	})
	if err != nil {
		return nil, err
	}

	var result models.PokemonAbilities
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		return nil, fmt.Errorf("%w: cached abilities %s: %v", models.ErrMalformedPayload, id, err)
	}
	return &result, nil
}

// GetEvolutionChain resolves a species to its evolution chain and returns
// the full chain tree. Two upstream calls happen inside one cache miss.
func (s *service) GetEvolutionChain(ctx context.Context, nameOrID string) (*models.EvolutionChain, error) {
	id, err := normalize(nameOrID)
	if err != nil {
		return nil, err
	}

	key := "evolution_chain:" + id

	raw, err := s.cache.GetOrFetch(ctx, key, s.ttl, func(ctx context.Context) (string, error) {
		body, err := s.fetcher.Get(ctx, "/pokemon-species/"+id)
		if err != nil {
			return "", err
		}

		var sp models.Species
		if err := json.Unmarshal(body, &sp); err != nil {
			return "", fmt.Errorf("%w: species %s: %v", models.ErrMalformedPayload, id, err)
		}
		if sp.EvolutionChain.URL == "" {
			return "", fmt.Errorf("%w: species %s has no evolution chain", models.ErrMalformedPayload, id)
		}

		chainID := lastPathSegment(sp.EvolutionChain.URL)
		chainBody, err := s.fetcher.Get(ctx, "/evolution-chain/"+chainID)
		if err != nil {
			return "", err
		}

		var chain models.EvolutionChain
		if err := json.Unmarshal(chainBody, &chain); err != nil {
			return "", fmt.Errorf("%w: evolution chain %s: %v", models.ErrMalformedPayload, chainID, err)
		}

		out, err := json.Marshal(chain)
		if err != nil {
			return "", fmt.Errorf("failed to marshal evolution chain %s: %w", chainID, err)
		}
		return string(out), nil
	})
	if err != nil {
		return nil, err
	}

	var chain models.EvolutionChain
	if err := json.Unmarshal([]byte(raw), &chain); err != nil {
		return nil, fmt.Errorf("%w: cached evolution chain %s: %v", models.ErrMalformedPayload, id, err)
	}
	return &chain, nil
}

// ListPokemon returns a paginated Pokémon listing. Limit is capped at 100.
func (s *service) ListPokemon(ctx context.Context, limit, offset int) (*models.ListResult, error) {
	return s.listEntities(ctx, "pokemon_list", "/pokemon", limit, offset)
}

// SearchPokemonByType returns all Pokémon belonging to the given type
func (s *service) SearchPokemonByType(ctx context.Context, typeName string) ([]models.TypePokemon, error) {
	id, err := normalize(typeName)
	if err != nil {
		return nil, err
	}

	key := "pokemon_by_type:" + id

	raw, err := s.cache.GetOrFetch(ctx, key, s.ttl, func(ctx context.Context) (string, error) {
		body, err := s.fetcher.Get(ctx, "/type/"+id)
		if err != nil {
			return "", err
		}

		var t models.Type
		if err := json.Unmarshal(body, &t); err != nil {
			return "", fmt.Errorf("%w: type %s: %v", models.ErrMalformedPayload, id, err)
		}

		pokemon := make([]models.TypePokemon, 0, len(t.Pokemon))
		for _, entry := range t.Pokemon {
			pokemon = append(pokemon, models.TypePokemon{
				Name: entry.Pokemon.Name,
				Slot: entry.Slot,
			})
		}

		out, err := json.Marshal(pokemon)
		if err != nil {
			return "", fmt.Errorf("failed to marshal pokemon for type %s: %w", id, err)
		}
		return string(out), nil
	})
	if err != nil {
		return nil, err
	}

	var result []models.TypePokemon
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		return nil, fmt.Errorf("%w: cached pokemon for type %s: %v", models.ErrMalformedPayload, id, err)
	}
	return result, nil
}

// listEntities is the shared paginated-listing path. The limit and offset are
// part of the cache key so distinct pages never collide.
func (s *service) listEntities(ctx context.Context, namespace, endpoint string, limit, offset int) (*models.ListResult, error) {
	limit = clampLimit(limit)
	if offset < 0 {
		offset = 0
	}

	key := fmt.Sprintf("%s:%d:%d", namespace, limit, offset)
	path := fmt.Sprintf("%s?limit=%d&offset=%d", endpoint, limit, offset)

	raw, err := s.cache.GetOrFetch(ctx, key, s.ttl, func(ctx context.Context) (string, error) {
		body, err := s.fetcher.Get(ctx, path)
		if err != nil {
			return "", err
		}

		var page models.ListPage
		if err := json.Unmarshal(body, &page); err != nil {
			return "", fmt.Errorf("%w: listing %s: %v", models.ErrMalformedPayload, endpoint, err)
		}

		entries := make([]models.PageEntry, 0, len(page.Results))
		for _, r := range page.Results {
			entries = append(entries, models.PageEntry{Name: r.Name, URL: r.URL})
		}

		out, err := json.Marshal(entries)
		if err != nil {
			return "", fmt.Errorf("failed to marshal listing %s: %w", endpoint, err)
		}
		return string(out), nil
	})
	if err != nil {
		return nil, err
	}

	var entries []models.PageEntry
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		return nil, fmt.Errorf("%w: cached listing %s: %v", models.ErrMalformedPayload, namespace, err)
	}

	return &models.ListResult{
		Results: entries,
		Limit:   limit,
		Offset:  offset,
	}, nil
}

// lastPathSegment extracts the trailing identifier from a resource URL
// (e.g. "https://pokeapi.co/api/v2/evolution-chain/10/" -> "10")
func lastPathSegment(url string) string {
	trimmed := strings.TrimSuffix(url, "/")
	if idx := strings.LastIndex(trimmed, "/"); idx >= 0 {
		return trimmed[idx+1:]
	}
	return trimmed
}
