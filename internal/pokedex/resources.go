package pokedex

import (
	"context"
	"encoding/json"
	"fmt"

	"pokemcp/internal/models"
)

// resourceEndpoints maps addressable entity names to their upstream paths.
// These are the read-only raw views exposed at the protocol boundary.
var resourceEndpoints = map[string]string{
	"pokemon":    "/pokemon",
	"species":    "/pokemon-species",
	"move":       "/move",
	"item":       "/item",
	"type":       "/type",
	"ability":    "/ability",
	"generation": "/generation",
	"pokedex":    "/pokedex",
}

// GetResource returns the raw upstream payload for an addressable entity.
// Resource reads are cached under their own key namespace so they never
// collide with reshaped tool results.
func (s *service) GetResource(ctx context.Context, entity, nameOrID string) (json.RawMessage, error) {
	endpoint, ok := resourceEndpoints[entity]
	if !ok {
		return nil, fmt.Errorf("%w: unknown resource entity %q", models.ErrInvalidIdentifier, entity)
	}

	id, err := normalize(nameOrID)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("resource:%s:%s", entity, id)

	raw, err := s.cache.GetOrFetch(ctx, key, s.ttl, s.passthrough(endpoint+"/"+id))
	if err != nil {
		return nil, err
	}
	return json.RawMessage(raw), nil
}

// ResourceEntities lists the entity names addressable via GetResource
func ResourceEntities() []string {
	entities := make([]string, 0, len(resourceEndpoints))
	for name := range resourceEndpoints {
		entities = append(entities, name)
	}
	return entities
}
