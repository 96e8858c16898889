package pokedex

import (
	"context"
	"encoding/json"
	"fmt"

	"pokemcp/internal/models"
)

// allTypes is the full set of Pokémon types, used to compute the "normal
// damage" remainder and the dual-type multiplier table
var allTypes = []string{
	"normal", "fire", "water", "electric", "grass", "ice",
	"fighting", "poison", "ground", "flying", "psychic", "bug",
	"rock", "ghost", "dragon", "dark", "steel", "fairy",
}

// multiplier bucket labels in descending order
var bucketLabels = map[float64]string{
	4.0:  "4x",
	2.0:  "2x",
	1.0:  "1x",
	0.5:  "0.5x",
	0.25: "0.25x",
	0.0:  "0x",
}

// GetType returns full type details as a raw passthrough
func (s *service) GetType(ctx context.Context, nameOrID string) (json.RawMessage, error) {
	id, err := normalize(nameOrID)
	if err != nil {
		return nil, err
	}

	raw, err := s.cache.GetOrFetch(ctx, "type:"+id, s.ttl, s.passthrough("/type/"+id))
	if err != nil {
		return nil, err
	}
	return json.RawMessage(raw), nil
}

// GetTypeMatchups returns the offensive matchup chart for an attacking type
func (s *service) GetTypeMatchups(ctx context.Context, attackingType string) (*models.TypeMatchups, error) {
	id, err := normalize(attackingType)
	if err != nil {
		return nil, err
	}

	key := "type_matchups:" + id

	raw, err := s.cache.GetOrFetch(ctx, key, s.ttl, func(ctx context.Context) (string, error) {
		t, err := s.fetchType(ctx, id)
		if err != nil {
			return "", err
		}

		rel := t.DamageRelations
		special := make(map[string]bool)
		matchups := models.TypeMatchups{
			SuperEffective:   names(rel.DoubleDamageTo, special),
			NotVeryEffective: names(rel.HalfDamageTo, special),
			NoEffect:         names(rel.NoDamageTo, special),
		}

		normal := make([]string, 0, len(allTypes))
		for _, name := range allTypes {
			if !special[name] {
				normal = append(normal, name)
			}
		}
		matchups.Normal = normal

		out, err := json.Marshal(matchups)
		if err != nil {
			return "", fmt.Errorf("failed to marshal matchups for %s: %w", id, err)
		}
		return string(out), nil
	})
	if err != nil {
		return nil, err
	}

	var matchups models.TypeMatchups
	if err := json.Unmarshal([]byte(raw), &matchups); err != nil {
		return nil, fmt.Errorf("%w: cached matchups for %s: %v", models.ErrMalformedPayload, id, err)
	}
	return &matchups, nil
}

// GetTypeDefenses returns the defensive matchup chart for a defending type
func (s *service) GetTypeDefenses(ctx context.Context, defendingType string) (*models.TypeDefenses, error) {
	id, err := normalize(defendingType)
	if err != nil {
		return nil, err
	}

	key := "type_defenses:" + id

	raw, err := s.cache.GetOrFetch(ctx, key, s.ttl, func(ctx context.Context) (string, error) {
		t, err := s.fetchType(ctx, id)
		if err != nil {
			return "", err
		}

		rel := t.DamageRelations
		defenses := models.TypeDefenses{
			WeakTo:   names(rel.DoubleDamageFrom, nil),
			Resists:  names(rel.HalfDamageFrom, nil),
			ImmuneTo: names(rel.NoDamageFrom, nil),
		}

		out, err := json.Marshal(defenses)
		if err != nil {
			return "", fmt.Errorf("failed to marshal defenses for %s: %w", id, err)
		}
		return string(out), nil
	})
	if err != nil {
		return nil, err
	}

	var defenses models.TypeDefenses
	if err := json.Unmarshal([]byte(raw), &defenses); err != nil {
		return nil, fmt.Errorf("%w: cached defenses for %s: %v", models.ErrMalformedPayload, id, err)
	}
	return &defenses, nil
}

// GetDualTypeMatchups computes the combined defensive multipliers for a
// dual-typed defender. Each attacking type's modifiers against the two
// defending types are multiplied, then grouped into buckets (4x down to 0x).
func (s *service) GetDualTypeMatchups(ctx context.Context, typeOne, typeTwo string) (models.DualTypeMatchups, error) {
	one, err := normalize(typeOne)
	if err != nil {
		return nil, err
	}
	two, err := normalize(typeTwo)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("dual_type:%s_%s", one, two)

	raw, err := s.cache.GetOrFetch(ctx, key, s.ttl, func(ctx context.Context) (string, error) {
		first, err := s.fetchType(ctx, one)
		if err != nil {
			return "", err
		}
		second, err := s.fetchType(ctx, two)
		if err != nil {
			return "", err
		}

		mapOne := defensiveMultipliers(first.DamageRelations)
		mapTwo := defensiveMultipliers(second.DamageRelations)

		grouped := make(models.DualTypeMatchups)
		for _, attacker := range allTypes {
			combined := mapOne[attacker] * mapTwo[attacker]
			label, ok := bucketLabels[combined]
			if !ok {
				label = "1x"
			}
			grouped[label] = append(grouped[label], attacker)
		}

		out, err := json.Marshal(grouped)
		if err != nil {
			return "", fmt.Errorf("failed to marshal dual matchups %s/%s: %w", one, two, err)
		}
		return string(out), nil
	})
	if err != nil {
		return nil, err
	}

	var grouped models.DualTypeMatchups
	if err := json.Unmarshal([]byte(raw), &grouped); err != nil {
		return nil, fmt.Errorf("%w: cached dual matchups %s/%s: %v", models.ErrMalformedPayload, one, two, err)
	}
	return grouped, nil
}

// ListTypes returns the static list of all types; no upstream call
func (s *service) ListTypes() []string {
	types := make([]string, len(allTypes))
	copy(types, allTypes)
	return types
}

// fetchType fetches and decodes a /type/{id} response
func (s *service) fetchType(ctx context.Context, id string) (*models.Type, error) {
	body, err := s.fetcher.Get(ctx, "/type/"+id)
	if err != nil {
		return nil, err
	}

	var t models.Type
	if err := json.Unmarshal(body, &t); err != nil {
		return nil, fmt.Errorf("%w: type %s: %v", models.ErrMalformedPayload, id, err)
	}
	return &t, nil
}

// defensiveMultipliers builds the incoming-damage multiplier per attacking
// type: 1.0 baseline, 2.0 weak, 0.5 resist, 0.0 immune
func defensiveMultipliers(rel models.DamageRelations) map[string]float64 {
	multipliers := make(map[string]float64, len(allTypes))
	for _, t := range allTypes {
		multipliers[t] = 1.0
	}
	for _, t := range rel.DoubleDamageFrom {
		multipliers[t.Name] = 2.0
	}
	for _, t := range rel.HalfDamageFrom {
		multipliers[t.Name] = 0.5
	}
	for _, t := range rel.NoDamageFrom {
		multipliers[t.Name] = 0.0
	}
	return multipliers
}

// names extracts resource names, optionally recording them in seen
func names(resources []models.NamedResource, seen map[string]bool) []string {
	out := make([]string, 0, len(resources))
	for _, r := range resources {
		out = append(out, r.Name)
		if seen != nil {
			seen[r.Name] = true
		}
	}
	return out
}
