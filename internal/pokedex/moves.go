package pokedex

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"pokemcp/internal/models"
)

// GetMove returns full move details as a raw passthrough
func (s *service) GetMove(ctx context.Context, nameOrID string) (json.RawMessage, error) {
	id, err := normalize(nameOrID)
	if err != nil {
		return nil, err
	}

	raw, err := s.cache.GetOrFetch(ctx, "move:"+id, s.ttl, s.passthrough("/move/"+id))
	if err != nil {
		return nil, err
	}
	return json.RawMessage(raw), nil
}

// GetMoveSummary returns the condensed move view: type, power, accuracy, PP,
// damage class, priority and the short effect with $effect_chance substituted.
func (s *service) GetMoveSummary(ctx context.Context, nameOrID string) (*models.MoveSummary, error) {
	id, err := normalize(nameOrID)
	if err != nil {
		return nil, err
	}

	key := "move_summary:" + id

	raw, err := s.cache.GetOrFetch(ctx, key, s.ttl, func(ctx context.Context) (string, error) {
		body, err := s.fetcher.Get(ctx, "/move/"+id)
		if err != nil {
			return "", err
		}

		var m models.Move
		if err := json.Unmarshal(body, &m); err != nil {
			return "", fmt.Errorf("%w: move %s: %v", models.ErrMalformedPayload, id, err)
		}

		summary := models.MoveSummary{
			Name:        m.Name,
			Type:        m.Type.Name,
			Power:       m.Power,
			Accuracy:    m.Accuracy,
			PP:          m.PP,
			DamageClass: m.DamageClass.Name,
			Effect:      shortEffect(m.EffectEntries, m.EffectChance),
			Priority:    m.Priority,
		}

		out, err := json.Marshal(summary)
		if err != nil {
			return "", fmt.Errorf("failed to marshal move summary %s: %w", id, err)
		}
		return string(out), nil
	})
	if err != nil {
		return nil, err
	}

	var summary models.MoveSummary
	if err := json.Unmarshal([]byte(raw), &summary); err != nil {
		return nil, fmt.Errorf("%w: cached move summary %s: %v", models.ErrMalformedPayload, id, err)
	}
	return &summary, nil
}

// GetMovesLearnedByPokemon groups a Pokémon's learnable moves by learn
// method (level-up, machine, egg, tutor), with level-up moves sorted by level.
func (s *service) GetMovesLearnedByPokemon(ctx context.Context, nameOrID string) (*models.PokemonMoves, error) {
	id, err := normalize(nameOrID)
	if err != nil {
		return nil, err
	}

	key := "moves_learned:" + id

	raw, err := s.cache.GetOrFetch(ctx, key, s.ttl, func(ctx context.Context) (string, error) {
		body, err := s.fetcher.Get(ctx, "/pokemon/"+id)
		if err != nil {
			return "", err
		}

		var p models.Pokemon
		if err := json.Unmarshal(body, &p); err != nil {
			return "", fmt.Errorf("%w: pokemon %s: %v", models.ErrMalformedPayload, id, err)
		}

		grouped := make(map[string][]models.LearnedMove)
		for _, entry := range p.Moves {
			for _, detail := range entry.VersionGroupDetails {
				method := detail.MoveLearnMethod.Name
				grouped[method] = append(grouped[method], models.LearnedMove{
					Move:  entry.Move.Name,
					Level: detail.LevelLearnedAt,
				})
			}
		}

		if levelUp, ok := grouped["level-up"]; ok {
			sort.SliceStable(levelUp, func(i, j int) bool {
				return levelUp[i].Level < levelUp[j].Level
			})
		}

		out, err := json.Marshal(models.PokemonMoves{Name: p.Name, Moves: grouped})
		if err != nil {
			return "", fmt.Errorf("failed to marshal moves for %s: %w", id, err)
		}
		return string(out), nil
	})
	if err != nil {
		return nil, err
	}

	var result models.PokemonMoves
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		return nil, fmt.Errorf("%w: cached moves for %s: %v", models.ErrMalformedPayload, id, err)
	}
	return &result, nil
}

// ListMoves returns a paginated move listing. Limit is capped at 100.
func (s *service) ListMoves(ctx context.Context, limit, offset int) (*models.ListResult, error) {
	return s.listEntities(ctx, "moves_list", "/move", limit, offset)
}

// GetMovesByType returns the moves belonging to a type as name/URL pairs
func (s *service) GetMovesByType(ctx context.Context, typeName string) ([]models.PageEntry, error) {
	id, err := normalize(typeName)
	if err != nil {
		return nil, err
	}

	key := "moves_by_type:" + id

	raw, err := s.cache.GetOrFetch(ctx, key, s.ttl, func(ctx context.Context) (string, error) {
		body, err := s.fetcher.Get(ctx, "/type/"+id)
		if err != nil {
			return "", err
		}

		var t models.Type
		if err := json.Unmarshal(body, &t); err != nil {
			return "", fmt.Errorf("%w: type %s: %v", models.ErrMalformedPayload, id, err)
		}

		moves := make([]models.PageEntry, 0, len(t.Moves))
		for _, m := range t.Moves {
			moves = append(moves, models.PageEntry{Name: m.Name, URL: m.URL})
		}

		out, err := json.Marshal(moves)
		if err != nil {
			return "", fmt.Errorf("failed to marshal moves for type %s: %w", id, err)
		}
		return string(out), nil
	})
	if err != nil {
		return nil, err
	}

	var moves []models.PageEntry
	if err := json.Unmarshal([]byte(raw), &moves); err != nil {
		return nil, fmt.Errorf("%w: cached moves for type %s: %v", models.ErrMalformedPayload, id, err)
	}
	return moves, nil
}

// shortEffect picks the first short effect entry and substitutes the
// $effect_chance placeholder the API leaves in the text
func shortEffect(entries []models.EffectEntry, effectChance *int) string {
	if len(entries) == 0 {
		return "No description available."
	}

	effect := entries[0].ShortEffect
	if effect == "" {
		return "No description available."
	}

	chance := ""
	if effectChance != nil {
		chance = strconv.Itoa(*effectChance)
	}
	return strings.ReplaceAll(effect, "$effect_chance", chance)
}
