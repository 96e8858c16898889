package pokedex

import (
	"context"
	"encoding/json"
	"fmt"

	"pokemcp/internal/models"
)

// GetItem returns full item details as a raw passthrough
func (s *service) GetItem(ctx context.Context, nameOrID string) (json.RawMessage, error) {
	id, err := normalize(nameOrID)
	if err != nil {
		return nil, err
	}

	raw, err := s.cache.GetOrFetch(ctx, "item:"+id, s.ttl, s.passthrough("/item/"+id))
	if err != nil {
		return nil, err
	}
	return json.RawMessage(raw), nil
}

// GetItemSummary returns the condensed item view: category, cost, short
// effect, the English flavor text and attribute names.
func (s *service) GetItemSummary(ctx context.Context, nameOrID string) (*models.ItemSummary, error) {
	id, err := normalize(nameOrID)
	if err != nil {
		return nil, err
	}

	key := "item_summary:" + id

	raw, err := s.cache.GetOrFetch(ctx, key, s.ttl, func(ctx context.Context) (string, error) {
		body, err := s.fetcher.Get(ctx, "/item/"+id)
		if err != nil {
			return "", err
		}

		var item models.Item
		if err := json.Unmarshal(body, &item); err != nil {
			return "", fmt.Errorf("%w: item %s: %v", models.ErrMalformedPayload, id, err)
		}

		attributes := make([]string, 0, len(item.Attributes))
		for _, a := range item.Attributes {
			attributes = append(attributes, a.Name)
		}

		summary := models.ItemSummary{
			Name:       item.Name,
			Category:   item.Category.Name,
			Cost:       item.Cost,
			Effect:     shortEffect(item.EffectEntries, nil),
			FlavorText: englishFlavorText(item.FlavorTextEntries),
			Attributes: attributes,
		}

		out, err := json.Marshal(summary)
		if err != nil {
			return "", fmt.Errorf("failed to marshal item summary %s: %w", id, err)
		}
		return string(out), nil
	})
	if err != nil {
		return nil, err
	}

	var summary models.ItemSummary
	if err := json.Unmarshal([]byte(raw), &summary); err != nil {
		return nil, fmt.Errorf("%w: cached item summary %s: %v", models.ErrMalformedPayload, id, err)
	}
	return &summary, nil
}

// ListItems returns a paginated item listing. Limit is capped at 100.
func (s *service) ListItems(ctx context.Context, limit, offset int) (*models.ListResult, error) {
	return s.listEntities(ctx, "items_list", "/item", limit, offset)
}

// GetItemsByCategory returns all items in a category such as "pokeballs",
// "healing" or "evolution"
func (s *service) GetItemsByCategory(ctx context.Context, category string) (*models.ItemCategory, error) {
	id, err := normalize(category)
	if err != nil {
		return nil, err
	}

	key := "items_by_category:" + id

	raw, err := s.cache.GetOrFetch(ctx, key, s.ttl, func(ctx context.Context) (string, error) {
		body, err := s.fetcher.Get(ctx, "/item-category/"+id)
		if err != nil {
			return "", err
		}

		var cat models.ItemCategory
		if err := json.Unmarshal(body, &cat); err != nil {
			return "", fmt.Errorf("%w: item category %s: %v", models.ErrMalformedPayload, id, err)
		}

		out, err := json.Marshal(cat)
		if err != nil {
			return "", fmt.Errorf("failed to marshal item category %s: %w", id, err)
		}
		return string(out), nil
	})
	if err != nil {
		return nil, err
	}

	var cat models.ItemCategory
	if err := json.Unmarshal([]byte(raw), &cat); err != nil {
		return nil, fmt.Errorf("%w: cached item category %s: %v", models.ErrMalformedPayload, id, err)
	}
	return &cat, nil
}

// GetItemHeldByPokemon returns every Pokémon that can hold the item in the
// wild, with the per-version rarity of them holding it
func (s *service) GetItemHeldByPokemon(ctx context.Context, itemName string) ([]models.ItemHolderInfo, error) {
	id, err := normalize(itemName)
	if err != nil {
		return nil, err
	}

	key := "item_held_by:" + id

	raw, err := s.cache.GetOrFetch(ctx, key, s.ttl, func(ctx context.Context) (string, error) {
		body, err := s.fetcher.Get(ctx, "/item/"+id)
		if err != nil {
			return "", err
		}

		var item models.Item
		if err := json.Unmarshal(body, &item); err != nil {
			return "", fmt.Errorf("%w: item %s: %v", models.ErrMalformedPayload, id, err)
		}

		holders := make([]models.ItemHolderInfo, 0, len(item.HeldByPokemon))
		for _, holder := range item.HeldByPokemon {
			rarities := make([]models.VersionRarity, 0, len(holder.VersionDetails))
			for _, v := range holder.VersionDetails {
				rarities = append(rarities, models.VersionRarity{
					Version: v.Version.Name,
					Rarity:  v.Rarity,
				})
			}
			holders = append(holders, models.ItemHolderInfo{
				Pokemon:         holder.Pokemon.Name,
				RarityByVersion: rarities,
			})
		}

		out, err := json.Marshal(holders)
		if err != nil {
			return "", fmt.Errorf("failed to marshal holders for %s: %w", id, err)
		}
		return string(out), nil
	})
	if err != nil {
		return nil, err
	}

	var holders []models.ItemHolderInfo
	if err := json.Unmarshal([]byte(raw), &holders); err != nil {
		return nil, fmt.Errorf("%w: cached holders for %s: %v", models.ErrMalformedPayload, id, err)
	}
	return holders, nil
}

// englishFlavorText picks the first English flavor-text entry, if any
func englishFlavorText(entries []models.ItemFlavorText) string {
	for _, ft := range entries {
		if ft.Language.Name == "en" {
			return ft.Text
		}
	}
	return ""
}
