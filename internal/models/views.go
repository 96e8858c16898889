package models

// Reshaped payloads returned by the pokedex service. These are what gets
// cached and what the protocol boundary serializes back to clients.

// PokemonStats holds per-stat base values plus the "total" sum
type PokemonStats struct {
	Name  string         `json:"name"`
	Stats map[string]int `json:"stats"`
}

// AbilityInfo is one ability on a Pokémon
type AbilityInfo struct {
	Name     string `json:"name"`
	IsHidden bool   `json:"is_hidden"`
	Slot     int    `json:"slot"`
}

// PokemonAbilities is the ability view of a Pokémon
type PokemonAbilities struct {
	Name      string        `json:"name"`
	Abilities []AbilityInfo `json:"abilities"`
}

// LearnedMove is a move plus the level it is learned at (0 for non-level methods)
type LearnedMove struct {
	Move  string `json:"move"`
	Level int    `json:"level"`
}

// PokemonMoves groups a Pokémon's learnable moves by learn method
type PokemonMoves struct {
	Name  string                   `json:"name"`
	Moves map[string][]LearnedMove `json:"moves"`
}

// TypePokemon is one Pokémon of a given type
type TypePokemon struct {
	Name string `json:"name"`
	Slot int    `json:"slot"`
}

// MoveSummary is the condensed view of a move
type MoveSummary struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Power       *int   `json:"power"`
	Accuracy    *int   `json:"accuracy"`
	PP          *int   `json:"pp"`
	DamageClass string `json:"damage_class"`
	Effect      string `json:"effect"`
	Priority    int    `json:"priority"`
}

// ItemSummary is the condensed view of an item
type ItemSummary struct {
	Name       string   `json:"name"`
	Category   string   `json:"category"`
	Cost       int      `json:"cost"`
	Effect     string   `json:"effect"`
	FlavorText string   `json:"flavor_text,omitempty"`
	Attributes []string `json:"attributes"`
}

// VersionRarity is an item-holding rarity in one game version
type VersionRarity struct {
	Version string `json:"version"`
	Rarity  int    `json:"rarity"`
}

// ItemHolderInfo is one Pokémon that holds an item, with per-version rarity
type ItemHolderInfo struct {
	Pokemon         string          `json:"pokemon"`
	RarityByVersion []VersionRarity `json:"rarity_by_version"`
}

// TypeMatchups is the offensive matchup chart for an attacking type
type TypeMatchups struct {
	SuperEffective   []string `json:"super_effective"`
	NotVeryEffective []string `json:"not_very_effective"`
	NoEffect         []string `json:"no_effect"`
	Normal           []string `json:"normal"`
}

// TypeDefenses is the defensive matchup chart for a defending type
type TypeDefenses struct {
	WeakTo   []string `json:"weak_to"`
	Resists  []string `json:"resists"`
	ImmuneTo []string `json:"immune_to"`
}

// DualTypeMatchups groups attacking types by their combined damage
// multiplier against a dual-typed defender ("4x", "2x", "1x", "0.5x",
// "0.25x", "0x"). Empty buckets are omitted.
type DualTypeMatchups map[string][]string

// PageEntry is one entry in a paginated list view
type PageEntry struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// ListResult is the reshaped paginated listing for any entity
type ListResult struct {
	Results []PageEntry `json:"results"`
	Limit   int         `json:"limit"`
	Offset  int         `json:"offset"`
}
