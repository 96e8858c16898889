package models

// Raw PokeAPI response structures. Only the fields the reshaping layer
// indexes into are declared; everything else is dropped on unmarshal.

// NamedResource is a name + URL pair referencing another API resource
type NamedResource struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// StatDetail is a single base-stat entry on a Pokémon
type StatDetail struct {
	BaseStat int           `json:"base_stat"`
	Effort   int           `json:"effort"`
	Stat     NamedResource `json:"stat"`
}

// TypeSlot is one of a Pokémon's (up to two) types
type TypeSlot struct {
	Slot int           `json:"slot"`
	Type NamedResource `json:"type"`
}

// AbilitySlot is one of a Pokémon's abilities
type AbilitySlot struct {
	Ability  NamedResource `json:"ability"`
	IsHidden bool          `json:"is_hidden"`
	Slot     int           `json:"slot"`
}

// VersionGroupDetail describes how a move is learned in one version group
type VersionGroupDetail struct {
	LevelLearnedAt  int           `json:"level_learned_at"`
	MoveLearnMethod NamedResource `json:"move_learn_method"`
	VersionGroup    NamedResource `json:"version_group"`
}

// MoveEntry is a move a Pokémon can learn, with per-version-group details
type MoveEntry struct {
	Move                NamedResource        `json:"move"`
	VersionGroupDetails []VersionGroupDetail `json:"version_group_details"`
}

// HeldItemVersionDetail is the per-version rarity of a wild-held item
type HeldItemVersionDetail struct {
	Rarity  int           `json:"rarity"`
	Version NamedResource `json:"version"`
}

// HeldItem is an item a Pokémon may hold in the wild
type HeldItem struct {
	Item           NamedResource           `json:"item"`
	VersionDetails []HeldItemVersionDetail `json:"version_details"`
}

// Sprites holds the default sprite URLs for a Pokémon
type Sprites struct {
	FrontDefault string `json:"front_default"`
	FrontShiny   string `json:"front_shiny"`
	BackDefault  string `json:"back_default"`
	BackShiny    string `json:"back_shiny"`
}

// Pokemon matches the /pokemon/{id} response
type Pokemon struct {
	ID             int             `json:"id"`
	Name           string          `json:"name"`
	BaseExperience int             `json:"base_experience"`
	Height         int             `json:"height"`
	Weight         int             `json:"weight"`
	IsDefault      bool            `json:"is_default"`
	Order          int             `json:"order"`
	Abilities      []AbilitySlot   `json:"abilities"`
	Forms          []NamedResource `json:"forms"`
	HeldItems      []HeldItem      `json:"held_items"`
	Moves          []MoveEntry     `json:"moves"`
	Species        NamedResource   `json:"species"`
	Sprites        Sprites         `json:"sprites"`
	Stats          []StatDetail    `json:"stats"`
	Types          []TypeSlot      `json:"types"`
}

// DamageRelations is the matchup block on a /type/{id} response
type DamageRelations struct {
	DoubleDamageTo   []NamedResource `json:"double_damage_to"`
	DoubleDamageFrom []NamedResource `json:"double_damage_from"`
	HalfDamageTo     []NamedResource `json:"half_damage_to"`
	HalfDamageFrom   []NamedResource `json:"half_damage_from"`
	NoDamageTo       []NamedResource `json:"no_damage_to"`
	NoDamageFrom     []NamedResource `json:"no_damage_from"`
}

// TypePokemonEntry is one Pokémon belonging to a type
type TypePokemonEntry struct {
	Slot    int           `json:"slot"`
	Pokemon NamedResource `json:"pokemon"`
}

// Type matches the /type/{id} response
type Type struct {
	ID              int                `json:"id"`
	Name            string             `json:"name"`
	DamageRelations DamageRelations    `json:"damage_relations"`
	Pokemon         []TypePokemonEntry `json:"pokemon"`
	Moves           []NamedResource    `json:"moves"`
}

// EffectEntry is a localized effect description on a move or item
type EffectEntry struct {
	Effect      string        `json:"effect"`
	ShortEffect string        `json:"short_effect"`
	Language    NamedResource `json:"language"`
}

// Move matches the /move/{id} response
type Move struct {
	ID           int           `json:"id"`
	Name         string        `json:"name"`
	Type         NamedResource `json:"type"`
	Power        *int          `json:"power"`
	Accuracy     *int          `json:"accuracy"`
	PP           *int          `json:"pp"`
	Priority     int           `json:"priority"`
	EffectChance *int          `json:"effect_chance"`
	DamageClass  NamedResource `json:"damage_class"`
	EffectEntries []EffectEntry `json:"effect_entries"`
}

// ItemFlavorText is a localized flavor-text entry on an item
type ItemFlavorText struct {
	Text     string        `json:"text"`
	Language NamedResource `json:"language"`
}

// ItemHolder is a Pokémon that may hold an item in the wild
type ItemHolder struct {
	Pokemon        NamedResource           `json:"pokemon"`
	VersionDetails []HeldItemVersionDetail `json:"version_details"`
}

// Item matches the /item/{id} response
type Item struct {
	ID                int              `json:"id"`
	Name              string           `json:"name"`
	Cost              int              `json:"cost"`
	Category          NamedResource    `json:"category"`
	EffectEntries     []EffectEntry    `json:"effect_entries"`
	FlavorTextEntries []ItemFlavorText `json:"flavor_text_entries"`
	Attributes        []NamedResource  `json:"attributes"`
	HeldByPokemon     []ItemHolder     `json:"held_by_pokemon"`
}

// ItemCategory matches the /item-category/{id} response
type ItemCategory struct {
	ID    int             `json:"id"`
	Name  string          `json:"name"`
	Items []NamedResource `json:"items"`
}

// Species matches the subset of /pokemon-species/{id} the reshapers need
type Species struct {
	ID             int `json:"id"`
	Name           string `json:"name"`
	EvolutionChain struct {
		URL string `json:"url"`
	} `json:"evolution_chain"`
}

// EvolutionDetail describes the conditions for one evolution step
type EvolutionDetail struct {
	MinLevel     *int           `json:"min_level"`
	MinHappiness *int           `json:"min_happiness"`
	Item         *NamedResource `json:"item"`
	HeldItem     *NamedResource `json:"held_item"`
	KnownMove    *NamedResource `json:"known_move"`
	TimeOfDay    string         `json:"time_of_day"`
	Trigger      *NamedResource `json:"trigger"`
}

// ChainLink is a node in the evolution-chain tree. The tree is read-only
// after unmarshal and of shallow depth, so nodes own their children directly.
type ChainLink struct {
	IsBaby           bool              `json:"is_baby"`
	Species          NamedResource     `json:"species"`
	EvolutionDetails []EvolutionDetail `json:"evolution_details"`
	EvolvesTo        []ChainLink       `json:"evolves_to"`
}

// EvolutionChain matches the /evolution-chain/{id} response
type EvolutionChain struct {
	ID    int       `json:"id"`
	Chain ChainLink `json:"chain"`
}

// SpeciesNames returns the chain's species names in evolution order.
// Branching evolutions include all branches.
func (c *EvolutionChain) SpeciesNames() []string {
	var names []string
	var walk func(link *ChainLink)
	walk = func(link *ChainLink) {
		names = append(names, link.Species.Name)
		for i := range link.EvolvesTo {
			walk(&link.EvolvesTo[i])
		}
	}
	walk(&c.Chain)
	return names
}

// ListPage matches the paginated list responses (/pokemon?limit=&offset= etc.)
type ListPage struct {
	Count   int             `json:"count"`
	Results []NamedResource `json:"results"`
}
