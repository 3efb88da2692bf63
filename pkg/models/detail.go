package models

type AbilityInfo struct {
	Name        string `json:"name"`
	Hidden      bool   `json:"hidden"`
	Slot        int    `json:"slot"`
	Description string `json:"description"`
}

type Description struct {
	Text    string `json:"text"`
	Version string `json:"version"`
}

// PokemonDetail bundles everything the detail page renders for one creature.
type PokemonDetail struct {
	Pokemon               Pokemon          `json:"pokemon"`
	DisplayName           string           `json:"displayName"`
	Category              string           `json:"category,omitempty"`
	Descriptions          []Description    `json:"descriptions"`
	BaseID                int              `json:"baseId"`
	BaseName              string           `json:"baseName,omitempty"`
	HasBasePokemon        bool             `json:"hasBasePokemon"`
	Abilities             []AbilityInfo    `json:"abilities"`
	Variants              []PokemonCard    `json:"variants"`
	DisplayVariants       []PokemonCard    `json:"displayVariants"`
	HomeForms             []string         `json:"homeForms"`
	EvolutionLine         []EvolutionStage `json:"evolutionLine"`
	HasMultipleEvolutions bool             `json:"hasMultipleEvolutions"`
	MixedEvolution        bool             `json:"mixedEvolution"`
}
