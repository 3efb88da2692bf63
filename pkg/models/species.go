package models

type Genus struct {
	Genus    string        `json:"genus"`
	Language NamedResource `json:"language"`
}

type FlavorText struct {
	FlavorText string        `json:"flavor_text"`
	Language   NamedResource `json:"language"`
	Version    NamedResource `json:"version"`
}

type Variety struct {
	IsDefault bool          `json:"is_default"`
	Pokemon   NamedResource `json:"pokemon"`
}

// PokemonSpecies is the /pokemon-species/{id} record.
type PokemonSpecies struct {
	ID                int            `json:"id"`
	Name              string         `json:"name"`
	Genera            []Genus        `json:"genera"`
	FlavorTextEntries []FlavorText   `json:"flavor_text_entries"`
	EvolutionChain    *NamedResource `json:"evolution_chain"`
	Varieties         []Variety      `json:"varieties"`
}

// ChainURL returns the evolution chain reference, or "" when the species has none.
func (s PokemonSpecies) ChainURL() string {
	if s.EvolutionChain == nil {
		return ""
	}
	return s.EvolutionChain.URL
}
