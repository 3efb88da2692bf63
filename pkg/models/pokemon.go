package models

// NamedResource is the {name, url} reference PokeAPI uses everywhere it points
// at another resource.
type NamedResource struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

type Sprites struct {
	FrontDefault     string `json:"front_default,omitempty"`
	FrontShiny       string `json:"front_shiny,omitempty"`
	FrontFemale      string `json:"front_female,omitempty"`
	FrontShinyFemale string `json:"front_shiny_female,omitempty"`
	Other            struct {
		OfficialArtwork struct {
			FrontDefault string `json:"front_default,omitempty"`
		} `json:"official-artwork"`
	} `json:"other"`
}

type TypeSlot struct {
	Slot int           `json:"slot"`
	Type NamedResource `json:"type"`
}

type StatSlot struct {
	BaseStat int           `json:"base_stat"`
	Effort   int           `json:"effort"`
	Stat     NamedResource `json:"stat"`
}

type AbilitySlot struct {
	Ability  NamedResource `json:"ability"`
	IsHidden bool          `json:"is_hidden"`
	Slot     int           `json:"slot"`
}

// Pokemon is the /pokemon/{id} record. Ids above 10000 are alternate forms
// (regional, mega, gmax, totem...) that point back to their species.
type Pokemon struct {
	ID        int           `json:"id"`
	Name      string        `json:"name"`
	Height    int           `json:"height"`
	Weight    int           `json:"weight"`
	Sprites   Sprites       `json:"sprites"`
	Types     []TypeSlot    `json:"types"`
	Stats     []StatSlot    `json:"stats"`
	Abilities []AbilitySlot `json:"abilities"`
	Species   NamedResource `json:"species"`
}

// TypeNames returns the type names in slot order.
func (p Pokemon) TypeNames() []string {
	out := make([]string, 0, len(p.Types))
	for _, t := range p.Types {
		out = append(out, t.Type.Name)
	}
	return out
}

// HasType reports whether one of the pokemon's types equals name.
func (p Pokemon) HasType(name string) bool {
	for _, t := range p.Types {
		if t.Type.Name == name {
			return true
		}
	}
	return false
}

// ListResponse is the paginated /pokemon index.
type ListResponse struct {
	Count    int             `json:"count"`
	Next     *string         `json:"next"`
	Previous *string         `json:"previous"`
	Results  []NamedResource `json:"results"`
}

// PokemonCard is the tile shown by list and search pages.
type PokemonCard struct {
	ID       int      `json:"id"`
	Name     string   `json:"name"`
	ImageURL string   `json:"imageUrl"`
	Types    []string `json:"types"`
	Label    string   `json:"label,omitempty"` // variant label on detail pages
}
