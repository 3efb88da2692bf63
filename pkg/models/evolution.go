package models

// EvolutionChain is the /evolution-chain/{id} record.
type EvolutionChain struct {
	ID    int       `json:"id"`
	Chain ChainLink `json:"chain"`
}

// ChainLink is one node of the evolution tree. EvolutionDetails describe the
// edge leading into this node; the root has none.
type ChainLink struct {
	Species          NamedResource     `json:"species"`
	EvolutionDetails []EvolutionDetail `json:"evolution_details"`
	EvolvesTo        []ChainLink       `json:"evolves_to"`
}

// EvolutionDetail is one trigger/condition record on an edge. Optional
// references are nil when PokeAPI sends null.
type EvolutionDetail struct {
	Trigger               NamedResource  `json:"trigger"`
	MinLevel              int            `json:"min_level"`
	Item                  *NamedResource `json:"item"`
	HeldItem              *NamedResource `json:"held_item"`
	Location              *NamedResource `json:"location"`
	TimeOfDay             string         `json:"time_of_day"`
	MinHappiness          int            `json:"min_happiness"`
	MinBeauty             int            `json:"min_beauty"`
	MinAffection          int            `json:"min_affection"`
	NeedsOverworldRain    bool           `json:"needs_overworld_rain"`
	PartySpecies          *NamedResource `json:"party_species"`
	PartyType             *NamedResource `json:"party_type"`
	RelativePhysicalStats *int           `json:"relative_physical_stats"`
	TradeSpecies          *NamedResource `json:"trade_species"`
	TurnUpsideDown        bool           `json:"turn_upside_down"`
}

// EvolutionStage is one display entry of a linearized chain.
type EvolutionStage struct {
	ID              int    `json:"id"`
	Name            string `json:"name"`
	Species         string `json:"species"`
	ImageURL        string `json:"imageUrl"`
	Level           int    `json:"level"`
	EvolutionMethod string `json:"evolutionMethod,omitempty"`
}
