package models

import "time"

// SearchState is the per-session snapshot of the search page: the filters the
// user typed, the results they got and where they were scrolled to.
type SearchState struct {
	NameFilter       string        `json:"name_filter"`
	NumberFilter     string        `json:"number_filter"`
	TypeFilter       string        `json:"type_filter"`
	GenerationFilter string        `json:"generation_filter"`
	Results          []PokemonCard `json:"results"`
	HasSearched      bool          `json:"has_searched"`
	FilterFormOpen   bool          `json:"filter_form_open"`
	CurrentPage      int           `json:"current_page"`
	ScrollPosition   int           `json:"scroll_position"`
	UpdatedAt        time.Time     `json:"updated_at"`
}
