package pokeapi

import (
	"fmt"

	"github.com/tidwall/gjson"
)

const noDescription = "Description not available"

// Ability keeps the raw /ability payload; descriptions are picked out of the
// multilingual entry lists with path queries.
type Ability struct {
	Name string
	raw  string
}

// ParseAbility wraps a raw /ability payload.
func ParseAbility(body []byte) (*Ability, error) {
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("pokeapi: decode ability: invalid json")
	}
	raw := string(body)
	return &Ability{Name: gjson.Get(raw, "name").String(), raw: raw}, nil
}

// Description prefers the English effect text, then the English flavor text,
// then whatever comes first in either list.
func (a *Ability) Description() string {
	if a == nil {
		return ""
	}
	queries := []string{
		`effect_entries.#(language.name=="en").effect`,
		`flavor_text_entries.#(language.name=="en").flavor_text`,
		`effect_entries.0.effect`,
		`flavor_text_entries.0.flavor_text`,
	}
	for _, q := range queries {
		if v := gjson.Get(a.raw, q).String(); v != "" {
			return v
		}
	}
	return noDescription
}
