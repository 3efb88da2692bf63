package dex

import (
	"context"
	"sort"
	"strconv"
	"strings"

	"github.com/agnivade/levenshtein"

	"dexhub/pkg/models"
	"dexhub/pkg/utils"
)

const (
	maxSearchResults = 50
	maxSuggestions   = 5
	shortQueryLen    = 3
)

type SearchResult struct {
	Items       []models.PokemonCard `json:"items"`
	Suggestions []string             `json:"suggestions,omitempty"`
}

// Search matches query against the name index and returns up to 50 cards.
// Without a match it tries an exact lookup, and failing that offers close
// names from the index.
func (s *Service) Search(ctx context.Context, query string) SearchResult {
	term := normalize(query)
	res := SearchResult{Items: []models.PokemonCard{}}
	if term == "" {
		return res
	}

	idx, err := s.API.ListPokemon(ctx, s.indexSize(), 0)
	if err != nil {
		s.Log.Warn("search: index lookup failed", "query", term, "error", err)
		return res
	}

	var matches []string
	for _, r := range idx.Results {
		if matchesQuery(strings.ToLower(r.Name), term) {
			matches = append(matches, r.Name)
		}
	}

	if len(matches) == 0 {
		p, err := s.API.GetPokemon(ctx, term)
		if err == nil {
			if !utils.IsAlternateForm(p.ID) {
				res.Items = append(res.Items, CardOf(*p))
			}
			return res
		}
		res.Suggestions = suggest(term, idx.Results)
		return res
	}

	if len(matches) > maxSearchResults {
		matches = matches[:maxSearchResults]
	}
	res.Items = cardsOf(s.API.FetchPokemonBatch(ctx, matches))
	return res
}

func (s *Service) indexSize() int {
	if s.SearchIndexSize <= 0 {
		return defaultSearchIndexSize
	}
	return s.SearchIndexSize
}

// matchesQuery applies the loose name matching. Short terms also match on
// the prefix of any name part; longer ones on a contained part or on the
// hyphen-stripped forms of both sides.
func matchesQuery(name, term string) bool {
	if strings.Contains(name, term) {
		return true
	}
	stripped := stripSeparators(name)
	if len(term) <= shortQueryLen {
		if strings.Contains(stripped, term) {
			return true
		}
		return anyPart(name, func(part string) bool { return strings.HasPrefix(part, term) })
	}
	if strings.Contains(stripped, stripSeparators(term)) {
		return true
	}
	return anyPart(name, func(part string) bool { return strings.Contains(part, term) })
}

func stripSeparators(s string) string {
	return strings.NewReplacer("-", "", " ", "").Replace(s)
}

func anyPart(name string, pred func(string) bool) bool {
	for _, sep := range []string{"-", " "} {
		for _, part := range strings.Split(name, sep) {
			if pred(part) {
				return true
			}
		}
	}
	return false
}

// levenshteinLimit scales the accepted edit distance with the name length.
func levenshteinLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}

func suggest(term string, index []models.NamedResource) []string {
	type candidate struct {
		name string
		dist int
	}
	var cands []candidate
	for _, r := range index {
		if utils.IsAlternateForm(utils.ExtractID(r.URL)) {
			continue
		}
		dist := levenshtein.ComputeDistance(term, r.Name)
		if dist > levenshteinLimit(len(r.Name)) {
			continue
		}
		cands = append(cands, candidate{name: r.Name, dist: dist})
	}
	sort.SliceStable(cands, func(i, j int) bool { return cands[i].dist < cands[j].dist })

	out := make([]string, 0, maxSuggestions)
	for _, c := range cands {
		if len(out) == maxSuggestions {
			break
		}
		out = append(out, c.name)
	}
	return out
}

// ByType lists the members of a type, alternate forms excluded.
func (s *Service) ByType(ctx context.Context, typeName string) []models.NamedResource {
	members, err := s.API.GetType(ctx, normalize(typeName))
	if err != nil {
		s.Log.Warn("type lookup failed", "type", typeName, "error", err)
		return []models.NamedResource{}
	}
	out := make([]models.NamedResource, 0, len(members))
	for _, m := range members {
		if !utils.IsAlternateForm(utils.ExtractID(m.URL)) {
			out = append(out, m)
		}
	}
	return out
}

// Filter is the combined search form. Empty fields are unset.
type Filter struct {
	Name       string `form:"name" json:"name"`
	Number     string `form:"number" json:"number"`
	Type       string `form:"type" json:"type"`
	Generation string `form:"generation" json:"generation"`
}

func (f Filter) Empty() bool {
	return strings.TrimSpace(f.Name) == "" && strings.TrimSpace(f.Number) == "" &&
		strings.TrimSpace(f.Type) == "" && strings.TrimSpace(f.Generation) == ""
}

// FilterSearch picks the most specific filter as the result source (number,
// then type, then name, then generation), narrows by the others when more
// than one is set and sorts the cards by id.
func (s *Service) FilterSearch(ctx context.Context, f Filter) []models.PokemonCard {
	name := normalize(f.Name)
	number := strings.TrimSpace(f.Number)
	typ := normalize(f.Type)
	gen, hasGen := GenerationByValue(strings.TrimSpace(f.Generation))

	var cards []models.PokemonCard
	switch {
	case number != "":
		if id, err := strconv.Atoi(number); err == nil && id >= 1 {
			if p, err := s.API.GetPokemon(ctx, strconv.Itoa(id)); err == nil {
				cards = []models.PokemonCard{CardOf(*p)}
			} else {
				s.Log.Info("filter: no pokemon with number", "number", id)
			}
		}
	case typ != "":
		cards = cardsOf(s.API.FetchPokemonBatch(ctx, namesOf(s.ByType(ctx, typ))))
	case name != "":
		cards = s.Search(ctx, name).Items
	case hasGen:
		refs := make([]string, 0, gen.MaxID-gen.MinID+1)
		for id := gen.MinID; id <= gen.MaxID; id++ {
			refs = append(refs, strconv.Itoa(id))
		}
		cards = cardsOf(s.API.FetchPokemonBatch(ctx, refs))
	}

	// A lone filter already produced its own result set; narrowing only
	// applies when filters are combined.
	set := 0
	for _, on := range []bool{number != "", typ != "", name != "", hasGen} {
		if on {
			set++
		}
	}
	combined := set > 1

	out := make([]models.PokemonCard, 0, len(cards))
	for _, c := range cards {
		if combined && name != "" && !strings.Contains(strings.ToLower(c.Name), name) && !strings.Contains(cardSlug(c), name) {
			continue
		}
		if combined && typ != "" && !hasType(c, typ) {
			continue
		}
		if combined && hasGen && !gen.Contains(c.ID) {
			continue
		}
		out = append(out, c)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// cardSlug turns a display name back into the hyphenated identifier form.
func cardSlug(c models.PokemonCard) string {
	return strings.Join(strings.Fields(strings.ToLower(c.Name)), "-")
}

func hasType(c models.PokemonCard, typ string) bool {
	for _, t := range c.Types {
		if strings.ToLower(t) == typ {
			return true
		}
	}
	return false
}

type Generation struct {
	Name  string `json:"name"`
	Value string `json:"value"`
	MinID int    `json:"minId"`
	MaxID int    `json:"maxId"`
}

func (g Generation) Contains(id int) bool {
	return id >= g.MinID && id <= g.MaxID
}

var generations = []Generation{
	{"Generation I", "gen1", 1, 151},
	{"Generation II", "gen2", 152, 251},
	{"Generation III", "gen3", 252, 386},
	{"Generation IV", "gen4", 387, 493},
	{"Generation V", "gen5", 494, 649},
	{"Generation VI", "gen6", 650, 721},
	{"Generation VII", "gen7", 722, 809},
	{"Generation VIII", "gen8", 810, 905},
	{"Generation IX", "gen9", 906, 1025},
}

func Generations() []Generation {
	out := make([]Generation, len(generations))
	copy(out, generations)
	return out
}

func GenerationByValue(value string) (Generation, bool) {
	for _, g := range generations {
		if g.Value == value {
			return g, true
		}
	}
	return Generation{}, false
}

// Types is the fixed list offered by the type filter.
var Types = []string{
	"bug", "dark", "dragon", "electric", "fairy", "fighting",
	"fire", "flying", "ghost", "grass", "ground", "ice",
	"normal", "poison", "psychic", "rock", "steel", "water",
}
