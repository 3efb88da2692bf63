package dex

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"dexhub/internal/logging"
	"dexhub/internal/pokeapi"
	"dexhub/pkg/models"
)

// fakeAPI is an in-memory PokeAPI. Unknown keys answer pokeapi.ErrNotFound.
type fakeAPI struct {
	mu        sync.Mutex
	pokemon   map[string]*models.Pokemon
	species   map[string]*models.PokemonSpecies
	chains    map[string]*models.EvolutionChain
	types     map[string][]models.NamedResource
	abilities map[string]string
	index     []models.NamedResource
	listErr   error
	batches   [][]string
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{
		pokemon:   map[string]*models.Pokemon{},
		species:   map[string]*models.PokemonSpecies{},
		chains:    map[string]*models.EvolutionChain{},
		types:     map[string][]models.NamedResource{},
		abilities: map[string]string{},
	}
}

func newTestService(api *fakeAPI) *Service {
	return NewService(api, logging.NewNop())
}

func pokemonURL(id int) string {
	return fmt.Sprintf("https://pokeapi.co/api/v2/pokemon/%d/", id)
}

func speciesURL(id int) string {
	return fmt.Sprintf("https://pokeapi.co/api/v2/pokemon-species/%d/", id)
}

func chainURL(id int) string {
	return fmt.Sprintf("https://pokeapi.co/api/v2/evolution-chain/%d/", id)
}

func mkPokemon(id int, name string, speciesID int, types ...string) *models.Pokemon {
	p := &models.Pokemon{
		ID:      id,
		Name:    name,
		Species: models.NamedResource{Name: strings.SplitN(name, "-", 2)[0], URL: speciesURL(speciesID)},
	}
	for i, t := range types {
		p.Types = append(p.Types, models.TypeSlot{Slot: i + 1, Type: models.NamedResource{Name: t}})
	}
	p.Sprites.Other.OfficialArtwork.FrontDefault = fmt.Sprintf("https://img.test/%d.png", id)
	return p
}

// addPokemon registers p under its name and id and lists it in the index.
func (f *fakeAPI) addPokemon(p *models.Pokemon) *models.Pokemon {
	f.pokemon[p.Name] = p
	f.pokemon[strconv.Itoa(p.ID)] = p
	f.index = append(f.index, models.NamedResource{Name: p.Name, URL: pokemonURL(p.ID)})
	return p
}

// addHidden registers p without listing it in the index.
func (f *fakeAPI) addHidden(p *models.Pokemon) *models.Pokemon {
	f.pokemon[p.Name] = p
	f.pokemon[strconv.Itoa(p.ID)] = p
	return p
}

func (f *fakeAPI) addSpecies(s *models.PokemonSpecies) {
	f.species[s.Name] = s
	f.species[strconv.Itoa(s.ID)] = s
}

func (f *fakeAPI) GetPokemon(_ context.Context, idOrName string) (*models.Pokemon, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.pokemon[strings.ToLower(strings.TrimSpace(idOrName))]
	if !ok {
		return nil, fmt.Errorf("%w: pokemon/%s", pokeapi.ErrNotFound, idOrName)
	}
	cp := *p
	return &cp, nil
}

func (f *fakeAPI) GetSpecies(_ context.Context, idOrName string) (*models.PokemonSpecies, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.species[strings.ToLower(idOrName)]
	if !ok {
		return nil, fmt.Errorf("%w: pokemon-species/%s", pokeapi.ErrNotFound, idOrName)
	}
	return s, nil
}

func (f *fakeAPI) GetEvolutionChain(_ context.Context, url string) (*models.EvolutionChain, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	ch, ok := f.chains[url]
	if !ok {
		return nil, fmt.Errorf("%w: %s", pokeapi.ErrNotFound, url)
	}
	return ch, nil
}

func (f *fakeAPI) ListPokemon(_ context.Context, limit, offset int) (*models.ListResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	end := offset + limit
	if end > len(f.index) {
		end = len(f.index)
	}
	var page []models.NamedResource
	if offset < end {
		page = append(page, f.index[offset:end]...)
	}
	return &models.ListResponse{Count: len(f.index), Results: page}, nil
}

func (f *fakeAPI) GetType(_ context.Context, name string) ([]models.NamedResource, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	members, ok := f.types[name]
	if !ok {
		return nil, fmt.Errorf("%w: type/%s", pokeapi.ErrNotFound, name)
	}
	return members, nil
}

func (f *fakeAPI) FetchPokemonBatch(ctx context.Context, refs []string) []models.Pokemon {
	f.mu.Lock()
	f.batches = append(f.batches, append([]string(nil), refs...))
	f.mu.Unlock()

	var out []models.Pokemon
	for _, r := range refs {
		if p, err := f.GetPokemon(ctx, r); err == nil {
			out = append(out, *p)
		}
	}
	return out
}

func (f *fakeAPI) FetchAbilityBatch(_ context.Context, refs []string) map[string]*pokeapi.Ability {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := map[string]*pokeapi.Ability{}
	for _, r := range refs {
		raw, ok := f.abilities[r]
		if !ok {
			continue
		}
		if a, err := pokeapi.ParseAbility([]byte(raw)); err == nil {
			out[r] = a
		}
	}
	return out
}

func linkOf(name string, id int, details []models.EvolutionDetail, next ...models.ChainLink) models.ChainLink {
	return models.ChainLink{
		Species:          models.NamedResource{Name: name, URL: speciesURL(id)},
		EvolutionDetails: details,
		EvolvesTo:        next,
	}
}

func levelAt(n int) []models.EvolutionDetail {
	return []models.EvolutionDetail{{Trigger: models.NamedResource{Name: "level-up"}, MinLevel: n}}
}

func stoneOf(item string) []models.EvolutionDetail {
	return []models.EvolutionDetail{{
		Trigger: models.NamedResource{Name: "use-item"},
		Item:    &models.NamedResource{Name: item},
	}}
}

// seedDex loads the bulbasaur and vulpix lines, including Alolan Vulpix.
func seedDex(f *fakeAPI) {
	bulba := f.addPokemon(mkPokemon(1, "bulbasaur", 1, "grass", "poison"))
	bulba.Abilities = []models.AbilitySlot{
		{Ability: models.NamedResource{Name: "overgrow"}, Slot: 1},
		{Ability: models.NamedResource{Name: "chlorophyll"}, IsHidden: true, Slot: 3},
	}
	f.addPokemon(mkPokemon(2, "ivysaur", 2, "grass", "poison"))
	f.addPokemon(mkPokemon(3, "venusaur", 3, "grass", "poison"))
	f.addPokemon(mkPokemon(37, "vulpix", 37, "fire"))
	f.addPokemon(mkPokemon(38, "ninetales", 38, "fire"))
	f.addPokemon(mkPokemon(10003, "venusaur-mega", 3, "grass", "poison"))
	f.addPokemon(mkPokemon(10103, "vulpix-alola", 37, "ice"))

	bulbaChain := &models.EvolutionChain{ID: 1, Chain: linkOf("bulbasaur", 1, nil,
		linkOf("ivysaur", 2, levelAt(16),
			linkOf("venusaur", 3, levelAt(32))))}
	vulpixChain := &models.EvolutionChain{ID: 15, Chain: linkOf("vulpix", 37, nil,
		linkOf("ninetales", 38, stoneOf("fire-stone")))}
	f.chains[chainURL(1)] = bulbaChain
	f.chains[chainURL(15)] = vulpixChain

	for _, s := range []struct {
		id    int
		name  string
		chain int
	}{{1, "bulbasaur", 1}, {2, "ivysaur", 1}, {3, "venusaur", 1}, {38, "ninetales", 15}} {
		f.addSpecies(&models.PokemonSpecies{
			ID:             s.id,
			Name:           s.name,
			EvolutionChain: &models.NamedResource{URL: chainURL(s.chain)},
			Varieties: []models.Variety{
				{IsDefault: true, Pokemon: models.NamedResource{Name: s.name, URL: pokemonURL(s.id)}},
			},
		})
	}
	f.species["1"].Genera = []models.Genus{
		{Genus: "たねポケモン", Language: models.NamedResource{Name: "ja"}},
		{Genus: "Seed Pokémon", Language: models.NamedResource{Name: "en"}},
	}
	f.species["1"].FlavorTextEntries = []models.FlavorText{
		{FlavorText: "A strange seed was\fplanted on its back.", Language: models.NamedResource{Name: "en"}, Version: models.NamedResource{Name: "red"}},
		{FlavorText: "Une graine.", Language: models.NamedResource{Name: "fr"}, Version: models.NamedResource{Name: "x"}},
		{FlavorText: "It carries a seed.", Language: models.NamedResource{Name: "en"}, Version: models.NamedResource{Name: "omega-ruby"}},
	}
	f.addSpecies(&models.PokemonSpecies{
		ID:             37,
		Name:           "vulpix",
		EvolutionChain: &models.NamedResource{URL: chainURL(15)},
		Varieties: []models.Variety{
			{IsDefault: true, Pokemon: models.NamedResource{Name: "vulpix", URL: pokemonURL(37)}},
			{Pokemon: models.NamedResource{Name: "vulpix-alola", URL: pokemonURL(10103)}},
		},
	})

	f.abilities["overgrow"] = `{"name":"overgrow","effect_entries":[
		{"effect":"Strengthens grass moves.","language":{"name":"en"}}]}`
	f.abilities["chlorophyll"] = `{"name":"chlorophyll","effect_entries":[],
		"flavor_text_entries":[{"flavor_text":"Boosts speed in sunshine.","language":{"name":"en"}}]}`

	f.types["grass"] = []models.NamedResource{
		{Name: "bulbasaur", URL: pokemonURL(1)},
		{Name: "ivysaur", URL: pokemonURL(2)},
		{Name: "venusaur", URL: pokemonURL(3)},
		{Name: "venusaur-mega", URL: pokemonURL(10003)},
	}
	f.types["fire"] = []models.NamedResource{
		{Name: "vulpix", URL: pokemonURL(37)},
		{Name: "ninetales", URL: pokemonURL(38)},
	}
}
