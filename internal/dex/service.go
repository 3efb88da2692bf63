// Package dex assembles PokeAPI records into the lists, search results and
// detail bundles the front end renders.
package dex

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"strings"

	"dexhub/internal/evolution"
	"dexhub/internal/logging"
	"dexhub/internal/pokeapi"
	"dexhub/pkg/models"
	"dexhub/pkg/utils"
)

// API is the subset of the PokeAPI client the service needs.
type API interface {
	GetPokemon(ctx context.Context, idOrName string) (*models.Pokemon, error)
	GetSpecies(ctx context.Context, idOrName string) (*models.PokemonSpecies, error)
	GetEvolutionChain(ctx context.Context, chainURL string) (*models.EvolutionChain, error)
	ListPokemon(ctx context.Context, limit, offset int) (*models.ListResponse, error)
	GetType(ctx context.Context, name string) ([]models.NamedResource, error)
	FetchPokemonBatch(ctx context.Context, refs []string) []models.Pokemon
	FetchAbilityBatch(ctx context.Context, refs []string) map[string]*pokeapi.Ability
}

var _ API = (*pokeapi.Client)(nil)

const defaultSearchIndexSize = 1500

type Service struct {
	API             API
	Log             *slog.Logger
	SearchIndexSize int
}

func NewService(api API, log *slog.Logger) *Service {
	if log == nil {
		log = logging.NewNop()
	}
	return &Service{API: api, Log: log, SearchIndexSize: defaultSearchIndexSize}
}

// EvolutionLine returns the display stages of the chain idOrName belongs to,
// rewritten to regional forms when idOrName names one. Any failure yields an
// empty line.
func (s *Service) EvolutionLine(ctx context.Context, idOrName string) []models.EvolutionStage {
	p, err := s.API.GetPokemon(ctx, idOrName)
	if err != nil {
		s.Log.Warn("evolution line: pokemon lookup failed", "pokemon", idOrName, "error", err)
		return []models.EvolutionStage{}
	}
	return s.evolutionLineFor(ctx, p)
}

func (s *Service) evolutionLineFor(ctx context.Context, p *models.Pokemon) []models.EvolutionStage {
	chainURL := s.chainURL(ctx, strconv.Itoa(p.ID))
	if chainURL == "" && utils.IsAlternateForm(p.ID) {
		if speciesID := utils.ExtractID(p.Species.URL); speciesID != 0 {
			chainURL = s.chainURL(ctx, strconv.Itoa(speciesID))
		}
	}
	if chainURL == "" {
		s.Log.Info("evolution line: no chain", "pokemon", p.Name, "id", p.ID)
		return []models.EvolutionStage{}
	}

	chain, err := s.API.GetEvolutionChain(ctx, chainURL)
	if err != nil {
		s.Log.Warn("evolution line: chain lookup failed", "pokemon", p.Name, "url", chainURL, "error", err)
		return []models.EvolutionStage{}
	}

	stages := evolution.Linearize(chain.Chain)
	return evolution.ResolveVariant(stages, p.Name)
}

func (s *Service) chainURL(ctx context.Context, speciesRef string) string {
	sp, err := s.API.GetSpecies(ctx, speciesRef)
	if err != nil {
		if !errors.Is(err, pokeapi.ErrNotFound) {
			s.Log.Warn("species lookup failed", "species", speciesRef, "error", err)
		}
		return ""
	}
	return sp.ChainURL()
}

// Variants fetches every non-default variety of a species. Members that fail
// to load are left out.
func (s *Service) Variants(ctx context.Context, species *models.PokemonSpecies) []models.Pokemon {
	if species == nil || len(species.Varieties) <= 1 {
		return []models.Pokemon{}
	}
	refs := make([]string, 0, len(species.Varieties))
	for _, v := range species.Varieties {
		if v.Pokemon.Name != species.Name {
			refs = append(refs, v.Pokemon.Name)
		}
	}
	if len(refs) == 0 {
		return []models.Pokemon{}
	}
	return s.API.FetchPokemonBatch(ctx, refs)
}

// VariantCards resolves the species of idOrName and returns its variants as
// labeled cards.
func (s *Service) VariantCards(ctx context.Context, idOrName string) ([]models.PokemonCard, error) {
	p, err := s.API.GetPokemon(ctx, idOrName)
	if err != nil {
		return nil, err
	}
	if utils.IsAlternateForm(p.ID) {
		return []models.PokemonCard{}, nil
	}
	sp, err := s.API.GetSpecies(ctx, strconv.Itoa(p.ID))
	if err != nil {
		s.Log.Warn("variants: species lookup failed", "pokemon", p.Name, "error", err)
		return []models.PokemonCard{}, nil
	}

	out := []models.PokemonCard{}
	for _, v := range s.Variants(ctx, sp) {
		if v.ID == p.ID {
			continue
		}
		card := CardOf(v)
		card.Label = VariantLabel(v.Name)
		out = append(out, card)
	}
	return out, nil
}

// List returns one page of the index as cards. Alternate forms are dropped.
func (s *Service) List(ctx context.Context, limit, offset int) []models.PokemonCard {
	idx, err := s.API.ListPokemon(ctx, limit, offset)
	if err != nil {
		s.Log.Warn("list: index lookup failed", "limit", limit, "offset", offset, "error", err)
		return []models.PokemonCard{}
	}
	return cardsOf(s.API.FetchPokemonBatch(ctx, namesOf(idx.Results)))
}

func namesOf(refs []models.NamedResource) []string {
	out := make([]string, 0, len(refs))
	for _, r := range refs {
		out = append(out, r.Name)
	}
	return out
}

// cardsOf maps fetched creatures to cards, skipping alternate forms.
func cardsOf(list []models.Pokemon) []models.PokemonCard {
	out := make([]models.PokemonCard, 0, len(list))
	for _, p := range list {
		if utils.IsAlternateForm(p.ID) {
			continue
		}
		out = append(out, CardOf(p))
	}
	return out
}

// CardOf builds the list tile for a creature. The image falls back from the
// official artwork to the default sprite to the sprite CDN.
func CardOf(p models.Pokemon) models.PokemonCard {
	img := p.Sprites.Other.OfficialArtwork.FrontDefault
	if img == "" {
		img = p.Sprites.FrontDefault
	}
	if img == "" {
		img = utils.SpriteURL(p.ID)
	}
	return models.PokemonCard{
		ID:       p.ID,
		Name:     utils.DisplayName(p.Name),
		ImageURL: img,
		Types:    p.TypeNames(),
	}
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
