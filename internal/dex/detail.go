package dex

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"dexhub/internal/evolution"
	"dexhub/pkg/models"
	"dexhub/pkg/utils"
)

// Details loads everything the detail page shows for one creature. Only the
// creature lookup itself can fail the call; species, ability, variant and
// chain lookups degrade to empty sections.
func (s *Service) Details(ctx context.Context, idOrName string) (*models.PokemonDetail, error) {
	p, err := s.API.GetPokemon(ctx, idOrName)
	if err != nil {
		return nil, fmt.Errorf("dex: details %s: %w", idOrName, err)
	}

	d := &models.PokemonDetail{
		Pokemon:         *p,
		DisplayName:     utils.DisplayName(p.Name),
		Descriptions:    []models.Description{},
		BaseID:          p.ID,
		Abilities:       s.abilities(ctx, p),
		Variants:        []models.PokemonCard{},
		DisplayVariants: []models.PokemonCard{CardOf(*p)},
		HomeForms:       []string{},
		EvolutionLine:   []models.EvolutionStage{},
	}

	if utils.IsAlternateForm(p.ID) {
		// Alternate forms often have no species record of their own.
		d.BaseID = evolution.BaseFormID(*p)
	} else {
		s.fillSpecies(ctx, d, p)
		d.EvolutionLine = s.evolutionLineFor(ctx, p)
	}

	d.HasBasePokemon = d.BaseID != 0 && d.BaseID != p.ID && utils.IsAlternateForm(p.ID)
	d.HasMultipleEvolutions = evolution.HasMultipleDirectEvolutions(d.EvolutionLine)
	d.MixedEvolution = evolution.IsMixedEvolution(d.EvolutionLine)
	return d, nil
}

func (s *Service) fillSpecies(ctx context.Context, d *models.PokemonDetail, p *models.Pokemon) {
	sp, err := s.API.GetSpecies(ctx, strconv.Itoa(p.ID))
	if err != nil {
		s.Log.Warn("details: species lookup failed", "pokemon", p.Name, "error", err)
		return
	}

	d.Category = genusOf(sp)
	d.Descriptions = descriptionsOf(sp)
	d.BaseID, d.BaseName = baseFormOf(sp, p)

	var others []models.Pokemon
	for _, v := range s.Variants(ctx, sp) {
		if v.ID != p.ID {
			others = append(others, v)
		}
	}

	all := append([]models.Pokemon{*p}, others...)
	for _, v := range all {
		if IsValidVariant(v.Name) {
			card := CardOf(v)
			card.Label = VariantLabel(v.Name)
			d.Variants = append(d.Variants, card)
		}
	}
	if len(all) > 1 {
		d.DisplayVariants = make([]models.PokemonCard, 0, len(all))
		for _, v := range all {
			d.DisplayVariants = append(d.DisplayVariants, CardOf(v))
		}
	}
	d.HomeForms = HomeForms(*p, others)
}

func (s *Service) abilities(ctx context.Context, p *models.Pokemon) []models.AbilityInfo {
	refs := make([]string, 0, len(p.Abilities))
	for _, a := range p.Abilities {
		refs = append(refs, a.Ability.Name)
	}
	found := s.API.FetchAbilityBatch(ctx, refs)

	out := make([]models.AbilityInfo, 0, len(p.Abilities))
	for _, a := range p.Abilities {
		info := models.AbilityInfo{
			Name:   a.Ability.Name,
			Hidden: a.IsHidden,
			Slot:   a.Slot,
		}
		if ab, ok := found[a.Ability.Name]; ok {
			info.Description = ab.Description()
		}
		out = append(out, info)
	}
	return out
}

// genusOf prefers the English genus and falls back to the first listed.
func genusOf(sp *models.PokemonSpecies) string {
	for _, g := range sp.Genera {
		if g.Language.Name == "en" {
			return g.Genus
		}
	}
	if len(sp.Genera) > 0 {
		return sp.Genera[0].Genus
	}
	return ""
}

// descriptionsOf returns the English flavor texts, newest game first.
func descriptionsOf(sp *models.PokemonSpecies) []models.Description {
	out := []models.Description{}
	for i := len(sp.FlavorTextEntries) - 1; i >= 0; i-- {
		e := sp.FlavorTextEntries[i]
		if e.Language.Name != "en" {
			continue
		}
		out = append(out, models.Description{
			Text:    strings.ReplaceAll(e.FlavorText, "\f", " "),
			Version: strings.ReplaceAll(e.Version.Name, "-", " "),
		})
	}
	return out
}

// baseFormOf picks the default variety, else the first one, else p itself.
func baseFormOf(sp *models.PokemonSpecies, p *models.Pokemon) (int, string) {
	for _, v := range sp.Varieties {
		if v.IsDefault {
			return utils.ExtractID(v.Pokemon.URL), v.Pokemon.Name
		}
	}
	if len(sp.Varieties) > 0 {
		v := sp.Varieties[0]
		return utils.ExtractID(v.Pokemon.URL), v.Pokemon.Name
	}
	return p.ID, ""
}
