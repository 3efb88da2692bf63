// Package evolution turns PokeAPI evolution trees into the flat, leveled stage
// lists the detail page renders, and rewrites them for regional forms.
package evolution

import (
	"dexhub/pkg/models"
	"dexhub/pkg/utils"
)

// Linearize walks the chain from its root and returns one stage per displayed
// node. The root is level 0. A single child continues the line one level
// deeper; two or more children form an alternative branch point whose members
// are emitted side by side at the same level and not descended into.
func Linearize(root models.ChainLink) []models.EvolutionStage {
	stages := []models.EvolutionStage{newStage(root.Species, 0, "")}
	return appendLevel(stages, root.EvolvesTo, 1)
}

func appendLevel(stages []models.EvolutionStage, next []models.ChainLink, level int) []models.EvolutionStage {
	switch len(next) {
	case 0:
		return stages
	case 1:
		link := next[0]
		stages = append(stages, newStage(link.Species, level, CombineMethods(link.EvolutionDetails)))
		return appendLevel(stages, link.EvolvesTo, level+1)
	default:
		// Forks are terminal: the page shows "base -> {alt1, alt2, ...}" only.
		for _, link := range next {
			stages = append(stages, newStage(link.Species, level, CombineMethods(link.EvolutionDetails)))
		}
		return stages
	}
}

func newStage(species models.NamedResource, level int, method string) models.EvolutionStage {
	id := utils.ExtractID(species.URL)
	return models.EvolutionStage{
		ID:              id,
		Name:            utils.DisplayName(species.Name),
		Species:         species.Name,
		ImageURL:        utils.OfficialArtworkURL(id),
		Level:           level,
		EvolutionMethod: method,
	}
}

// StagesAtLevel returns the stages of one level in list order.
func StagesAtLevel(stages []models.EvolutionStage, level int) []models.EvolutionStage {
	var out []models.EvolutionStage
	for _, s := range stages {
		if s.Level == level {
			out = append(out, s)
		}
	}
	return out
}

// BaseStage returns the level-0 stage, if any.
func BaseStage(stages []models.EvolutionStage) (models.EvolutionStage, bool) {
	for _, s := range stages {
		if s.Level == 0 {
			return s, true
		}
	}
	return models.EvolutionStage{}, false
}

// HasMultipleDirectEvolutions reports a single base with two or more
// alternative first evolutions (Eevee, Tyrogue...).
func HasMultipleDirectEvolutions(stages []models.EvolutionStage) bool {
	return len(StagesAtLevel(stages, 0)) == 1 && len(StagesAtLevel(stages, 1)) >= 2
}

// IsMixedEvolution reports a linear prefix of at least two stages that ends in
// a fork (Poliwag -> Poliwhirl -> {Poliwrath, Politoed}).
func IsMixedEvolution(stages []models.EvolutionStage) bool {
	counts := map[int]int{}
	maxLevel := -1
	for _, s := range stages {
		counts[s.Level]++
		if s.Level > maxLevel {
			maxLevel = s.Level
		}
	}
	if len(counts) < 3 {
		return false
	}
	for level := 0; level < maxLevel; level++ {
		if counts[level] != 1 {
			return false
		}
	}
	return counts[maxLevel] >= 2
}
