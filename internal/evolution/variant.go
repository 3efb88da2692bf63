package evolution

import (
	"strings"

	"dexhub/pkg/models"
	"dexhub/pkg/utils"
)

// RegionOf finds the region tag in a raw creature name. A "-<region>" suffix
// wins over a "-<region>" appearing mid-name ("pikachu-alola-cap").
func RegionOf(name string) (Region, bool) {
	name = strings.ToLower(name)
	for _, r := range knownRegions {
		if strings.HasSuffix(name, "-"+string(r)) {
			return r, true
		}
	}
	for _, r := range knownRegions {
		if strings.Contains(name, "-"+string(r)) {
			return r, true
		}
	}
	return "", false
}

func LookupVariant(species string, region Region) (VariantIdentity, bool) {
	v, ok := regionalVariants[variantKey{species: species, region: region}]
	return v, ok
}

// ResolveVariant swaps each stage for its regional form when requestedName
// carries a region tag and the table knows the pair. Levels and methods are
// kept; the input slice is left untouched.
func ResolveVariant(stages []models.EvolutionStage, requestedName string) []models.EvolutionStage {
	region, ok := RegionOf(requestedName)
	if !ok {
		return stages
	}

	out := make([]models.EvolutionStage, len(stages))
	for i, s := range stages {
		if v, found := LookupVariant(s.Species, region); found {
			s.ID = v.ID
			s.Name = utils.DisplayName(v.Name)
			s.ImageURL = utils.OfficialArtworkURL(v.ID)
		}
		out[i] = s
	}
	return out
}

// BaseFormID returns the species-numbered id an alternate form belongs to.
// Without a usable species reference the creature is its own base.
func BaseFormID(p models.Pokemon) int {
	if !utils.IsAlternateForm(p.ID) {
		return p.ID
	}
	if speciesID := utils.ExtractID(p.Species.URL); speciesID != 0 && speciesID != p.ID {
		return speciesID
	}
	return p.ID
}
