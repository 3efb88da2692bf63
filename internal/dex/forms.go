package dex

import (
	"strings"

	"dexhub/internal/evolution"
	"dexhub/pkg/models"
	"dexhub/pkg/utils"
)

// IsValidVariant excludes mega and gigantamax forms from the variant strip.
func IsValidVariant(name string) bool {
	n := strings.ToLower(name)
	return !strings.Contains(n, "mega") && !strings.Contains(n, "gigamax") && !strings.Contains(n, "gmax")
}

var regionLabels = map[evolution.Region]string{
	evolution.Alola:  "Alolan",
	evolution.Galar:  "Galarian",
	evolution.Hisui:  "Hisuian",
	evolution.Paldea: "Paldean",
}

// VariantLabel names the kind of form a variety is: Female, a regional
// adjective, or Base.
func VariantLabel(name string) string {
	n := strings.ToLower(name)
	if strings.Contains(n, "-f") || strings.Contains(n, "female") {
		return "Female"
	}
	if r, ok := evolution.RegionOf(n); ok {
		return regionLabels[r]
	}
	return "Base"
}

// HomeForms lists the form names tracked for a species: the male base form,
// a female form when the species has one, and each regional form.
func HomeForms(base models.Pokemon, variants []models.Pokemon) []string {
	baseName := utils.DisplayName(strings.Replace(strings.ToLower(base.Name), "-male", "", 1))
	forms := []string{baseName + " Male"}

	hasFemale := false
	for _, v := range variants {
		if strings.Contains(strings.ToLower(v.Name), "-female") {
			hasFemale = true
			break
		}
	}
	female := base.Sprites.FrontFemale
	if hasFemale || (female != "" && female != base.Sprites.FrontDefault) {
		forms = append(forms, baseName+" Female")
	}

	for _, v := range variants {
		if name, ok := regionalFormName(v.Name); ok {
			forms = append(forms, name)
		}
	}
	return forms
}

// regionalFormName returns "<Species> <Region>" for true regional forms.
// Caps, cosplay outfits, megas and gigantamax forms are not regional forms.
func regionalFormName(name string) (string, bool) {
	n := strings.ToLower(name)
	for _, bad := range []string{"cap", "cosplay", "mega", "gmax"} {
		if strings.Contains(n, bad) {
			return "", false
		}
	}
	for _, r := range []evolution.Region{evolution.Alola, evolution.Galar, evolution.Hisui, evolution.Paldea} {
		if strings.Contains(n, "-"+string(r)) {
			species := strings.SplitN(n, "-", 2)[0]
			return utils.DisplayName(species) + " " + utils.TitleWords(string(r)), true
		}
	}
	return "", false
}
