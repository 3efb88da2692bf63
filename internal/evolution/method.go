package evolution

import (
	"fmt"
	"strings"

	"dexhub/pkg/models"
	"dexhub/pkg/utils"
)

const UnknownMethod = "Unknown"

// CombineMethods describes every detail record of an edge. Identical texts
// collapse into one; distinct ones are joined with " OR ".
func CombineMethods(details []models.EvolutionDetail) string {
	if len(details) == 0 {
		return UnknownMethod
	}
	seen := make(map[string]bool, len(details))
	var methods []string
	for i := range details {
		m := Describe(&details[i])
		if seen[m] {
			continue
		}
		seen[m] = true
		methods = append(methods, m)
	}
	return strings.Join(methods, " OR ")
}

// Describe renders one trigger record as text, e.g. "Level 16",
// "Use Water Stone" or "Trade (Holding Kings Rock)".
func Describe(d *models.EvolutionDetail) string {
	if d == nil {
		return UnknownMethod
	}

	trigger := d.Trigger.Name
	var method string
	switch trigger {
	case "level-up":
		if d.MinLevel > 0 {
			method = fmt.Sprintf("Level %d", d.MinLevel)
		} else {
			method = "Level up"
		}
	case "use-item":
		item := "item"
		if d.Item != nil && d.Item.Name != "" {
			item = d.Item.Name
		}
		method = "Use " + utils.DisplayName(item)
	case "trade":
		method = "Trade"
	case "shed":
		method = "Empty slot in party + Pokeball"
	default:
		method = utils.TitleWords(trigger)
	}

	conditions := conditionsOf(d, trigger == "trade")
	if len(conditions) == 0 {
		return method
	}
	return method + " (" + strings.Join(conditions, ", ") + ")"
}

// conditionsOf lists the optional requirements in display order.
func conditionsOf(d *models.EvolutionDetail, isTrade bool) []string {
	var out []string

	if d.MinHappiness > 0 {
		out = append(out, fmt.Sprintf("High Friendship (%d+)", d.MinHappiness))
	}
	if d.MinAffection > 0 {
		out = append(out, fmt.Sprintf("High Affection (%d+)", d.MinAffection))
	}
	if d.MinBeauty > 0 {
		out = append(out, fmt.Sprintf("Beauty %d+", d.MinBeauty))
	}
	if d.TimeOfDay != "" {
		out = append(out, "During "+d.TimeOfDay)
	}
	if named(d.Location) {
		out = append(out, "At "+utils.DisplayName(d.Location.Name))
	}
	if named(d.HeldItem) {
		if isTrade {
			out = append(out, "Holding "+utils.DisplayName(d.HeldItem.Name))
		} else {
			out = append(out, "While holding "+utils.DisplayName(d.HeldItem.Name))
		}
	}
	if named(d.TradeSpecies) {
		out = append(out, "Trade for "+utils.DisplayName(d.TradeSpecies.Name))
	}
	if named(d.PartySpecies) {
		out = append(out, "With "+utils.DisplayName(d.PartySpecies.Name)+" in party")
	}
	if named(d.PartyType) {
		out = append(out, "With "+utils.DisplayName(d.PartyType.Name)+"-type in party")
	}
	if d.NeedsOverworldRain {
		out = append(out, "During rain")
	}
	if d.TurnUpsideDown {
		out = append(out, "Turn device upside down")
	}
	if d.RelativePhysicalStats != nil {
		switch *d.RelativePhysicalStats {
		case 1:
			out = append(out, "Attack > Defense")
		case -1:
			out = append(out, "Defense > Attack")
		case 0:
			out = append(out, "Attack = Defense")
		}
	}
	return out
}

func named(r *models.NamedResource) bool {
	return r != nil && r.Name != ""
}
