package evolution

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"dexhub/pkg/models"
)

func ref(name string) *models.NamedResource {
	return &models.NamedResource{Name: name}
}

func intp(n int) *int { return &n }

func trigger(name string) models.NamedResource {
	return models.NamedResource{Name: name}
}

func TestDescribe(t *testing.T) {
	tests := []struct {
		name   string
		detail *models.EvolutionDetail
		want   string
	}{
		{"nil", nil, "Unknown"},
		{"level with min", &models.EvolutionDetail{Trigger: trigger("level-up"), MinLevel: 16}, "Level 16"},
		{"level without min", &models.EvolutionDetail{Trigger: trigger("level-up")}, "Level up"},
		{"use item", &models.EvolutionDetail{Trigger: trigger("use-item"), Item: ref("water-stone")}, "Use Water Stone"},
		{"use item missing", &models.EvolutionDetail{Trigger: trigger("use-item")}, "Use Item"},
		{"plain trade", &models.EvolutionDetail{Trigger: trigger("trade")}, "Trade"},
		{"trade holding", &models.EvolutionDetail{Trigger: trigger("trade"), HeldItem: ref("kings-rock")}, "Trade (Holding Kings Rock)"},
		{"level while holding", &models.EvolutionDetail{Trigger: trigger("level-up"), HeldItem: ref("oval-stone"), TimeOfDay: "day"},
			"Level up (During day, While holding Oval Stone)"},
		{"trade for species", &models.EvolutionDetail{Trigger: trigger("trade"), TradeSpecies: ref("shelmet")}, "Trade (Trade for Shelmet)"},
		{"shed", &models.EvolutionDetail{Trigger: trigger("shed")}, "Empty slot in party + Pokeball"},
		{"unknown trigger", &models.EvolutionDetail{Trigger: trigger("three-critical-hits")}, "Three Critical Hits"},
		{"beauty", &models.EvolutionDetail{Trigger: trigger("level-up"), MinBeauty: 171}, "Level up (Beauty 171+)"},
		{"location", &models.EvolutionDetail{Trigger: trigger("level-up"), Location: ref("eterna-forest")}, "Level up (At Eterna Forest)"},
		{"party species", &models.EvolutionDetail{Trigger: trigger("level-up"), PartySpecies: ref("remoraid")}, "Level up (With Remoraid in party)"},
		{"party type", &models.EvolutionDetail{Trigger: trigger("level-up"), MinAffection: 2, PartyType: ref("dark")},
			"Level up (High Affection (2+), With Dark-type in party)"},
		{"rain", &models.EvolutionDetail{Trigger: trigger("level-up"), MinLevel: 50, NeedsOverworldRain: true}, "Level 50 (During rain)"},
		{"upside down", &models.EvolutionDetail{Trigger: trigger("level-up"), MinLevel: 30, TurnUpsideDown: true}, "Level 30 (Turn device upside down)"},
		{"attack higher", &models.EvolutionDetail{Trigger: trigger("level-up"), MinLevel: 20, RelativePhysicalStats: intp(1)}, "Level 20 (Attack > Defense)"},
		{"defense higher", &models.EvolutionDetail{Trigger: trigger("level-up"), MinLevel: 20, RelativePhysicalStats: intp(-1)}, "Level 20 (Defense > Attack)"},
		{"stats equal", &models.EvolutionDetail{Trigger: trigger("level-up"), MinLevel: 20, RelativePhysicalStats: intp(0)}, "Level 20 (Attack = Defense)"},
		{"empty named refs ignored", &models.EvolutionDetail{Trigger: trigger("level-up"), Location: ref(""), HeldItem: ref("")}, "Level up"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Describe(tt.detail))
		})
	}
}

func TestDescribe_ConditionOrder(t *testing.T) {
	d := &models.EvolutionDetail{
		Trigger:               trigger("level-up"),
		MinHappiness:          220,
		MinAffection:          2,
		MinBeauty:             170,
		TimeOfDay:             "night",
		Location:              ref("mt-coronet"),
		HeldItem:              ref("razor-claw"),
		TradeSpecies:          ref("karrablast"),
		PartySpecies:          ref("remoraid"),
		PartyType:             ref("dark"),
		NeedsOverworldRain:    true,
		TurnUpsideDown:        true,
		RelativePhysicalStats: intp(0),
	}

	want := "Level up (High Friendship (220+), High Affection (2+), Beauty 170+, During night, " +
		"At Mt Coronet, While holding Razor Claw, Trade for Karrablast, With Remoraid in party, " +
		"With Dark-type in party, During rain, Turn device upside down, Attack = Defense)"
	assert.Equal(t, want, Describe(d))
}

func TestCombineMethods(t *testing.T) {
	t.Run("empty is unknown", func(t *testing.T) {
		assert.Equal(t, UnknownMethod, CombineMethods(nil))
	})

	t.Run("single", func(t *testing.T) {
		assert.Equal(t, "Level 16", CombineMethods(levelUp(16)))
	})

	t.Run("duplicates collapse in first-seen order", func(t *testing.T) {
		details := []models.EvolutionDetail{
			{Trigger: trigger("use-item"), Item: ref("ice-stone")},
			{Trigger: trigger("level-up"), Location: ref("twist-mountain")},
			{Trigger: trigger("use-item"), Item: ref("ice-stone")},
		}
		assert.Equal(t, "Use Ice Stone OR Level up (At Twist Mountain)", CombineMethods(details))
	})
}
