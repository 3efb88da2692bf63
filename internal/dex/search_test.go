package dex

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dexhub/pkg/models"
)

func TestMatchesQuery(t *testing.T) {
	tests := []struct {
		name, term string
		want       bool
	}{
		{"iron-hands", "iron", true},
		{"charmander", "char", true},
		{"mr-mime", "mrm", true},
		{"tapu-koko", "kok", true},
		{"ho-oh", "hooh", true},
		{"great-tusk", "tusk", true},
		{"porygon-z", "z", true},
		{"pikachu", "xyz", false},
		{"bulbasaur", "bulbasar", false},
	}
	for _, tt := range tests {
		t.Run(tt.name+"/"+tt.term, func(t *testing.T) {
			assert.Equal(t, tt.want, matchesQuery(tt.name, tt.term))
		})
	}
}

func TestSearch(t *testing.T) {
	api := newFakeAPI()
	seedDex(api)
	svc := newTestService(api)
	ctx := context.Background()

	t.Run("substring matches drop alternate forms", func(t *testing.T) {
		res := svc.Search(ctx, "  SAUR ")
		assert.Equal(t, []int{1, 2, 3}, cardIDs(res.Items))
		assert.Empty(t, res.Suggestions)
	})

	t.Run("empty query", func(t *testing.T) {
		res := svc.Search(ctx, "   ")
		assert.NotNil(t, res.Items)
		assert.Empty(t, res.Items)
	})

	t.Run("exact lookup fallback", func(t *testing.T) {
		api.addHidden(mkPokemon(25, "pikachu", 25, "electric"))
		res := svc.Search(ctx, "Pikachu")
		assert.Equal(t, []int{25}, cardIDs(res.Items))
	})

	t.Run("exact lookup of alternate form is dropped", func(t *testing.T) {
		api.addHidden(mkPokemon(10080, "pikachu-rock-star", 25, "electric"))
		res := svc.Search(ctx, "pikachu-rock-star")
		assert.Empty(t, res.Items)
	})

	t.Run("suggestions when nothing is found", func(t *testing.T) {
		res := svc.Search(ctx, "bulbasar")
		assert.Empty(t, res.Items)
		assert.Equal(t, []string{"bulbasaur"}, res.Suggestions)
	})

	t.Run("index failure is empty", func(t *testing.T) {
		api.listErr = errors.New("boom")
		defer func() { api.listErr = nil }()
		res := svc.Search(ctx, "saur")
		assert.Empty(t, res.Items)
	})
}

func TestSearch_CapsMatches(t *testing.T) {
	api := newFakeAPI()
	for i := 1; i <= 60; i++ {
		api.addPokemon(mkPokemon(i, fmt.Sprintf("testmon-%d", i), i, "normal"))
	}
	svc := newTestService(api)

	res := svc.Search(context.Background(), "testmon")

	assert.Len(t, res.Items, maxSearchResults)
	require.Len(t, api.batches, 1)
	assert.Len(t, api.batches[0], maxSearchResults)
	assert.Equal(t, "testmon-1", api.batches[0][0])
}

func TestSearch_UsesIndexSize(t *testing.T) {
	api := newFakeAPI()
	seedDex(api)
	svc := newTestService(api)
	svc.SearchIndexSize = 2

	// venusaur sits past the index window, so only the exact lookup finds it
	res := svc.Search(context.Background(), "venusaur")
	assert.Equal(t, []int{3}, cardIDs(res.Items))
	assert.Empty(t, api.batches)
}

func TestByType(t *testing.T) {
	api := newFakeAPI()
	seedDex(api)
	svc := newTestService(api)

	members := svc.ByType(context.Background(), "Grass")
	require.Len(t, members, 3)
	assert.Equal(t, "venusaur", members[2].Name)

	assert.Empty(t, svc.ByType(context.Background(), "shadow"))
}

func TestFilterSearch(t *testing.T) {
	api := newFakeAPI()
	seedDex(api)
	api.addPokemon(mkPokemon(152, "chikorita", 152, "grass"))
	api.types["grass"] = append(api.types["grass"], api.index[len(api.index)-1])
	api.addPokemon(mkPokemon(29, "nidoran-f", 29, "poison"))
	api.addPokemon(mkPokemon(122, "mr-mime", 122, "psychic", "fairy"))
	api.types["psychic"] = []models.NamedResource{{Name: "mr-mime", URL: pokemonURL(122)}}
	svc := newTestService(api)
	ctx := context.Background()

	tests := []struct {
		name   string
		filter Filter
		want   []int
	}{
		{"number only", Filter{Number: "2"}, []int{2}},
		{"number with matching name", Filter{Number: "2", Name: "ivy"}, []int{2}},
		{"number with other name", Filter{Number: "2", Name: "char"}, []int{}},
		{"invalid number", Filter{Number: "abc"}, []int{}},
		{"zero number", Filter{Number: "0"}, []int{}},
		{"type only sorted by id", Filter{Type: "grass"}, []int{1, 2, 3, 152}},
		{"type with generation", Filter{Type: "grass", Generation: "gen2"}, []int{152}},
		{"type with name", Filter{Type: "GRASS", Name: "saur"}, []int{1, 2, 3}},
		{"name only", Filter{Name: "vulpix"}, []int{37}},
		{"name only without hyphen", Filter{Name: "mrmime"}, []int{122}},
		{"name only with gender suffix", Filter{Name: "nidoran-f"}, []int{29}},
		{"hyphenated name with type", Filter{Name: "mr-mime", Type: "psychic"}, []int{122}},
		{"unhyphenated name with type", Filter{Name: "mrmime", Type: "psychic"}, []int{}},
		{"name with type", Filter{Name: "saur", Type: "fire"}, []int{}},
		{"generation only", Filter{Generation: "gen1"}, []int{1, 2, 3, 29, 37, 38, 122}},
		{"generation with type", Filter{Generation: "gen1", Type: "fire"}, []int{37, 38}},
		{"unknown generation", Filter{Generation: "gen42"}, []int{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cardIDs(svc.FilterSearch(ctx, tt.filter)))
		})
	}
}

func TestFilter_Empty(t *testing.T) {
	assert.True(t, Filter{}.Empty())
	assert.True(t, Filter{Name: "  "}.Empty())
	assert.False(t, Filter{Generation: "gen3"}.Empty())
}

func TestGenerations(t *testing.T) {
	gens := Generations()
	require.Len(t, gens, 9)
	assert.Equal(t, Generation{"Generation I", "gen1", 1, 151}, gens[0])
	assert.Equal(t, Generation{"Generation IX", "gen9", 906, 1025}, gens[8])

	for i := 1; i < len(gens); i++ {
		assert.Equal(t, gens[i-1].MaxID+1, gens[i].MinID)
	}

	g, ok := GenerationByValue("gen4")
	require.True(t, ok)
	assert.True(t, g.Contains(387))
	assert.True(t, g.Contains(493))
	assert.False(t, g.Contains(494))

	gens[0].MinID = 99
	assert.Equal(t, 1, Generations()[0].MinID)
}
