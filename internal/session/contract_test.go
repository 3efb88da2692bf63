package session

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dexhub/pkg/models"
)

// runStoreContract exercises the behavior every Store backend must share.
func runStoreContract(t *testing.T, store Store) {
	t.Helper()
	ctx := context.Background()

	t.Run("save and load", func(t *testing.T) {
		st := &models.SearchState{
			NameFilter:     "saur",
			TypeFilter:     "grass",
			HasSearched:    true,
			CurrentPage:    2,
			ScrollPosition: 640,
			Results: []models.PokemonCard{
				{ID: 1, Name: "Bulbasaur", ImageURL: "1.png", Types: []string{"grass", "poison"}},
			},
		}
		require.NoError(t, store.Save(ctx, "s-1", st))

		got, err := store.Load(ctx, "s-1")
		require.NoError(t, err)
		assert.Equal(t, "saur", got.NameFilter)
		assert.Equal(t, "grass", got.TypeFilter)
		assert.True(t, got.HasSearched)
		assert.Equal(t, 2, got.CurrentPage)
		assert.Equal(t, 640, got.ScrollPosition)
		assert.Equal(t, st.Results, got.Results)
	})

	t.Run("overwrite", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, "s-1", &models.SearchState{NameFilter: "pika"}))
		got, err := store.Load(ctx, "s-1")
		require.NoError(t, err)
		assert.Equal(t, "pika", got.NameFilter)
		assert.Empty(t, got.Results)
	})

	t.Run("load missing", func(t *testing.T) {
		_, err := store.Load(ctx, "nope")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, "s-2", &models.SearchState{}))
		require.NoError(t, store.Delete(ctx, "s-2"))
		_, err := store.Load(ctx, "s-2")
		assert.ErrorIs(t, err, ErrNotFound)
		require.NoError(t, store.Delete(ctx, "s-2"), "deleting twice is fine")
	})

	t.Run("list", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, "s-3", &models.SearchState{}))
		require.NoError(t, store.Save(ctx, "s-0", &models.SearchState{}))
		ids, err := store.List(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"s-0", "s-1", "s-3"}, ids)
	})

	t.Run("ping", func(t *testing.T) {
		assert.NoError(t, store.Ping(ctx))
	})
}
