package pokeapi

import (
	"context"

	"golang.org/x/sync/errgroup"

	"dexhub/pkg/models"
)

// FetchPokemonBatch looks up every reference concurrently and waits for all of
// them. A member that fails contributes nothing; the rest keep input order.
func (c *Client) FetchPokemonBatch(ctx context.Context, refs []string) []models.Pokemon {
	results := make([]*models.Pokemon, len(refs))

	var g errgroup.Group
	g.SetLimit(c.limit())
	for i, ref := range refs {
		i, ref := i, ref
		g.Go(func() error {
			p, err := c.GetPokemon(ctx, ref)
			if err != nil {
				return nil
			}
			results[i] = p
			return nil
		})
	}
	_ = g.Wait()

	out := make([]models.Pokemon, 0, len(refs))
	for _, p := range results {
		if p != nil {
			out = append(out, *p)
		}
	}
	return out
}

// FetchAbilityBatch resolves ability descriptions keyed by the reference
// passed in. Failed lookups are absent from the map.
func (c *Client) FetchAbilityBatch(ctx context.Context, refs []string) map[string]*Ability {
	results := make([]*Ability, len(refs))

	var g errgroup.Group
	g.SetLimit(c.limit())
	for i, ref := range refs {
		i, ref := i, ref
		g.Go(func() error {
			a, err := c.GetAbility(ctx, ref)
			if err != nil {
				return nil
			}
			results[i] = a
			return nil
		})
	}
	_ = g.Wait()

	out := make(map[string]*Ability, len(refs))
	for i, a := range results {
		if a != nil {
			out[refs[i]] = a
		}
	}
	return out
}

func (c *Client) limit() int {
	if c.MaxConcurrency <= 0 {
		return 8
	}
	return c.MaxConcurrency
}
