package main

import (
	"fmt"
	"io"
	"strings"

	"dexhub/internal/dex"
	"dexhub/internal/evolution"
	"dexhub/pkg/models"
)

// renderEvolution prints one line per level; alternatives share a line.
func renderEvolution(w io.Writer, stages []models.EvolutionStage) {
	for level := 0; ; level++ {
		row := evolution.StagesAtLevel(stages, level)
		if len(row) == 0 {
			return
		}
		parts := make([]string, 0, len(row))
		for _, s := range row {
			label := fmt.Sprintf("#%d %s", s.ID, s.Name)
			if s.EvolutionMethod != "" {
				label += " [" + s.EvolutionMethod + "]"
			}
			parts = append(parts, label)
		}
		prefix := ""
		if level > 0 {
			prefix = strings.Repeat("  ", level-1) + "-> "
		}
		fmt.Fprintln(w, prefix+strings.Join(parts, " | "))
	}
}

func renderCards(w io.Writer, cards []models.PokemonCard) {
	for _, c := range cards {
		fmt.Fprintf(w, "#%-5d %-20s %s\n", c.ID, c.Name, strings.Join(c.Types, "/"))
	}
}

func renderSearch(w io.Writer, res dex.SearchResult) {
	if len(res.Items) > 0 {
		renderCards(w, res.Items)
		return
	}
	fmt.Fprintln(w, "No results.")
	if len(res.Suggestions) > 0 {
		fmt.Fprintf(w, "Did you mean: %s?\n", strings.Join(res.Suggestions, ", "))
	}
}

func renderDetail(w io.Writer, d *models.PokemonDetail) {
	fmt.Fprintf(w, "#%d %s", d.Pokemon.ID, d.DisplayName)
	if d.Category != "" {
		fmt.Fprintf(w, " (%s)", d.Category)
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Types: %s\n", strings.Join(d.Pokemon.TypeNames(), "/"))
	if d.HasBasePokemon {
		fmt.Fprintf(w, "Base form: #%d\n", d.BaseID)
	}
	if len(d.Descriptions) > 0 {
		fmt.Fprintf(w, "%s (%s)\n", d.Descriptions[0].Text, d.Descriptions[0].Version)
	}

	if len(d.Abilities) > 0 {
		fmt.Fprintln(w, "Abilities:")
		for _, a := range d.Abilities {
			hidden := ""
			if a.Hidden {
				hidden = " (hidden)"
			}
			fmt.Fprintf(w, "  %s%s: %s\n", a.Name, hidden, a.Description)
		}
	}

	if len(d.Variants) > 1 {
		fmt.Fprintln(w, "Forms:")
		for _, v := range d.Variants {
			fmt.Fprintf(w, "  #%d %s (%s)\n", v.ID, v.Name, v.Label)
		}
	}

	if len(d.EvolutionLine) > 0 {
		fmt.Fprintln(w, "Evolution:")
		renderEvolution(w, d.EvolutionLine)
	}
}
