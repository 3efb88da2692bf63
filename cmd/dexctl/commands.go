package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

var evolutionCmd = &cobra.Command{
	Use:   "evolution <id|name>",
	Short: "Print the evolution line of a creature",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newService(cmd)
		if err != nil {
			return err
		}
		stages := svc.EvolutionLine(cmd.Context(), args[0])
		if jsonOutput(cmd) {
			return printJSON(cmd.OutOrStdout(), stages)
		}
		if len(stages) == 0 {
			fmt.Fprintf(cmd.OutOrStdout(), "No evolution line found for %q.\n", args[0])
			return nil
		}
		renderEvolution(cmd.OutOrStdout(), stages)
		return nil
	},
}

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search creatures by name",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newService(cmd)
		if err != nil {
			return err
		}
		res := svc.Search(cmd.Context(), args[0])
		if jsonOutput(cmd) {
			return printJSON(cmd.OutOrStdout(), res)
		}
		renderSearch(cmd.OutOrStdout(), res)
		return nil
	},
}

var showCmd = &cobra.Command{
	Use:   "show <id|name>",
	Short: "Print the detail page of a creature",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newService(cmd)
		if err != nil {
			return err
		}
		d, err := svc.Details(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		if jsonOutput(cmd) {
			return printJSON(cmd.OutOrStdout(), d)
		}
		renderDetail(cmd.OutOrStdout(), d)
		return nil
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print one page of the index",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newService(cmd)
		if err != nil {
			return err
		}
		limit, _ := cmd.Flags().GetInt("limit")
		offset, _ := cmd.Flags().GetInt("offset")
		cards := svc.List(cmd.Context(), limit, offset)
		if jsonOutput(cmd) {
			return printJSON(cmd.OutOrStdout(), cards)
		}
		renderCards(cmd.OutOrStdout(), cards)
		return nil
	},
}

func init() {
	listCmd.Flags().Int("limit", 20, "Page size")
	listCmd.Flags().Int("offset", 0, "Index offset")
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
