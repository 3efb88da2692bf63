package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"dexhub/internal/dex"
	"dexhub/internal/logging"
	"dexhub/internal/pokeapi"
	"dexhub/pkg/utils"
)

var rootCmd = &cobra.Command{
	Use:   "dexctl",
	Short: "dexctl browses PokeAPI from the terminal",
	Long: `dexctl prints evolution lines, search results and detail pages built from
the public PokeAPI, and can follow a dexhub browsing session live.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("config", "dexhub.yaml", "Path to the YAML config file")
	rootCmd.PersistentFlags().Bool("json", false, "Print raw JSON instead of text")
	rootCmd.PersistentFlags().Bool("verbose", false, "Log upstream failures to stderr")

	rootCmd.AddCommand(evolutionCmd, searchCmd, showCmd, listCmd, watchCmd)
}

func loadConfig(cmd *cobra.Command) (utils.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	return utils.LoadConfig(path)
}

// newService wires a PokeAPI client from the config flags.
func newService(cmd *cobra.Command) (*dex.Service, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	log := logging.NewNop()
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		log = logging.New(slog.LevelDebug)
	}

	client := pokeapi.NewClient(cfg.PokeAPI.BaseURL, cfg.PokeAPI.Timeout)
	if cfg.PokeAPI.MaxConcurrency > 0 {
		client.MaxConcurrency = cfg.PokeAPI.MaxConcurrency
	}
	svc := dex.NewService(client, log)
	if cfg.PokeAPI.SearchIndexSize > 0 {
		svc.SearchIndexSize = cfg.PokeAPI.SearchIndexSize
	}
	return svc, nil
}

func jsonOutput(cmd *cobra.Command) bool {
	v, _ := cmd.Flags().GetBool("json")
	return v
}
