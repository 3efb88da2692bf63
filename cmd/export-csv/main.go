package main

import (
	"context"
	"encoding/csv"
	"flag"
	"io"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"dexhub/internal/dex"
	"dexhub/internal/evolution"
	"dexhub/internal/logging"
	"dexhub/internal/pokeapi"
	"dexhub/pkg/models"
	"dexhub/pkg/utils"
)

func main() {
	var (
		configPath = flag.String("config", "dexhub.yaml", "path to YAML config")
		from       = flag.Int("from", 1, "first national dex number")
		to         = flag.Int("to", 151, "last national dex number")
		out        = flag.String("out", "data/evolution_lines.csv", "output CSV path")
	)
	flag.Parse()

	if *from < 1 || *to < *from {
		log.Fatalf("invalid range %d..%d", *from, *to)
	}

	cfg, err := utils.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	client := pokeapi.NewClient(cfg.PokeAPI.BaseURL, cfg.PokeAPI.Timeout)
	svc := dex.NewService(client, logging.New(logging.ParseLevel(cfg.Log.Level)))

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
	defer cancel()

	if err := os.MkdirAll(filepath.Dir(*out), 0o755); err != nil {
		log.Fatalf("create output dir: %v", err)
	}
	f, err := os.Create(*out)
	if err != nil {
		log.Fatalf("create %s: %v", *out, err)
	}
	defer f.Close()

	chains, err := exportEvolutionLines(ctx, svc, *from, *to, f)
	if err != nil {
		log.Fatalf("export evolution lines failed: %v", err)
	}
	log.Printf("exported %d evolution lines to %s", chains, *out)
}

// exportEvolutionLines writes one row per stage. A chain reached from several
// of its members is written once, under the first member that reached it.
func exportEvolutionLines(ctx context.Context, svc *dex.Service, from, to int, out io.Writer) (int, error) {
	w := csv.NewWriter(out)
	if err := w.Write([]string{"chain", "level", "id", "name", "species", "method"}); err != nil {
		return 0, err
	}

	seen := make(map[string]bool)
	chains := 0
	for id := from; id <= to; id++ {
		if err := ctx.Err(); err != nil {
			return chains, err
		}
		stages := svc.EvolutionLine(ctx, strconv.Itoa(id))
		if len(stages) == 0 {
			continue
		}
		key := chainKey(stages)
		if seen[key] {
			continue
		}
		seen[key] = true
		chains++
		base, _ := evolution.BaseStage(stages)

		for _, s := range stages {
			if err := w.Write([]string{
				strconv.Itoa(base.ID),
				strconv.Itoa(s.Level),
				strconv.Itoa(s.ID),
				s.Name,
				s.Species,
				s.EvolutionMethod,
			}); err != nil {
				return chains, err
			}
		}
	}

	w.Flush()
	return chains, w.Error()
}

func chainKey(stages []models.EvolutionStage) string {
	ids := make([]string, len(stages))
	for i, s := range stages {
		ids[i] = strconv.Itoa(s.ID)
	}
	return strings.Join(ids, ",")
}
