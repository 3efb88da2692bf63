package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"dexhub/internal/dex"
	"dexhub/internal/logging"
	"dexhub/internal/pokeapi"
	"dexhub/internal/session"
	synchub "dexhub/internal/sync"
	"dexhub/pkg/utils"
)

func main() {
	configPath := flag.String("config", envOr("DEXHUB_CONFIG", "dexhub.yaml"), "path to YAML config")
	flag.Parse()

	cfg, err := utils.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	logger := logging.New(logging.ParseLevel(cfg.Log.Level))

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	client := pokeapi.NewClient(cfg.PokeAPI.BaseURL, cfg.PokeAPI.Timeout)
	if cfg.PokeAPI.MaxConcurrency > 0 {
		client.MaxConcurrency = cfg.PokeAPI.MaxConcurrency
	}
	client.Metrics = pokeapi.NewMetrics(reg)

	svc := dex.NewService(client, logger)
	if cfg.PokeAPI.SearchIndexSize > 0 {
		svc.SearchIndexSize = cfg.PokeAPI.SearchIndexSize
	}

	store, err := session.Open(cfg.Session)
	if err != nil {
		log.Fatalf("session store: %v", err)
	}
	defer store.Close()

	hub := synchub.NewHub()

	httpSrv := &http.Server{
		Addr: cfg.Server.Addr,
		Handler: newRouter(deps{
			Dex:      svc,
			Sessions: store,
			Hub:      hub,
			Log:      logger,
			Gatherer: reg,
		}),
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("HTTP API server listening", "addr", cfg.Server.Addr, "session_backend", cfg.Session.Backend)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		logger.Info("shutdown signal received", "signal", sig.String())
	case err := <-errCh:
		logger.Error("server error", "error", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http shutdown error", "error", err)
	}
	logger.Info("server stopped")
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
