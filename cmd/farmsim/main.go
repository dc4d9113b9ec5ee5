// Package main is the entry point for farmsim.
package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/samdwyer/farmsim/internal/game"
	"github.com/samdwyer/farmsim/internal/save"
	"github.com/samdwyer/farmsim/internal/telemetry"
)

const appName = "farmsim"

func main() {
	// Load .env file for local development
	// This makes HONEYCOMB_FARMSIM_API_KEY available
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}

	setupOTelEnv()

	cfg, err := loadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	closeLog, err := setupLogging(cfg.LogFile)
	if err != nil {
		log.Fatalf("Failed to open log file: %v", err)
	}
	defer closeLog()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	shutdown, err := telemetry.Setup(ctx, cfg.Telemetry)
	if err != nil {
		// Continue without telemetry - game still works
		slog.Warn("telemetry setup failed, running without tracing", "error", err)
	} else {
		defer func() {
			if err := shutdown(context.WithoutCancel(ctx)); err != nil {
				slog.Error("error shutting down telemetry", "error", err)
			}
		}()
	}

	var store *save.Store
	if cfg.SaveSlot != "" {
		store, err = save.Open(appName, cfg.SaveSlot)
		if err != nil {
			slog.Warn("saving disabled", "slot", cfg.SaveSlot, "error", err)
			cfg.Resume = false
		}
	}

	g, err := game.New(cfg, store)
	if err != nil {
		log.Fatalf("Failed to initialize game: %v", err)
	}

	if err := g.Run(ctx); err != nil {
		log.Fatalf("Game error: %v", err)
	}
}

// loadConfig reads FARMSIM_CONFIG (default farmsim.yaml) and applies
// FARMSIM_SEED on top.
func loadConfig() (game.Config, error) {
	path := os.Getenv("FARMSIM_CONFIG")
	if path == "" {
		path = "farmsim.yaml"
	}
	cfg, err := game.LoadConfig(path)
	if err != nil {
		return cfg, err
	}

	if v := os.Getenv("FARMSIM_SEED"); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return cfg, fmt.Errorf("invalid FARMSIM_SEED %q: %w", v, err)
		}
		cfg.Seed = seed
	}
	return cfg, nil
}

// setupLogging sends slog output to path. The terminal belongs to the game,
// so an empty path discards logs instead of writing to stderr.
func setupLogging(path string) (func(), error) {
	var w io.Writer = io.Discard
	closeFn := func() {}

	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, err
		}
		w = f
		closeFn = func() { f.Close() }
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})))
	return closeFn, nil
}

// setupOTelEnv configures OTEL environment variables from our custom env vars.
func setupOTelEnv() {
	if os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") == "" {
		os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")
	}

	// The .env file may hold an unexpanded variable reference, so the
	// headers are built here.
	apiKey := os.Getenv("HONEYCOMB_FARMSIM_API_KEY")
	dataset := os.Getenv("HONEYCOMB_FARMSIM_DATASET")
	if dataset == "" {
		dataset = appName
	}
	if apiKey != "" {
		os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
			fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
	}
}
