// Package main is the entry point for poorguelike.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"golang.org/x/term"

	"github.com/samdwyer/poorguelike/internal/game"
	"github.com/samdwyer/poorguelike/internal/logger"
	"github.com/samdwyer/poorguelike/internal/telemetry"
	"github.com/samdwyer/poorguelike/internal/ui"
)

// envLogFile redirects logs to a file while the terminal screen is active.
const envLogFile = "POORGUELIKE_LOG_FILE"

func main() {
	// Load .env file for local development
	envErr := godotenv.Load()

	cfg, err := game.ConfigFromEnv(os.LookupEnv)
	if err != nil {
		logger.Log.Fatalf("Invalid configuration: %v", err)
	}

	// Dump when asked to or when stdout is not a terminal.
	dump := cfg.Dump || !term.IsTerminal(int(os.Stdout.Fd()))

	logOut, closeLog := logOutput(dump)
	defer closeLog()
	logger.Init(logOut)
	log := logger.Component("main")

	if envErr != nil {
		// Not fatal - env vars might be set directly
		log.WithError(envErr).Debug(".env file not loaded")
	}

	setupOTelEnv()

	ctx := context.Background()

	if os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") == "" {
		log.Debug("No OTLP endpoint configured, tracing disabled")
	} else if shutdown, err := telemetry.Setup(ctx); err != nil {
		log.WithError(err).Warn("Telemetry setup failed, running without observability")
	} else {
		defer func() {
			if err := shutdown(ctx); err != nil {
				log.WithError(err).Error("Error shutting down telemetry")
			}
		}()
	}

	g, err := game.New(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to initialize game: %v", err)
	}

	if dump {
		opts := ui.DumpOptions{Color: term.IsTerminal(int(os.Stdout.Fd())), Kinds: g.Kinds()}
		if err := ui.Dump(os.Stdout, g.World(), g.Terrains(), opts); err != nil {
			log.Fatalf("Dump failed: %v", err)
		}
		return
	}

	screen, err := ui.NewScreen()
	if err != nil {
		log.Fatalf("Failed to initialize screen: %v", err)
	}
	if err := g.Run(ctx, screen); err != nil {
		log.Fatalf("Game error: %v", err)
	}
}

// logOutput picks where logs go. The interactive screen owns the terminal,
// so logs there go to POORGUELIKE_LOG_FILE or nowhere.
func logOutput(dump bool) (io.Writer, func()) {
	if dump {
		return os.Stderr, func() {}
	}
	path := os.Getenv(envLogFile)
	if path == "" {
		return io.Discard, func() {}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return io.Discard, func() {}
	}
	return f, func() { _ = f.Close() }
}

// setupOTelEnv configures OTEL environment variables from our custom env vars.
func setupOTelEnv() {
	apiKey := os.Getenv("HONEYCOMB_POORGUELIKE_API_KEY")
	if apiKey == "" {
		return
	}
	if os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") == "" {
		os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")
	}
	dataset := os.Getenv("HONEYCOMB_POORGUELIKE_DATASET")
	if dataset == "" {
		dataset = "poorguelike"
	}
	os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
		fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
}
