// Package main is the entry point for the eldania content tool.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/fourforfour/eldanialight/internal/config"
	"github.com/fourforfour/eldanialight/internal/logger"
	"github.com/fourforfour/eldanialight/internal/telemetry"
)

func main() {
	os.Exit(run())
}

func run() int {
	// A missing .env is normal outside local development.
	envErr := godotenv.Load()

	cfg := config.Load()
	log := logger.Setup(cfg, os.Stderr)
	if envErr != nil {
		log.Debug(".env file not loaded", "error", envErr)
	}

	ctx := context.Background()

	if cfg.TelemetryEnabled {
		shutdown, err := telemetry.Setup(ctx, telemetry.Options{
			APIKey:  cfg.HoneycombAPIKey,
			Dataset: cfg.HoneycombDataset,
		})
		if err != nil {
			log.Warn("telemetry setup failed, continuing without traces", "error", err)
		} else {
			defer func() {
				if err := shutdown(ctx); err != nil {
					log.Warn("telemetry shutdown failed", "error", err)
				}
			}()
		}
	} else {
		telemetry.Disable()
	}

	root := newRootCmd(cfg, log)
	if err := root.ExecuteContext(ctx); err != nil {
		slog.Debug("command failed", "error", err)
		return 1
	}
	return 0
}
