// Package main implements the entry point for the cardforge API server,
// which turns blocks of study text into question/answer flashcards using
// an LLM and exports them as CSV and JSON.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"

	"github.com/cardforge/cardforge/internal/config"
	"github.com/cardforge/cardforge/internal/platform/logger"
)

func main() {
	app, err := initializeApp(context.Background())
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	if err := app.startHTTPServer(context.Background(), app.setupRouter()); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

// initializeApp loads configuration, sets up logging and wires the
// application components.
func initializeApp(ctx context.Context) (*application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger := logger.Setup(cfg.Server)

	slog.Info("server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"model", cfg.LLM.ModelName,
		"export_dir", cfg.Export.OutputDir)

	app, err := newApplication(ctx, cfg, appLogger)
	if err != nil {
		return nil, err
	}

	return app, nil
}
