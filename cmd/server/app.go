package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/cardforge/cardforge/internal/config"
	"github.com/cardforge/cardforge/internal/export"
	"github.com/cardforge/cardforge/internal/platform/gemini"
	"github.com/cardforge/cardforge/internal/service"
)

// application holds the wired-up dependencies for the server.
type application struct {
	config            *config.Config
	logger            *slog.Logger
	exporter          *export.Writer
	generationService *service.GenerationService
}

// newApplication builds the application's dependency graph: the Gemini
// generator, the export writer, and the generation service on top of them.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*application, error) {
	generator, err := gemini.NewGenerator(ctx, logger, cfg.LLM)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Gemini generator: %w", err)
	}

	exporter, err := export.NewWriter(cfg.Export, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize export writer: %w", err)
	}

	generationService, err := service.NewGenerationService(generator, exporter, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize generation service: %w", err)
	}

	return &application{
		config:            cfg,
		logger:            logger,
		exporter:          exporter,
		generationService: generationService,
	}, nil
}
