package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/cardforge/cardforge/internal/domain"
	"github.com/cardforge/cardforge/internal/export"
	"github.com/cardforge/cardforge/internal/generation"
)

// GenerationService orchestrates the flashcard pipeline: validate the
// request, build and send the prompt through the Generator, and hand the
// decoded batch to the export writer. Each invocation is a single linear
// attempt; there is no caching of prior requests.
type GenerationService struct {
	generator generation.Generator
	exporter  *export.Writer
	logger    *slog.Logger
}

// NewGenerationService creates a GenerationService with its dependencies.
func NewGenerationService(
	generator generation.Generator,
	exporter *export.Writer,
	logger *slog.Logger,
) (*GenerationService, error) {
	if generator == nil {
		return nil, errors.New("generator cannot be nil")
	}
	if exporter == nil {
		return nil, errors.New("exporter cannot be nil")
	}
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	return &GenerationService{
		generator: generator,
		exporter:  exporter,
		logger:    logger,
	}, nil
}

// GenerateFlashcards turns study text into a flashcard batch and writes the
// CSV and JSON exports. Validation failures return before any provider call
// is made. Either the whole batch is returned or an error; there is no
// partial result.
func (s *GenerationService) GenerateFlashcards(
	ctx context.Context,
	sourceText string,
	cardCount int,
) ([]domain.Flashcard, export.Result, error) {
	req, err := domain.NewGenerationRequest(sourceText, cardCount)
	if err != nil {
		return nil, export.Result{}, err
	}

	s.logger.InfoContext(ctx, "generating flashcards",
		"request_id", req.ID.String(),
		"source_length", len(req.SourceText),
		"card_count", req.CardCount)

	cards, err := s.generator.GenerateCards(ctx, req)
	if err != nil {
		s.logger.ErrorContext(ctx, "flashcard generation failed",
			"request_id", req.ID.String(),
			"error", err)
		return nil, export.Result{}, fmt.Errorf("generate flashcards: %w", err)
	}

	result, err := s.exporter.Write(cards, req.CreatedAt)
	if err != nil {
		s.logger.ErrorContext(ctx, "flashcard export failed",
			"request_id", req.ID.String(),
			"error", err)
		return nil, export.Result{}, fmt.Errorf("export flashcards: %w", err)
	}

	s.logger.InfoContext(ctx, "flashcards generated",
		"request_id", req.ID.String(),
		"generated", len(cards),
		"export_base", result.BaseName)

	return cards, result, nil
}
