package generation

import (
	"context"

	"github.com/cardforge/cardforge/internal/domain"
)

// Generator defines the interface for generating flashcards from study
// text. This interface serves as a boundary between the application core
// and external AI/LLM services.
type Generator interface {
	// GenerateCards creates flashcards for the given request.
	// It returns the full decoded batch in generation order, or an error if
	// any stage of the pipeline fails. There is no partial success: either
	// the whole batch decodes or the request fails.
	//
	// Errors match the sentinels in errors.go via errors.Is.
	GenerateCards(ctx context.Context, req domain.GenerationRequest) ([]domain.Flashcard, error)
}
