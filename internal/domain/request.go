package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Bounds enforced on a GenerationRequest before any provider call is made.
const (
	// MinSourceTextLength is the minimum number of characters of study text
	// required to produce useful cards.
	MinSourceTextLength = 50

	// MinCardCount and MaxCardCount bound how many cards a single request
	// may ask for.
	MinCardCount = 1
	MaxCardCount = 200
)

// GenerationRequest represents a single user action asking for flashcards
// to be generated from a block of study text. It is immutable once
// constructed and consumed exactly once by the generation pipeline.
type GenerationRequest struct {
	ID         uuid.UUID `json:"id"`
	SourceText string    `json:"source_text"`
	CardCount  int       `json:"card_count"`
	CreatedAt  time.Time `json:"created_at"`
}

// NewGenerationRequest creates a GenerationRequest with the given source
// text and card count. It generates a new UUID for the request ID and sets
// the creation timestamp. Returns an error if validation fails.
func NewGenerationRequest(sourceText string, cardCount int) (GenerationRequest, error) {
	req := GenerationRequest{
		ID:         uuid.New(),
		SourceText: sourceText,
		CardCount:  cardCount,
		CreatedAt:  time.Now().UTC(),
	}

	if err := req.Validate(); err != nil {
		return GenerationRequest{}, err
	}

	return req, nil
}

// Validate checks that the request is within the accepted bounds.
// The length check counts characters after trimming so that a block of
// whitespace cannot satisfy the minimum.
func (r GenerationRequest) Validate() error {
	if len(strings.TrimSpace(r.SourceText)) < MinSourceTextLength {
		return fmt.Errorf("%w: %w: need at least %d characters",
			ErrValidation, ErrSourceTextTooShort, MinSourceTextLength)
	}

	if r.CardCount < MinCardCount || r.CardCount > MaxCardCount {
		return fmt.Errorf("%w: %w: got %d, want %d-%d",
			ErrValidation, ErrCardCountOutOfRange, r.CardCount, MinCardCount, MaxCardCount)
	}

	return nil
}
