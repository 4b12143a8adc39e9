package domain

import (
	"fmt"
	"strings"
)

// Flashcard is a single question/answer pair generated from study text.
// Cards within a batch keep their generation order; the order carries no
// semantic ranking.
type Flashcard struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// NewFlashcard creates a Flashcard with the given question and answer.
// Returns an error if either field is empty after trimming.
func NewFlashcard(question, answer string) (Flashcard, error) {
	card := Flashcard{
		Question: question,
		Answer:   answer,
	}

	if err := card.Validate(); err != nil {
		return Flashcard{}, err
	}

	return card, nil
}

// Validate checks that both sides of the card carry content.
func (c Flashcard) Validate() error {
	if strings.TrimSpace(c.Question) == "" {
		return fmt.Errorf("%w: %w", ErrValidation, ErrEmptyQuestion)
	}

	if strings.TrimSpace(c.Answer) == "" {
		return fmt.Errorf("%w: %w", ErrValidation, ErrEmptyAnswer)
	}

	return nil
}
