package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// This is often wrapped with a more specific error message.
	ErrValidation = errors.New("validation failed")

	// ErrSourceTextTooShort is returned when the study text is shorter than
	// MinSourceTextLength characters.
	ErrSourceTextTooShort = errors.New("source text is too short")

	// ErrCardCountOutOfRange is returned when the requested card count is
	// outside [MinCardCount, MaxCardCount].
	ErrCardCountOutOfRange = errors.New("card count out of range")

	// ErrEmptyQuestion is returned when a flashcard question is empty after trimming.
	ErrEmptyQuestion = errors.New("flashcard question cannot be empty")

	// ErrEmptyAnswer is returned when a flashcard answer is empty after trimming.
	ErrEmptyAnswer = errors.New("flashcard answer cannot be empty")
)
