package api

import (
	"errors"
	"net/http"

	"github.com/cardforge/cardforge/internal/domain"
	"github.com/cardforge/cardforge/internal/generation"
)

// MapErrorToStatusCode maps pipeline errors to HTTP status codes without
// leaking internal error types or messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Input validation errors
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrSourceTextTooShort),
		errors.Is(err, domain.ErrCardCountOutOfRange):
		return http.StatusBadRequest

	// The provider refused the content
	case errors.Is(err, generation.ErrContentBlocked):
		return http.StatusUnprocessableEntity

	// Upstream provider faults and undecodable replies
	case errors.Is(err, generation.ErrTransientFailure),
		errors.Is(err, generation.ErrInvalidResponse),
		errors.Is(err, generation.ErrGenerationFailed):
		return http.StatusBadGateway

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly message for the
// error. Validation messages are passed through since they describe the
// caller's own input; everything else gets a generic description.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case errors.Is(err, domain.ErrSourceTextTooShort):
		return "Source text is too short: provide at least 50 characters of study material"

	case errors.Is(err, domain.ErrCardCountOutOfRange):
		return "Card count must be between 1 and 200"

	case errors.Is(err, domain.ErrValidation):
		return "Invalid input"

	case errors.Is(err, generation.ErrContentBlocked):
		return "The study material was blocked by the provider's safety filters"

	case errors.Is(err, generation.ErrInvalidResponse):
		return "The model returned a response that could not be decoded into flashcards"

	case errors.Is(err, generation.ErrTransientFailure),
		errors.Is(err, generation.ErrGenerationFailed):
		return "Flashcard generation failed: the provider is unavailable"

	default:
		return "An unexpected error occurred"
	}
}
