package generation

import (
	"errors"
	"fmt"
)

// Common errors returned by the generation pipeline.
var (
	// ErrGenerationFailed is returned when card generation fails for any general reason.
	ErrGenerationFailed = errors.New("failed to generate cards from text")

	// ErrInvalidResponse is returned when the LLM response cannot be parsed or is malformed.
	ErrInvalidResponse = errors.New("invalid response from language model")

	// ErrContentBlocked is returned when the LLM blocks the content due to safety filters.
	ErrContentBlocked = errors.New("content blocked by language model safety filters")

	// ErrTransientFailure is returned for temporary provider errors that might resolve on retry.
	ErrTransientFailure = errors.New("transient error during card generation")

	// ErrInvalidConfig is returned when the generator configuration is invalid.
	ErrInvalidConfig = errors.New("invalid generator configuration")

	// ErrEmptyPrompt is returned when a prompt is built or sent with no source text.
	ErrEmptyPrompt = errors.New("prompt cannot be empty")
)

// DecodeError describes a provider response that could not be decoded into
// flashcards. It carries the normalized text that failed to decode together
// with the underlying parse or validation error, so callers can log the
// offending payload while surfacing only a sanitized message to users.
type DecodeError struct {
	// Raw is the response text after trimming and fence stripping.
	Raw string

	// Err is the underlying parse or validation error.
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%v: %v", ErrInvalidResponse, e.Err)
}

// Unwrap exposes the underlying parse error for errors.Is/As chains.
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Is reports a match for ErrInvalidResponse so callers can classify decode
// failures without depending on the concrete type.
func (e *DecodeError) Is(target error) bool {
	return target == ErrInvalidResponse
}
