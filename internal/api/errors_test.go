package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cardforge/cardforge/internal/domain"
	"github.com/cardforge/cardforge/internal/generation"
)

func TestMapErrorToStatusCode(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		err  error
		want int
	}{
		{
			name: "source text too short",
			err:  fmt.Errorf("%w: %w", domain.ErrValidation, domain.ErrSourceTextTooShort),
			want: http.StatusBadRequest,
		},
		{
			name: "card count out of range",
			err:  domain.ErrCardCountOutOfRange,
			want: http.StatusBadRequest,
		},
		{
			name: "content blocked",
			err:  generation.ErrContentBlocked,
			want: http.StatusUnprocessableEntity,
		},
		{
			name: "transient provider failure",
			err:  fmt.Errorf("generate flashcards: %w", generation.ErrTransientFailure),
			want: http.StatusBadGateway,
		},
		{
			name: "decode failure",
			err:  &generation.DecodeError{Raw: "oops", Err: errors.New("bad json")},
			want: http.StatusBadGateway,
		},
		{
			name: "unknown error",
			err:  errors.New("something else"),
			want: http.StatusInternalServerError,
		},
		{
			name: "nil error",
			err:  nil,
			want: http.StatusInternalServerError,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, MapErrorToStatusCode(tc.err))
		})
	}
}

func TestGetSafeErrorMessageNeverLeaksInternals(t *testing.T) {
	t.Parallel()

	internal := errors.New("pgx: connection to 10.0.0.5 refused")
	msg := GetSafeErrorMessage(fmt.Errorf("wrapped: %w", internal))
	assert.NotContains(t, msg, "10.0.0.5", "Safe messages must not leak internal details")
	assert.Equal(t, "An unexpected error occurred", msg)
}

func TestGetSafeErrorMessageByType(t *testing.T) {
	t.Parallel()

	assert.Contains(t, GetSafeErrorMessage(domain.ErrSourceTextTooShort), "at least 50 characters")
	assert.Contains(t, GetSafeErrorMessage(domain.ErrCardCountOutOfRange), "between 1 and 200")
	assert.Contains(t, GetSafeErrorMessage(generation.ErrContentBlocked), "safety filters")
	assert.Contains(t, GetSafeErrorMessage(generation.ErrInvalidResponse), "could not be decoded")
	assert.Contains(t, GetSafeErrorMessage(generation.ErrTransientFailure), "unavailable")
	assert.Equal(t, "An unexpected error occurred", GetSafeErrorMessage(nil))
}
