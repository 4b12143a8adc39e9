package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cardforge/cardforge/internal/config"
	"github.com/cardforge/cardforge/internal/domain"
	"github.com/cardforge/cardforge/internal/export"
	"github.com/cardforge/cardforge/internal/generation"
)

// photosynthesisText is an 80-character paragraph used across the pipeline
// tests.
const photosynthesisText = "Photosynthesis converts light energy into glucose inside plant cell chloroplasts."

// mockGenerator records calls and replays a scripted result.
type mockGenerator struct {
	calls   int
	lastReq domain.GenerationRequest
	cards   []domain.Flashcard
	err     error
}

func (m *mockGenerator) GenerateCards(
	ctx context.Context,
	req domain.GenerationRequest,
) ([]domain.Flashcard, error) {
	m.calls++
	m.lastReq = req
	return m.cards, m.err
}

func newTestService(t *testing.T, gen generation.Generator) *GenerationService {
	t.Helper()

	exporter, err := export.NewWriter(config.ExportConfig{OutputDir: t.TempDir()}, slog.Default())
	require.NoError(t, err)

	svc, err := NewGenerationService(gen, exporter, slog.Default())
	require.NoError(t, err)
	return svc
}

func TestGenerateFlashcardsSuccess(t *testing.T) {
	t.Parallel()

	want := []domain.Flashcard{
		{Question: "What does photosynthesis convert?", Answer: "Light energy into glucose."},
		{Question: "Where does photosynthesis happen?", Answer: "In chloroplasts."},
		{Question: "What kind of cells contain chloroplasts?", Answer: "Plant cells."},
	}
	gen := &mockGenerator{cards: want}
	svc := newTestService(t, gen)

	cards, result, err := svc.GenerateFlashcards(context.Background(), photosynthesisText, 3)
	require.NoError(t, err)
	assert.Equal(t, want, cards, "Cards should come back in generation order")
	assert.Equal(t, 1, gen.calls)
	assert.Equal(t, photosynthesisText, gen.lastReq.SourceText)
	assert.Equal(t, 3, gen.lastReq.CardCount)

	assert.FileExists(t, result.CSVPath, "CSV export should be written")
	assert.FileExists(t, result.JSONPath, "JSON export should be written")
	assert.True(t, strings.HasPrefix(result.BaseName, "flashcards_"))
}

func TestGenerateFlashcardsValidationShortCircuits(t *testing.T) {
	t.Parallel()

	gen := &mockGenerator{}
	svc := newTestService(t, gen)

	// 40 characters: rejected before the provider is ever invoked.
	shortText := strings.Repeat("x", 40)
	_, _, err := svc.GenerateFlashcards(context.Background(), shortText, 3)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSourceTextTooShort)
	assert.Zero(t, gen.calls, "No provider call may be made for invalid input")

	_, _, err = svc.GenerateFlashcards(context.Background(), photosynthesisText, 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCardCountOutOfRange)
	assert.Zero(t, gen.calls, "No provider call may be made for invalid input")
}

func TestGenerateFlashcardsProviderFailure(t *testing.T) {
	t.Parallel()

	gen := &mockGenerator{err: generation.ErrTransientFailure}
	svc := newTestService(t, gen)

	cards, _, err := svc.GenerateFlashcards(context.Background(), photosynthesisText, 3)
	require.Error(t, err)
	assert.Nil(t, cards, "No cards may be returned on provider failure")
	assert.ErrorIs(t, err, generation.ErrTransientFailure)
}

func TestGenerateFlashcardsDecodeFailure(t *testing.T) {
	t.Parallel()

	gen := &mockGenerator{
		err: &generation.DecodeError{Raw: "not json", Err: errors.New("invalid character 'n'")},
	}
	svc := newTestService(t, gen)

	cards, _, err := svc.GenerateFlashcards(context.Background(), photosynthesisText, 3)
	require.Error(t, err)
	assert.Nil(t, cards)
	assert.ErrorIs(t, err, generation.ErrInvalidResponse)
}

func TestNewGenerationServiceValidation(t *testing.T) {
	t.Parallel()

	exporter, err := export.NewWriter(config.ExportConfig{OutputDir: t.TempDir()}, slog.Default())
	require.NoError(t, err)

	_, err = NewGenerationService(nil, exporter, slog.Default())
	assert.Error(t, err, "Nil generator should be rejected")

	_, err = NewGenerationService(&mockGenerator{}, nil, slog.Default())
	assert.Error(t, err, "Nil exporter should be rejected")

	_, err = NewGenerationService(&mockGenerator{}, exporter, nil)
	assert.Error(t, err, "Nil logger should be rejected")
}
