package export

import (
	"encoding/csv"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cardforge/cardforge/internal/config"
	"github.com/cardforge/cardforge/internal/domain"
)

var testTime = time.Date(2026, 8, 26, 15, 30, 59, 0, time.UTC)

func newTestWriter(t *testing.T) (*Writer, string) {
	t.Helper()
	dir := t.TempDir()
	w, err := NewWriter(config.ExportConfig{OutputDir: dir}, slog.Default())
	require.NoError(t, err)
	return w, dir
}

func sampleCards() []domain.Flashcard {
	return []domain.Flashcard{
		{Question: "What is photosynthesis?", Answer: "Conversion of light into chemical energy."},
		{Question: "Where does it happen?", Answer: "Chloroplasts."},
		{Question: "What are the products?", Answer: "Glucose and oxygen."},
	}
}

func TestBaseName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "flashcards_20260826_153059", BaseName(testTime))
}

func TestWriteProducesBothFiles(t *testing.T) {
	t.Parallel()

	w, dir := newTestWriter(t)

	result, err := w.Write(sampleCards(), testTime)
	require.NoError(t, err)

	assert.Equal(t, "flashcards_20260826_153059", result.BaseName)
	assert.Equal(t, filepath.Join(dir, "flashcards_20260826_153059.csv"), result.CSVPath)
	assert.Equal(t, filepath.Join(dir, "flashcards_20260826_153059.json"), result.JSONPath)

	assert.FileExists(t, result.CSVPath)
	assert.FileExists(t, result.JSONPath)
}

func TestWriteCSVContent(t *testing.T) {
	t.Parallel()

	w, _ := newTestWriter(t)
	result, err := w.Write(sampleCards(), testTime)
	require.NoError(t, err)

	data, err := os.ReadFile(result.CSVPath)
	require.NoError(t, err)

	// Header plus one line per card.
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	assert.Len(t, lines, 4, "CSV should have a header row and three card rows")
	assert.Equal(t, "question,answer", lines[0])

	records, err := csv.NewReader(strings.NewReader(string(data))).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 4)
	assert.Equal(t, []string{"What is photosynthesis?", "Conversion of light into chemical energy."}, records[1])
}

func TestWriteCSVEscaping(t *testing.T) {
	t.Parallel()

	w, _ := newTestWriter(t)
	cards := []domain.Flashcard{
		{Question: `Contains "quotes", commas`, Answer: "and\nnewlines"},
	}

	result, err := w.Write(cards, testTime)
	require.NoError(t, err)

	f, err := os.Open(result.CSVPath)
	require.NoError(t, err)
	defer func() { require.NoError(t, f.Close()) }()

	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, `Contains "quotes", commas`, records[1][0], "Quotes and commas should round-trip")
	assert.Equal(t, "and\nnewlines", records[1][1], "Newlines should round-trip")
}

func TestWriteJSONContent(t *testing.T) {
	t.Parallel()

	w, _ := newTestWriter(t)
	cards := sampleCards()

	result, err := w.Write(cards, testTime)
	require.NoError(t, err)

	data, err := os.ReadFile(result.JSONPath)
	require.NoError(t, err)

	var decoded []domain.Flashcard
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, cards, decoded, "JSON export should round-trip the batch")

	// Pretty-printed with 2-space indentation.
	assert.Contains(t, string(data), "\n  {", "JSON export should be indented with two spaces")
}

func TestWriteCreatesOutputDir(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "nested", "out")
	w, err := NewWriter(config.ExportConfig{OutputDir: dir}, slog.Default())
	require.NoError(t, err)

	_, err = w.Write(sampleCards(), testTime)
	require.NoError(t, err)
	assert.DirExists(t, dir, "Output directory should be created on first use")
}

func TestWriteOverwritesSameName(t *testing.T) {
	t.Parallel()

	w, _ := newTestWriter(t)

	_, err := w.Write(sampleCards(), testTime)
	require.NoError(t, err)

	replacement := []domain.Flashcard{{Question: "Only one", Answer: "card now"}}
	result, err := w.Write(replacement, testTime)
	require.NoError(t, err)

	data, err := os.ReadFile(result.JSONPath)
	require.NoError(t, err)

	var decoded []domain.Flashcard
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, replacement, decoded, "Same timestamp should overwrite the previous export")
}

func TestWriteRejectsEmptyBatch(t *testing.T) {
	t.Parallel()

	w, _ := newTestWriter(t)

	_, err := w.Write(nil, testTime)
	assert.ErrorIs(t, err, ErrNoCards)
}

func TestResolve(t *testing.T) {
	t.Parallel()

	w, dir := newTestWriter(t)

	path, err := w.Resolve("flashcards_20260826_153059.csv")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "flashcards_20260826_153059.csv"), path)

	for _, name := range []string{
		"../etc/passwd",
		"flashcards_20260826_153059.txt",
		"notes.json",
		"flashcards_2026_153059.csv",
		"",
	} {
		_, err := w.Resolve(name)
		assert.Error(t, err, "Name %q should be rejected", name)
	}
}

func TestNewWriterValidation(t *testing.T) {
	t.Parallel()

	_, err := NewWriter(config.ExportConfig{}, slog.Default())
	assert.Error(t, err, "Empty output dir should be rejected")

	_, err = NewWriter(config.ExportConfig{OutputDir: t.TempDir()}, nil)
	assert.Error(t, err, "Nil logger should be rejected")
}
