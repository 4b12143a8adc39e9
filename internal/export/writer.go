package export

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"github.com/cardforge/cardforge/internal/config"
	"github.com/cardforge/cardforge/internal/domain"
)

// ErrNoCards is returned when an empty batch is handed to the writer.
var ErrNoCards = errors.New("no flashcards to export")

// fileNamePattern matches the names this package produces. Used to keep
// download handlers from serving anything else out of the output directory.
var fileNamePattern = regexp.MustCompile(`^flashcards_\d{8}_\d{6}\.(csv|json)$`)

// Result holds the paths of one exported batch.
type Result struct {
	BaseName string `json:"base_name"`
	CSVPath  string `json:"csv_path"`
	JSONPath string `json:"json_path"`
}

// Writer persists flashcard batches under a single output directory.
// The directory is created on first use. Writes with the same base name
// overwrite, so exports are idempotent by filename.
type Writer struct {
	dir    string
	logger *slog.Logger
}

// NewWriter creates a Writer for the configured output directory.
func NewWriter(cfg config.ExportConfig, logger *slog.Logger) (*Writer, error) {
	if cfg.OutputDir == "" {
		return nil, errors.New("export output directory cannot be empty")
	}
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	return &Writer{dir: cfg.OutputDir, logger: logger}, nil
}

// BaseName derives the export base name from the generation time, e.g.
// flashcards_20260826_153059.
func BaseName(t time.Time) string {
	return "flashcards_" + t.Format("20060102_150405")
}

// IsExportFileName reports whether name looks like a file this package
// wrote.
func IsExportFileName(name string) bool {
	return fileNamePattern.MatchString(name)
}

// Write saves the batch as both CSV and JSON, named after the generation
// time. Returns the paths of the written files.
func (w *Writer) Write(cards []domain.Flashcard, generatedAt time.Time) (Result, error) {
	if len(cards) == 0 {
		return Result{}, ErrNoCards
	}

	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return Result{}, fmt.Errorf("create export dir: %w", err)
	}

	base := BaseName(generatedAt)
	result := Result{
		BaseName: base,
		CSVPath:  filepath.Join(w.dir, base+".csv"),
		JSONPath: filepath.Join(w.dir, base+".json"),
	}

	if err := w.writeCSV(result.CSVPath, cards); err != nil {
		return Result{}, err
	}

	if err := w.writeJSON(result.JSONPath, cards); err != nil {
		return Result{}, err
	}

	w.logger.Info("flashcards exported",
		"card_count", len(cards),
		"csv_path", result.CSVPath,
		"json_path", result.JSONPath)

	return result, nil
}

// Resolve maps an export file name to its path inside the output
// directory. The name must match the export naming convention; anything
// else (including path traversal attempts) is rejected.
func (w *Writer) Resolve(name string) (string, error) {
	if !IsExportFileName(name) {
		return "", fmt.Errorf("not an export file: %q", name)
	}
	return filepath.Join(w.dir, name), nil
}

// writeCSV writes a header row followed by one row per card, with standard
// CSV escaping for embedded delimiters, quotes and newlines.
func (w *Writer) writeCSV(path string, cards []domain.Flashcard) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv export: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			w.logger.Error("failed to close csv export", "path", path, "error", cerr)
		}
	}()

	cw := csv.NewWriter(f)
	if err := cw.Write([]string{"question", "answer"}); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	for _, card := range cards {
		if err := cw.Write([]string{card.Question, card.Answer}); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush csv export: %w", err)
	}

	return nil
}

// writeJSON writes the batch as a pretty-printed JSON array with 2-space
// indentation.
func (w *Writer) writeJSON(path string, cards []domain.Flashcard) error {
	data, err := json.MarshalIndent(cards, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json export: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write json export: %w", err)
	}

	return nil
}
