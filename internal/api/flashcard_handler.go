package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/cardforge/cardforge/internal/api/shared"
	"github.com/cardforge/cardforge/internal/domain"
	"github.com/cardforge/cardforge/internal/export"
)

// FlashcardGenerator is the slice of the generation service this handler
// needs. Tests substitute a fake.
type FlashcardGenerator interface {
	GenerateFlashcards(ctx context.Context, sourceText string, cardCount int) ([]domain.Flashcard, export.Result, error)
}

// ExportResolver maps export file names to paths on disk.
type ExportResolver interface {
	Resolve(name string) (string, error)
}

// FlashcardHandler handles flashcard generation and export download
// requests.
type FlashcardHandler struct {
	service FlashcardGenerator
	exports ExportResolver
	logger  *slog.Logger
}

// NewFlashcardHandler creates a FlashcardHandler.
func NewFlashcardHandler(service FlashcardGenerator, exports ExportResolver, logger *slog.Logger) *FlashcardHandler {
	return &FlashcardHandler{
		service: service,
		exports: exports,
		logger:  logger,
	}
}

// GenerateCards handles POST /api/flashcards requests. The request is
// validated up front so bad input never triggers a provider call.
func (h *FlashcardHandler) GenerateCards(w http.ResponseWriter, r *http.Request) {
	var req GenerateRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	cards, exports, err := h.service.GenerateFlashcards(r.Context(), req.Text, req.CardCount)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	h.logger.InfoContext(r.Context(), "flashcards generated",
		"trace_id", shared.GetTraceID(r.Context()),
		"count", len(cards),
		"export_base", exports.BaseName)

	shared.RespondWithJSON(w, r, http.StatusOK, toGenerateResponse(cards, exports))
}

// DownloadExport handles GET /api/exports/{filename} requests, serving a
// previously written export file. Only names matching the export naming
// convention are served.
func (h *FlashcardHandler) DownloadExport(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "filename")

	path, err := h.exports.Resolve(name)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusNotFound, "Export not found")
		return
	}

	http.ServeFile(w, r, path)
}

// toGenerateResponse converts a flashcard batch and its export paths to the
// response DTO.
func toGenerateResponse(cards []domain.Flashcard, exports export.Result) GenerateResponse {
	responses := make([]FlashcardResponse, 0, len(cards))
	for _, card := range cards {
		responses = append(responses, FlashcardResponse{
			Question: card.Question,
			Answer:   card.Answer,
		})
	}

	return GenerateResponse{
		Cards: responses,
		Count: len(responses),
		Exports: ExportResponse{
			CSV:  exports.BaseName + ".csv",
			JSON: exports.BaseName + ".json",
		},
	}
}
