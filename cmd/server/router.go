package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/cardforge/cardforge/internal/api"
	apiMiddleware "github.com/cardforge/cardforge/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes
// and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)

	flashcardHandler := api.NewFlashcardHandler(app.generationService, app.exporter, app.logger)

	r.Route("/api", func(r chi.Router) {
		r.Post("/flashcards", flashcardHandler.GenerateCards)
		r.Get("/exports/{filename}", flashcardHandler.DownloadExport)
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("failed to write health check response", "error", err)
		}
	})

	return r
}
