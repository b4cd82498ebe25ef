package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/sevigo/pr-warden/internal/ledger"
	"github.com/sevigo/pr-warden/internal/server/handler"
)

// NewRouter creates the status API router.
func NewRouter(l *ledger.Ledger, archive handler.ArchiveReader, logger *slog.Logger) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	status := handler.NewStatusHandler(l, archive, logger)
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/reviews", status.ListReviews)
		r.Get("/reviews/{repo}/{number}", status.GetReview)
		r.Get("/reviews/{repo}/{number}/archive", status.GetArchivedReviews)
		r.Get("/history", status.History)
		r.Get("/repositories", status.Repositories)
		r.Get("/standards", status.Standards)
		r.Get("/standards/{language}", status.StandardsForLanguage)
	})

	return r
}
