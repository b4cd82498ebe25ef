// Package handler provides the read-only HTTP handlers of the status API.
package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/sevigo/pr-warden/internal/core"
	"github.com/sevigo/pr-warden/internal/ledger"
)

// ArchiveReader looks up reviews kept in the durable archive.
type ArchiveReader interface {
	GetReviewsForPR(ctx context.Context, repo string, number int) ([]core.ReviewRecord, error)
}

// StatusHandler exposes the ledger state.
type StatusHandler struct {
	ledger  *ledger.Ledger
	archive ArchiveReader
	logger  *slog.Logger
}

// NewStatusHandler creates a StatusHandler. archive may be nil.
func NewStatusHandler(l *ledger.Ledger, archive ArchiveReader, logger *slog.Logger) *StatusHandler {
	return &StatusHandler{ledger: l, archive: archive, logger: logger}
}

type errorResponse struct {
	Error string `json:"error"`
}

func (h *StatusHandler) ListReviews(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, h.ledger.Records())
}

func (h *StatusHandler) GetReview(w http.ResponseWriter, r *http.Request) {
	key, ok := h.prKey(w, r)
	if !ok {
		return
	}
	record, found := h.ledger.Get(key)
	if !found {
		h.writeJSON(w, http.StatusNotFound, errorResponse{Error: "no review recorded for " + key.String()})
		return
	}
	h.writeJSON(w, http.StatusOK, record)
}

func (h *StatusHandler) GetArchivedReviews(w http.ResponseWriter, r *http.Request) {
	if h.archive == nil {
		h.writeJSON(w, http.StatusNotImplemented, errorResponse{Error: "review archive is not enabled"})
		return
	}
	key, ok := h.prKey(w, r)
	if !ok {
		return
	}
	records, err := h.archive.GetReviewsForPR(r.Context(), key.Repo, key.Number)
	if err != nil {
		h.logger.Error("failed to read review archive", "repo", key.Repo, "pr", key.Number, "error", err)
		h.writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "failed to read review archive"})
		return
	}
	h.writeJSON(w, http.StatusOK, records)
}

func (h *StatusHandler) History(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, h.ledger.History())
}

func (h *StatusHandler) Repositories(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, h.ledger.Repositories())
}

func (h *StatusHandler) Standards(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, h.ledger.Standards().Snapshot())
}

func (h *StatusHandler) StandardsForLanguage(w http.ResponseWriter, r *http.Request) {
	language := chi.URLParam(r, "language")
	doc := h.ledger.Standards().Lookup(language)
	if doc == nil {
		h.writeJSON(w, http.StatusNotFound, errorResponse{Error: "no standards registered for " + language})
		return
	}
	h.writeJSON(w, http.StatusOK, doc)
}

func (h *StatusHandler) prKey(w http.ResponseWriter, r *http.Request) (core.PRKey, bool) {
	number, err := strconv.Atoi(chi.URLParam(r, "number"))
	if err != nil || number <= 0 {
		h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid pull request number"})
		return core.PRKey{}, false
	}
	return core.PRKey{Repo: chi.URLParam(r, "repo"), Number: number}, true
}

func (h *StatusHandler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("failed to encode response", "error", err)
	}
}
