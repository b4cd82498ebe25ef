package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sevigo/pr-warden/internal/core"
	"github.com/sevigo/pr-warden/internal/ledger"
	"github.com/sevigo/pr-warden/internal/logger"
	"github.com/sevigo/pr-warden/internal/standards"
)

type fakeArchive struct {
	records []core.ReviewRecord
	err     error
}

func (f *fakeArchive) GetReviewsForPR(_ context.Context, repo string, number int) ([]core.ReviewRecord, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []core.ReviewRecord
	for _, r := range f.records {
		if r.Key.Repo == repo && r.Key.Number == number {
			out = append(out, r)
		}
	}
	return out, nil
}

func newTestLedger() *ledger.Ledger {
	registry := standards.NewRegistry()
	registry.Update(standards.Defaults())
	l := ledger.New(registry,
		ledger.WithLogger(logger.Discard()),
		ledger.WithClock(func() time.Time { return time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC) }),
	)
	l.SetRepositories([]string{"api", "web"})
	l.Store(context.Background(), core.PRKey{Repo: "api", Number: 7}, core.ReviewRecord{
		ReviewID:     99,
		Key:          core.PRKey{Repo: "api", Number: 7},
		AverageScore: 6,
		Summary:      "# PR Review Summary",
	})
	return l
}

func serve(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestRouter_Health(t *testing.T) {
	rec := serve(t, NewRouter(newTestLedger(), nil, logger.Discard()), "/health")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())
}

func TestRouter_Reviews(t *testing.T) {
	router := NewRouter(newTestLedger(), nil, logger.Discard())

	rec := serve(t, router, "/api/v1/reviews")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	var records []core.ReviewRecord
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &records))
	require.Len(t, records, 1)
	assert.Equal(t, int64(99), records[0].ReviewID)

	rec = serve(t, router, "/api/v1/reviews/api/7")
	require.Equal(t, http.StatusOK, rec.Code)
	var record core.ReviewRecord
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &record))
	assert.Equal(t, core.PRKey{Repo: "api", Number: 7}, record.Key)

	rec = serve(t, router, "/api/v1/reviews/api/8")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "api_8")

	rec = serve(t, router, "/api/v1/reviews/api/seven")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRouter_HistoryRepositoriesStandards(t *testing.T) {
	router := NewRouter(newTestLedger(), nil, logger.Discard())

	rec := serve(t, router, "/api/v1/history")
	require.Equal(t, http.StatusOK, rec.Code)
	var history []core.HistoryEntry
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &history))
	require.Len(t, history, 1)
	assert.Equal(t, 2026, history[0].Timestamp.Year())

	rec = serve(t, router, "/api/v1/repositories")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `["api","web"]`, rec.Body.String())

	rec = serve(t, router, "/api/v1/standards")
	require.Equal(t, http.StatusOK, rec.Code)
	var all map[string]map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &all))
	assert.Contains(t, all, "Python")
	assert.Contains(t, all, "Java")

	rec = serve(t, router, "/api/v1/standards/Python")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "PEP 8")

	rec = serve(t, router, "/api/v1/standards/Cobol")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouter_Archive(t *testing.T) {
	l := newTestLedger()

	rec := serve(t, NewRouter(l, nil, logger.Discard()), "/api/v1/reviews/api/7/archive")
	assert.Equal(t, http.StatusNotImplemented, rec.Code)

	archive := &fakeArchive{records: []core.ReviewRecord{
		{ReviewID: 1, Key: core.PRKey{Repo: "api", Number: 7}},
		{ReviewID: 2, Key: core.PRKey{Repo: "api", Number: 7}},
		{ReviewID: 3, Key: core.PRKey{Repo: "web", Number: 7}},
	}}
	rec = serve(t, NewRouter(l, archive, logger.Discard()), "/api/v1/reviews/api/7/archive")
	require.Equal(t, http.StatusOK, rec.Code)
	var records []core.ReviewRecord
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &records))
	assert.Len(t, records, 2)

	rec = serve(t, NewRouter(l, &fakeArchive{err: errors.New("db down")}, logger.Discard()), "/api/v1/reviews/api/7/archive")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
