// Package ledger records which pull requests have been reviewed.
//
// The ledger lives for the lifetime of the process. It is not persisted, so a
// restart forgets every review and open pull requests will be reviewed again.
// An optional Archive receives a copy of each stored record for auditing; it is
// never consulted to decide whether a pull request was reviewed.
package ledger

import (
	"context"
	"log/slog"
	"slices"
	"sort"
	"sync"
	"time"

	"github.com/sevigo/pr-warden/internal/core"
	"github.com/sevigo/pr-warden/internal/standards"
)

// Archive receives every stored review record.
type Archive interface {
	SaveReview(ctx context.Context, record *core.ReviewRecord) error
}

// Ledger is the in-process review state: records by pull request, the
// append-only history, the current repository list and the standards registry.
type Ledger struct {
	mu      sync.RWMutex
	records map[core.PRKey]core.ReviewRecord
	history []core.HistoryEntry
	repos   []string

	standards *standards.Registry
	archive   Archive
	now       func() time.Time
	logger    *slog.Logger
}

// Option configures a Ledger.
type Option func(*Ledger)

// WithArchive mirrors stored records into a.
func WithArchive(a Archive) Option {
	return func(l *Ledger) { l.archive = a }
}

// WithClock overrides the timestamp source used for history entries.
func WithClock(now func() time.Time) Option {
	return func(l *Ledger) { l.now = now }
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(l *Ledger) { l.logger = logger }
}

// New creates an empty ledger around registry. A nil registry gets a fresh one.
func New(registry *standards.Registry, opts ...Option) *Ledger {
	if registry == nil {
		registry = standards.NewRegistry()
	}
	l := &Ledger{
		records:   make(map[core.PRKey]core.ReviewRecord),
		standards: registry,
		now:       time.Now,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Store upserts the record for key and appends it to the history.
func (l *Ledger) Store(ctx context.Context, key core.PRKey, record core.ReviewRecord) {
	record.Files = slices.Clone(record.Files)

	l.mu.Lock()
	l.records[key] = record
	l.history = append(l.history, core.HistoryEntry{
		Key:       key,
		Timestamp: l.now(),
		Record:    cloneRecord(record),
	})
	l.mu.Unlock()

	if l.archive == nil {
		return
	}
	if err := l.archive.SaveReview(ctx, &record); err != nil {
		l.logger.Error("failed to archive review record", "repo", key.Repo, "pr", key.Number, "error", err)
	}
}

// Get returns the record stored for key.
func (l *Ledger) Get(key core.PRKey) (*core.ReviewRecord, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	record, ok := l.records[key]
	if !ok {
		return nil, false
	}
	record = cloneRecord(record)
	return &record, true
}

// cloneRecord copies the record so callers never share its Files with the ledger.
func cloneRecord(r core.ReviewRecord) core.ReviewRecord {
	r.Files = slices.Clone(r.Files)
	return r
}

// HasReviewed reports whether a record exists for key.
func (l *Ledger) HasReviewed(key core.PRKey) bool {
	_, ok := l.Get(key)
	return ok
}

// Records returns all stored records ordered by repository and number.
func (l *Ledger) Records() []core.ReviewRecord {
	l.mu.RLock()
	out := make([]core.ReviewRecord, 0, len(l.records))
	for _, r := range l.records {
		out = append(out, cloneRecord(r))
	}
	l.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].Key.Repo != out[j].Key.Repo {
			return out[i].Key.Repo < out[j].Key.Repo
		}
		return out[i].Key.Number < out[j].Key.Number
	})
	return out
}

// History returns a copy of the history in insertion order.
func (l *Ledger) History() []core.HistoryEntry {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]core.HistoryEntry, len(l.history))
	for i, entry := range l.history {
		entry.Record = cloneRecord(entry.Record)
		out[i] = entry
	}
	return out
}

// SetRepositories replaces the known repository list.
func (l *Ledger) SetRepositories(repos []string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.repos = append([]string(nil), repos...)
}

// Repositories returns the known repository list.
func (l *Ledger) Repositories() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return append([]string(nil), l.repos...)
}

// MergeStandards merges docs into the standards registry.
func (l *Ledger) MergeStandards(docs map[string]standards.Document) {
	l.standards.Update(docs)
}

// Standards returns the standards registry.
func (l *Ledger) Standards() *standards.Registry {
	return l.standards
}
