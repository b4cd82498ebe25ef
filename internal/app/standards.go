package app

import (
	"errors"
	"log/slog"

	"github.com/sevigo/pr-warden/internal/ledger"
	"github.com/sevigo/pr-warden/internal/standards"
)

// LoadCustomStandards merges the standards file at path into the ledger's
// registry. Failures are logged and the registry keeps its prior content. A
// missing file is only reported when the path was configured explicitly.
func LoadCustomStandards(l *ledger.Ledger, path string, explicit bool, logger *slog.Logger) {
	if path == "" {
		return
	}

	docs, err := standards.LoadFile(path)
	switch {
	case errors.Is(err, standards.ErrStandardsNotFound):
		if explicit {
			logger.Warn("custom standards file not found", "path", path)
		}
		return
	case err != nil:
		logger.Error("error loading custom standards", "path", path, "error", err)
		return
	}

	l.MergeStandards(docs)
	logger.Info("loaded custom standards", "path", path, "languages", len(docs))
}
