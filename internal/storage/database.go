// Package storage persists submitted reviews as an audit trail. The archive
// is write-only for the review engine; deduplication never consults it.
package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/sevigo/pr-warden/internal/core"
)

// Store defines the archive operations.
type Store interface {
	SaveReview(ctx context.Context, record *core.ReviewRecord) error
	GetReviewsForPR(ctx context.Context, repo string, number int) ([]core.ReviewRecord, error)
}

type postgresStore struct {
	db *sqlx.DB
}

// NewStore creates a Store on top of db.
func NewStore(db *sqlx.DB) Store {
	return &postgresStore{db: db}
}

type reviewRow struct {
	Repo               string    `db:"repo"`
	PRNumber           int       `db:"pr_number"`
	ReviewID           int64     `db:"review_id"`
	HeadSHA            string    `db:"head_sha"`
	FileCount          int       `db:"file_count"`
	TotalChanges       int       `db:"total_changes"`
	AverageScore       float64   `db:"average_score"`
	CommentCount       int       `db:"comment_count"`
	InlineCommentCount int       `db:"inline_comment_count"`
	State              string    `db:"state"`
	Summary            string    `db:"summary"`
	Files              string    `db:"files"`
	ReviewedAt         time.Time `db:"reviewed_at"`
}

const insertReview = `
	INSERT INTO review_records (
		repo, pr_number, review_id, head_sha, file_count, total_changes, average_score,
		comment_count, inline_comment_count, state, summary, files, reviewed_at
	) VALUES (
		:repo, :pr_number, :review_id, :head_sha, :file_count, :total_changes, :average_score,
		:comment_count, :inline_comment_count, :state, :summary, :files, :reviewed_at
	)`

// SaveReview inserts one archived review.
func (s *postgresStore) SaveReview(ctx context.Context, record *core.ReviewRecord) error {
	files, err := json.Marshal(record.Files)
	if err != nil {
		return fmt.Errorf("failed to encode file analyses: %w", err)
	}

	reviewedAt := record.ReviewedAt
	if reviewedAt.IsZero() {
		reviewedAt = time.Now()
	}

	row := reviewRow{
		Repo:               record.Key.Repo,
		PRNumber:           record.Key.Number,
		ReviewID:           record.ReviewID,
		HeadSHA:            record.HeadSHA,
		FileCount:          record.FileCount,
		TotalChanges:       record.TotalChanges,
		AverageScore:       record.AverageScore,
		CommentCount:       record.CommentCount,
		InlineCommentCount: record.InlineCommentCount,
		State:              record.State,
		Summary:            record.Summary,
		Files:              string(files),
		ReviewedAt:         reviewedAt,
	}
	if _, err := s.db.NamedExecContext(ctx, insertReview, row); err != nil {
		return fmt.Errorf("failed to archive review for %s: %w", record.Key, err)
	}
	return nil
}

// GetReviewsForPR returns every archived review of a pull request, newest first.
func (s *postgresStore) GetReviewsForPR(ctx context.Context, repo string, number int) ([]core.ReviewRecord, error) {
	query := `
		SELECT repo, pr_number, review_id, head_sha, file_count, total_changes, average_score,
		       comment_count, inline_comment_count, state, summary, files, reviewed_at
		FROM review_records
		WHERE repo = $1 AND pr_number = $2
		ORDER BY reviewed_at DESC`

	var rows []reviewRow
	if err := s.db.SelectContext(ctx, &rows, query, repo, number); err != nil {
		return nil, fmt.Errorf("failed to query archived reviews: %w", err)
	}

	records := make([]core.ReviewRecord, 0, len(rows))
	for _, r := range rows {
		rec := core.ReviewRecord{
			ReviewID:           r.ReviewID,
			Key:                core.PRKey{Repo: r.Repo, Number: r.PRNumber},
			HeadSHA:            r.HeadSHA,
			FileCount:          r.FileCount,
			TotalChanges:       r.TotalChanges,
			AverageScore:       r.AverageScore,
			Summary:            r.Summary,
			CommentCount:       r.CommentCount,
			InlineCommentCount: r.InlineCommentCount,
			State:              r.State,
			ReviewedAt:         r.ReviewedAt,
		}
		if len(r.Files) > 0 {
			if err := json.Unmarshal([]byte(r.Files), &rec.Files); err != nil {
				return nil, fmt.Errorf("failed to decode file analyses of review %d: %w", r.ReviewID, err)
			}
		}
		records = append(records, rec)
	}
	return records, nil
}
