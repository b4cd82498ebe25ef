// Package core defines the domain types shared by the review engine and the
// narrow collaborator interfaces it depends on. Concrete platform and oracle
// clients live in their own packages and are injected at wiring time.
package core

import (
	"fmt"
	"time"
)

// PRKey identifies a pull request within the organization.
type PRKey struct {
	Repo   string `json:"repo"`
	Number int    `json:"number"`
}

// String renders the key as "<repo>_<number>".
func (k PRKey) String() string {
	return fmt.Sprintf("%s_%d", k.Repo, k.Number)
}

// Repository is an organization repository as seen during one refresh.
type Repository struct {
	Name string `json:"name"`
	ID   int64  `json:"id"`
}

// PullRequest is a snapshot of an open pull request taken during a scan.
type PullRequest struct {
	ID        int64     `json:"id"`
	Repo      string    `json:"repo"`
	Number    int       `json:"number"`
	Title     string    `json:"title"`
	Author    string    `json:"user"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	HeadSHA   string    `json:"head_sha,omitempty"`
	URL       string    `json:"url"`
}

// Key returns the identity of the pull request.
func (p PullRequest) Key() PRKey {
	return PRKey{Repo: p.Repo, Number: p.Number}
}

// FileChange is one file of a pull request together with its content at the head commit.
type FileChange struct {
	Filename  string
	Status    string // added, modified, removed, renamed
	Additions int
	Deletions int
	Changes   int
	Patch     string
	Content   string

	// ContentError is set when the content could not be retrieved.
	ContentError string
}

// HasContent reports whether usable file content was retrieved.
func (f FileChange) HasContent() bool {
	return f.ContentError == "" && f.Content != ""
}

// FileAnalysis is the per-file entry of a review record.
type FileAnalysis struct {
	Filename        string  `json:"filename"`
	QualityScore    float64 `json:"code_quality_score"`
	Scored          bool    `json:"scored"`
	IssueCount      int     `json:"issue_count"`
	SuggestionCount int     `json:"suggestion_count"`
	Error           string  `json:"error,omitempty"`
}

// ReviewRecord is the outcome of one successfully submitted review.
type ReviewRecord struct {
	ReviewID           int64          `json:"review_id"`
	Key                PRKey          `json:"key"`
	HeadSHA            string         `json:"head_sha"`
	FileCount          int            `json:"file_count"`
	TotalChanges       int            `json:"total_changes"`
	Files              []FileAnalysis `json:"file_analyses"`
	AverageScore       float64        `json:"average_score"`
	Summary            string         `json:"summary"`
	CommentCount       int            `json:"comment_count"`
	InlineCommentCount int            `json:"inline_comment_count"`
	State              string         `json:"state"`
	ReviewedAt         time.Time      `json:"reviewed_at"`
}

// HistoryEntry is one append-only entry of the ledger history.
type HistoryEntry struct {
	Key       PRKey        `json:"key"`
	Timestamp time.Time    `json:"timestamp"`
	Record    ReviewRecord `json:"review"`
}
