package core

import "context"

// ReviewEvent is the action attached to a submitted review.
type ReviewEvent string

const (
	ReviewEventComment        ReviewEvent = "COMMENT"
	ReviewEventApprove        ReviewEvent = "APPROVE"
	ReviewEventRequestChanges ReviewEvent = "REQUEST_CHANGES"
)

// ReviewSubmission is everything posted to the platform for one review.
type ReviewSubmission struct {
	CommitID string
	Body     string
	Event    ReviewEvent
	Comments []ReviewComment
}

// SubmittedReview is the platform's answer to a review submission.
type SubmittedReview struct {
	ID    int64
	Body  string
	State string
}

// ChangeRequestSource is the repository platform as seen by the review engine.
//
//go:generate mockgen -destination=../../mocks/mock_core.go -package=mocks . ChangeRequestSource,GenerationOracle
type ChangeRequestSource interface {
	ListOrgRepositories(ctx context.Context, org string) ([]Repository, error)
	ListOpenPullRequests(ctx context.Context, org, repo string) ([]PullRequest, error)
	GetPullRequest(ctx context.Context, org, repo string, number int) (*PullRequest, error)
	GetPullRequestFiles(ctx context.Context, org, repo string, number int, ref string) ([]FileChange, error)
	SubmitReview(ctx context.Context, org, repo string, number int, submission ReviewSubmission) (*SubmittedReview, error)
}

// GenerationOracle sends a prompt to the text-generation service and returns
// the raw answer text.
type GenerationOracle interface {
	Complete(ctx context.Context, prompt string, maxTokens int) (string, error)
}
