// Package review drives the review cycle: it refreshes the organization's
// repositories, scans them for open pull requests and reviews each one that
// the ledger has not seen yet.
package review

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"
	"time"

	"github.com/sevigo/pr-warden/internal/analysis"
	"github.com/sevigo/pr-warden/internal/core"
	"github.com/sevigo/pr-warden/internal/ledger"
	"github.com/sevigo/pr-warden/internal/standards"
)

// Analyzer produces the analysis of one file.
type Analyzer interface {
	Analyze(ctx context.Context, content, filename string, standard standards.Document) (*core.AnalysisResult, error)
}

// Orchestrator runs reviews sequentially: one repository, one pull request and
// one file at a time.
type Orchestrator struct {
	org      string
	source   core.ChangeRequestSource
	analyzer Analyzer
	ledger   *ledger.Ledger
	event    core.ReviewEvent
	sleep    func(ctx context.Context, d time.Duration) error
	now      func() time.Time
	logger   *slog.Logger
}

type Option func(*Orchestrator)

// WithReviewEvent sets the event attached to submitted reviews. Defaults to COMMENT.
func WithReviewEvent(event core.ReviewEvent) Option {
	return func(o *Orchestrator) {
		if event != "" {
			o.event = event
		}
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(o *Orchestrator) { o.logger = logger }
}

// WithSleep replaces the wait between continuous cycles.
func WithSleep(sleep func(ctx context.Context, d time.Duration) error) Option {
	return func(o *Orchestrator) { o.sleep = sleep }
}

func WithClock(now func() time.Time) Option {
	return func(o *Orchestrator) { o.now = now }
}

// New creates an Orchestrator for org.
func New(org string, source core.ChangeRequestSource, analyzer Analyzer, l *ledger.Ledger, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		org:      org,
		source:   source,
		analyzer: analyzer,
		ledger:   l,
		event:    core.ReviewEventComment,
		sleep:    sleepContext,
		now:      time.Now,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// RefreshRepositories replaces the ledger's repository list with the
// organization's current repositories.
func (o *Orchestrator) RefreshRepositories(ctx context.Context) error {
	repos, err := o.source.ListOrgRepositories(ctx, o.org)
	if err != nil {
		return fmt.Errorf("failed to list repositories of %s: %w", o.org, err)
	}

	names := make([]string, 0, len(repos))
	for _, r := range repos {
		names = append(names, r.Name)
	}
	o.ledger.SetRepositories(names)
	o.logger.Info("refreshed organization repositories", "org", o.org, "count", len(names))
	return nil
}

// Scan lists the open pull requests of every known repository. A repository
// whose listing fails is logged and skipped.
func (o *Orchestrator) Scan(ctx context.Context) []core.PullRequest {
	var all []core.PullRequest
	for _, repo := range o.ledger.Repositories() {
		prs, err := o.source.ListOpenPullRequests(ctx, o.org, repo)
		if err != nil {
			o.logger.Error("error scanning PRs", "repo", repo, "error", err)
			continue
		}
		for _, pr := range prs {
			pr.Repo = repo
			all = append(all, pr)
		}
	}
	return all
}

// ReviewOne reviews a single pull request and stores the record on success.
// Every failure, including a panic, is returned as *Error and leaves the
// ledger untouched.
func (o *Orchestrator) ReviewOne(ctx context.Context, repo string, number int) (record *core.ReviewRecord, err error) {
	key := core.PRKey{Repo: repo, Number: number}

	defer func() {
		if r := recover(); r != nil {
			o.logger.Error("panic during review", "repo", repo, "pr", number, "panic", r, "stack", string(debug.Stack()))
			record = nil
			err = &Error{Key: key, Err: fmt.Errorf("panic: %v", r)}
		}
	}()

	record, err = o.review(ctx, key)
	if err != nil {
		o.logger.Error("review failed", "repo", repo, "pr", number, "error", err)
		return nil, &Error{Key: key, Err: err}
	}
	return record, nil
}

func (o *Orchestrator) review(ctx context.Context, key core.PRKey) (*core.ReviewRecord, error) {
	o.logger.Info("reviewing pull request", "repo", key.Repo, "pr", key.Number)

	pr, err := o.source.GetPullRequest(ctx, o.org, key.Repo, key.Number)
	if err != nil {
		return nil, fmt.Errorf("failed to get PR details: %w", err)
	}

	files, err := o.source.GetPullRequestFiles(ctx, o.org, key.Repo, key.Number, pr.HeadSHA)
	if err != nil {
		return nil, fmt.Errorf("failed to get PR files: %w", err)
	}

	record := &core.ReviewRecord{
		Key:       key,
		HeadSHA:   pr.HeadSHA,
		FileCount: len(files),
		Files:     []core.FileAnalysis{},
	}
	var comments []core.ReviewComment

	for _, file := range files {
		record.TotalChanges += file.Changes

		if skip, reason := analysis.ShouldSkip(file); skip {
			o.logger.Debug("skipping file", "repo", key.Repo, "pr", key.Number, "file", file.Filename, "reason", reason)
			continue
		}

		standard := o.ledger.Standards().Lookup(analysis.DetectLanguage(file.Filename))
		result, err := o.analyzer.Analyze(ctx, file.Content, file.Filename, standard)
		if err != nil {
			return nil, err
		}

		comments = append(comments, analysis.FormatReviewComments(result, file.Filename)...)
		record.Files = append(record.Files, fileAnalysis(file.Filename, result))
	}

	record.AverageScore = averageScore(record.Files)

	inline, offDiff := placeComments(files, comments, o.logger)
	body := renderSummary(record.FileCount, record.TotalChanges, record.Files, record.AverageScore) +
		renderAdditionalFindings(offDiff)

	submitted, err := o.source.SubmitReview(ctx, o.org, key.Repo, key.Number, core.ReviewSubmission{
		CommitID: pr.HeadSHA,
		Body:     body,
		Event:    o.event,
		Comments: inline,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to submit review: %w", err)
	}

	record.ReviewID = submitted.ID
	record.State = submitted.State
	record.Summary = body
	record.CommentCount = len(comments)
	record.InlineCommentCount = len(inline)
	record.ReviewedAt = o.now()

	o.ledger.Store(ctx, key, *record)
	o.logger.Info("review submitted",
		"repo", key.Repo,
		"pr", key.Number,
		"review_id", record.ReviewID,
		"comments", record.CommentCount,
		"inline", record.InlineCommentCount,
		"score", record.AverageScore,
	)
	return record, nil
}

func fileAnalysis(filename string, result *core.AnalysisResult) core.FileAnalysis {
	if result.Failed() {
		fa := core.FileAnalysis{Filename: filename}
		if result != nil && result.Failure != nil {
			fa.Error = result.Failure.Error
		}
		return fa
	}
	return core.FileAnalysis{
		Filename:        filename,
		QualityScore:    result.QualityScore,
		Scored:          true,
		IssueCount:      len(result.Issues),
		SuggestionCount: len(result.SuggestedChanges),
	}
}
