// Package app ties the review engine to its operation modes.
package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/sevigo/pr-warden/internal/config"
	"github.com/sevigo/pr-warden/internal/core"
	"github.com/sevigo/pr-warden/internal/ledger"
	"github.com/sevigo/pr-warden/internal/review"
	"github.com/sevigo/pr-warden/internal/server"
)

// App holds the main application components.
type App struct {
	Cfg          *config.Config
	Ledger       *ledger.Ledger
	Orchestrator *review.Orchestrator
	Logger       *slog.Logger
	// Out receives the report of the single and scan modes.
	Out io.Writer

	server *server.Server
}

// NewApp assembles the application. srv is nil when the status API is disabled.
func NewApp(cfg *config.Config, l *ledger.Ledger, orchestrator *review.Orchestrator, srv *server.Server, logger *slog.Logger) *App {
	return &App{
		Cfg:          cfg,
		Ledger:       l,
		Orchestrator: orchestrator,
		Logger:       logger,
		Out:          os.Stdout,
		server:       srv,
	}
}

// Run executes the configured operation mode until it completes or, for the
// continuous mode, until ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	if err := a.Cfg.ValidateMode(); err != nil {
		return err
	}

	a.Logger.Info("starting PR Warden",
		"mode", a.Cfg.Review.Mode,
		"org", a.Cfg.GitHub.Org,
		"llm_provider", a.Cfg.LLM.Provider,
	)

	switch a.Cfg.Review.Mode {
	case config.ModeSingle:
		record, err := a.ReviewOne(ctx, a.Cfg.Review.RepoName, a.Cfg.Review.PRNumber)
		if err != nil {
			return err
		}
		fmt.Fprintf(a.Out, "Review completed: %d\n", record.ReviewID)
		return nil
	case config.ModeScan:
		prs, err := a.ScanOpenPullRequests(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintf(a.Out, "Found %d open PRs:\n", len(prs))
		for _, pr := range prs {
			fmt.Fprintf(a.Out, "- %s #%d: %s by %s\n", pr.Repo, pr.Number, pr.Title, pr.Author)
		}
		return nil
	default:
		return a.Watch(ctx, a.Cfg.Review.Interval)
	}
}

// Watch runs the continuous review loop, serving the status API alongside it
// when enabled.
func (a *App) Watch(ctx context.Context, interval time.Duration) error {
	if a.server != nil {
		go func() {
			if err := a.server.Start(); err != nil {
				a.Logger.Error("status API stopped", "error", err)
			}
		}()
		defer func() {
			if err := a.server.Stop(); err != nil {
				a.Logger.Error("error during HTTP server shutdown", "error", err)
			}
		}()
	}

	a.Logger.Info("checking for PRs periodically", "interval", interval)
	return a.Orchestrator.RunContinuous(ctx, interval)
}

// ReviewOne reviews a single pull request of the configured organization.
func (a *App) ReviewOne(ctx context.Context, repo string, number int) (*core.ReviewRecord, error) {
	record, err := a.Orchestrator.ReviewOne(ctx, repo, number)
	if err != nil {
		return nil, err
	}
	a.Logger.Info("review completed",
		"repo", repo,
		"pr", number,
		"review_id", record.ReviewID,
		"comments", record.CommentCount,
		"score", fmt.Sprintf("%.1f", record.AverageScore),
	)
	return record, nil
}

// ScanOpenPullRequests refreshes the repository list and returns every open
// pull request without reviewing any of them.
func (a *App) ScanOpenPullRequests(ctx context.Context) ([]core.PullRequest, error) {
	if err := a.Orchestrator.RefreshRepositories(ctx); err != nil {
		return nil, err
	}
	prs := a.Orchestrator.Scan(ctx)
	a.Logger.Info("found open PRs", "count", len(prs))
	return prs, nil
}
