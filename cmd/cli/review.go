package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/sevigo/pr-warden/internal/core"
	"github.com/sevigo/pr-warden/internal/gitutil"
	"github.com/sevigo/pr-warden/internal/wire"
)

var reviewCmd = &cobra.Command{
	Use:   "review <pr-url> | <repo> <number>",
	Short: "Review a single pull request and post the review",
	Long: `Review a single pull request of the configured organization.

Every changed file is analyzed against the coding standards of its language,
then one review with a summary and inline comments is posted to the pull request.

Examples:
  warden-cli review https://github.com/acme/api/pull/123
  warden-cli review api 123`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runReview,
}

func init() { //nolint:gochecknoinits // Cobra command registration
	rootCmd.AddCommand(reviewCmd)
}

func runReview(_ *cobra.Command, args []string) error {
	target, err := gitutil.ParseTarget(args)
	if err != nil {
		return fmt.Errorf("%w\n\nExpected: https://github.com/owner/repo/pull/123 or <repo> <number>", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	appInstance, cleanup, err := wire.InitializeApp(ctx)
	if err != nil {
		return fmt.Errorf("failed to initialize app: %w", err)
	}
	defer cleanup()

	if target.Owner != "" && target.Owner != appInstance.Cfg.GitHub.Org {
		return fmt.Errorf("pull request belongs to %q but PR Warden is configured for %q", target.Owner, appInstance.Cfg.GitHub.Org)
	}

	titleColor.Println("PR Warden - PR Review")
	dimColor.Printf("   Target: %s/%s#%d\n\n", appInstance.Cfg.GitHub.Org, target.Repo, target.Number)

	start := time.Now()
	record, err := appInstance.ReviewOne(ctx, target.Repo, target.Number)
	if err != nil {
		errorColor.Println("Review failed")
		return err
	}

	printRecord(record)
	dimColor.Printf("\nTotal time: %s\n", time.Since(start).Round(time.Millisecond))
	return nil
}

func printRecord(record *core.ReviewRecord) {
	printMarkdown(record.Summary)

	boldColor.Print("Score: ")
	scoreColor(record.AverageScore).Printf("%.1f/10\n", record.AverageScore)
	successColor.Printf("Posted review %d with %d comments (%d inline)\n",
		record.ReviewID, record.CommentCount, record.InlineCommentCount)
}
