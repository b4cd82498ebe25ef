package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/sevigo/pr-warden/internal/wire"
)

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "List open pull requests across the organization without reviewing them",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		appInstance, cleanup, err := wire.InitializeApp(ctx)
		if err != nil {
			return fmt.Errorf("failed to initialize app: %w", err)
		}
		defer cleanup()

		prs, err := appInstance.ScanOpenPullRequests(ctx)
		if err != nil {
			return err
		}

		titleColor.Printf("Found %d open PRs in %s\n\n", len(prs), appInstance.Cfg.GitHub.Org)
		for _, pr := range prs {
			boldColor.Printf("%s#%d", pr.Repo, pr.Number)
			fmt.Printf(" %s", pr.Title)
			dimColor.Printf(" (@%s, updated %s)\n", pr.Author, pr.UpdatedAt.Format("2006-01-02 15:04"))
		}
		return nil
	},
}

func init() { //nolint:gochecknoinits // Cobra command registration
	rootCmd.AddCommand(scanCmd)
}
