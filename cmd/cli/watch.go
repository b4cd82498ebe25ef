package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/sevigo/pr-warden/internal/wire"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Continuously review new pull requests until interrupted",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		appInstance, cleanup, err := wire.InitializeApp(ctx)
		if err != nil {
			return fmt.Errorf("failed to initialize app: %w", err)
		}
		defer cleanup()

		interval := appInstance.Cfg.Review.Interval
		titleColor.Printf("Watching %s, checking every %s. Press Ctrl+C to stop.\n", appInstance.Cfg.GitHub.Org, interval)
		return appInstance.Watch(ctx, interval)
	},
}

func init() { //nolint:gochecknoinits // Cobra command registration
	watchCmd.Flags().Int("interval", 15, "Minutes between scans")
	if err := viper.BindPFlag("CHECK_INTERVAL_MINUTES", watchCmd.Flags().Lookup("interval")); err != nil {
		panic(err)
	}
	rootCmd.AddCommand(watchCmd)
}

