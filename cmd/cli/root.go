package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var githubToken string

var rootCmd = &cobra.Command{
	Use:   "warden-cli",
	Short: "warden-cli is the command-line interface for PR Warden.",
	Long: `A CLI for PR Warden: watch an organization for new pull requests,
review a single pull request, list open pull requests or inspect the coding
standards used in reviews.`,
	SilenceUsage: true,
}

func init() { //nolint:gochecknoinits // Cobra's init function for command registration
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&githubToken, "github-token", "t", "", "GitHub Token")

	if err := viper.BindPFlag("GITHUB_TOKEN", rootCmd.PersistentFlags().Lookup("github-token")); err != nil {
		slog.Error("Error binding flag", "error", err)
		os.Exit(1)
	}
}

// initConfig lets CW_-prefixed variables override the plain ones for the CLI.
func initConfig() {
	for _, key := range []string{"GITHUB_TOKEN", "GITHUB_ORG_NAME", "LLM_API_URL", "LLM_API_KEY", "LOG_LEVEL"} {
		if err := viper.BindEnv(key, "CW_"+key, key); err != nil {
			slog.Error("Error binding env", "key", key, "error", err)
		}
	}
}
