package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sevigo/pr-warden/internal/wire"
)

var standardsCmd = &cobra.Command{
	Use:   "standards [language]",
	Short: "Show the coding standards used in reviews",
	Long: `Show the coding standards used in reviews: the built-in defaults merged
with the custom standards file (CODING_STANDARDS_PATH).`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		appInstance, cleanup, err := wire.InitializeApp(context.Background())
		if err != nil {
			return fmt.Errorf("failed to initialize app: %w", err)
		}
		defer cleanup()

		registry := appInstance.Ledger.Standards()
		if len(args) == 0 {
			titleColor.Println("Languages with coding standards:")
			for _, lang := range registry.Languages() {
				fmt.Printf("  - %s\n", lang)
			}
			return nil
		}

		doc := registry.Lookup(args[0])
		if doc == nil {
			warnColor.Printf("No coding standards registered for %s\n", args[0])
			return nil
		}
		out, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return err
		}
		printMarkdown(fmt.Sprintf("## %s\n\n```json\n%s\n```\n", args[0], out))
		return nil
	},
}

func init() { //nolint:gochecknoinits // Cobra command registration
	rootCmd.AddCommand(standardsCmd)
}
