package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/fatih/color"
)

var (
	titleColor   = color.New(color.FgCyan, color.Bold)
	successColor = color.New(color.FgGreen)
	warnColor    = color.New(color.FgYellow)
	errorColor   = color.New(color.FgRed)
	dimColor     = color.New(color.FgHiBlack)
	boldColor    = color.New(color.Bold)
)

// printMarkdown renders markdown for the terminal, falling back to plain text.
func printMarkdown(md string) {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err == nil {
		if out, err := renderer.Render(md); err == nil {
			fmt.Print(out)
			return
		}
	}
	fmt.Fprintln(os.Stdout, md)
}

func scoreColor(score float64) *color.Color {
	switch {
	case score >= 8:
		return successColor
	case score >= 5:
		return warnColor
	default:
		return errorColor
	}
}
