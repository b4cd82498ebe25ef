package review

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sevigo/pr-warden/internal/core"
)

// averageScore is the mean over scored files; no scored files yields 0.
func averageScore(files []core.FileAnalysis) float64 {
	var sum float64
	var n int
	for _, f := range files {
		if !f.Scored {
			continue
		}
		sum += f.QualityScore
		n++
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

func renderSummary(fileCount, totalChanges int, files []core.FileAnalysis, average float64) string {
	var issues, suggestions int
	for _, f := range files {
		issues += f.IssueCount
		suggestions += f.SuggestionCount
	}

	var sb strings.Builder
	sb.WriteString("# PR Review Summary\n\n")
	fmt.Fprintf(&sb, "Overall code quality score: %.1f/10\n\n", average)
	fmt.Fprintf(&sb, "Reviewed %d files with %d changes.\n", fileCount, totalChanges)
	fmt.Fprintf(&sb, "Found %d issues.\n", issues)
	fmt.Fprintf(&sb, "Provided %d suggestions.\n\n", suggestions)
	sb.WriteString("## File-by-File Breakdown:\n")

	for _, f := range files {
		if f.Error != "" {
			fmt.Fprintf(&sb, "- **%s**: Analysis unavailable (%s)\n", f.Filename, f.Error)
			continue
		}
		fmt.Fprintf(&sb, "- **%s**: Score %s/10, %d issues, %d suggestions\n",
			f.Filename, strconv.FormatFloat(f.QualityScore, 'f', -1, 64), f.IssueCount, f.SuggestionCount)
	}
	return sb.String()
}

// renderAdditionalFindings lists comments that could not be anchored to the diff.
func renderAdditionalFindings(comments []core.ReviewComment) string {
	if len(comments) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString("\n## Additional Findings\n")
	for _, c := range comments {
		if c.Line > 0 {
			fmt.Fprintf(&sb, "\n### `%s` (line %d)\n\n", c.Path, c.Line)
		} else {
			fmt.Fprintf(&sb, "\n### `%s`\n\n", c.Path)
		}
		sb.WriteString(c.Body)
		sb.WriteString("\n")
	}
	return sb.String()
}
