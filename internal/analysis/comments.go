package analysis

import (
	"fmt"
	"strings"

	"github.com/sevigo/pr-warden/internal/core"
)

// FormatReviewComments renders one comment per issue followed by one comment
// per suggested change, each anchored at the line the oracle reported.
func FormatReviewComments(result *core.AnalysisResult, filename string) []core.ReviewComment {
	if result == nil || result.Failed() {
		return nil
	}

	comments := make([]core.ReviewComment, 0, len(result.Issues)+len(result.SuggestedChanges))
	for _, issue := range result.Issues {
		comments = append(comments, core.ReviewComment{
			Path: filename,
			Line: issue.LineNumber,
			Body: issueBody(issue),
		})
	}
	for _, change := range result.SuggestedChanges {
		comments = append(comments, core.ReviewComment{
			Path: filename,
			Line: change.LineNumber,
			Body: suggestionBody(change),
		})
	}
	return comments
}

func issueBody(issue core.Issue) string {
	body := fmt.Sprintf("**%s Issue**: %s", strings.ToUpper(issue.Severity), issue.Description)
	if issue.Suggestion != "" {
		body += "\n\nSuggestion: " + issue.Suggestion
	}
	return body
}

func suggestionBody(change core.SuggestedChange) string {
	var sb strings.Builder
	sb.WriteString("**Suggested Change**:\n\n```suggestion\n")
	sb.WriteString(change.SuggestedCode)
	sb.WriteString("\n```")
	if change.Explanation != "" {
		sb.WriteString("\n\n")
		sb.WriteString(change.Explanation)
	}
	return sb.String()
}
