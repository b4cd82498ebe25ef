package review

import (
	"log/slog"
	"regexp"
	"strconv"
	"strings"

	"github.com/sevigo/pr-warden/internal/core"
)

var hunkHeaderRegex = regexp.MustCompile(`^@@ -\d+(?:,\d+)? \+(\d+)(?:,\d+)? @@`)

// commentableLines returns the new-side line numbers present in a unified diff
// patch. Only these lines accept an inline review comment.
func commentableLines(patch string, logger *slog.Logger) map[int]struct{} {
	valid := make(map[int]struct{})
	current := -1

	for _, line := range strings.Split(patch, "\n") {
		if strings.HasPrefix(line, "@@") {
			current = -1
			matches := hunkHeaderRegex.FindStringSubmatch(line)
			if len(matches) < 2 {
				logger.Warn("skipped malformed hunk header", "line", line)
				continue
			}
			start, err := strconv.Atoi(matches[1])
			if err != nil {
				logger.Warn("skipped malformed hunk header", "line", line, "error", err)
				continue
			}
			current = start
			continue
		}
		if current == -1 {
			continue
		}

		switch {
		case strings.HasPrefix(line, "+"), strings.HasPrefix(line, " "):
			valid[current] = struct{}{}
			current++
		case strings.HasPrefix(line, "-"), strings.HasPrefix(line, `\`):
			// removed lines and "\ No newline at end of file" markers have no new-side line
		}
	}
	return valid
}

// placeComments splits comments into those that can be posted inline and
// those that fall outside the diff of their file.
func placeComments(files []core.FileChange, comments []core.ReviewComment, logger *slog.Logger) (inline, offDiff []core.ReviewComment) {
	lines := make(map[string]map[int]struct{}, len(files))
	for _, f := range files {
		lines[f.Filename] = commentableLines(f.Patch, logger)
	}

	for _, c := range comments {
		fileLines, ok := lines[strings.TrimPrefix(c.Path, "./")]
		if !ok {
			logger.Warn("moving comment to additional findings (file not in PR)", "file", c.Path)
			offDiff = append(offDiff, c)
			continue
		}
		if _, ok := fileLines[c.Line]; ok {
			inline = append(inline, c)
			continue
		}
		logger.Debug("moving comment to additional findings (off-diff line)", "file", c.Path, "line", c.Line)
		offDiff = append(offDiff, c)
	}
	return inline, offDiff
}
