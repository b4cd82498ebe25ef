package analysis

import (
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/sevigo/pr-warden/internal/core"
)

// UnknownLanguage is reported for extensions missing from the table.
const UnknownLanguage = "Unknown"

// MaxContentLength is the largest file, in characters, sent to the oracle.
const MaxContentLength = 100000

var languageByExt = map[string]string{
	".py":    "Python",
	".js":    "JavaScript",
	".ts":    "TypeScript",
	".java":  "Java",
	".c":     "C",
	".cpp":   "C++",
	".cs":    "C#",
	".go":    "Go",
	".rb":    "Ruby",
	".php":   "PHP",
	".swift": "Swift",
	".kt":    "Kotlin",
	".rs":    "Rust",
	".html":  "HTML",
	".css":   "CSS",
	".sql":   "SQL",
}

// DetectLanguage maps a filename to a language name by its extension.
func DetectLanguage(filename string) string {
	if lang, ok := languageByExt[strings.ToLower(filepath.Ext(filename))]; ok {
		return lang
	}
	return UnknownLanguage
}

// ShouldSkip reports whether a changed file is left out of analysis, and why.
func ShouldSkip(file core.FileChange) (bool, string) {
	switch {
	case file.ContentError != "":
		return true, "content unavailable: " + file.ContentError
	case !file.HasContent():
		return true, "empty content"
	case utf8.RuneCountInString(file.Content) > MaxContentLength:
		return true, "content too large"
	}
	return false, ""
}
