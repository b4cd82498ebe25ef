package core

// Issue severities reported by the oracle.
const (
	SeverityHigh   = "high"
	SeverityMedium = "medium"
	SeverityLow    = "low"
)

// Issue is a single problem found in a file.
type Issue struct {
	Severity    string `json:"severity"`
	Description string `json:"description"`
	LineNumber  int    `json:"line_number"`
	Suggestion  string `json:"suggestion,omitempty"`
}

// SuggestedChange is a concrete edit proposed for a line.
type SuggestedChange struct {
	LineNumber    int    `json:"line_number"`
	OriginalCode  string `json:"original_code"`
	SuggestedCode string `json:"suggested_code"`
	Explanation   string `json:"explanation"`
}

// AnalysisFailure describes why a file produced no usable analysis.
type AnalysisFailure struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// AnalysisResult is the normalized oracle judgment for one file.
type AnalysisResult struct {
	Issues           []Issue           `json:"issues"`
	QualityScore     float64           `json:"code_quality_score"`
	SuggestedChanges []SuggestedChange `json:"suggested_changes"`
	GeneralFeedback  string            `json:"general_feedback"`

	// Failure is non-nil when the oracle could not be reached or refused the request.
	Failure *AnalysisFailure `json:"failure,omitempty"`
}

// Failed reports whether the result carries no usable analysis.
func (r *AnalysisResult) Failed() bool {
	return r == nil || r.Failure != nil
}

// ReviewComment is an inline comment targeting a line of a file.
type ReviewComment struct {
	Path string `json:"path"`
	Line int    `json:"line"`
	Body string `json:"body"`
}
