package llm

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/sevigo/pr-warden/internal/core"
)

// ErrMalformedAnalysis is returned when the oracle answer is not a JSON document.
var ErrMalformedAnalysis = errors.New("oracle answer is not valid JSON")

// flexNumber accepts a JSON number or a numeric string. Anything else, NaN and
// infinities included, decodes to zero.
type flexNumber float64

func (n *flexNumber) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return nil
		}
		data = []byte(strings.TrimSpace(s))
	}
	f, err := strconv.ParseFloat(string(data), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		*n = 0
		return nil
	}
	*n = flexNumber(f)
	return nil
}

// flexString accepts a JSON string; any other JSON value is kept as its raw text.
type flexString string

func (s *flexString) UnmarshalJSON(data []byte) error {
	var v string
	if err := json.Unmarshal(data, &v); err != nil {
		*s = flexString(bytes.TrimSpace(data))
		return nil
	}
	*s = flexString(v)
	return nil
}

// rawAnalysis mirrors the answer shape requested from the oracle. Every field is
// optional; defaults are applied once in normalize.
type rawAnalysis struct {
	Issues           []rawIssue  `json:"issues"`
	CodeQualityScore *flexNumber `json:"code_quality_score"`
	SuggestedChanges []rawChange `json:"suggested_changes"`
	GeneralFeedback  *flexString `json:"general_feedback"`
}

type rawIssue struct {
	Severity    *flexString `json:"severity"`
	Description *flexString `json:"description"`
	LineNumber  *flexNumber `json:"line_number"`
	Suggestion  *flexString `json:"suggestion"`
}

type rawChange struct {
	LineNumber    *flexNumber `json:"line_number"`
	OriginalCode  *flexString `json:"original_code"`
	SuggestedCode *flexString `json:"suggested_code"`
	Explanation   *flexString `json:"explanation"`
}

// ParseAnalysis decodes the oracle answer into an AnalysisResult. Missing keys
// become empty values, the score is clamped into [0,10] and severities are
// lower-cased with "low" as the default. Text that is not JSON, even after
// removing a surrounding code fence, yields ErrMalformedAnalysis.
func ParseAnalysis(answer string) (*core.AnalysisResult, error) {
	payload := stripCodeFence(answer)

	var raw rawAnalysis
	if err := json.Unmarshal([]byte(payload), &raw); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedAnalysis, err)
	}
	return raw.normalize(), nil
}

func (r rawAnalysis) normalize() *core.AnalysisResult {
	result := &core.AnalysisResult{
		Issues:           make([]core.Issue, 0, len(r.Issues)),
		SuggestedChanges: make([]core.SuggestedChange, 0, len(r.SuggestedChanges)),
		GeneralFeedback:  str(r.GeneralFeedback),
	}

	if r.CodeQualityScore != nil {
		result.QualityScore = clampScore(float64(*r.CodeQualityScore))
	}

	for _, ri := range r.Issues {
		severity := strings.ToLower(strings.TrimSpace(str(ri.Severity)))
		if severity == "" {
			severity = core.SeverityLow
		}
		result.Issues = append(result.Issues, core.Issue{
			Severity:    severity,
			Description: str(ri.Description),
			LineNumber:  line(ri.LineNumber),
			Suggestion:  str(ri.Suggestion),
		})
	}

	for _, rc := range r.SuggestedChanges {
		result.SuggestedChanges = append(result.SuggestedChanges, core.SuggestedChange{
			LineNumber:    line(rc.LineNumber),
			OriginalCode:  str(rc.OriginalCode),
			SuggestedCode: str(rc.SuggestedCode),
			Explanation:   str(rc.Explanation),
		})
	}
	return result
}

func clampScore(s float64) float64 {
	switch {
	case s < 0:
		return 0
	case s > 10:
		return 10
	default:
		return s
	}
}

func str(s *flexString) string {
	if s == nil {
		return ""
	}
	return string(*s)
}

// maxLineNumber bounds line numbers so the conversion to int cannot overflow.
const maxLineNumber = math.MaxInt32

func line(n *flexNumber) int {
	if n == nil || *n < 0 || *n > maxLineNumber {
		return 0
	}
	return int(*n)
}

// stripCodeFence removes a ```json ... ``` (or bare ```) wrapper that some
// models put around their answer.
func stripCodeFence(s string) string {
	trimmed := strings.TrimSpace(s)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}
	idx := strings.Index(trimmed, "\n")
	if idx < 0 {
		return trimmed
	}
	inner := trimmed[idx+1:]
	if lastFence := strings.LastIndex(inner, "```"); lastFence >= 0 {
		inner = inner[:lastFence]
	}
	return strings.TrimSpace(inner)
}
