package llm

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sevigo/pr-warden/internal/core"
)

func TestParseAnalysis(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		expectErr bool
		checkFunc func(t *testing.T, got *core.AnalysisResult)
	}{
		{
			name: "Complete answer",
			input: `{
  "issues": [{"severity": "HIGH", "description": "SQL built by concatenation", "line_number": 12, "suggestion": "Use placeholders"}],
  "code_quality_score": 6.5,
  "suggested_changes": [{"line_number": 12, "original_code": "q + id", "suggested_code": "q, id", "explanation": "Avoid injection"}],
  "general_feedback": "Mostly fine."
}`,
			checkFunc: func(t *testing.T, got *core.AnalysisResult) {
				require.Len(t, got.Issues, 1)
				assert.Equal(t, core.Issue{Severity: "high", Description: "SQL built by concatenation", LineNumber: 12, Suggestion: "Use placeholders"}, got.Issues[0])
				assert.InDelta(t, 6.5, got.QualityScore, 1e-9)
				require.Len(t, got.SuggestedChanges, 1)
				assert.Equal(t, "q, id", got.SuggestedChanges[0].SuggestedCode)
				assert.Equal(t, "Mostly fine.", got.GeneralFeedback)
				assert.False(t, got.Failed())
			},
		},
		{
			name:  "Missing keys default to empty",
			input: `{"general_feedback": "nothing to add"}`,
			checkFunc: func(t *testing.T, got *core.AnalysisResult) {
				assert.Empty(t, got.Issues)
				assert.NotNil(t, got.Issues)
				assert.Empty(t, got.SuggestedChanges)
				assert.Zero(t, got.QualityScore)
			},
		},
		{
			name:  "Issue without severity or line",
			input: `{"issues": [{"description": "magic number"}]}`,
			checkFunc: func(t *testing.T, got *core.AnalysisResult) {
				require.Len(t, got.Issues, 1)
				assert.Equal(t, core.SeverityLow, got.Issues[0].Severity)
				assert.Zero(t, got.Issues[0].LineNumber)
			},
		},
		{
			name:  "Numeric strings and out of range score",
			input: `{"code_quality_score": "14", "issues": [{"severity": "medium", "line_number": "33"}]}`,
			checkFunc: func(t *testing.T, got *core.AnalysisResult) {
				assert.InDelta(t, 10, got.QualityScore, 1e-9)
				assert.Equal(t, 33, got.Issues[0].LineNumber)
			},
		},
		{
			name:  "Negative score clamps to zero",
			input: `{"code_quality_score": -3}`,
			checkFunc: func(t *testing.T, got *core.AnalysisResult) {
				assert.Zero(t, got.QualityScore)
			},
		},
		{
			name:  "Non-finite score decodes to zero",
			input: `{"code_quality_score": "nan", "suggested_changes": [{"line_number": "Infinity"}]}`,
			checkFunc: func(t *testing.T, got *core.AnalysisResult) {
				assert.Zero(t, got.QualityScore)
				assert.Zero(t, got.SuggestedChanges[0].LineNumber)
				_, err := json.Marshal(got)
				assert.NoError(t, err)
			},
		},
		{
			name:  "Line number out of int range",
			input: `{"code_quality_score": "Inf", "issues": [{"line_number": "1e300"}, {"line_number": 1e300}, {"line_number": -4}]}`,
			checkFunc: func(t *testing.T, got *core.AnalysisResult) {
				assert.Zero(t, got.QualityScore)
				require.Len(t, got.Issues, 3)
				for _, issue := range got.Issues {
					assert.Zero(t, issue.LineNumber)
				}
			},
		},
		{
			name:  "Fenced JSON",
			input: "```json\n{\"code_quality_score\": 8}\n```",
			checkFunc: func(t *testing.T, got *core.AnalysisResult) {
				assert.InDelta(t, 8, got.QualityScore, 1e-9)
			},
		},
		{
			name:      "Plain prose",
			input:     "The code looks great, 9/10!",
			expectErr: true,
		},
		{
			name:      "Truncated JSON",
			input:     `{"issues": [`,
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAnalysis(tt.input)
			if tt.expectErr {
				require.ErrorIs(t, err, ErrMalformedAnalysis)
				return
			}
			require.NoError(t, err)
			tt.checkFunc(t, got)
		})
	}
}

func TestStripCodeFence(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "No fence", input: `  {"a":1}  `, want: `{"a":1}`},
		{name: "JSON fence", input: "```json\n{\"a\":1}\n```", want: `{"a":1}`},
		{name: "Bare fence", input: "```\n{\"a\":1}\n```\n", want: `{"a":1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, stripCodeFence(tt.input))
		})
	}
}
