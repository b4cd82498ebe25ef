package analysis

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/sevigo/pr-warden/internal/core"
	"github.com/sevigo/pr-warden/internal/llm"
	"github.com/sevigo/pr-warden/internal/logger"
	"github.com/sevigo/pr-warden/internal/standards"
	"github.com/sevigo/pr-warden/mocks"
)

func newTestDispatcher(t *testing.T, oracle core.GenerationOracle) *Dispatcher {
	t.Helper()
	prompts, err := llm.NewPromptManager()
	require.NoError(t, err)
	return NewDispatcher(oracle, prompts, "", 0, logger.Discard())
}

func TestDispatcher_Analyze(t *testing.T) {
	ctrl := gomock.NewController(t)
	oracle := mocks.NewMockGenerationOracle(ctrl)

	var prompt string
	oracle.EXPECT().
		Complete(gomock.Any(), gomock.Any(), DefaultMaxTokens).
		DoAndReturn(func(_ context.Context, p string, _ int) (string, error) {
			prompt = p
			return `{
				"issues": [{"severity": "HIGH", "description": "unused import", "line_number": 1, "suggestion": "remove it"}],
				"code_quality_score": 7,
				"suggested_changes": [],
				"general_feedback": "fine"
			}`, nil
		})

	d := newTestDispatcher(t, oracle)
	standard := standards.Document{"style_guide": "PEP 8"}

	result, err := d.Analyze(context.Background(), "import os\n", "tools/run.py", standard)
	require.NoError(t, err)
	require.False(t, result.Failed())

	assert.InDelta(t, 7.0, result.QualityScore, 0.001)
	require.Len(t, result.Issues, 1)
	assert.Equal(t, core.SeverityHigh, result.Issues[0].Severity)
	assert.Empty(t, result.SuggestedChanges)

	assert.Contains(t, prompt, "Analyze the following Python code")
	assert.Contains(t, prompt, `"style_guide": "PEP 8"`)
	assert.Contains(t, prompt, "File: tools/run.py")
	assert.Contains(t, prompt, "import os")
}

func TestDispatcher_Analyze_TransportFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	oracle := mocks.NewMockGenerationOracle(ctrl)
	oracle.EXPECT().
		Complete(gomock.Any(), gomock.Any(), gomock.Any()).
		Return("", &llm.TransportError{StatusCode: 503, Body: "overloaded"})

	result, err := newTestDispatcher(t, oracle).Analyze(context.Background(), "x", "b.go", nil)
	require.NoError(t, err)
	require.True(t, result.Failed())
	assert.Equal(t, "API request failed with status 503", result.Failure.Error)
	assert.Equal(t, "overloaded", result.Failure.Message)
	assert.Empty(t, FormatReviewComments(result, "b.go"))
}

func TestDispatcher_Analyze_MalformedAnswer(t *testing.T) {
	ctrl := gomock.NewController(t)
	oracle := mocks.NewMockGenerationOracle(ctrl)
	oracle.EXPECT().
		Complete(gomock.Any(), gomock.Any(), gomock.Any()).
		Return("I think this code looks great!", nil)

	_, err := newTestDispatcher(t, oracle).Analyze(context.Background(), "x", "a.py", nil)
	assert.ErrorIs(t, err, llm.ErrMalformedAnalysis)
}

func TestDispatcher_Analyze_OtherOracleError(t *testing.T) {
	ctrl := gomock.NewController(t)
	oracle := mocks.NewMockGenerationOracle(ctrl)
	oracle.EXPECT().
		Complete(gomock.Any(), gomock.Any(), gomock.Any()).
		Return("", llm.ErrMalformedCompletion)

	_, err := newTestDispatcher(t, oracle).Analyze(context.Background(), "x", "a.py", nil)
	assert.ErrorIs(t, err, llm.ErrMalformedCompletion)
}

func TestDispatcher_UsesConfiguredMaxTokens(t *testing.T) {
	ctrl := gomock.NewController(t)
	oracle := mocks.NewMockGenerationOracle(ctrl)
	oracle.EXPECT().Complete(gomock.Any(), gomock.Any(), 800).Return(`{}`, nil)

	prompts, err := llm.NewPromptManager()
	require.NoError(t, err)
	d := NewDispatcher(oracle, prompts, "ollama", 800, logger.Discard())

	result, err := d.Analyze(context.Background(), "x", "a.unknown", nil)
	require.NoError(t, err)
	assert.Zero(t, result.QualityScore)
	assert.Empty(t, result.Issues)
}

func TestFormatReviewComments(t *testing.T) {
	result := &core.AnalysisResult{
		Issues: []core.Issue{
			{Severity: "high", Description: "SQL injection", LineNumber: 12, Suggestion: "use placeholders"},
			{Severity: "low", Description: "long line", LineNumber: 3},
		},
		SuggestedChanges: []core.SuggestedChange{
			{LineNumber: 12, OriginalCode: "q + id", SuggestedCode: "q, id", Explanation: "parameterize"},
		},
	}

	comments := FormatReviewComments(result, "db.py")
	require.Len(t, comments, 3)

	assert.Equal(t, core.ReviewComment{
		Path: "db.py",
		Line: 12,
		Body: "**HIGH Issue**: SQL injection\n\nSuggestion: use placeholders",
	}, comments[0])
	assert.Equal(t, "**LOW Issue**: long line", comments[1].Body)
	assert.Equal(t, 3, comments[1].Line)
	assert.Equal(t, "**Suggested Change**:\n\n```suggestion\nq, id\n```\n\nparameterize", comments[2].Body)
	assert.Equal(t, 12, comments[2].Line)
}

func TestFormatReviewComments_Nil(t *testing.T) {
	assert.Nil(t, FormatReviewComments(nil, "a.py"))
	assert.Nil(t, FormatReviewComments(&core.AnalysisResult{Failure: &core.AnalysisFailure{Error: "x"}}, "a.py"))
	assert.Empty(t, FormatReviewComments(&core.AnalysisResult{}, "a.py"))
}

