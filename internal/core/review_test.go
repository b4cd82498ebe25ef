package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPRKey_String(t *testing.T) {
	assert.Equal(t, "billing-api_42", PRKey{Repo: "billing-api", Number: 42}.String())
}

func TestFileChange_HasContent(t *testing.T) {
	tests := []struct {
		name string
		file FileChange
		want bool
	}{
		{name: "content present", file: FileChange{Content: "package main"}, want: true},
		{name: "empty content", file: FileChange{}, want: false},
		{name: "retrieval error wins over placeholder text", file: FileChange{Content: "Error retrieving content: 404", ContentError: "404"}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.file.HasContent())
		})
	}
}

func TestAnalysisResult_Failed(t *testing.T) {
	var nilResult *AnalysisResult
	assert.True(t, nilResult.Failed())
	assert.True(t, (&AnalysisResult{Failure: &AnalysisFailure{Error: "boom"}}).Failed())
	assert.False(t, (&AnalysisResult{QualityScore: 7}).Failed())
}
