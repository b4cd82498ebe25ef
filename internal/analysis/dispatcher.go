package analysis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/sevigo/pr-warden/internal/core"
	"github.com/sevigo/pr-warden/internal/llm"
	"github.com/sevigo/pr-warden/internal/standards"
)

// DefaultMaxTokens bounds the oracle answer when no limit is configured.
const DefaultMaxTokens = 1500

// Dispatcher turns one file into one oracle call and a normalized result.
type Dispatcher struct {
	oracle    core.GenerationOracle
	prompts   *llm.PromptManager
	provider  llm.ModelProvider
	maxTokens int
	logger    *slog.Logger
}

// NewDispatcher creates a Dispatcher. provider selects a provider-specific
// prompt variant when one is embedded.
func NewDispatcher(oracle core.GenerationOracle, prompts *llm.PromptManager, provider string, maxTokens int, logger *slog.Logger) *Dispatcher {
	if maxTokens <= 0 {
		maxTokens = DefaultMaxTokens
	}
	p := llm.DefaultProvider
	if provider != "" {
		p = llm.ModelProvider(provider)
	}
	return &Dispatcher{
		oracle:    oracle,
		prompts:   prompts,
		provider:  p,
		maxTokens: maxTokens,
		logger:    logger,
	}
}

// Analyze asks the oracle to review content against standard.
//
// An unreachable or failing oracle yields an error-flagged result and a nil
// error so the rest of the review can proceed. An answer that is not JSON
// yields an error wrapping llm.ErrMalformedAnalysis.
func (d *Dispatcher) Analyze(ctx context.Context, content, filename string, standard standards.Document) (*core.AnalysisResult, error) {
	if standard == nil {
		standard = standards.Document{}
	}
	standardJSON, err := json.MarshalIndent(standard, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to serialize standards for %s: %w", filename, err)
	}

	language := DetectLanguage(filename)
	prompt, err := d.prompts.Render(llm.CodeAnalysisPrompt, d.provider, llm.AnalysisPromptData{
		Language:  language,
		Filename:  filename,
		Standards: string(standardJSON),
		Code:      content,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to render analysis prompt: %w", err)
	}

	d.logger.Debug("analyzing file", "file", filename, "language", language, "prompt_chars", len(prompt))

	answer, err := d.oracle.Complete(ctx, prompt, d.maxTokens)
	if err != nil {
		var te *llm.TransportError
		if errors.As(err, &te) {
			d.logger.Warn("analysis unavailable", "file", filename, "error", te)
			return &core.AnalysisResult{
				Issues:           []core.Issue{},
				SuggestedChanges: []core.SuggestedChange{},
				Failure:          &core.AnalysisFailure{Error: te.Error(), Message: te.Body},
			}, nil
		}
		return nil, fmt.Errorf("oracle call failed for %s: %w", filename, err)
	}

	result, err := llm.ParseAnalysis(answer)
	if err != nil {
		return nil, fmt.Errorf("analysis of %s: %w", filename, err)
	}
	return result, nil
}
