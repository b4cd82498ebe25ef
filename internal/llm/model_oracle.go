package llm

import (
	"context"
	"log/slog"

	"github.com/sevigo/goframe/llms"
)

// ModelOracle adapts a goframe model (ollama, gemini) to the oracle contract.
type ModelOracle struct {
	model  llms.Model
	name   string
	logger *slog.Logger
}

// NewModelOracle wraps model.
func NewModelOracle(model llms.Model, name string, logger *slog.Logger) *ModelOracle {
	return &ModelOracle{model: model, name: name, logger: logger}
}

// Complete calls the model once. Any model failure is reported as a transport error.
func (o *ModelOracle) Complete(ctx context.Context, prompt string, maxTokens int) (string, error) {
	o.logger.Debug("calling generator model", "model", o.name, "max_tokens", maxTokens, "prompt_chars", len(prompt))

	var opts []llms.CallOption
	if maxTokens > 0 {
		opts = append(opts, llms.WithMaxTokens(maxTokens))
	}

	answer, err := o.model.Call(ctx, prompt, opts...)
	if err != nil {
		o.logger.Warn("generator model call failed", "model", o.name, "error", err)
		return "", &TransportError{Err: err}
	}
	return answer, nil
}
