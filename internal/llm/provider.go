package llm

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/sevigo/goframe/llms"
	"github.com/sevigo/goframe/llms/gemini"
	"github.com/sevigo/goframe/llms/ollama"

	"github.com/sevigo/pr-warden/internal/config"
	"github.com/sevigo/pr-warden/internal/core"
)

// NewOracle builds the generation oracle selected by cfg.Provider.
func NewOracle(ctx context.Context, cfg config.LLMConfig, logger *slog.Logger) (core.GenerationOracle, error) {
	client := newHTTPClient(cfg.Timeout)

	switch cfg.Provider {
	case "http", "":
		return NewHTTPOracle(cfg.APIURL, cfg.APIKey, client, logger), nil
	case "gemini", "ollama":
		model, err := newGeneratorModel(ctx, cfg, client, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to create %s generator: %w", cfg.Provider, err)
		}
		return NewModelOracle(model, cfg.Model, logger), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", cfg.Provider)
	}
}

func newGeneratorModel(ctx context.Context, cfg config.LLMConfig, client *http.Client, logger *slog.Logger) (llms.Model, error) {
	if cfg.Provider == "gemini" {
		if cfg.GeminiAPIKey == "" {
			return nil, fmt.Errorf("GEMINI_API_KEY is not set for gemini provider")
		}
		return gemini.New(ctx,
			gemini.WithModel(cfg.Model),
			gemini.WithAPIKey(cfg.GeminiAPIKey),
		)
	}
	return ollama.New(
		ollama.WithServerURL(cfg.OllamaHost),
		ollama.WithModel(cfg.Model),
		ollama.WithHTTPClient(client),
		ollama.WithLogger(logger),
	)
}

func newHTTPClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = 2 * time.Minute
	}
	transport := &http.Transport{
		DialContext: (&net.Dialer{
			Timeout:   30 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:        20,
		MaxConnsPerHost:     4,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
	}
	return &http.Client{Transport: transport, Timeout: timeout}
}
