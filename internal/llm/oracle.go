package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/tidwall/gjson"
)

// answerPath is where the completion endpoint puts the generated text.
const answerPath = "choices.0.text"

// ErrMalformedCompletion is returned when a successful completion response does
// not carry answer text at the expected path.
var ErrMalformedCompletion = errors.New("completion response has no answer text")

// TransportError reports that the oracle could not be reached or answered
// with a non-success status.
type TransportError struct {
	StatusCode int
	Body       string
	Err        error
}

func (e *TransportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("API request failed: %v", e.Err)
	}
	return fmt.Sprintf("API request failed with status %d", e.StatusCode)
}

func (e *TransportError) Unwrap() error { return e.Err }

type completionRequest struct {
	Prompt    string `json:"prompt"`
	MaxTokens int    `json:"max_tokens"`
}

// HTTPOracle talks to a plain completion endpoint: it posts
// {"prompt", "max_tokens"} and reads the answer from choices[0].text.
type HTTPOracle struct {
	url    string
	apiKey string
	client *http.Client
	logger *slog.Logger
}

// NewHTTPOracle creates an oracle for the completion endpoint at url.
func NewHTTPOracle(url, apiKey string, client *http.Client, logger *slog.Logger) *HTTPOracle {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPOracle{url: url, apiKey: apiKey, client: client, logger: logger}
}

// Complete sends one synchronous completion request.
func (o *HTTPOracle) Complete(ctx context.Context, prompt string, maxTokens int) (string, error) {
	payload, err := json.Marshal(completionRequest{Prompt: prompt, MaxTokens: maxTokens})
	if err != nil {
		return "", fmt.Errorf("marshaling completion request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, o.url, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("creating completion request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if o.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+o.apiKey)
	}

	resp, err := o.client.Do(req)
	if err != nil {
		o.logger.Warn("oracle request failed", "url", o.url, "error", err)
		return "", &TransportError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &TransportError{StatusCode: resp.StatusCode, Err: fmt.Errorf("reading response: %w", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		o.logger.Warn("oracle returned non-success status", "status", resp.StatusCode)
		return "", &TransportError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	if !gjson.ValidBytes(body) {
		return "", fmt.Errorf("%w: response body is not JSON", ErrMalformedCompletion)
	}
	answer := gjson.GetBytes(body, answerPath)
	if !answer.Exists() || answer.Type != gjson.String {
		return "", fmt.Errorf("%w: missing %s", ErrMalformedCompletion, answerPath)
	}
	return answer.String(), nil
}
