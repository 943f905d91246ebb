package huggingface

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/phrazzld/studybuddy-api/internal/config"
	"github.com/phrazzld/studybuddy-api/internal/generation"
)

// Generation parameters sent with every request.
const (
	maxLength   = 1000
	temperature = 0.7
)

// maxErrorBody bounds how much of an error response is read for logging.
const maxErrorBody = 512

type parameters struct {
	MaxLength   int     `json:"max_length"`
	Temperature float64 `json:"temperature"`
	DoSample    bool    `json:"do_sample"`
}

type request struct {
	Inputs     string     `json:"inputs"`
	Parameters parameters `json:"parameters"`
}

// result is one element of the response array. Text-generation models answer
// with generated_text; summarization models with summary_text.
type result struct {
	GeneratedText *string `json:"generated_text"`
	SummaryText   *string `json:"summary_text"`
}

// Client calls a Hugging Face inference endpoint.
type Client struct {
	httpClient *http.Client
	url        string
	apiKey     string
	logger     *slog.Logger
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(client *Client) {
		client.httpClient = c
	}
}

// NewClient creates a Client for the configured model URL.
// An empty API key is accepted; every Generate call then fails with
// generation.ErrNotConfigured.
func NewClient(logger *slog.Logger, cfg config.LLMConfig, opts ...Option) (*Client, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if cfg.HuggingFaceURL == "" {
		return nil, fmt.Errorf("%w: hugging face URL cannot be empty", generation.ErrInvalidConfig)
	}

	c := &Client{
		httpClient: http.DefaultClient,
		url:        cfg.HuggingFaceURL,
		apiKey:     cfg.HuggingFaceAPIKey,
		logger:     logger.With("component", "huggingface_client"),
	}
	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// Generate sends prompt to the model and returns the generated text.
// It makes exactly one attempt.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	if c.apiKey == "" {
		return "", fmt.Errorf("%w: hugging face API key is not set", generation.ErrNotConfigured)
	}

	body, err := json.Marshal(request{
		Inputs: prompt,
		Parameters: parameters{
			MaxLength:   maxLength,
			Temperature: temperature,
			DoSample:    true,
		},
	})
	if err != nil {
		return "", fmt.Errorf("%w: failed to encode request: %v", generation.ErrInvalidConfig, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("%w: failed to create request: %v", generation.ErrInvalidConfig, err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	c.logger.DebugContext(ctx, "calling hugging face inference API", "prompt_length", len(prompt))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", generation.ErrTransientFailure, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		c.logger.WarnContext(ctx, "hugging face API returned non-success status",
			"status", resp.StatusCode,
			"body_length", len(snippet))
		return "", fmt.Errorf("%w: status %d", generation.ErrUpstreamStatus, resp.StatusCode)
	}

	var results []result
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return "", fmt.Errorf("%w: failed to decode response: %v", generation.ErrInvalidResponse, err)
	}
	if len(results) == 0 {
		return "", fmt.Errorf("%w: empty result list", generation.ErrInvalidResponse)
	}

	var text string
	switch {
	case results[0].GeneratedText != nil:
		text = *results[0].GeneratedText
	case results[0].SummaryText != nil:
		text = *results[0].SummaryText
	default:
		return "", fmt.Errorf("%w: no generated_text in response", generation.ErrInvalidResponse)
	}
	if text == "" {
		return "", fmt.Errorf("%w: empty generated text", generation.ErrInvalidResponse)
	}

	return text, nil
}

var _ generation.Generator = (*Client)(nil)
