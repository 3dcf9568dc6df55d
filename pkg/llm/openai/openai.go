// Package openai implements llm.Completer on the OpenAI chat completions API.
package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/dmitrymomot/namekit/pkg/llm"
)

const (
	DefaultModel   = "gpt-4o-mini"
	DefaultBaseURL = "https://api.openai.com/v1"

	defaultTimeout = 60 * time.Second
)

type Config struct {
	APIKey  string `env:"OPENAI_API_KEY"`
	Model   string `env:"OPENAI_API_MODEL" envDefault:"gpt-4o-mini"`
	BaseURL string `env:"OPENAI_BASE_URL" envDefault:"https://api.openai.com/v1"`

	// HTTPClient defaults to a client with a 60s timeout.
	HTTPClient *http.Client
}

// Provider talks to /chat/completions.
type Provider struct {
	apiKey  string
	model   string
	baseURL string
	client  *http.Client
}

func New(cfg Config) (*Provider, error) {
	if cfg.APIKey == "" {
		return nil, llm.ErrAPIKeyRequired
	}
	p := &Provider{
		apiKey:  cfg.APIKey,
		model:   cfg.Model,
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		client:  cfg.HTTPClient,
	}
	if p.model == "" {
		p.model = DefaultModel
	}
	if p.baseURL == "" {
		p.baseURL = DefaultBaseURL
	}
	if p.client == nil {
		p.client = &http.Client{Timeout: defaultTimeout}
	}
	return p, nil
}

func (p *Provider) Name() string { return "openai" }

// Complete sends the system and user messages and returns the first choice.
func (p *Provider) Complete(ctx context.Context, req llm.Request) (string, error) {
	model := req.Model
	if model == "" {
		model = p.model
	}

	body := chatRequest{
		Model: model,
		Messages: []chatMessage{
			{Role: "system", Content: req.System},
			{Role: "user", Content: req.Prompt},
		},
		Temperature: req.Temperature,
	}
	if req.JSON {
		body.ResponseFormat = &responseFormat{Type: "json_object"}
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+p.apiKey)

	resp, err := p.client.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("API request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var apiErr errorResponse
		if json.Unmarshal(raw, &apiErr) == nil && apiErr.Error.Message != "" {
			if resp.StatusCode == http.StatusTooManyRequests {
				return "", fmt.Errorf("%w: %s", llm.ErrRateLimitExceeded, apiErr.Error.Message)
			}
			return "", fmt.Errorf("%w: openai: %s", llm.ErrProviderError, apiErr.Error.Message)
		}
		return "", fmt.Errorf("%w: openai returned status %d", llm.ErrProviderError, resp.StatusCode)
	}

	var out chatResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return "", fmt.Errorf("failed to parse response: %w", err)
	}
	if len(out.Choices) == 0 || out.Choices[0].Message.Content == "" {
		return "", llm.ErrEmptyCompletion
	}
	return out.Choices[0].Message.Content, nil
}

type chatRequest struct {
	Model          string          `json:"model"`
	Messages       []chatMessage   `json:"messages"`
	Temperature    float64         `json:"temperature"`
	ResponseFormat *responseFormat `json:"response_format,omitempty"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

type errorResponse struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}
