// Package anthropic implements llm.Completer on the Anthropic Messages API.
package anthropic

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/dmitrymomot/namekit/pkg/llm"
)

const (
	DefaultModel     = "claude-3-5-haiku-latest"
	defaultMaxTokens = 1024

	// jsonInstruction stands in for a structured-output mode the Messages API lacks.
	jsonInstruction = "Respond with a single JSON object and no other text."
)

type Config struct {
	APIKey     string `env:"ANTHROPIC_API_KEY"`
	Model      string `env:"ANTHROPIC_MODEL" envDefault:"claude-3-5-haiku-latest"`
	BaseURL    string `env:"ANTHROPIC_BASE_URL"`
	MaxTokens  int64  `env:"ANTHROPIC_MAX_TOKENS" envDefault:"1024"`
	MaxRetries int    `env:"ANTHROPIC_MAX_RETRIES" envDefault:"0"` // SDK retries; 0 means one attempt per request.
}

type Provider struct {
	client    anthropic.Client
	model     string
	maxTokens int64
}

func New(cfg Config) (*Provider, error) {
	if cfg.APIKey == "" {
		return nil, llm.ErrAPIKeyRequired
	}

	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithMaxRetries(cfg.MaxRetries),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}

	p := &Provider{
		client:    anthropic.NewClient(opts...),
		model:     cfg.Model,
		maxTokens: cfg.MaxTokens,
	}
	if p.model == "" {
		p.model = DefaultModel
	}
	if p.maxTokens <= 0 {
		p.maxTokens = defaultMaxTokens
	}
	return p, nil
}

func (p *Provider) Name() string { return "anthropic" }

// Complete joins the text blocks of the reply.
func (p *Provider) Complete(ctx context.Context, req llm.Request) (string, error) {
	resp, err := p.client.Messages.New(ctx, p.buildParams(req))
	if err != nil {
		var apiErr *anthropic.Error
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusTooManyRequests {
			return "", fmt.Errorf("%w: %v", llm.ErrRateLimitExceeded, err)
		}
		return "", fmt.Errorf("%w: anthropic: %v", llm.ErrProviderError, err)
	}

	var sb strings.Builder
	for _, block := range resp.Content {
		if block.Type == "text" {
			sb.WriteString(block.Text)
		}
	}
	if sb.Len() == 0 {
		return "", llm.ErrEmptyCompletion
	}
	return sb.String(), nil
}

func (p *Provider) buildParams(req llm.Request) anthropic.MessageNewParams {
	model := req.Model
	if model == "" {
		model = p.model
	}

	system := req.System
	if req.JSON {
		system = strings.TrimSpace(system + "\n" + jsonInstruction)
	}

	params := anthropic.MessageNewParams{
		Model:       anthropic.Model(model),
		MaxTokens:   p.maxTokens,
		Temperature: anthropic.Float(req.Temperature),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(req.Prompt)),
		},
	}
	if system != "" {
		params.System = []anthropic.TextBlockParam{{Text: system}}
	}
	return params
}
