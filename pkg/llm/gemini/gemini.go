// Package gemini implements llm.Completer on the Gemini API through the
// google.golang.org/genai client.
package gemini

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/dmitrymomot/namekit/pkg/llm"
)

const DefaultModel = "gemini-2.0-flash"

type Config struct {
	APIKey  string `env:"GEMINI_API_KEY"`
	Model   string `env:"GEMINI_MODEL" envDefault:"gemini-2.0-flash"`
	BaseURL string `env:"GEMINI_BASE_URL"`
}

// ContentGenerator is the subset of genai.Models the provider calls.
type ContentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

type Provider struct {
	models ContentGenerator
	model  string
}

// New builds a client for the Gemini API backend.
func New(ctx context.Context, cfg Config) (*Provider, error) {
	if cfg.APIKey == "" {
		return nil, llm.ErrAPIKeyRequired
	}

	cc := &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if cfg.BaseURL != "" {
		cc.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.BaseURL}
	}

	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	return NewWithGenerator(client.Models, cfg.Model), nil
}

// NewWithGenerator wraps an existing generator, typically a fake in tests.
func NewWithGenerator(models ContentGenerator, model string) *Provider {
	if model == "" {
		model = DefaultModel
	}
	return &Provider{models: models, model: model}
}

func (p *Provider) Name() string { return "gemini" }

func (p *Provider) Complete(ctx context.Context, req llm.Request) (string, error) {
	model := req.Model
	if model == "" {
		model = p.model
	}

	temp := float32(req.Temperature)
	cfg := &genai.GenerateContentConfig{Temperature: &temp}
	if req.System != "" {
		cfg.SystemInstruction = genai.NewContentFromText(req.System, genai.RoleUser)
	}
	if req.JSON {
		cfg.ResponseMIMEType = "application/json"
	}

	resp, err := p.models.GenerateContent(ctx, model, genai.Text(req.Prompt), cfg)
	if err != nil {
		return "", fmt.Errorf("%w: gemini: %v", llm.ErrProviderError, err)
	}
	if resp == nil || len(resp.Candidates) == 0 {
		return "", llm.ErrEmptyCompletion
	}

	cand := resp.Candidates[0]
	if cand.FinishReason != genai.FinishReasonUnspecified && cand.FinishReason != genai.FinishReasonStop {
		return "", fmt.Errorf("%w: gemini finished with %s", llm.ErrProviderError, cand.FinishReason)
	}
	if cand.Content == nil {
		return "", llm.ErrEmptyCompletion
	}

	var sb strings.Builder
	for _, part := range cand.Content.Parts {
		if part != nil && part.Text != "" && !part.Thought {
			sb.WriteString(part.Text)
		}
	}
	if sb.Len() == 0 {
		return "", llm.ErrEmptyCompletion
	}
	return sb.String(), nil
}
