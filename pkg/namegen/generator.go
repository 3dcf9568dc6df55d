package namegen

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/dmitrymomot/namekit/pkg/llm"
	"github.com/dmitrymomot/namekit/pkg/logger"
)

// DefaultTemperature is the sampling temperature used for suggestions.
const DefaultTemperature = 0.7

// Generator asks a model for domain candidates.
type Generator interface {
	Generate(ctx context.Context, prompt string) ([]DomainCandidate, error)
}

// ModelGenerator adapts an llm.Completer to Generator.
type ModelGenerator struct {
	completer   llm.Completer
	model       string
	temperature float64
	log         *slog.Logger
}

type GeneratorOption func(*ModelGenerator)

// WithModel overrides the provider's default model.
func WithModel(model string) GeneratorOption {
	return func(g *ModelGenerator) {
		g.model = model
	}
}

func WithTemperature(t float64) GeneratorOption {
	return func(g *ModelGenerator) {
		g.temperature = t
	}
}

func WithGeneratorLogger(log *slog.Logger) GeneratorOption {
	return func(g *ModelGenerator) {
		if log != nil {
			g.log = log
		}
	}
}

func NewModelGenerator(completer llm.Completer, opts ...GeneratorOption) *ModelGenerator {
	g := &ModelGenerator{
		completer:   completer,
		temperature: DefaultTemperature,
		log:         slog.Default(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate sends the prompt with SystemInstruction and parses the reply.
// Every failure wraps ErrGenerationFailure.
func (g *ModelGenerator) Generate(ctx context.Context, prompt string) ([]DomainCandidate, error) {
	raw, err := g.completer.Complete(ctx, llm.Request{
		Model:       g.model,
		System:      SystemInstruction,
		Prompt:      prompt,
		Temperature: g.temperature,
		JSON:        true,
	})
	if err != nil {
		return nil, errors.Join(ErrGenerationFailure, err)
	}

	candidates, err := ParseCandidates(raw)
	if err != nil {
		g.log.WarnContext(ctx, "unparseable model reply",
			logger.Provider(g.completer.Name()),
			logger.Error(err),
		)
		return nil, err
	}
	return candidates, nil
}

// ParseCandidates decodes a {"domains":[{"name":..,"tld":..}]} reply.
// A Markdown code fence around the object is tolerated. Entries with an
// empty name or TLD are dropped. An absent or null domains key fails with
// ErrGenerationFailure; an empty array does not.
func ParseCandidates(raw string) ([]DomainCandidate, error) {
	text := stripCodeFence(raw)
	if text == "" {
		return nil, errors.Join(ErrGenerationFailure, errors.New("empty model reply"))
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal([]byte(text), &envelope); err != nil {
		return nil, errors.Join(ErrGenerationFailure, fmt.Errorf("reply is not a JSON object: %w", err))
	}

	domains, ok := envelope["domains"]
	if !ok || bytes.Equal(bytes.TrimSpace(domains), []byte("null")) {
		return nil, errors.Join(ErrGenerationFailure, errors.New("reply has no domains list"))
	}

	var items []DomainCandidate
	if err := json.Unmarshal(domains, &items); err != nil {
		return nil, errors.Join(ErrGenerationFailure, fmt.Errorf("malformed domains list: %w", err))
	}

	out := make([]DomainCandidate, 0, len(items))
	for _, item := range items {
		item.Name = strings.TrimSpace(item.Name)
		item.TLD = strings.TrimPrefix(strings.TrimSpace(item.TLD), ".")
		if item.Name == "" || item.TLD == "" {
			continue
		}
		out = append(out, item)
	}
	return out, nil
}

func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[i+1:]
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
