package namegen

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/dmitrymomot/namekit/pkg/logger"
)

// Service runs the full pipeline for one request.
type Service struct {
	generator Generator
	resolver  *Resolver
	links     LinkBuilder
	log       *slog.Logger
}

type ServiceOption func(*Service)

func WithLinkBuilder(b LinkBuilder) ServiceOption {
	return func(s *Service) {
		s.links = b
	}
}

func WithLogger(log *slog.Logger) ServiceOption {
	return func(s *Service) {
		if log != nil {
			s.log = log
		}
	}
}

func NewService(generator Generator, resolver *Resolver, opts ...ServiceOption) *Service {
	s := &Service{
		generator: generator,
		resolver:  resolver,
		log:       slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GenerateRaw validates decoded JSON and runs Generate.
func (s *Service) GenerateRaw(ctx context.Context, raw map[string]any) (*Response, error) {
	req, err := Validate(raw)
	if err != nil {
		return nil, err
	}
	return s.Generate(ctx, req)
}

// Generate prompts the model, classifies the candidates and attaches links.
// Results keep the model's order and duplicates.
func (s *Service) Generate(ctx context.Context, req GenerationRequest) (*Response, error) {
	start := time.Now()

	candidates, err := s.generator.Generate(ctx, BuildPrompt(req))
	if err != nil {
		s.log.ErrorContext(ctx, "domain generation failed",
			logger.Component("namegen.service"),
			logger.Error(err),
		)
		if !errors.Is(err, ErrGenerationFailure) {
			err = errors.Join(ErrGenerationFailure, err)
		}
		return nil, err
	}

	res := s.resolver.Resolve(ctx, candidates)

	out := &Response{
		Results:  make([]DomainResult, 0, len(res.Items)),
		Degraded: res.Degraded,
	}
	for _, item := range res.Items {
		out.Results = append(out.Results, s.links.Enrich(item.Candidate, item.Available))
	}

	s.log.InfoContext(ctx, "domains generated",
		logger.Component("namegen.service"),
		logger.Count("suggestions", len(out.Results)),
		slog.Bool("degraded", out.Degraded),
		logger.Duration(time.Since(start)),
	)
	return out, nil
}
