package namegen

import (
	"context"
	"log/slog"

	"golang.org/x/text/cases"

	"github.com/dmitrymomot/namekit/pkg/logger"
)

// Registry reports which of the given full domain names are registered.
// Implementations match case-insensitively.
type Registry interface {
	Existing(ctx context.Context, names []string) ([]string, error)
}

// Availability is the classification of one candidate.
type Availability struct {
	Candidate DomainCandidate
	Available bool
}

// Resolution holds classifications in candidate order.
type Resolution struct {
	Items []Availability
	// Degraded means the registry failed and every item is marked available.
	Degraded bool
}

// Resolver classifies candidates with a single registry query per call.
type Resolver struct {
	registry Registry
	log      *slog.Logger
}

type ResolverOption func(*Resolver)

func WithResolverLogger(log *slog.Logger) ResolverOption {
	return func(r *Resolver) {
		if log != nil {
			r.log = log
		}
	}
}

func NewResolver(registry Registry, opts ...ResolverOption) *Resolver {
	r := &Resolver{
		registry: registry,
		log:      slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve never fails. A registry error is logged as ErrRegistryDegraded
// and every candidate is reported available.
func (r *Resolver) Resolve(ctx context.Context, candidates []DomainCandidate) Resolution {
	names := make([]string, len(candidates))
	for i, c := range candidates {
		names[i] = c.FullName()
	}

	// cases.Caser is stateful, one per call
	fold := cases.Fold()

	var degraded bool
	taken := make(map[string]struct{})
	existing, err := r.registry.Existing(ctx, names)
	if err != nil {
		degraded = true
		r.log.WarnContext(ctx, ErrRegistryDegraded.Error(),
			logger.Component("namegen.resolver"),
			logger.Event("registry_degraded"),
			logger.Count("candidates", len(names)),
			logger.Error(err),
		)
	} else {
		for _, name := range existing {
			taken[fold.String(name)] = struct{}{}
		}
	}

	items := make([]Availability, len(candidates))
	for i, c := range candidates {
		_, found := taken[fold.String(names[i])]
		items[i] = Availability{Candidate: c, Available: !found}
	}
	return Resolution{Items: items, Degraded: degraded}
}
