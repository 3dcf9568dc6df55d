// Package namegen turns a user's naming brief into domain name suggestions.
//
// A request flows through five stages, each usable on its own:
//
//	Validate      raw decoded JSON  -> GenerationRequest
//	BuildPrompt   GenerationRequest -> prompt text
//	Generator     prompt text       -> []DomainCandidate
//	Resolver      []DomainCandidate -> availability per candidate
//	LinkBuilder   candidate         -> DomainResult with affiliate links
//
// Service wires the stages together. Model failures fail the whole request
// with ErrGenerationFailure. Registry failures never do: the resolver logs
// them, treats every candidate as available and marks the response degraded.
//
// Basic usage:
//
//	svc := namegen.NewService(
//		namegen.NewModelGenerator(completer),
//		namegen.NewResolver(store, namegen.WithResolverLogger(log)),
//	)
//	resp, err := svc.GenerateRaw(ctx, body)
package namegen
