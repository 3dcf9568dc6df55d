package namegen_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/dmitrymomot/namekit/pkg/namegen"
)

type mockRegistry struct {
	mock.Mock
}

func (m *mockRegistry) Existing(ctx context.Context, names []string) ([]string, error) {
	args := m.Called(ctx, names)
	existing, _ := args.Get(0).([]string)
	return existing, args.Error(1)
}

type mockGenerator struct {
	mock.Mock
}

func (m *mockGenerator) Generate(ctx context.Context, prompt string) ([]namegen.DomainCandidate, error) {
	args := m.Called(ctx, prompt)
	out, _ := args.Get(0).([]namegen.DomainCandidate)
	return out, args.Error(1)
}
