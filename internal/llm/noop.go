package llm

import (
	"context"

	"github.com/storyforge/storyforge-api/internal/errors"
)

// noopProvider is used when no API key is configured. It never
// succeeds; orchestrators check IsConfigured first and fall back.
type noopProvider struct{}

// NewNoopProvider returns a Provider that reports unconfigured and
// refuses completion calls
func NewNoopProvider() Provider {
	return &noopProvider{}
}

func (p *noopProvider) IsConfigured() bool {
	return false
}

func (p *noopProvider) Complete(_ context.Context, _ CompletionRequest) (*CompletionResponse, error) {
	return nil, errors.Unavailable("language model provider is not configured")
}
