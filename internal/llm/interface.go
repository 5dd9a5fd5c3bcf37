// Package llm defines the narrow language-model contract the
// orchestrators depend on. Implementations live in subpackages.
package llm

//go:generate mockgen -destination=mock/mock_provider.go -package=llmmock -source=interface.go

import (
	"context"
)

// Role tags who authored a message in a completion exchange
type Role string

// Message roles
const (
	RoleSystem Role = "system"
	RoleUser   Role = "user"
)

// Message is one role-tagged entry in a completion request
type Message struct {
	Role    Role
	Content string
}

// CompletionRequest carries a full prompt exchange to the provider
type CompletionRequest struct {
	Messages []Message

	// MaxTokens caps the response length; 0 means provider default
	MaxTokens int

	// Temperature steers sampling; nil means provider default
	Temperature *float32
}

// CompletionResponse is the provider's raw text answer. Text may be
// empty on a successful call; callers treat that as distinct from an
// error return.
type CompletionResponse struct {
	Text string
}

// Provider is the language-model boundary. IsConfigured reports
// whether calls can be attempted at all; callers use it to select
// deterministic fallbacks without burning a request.
type Provider interface {
	IsConfigured() bool
	Complete(ctx context.Context, req CompletionRequest) (*CompletionResponse, error)
}
