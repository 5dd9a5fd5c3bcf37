// Package openai implements llm.Provider on top of the OpenAI chat
// completion API (or any compatible endpoint via BaseURL).
package openai

import (
	"context"
	"time"

	"github.com/sashabaranov/go-openai"

	"github.com/storyforge/storyforge-api/internal/errors"
	"github.com/storyforge/storyforge-api/internal/llm"
)

const defaultTimeout = 60 * time.Second

// Config holds what the client needs to talk to the API
type Config struct {
	APIKey  string
	BaseURL string
	Model   string

	// Timeout bounds each Complete call; zero means defaultTimeout
	Timeout time.Duration
}

// Validate ensures required fields are set
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}
	vb := errors.NewValidationBuilder()
	if c.APIKey == "" {
		vb.RequiredField("APIKey")
	}
	if c.Model == "" {
		vb.RequiredField("Model")
	}
	return vb.Build()
}

// Client calls the OpenAI chat completion API
type Client struct {
	api     *openai.Client
	model   string
	timeout time.Duration
}

// NewClient creates a configured OpenAI-backed provider
func NewClient(cfg *Config) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	apiCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		apiCfg.BaseURL = cfg.BaseURL
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &Client{
		api:     openai.NewClientWithConfig(apiCfg),
		model:   cfg.Model,
		timeout: timeout,
	}, nil
}

// IsConfigured always reports true; unconfigured deployments get the
// noop provider instead
func (c *Client) IsConfigured() bool {
	return true
}

// Complete sends the exchange to the API and returns the first choice
func (c *Client) Complete(ctx context.Context, req llm.CompletionRequest) (*llm.CompletionResponse, error) {
	if len(req.Messages) == 0 {
		return nil, errors.InvalidArgument("at least one message is required")
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	messages := make([]openai.ChatCompletionMessage, 0, len(req.Messages))
	for _, m := range req.Messages {
		role := openai.ChatMessageRoleUser
		if m.Role == llm.RoleSystem {
			role = openai.ChatMessageRoleSystem
		}
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    role,
			Content: m.Content,
		})
	}

	apiReq := openai.ChatCompletionRequest{
		Model:    c.model,
		Messages: messages,
	}
	if req.MaxTokens > 0 {
		apiReq.MaxTokens = req.MaxTokens
	}
	if req.Temperature != nil {
		apiReq.Temperature = *req.Temperature
	}

	resp, err := c.api.CreateChatCompletion(ctx, apiReq)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "chat completion request failed")
	}
	if len(resp.Choices) == 0 {
		return &llm.CompletionResponse{}, nil
	}

	return &llm.CompletionResponse{Text: resp.Choices[0].Message.Content}, nil
}
