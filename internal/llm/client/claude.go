package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/cloudwego/eino-ext/components/model/claude"
	"github.com/cloudwego/eino/components/model"

	"promptdesk/internal/models"
)

const (
	claudeDefaultModel     = "claude-3-opus-20240229"
	claudeDefaultMaxTokens = 1024
)

// ClaudeModelOptions configures the Claude chat model.
type ClaudeModelOptions struct {
	Model     string
	MaxTokens int
}

// ClaudeClient sends completions to the Anthropic API. Instruction text
// arrives on the request's system channel; there is no prompt splitting.
type ClaudeClient struct {
	chatModel model.BaseChatModel
}

func NewClaudeClient(ctx context.Context, apiKey string, opts ClaudeModelOptions) (*ClaudeClient, error) {
	if apiKey == "" {
		return nil, errors.New("claude API key is required")
	}
	if opts.Model == "" {
		opts.Model = claudeDefaultModel
	}
	if opts.MaxTokens == 0 {
		opts.MaxTokens = claudeDefaultMaxTokens
	}

	chatModel, err := claude.NewChatModel(ctx, &claude.Config{
		APIKey:    apiKey,
		Model:     opts.Model,
		MaxTokens: opts.MaxTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("create claude chat model: %w", err)
	}

	return &ClaudeClient{chatModel: chatModel}, nil
}

func (c *ClaudeClient) ChatCompletion(ctx context.Context, req ChatRequest) (*ChatResponse, error) {
	out, err := c.chatModel.Generate(ctx, toSchemaMessages(req), callOptions(req)...)
	if err != nil {
		return nil, &ProviderError{Provider: models.ProviderClaude, Err: err}
	}
	return &ChatResponse{Content: out.Content, Provider: models.ProviderClaude}, nil
}
