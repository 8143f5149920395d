package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/cloudwego/eino-ext/components/model/gemini"
	"github.com/cloudwego/eino/components/model"
	"google.golang.org/genai"

	"promptdesk/internal/models"
)

const geminiDefaultModel = "gemini-1.5-flash"

// GeminiModelOptions configures the Gemini chat model.
type GeminiModelOptions struct {
	Model string
}

// GeminiClient sends single-turn text completions to the Gemini API.
type GeminiClient struct {
	chatModel model.BaseChatModel
}

func NewGeminiClient(ctx context.Context, apiKey string, opts GeminiModelOptions) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, errors.New("gemini API key is required")
	}
	if opts.Model == "" {
		opts.Model = geminiDefaultModel
	}

	genaiClient, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	chatModel, err := gemini.NewChatModel(ctx, &gemini.Config{
		Client: genaiClient,
		Model:  opts.Model,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini chat model: %w", err)
	}

	return &GeminiClient{chatModel: chatModel}, nil
}

func (c *GeminiClient) ChatCompletion(ctx context.Context, req ChatRequest) (*ChatResponse, error) {
	out, err := c.chatModel.Generate(ctx, toSchemaMessages(req), callOptions(req)...)
	if err != nil {
		return nil, &ProviderError{Provider: models.ProviderGemini, Err: err}
	}
	return &ChatResponse{Content: out.Content, Provider: models.ProviderGemini}, nil
}
