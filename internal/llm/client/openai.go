package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"

	"promptdesk/internal/models"
)

const openAIDefaultModel = "gpt-3.5-turbo"

// OpenAIModelOptions configures the ChatGPT chat model.
type OpenAIModelOptions struct {
	Model string
}

// OpenAIClient sends structured message lists to the ChatGPT API. Instruction
// text on the request's system channel is merged into an existing system turn
// when the conversation already carries one, otherwise prepended as a new
// system message.
type OpenAIClient struct {
	chatModel model.BaseChatModel
}

func NewOpenAIClient(ctx context.Context, apiKey string, opts OpenAIModelOptions) (*OpenAIClient, error) {
	if apiKey == "" {
		return nil, errors.New("openai API key is required")
	}
	if opts.Model == "" {
		opts.Model = openAIDefaultModel
	}

	chatModel, err := openai.NewChatModel(ctx, &openai.ChatModelConfig{
		APIKey: apiKey,
		Model:  opts.Model,
	})
	if err != nil {
		return nil, fmt.Errorf("create openai chat model: %w", err)
	}

	return &OpenAIClient{chatModel: chatModel}, nil
}

func (c *OpenAIClient) ChatCompletion(ctx context.Context, req ChatRequest) (*ChatResponse, error) {
	out, err := c.chatModel.Generate(ctx, openAIMessages(req), callOptions(req)...)
	if err != nil {
		return nil, &ProviderError{Provider: models.ProviderChatGPT, Err: err}
	}
	return &ChatResponse{Content: out.Content, Provider: models.ProviderChatGPT}, nil
}

// openAIMessages maps the request onto schema messages, folding the system
// text into the conversation's own system turn when one exists.
func openAIMessages(req ChatRequest) []*schema.Message {
	hasSystemTurn := false
	for _, turn := range req.Messages {
		if turn.Role == models.RoleSystem {
			hasSystemTurn = true
			break
		}
	}

	out := make([]*schema.Message, 0, len(req.Messages)+1)
	if req.System != "" && !hasSystemTurn {
		out = append(out, schema.SystemMessage(req.System))
	}
	merged := false
	for _, turn := range req.Messages {
		switch turn.Role {
		case models.RoleSystem:
			content := turn.Content
			if req.System != "" && !merged {
				content = req.System + "\n\n" + content
				merged = true
			}
			out = append(out, schema.SystemMessage(content))
		case models.RoleAssistant:
			out = append(out, schema.AssistantMessage(turn.Content, nil))
		default:
			out = append(out, schema.UserMessage(turn.Content))
		}
	}
	return out
}
