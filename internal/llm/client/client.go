// Package client wraps the vendor chat-completion SDKs behind one uniform
// capability interface. Every adapter propagates failures as *ProviderError;
// fallback messaging is the caller's concern.
package client

import (
	"context"
	"fmt"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"

	"promptdesk/internal/models"
)

// ChatRequest is the provider-agnostic completion request. System carries
// instruction text for providers with a real system channel; Messages holds
// the conversation turns, latest user turn last.
type ChatRequest struct {
	System      string
	Messages    []models.ChatTurn
	Temperature *float32
}

// ChatResponse is the normalized completion result.
type ChatResponse struct {
	Content  string
	Provider models.Provider
}

// ChatClient is implemented once per provider.
type ChatClient interface {
	ChatCompletion(ctx context.Context, req ChatRequest) (*ChatResponse, error)
}

// ProviderError wraps a vendor-side failure with the provider it came from.
type ProviderError struct {
	Provider models.Provider
	Err      error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider %s: %v", e.Provider, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// toSchemaMessages maps conversation turns onto eino schema messages,
// prepending the system text when present.
func toSchemaMessages(req ChatRequest) []*schema.Message {
	out := make([]*schema.Message, 0, len(req.Messages)+1)
	if req.System != "" {
		out = append(out, schema.SystemMessage(req.System))
	}
	for _, turn := range req.Messages {
		switch turn.Role {
		case models.RoleAssistant:
			out = append(out, schema.AssistantMessage(turn.Content, nil))
		case models.RoleSystem:
			out = append(out, schema.SystemMessage(turn.Content))
		default:
			out = append(out, schema.UserMessage(turn.Content))
		}
	}
	return out
}

// callOptions translates request knobs into eino call options.
func callOptions(req ChatRequest) []model.Option {
	var opts []model.Option
	if req.Temperature != nil {
		opts = append(opts, model.WithTemperature(*req.Temperature))
	}
	return opts
}
