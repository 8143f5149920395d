// Package llm routes composed prompts to the selected provider adapter,
// applying the history window and reshaping the conversation into whatever
// input shape that provider needs.
package llm

import (
	"context"
	"fmt"
	"strings"

	"promptdesk/internal/llm/client"
	"promptdesk/internal/llm/prompt"
	"promptdesk/internal/models"
)

// SettingsSource exposes the scalar settings the router reads per send, so
// the llm package does not import the settings service.
type SettingsSource interface {
	MessageHistoryEnabled() bool
	MessageHistoryLength() int
	Temperature() float64
}

// ClientFactory resolves a provider to a ready adapter, including API-key
// lookup. A missing key surfaces here as a plain error.
type ClientFactory func(ctx context.Context, provider models.Provider) (client.ChatClient, error)

// SendInput is one routed send: the structured instruction/user pair plus the
// prior session turns. History is windowed by the router, never by callers.
type SendInput struct {
	Provider     models.Provider
	Instructions prompt.Instructions
	History      []models.ChatTurn
}

type Router struct {
	settings SettingsSource
	factory  ClientFactory
}

func NewRouter(settings SettingsSource, factory ClientFactory) *Router {
	return &Router{settings: settings, factory: factory}
}

// SendMessage dispatches one send to the chosen provider and returns the
// normalized response text. Adapter failures propagate untouched; the caller
// owns fallback messaging.
func (r *Router) SendMessage(ctx context.Context, in SendInput) (string, error) {
	cli, err := r.factory(ctx, in.Provider)
	if err != nil {
		return "", err
	}

	history := r.window(in.History)
	temperature := float32(r.settings.Temperature())

	var req client.ChatRequest
	switch in.Provider {
	case models.ProviderGemini:
		// Single text blob: history as "User: "/"Model: " lines, then the
		// instruction-augmented current turn.
		blob := flattenHistory(history, "User: ", "Model: ") +
			"User: " + in.Instructions.System + in.Instructions.User
		req = client.ChatRequest{
			Messages:    []models.ChatTurn{{Role: models.RoleUser, Content: blob}},
			Temperature: &temperature,
		}
	case models.ProviderClaude:
		// Instructions ride the system channel; the user message is the
		// flattened conversation ending in the current turn.
		blob := flattenHistory(history, "Human: ", "Assistant: ") +
			"Human: " + in.Instructions.User
		req = client.ChatRequest{
			System:      in.Instructions.System,
			Messages:    []models.ChatTurn{{Role: models.RoleUser, Content: blob}},
			Temperature: &temperature,
		}
	case models.ProviderChatGPT:
		// Structured message list. The store keeps temperature normalized to
		// [0,1]; the OpenAI API takes [0,2].
		scaled := temperature * 2
		turns := make([]models.ChatTurn, 0, len(history)+1)
		turns = append(turns, history...)
		turns = append(turns, models.ChatTurn{Role: models.RoleUser, Content: in.Instructions.User})
		req = client.ChatRequest{
			System:      in.Instructions.System,
			Messages:    turns,
			Temperature: &scaled,
		}
	default:
		return "", fmt.Errorf("unsupported provider: %s", in.Provider)
	}

	resp, err := cli.ChatCompletion(ctx, req)
	if err != nil {
		return "", err
	}
	return resp.Content, nil
}

// window truncates history to the configured trailing length, or drops it
// entirely when history is disabled.
func (r *Router) window(history []models.ChatTurn) []models.ChatTurn {
	if !r.settings.MessageHistoryEnabled() {
		return nil
	}
	n := r.settings.MessageHistoryLength()
	if n <= 0 {
		return nil
	}
	if len(history) > n {
		history = history[len(history)-n:]
	}
	return history
}

func flattenHistory(turns []models.ChatTurn, userLabel, assistantLabel string) string {
	var b strings.Builder
	for _, t := range turns {
		label := userLabel
		if t.Role == models.RoleAssistant {
			label = assistantLabel
		}
		b.WriteString(label)
		b.WriteString(t.Content)
		b.WriteString("\n")
	}
	return b.String()
}
