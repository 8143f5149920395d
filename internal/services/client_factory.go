package services

import (
	"context"
	"fmt"
	"sync"

	"promptdesk/internal/llm"
	"promptdesk/internal/llm/client"
	"promptdesk/internal/models"
)

// NewClientFactory builds the router's provider resolver. API keys come from
// the keyring service (keyring first, environment fallback) and model names
// from the catalog. Adapters are cached so each provider's client is
// instantiated once per process.
func NewClientFactory(keyring *KeyringService, catalog CatalogService) llm.ClientFactory {
	var (
		mu    sync.Mutex
		cache = make(map[models.Provider]client.ChatClient)
	)

	return func(ctx context.Context, provider models.Provider) (client.ChatClient, error) {
		mu.Lock()
		defer mu.Unlock()

		if cli, ok := cache[provider]; ok {
			return cli, nil
		}

		apiKey := keyring.ResolveAPIKey(provider)
		if apiKey == "" {
			return nil, fmt.Errorf("API key for %s is not configured", provider)
		}

		info, err := catalog.GetProvider(provider)
		if err != nil {
			return nil, err
		}

		var cli client.ChatClient
		switch provider {
		case models.ProviderGemini:
			cli, err = client.NewGeminiClient(ctx, apiKey, client.GeminiModelOptions{Model: info.APIName})
		case models.ProviderClaude:
			cli, err = client.NewClaudeClient(ctx, apiKey, client.ClaudeModelOptions{Model: info.APIName})
		case models.ProviderChatGPT:
			cli, err = client.NewOpenAIClient(ctx, apiKey, client.OpenAIModelOptions{Model: info.APIName})
		default:
			return nil, fmt.Errorf("unsupported provider: %s", provider)
		}
		if err != nil {
			return nil, fmt.Errorf("failed to create %s client: %w", provider, err)
		}

		cache[provider] = cli
		return cli, nil
	}
}
